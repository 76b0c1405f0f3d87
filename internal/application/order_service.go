package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// SaveMode selects between creating a new order and updating an existing one.
type SaveMode int

const (
	SaveCreate SaveMode = iota
	SaveUpdate
)

// ErrSaveInFlight is returned when a save is attempted while another one
// is still running. At most one save runs per service at a time.
var ErrSaveInFlight = errors.New("another save is already in progress")

// OrderService orchestrates order reads and the two-phase save:
// persist the header, then fan out one write per line item.
type OrderService struct {
	orders   domain.OrderAPI
	products domain.ProductAPI
	saving   atomic.Bool
}

func NewOrderService(orders domain.OrderAPI, products domain.ProductAPI) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// OrdersView is the order collection plus its derived statistics.
type OrdersView struct {
	Orders []domain.Order     `json:"orders"`
	Stats  domain.OrdersStats `json:"stats"`
}

// Overview fetches all orders and derives the list view. Stats cover the
// whole collection; term narrows the listed orders only.
func (s *OrderService) Overview(ctx context.Context, term string) (*OrdersView, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return &OrdersView{
		Orders: domain.FilterOrders(orders, term),
		Stats:  domain.ComputeOrderStats(orders),
	}, nil
}

// OrderDetail is one order header with its line items.
type OrderDetail struct {
	Order domain.Order       `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

// Load fetches an order header and its existing lines for display or edit.
func (s *OrderService) Load(ctx context.Context, id int) (*OrderDetail, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.products.ListProductsByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &OrderDetail{Order: order, Items: items}, nil
}

// Save persists an order header and all of its lines.
//
// The write is a documented non-atomic two-phase sequence: the header
// first, then one call per line. Line calls run concurrently but are
// always joined before the result is reported; a line failure after the
// header persisted surfaces as *domain.PartialSaveError naming the failed
// lines, with completed sibling writes left in place.
func (s *OrderService) Save(ctx context.Context, mode SaveMode, header domain.Order, lines []domain.OrderItem) (domain.Order, error) {
	if len(lines) == 0 {
		return domain.Order{}, domain.ErrEmptyOrder
	}
	if !s.saving.CompareAndSwap(false, true) {
		return domain.Order{}, ErrSaveInFlight
	}
	defer s.saving.Store(false)

	// 1. Recompute aggregates from the lines. Caller-supplied totals are
	// never trusted.
	totals := domain.ComputeTotals(lines)
	header.TotalProducts = totals.TotalProducts
	header.FinalPrice = totals.FinalPrice.String()

	// 2. Persist the header.
	persisted, err := s.saveHeader(ctx, mode, header)
	if err != nil {
		return domain.Order{}, err
	}

	// 3. Fan out one write per line. Each line is independent; all calls
	// are awaited before success or failure is reported.
	var (
		mu       sync.Mutex
		failures []domain.LineFailure
	)
	var g errgroup.Group
	for _, line := range lines {
		line := line
		line.OrderID = persisted.ID
		g.Go(func() error {
			var werr error
			if mode == SaveUpdate {
				werr = s.orders.UpdateOrderLine(ctx, line)
			} else {
				werr = s.orders.CreateOrderLine(ctx, line)
			}
			if werr != nil {
				mu.Lock()
				failures = append(failures, domain.LineFailure{ProductID: line.ProductID, Err: werr})
				mu.Unlock()
			}
			return werr
		})
	}
	_ = g.Wait() // the join; per-line detail lives in failures

	if len(failures) > 0 {
		sort.Slice(failures, func(i, j int) bool { return failures[i].ProductID < failures[j].ProductID })
		return persisted, &domain.PartialSaveError{OrderID: persisted.ID, Failures: failures}
	}
	return persisted, nil
}

func (s *OrderService) saveHeader(ctx context.Context, mode SaveMode, header domain.Order) (domain.Order, error) {
	if mode == SaveUpdate {
		persisted, err := s.orders.UpdateOrder(ctx, header.ID, header)
		if err != nil {
			return domain.Order{}, err
		}
		if persisted.ID == 0 {
			persisted = header // backend echoed nothing useful
		}
		return persisted, nil
	}

	if header.OrderDate == "" {
		header.OrderDate = time.Now().UTC().Format("2006-01-02")
	}
	if header.Status == "" {
		header.Status = domain.StatusPending
	}
	persisted, err := s.orders.CreateOrder(ctx, header)
	if err != nil {
		return domain.Order{}, err
	}
	if persisted.ID == 0 {
		return domain.Order{}, fmt.Errorf("createOrder: backend did not assign an order id")
	}
	return persisted, nil
}

// Cycle advances an order's status one step and persists the change.
// It returns the previous and the new status.
func (s *OrderService) Cycle(ctx context.Context, id int) (domain.Status, domain.Status, error) {
	order, err := s.orders.GetOrder(ctx, id)
	if err != nil {
		return "", "", err
	}
	next := domain.CycleStatus(order.Status)
	if err := s.orders.ChangeOrderStatus(ctx, id, next); err != nil {
		return "", "", err
	}
	return order.Status, next, nil
}

// Delete removes an order.
func (s *OrderService) Delete(ctx context.Context, id int) error {
	return s.orders.DeleteOrder(ctx, id)
}
