package application_test

import (
	"context"
	"sync"

	"github.com/orderdesk/orderdesk/internal/domain"
)

// fakeBackend implements domain.OrderAPI and domain.ProductAPI in memory,
// recording every call so tests can assert on the exact network traffic.
type fakeBackend struct {
	mu sync.Mutex

	products   []domain.Product
	orders     []domain.Order
	orderItems map[int][]domain.OrderItem

	nextOrderID int

	calls      []string
	lineWrites []domain.OrderItem

	failOps   map[string]error // op name -> forced error
	failLines map[int]error    // product id -> forced line write error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		orderItems:  make(map[int][]domain.OrderItem),
		nextOrderID: 100,
		failOps:     make(map[string]error),
		failLines:   make(map[int]error),
	}
}

func (f *fakeBackend) record(op string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
	return f.failOps[op]
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeBackend) recordedLineWrites() []domain.OrderItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.OrderItem, len(f.lineWrites))
	copy(out, f.lineWrites)
	return out
}

// --- domain.ProductAPI ---

func (f *fakeBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if err := f.record("listProducts"); err != nil {
		return nil, err
	}
	return f.products, nil
}

func (f *fakeBackend) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if err := f.record("getProduct"); err != nil {
		return domain.Product{}, err
	}
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, &domain.FetchError{Op: "getProduct", Status: 404}
}

func (f *fakeBackend) ListProductsByOrder(ctx context.Context, orderID int) ([]domain.OrderItem, error) {
	if err := f.record("listProductsByOrder"); err != nil {
		return nil, err
	}
	return f.orderItems[orderID], nil
}

func (f *fakeBackend) CreateProduct(ctx context.Context, in domain.ProductInput) (domain.Product, error) {
	if err := f.record("createProduct"); err != nil {
		return domain.Product{}, err
	}
	p := domain.Product{ID: len(f.products) + 1, Name: in.Name, UnitPrice: in.UnitPrice, ImageURL: in.ImageURL}
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeBackend) UpdateProduct(ctx context.Context, id int, in domain.ProductInput) (domain.Product, error) {
	if err := f.record("updateProduct"); err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ID: id, Name: in.Name, UnitPrice: in.UnitPrice, ImageURL: in.ImageURL}, nil
}

func (f *fakeBackend) DeleteProduct(ctx context.Context, id int) error {
	return f.record("deleteProduct")
}

// --- domain.OrderAPI ---

func (f *fakeBackend) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if err := f.record("listOrders"); err != nil {
		return nil, err
	}
	return f.orders, nil
}

func (f *fakeBackend) GetOrder(ctx context.Context, id int) (domain.Order, error) {
	if err := f.record("getOrder"); err != nil {
		return domain.Order{}, err
	}
	for _, o := range f.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.Order{}, &domain.FetchError{Op: "getOrder", Status: 404}
}

func (f *fakeBackend) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	if err := f.record("createOrder"); err != nil {
		return domain.Order{}, err
	}
	f.mu.Lock()
	o.ID = f.nextOrderID
	f.nextOrderID++
	f.orders = append(f.orders, o)
	f.mu.Unlock()
	return o, nil
}

func (f *fakeBackend) UpdateOrder(ctx context.Context, id int, o domain.Order) (domain.Order, error) {
	if err := f.record("updateOrder"); err != nil {
		return domain.Order{}, err
	}
	o.ID = id
	return o, nil
}

func (f *fakeBackend) CreateOrderLine(ctx context.Context, line domain.OrderItem) error {
	if err := f.record("createOrderLine"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failLines[line.ProductID]; err != nil {
		return err
	}
	f.lineWrites = append(f.lineWrites, line)
	return nil
}

func (f *fakeBackend) UpdateOrderLine(ctx context.Context, line domain.OrderItem) error {
	if err := f.record("updateOrderLine"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failLines[line.ProductID]; err != nil {
		return err
	}
	f.lineWrites = append(f.lineWrites, line)
	return nil
}

func (f *fakeBackend) ChangeOrderStatus(ctx context.Context, id int, status domain.Status) error {
	if err := f.record("changeOrderStatus"); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
		}
	}
	return nil
}

func (f *fakeBackend) DeleteOrder(ctx context.Context, id int) error {
	return f.record("deleteOrder")
}
