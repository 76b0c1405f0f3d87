package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FilterOrders matches orders whose order number (case-insensitive) or
// decimal-string id contains term as a substring. An empty term matches
// everything.
func FilterOrders(orders []Order, term string) []Order {
	if term == "" {
		out := make([]Order, len(orders))
		copy(out, orders)
		return out
	}
	needle := strings.ToLower(term)
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.OrderNumber), needle) ||
			strings.Contains(strconv.Itoa(o.ID), term) {
			out = append(out, o)
		}
	}
	return out
}

// OrdersStats summarizes an order collection for the list view.
type OrdersStats struct {
	Count        int             `json:"count"`
	Revenue      decimal.Decimal `json:"revenue"`
	PendingCount int             `json:"pending_count"`
	AvgValue     decimal.Decimal `json:"avg_value"`
}

// ComputeOrderStats derives aggregate statistics. A final_price that fails
// to parse counts as zero for that order; the aggregate never aborts.
func ComputeOrderStats(orders []Order) OrdersStats {
	stats := OrdersStats{
		Revenue:  decimal.Zero,
		AvgValue: decimal.Zero,
	}
	for _, o := range orders {
		stats.Count++
		if o.Status == StatusPending {
			stats.PendingCount++
		}
		if price, err := decimal.NewFromString(o.FinalPrice); err == nil {
			stats.Revenue = stats.Revenue.Add(price)
		}
	}
	if stats.Count > 0 {
		stats.AvgValue = stats.Revenue.Div(decimal.NewFromInt(int64(stats.Count)))
	}
	return stats
}

// CycleStatus advances an order status one step along the fixed cycle
// Pending -> InProgress -> Completed -> Pending. It is pure and has no
// fixed point; applying it three times returns the input.
func CycleStatus(s Status) Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}
