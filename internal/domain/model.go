package domain

import "github.com/shopspring/decimal"

// Status is the lifecycle state of an order.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// ValidStatus reports whether s is one of the three order statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Product is a catalog entry owned by the backend. Clients cache it
// read-only per page visit.
type Product struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
}

// Order is an order header. TotalProducts and FinalPrice are derived from
// the order's line items and are recomputed from the lines before every
// persist; they are never authoritative on their own.
type Order struct {
	ID            int    `json:"id"`
	OrderNumber   string `json:"order_number"`
	OrderDate     string `json:"order_date"`
	TotalProducts int    `json:"total_products"`
	FinalPrice    string `json:"final_price"`
	Status        Status `json:"status"`
}

// OrderItem is one product line belonging to an order. ProductName and
// UnitPrice are copied from the product at selection time; a later change
// to the product does not retroactively change historical lines.
type OrderItem struct {
	OrderID     int     `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Qty         int     `json:"qty"`
	UnitPrice   float64 `json:"unit_price"`
}

// Subtotal returns qty * unit_price for this line.
func (i OrderItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(i.UnitPrice).Mul(decimal.NewFromInt(int64(i.Qty)))
}

// Totals is the aggregate of a set of order lines.
type Totals struct {
	TotalProducts int             `json:"total_products"`
	FinalPrice    decimal.Decimal `json:"final_price"`
}

// ComputeTotals aggregates lines into header totals. It always works from
// the lines as given; callers must not substitute cached values.
func ComputeTotals(lines []OrderItem) Totals {
	t := Totals{FinalPrice: decimal.Zero}
	for _, line := range lines {
		t.TotalProducts += line.Qty
		t.FinalPrice = t.FinalPrice.Add(line.Subtotal())
	}
	return t
}

// ProductInput is the cleaned product payload sent to the backend on
// create and update.
type ProductInput struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
}
