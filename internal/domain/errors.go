package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyOrder is returned when a save is attempted with zero line items.
// No network call is made in that case.
var ErrEmptyOrder = errors.New("order has no line items")

// FetchError wraps a failed backend call: a transport error or a non-2xx
// response. Reads that fail with it leave prior state untouched.
type FetchError struct {
	Op     string // logical operation, e.g. "listOrders"
	Status int    // HTTP status code, 0 on transport failure
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: backend returned status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports malformed form input, field by field. It is
// raised before any network call.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var parts []string
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

// LineFailure identifies one order line whose write failed.
type LineFailure struct {
	ProductID int   `json:"product_id"`
	Err       error `json:"-"`
}

// PartialSaveError reports a save where the order header was persisted but
// one or more line writes failed. The backend offers no transactions, so
// completed sibling writes are not rolled back; callers must surface this
// distinctly from total failure so operators can reconcile.
type PartialSaveError struct {
	OrderID  int
	Failures []LineFailure
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("order %d: header saved but %d of its line(s) failed (products %v)",
		e.OrderID, len(e.Failures), e.FailedProductIDs())
}

// FailedProductIDs lists the product ids of the failed lines, ascending.
func (e *PartialSaveError) FailedProductIDs() []int {
	ids := make([]int, 0, len(e.Failures))
	for _, f := range e.Failures {
		ids = append(ids, f.ProductID)
	}
	sort.Ints(ids)
	return ids
}
