package domain

// Composer holds the line items of one order being created or edited.
// Lines are keyed by product id and kept in insertion order; the same
// product never occupies two lines. Each edit session owns its composer
// exclusively, so no locking is needed.
type Composer struct {
	orderID int
	index   map[int]int // product id -> position in lines
	lines   []OrderItem
}

// NewComposer creates an empty composer for the given order id. Use 0 for
// an order that has not been created yet.
func NewComposer(orderID int) *Composer {
	return &Composer{
		orderID: orderID,
		index:   make(map[int]int),
	}
}

// NewComposerWith seeds a composer from the existing lines of an order
// being edited. Duplicate product ids in the input are merged into
// quantity increments.
func NewComposerWith(orderID int, lines []OrderItem) *Composer {
	c := NewComposer(orderID)
	for _, line := range lines {
		if pos, ok := c.index[line.ProductID]; ok {
			c.lines[pos].Qty += line.Qty
			continue
		}
		line.OrderID = orderID
		c.index[line.ProductID] = len(c.lines)
		c.lines = append(c.lines, line)
	}
	return c
}

// AddOrIncrement adds one unit of the product. An existing line gains one
// quantity; otherwise a new line is appended with qty 1, copying the
// product's name and unit price at this moment.
func (c *Composer) AddOrIncrement(p Product) {
	if pos, ok := c.index[p.ID]; ok {
		c.lines[pos].Qty++
		return
	}
	c.index[p.ID] = len(c.lines)
	c.lines = append(c.lines, OrderItem{
		OrderID:     c.orderID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Qty:         1,
		UnitPrice:   p.UnitPrice,
	})
}

// SetQuantity overwrites the quantity of the product's line. A quantity of
// zero or less removes the line entirely; callers must not distinguish
// "set to zero" from "remove".
func (c *Composer) SetQuantity(productID, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	if pos, ok := c.index[productID]; ok {
		c.lines[pos].Qty = qty
	}
}

// Remove deletes the product's line if present; otherwise it is a no-op.
func (c *Composer) Remove(productID int) {
	pos, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:pos], c.lines[pos+1:]...)
	delete(c.index, productID)
	for i := pos; i < len(c.lines); i++ {
		c.index[c.lines[i].ProductID] = i
	}
}

// Contains reports whether a line for the product exists.
func (c *Composer) Contains(productID int) bool {
	_, ok := c.index[productID]
	return ok
}

// Len returns the number of lines.
func (c *Composer) Len() int { return len(c.lines) }

// Items returns a copy of the lines in insertion order.
func (c *Composer) Items() []OrderItem {
	items := make([]OrderItem, len(c.lines))
	copy(items, c.lines)
	return items
}

// SetOrderID stamps every line with the owning order id. Used after the
// backend assigns an id to a newly created order.
func (c *Composer) SetOrderID(id int) {
	c.orderID = id
	for i := range c.lines {
		c.lines[i].OrderID = id
	}
}

// Totals recomputes the aggregate from the current lines on every call;
// it never returns a cached value.
func (c *Composer) Totals() Totals {
	return ComputeTotals(c.lines)
}
