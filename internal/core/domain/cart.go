package domain

import "sync"

// CartLine is one catalog item plus its requested quantity. Name and
// UnitPrice are snapshots taken when the item was first added: the cart is
// a price quote at add time, later catalog changes do not move the line.
type CartLine struct {
	GoodID    int64   `json:"good_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is the in-memory shopping cart aggregate. Lines are kept in
// insertion order with at most one line per good; a line's quantity is
// always >= 1 (dropping to zero removes the line instead). Every public
// operation applies atomically.
type Cart struct {
	mu    sync.Mutex
	lines map[int64]*CartLine
	order []int64
}

func NewCart() *Cart {
	return &Cart{lines: make(map[int64]*CartLine)}
}

// AddItem merges quantity into an existing line for the good or inserts a
// new line snapshotting the good's current name and price. Quantity must be
// positive by contract of the caller.
func (c *Cart) AddItem(good Good, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[good.ID]; ok {
		line.Quantity += quantity
		return
	}
	c.lines[good.ID] = &CartLine{
		GoodID:    good.ID,
		Name:      good.Name,
		UnitPrice: good.Price,
		Quantity:  quantity,
	}
	c.order = append(c.order, good.ID)
}

// UpdateQuantity sets the line's quantity. A quantity <= 0 removes the
// line, identical to RemoveItem. Unknown ids are ignored.
func (c *Cart) UpdateQuantity(goodID int64, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(goodID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if line, ok := c.lines[goodID]; ok {
		line.Quantity = quantity
	}
}

// RemoveItem deletes the line if present; removing an absent id is a no-op.
func (c *Cart) RemoveItem(goodID int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.lines[goodID]; !ok {
		return
	}
	delete(c.lines, goodID)
	for i, id := range c.order {
		if id == goodID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = make(map[int64]*CartLine)
	c.order = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartLine, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

// Total recomputes the cart total from the current lines.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// ItemCount recomputes the summed quantity across all lines.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines) == 0
}
