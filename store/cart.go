package store

import (
	"bistro-api/models"

	"github.com/shopspring/decimal"
)

// Cart is the customer's current, unsubmitted selection. Lines keep insertion
// order and there is at most one line per menu item.
//
// A Cart is not safe for concurrent use; the session layer serialises access.
type Cart struct {
	lines []models.CartLine
}

// NewCart rebuilds a cart from a persisted snapshot. Non-positive lines and
// repeated ids are folded the same way AddItem would fold them.
func NewCart(lines ...models.CartLine) *Cart {
	c := &Cart{}
	for _, l := range lines {
		c.AddItem(l.MenuItem, l.Quantity, l.SpecialInstructions)
	}
	return c
}

func (c *Cart) find(id string) int {
	for i := range c.lines {
		if c.lines[i].ID == id {
			return i
		}
	}
	return -1
}

// AddItem merges quantity into the existing line for item, or appends a new
// line. Instructions are only taken from the first add. A non-positive
// quantity leaves the cart untouched.
func (c *Cart) AddItem(item models.MenuItem, quantity int, instructions string) {
	if quantity <= 0 {
		return
	}
	if i := c.find(item.ID); i >= 0 {
		c.lines[i].Quantity += quantity
		return
	}
	c.lines = append(c.lines, models.CartLine{
		ID:                  item.ID,
		MenuItem:            item,
		Quantity:            quantity,
		SpecialInstructions: instructions,
	})
}

// RemoveItem deletes the line; absent ids are ignored.
func (c *Cart) RemoveItem(id string) {
	i := c.find(id)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// UpdateQuantity overwrites the quantity of a line. Zero or less removes it.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	if i := c.find(id); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

func (c *Cart) Clear() {
	c.lines = nil
}

// TotalPrice is the sum of price × quantity over all lines.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	return append([]models.CartLine{}, c.lines...)
}

// Line returns the line for id.
func (c *Cart) Line(id string) (models.CartLine, bool) {
	if i := c.find(id); i >= 0 {
		return c.lines[i], true
	}
	return models.CartLine{}, false
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}
