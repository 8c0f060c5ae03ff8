// Package cart implements the visitor's in-memory order.
//
// A Cart is owned by a single event loop and is not safe for concurrent use.
package cart

import "github.com/Lixing-Zhang/saffron-menu/internal/models"

// Entry is a menu item snapshot together with its quantity
type Entry struct {
	Item     models.MenuItem
	Quantity int
}

// Subtotal returns price times quantity
func (e Entry) Subtotal() int {
	return e.Item.Price * e.Quantity
}

// Cart maps item ids to entries. An entry always has quantity >= 1;
// removing the last unit deletes the entry.
type Cart struct {
	entries map[string]*Entry
	order   []string // item ids in first-add order
}

// New creates an empty cart
func New() *Cart {
	return &Cart{
		entries: make(map[string]*Entry),
	}
}

// Add puts one unit of item in the cart. If the item is already present
// its quantity grows and the stored snapshot is kept as first added.
func (c *Cart) Add(item models.MenuItem) {
	c.AddN(item, 1)
}

// AddN puts n units of item in the cart in one step. n <= 0 does nothing.
func (c *Cart) AddN(item models.MenuItem, n int) {
	if n <= 0 {
		return
	}
	if e, ok := c.entries[item.ID]; ok {
		e.Quantity += n
		return
	}

	c.entries[item.ID] = &Entry{Item: item, Quantity: n}
	c.order = append(c.order, item.ID)
}

// Remove takes one unit of the item out of the cart.
// Removing an item that is not in the cart does nothing.
func (c *Cart) Remove(itemID string) {
	e, ok := c.entries[itemID]
	if !ok {
		return
	}

	if e.Quantity > 1 {
		e.Quantity--
		return
	}

	delete(c.entries, itemID)
	for i, id := range c.order {
		if id == itemID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Quantity returns the quantity of the item, or 0 if it is not in the cart
func (c *Cart) Quantity(itemID string) int {
	if e, ok := c.entries[itemID]; ok {
		return e.Quantity
	}
	return 0
}

// TotalCount returns the sum of all quantities
func (c *Cart) TotalCount() int {
	total := 0
	for _, e := range c.entries {
		total += e.Quantity
	}
	return total
}

// TotalPrice returns the sum of price times quantity over all entries
func (c *Cart) TotalPrice() int {
	total := 0
	for _, e := range c.entries {
		total += e.Subtotal()
	}
	return total
}

// Entries returns a copy of the entries in first-add order
func (c *Cart) Entries() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, id := range c.order {
		entries = append(entries, *c.entries[id])
	}
	return entries
}

// Len returns the number of distinct items in the cart
func (c *Cart) Len() int {
	return len(c.entries)
}

// IsEmpty reports whether the cart has no entries
func (c *Cart) IsEmpty() bool {
	return len(c.entries) == 0
}

// Reset empties the cart
func (c *Cart) Reset() {
	c.entries = make(map[string]*Entry)
	c.order = nil
}
