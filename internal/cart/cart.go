package cart

import (
	"sync"

	"github.com/google/uuid"

	"menustudio/internal/menu"
)

// Entry is one confirmed add-to-cart action. The total is the computed
// price at the moment of adding; later menu edits do not reprice it.
type Entry struct {
	ID         string        `json:"id"`
	Item       menu.MenuItem `json:"item"`
	Quantity   int           `json:"quantity"`
	TotalPrice float64       `json:"totalPrice"`
	Notes      string        `json:"notes,omitempty"`
}

// Cart is the append-only session cart. There is no removal or
// checkout; the entries exist only for the preview badge and list.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Cart {
	return &Cart{}
}

// Add appends an entry and returns its generated id.
func (c *Cart) Add(item menu.MenuItem, quantity int, totalPrice float64, notes string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := uuid.New().String()
	c.entries = append(c.entries, Entry{
		ID:         id,
		Item:       item,
		Quantity:   quantity,
		TotalPrice: totalPrice,
		Notes:      notes,
	})
	return id
}

// Entries returns a copy of the cart contents.
func (c *Cart) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count is the total quantity across entries, shown on the cart badge.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, entry := range c.entries {
		count += entry.Quantity
	}
	return count
}
