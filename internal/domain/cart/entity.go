// internal/domain/cart/entity.go
package cart

import (
	"time"
)

// SchemaVersion is written into every persisted cart. A stored cart with a
// different version is treated as unreadable and reset to empty on load.
const SchemaVersion = 1

// Line represents a cart line item. Identity is the (ProductID, Color, Size)
// tuple: two lines for the same product with different variant selections
// are distinct entries.
type Line struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"` // Unit price in minor currency units
	Image     string    `json:"image,omitempty"`
	Quantity  int       `json:"quantity"`
	Color     string    `json:"color,omitempty"`
	Size      string    `json:"size,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Matches reports whether the line has the given variant key
func (l Line) Matches(productID uint, color, size string) bool {
	return l.ProductID == productID && l.Color == color && l.Size == size
}

// LineTotal returns price multiplied by quantity
func (l Line) LineTotal() int64 {
	return l.Price * int64(l.Quantity)
}

// Cart represents a per-owner shopping cart
type Cart struct {
	SchemaVersion int       `json:"schema_version"`
	OwnerID       string    `json:"owner_id"`
	Items         []Line    `json:"items"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Totals represents derived cart aggregates
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of distinct lines
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`      // Sum of price*quantity
}

// New creates an empty cart for the given owner
func New(ownerID string) *Cart {
	now := time.Now().UTC()
	return &Cart{
		SchemaVersion: SchemaVersion,
		OwnerID:       ownerID,
		Items:         []Line{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Add merges the line into an existing entry with the same variant key,
// summing quantities, or appends it as a new entry.
func (c *Cart) Add(line Line) {
	for i := range c.Items {
		if c.Items[i].Matches(line.ProductID, line.Color, line.Size) {
			c.Items[i].Quantity += line.Quantity
			c.Items[i].Price = line.Price // Refresh price in case it changed
			c.touch()
			return
		}
	}

	c.Items = append(c.Items, line)
	c.touch()
}

// RemoveProduct removes every line for the product regardless of variant
// and returns the removed lines.
func (c *Cart) RemoveProduct(productID uint) []Line {
	var removed []Line
	kept := c.Items[:0]
	for _, line := range c.Items {
		if line.ProductID == productID {
			removed = append(removed, line)
		} else {
			kept = append(kept, line)
		}
	}
	c.Items = kept
	if len(removed) > 0 {
		c.touch()
	}
	return removed
}

// RemoveLine removes the single line matching the variant key. It returns
// false if no such line exists.
func (c *Cart) RemoveLine(productID uint, color, size string) bool {
	for i := range c.Items {
		if c.Items[i].Matches(productID, color, size) {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return true
		}
	}
	return false
}

// SetQuantity sets the quantity of the line matching the variant key.
// Quantity must be >= 1; a quantity of zero is a removal, handled by the
// service. It returns false if no such line exists.
func (c *Cart) SetQuantity(productID uint, color, size string, quantity int) bool {
	for i := range c.Items {
		if c.Items[i].Matches(productID, color, size) {
			c.Items[i].Quantity = quantity
			c.touch()
			return true
		}
	}
	return false
}

// Clear removes all lines
func (c *Cart) Clear() {
	c.Items = []Line{}
	c.touch()
}

// IsEmpty reports whether the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Totals computes the derived aggregates from the current lines
func (c *Cart) Totals() Totals {
	var totals Totals

	totals.ItemCount = len(c.Items)
	for _, line := range c.Items {
		totals.TotalQuantity += line.Quantity
		totals.SubTotal += line.LineTotal()
	}

	return totals
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
