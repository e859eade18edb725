// internal/domain/wishlist/entity.go
package wishlist

import (
	"time"
)

// SchemaVersion is written into every persisted wishlist. A stored wishlist
// with a different version is reset to empty on load.
const SchemaVersion = 1

// Entry represents a wishlist entry, unique by product ID
type Entry struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     int64     `json:"price"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// Wishlist represents a per-owner wishlist with set semantics
type Wishlist struct {
	SchemaVersion int       `json:"schema_version"`
	OwnerID       string    `json:"owner_id"`
	Items         []Entry   `json:"items"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// New creates an empty wishlist for the given owner
func New(ownerID string) *Wishlist {
	now := time.Now().UTC()
	return &Wishlist{
		SchemaVersion: SchemaVersion,
		OwnerID:       ownerID,
		Items:         []Entry{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Add appends the entry unless the product is already present. Re-adding
// an existing product is a no-op; it returns false in that case.
func (w *Wishlist) Add(entry Entry) bool {
	if w.Contains(entry.ProductID) {
		return false
	}
	w.Items = append(w.Items, entry)
	w.UpdatedAt = time.Now().UTC()
	return true
}

// Remove deletes the entry for the product. It returns false if the
// product is not in the wishlist.
func (w *Wishlist) Remove(productID uint) bool {
	for i := range w.Items {
		if w.Items[i].ProductID == productID {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			w.UpdatedAt = time.Now().UTC()
			return true
		}
	}
	return false
}

// Contains reports whether the product is in the wishlist
func (w *Wishlist) Contains(productID uint) bool {
	for _, entry := range w.Items {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}
