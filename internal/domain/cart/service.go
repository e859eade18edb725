// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
)

// Service handles cart business logic. Every mutation rehydrates the
// owner's cart from the store, applies the change, and persists the full
// collection back.
type Service struct {
	store kv.Store
	log   *logrus.Logger
	ttl   time.Duration
}

// NewService creates a new cart service
func NewService(store kv.Store, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
		ttl:   cfg.Checkout.SessionTTL,
	}
}

// AddToCartRequest represents add to cart request
type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
	Color     string `json:"color"`
	Size      string `json:"size"`
}

// UpdateCartItemRequest represents update cart item request
type UpdateCartItemRequest struct {
	Quantity int    `json:"quantity" binding:"min=0"`
	Color    string `json:"color"`
	Size     string `json:"size"`
}

// CartResponse represents a cart with derived totals
type CartResponse struct {
	OwnerID   string    `json:"owner_id"`
	Items     []Line    `json:"items"`
	Totals    Totals    `json:"totals"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get retrieves the owner's cart, creating an empty one if none exists
func (s *Service) Get(ctx context.Context, ownerID string) (*CartResponse, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// AddItem adds a product to the cart, merging with an existing line that
// has the same (product, color, size) key.
func (s *Service) AddItem(ctx context.Context, ownerID string, prod *product.Product, quantity int, color, size string) (*CartResponse, error) {
	if quantity <= 0 {
		quantity = 1
	}

	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	c.Add(Line{
		ProductID: prod.ID,
		Name:      prod.Name,
		Price:     prod.Price,
		Image:     prod.Image,
		Quantity:  quantity,
		Color:     color,
		Size:      size,
		AddedAt:   time.Now().UTC(),
	})

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// RemoveProduct removes every variant line of the product from the cart
func (s *Service) RemoveProduct(ctx context.Context, ownerID string, productID uint) (*CartResponse, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	c.RemoveProduct(productID)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// RemoveLine removes the single line matching the variant key
func (s *Service) RemoveLine(ctx context.Context, ownerID string, productID uint, color, size string) (*CartResponse, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !c.RemoveLine(productID, color, size) {
		return nil, fmt.Errorf("item not found in cart")
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// UpdateQuantity sets the quantity of a cart line. A quantity of zero or
// less removes every line for the product, matching remove semantics.
func (s *Service) UpdateQuantity(ctx context.Context, ownerID string, productID uint, color, size string, quantity int) (*CartResponse, error) {
	if quantity <= 0 {
		return s.RemoveProduct(ctx, ownerID, productID)
	}

	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !c.SetQuantity(productID, color, size, quantity) {
		return nil, fmt.Errorf("item not found in cart")
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return s.respond(c), nil
}

// Clear removes all items from the owner's cart
func (s *Service) Clear(ctx context.Context, ownerID string) error {
	return s.store.Del(ctx, cartKey(ownerID))
}

// Count returns the total quantity across all cart lines
func (s *Service) Count(ctx context.Context, ownerID string) (int, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return c.Totals().TotalQuantity, nil
}

// MergeIntoUser merges a guest session cart into the user's cart on login.
// Quantities of matching variant lines are summed; the guest cart is
// cleared afterwards.
func (s *Service) MergeIntoUser(ctx context.Context, sessionOwnerID, userOwnerID string) (*CartResponse, error) {
	guest, err := s.load(ctx, sessionOwnerID)
	if err != nil {
		return nil, err
	}

	target, err := s.load(ctx, userOwnerID)
	if err != nil {
		return nil, err
	}

	for _, line := range guest.Items {
		target.Add(line)
	}

	if err := s.save(ctx, target); err != nil {
		return nil, err
	}

	if err := s.store.Del(ctx, cartKey(sessionOwnerID)); err != nil {
		s.log.WithError(err).WithField("owner_id", sessionOwnerID).Warn("failed to clear guest cart after merge")
	}

	return s.respond(target), nil
}

// load rehydrates the owner's cart from the store. A missing key yields an
// empty cart; an unreadable or version-mismatched blob is logged and reset
// to empty rather than failing the operation.
func (s *Service) load(ctx context.Context, ownerID string) (*Cart, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID required for cart")
	}

	data, err := s.store.Get(ctx, cartKey(ownerID))
	if err == kv.ErrNotFound {
		return New(ownerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("unreadable cart state, resetting to empty")
		return New(ownerID), nil
	}
	if c.SchemaVersion != SchemaVersion {
		s.log.WithFields(logrus.Fields{
			"owner_id": ownerID,
			"found":    c.SchemaVersion,
			"expected": SchemaVersion,
		}).Warn("cart schema version mismatch, resetting to empty")
		return New(ownerID), nil
	}

	return &c, nil
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}
	return s.store.Set(ctx, cartKey(c.OwnerID), string(data), s.ttl)
}

func (s *Service) respond(c *Cart) *CartResponse {
	return &CartResponse{
		OwnerID:   c.OwnerID,
		Items:     c.Items,
		Totals:    c.Totals(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func cartKey(ownerID string) string {
	return fmt.Sprintf("cart:%s", ownerID)
}
