// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
)

// Service handles wishlist business logic
type Service struct {
	store       kv.Store
	cartService *cart.Service
	log         *logrus.Logger
	ttl         time.Duration
}

// NewService creates a new wishlist service
func NewService(store kv.Store, cartService *cart.Service, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		store:       store,
		cartService: cartService,
		log:         log,
		ttl:         cfg.Checkout.SessionTTL,
	}
}

// WishlistResponse represents a wishlist with its entry count
type WishlistResponse struct {
	OwnerID   string    `json:"owner_id"`
	Items     []Entry   `json:"items"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Get retrieves the owner's wishlist
func (s *Service) Get(ctx context.Context, ownerID string) (*WishlistResponse, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.respond(w), nil
}

// Add adds a product to the wishlist. Adding a product that is already
// present is a no-op.
func (s *Service) Add(ctx context.Context, ownerID string, prod *product.Product) (*WishlistResponse, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	added := w.Add(Entry{
		ProductID: prod.ID,
		Name:      prod.Name,
		Price:     prod.Price,
		Image:     prod.Image,
		AddedAt:   time.Now().UTC(),
	})

	if added {
		if err := s.save(ctx, w); err != nil {
			return nil, err
		}
	}
	return s.respond(w), nil
}

// Remove removes a product from the wishlist
func (s *Service) Remove(ctx context.Context, ownerID string, productID uint) (*WishlistResponse, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !w.Remove(productID) {
		return nil, fmt.Errorf("item not found in wishlist")
	}

	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return s.respond(w), nil
}

// Contains reports whether the product is in the owner's wishlist
func (s *Service) Contains(ctx context.Context, ownerID string, productID uint) (bool, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}

// Clear removes all entries from the owner's wishlist
func (s *Service) Clear(ctx context.Context, ownerID string) error {
	return s.store.Del(ctx, wishlistKey(ownerID))
}

// Count returns the number of wishlist entries
func (s *Service) Count(ctx context.Context, ownerID string) (int, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return len(w.Items), nil
}

// MoveToCart moves a wishlist entry into the cart: the product is added as
// a cart line and removed from the wishlist.
func (s *Service) MoveToCart(ctx context.Context, ownerID string, prod *product.Product, quantity int, color, size string) (*WishlistResponse, error) {
	w, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if !w.Contains(prod.ID) {
		return nil, fmt.Errorf("item not found in wishlist")
	}

	if _, err := s.cartService.AddItem(ctx, ownerID, prod, quantity, color, size); err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}

	w.Remove(prod.ID)
	if err := s.save(ctx, w); err != nil {
		return nil, err
	}
	return s.respond(w), nil
}

func (s *Service) load(ctx context.Context, ownerID string) (*Wishlist, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID required for wishlist")
	}

	data, err := s.store.Get(ctx, wishlistKey(ownerID))
	if err == kv.ErrNotFound {
		return New(ownerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wishlist: %w", err)
	}

	var w Wishlist
	if err := json.Unmarshal([]byte(data), &w); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("unreadable wishlist state, resetting to empty")
		return New(ownerID), nil
	}
	if w.SchemaVersion != SchemaVersion {
		s.log.WithFields(logrus.Fields{
			"owner_id": ownerID,
			"found":    w.SchemaVersion,
			"expected": SchemaVersion,
		}).Warn("wishlist schema version mismatch, resetting to empty")
		return New(ownerID), nil
	}

	return &w, nil
}

func (s *Service) save(ctx context.Context, w *Wishlist) error {
	data, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("failed to serialize wishlist: %w", err)
	}
	return s.store.Set(ctx, wishlistKey(w.OwnerID), string(data), s.ttl)
}

func (s *Service) respond(w *Wishlist) *WishlistResponse {
	return &WishlistResponse{
		OwnerID:   w.OwnerID,
		Items:     w.Items,
		Count:     len(w.Items),
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
	}
}

func wishlistKey(ownerID string) string {
	return fmt.Sprintf("wishlist:%s", ownerID)
}
