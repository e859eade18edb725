// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
)

// Service handles checkout business logic. It composes the cart service's
// derived subtotal with the owner's checkout selections.
type Service struct {
	store          kv.Store
	cartService    *cart.Service
	log            *logrus.Logger
	ttl            time.Duration
	placementDelay time.Duration
}

// NewService creates a new checkout service
func NewService(store kv.Store, cartService *cart.Service, cfg *config.Config, log *logrus.Logger) *Service {
	return &Service{
		store:          store,
		cartService:    cartService,
		log:            log,
		ttl:            cfg.Checkout.SessionTTL,
		placementDelay: cfg.Checkout.PlacementDelay,
	}
}

// Summary represents the complete checkout view for an owner
type Summary struct {
	Cart           *cart.CartResponse `json:"cart"`
	State          *State             `json:"state"`
	Pricing        Pricing            `json:"pricing"`
	PaymentMethods []PaymentMethod    `json:"payment_methods"`
}

// PlacementResult represents the outcome of an order placement attempt
type PlacementResult struct {
	Placed      bool       `json:"placed"`
	OrderNumber string     `json:"order_number,omitempty"`
	Pricing     *Pricing   `json:"pricing,omitempty"`
	PlacedAt    *time.Time `json:"placed_at,omitempty"`
	Errors      []string   `json:"errors,omitempty"`
}

// GetState retrieves the owner's checkout state
func (s *Service) GetState(ctx context.Context, ownerID string) (*State, error) {
	return s.load(ctx, ownerID)
}

// SetShippingAddress stores the shipping address
func (s *Service) SetShippingAddress(ctx context.Context, ownerID string, address *Address) (*State, error) {
	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	state.ShippingAddress = address
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetShippingMethod selects a shipping method from the fixed catalog. An
// empty ID clears the selection.
func (s *Service) SetShippingMethod(ctx context.Context, ownerID string, methodID string) (*State, error) {
	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if methodID == "" {
		state.ShippingMethod = nil
	} else {
		method, ok := ShippingMethodByID(methodID)
		if !ok {
			return nil, fmt.Errorf("shipping method not found")
		}
		state.ShippingMethod = &method
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetPaymentMethod selects a payment method from the fixed catalog
func (s *Service) SetPaymentMethod(ctx context.Context, ownerID string, methodID string) (*State, error) {
	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if methodID == "" {
		state.PaymentMethod = ""
	} else {
		if _, ok := PaymentMethodByID(methodID); !ok {
			return nil, fmt.Errorf("payment method not found")
		}
		state.PaymentMethod = methodID
	}

	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// SetNotes stores free-text order notes
func (s *Service) SetNotes(ctx context.Context, ownerID string, notes string) (*State, error) {
	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	state.Notes = notes
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// ApplyDiscountCode validates a discount code against the current cart
// subtotal and stores it in the checkout state.
func (s *Service) ApplyDiscountCode(ctx context.Context, ownerID string, code string) (*State, error) {
	cartResponse, err := s.cartService.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}
	if len(cartResponse.Items) == 0 {
		return nil, fmt.Errorf("cart is empty")
	}

	discount, ok := discountByCode(code)
	if !ok {
		return nil, fmt.Errorf("invalid discount code")
	}
	if cartResponse.Totals.SubTotal < discount.MinOrder {
		return nil, fmt.Errorf("minimum order of %d required for this code", discount.MinOrder)
	}

	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	state.Discount = &discount
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// RemoveDiscount clears the applied discount
func (s *Service) RemoveDiscount(ctx context.Context, ownerID string) (*State, error) {
	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	state.Discount = nil
	if err := s.save(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// GetSummary combines the cart, the checkout selections, and the derived
// price breakdown.
func (s *Service) GetSummary(ctx context.Context, ownerID string) (*Summary, error) {
	cartResponse, err := s.cartService.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Cart:           cartResponse,
		State:          state,
		Pricing:        ComputePricing(cartResponse.Totals.SubTotal, state.ShippingMethod, state.Discount),
		PaymentMethods: PaymentMethods(),
	}, nil
}

// PlaceOrder validates the checkout state and simulates order placement.
// Validation failures return a result carrying the errors and no order
// number; the state is left untouched so the attempt can be repeated. On
// success the cart and checkout state are cleared.
func (s *Service) PlaceOrder(ctx context.Context, ownerID string) (*PlacementResult, error) {
	cartResponse, err := s.cartService.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	state, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	result := &PlacementResult{}
	if state.ShippingAddress == nil {
		result.Errors = append(result.Errors, "shipping address is required")
	}
	if state.ShippingMethod == nil {
		result.Errors = append(result.Errors, "shipping method is required")
	}
	if state.PaymentMethod == "" {
		result.Errors = append(result.Errors, "payment method is required")
	}
	if len(cartResponse.Items) == 0 {
		result.Errors = append(result.Errors, "cart is empty")
	}
	if len(result.Errors) > 0 {
		return result, nil
	}

	pricing := ComputePricing(cartResponse.Totals.SubTotal, state.ShippingMethod, state.Discount)

	// Simulated payment round-trip; cancellable through the request context
	if s.placementDelay > 0 {
		timer := time.NewTimer(s.placementDelay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := time.Now().UTC()
	result.Placed = true
	result.OrderNumber = generateOrderNumber(now)
	result.Pricing = &pricing
	result.PlacedAt = &now

	s.log.WithFields(logrus.Fields{
		"owner_id":     ownerID,
		"order_number": result.OrderNumber,
		"total_amount": pricing.TotalAmount,
	}).Info("order placed")

	// Placement ends the session: drop the cart and the checkout state
	if err := s.cartService.Clear(ctx, ownerID); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("failed to clear cart after placement")
	}
	if err := s.store.Del(ctx, checkoutKey(ownerID)); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("failed to clear checkout state after placement")
	}

	return result, nil
}

func (s *Service) load(ctx context.Context, ownerID string) (*State, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("owner ID required for checkout")
	}

	data, err := s.store.Get(ctx, checkoutKey(ownerID))
	if err == kv.ErrNotFound {
		return NewState(ownerID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout state: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		s.log.WithError(err).WithField("owner_id", ownerID).Warn("unreadable checkout state, resetting to empty")
		return NewState(ownerID), nil
	}
	if state.SchemaVersion != SchemaVersion {
		s.log.WithFields(logrus.Fields{
			"owner_id": ownerID,
			"found":    state.SchemaVersion,
			"expected": SchemaVersion,
		}).Warn("checkout schema version mismatch, resetting to empty")
		return NewState(ownerID), nil
	}

	return &state, nil
}

func (s *Service) save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize checkout state: %w", err)
	}
	return s.store.Set(ctx, checkoutKey(state.OwnerID), string(data), s.ttl)
}

// discountByCode looks up the fixed discount code catalog
func discountByCode(code string) (Discount, bool) {
	codes := map[string]Discount{
		"HEMAT10": {
			Code:        "HEMAT10",
			Type:        DiscountTypePercentage,
			Value:       10,
			MaxDiscount: 20000,
			MinOrder:    100000,
		},
		"WELCOME15": {
			Code:        "WELCOME15",
			Type:        DiscountTypePercentage,
			Value:       15,
			MaxDiscount: 30000,
		},
		"POTONGAN50": {
			Code:     "POTONGAN50",
			Type:     DiscountTypeFixed,
			Value:    50000,
			MinOrder: 250000,
		},
	}

	discount, ok := codes[strings.ToUpper(code)]
	return discount, ok
}

// generateOrderNumber builds an order identifier: ORD-YYYYMMDD-XXXXXXXX
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(uuid.New().String()[:8]))
}

func checkoutKey(ownerID string) string {
	return fmt.Sprintf("checkout:%s", ownerID)
}
