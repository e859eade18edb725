package checkout

import (
	"context"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
)

func newTestService(placementDelay time.Duration) (*Service, *cart.Service, kv.Store) {
	cfg := &config.Config{
		Checkout: config.CheckoutConfig{
			SessionTTL:     time.Hour,
			PlacementDelay: placementDelay,
		},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := kv.NewMemoryStore()
	cartService := cart.NewService(store, cfg, log)
	return NewService(store, cartService, cfg, log), cartService, store
}

func testAddress() *Address {
	return &Address{
		FirstName:    "Ayu",
		AddressLine1: "Jl. Kemang Raya 12",
		City:         "Jakarta",
		PostalCode:   "12730",
		Country:      "ID",
	}
}

func fillCart(t *testing.T, cartService *cart.Service, ownerID string, price int64, quantity int) {
	t.Helper()
	prod := &product.Product{ID: 1, Name: "Woven Rattan Tote", Price: price}
	_, err := cartService.AddItem(context.Background(), ownerID, prod, quantity, "", "")
	require.NoError(t, err)
}

func TestService_SetShippingMethod(t *testing.T) {
	svc, _, _ := newTestService(0)
	ctx := context.Background()

	state, err := svc.SetShippingMethod(ctx, "session:guest", "express")
	require.NoError(t, err)
	require.NotNil(t, state.ShippingMethod)
	assert.Equal(t, int64(50000), state.ShippingMethod.Price)

	// Empty ID clears the selection
	state, err = svc.SetShippingMethod(ctx, "session:guest", "")
	require.NoError(t, err)
	assert.Nil(t, state.ShippingMethod)

	_, err = svc.SetShippingMethod(ctx, "session:guest", "teleport")
	assert.Error(t, err)
}

func TestService_SetPaymentMethod(t *testing.T) {
	svc, _, _ := newTestService(0)
	ctx := context.Background()

	state, err := svc.SetPaymentMethod(ctx, "session:guest", "ewallet")
	require.NoError(t, err)
	assert.Equal(t, "ewallet", state.PaymentMethod)

	_, err = svc.SetPaymentMethod(ctx, "session:guest", "barter")
	assert.Error(t, err)
}

func TestService_StatePersistsAcrossLoads(t *testing.T) {
	svc, _, _ := newTestService(0)
	ctx := context.Background()

	_, err := svc.SetShippingAddress(ctx, "session:guest", testAddress())
	require.NoError(t, err)
	_, err = svc.SetNotes(ctx, "session:guest", "please gift wrap")
	require.NoError(t, err)

	state, err := svc.GetState(ctx, "session:guest")
	require.NoError(t, err)
	require.NotNil(t, state.ShippingAddress)
	assert.Equal(t, "Jakarta", state.ShippingAddress.City)
	assert.Equal(t, "please gift wrap", state.Notes)
}

func TestService_ApplyDiscountCode(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	ctx := context.Background()
	fillCart(t, cartService, "session:guest", 300000, 1)

	state, err := svc.ApplyDiscountCode(ctx, "session:guest", "hemat10")
	require.NoError(t, err)
	require.NotNil(t, state.Discount)
	assert.Equal(t, "HEMAT10", state.Discount.Code)

	summary, err := svc.GetSummary(ctx, "session:guest")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), summary.Pricing.DiscountAmount)
}

func TestService_ApplyDiscountCodeEmptyCart(t *testing.T) {
	svc, _, _ := newTestService(0)

	_, err := svc.ApplyDiscountCode(context.Background(), "session:guest", "HEMAT10")
	assert.Error(t, err)
}

func TestService_ApplyDiscountCodeBelowMinimum(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	fillCart(t, cartService, "session:guest", 95000, 1)

	_, err := svc.ApplyDiscountCode(context.Background(), "session:guest", "HEMAT10")
	assert.Error(t, err)
}

func TestService_ApplyDiscountCodeUnknown(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	fillCart(t, cartService, "session:guest", 300000, 1)

	_, err := svc.ApplyDiscountCode(context.Background(), "session:guest", "BOGUS")
	assert.Error(t, err)
}

func TestService_RemoveDiscount(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	ctx := context.Background()
	fillCart(t, cartService, "session:guest", 300000, 1)

	_, err := svc.ApplyDiscountCode(ctx, "session:guest", "HEMAT10")
	require.NoError(t, err)

	state, err := svc.RemoveDiscount(ctx, "session:guest")
	require.NoError(t, err)
	assert.Nil(t, state.Discount)
}

func TestService_GetSummary(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	ctx := context.Background()
	fillCart(t, cartService, "session:guest", 250000, 2)

	_, err := svc.SetShippingMethod(ctx, "session:guest", "regular")
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, "session:guest")
	require.NoError(t, err)

	assert.Equal(t, int64(500000), summary.Pricing.Subtotal)
	assert.Equal(t, int64(30000), summary.Pricing.ShippingCost)
	assert.Equal(t, int64(530000), summary.Pricing.TotalAmount)
	assert.Len(t, summary.PaymentMethods, 3)
}

func TestService_PlaceOrderValidationFailure(t *testing.T) {
	svc, cartService, _ := newTestService(0)
	ctx := context.Background()
	fillCart(t, cartService, "session:guest", 250000, 1)

	_, err := svc.SetShippingMethod(ctx, "session:guest", "regular")
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, "session:guest", "cod")
	require.NoError(t, err)

	// No shipping address: placement fails but does not error
	result, err := svc.PlaceOrder(ctx, "session:guest")
	require.NoError(t, err)

	assert.False(t, result.Placed)
	assert.Empty(t, result.OrderNumber)
	assert.Contains(t, result.Errors, "shipping address is required")

	// State survives the failed attempt
	state, err := svc.GetState(ctx, "session:guest")
	require.NoError(t, err)
	assert.NotNil(t, state.ShippingMethod)

	cartResponse, err := cartService.Get(ctx, "session:guest")
	require.NoError(t, err)
	assert.NotEmpty(t, cartResponse.Items)
}

func TestService_PlaceOrderEmptyCart(t *testing.T) {
	svc, _, _ := newTestService(0)
	ctx := context.Background()

	_, err := svc.SetShippingAddress(ctx, "session:guest", testAddress())
	require.NoError(t, err)
	_, err = svc.SetShippingMethod(ctx, "session:guest", "regular")
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, "session:guest", "cod")
	require.NoError(t, err)

	result, err := svc.PlaceOrder(ctx, "session:guest")
	require.NoError(t, err)

	assert.False(t, result.Placed)
	assert.Contains(t, result.Errors, "cart is empty")
}

func TestService_PlaceOrderSuccess(t *testing.T) {
	svc, cartService, _ := newTestService(time.Millisecond)
	ctx := context.Background()
	fillCart(t, cartService, "session:guest", 250000, 2)

	_, err := svc.SetShippingAddress(ctx, "session:guest", testAddress())
	require.NoError(t, err)
	_, err = svc.SetShippingMethod(ctx, "session:guest", "regular")
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, "session:guest", "bank_transfer")
	require.NoError(t, err)

	result, err := svc.PlaceOrder(ctx, "session:guest")
	require.NoError(t, err)

	assert.True(t, result.Placed)
	assert.Empty(t, result.Errors)
	assert.Regexp(t, regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`), result.OrderNumber)
	require.NotNil(t, result.Pricing)
	assert.Equal(t, int64(530000), result.Pricing.TotalAmount)
	require.NotNil(t, result.PlacedAt)

	// Placement clears the cart and the checkout state
	cartResponse, err := cartService.Get(ctx, "session:guest")
	require.NoError(t, err)
	assert.Empty(t, cartResponse.Items)

	state, err := svc.GetState(ctx, "session:guest")
	require.NoError(t, err)
	assert.Nil(t, state.ShippingAddress)
	assert.Nil(t, state.ShippingMethod)
	assert.Empty(t, state.PaymentMethod)
}

func TestService_PlaceOrderCancelled(t *testing.T) {
	svc, cartService, _ := newTestService(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	fillCart(t, cartService, "session:guest", 250000, 1)

	_, err := svc.SetShippingAddress(ctx, "session:guest", testAddress())
	require.NoError(t, err)
	_, err = svc.SetShippingMethod(ctx, "session:guest", "regular")
	require.NoError(t, err)
	_, err = svc.SetPaymentMethod(ctx, "session:guest", "cod")
	require.NoError(t, err)

	cancel()
	_, err = svc.PlaceOrder(ctx, "session:guest")
	assert.ErrorIs(t, err, context.Canceled)

	// Nothing was cleared
	cartResponse, err := cartService.Get(context.Background(), "session:guest")
	require.NoError(t, err)
	assert.NotEmpty(t, cartResponse.Items)
}
