package wishlist

import (
	"context"
	"io"
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

func newTestService() (*Service, *cart.Service) {
	cfg := &config.Config{
		Checkout: config.CheckoutConfig{SessionTTL: time.Hour},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := kv.NewMemoryStore()
	cartService := cart.NewService(store, cfg, log)
	return NewService(store, cartService, cfg, log), cartService
}

func testProduct(id uint, price int64) *product.Product {
	return &product.Product{
		ID:    id,
		Name:  "Glazed Ceramic Mug",
		Price: price,
	}
}

func TestService_AddAndGet(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "session:guest", testProduct(1, 95000))
	require.NoError(t, err)

	response, err := svc.Get(ctx, "session:guest")
	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, uint(1), response.Items[0].ProductID)
	assert.Equal(t, 1, response.Count)
}

func TestService_AddIsIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.Add(ctx, "session:guest", prod)
	require.NoError(t, err)
	response, err := svc.Add(ctx, "session:guest", prod)
	require.NoError(t, err)

	assert.Len(t, response.Items, 1)
}

func TestService_Remove(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "session:guest", testProduct(1, 95000))
	require.NoError(t, err)

	response, err := svc.Remove(ctx, "session:guest", 1)
	require.NoError(t, err)
	assert.Empty(t, response.Items)

	_, err = svc.Remove(ctx, "session:guest", 1)
	assert.Error(t, err)
}

func TestService_Contains(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "session:guest", testProduct(1, 95000))
	require.NoError(t, err)

	saved, err := svc.Contains(ctx, "session:guest", 1)
	require.NoError(t, err)
	assert.True(t, saved)

	saved, err = svc.Contains(ctx, "session:guest", 2)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestService_Clear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Add(ctx, "session:guest", testProduct(1, 95000))
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, "session:guest"))

	count, err := svc.Count(ctx, "session:guest")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestService_MoveToCart(t *testing.T) {
	svc, cartService := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.Add(ctx, "session:guest", prod)
	require.NoError(t, err)

	response, err := svc.MoveToCart(ctx, "session:guest", prod, 2, "blue", "")
	require.NoError(t, err)
	assert.Empty(t, response.Items)

	cartResponse, err := cartService.Get(ctx, "session:guest")
	require.NoError(t, err)
	require.Len(t, cartResponse.Items, 1)
	assert.Equal(t, 2, cartResponse.Items[0].Quantity)
	assert.Equal(t, "blue", cartResponse.Items[0].Color)
}

func TestService_MoveToCartMissingEntry(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.MoveToCart(context.Background(), "session:guest", testProduct(1, 95000), 1, "", "")
	assert.Error(t, err)
}
