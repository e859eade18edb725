package cart

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
)

func newTestService() (*Service, kv.Store) {
	cfg := &config.Config{
		Checkout: config.CheckoutConfig{SessionTTL: time.Hour},
	}
	log := logrus.New()
	log.SetOutput(io.Discard)

	store := kv.NewMemoryStore()
	return NewService(store, cfg, log), store
}

func testProduct(id uint, price int64) *product.Product {
	return &product.Product{
		ID:    id,
		Name:  gofakeit.ProductName(),
		Price: price,
		Image: gofakeit.URL(),
	}
}

func TestService_GetEmptyCart(t *testing.T) {
	svc, _ := newTestService()

	response, err := svc.Get(context.Background(), "session:guest")
	require.NoError(t, err)

	assert.Empty(t, response.Items)
	assert.Equal(t, Totals{}, response.Totals)
}

func TestService_AddItemDefaultsQuantity(t *testing.T) {
	svc, _ := newTestService()

	response, err := svc.AddItem(context.Background(), "session:guest", testProduct(1, 95000), 0, "", "")
	require.NoError(t, err)

	require.Len(t, response.Items, 1)
	assert.Equal(t, 1, response.Items[0].Quantity)
}

func TestService_AddItemPersists(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session:guest", testProduct(1, 95000), 2, "blue", "")
	require.NoError(t, err)

	response, err := svc.Get(ctx, "session:guest")
	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, 2, response.Items[0].Quantity)
	assert.Equal(t, int64(190000), response.Totals.SubTotal)
}

func TestService_AddItemMergesVariant(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.AddItem(ctx, "session:guest", prod, 1, "blue", "")
	require.NoError(t, err)
	response, err := svc.AddItem(ctx, "session:guest", prod, 2, "blue", "")
	require.NoError(t, err)

	require.Len(t, response.Items, 1)
	assert.Equal(t, 3, response.Items[0].Quantity)
}

func TestService_UpdateQuantityZeroRemovesProduct(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.AddItem(ctx, "session:guest", prod, 1, "blue", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "session:guest", prod, 1, "green", "")
	require.NoError(t, err)

	// Quantity zero behaves exactly like removal, across every variant
	response, err := svc.UpdateQuantity(ctx, "session:guest", 1, "blue", "", 0)
	require.NoError(t, err)
	assert.Empty(t, response.Items)
}

func TestService_UpdateQuantityMissingLine(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateQuantity(context.Background(), "session:guest", 1, "", "", 2)
	assert.Error(t, err)
}

func TestService_RemoveLineKeepsOtherVariants(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.AddItem(ctx, "session:guest", prod, 1, "blue", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "session:guest", prod, 1, "green", "")
	require.NoError(t, err)

	response, err := svc.RemoveLine(ctx, "session:guest", 1, "blue", "")
	require.NoError(t, err)
	require.Len(t, response.Items, 1)
	assert.Equal(t, "green", response.Items[0].Color)
}

func TestService_Clear(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session:guest", testProduct(1, 95000), 2, "", "")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx, "session:guest"))

	response, err := svc.Get(ctx, "session:guest")
	require.NoError(t, err)
	assert.Empty(t, response.Items)
}

func TestService_Count(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "session:guest", testProduct(1, 95000), 2, "", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "session:guest", testProduct(2, 285000), 3, "", "")
	require.NoError(t, err)

	count, err := svc.Count(ctx, "session:guest")
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestService_UnreadableStateResetsToEmpty(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:session:guest", "{not json", time.Hour))

	response, err := svc.Get(ctx, "session:guest")
	require.NoError(t, err)
	assert.Empty(t, response.Items)
}

func TestService_SchemaVersionMismatchResetsToEmpty(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	stale := `{"schema_version":99,"owner_id":"session:guest","items":[{"product_id":1,"quantity":1}]}`
	require.NoError(t, store.Set(ctx, "cart:session:guest", stale, time.Hour))

	response, err := svc.Get(ctx, "session:guest")
	require.NoError(t, err)
	assert.Empty(t, response.Items)
}

func TestService_MergeIntoUser(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()
	prod := testProduct(1, 95000)

	_, err := svc.AddItem(ctx, "session:guest", prod, 2, "blue", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user:7", prod, 1, "blue", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "user:7", testProduct(2, 285000), 1, "", "")
	require.NoError(t, err)

	response, err := svc.MergeIntoUser(ctx, "session:guest", "user:7")
	require.NoError(t, err)

	require.Len(t, response.Items, 2)
	assert.Equal(t, 4, response.Totals.TotalQuantity)

	// Guest cart is gone after the merge
	_, err = store.Get(ctx, "cart:session:guest")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}
