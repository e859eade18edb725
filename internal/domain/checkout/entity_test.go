package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingMethodByID(t *testing.T) {
	method, ok := ShippingMethodByID("regular")
	require.True(t, ok)
	assert.Equal(t, int64(30000), method.Price)
	assert.Equal(t, "5-7 business days", method.EstimatedDays)

	_, ok = ShippingMethodByID("drone")
	assert.False(t, ok)
}

func TestPaymentMethodByID(t *testing.T) {
	method, ok := PaymentMethodByID("cod")
	require.True(t, ok)
	assert.Equal(t, "Cash on Delivery", method.Name)

	_, ok = PaymentMethodByID("crypto")
	assert.False(t, ok)
}

func TestDiscount_PercentageCapped(t *testing.T) {
	d := Discount{Type: DiscountTypePercentage, Value: 10, MaxDiscount: 20000}

	// 10% of 300000 is 30000, capped to 20000
	assert.Equal(t, int64(20000), d.Amount(300000))
}

func TestDiscount_PercentageUnderCap(t *testing.T) {
	d := Discount{Type: DiscountTypePercentage, Value: 10, MaxDiscount: 20000}

	assert.Equal(t, int64(15000), d.Amount(150000))
}

func TestDiscount_PercentageUncapped(t *testing.T) {
	d := Discount{Type: DiscountTypePercentage, Value: 15}

	assert.Equal(t, int64(45000), d.Amount(300000))
}

func TestDiscount_FixedClampedToSubtotal(t *testing.T) {
	d := Discount{Type: DiscountTypeFixed, Value: 50000}

	// A fixed discount never exceeds what is actually owed
	assert.Equal(t, int64(10000), d.Amount(10000))
	assert.Equal(t, int64(50000), d.Amount(250000))
}

func TestDiscount_ZeroSubtotal(t *testing.T) {
	d := Discount{Type: DiscountTypeFixed, Value: 50000}

	assert.Zero(t, d.Amount(0))
}

func TestComputePricing(t *testing.T) {
	method, ok := ShippingMethodByID("regular")
	require.True(t, ok)

	pricing := ComputePricing(500000, &method, nil)

	assert.Equal(t, Pricing{
		Subtotal:     500000,
		ShippingCost: 30000,
		TotalAmount:  530000,
	}, pricing)
}

func TestComputePricing_NoSelections(t *testing.T) {
	pricing := ComputePricing(95000, nil, nil)

	assert.Equal(t, Pricing{Subtotal: 95000, TotalAmount: 95000}, pricing)
}

func TestComputePricing_WithDiscount(t *testing.T) {
	method, ok := ShippingMethodByID("express")
	require.True(t, ok)
	discount := &Discount{Type: DiscountTypePercentage, Value: 10, MaxDiscount: 20000}

	pricing := ComputePricing(300000, &method, discount)

	assert.Equal(t, Pricing{
		Subtotal:       300000,
		ShippingCost:   50000,
		DiscountAmount: 20000,
		TotalAmount:    330000,
	}, pricing)
}

func TestComputePricing_TotalFlooredAtZero(t *testing.T) {
	discount := &Discount{Type: DiscountTypeFixed, Value: 50000}

	pricing := ComputePricing(10000, nil, discount)

	assert.Equal(t, int64(10000), pricing.DiscountAmount)
	assert.Zero(t, pricing.TotalAmount)
}
