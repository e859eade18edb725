// internal/domain/checkout/entity.go
package checkout

import (
	"time"
)

// SchemaVersion is written into every persisted checkout state. A stored
// state with a different version is reset to empty on load.
const SchemaVersion = 1

// ShippingMethod represents a shipping option from the fixed catalog
type ShippingMethod struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         int64  `json:"price"` // Flat price in minor currency units
	EstimatedDays string `json:"estimated_days"`
}

// ShippingMethods returns the fixed list of available shipping methods.
// Methods are not user-defined.
func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{
		{
			ID:            "regular",
			Name:          "Regular Shipping",
			Description:   "Standard courier delivery",
			Price:         30000,
			EstimatedDays: "5-7 business days",
		},
		{
			ID:            "express",
			Name:          "Express Shipping",
			Description:   "Priority courier delivery",
			Price:         50000,
			EstimatedDays: "2-3 business days",
		},
		{
			ID:            "cargo",
			Name:          "Cargo Shipping",
			Description:   "Economy shipping for bulky items",
			Price:         15000,
			EstimatedDays: "7-14 business days",
		},
	}
}

// ShippingMethodByID looks up a shipping method in the fixed catalog
func ShippingMethodByID(id string) (ShippingMethod, bool) {
	for _, method := range ShippingMethods() {
		if method.ID == id {
			return method, true
		}
	}
	return ShippingMethod{}, false
}

// PaymentMethod represents an available payment method
type PaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PaymentMethods returns the fixed list of accepted payment methods
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		{
			ID:          "bank_transfer",
			Name:        "Bank Transfer",
			Description: "Manual transfer to our store account",
		},
		{
			ID:          "ewallet",
			Name:        "E-Wallet",
			Description: "Pay with your preferred digital wallet",
		},
		{
			ID:          "cod",
			Name:        "Cash on Delivery",
			Description: "Pay cash when your order is delivered",
		},
	}
}

// PaymentMethodByID looks up a payment method in the fixed catalog
func PaymentMethodByID(id string) (PaymentMethod, bool) {
	for _, method := range PaymentMethods() {
		if method.ID == id {
			return method, true
		}
	}
	return PaymentMethod{}, false
}

// DiscountType distinguishes percentage from fixed-amount discounts
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// Discount represents an applied discount
type Discount struct {
	Code        string       `json:"code"`
	Type        DiscountType `json:"type"`
	Value       int64        `json:"value"`                  // Percentage points or fixed amount
	MaxDiscount int64        `json:"max_discount,omitempty"` // Cap for percentage discounts, 0 = uncapped
	MinOrder    int64        `json:"min_order,omitempty"`    // Minimum subtotal to redeem the code
}

// Amount computes the discount against a subtotal. Percentage discounts are
// capped at MaxDiscount when set; either kind is clamped so the result
// never exceeds the subtotal and is never negative.
func (d Discount) Amount(subtotal int64) int64 {
	if subtotal <= 0 {
		return 0
	}

	var amount int64
	switch d.Type {
	case DiscountTypePercentage:
		amount = subtotal * d.Value / 100
		if d.MaxDiscount > 0 && amount > d.MaxDiscount {
			amount = d.MaxDiscount
		}
	case DiscountTypeFixed:
		amount = d.Value
	}

	if amount > subtotal {
		amount = subtotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

// Address represents the shipping address collected during checkout
type Address struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country" binding:"required"`
	Phone        string `json:"phone"`
}

// State represents in-progress checkout selections for one owner
type State struct {
	SchemaVersion   int             `json:"schema_version"`
	OwnerID         string          `json:"owner_id"`
	ShippingAddress *Address        `json:"shipping_address,omitempty"`
	ShippingMethod  *ShippingMethod `json:"shipping_method,omitempty"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Discount        *Discount       `json:"discount,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// NewState creates an empty checkout state for the given owner
func NewState(ownerID string) *State {
	now := time.Now().UTC()
	return &State{
		SchemaVersion: SchemaVersion,
		OwnerID:       ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Pricing represents the derived checkout price breakdown
type Pricing struct {
	Subtotal       int64 `json:"subtotal"`
	ShippingCost   int64 `json:"shipping_cost"`
	DiscountAmount int64 `json:"discount_amount"`
	TotalAmount    int64 `json:"total_amount"`
}

// ComputePricing derives the price breakdown from the cart subtotal and the
// current selections. Shipping cost is zero while no method is selected.
// The total is floored at zero.
func ComputePricing(subtotal int64, method *ShippingMethod, discount *Discount) Pricing {
	pricing := Pricing{Subtotal: subtotal}

	if method != nil {
		pricing.ShippingCost = method.Price
	}
	if discount != nil {
		pricing.DiscountAmount = discount.Amount(subtotal)
	}

	pricing.TotalAmount = pricing.Subtotal + pricing.ShippingCost - pricing.DiscountAmount
	if pricing.TotalAmount < 0 {
		pricing.TotalAmount = 0
	}
	return pricing
}
