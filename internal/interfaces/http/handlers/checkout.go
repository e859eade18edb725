// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		config:          cfg,
	}
}

// GetCheckout handles GET /checkout - the owner's saved selections
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	state, err := h.checkoutService.GetState(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout state",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout state retrieved successfully",
		"data":    state,
	})
}

// GetSummary handles GET /checkout/summary - cart, selections, and the
// derived price breakdown in one response
func (h *CheckoutHandler) GetSummary(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	summary, err := h.checkoutService.GetSummary(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve checkout summary",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout summary retrieved successfully",
		"data":    summary,
	})
}

// ListShippingMethods handles GET /checkout/shipping-methods
func (h *CheckoutHandler) ListShippingMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping methods retrieved successfully",
		"data":    checkout.ShippingMethods(),
	})
}

// ListPaymentMethods handles GET /checkout/payment-methods
func (h *CheckoutHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment methods retrieved successfully",
		"data":    checkout.PaymentMethods(),
	})
}

// SetShippingAddress handles PUT /checkout/shipping-address
func (h *CheckoutHandler) SetShippingAddress(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	var address checkout.Address
	if err := c.ShouldBindJSON(&address); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid address data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.checkoutService.SetShippingAddress(c.Request.Context(), ownerID, &address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save shipping address",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping address saved successfully",
		"data":    state,
	})
}

// SetShippingMethodRequest represents shipping method selection
type SetShippingMethodRequest struct {
	MethodID string `json:"method_id"`
}

// SetShippingMethod handles PUT /checkout/shipping-method. An empty
// method_id clears the selection.
func (h *CheckoutHandler) SetShippingMethod(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	var req SetShippingMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.checkoutService.SetShippingMethod(c.Request.Context(), ownerID, req.MethodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping method saved successfully",
		"data":    state,
	})
}

// SetPaymentMethodRequest represents payment method selection
type SetPaymentMethodRequest struct {
	MethodID string `json:"method_id"`
}

// SetPaymentMethod handles PUT /checkout/payment-method
func (h *CheckoutHandler) SetPaymentMethod(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	var req SetPaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.checkoutService.SetPaymentMethod(c.Request.Context(), ownerID, req.MethodID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment method saved successfully",
		"data":    state,
	})
}

// SetNotesRequest represents order notes
type SetNotesRequest struct {
	Notes string `json:"notes"`
}

// SetNotes handles PUT /checkout/notes
func (h *CheckoutHandler) SetNotes(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	var req SetNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.checkoutService.SetNotes(c.Request.Context(), ownerID, req.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to save order notes",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Order notes saved successfully",
		"data":    state,
	})
}

// ApplyDiscountRequest represents a discount code submission
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyDiscount handles POST /checkout/discount
func (h *CheckoutHandler) ApplyDiscount(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	state, err := h.checkoutService.ApplyDiscountCode(c.Request.Context(), ownerID, req.Code)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount applied successfully",
		"data":    state,
	})
}

// RemoveDiscount handles DELETE /checkout/discount
func (h *CheckoutHandler) RemoveDiscount(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	state, err := h.checkoutService.RemoveDiscount(c.Request.Context(), ownerID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove discount",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount removed successfully",
		"data":    state,
	})
}

// PlaceOrder handles POST /checkout/place-order. Validation failures
// come back as 422 with the list of problems; a placed order returns the
// order number and final pricing.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	ownerID := resolveOwnerID(c, h.config)

	result, err := h.checkoutService.PlaceOrder(c.Request.Context(), ownerID)
	if err != nil {
		if c.Request.Context().Err() != nil {
			c.JSON(http.StatusRequestTimeout, gin.H{
				"error": "Order placement was cancelled",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to place order",
		})
		return
	}

	if !result.Placed {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Checkout validation failed",
			"validation_errors": result.Errors,
			"data":              result,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data":    result,
	})
}
