// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/domain/user"
	"github.com/your-org/storefront-backend/internal/domain/wishlist"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/kv"
	"github.com/your-org/storefront-backend/internal/pkg/logger"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes. Services are built once here and
// shared across handlers.
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	log := logger.New(cfg)
	store := kv.NewRedisStore(redisClient)

	userService := user.NewService(db, cfg)
	productService := product.NewService(db, cfg)
	cartService := cart.NewService(store, cfg, log)
	wishlistService := wishlist.NewService(store, cartService, cfg, log)
	checkoutService := checkout.NewService(store, cartService, cfg, log)

	authHandler := handlers.NewAuthHandler(userService, cfg)
	productHandler := handlers.NewProductHandler(productService, cfg)
	cartHandler := handlers.NewCartHandler(cartService, productService, cfg)
	wishlistHandler := handlers.NewWishlistHandler(wishlistService, productService, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, cfg)

	setupAuthRoutes(rg, authHandler, cfg)
	setupProductRoutes(rg, productHandler, cfg)
	setupCartRoutes(rg, cartHandler, cfg)
	setupWishlistRoutes(rg, wishlistHandler, cfg)
	setupCheckoutRoutes(rg, checkoutHandler, cfg)
	setupAdminRoutes(rg, productHandler, cfg)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler, cfg *config.Config) {
	auth := rg.Group("/auth")
	{
		// Public auth endpoints
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", h.GetProfile)
		}
	}
}

// setupProductRoutes sets up catalog routes
func setupProductRoutes(rg *gin.RouterGroup, h *handlers.ProductHandler, cfg *config.Config) {
	products := rg.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/:id", h.GetProduct)
		products.GET("/slug/:slug", h.GetProductBySlug)
	}
}

// setupCartRoutes sets up cart routes. Optional auth lets guests and
// signed-in users share the same endpoints.
func setupCartRoutes(rg *gin.RouterGroup, h *handlers.CartHandler, cfg *config.Config) {
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", h.GetCart)
		cartGroup.GET("/count", h.GetCartCount)
		cartGroup.POST("/items", h.AddToCart)
		cartGroup.PUT("/items/:id", h.UpdateCartItem)
		cartGroup.DELETE("/items/:id", h.RemoveFromCart)
		cartGroup.DELETE("", h.ClearCart)
		cartGroup.POST("/merge", h.MergeGuestCart)
	}
}

// setupWishlistRoutes sets up wishlist routes
func setupWishlistRoutes(rg *gin.RouterGroup, h *handlers.WishlistHandler, cfg *config.Config) {
	wishlistGroup := rg.Group("/wishlist")
	wishlistGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		wishlistGroup.GET("", h.GetWishlist)
		wishlistGroup.GET("/count", h.GetWishlistCount)
		wishlistGroup.POST("/items", h.AddToWishlist)
		wishlistGroup.GET("/items/:id", h.CheckWishlist)
		wishlistGroup.DELETE("/items/:id", h.RemoveFromWishlist)
		wishlistGroup.POST("/items/:id/move-to-cart", h.MoveToCart)
		wishlistGroup.DELETE("", h.ClearWishlist)
	}
}

// setupCheckoutRoutes sets up checkout routes. Guests can check out too,
// so auth stays optional.
func setupCheckoutRoutes(rg *gin.RouterGroup, h *handlers.CheckoutHandler, cfg *config.Config) {
	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		checkoutGroup.GET("", h.GetCheckout)
		checkoutGroup.GET("/summary", h.GetSummary)
		checkoutGroup.GET("/shipping-methods", h.ListShippingMethods)
		checkoutGroup.GET("/payment-methods", h.ListPaymentMethods)
		checkoutGroup.PUT("/shipping-address", h.SetShippingAddress)
		checkoutGroup.PUT("/shipping-method", h.SetShippingMethod)
		checkoutGroup.PUT("/payment-method", h.SetPaymentMethod)
		checkoutGroup.PUT("/notes", h.SetNotes)
		checkoutGroup.POST("/discount", h.ApplyDiscount)
		checkoutGroup.DELETE("/discount", h.RemoveDiscount)
		checkoutGroup.POST("/place-order", h.PlaceOrder)
	}
}

// setupAdminRoutes sets up admin catalog management routes
func setupAdminRoutes(rg *gin.RouterGroup, productHandler *handlers.ProductHandler, cfg *config.Config) {
	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		products := admin.Group("/products")
		{
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}
	}
}
