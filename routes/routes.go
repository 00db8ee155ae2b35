package routes

import (
	"emporia-backend/handlers"
	"emporia-backend/middleware"
	"emporia-backend/payment"
	"emporia-backend/services"
	"emporia-backend/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storageClient storage.StorageClient, paymentClient payment.Client) {
	cartService := services.NewCartService(db)

	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	productHandler := &handlers.ProductHandler{DB: db, Carts: cartService, Storage: storageClient}
	categoryHandler := &handlers.CategoryHandler{DB: db}
	cartHandler := &handlers.CartHandler{Carts: cartService}
	addressHandler := &handlers.AddressHandler{DB: db}
	paymentHandler := &handlers.PaymentHandler{Payments: paymentClient}

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// Public product routes
		api.GET("/products", productHandler.GetProducts)
		api.GET("/products/:id", productHandler.GetProduct)

		// Public category routes
		api.GET("/categories", categoryHandler.GetCategories)
		api.GET("/categories/:id", categoryHandler.GetCategory)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		// User profile
		protected.GET("/auth/profile", authHandler.GetProfile)

		// Cart routes
		protected.POST("/cart", cartHandler.AddToCart)
		protected.PUT("/cart/products/:productId", cartHandler.UpdateCartItem)
		protected.GET("/carts/:cartId", cartHandler.GetCart)
		protected.DELETE("/carts/:cartId/products/:productId", cartHandler.RemoveFromCart)

		// Address routes
		protected.GET("/addresses", addressHandler.GetAddresses)
		protected.GET("/addresses/:id", addressHandler.GetAddress)
		protected.POST("/addresses", addressHandler.CreateAddress)
		protected.PUT("/addresses/:id", addressHandler.UpdateAddress)
		protected.DELETE("/addresses/:id", addressHandler.DeleteAddress)

		// Payment routes
		protected.POST("/payments", paymentHandler.CreateIntent)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Product management
		admin.POST("/products", productHandler.CreateProduct)
		admin.PUT("/products/:id", productHandler.UpdateProduct)
		admin.DELETE("/products/:id", productHandler.DeleteProduct)
		admin.POST("/products/:id/image", productHandler.UploadProductImage)

		// Category management
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.PUT("/categories/:id", categoryHandler.UpdateCategory)
		admin.DELETE("/categories/:id", categoryHandler.DeleteCategory)

		// Cart overview
		admin.GET("/carts", cartHandler.ListCarts)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
