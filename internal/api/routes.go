package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"reseller-portal-go/internal/config"
	"reseller-portal-go/internal/core"
	"reseller-portal-go/internal/db"
	"reseller-portal-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (request id, logging, recovery, CORS,
// edge guard) is applied to the router before this is called, in main.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	userService core.UserService,
	cartService core.CartService,
	paymentService core.PaymentService,
	catalogService core.CatalogService,
	roleResolver *core.RoleResolver,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized; routes cannot be secured.")
		panic("Firebase Auth client is nil during route setup")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	authHandler := NewAuthHandler(userService)
	userHandler := NewUserHandler(userService)
	sessionHandler := NewSessionHandler(roleResolver)
	catalogHandler := NewCatalogHandler(catalogService)
	cartHandler := NewCartHandler(cartService)
	paymentHandler := NewPaymentHandler(paymentService)

	apiV1 := router.Group("/api/v1")
	{
		userGroup := apiV1.Group("/users")
		{
			// Called after client-side Firebase login/signup to ensure
			// the backend record exists.
			userGroup.POST("/initialize", authMW.VerifyToken(), authHandler.InitializeUserProfile)
			userGroup.GET("/me", authMW.VerifyToken(), userHandler.GetCurrentUserProfile)
		}

		apiV1.GET("/session", authMW.VerifyToken(), sessionHandler.GetSession)

		// Catalog reads are public: the proxy exists to keep the
		// commerce credentials server-side, not to gate the data.
		apiV1.GET("/products", catalogHandler.ListProducts)
		apiV1.GET("/products/:id", catalogHandler.GetProduct)

		cartGroup := apiV1.Group("/cart", authMW.VerifyToken())
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.DELETE("/items/:productId", cartHandler.RemoveItem)
			cartGroup.DELETE("", cartHandler.ClearCart)
		}

		apiV1.POST("/create-payment-intent", authMW.VerifyToken(), paymentHandler.CreatePaymentIntent)
		apiV1.POST("/verify-payment", authMW.VerifyToken(), paymentHandler.VerifyPayment)
		apiV1.POST("/verify-payment-status", authMW.VerifyToken(), paymentHandler.VerifyPaymentStatus)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP", "message": "Reseller portal backend is healthy."})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
