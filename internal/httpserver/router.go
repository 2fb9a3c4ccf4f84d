package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, gatherer prometheus.Gatherer) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", registerHandler(deps.AccountSvc))
		auth.POST("/login", loginHandler(deps.AccountSvc))
		auth.GET("/me", authMiddleware(deps.AccountSvc), meHandler())
		auth.PUT("/profile", authMiddleware(deps.AccountSvc), updateProfileHandler(deps.AccountSvc))
	}

	products := router.Group("/products")
	{
		products.GET("", listProductsHandler(deps.CatalogSvc))
		products.GET("/featured", featuredProductsHandler(deps.CatalogSvc))
		products.GET("/search", searchProductsHandler(deps.CatalogSvc))
		products.GET("/category/:category", productsByCategoryHandler(deps.CatalogSvc))
		products.GET("/:id", getProductHandler(deps.CatalogSvc))
	}

	cart := router.Group("/cart", authMiddleware(deps.AccountSvc))
	{
		cart.GET("", getCartHandler(deps.CartSvc))
		cart.POST("/add", addToCartHandler(deps.CartSvc))
		cart.PUT("/item/:itemId", updateCartItemHandler(deps.CartSvc))
		cart.DELETE("/item/:itemId", removeCartItemHandler(deps.CartSvc))
		cart.DELETE("/clear", clearCartHandler(deps.CartSvc))
	}

	orders := router.Group("/orders", authMiddleware(deps.AccountSvc))
	{
		orders.POST("/checkout", checkoutHandler(deps.OrderSvc))
		orders.GET("/my-orders", myOrdersHandler(deps.OrderSvc))
		orders.GET("/:id", getOrderHandler(deps.OrderSvc))
	}

	return router
}
