package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles the services the router depends on.
type Deps struct {
	CustomerSvc CustomerService
	CartSvc     CartService
	OrderSvc    OrderService
	Catalog     ProductCatalog
	Tokens      TokenVerifier
	CORSOrigins []string
}

// buildRouter wires routes for the API. Catalog and auth routes are public;
// everything touching a cart or order sits behind the access gate.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(corsConfig(deps.CORSOrigins)))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(deps.Catalog, logger))
	api.GET("/products/:productId", getProductHandler(deps.Catalog, logger))
	api.GET("/products/:productId/related/:category", relatedProductsHandler(deps.Catalog, logger))

	api.POST("/auth/sign-up", signUpHandler(deps.CustomerSvc, logger))
	api.POST("/auth/sign-in", signInHandler(deps.CustomerSvc, logger))

	authed := api.Group("")
	authed.Use(authMiddleware(deps.Tokens))
	authed.GET("/mycart/:customerId", getCartHandler(deps.CartSvc, logger))
	authed.POST("/mycart/addtocart", addToCartHandler(deps.CartSvc, logger))
	authed.POST("/mycart/update", updateCartHandler(deps.CartSvc, logger))
	authed.POST("/remove", removeCartItemHandler(deps.CartSvc, logger))
	authed.POST("/checkout/clearcart", clearCartHandler(deps.CartSvc, logger))
	authed.POST("/checkout/order", checkoutHandler(deps.OrderSvc, logger))
	authed.GET("/orderhistory/:customerId", orderHistoryHandler(deps.OrderSvc, logger))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
