package httpserver

import (
	"context"
	"log"
	"time"

	"cafecart/internal/domain"
	cartsvc "cafecart/internal/service/cart"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	CartSvc cartService
	Catalog catalogReader
	Tokens  tokenParser
	Events  eventSource
}

type cartService interface {
	AddItem(ctx context.Context, userID string, in cartsvc.AddItemInput) (*domain.LineItem, error)
	UpdateQuantity(ctx context.Context, userID, lineItemID string, delta int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, userID, lineItemID string) error
	EditConfiguration(ctx context.Context, userID, lineItemID string, in cartsvc.EditInput) (*domain.LineItem, error)
	Clear(ctx context.Context, userID string) error
	Get(ctx context.Context, userID string) (domain.Cart, error)
}

type catalogReader interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListSizes(ctx context.Context) ([]domain.Size, error)
	ListToppings(ctx context.Context) ([]domain.Topping, error)
}

type tokenParser interface {
	Parse(token string) (string, error)
}

// eventSource exposes the cart-changed feed the websocket endpoint streams.
type eventSource interface {
	Subscribe() (<-chan string, func())
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(corsOrigins) == 1 && corsOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = corsOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	api.Use(identityMiddleware(deps.Tokens))

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.GET("/sizes", listSizesHandler(deps.Catalog))
	api.GET("/toppings", listToppingsHandler(deps.Catalog))

	api.GET("/cart", getCartHandler(deps.CartSvc))
	api.GET("/cart/summary", cartSummaryHandler(deps.CartSvc))
	api.DELETE("/cart", clearCartHandler(deps.CartSvc))
	api.POST("/cart/items", addItemHandler(deps.CartSvc))
	api.PATCH("/cart/items/:itemID", updateQuantityHandler(deps.CartSvc))
	api.PUT("/cart/items/:itemID", editItemHandler(deps.CartSvc))
	api.DELETE("/cart/items/:itemID", removeItemHandler(deps.CartSvc))

	if deps.Events != nil {
		api.GET("/cart/events", cartEventsHandler(logger, deps.Events))
	}

	return router, nil
}
