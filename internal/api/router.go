package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/che1nov/tea-shop/internal/api/handler"
	"github.com/che1nov/tea-shop/internal/api/middleware"
	"github.com/che1nov/tea-shop/internal/core/domain"
	"github.com/che1nov/tea-shop/internal/core/ports"
	"github.com/che1nov/tea-shop/internal/core/service"
)

// Deps bundles everything the router needs. The cart and session store are
// the live single-session state; the rest are stateless collaborators.
type Deps struct {
	Cart       *domain.Cart
	Session    *service.SessionStore
	Client     ports.ShopClient
	Checkout   ports.CheckoutService
	Deliveries ports.DeliveryService
	Upstream   handler.Pinger
	Redis      *redis.Client
	Log        zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("teashop"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(deps.Client, deps.Session)
	goodsHandler := handler.NewGoodsHandler(deps.Client)
	cartHandler := handler.NewCartHandler(deps.Cart, deps.Client)
	checkoutHandler := handler.NewCheckoutHandler(deps.Checkout)
	orderHandler := handler.NewOrderHandler(deps.Client)
	deliveryHandler := handler.NewDeliveryHandler(deps.Deliveries)

	requireAuth := middleware.RequireAuth(deps.Session)
	requireAdmin := middleware.RequireAdmin(deps.Session)

	// --- Auth and session ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/session", authHandler.Session)

	// --- Catalog ---
	e.GET("/goods", goodsHandler.List)
	e.GET("/goods/:id", goodsHandler.Get)

	// --- Cart ---
	e.GET("/cart", cartHandler.Get)
	e.POST("/cart/items", cartHandler.AddItem)
	e.PUT("/cart/items/:id", cartHandler.UpdateQuantity)
	e.DELETE("/cart/items/:id", cartHandler.Remove)
	e.DELETE("/cart", cartHandler.Clear)

	// --- Checkout and orders ---
	e.POST("/checkout", checkoutHandler.Checkout, requireAuth)
	e.GET("/orders/:id", orderHandler.Get, requireAuth)

	// --- Operator routes ---
	admin := e.Group("/admin", requireAdmin)
	admin.POST("/goods", goodsHandler.Create)
	admin.PUT("/goods/:id", goodsHandler.Update)
	admin.DELETE("/goods/:id", goodsHandler.Delete)
	admin.GET("/deliveries", deliveryHandler.List)
	admin.POST("/deliveries/:id/advance", deliveryHandler.Advance)

	// --- Probes and metrics ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Redis, deps.Upstream)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
