package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohitkr5850/storefront/internal/config"
	"github.com/rohitkr5850/storefront/internal/delivery/http/handler"
	"github.com/rohitkr5850/storefront/internal/delivery/http/middleware"
	"github.com/rohitkr5850/storefront/internal/delivery/http/response"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
)

// Router holds HTTP handlers and router configuration
type Router struct {
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	vendorHandler  *handler.VendorHandler
	authHandler    *handler.AuthHandler
	logger         *logger.Logger
	cfg            *config.Config
}

// NewRouter creates a new HTTP router
func NewRouter(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	vendorHandler *handler.VendorHandler,
	authHandler *handler.AuthHandler,
	cfg *config.Config,
	log *logger.Logger,
) *Router {
	return &Router{
		catalogHandler: catalogHandler,
		cartHandler:    cartHandler,
		orderHandler:   orderHandler,
		vendorHandler:  vendorHandler,
		authHandler:    authHandler,
		logger:         log,
		cfg:            cfg,
	}
}

// Setup configures and returns the HTTP router
func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logger(rt.logger))
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", rt.healthCheck)
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", rt.catalogHandler.Search)
		r.Get("/products/{id}", rt.catalogHandler.GetByID)
		r.Get("/categories", rt.catalogHandler.Categories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", rt.cartHandler.Get)
			r.Delete("/", rt.cartHandler.Clear)
			r.Post("/items", rt.cartHandler.AddItem)
			r.Put("/items/{id}", rt.cartHandler.UpdateItem)
			r.Delete("/items/{id}", rt.cartHandler.RemoveItem)
		})

		r.Post("/checkout", rt.orderHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", rt.orderHandler.ListByUser)
			r.Get("/{id}", rt.orderHandler.GetByID)
			r.Post("/{id}/cancel", rt.orderHandler.Cancel)
		})

		r.Route("/vendor", func(r chi.Router) {
			r.Get("/products", rt.catalogHandler.ListByVendor)
			r.Post("/products", rt.catalogHandler.Create)
			r.Put("/products/{id}", rt.catalogHandler.Update)
			r.Delete("/products/{id}", rt.catalogHandler.Delete)
			r.Get("/stats", rt.vendorHandler.Stats)
			r.Get("/sales", rt.vendorHandler.Sales)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", rt.authHandler.Login)
			r.Post("/register", rt.authHandler.Register)
			r.Post("/logout", rt.authHandler.Logout)
			r.Get("/me", rt.authHandler.Me)
		})
	})

	return r
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
