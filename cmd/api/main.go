package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rohitkr5850/storefront/internal/config"
	"github.com/rohitkr5850/storefront/internal/delivery/events"
	httpDelivery "github.com/rohitkr5850/storefront/internal/delivery/http"
	"github.com/rohitkr5850/storefront/internal/delivery/http/handler"
	"github.com/rohitkr5850/storefront/internal/pkg/cache"
	"github.com/rohitkr5850/storefront/internal/pkg/logger"
	cacheRepo "github.com/rohitkr5850/storefront/internal/repository/cache"
	"github.com/rohitkr5850/storefront/internal/repository/memory"
	"github.com/rohitkr5850/storefront/internal/storage"
	"github.com/rohitkr5850/storefront/internal/usecase/auth"
	"github.com/rohitkr5850/storefront/internal/usecase/cart"
	"github.com/rohitkr5850/storefront/internal/usecase/catalog"
	"github.com/rohitkr5850/storefront/internal/usecase/order"
	"github.com/rohitkr5850/storefront/internal/usecase/vendor"

	_ "github.com/rohitkr5850/storefront/docs"
)

// @title Storefront API
// @version 1.0
// @description A marketplace storefront backend: catalog browsing with filters, a persistent shopping cart, checkout with order tracking, and a vendor dashboard.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://github.com/rohitkr5850/storefront
// @contact.email support@example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @tag.name Catalog
// @tag.description Product browsing endpoints

// @tag.name Cart
// @tag.description Shopping cart endpoints

// @tag.name Orders
// @tag.description Checkout and order tracking endpoints

// @tag.name Vendor
// @tag.description Seller product management and dashboard endpoints

// @tag.name Auth
// @tag.description Mock sign-in endpoints

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := logger.New(cfg.Env)
	appLogger.Info("Starting Storefront API...")

	appLogger.Info("Connecting to Redis...")
	redisClient, err := cache.WaitForRedis(cfg, 10, 2*time.Second)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis successfully")

	appLogger.Info("Connecting to NATS...")
	publisher, err := events.NewPublisher(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create NATS publisher", err)
	}
	defer publisher.Close()

	// The ORDERS stream must exist before the first checkout publishes to it.
	streamConfig := events.NewStreamConfig(publisher.JetStream(), appLogger)
	if err := streamConfig.EnsureStream(); err != nil {
		appLogger.Fatal("Failed to ensure JetStream stream", err)
	}

	productRepo := memory.NewCatalogRepository()
	orderRepo := memory.NewOrderRepository()
	userRepo := memory.NewUserRepository()

	kvStore := storage.NewRedisStore(redisClient)
	searchCache := cacheRepo.NewSearchCache(redisClient, cfg.Cache.SearchResultsTTL)

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelBoot()

	catalogService := catalog.NewService(productRepo, searchCache, appLogger)
	cartService := cart.NewService(bootCtx, kvStore, cfg.Storage.CartKey, appLogger)
	authService := auth.NewService(bootCtx, userRepo, kvStore, cfg.Storage.UserKey, appLogger)
	orderService := order.NewService(orderRepo, publisher, appLogger)
	vendorService := vendor.NewService(productRepo, orderRepo, appLogger)

	catalogHandler := handler.NewCatalogHandler(catalogService, appLogger)
	cartHandler := handler.NewCartHandler(cartService, catalogService, appLogger)
	orderHandler := handler.NewOrderHandler(orderService, cartService, authService, appLogger)
	vendorHandler := handler.NewVendorHandler(vendorService, appLogger)
	authHandler := handler.NewAuthHandler(authService, appLogger)

	router := httpDelivery.NewRouter(catalogHandler, cartHandler, orderHandler, vendorHandler, authHandler, cfg, appLogger)
	httpHandler := router.Setup()

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      httpHandler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Infof("HTTP server listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("HTTP server failed", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server stopped gracefully")
}
