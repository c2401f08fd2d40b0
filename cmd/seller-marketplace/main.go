package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/homebase-labs/seller-marketplace/internal/api/handlers"
	"github.com/homebase-labs/seller-marketplace/internal/api/middleware"
	"github.com/homebase-labs/seller-marketplace/internal/cache"
	"github.com/homebase-labs/seller-marketplace/internal/config"
	"github.com/homebase-labs/seller-marketplace/internal/health"
	"github.com/homebase-labs/seller-marketplace/internal/metrics"
	repository "github.com/homebase-labs/seller-marketplace/internal/repositories"
	service "github.com/homebase-labs/seller-marketplace/internal/services"
	"github.com/homebase-labs/seller-marketplace/internal/tracing"
	"github.com/homebase-labs/seller-marketplace/pkg/blobstore"
	"github.com/homebase-labs/seller-marketplace/pkg/sendgrid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := tracing.Init(context.Background(), cfg.Tracing.Endpoint)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg)
	redisCache := cache.NewRedisCache(redisClient, &cfg.CacheConfig)

	jwtKey := []byte(cfg.Security.JWTKey)
	notifier := sendgrid.NewNotifier(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName, cfg.SendGrid.AlertEmail)
	imageStore := blobstore.NewClient(cfg.BlobStore.BaseURL, cfg.BlobStore.APIKey)

	catalogService := service.NewCatalogService(repos.Catalog, redisCache)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	listingService := service.NewListingService(repos.Listing, catalogService, imageStore)
	listingHandler := handlers.NewListingHandler(listingService)
	stockService := service.NewStockService(repos.Listing, notifier)
	stockHandler := handlers.NewStockHandler(stockService)
	shopService := service.NewShopService(repos.Shop)
	shopHandler := handlers.NewShopHandler(shopService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)
	writeLimit := middleware.WriteRateLimit(rateLimiter)

	healthHandler, err := health.NewHealthHandler(&health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error creating health handler", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	// Public catalog and listing browsing
	routerMux.HandleFunc("GET /api/v1/catalog", catalogHandler.SearchCatalog())
	routerMux.HandleFunc("GET /api/v1/catalog/categories", catalogHandler.GetCategories())
	routerMux.HandleFunc("GET /api/v1/catalog/{id}", catalogHandler.GetCatalogEntry())
	routerMux.HandleFunc("GET /api/v1/listings", listingHandler.ListPublicListings())
	routerMux.HandleFunc("GET /api/v1/listings/search", listingHandler.SearchByAddress())
	routerMux.HandleFunc("GET /api/v1/listings/{id}", listingHandler.GetListing())

	// Seller catalog proposals and inventory
	routerMux.HandleFunc("POST /api/v1/catalog", authMiddleware.Authenticate(writeLimit(catalogHandler.CreateCatalogEntry())))
	routerMux.HandleFunc("POST /api/v1/listings", authMiddleware.Authenticate(writeLimit(listingHandler.CreateListing())))
	routerMux.HandleFunc("PATCH /api/v1/listings/{id}", authMiddleware.Authenticate(writeLimit(listingHandler.UpdateListing())))
	routerMux.HandleFunc("DELETE /api/v1/listings/{id}", authMiddleware.Authenticate(writeLimit(listingHandler.DeleteListing())))
	routerMux.HandleFunc("GET /api/v1/seller/listings", authMiddleware.Authenticate(listingHandler.MyListings()))
	routerMux.HandleFunc("GET /api/v1/seller/listings/profitability", authMiddleware.Authenticate(listingHandler.GetProfitability()))

	// Admin catalog moderation
	routerMux.HandleFunc("GET /api/v1/admin/catalog/pending", authMiddleware.Authenticate(authMiddleware.RequireAdmin(catalogHandler.ListPending())))
	routerMux.HandleFunc("POST /api/v1/admin/catalog/{id}/approve", authMiddleware.Authenticate(authMiddleware.RequireAdmin(catalogHandler.ApproveCatalogEntry())))
	routerMux.HandleFunc("POST /api/v1/admin/catalog/{id}/reject", authMiddleware.Authenticate(authMiddleware.RequireAdmin(catalogHandler.RejectCatalogEntry())))

	// Stock reconciliation and sale ingestion, called by the order system
	routerMux.HandleFunc("POST /api/v1/stock/decrement", authMiddleware.Authenticate(stockHandler.DecrementStock()))
	routerMux.HandleFunc("POST /api/v1/shop/sales/orders", authMiddleware.Authenticate(shopHandler.RecordOrderSale()))

	// Shop ledger and reports
	routerMux.HandleFunc("POST /api/v1/shop/sales", authMiddleware.Authenticate(writeLimit(shopHandler.AddManualSale())))
	routerMux.HandleFunc("GET /api/v1/shop/sales", authMiddleware.Authenticate(shopHandler.ListSales()))
	routerMux.HandleFunc("POST /api/v1/shop/expenses", authMiddleware.Authenticate(writeLimit(shopHandler.AddExpense())))
	routerMux.HandleFunc("GET /api/v1/shop/expenses", authMiddleware.Authenticate(shopHandler.ListExpenses()))
	routerMux.HandleFunc("PATCH /api/v1/shop/expenses/{id}", authMiddleware.Authenticate(writeLimit(shopHandler.UpdateExpense())))
	routerMux.HandleFunc("DELETE /api/v1/shop/expenses/{id}", authMiddleware.Authenticate(writeLimit(shopHandler.DeleteExpense())))
	routerMux.HandleFunc("GET /api/v1/shop/reports/profit-loss", authMiddleware.Authenticate(shopHandler.GetProfitLossReport()))

	// Operational endpoints
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "seller-marketplace")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Warn("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

	if err := redisClient.Close(); err != nil {
		slog.Warn("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	}
}
