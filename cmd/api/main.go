package main

// @title Listing Microservice API
// @version 1.0.0
// @description Presentation service for the real-estate listing site. Consumes the listings backend REST API, keeps a deduplicated in-memory catalog, and serves filtered, localized listing pages plus the admin mutation endpoints.
// @description
// @description Main capabilities:
// @description - Listing collection with free-text, price, bedroom and category filters
// @description - Localized titles and descriptions (en, am, ti) with English fallback
// @description - Admin create/update/delete proxied to the backend with explicit delete confirmation
// @description - Broker request queue with approve/reject decisions
// @description - Per-visitor favorites and language preference

// @contact.name API Support
// @contact.email support@listing-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/listing-microservice/docs"
	"github.com/listing-microservice/internal/config"
	httpDelivery "github.com/listing-microservice/internal/delivery/http"
	"github.com/listing-microservice/internal/delivery/http/handler"
	"github.com/listing-microservice/internal/infrastructure/backend"
	"github.com/listing-microservice/internal/pkg/logger"
	"github.com/listing-microservice/internal/pkg/notify"
	"github.com/listing-microservice/internal/pkg/progress"
	"github.com/listing-microservice/internal/renderer"
	"github.com/listing-microservice/internal/repository/cache"
	"github.com/listing-microservice/internal/usecase"
	"github.com/listing-microservice/internal/worker"
	catalogWorker "github.com/listing-microservice/internal/worker/catalog"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Listing Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("backend", cfg.Backend.BaseURL),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 4. Initialize repositories and shared services
	cacheRepo := cache.NewCacheRepository(redisClient)
	backendClient := backend.NewClient(&cfg.Backend, log)
	indicator := progress.NewIndicator()
	center := notify.NewCenter(log)
	rend := renderer.NewHTMLRenderer()

	log.Info("Repositories initialized")

	// 5. Initialize use cases
	catalogUC := usecase.NewCatalogUseCase(
		backendClient,
		indicator,
		cfg.Site.PlaceholderImage,
		log,
	)

	viewUC := usecase.NewViewUseCase(
		catalogUC,
		rend,
		cfg.Site.DefaultLanguage,
		cfg.Site.UploadsPath,
		log,
	)

	adminUC := usecase.NewAdminUseCase(
		backendClient,
		catalogUC,
		center,
		indicator,
		log,
	)

	favoritesUC := usecase.NewFavoritesUseCase(
		cacheRepo,
		center,
		cfg.Site.DefaultLanguage,
		cfg.Site.Languages,
		log,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	listingHandler := handler.NewListingHandler(catalogUC, favoritesUC, cfg.Site.UploadsPath, log)
	adminHandler := handler.NewAdminHandler(adminUC, favoritesUC, cfg.Site.UploadsPath, cfg.Site.PlaceholderImage, log)
	favoritesHandler := handler.NewFavoritesHandler(favoritesUC, log)
	pageHandler := handler.NewPageHandler(viewUC, catalogUC, adminUC, favoritesUC, rend, center, cfg.Site.UploadsPath, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		indicator,
		listingHandler,
		adminHandler,
		favoritesHandler,
		pageHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Initial catalog load. Failure is not fatal: the poll worker (or the
	// first user-triggered refresh) will fill the catalog once the backend is
	// reachable.
	if err := catalogUC.Refresh(ctx, false); err != nil {
		log.Warn("Initial catalog load failed", zap.Error(err))
	}

	// 9. Start background workers
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	var manager *worker.WorkerManager
	if cfg.Worker.Enabled {
		manager = worker.NewWorkerManager(log)
		manager.Register(catalogWorker.NewRefreshWorker(catalogUC, cfg.Worker.PollInterval, log))
		if err := manager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	} else {
		log.Info("Background workers disabled")
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if manager != nil {
		if err := manager.Stop(); err != nil {
			log.Error("Worker shutdown error", zap.Error(err))
		}
	}
	workerCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Redis is closed by the deferred handler above.
	log.Info("Server stopped successfully")
}
