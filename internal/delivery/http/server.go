package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/listing-microservice/internal/config"
	"github.com/listing-microservice/internal/delivery/http/handler"
	"github.com/listing-microservice/internal/delivery/http/middleware"
	"github.com/listing-microservice/internal/pkg/progress"
)

// Server is the Fiber HTTP server.
type Server struct {
	app       *fiber.App
	config    *config.Config
	logger    *zap.Logger
	indicator *progress.Indicator

	// Handlers
	listingHandler   *handler.ListingHandler
	adminHandler     *handler.AdminHandler
	favoritesHandler *handler.FavoritesHandler
	pageHandler      *handler.PageHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	indicator *progress.Indicator,
	listingHandler *handler.ListingHandler,
	adminHandler *handler.AdminHandler,
	favoritesHandler *handler.FavoritesHandler,
	pageHandler *handler.PageHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Listing Microservice",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		indicator:        indicator,
		listingHandler:   listingHandler,
		adminHandler:     adminHandler,
		favoritesHandler: favoritesHandler,
		pageHandler:      pageHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(middleware.Visitor())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Rendered pages
	s.app.Get("/", s.pageHandler.Index)
	s.app.Get("/listings/:id", s.pageHandler.ListingDetail)
	s.app.Get("/admin/broker-requests", s.pageHandler.BrokerRequestsPage)

	api := s.app.Group("/api/v1")

	// Health check; busy reflects the shared loading indicator.
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"busy":   s.indicator.Active(),
			"time":   time.Now(),
		})
	})

	// Public listing routes
	api.Get("/listings", s.listingHandler.List)
	api.Get("/listings/:id", s.listingHandler.Get)
	api.Post("/listings/refresh", s.listingHandler.Refresh)

	// Admin mutation routes
	api.Post("/listings", s.adminHandler.Create)
	api.Put("/listings/:id", s.adminHandler.Update)
	api.Delete("/listings/:id", s.adminHandler.Delete)
	api.Get("/broker-requests", s.adminHandler.BrokerRequests)
	api.Post("/broker-requests/:id/decision", s.adminHandler.Decide)

	// Per-visitor state
	api.Get("/favorites", s.favoritesHandler.List)
	api.Post("/favorites/:id/toggle", s.favoritesHandler.Toggle)
	api.Put("/preferences/language", s.favoritesHandler.SetLanguage)

	// View state
	api.Put("/view/filters", s.pageHandler.SetFilters)
	api.Get("/notifications", s.pageHandler.Notifications)
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
