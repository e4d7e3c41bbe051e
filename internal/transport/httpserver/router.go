// Package httpserver provides HTTP server and routing.
package httpserver

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "catalogue-service/docs"
	"catalogue-service/internal/app/service"
	"catalogue-service/internal/transport/httpserver/handler"
	"catalogue-service/internal/transport/httpserver/middleware"
	"catalogue-service/internal/validator"
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port      int
	BodyLimit int
	APIKey    string
}

// Server wraps Fiber app with handlers.
type Server struct {
	App    *fiber.App
	Logger *zap.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(
	cfg ServerConfig,
	contentSvc *service.ContentService,
	categorySvc *service.CategoryService,
	db *gorm.DB,
	v *validator.Validator,
	logger *zap.Logger,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "catalogue-service",
		BodyLimit:    cfg.BodyLimit,
		ErrorHandler: errorHandler(logger),
	})

	// Health check middleware MUST be registered BEFORE other middleware
	// for Kubernetes probes to work even during high load
	app.Use(middleware.NewHealthCheck(db))

	// Global middleware
	app.Use(requestid.New())
	app.Use(middleware.Recover(logger))
	app.Use(middleware.Logger(logger))
	app.Use(middleware.CORS())
	app.Use(compress.New())

	// Create handlers
	contentHandler := handler.NewContentHandler(contentSvc, v, logger)
	categoryHandler := handler.NewCategoryHandler(categorySvc, v, logger)

	registerRoutes(app, cfg.APIKey, contentHandler, categoryHandler)

	return &Server{
		App:    app,
		Logger: logger,
	}
}

// registerRoutes sets up all API routes.
func registerRoutes(
	app *fiber.App,
	apiKey string,
	contentHandler *handler.ContentHandler,
	categoryHandler *handler.CategoryHandler,
) {
	// Health checks are handled by middleware (/livez, /readyz)

	// API documentation stays outside the key check
	app.Get("/docs/*", swagger.HandlerDefault)

	// API v1 routes, all behind the static API key
	v1 := app.Group("/api/v1", middleware.Auth(apiKey))

	// Contents. The static routes must be registered before the
	// /:tmdbId wildcard or Fiber would capture "search" as an id.
	content := v1.Group("/content")
	content.Get("/", contentHandler.List)
	content.Get("/search", contentHandler.Search)
	content.Get("/recommended", contentHandler.Recommended)
	content.Get("/:tmdbId", contentHandler.GetByID)
	content.Post("/", contentHandler.Create)

	// Categories
	category := v1.Group("/category")
	category.Get("/", categoryHandler.List)
	category.Get("/:categoryId", categoryHandler.Contents)
}

// errorHandler returns a custom error handler that logs based on HTTP status code.
// 404s are logged at DEBUG level (expected client behavior), 4xx at WARN, 5xx at ERROR.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		switch {
		case code == fiber.StatusNotFound:
			logger.Debug("resource not found",
				zap.String("path", c.Path()),
				zap.String("method", c.Method()),
			)
		case code >= 500:
			logger.Error("server error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		case code >= 400:
			logger.Warn("client error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		default:
			logger.Error("unhandled error",
				zap.Error(err),
				zap.Int("status", code),
				zap.String("path", c.Path()),
			)
		}

		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
			"code":  "UNHANDLED_ERROR",
		})
	}
}

// Start starts the HTTP server.
func (s *Server) Start(port int) error {
	s.Logger.Info("starting HTTP server", zap.Int("port", port))

	return s.App.Listen(fmt.Sprintf(":%d", port))
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	s.Logger.Info("shutting down HTTP server")

	return s.App.Shutdown()
}
