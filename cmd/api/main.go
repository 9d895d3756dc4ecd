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

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	apperrors "github.com/johnquangdev/brainstorm-assistant/errors"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/handler"
	"github.com/johnquangdev/brainstorm-assistant/internal/adapter/repository"
	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/cache"
	"github.com/johnquangdev/brainstorm-assistant/internal/infrastructure/database"
	"github.com/johnquangdev/brainstorm-assistant/internal/usecase/analysis"
	"github.com/johnquangdev/brainstorm-assistant/internal/usecase/brainstorm"
	pkgai "github.com/johnquangdev/brainstorm-assistant/pkg/ai"
	"github.com/johnquangdev/brainstorm-assistant/pkg/config"
	pkgmw "github.com/johnquangdev/brainstorm-assistant/pkg/middleware"
	pkgvalidator "github.com/johnquangdev/brainstorm-assistant/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(pkgmw.RequestLogger(logger))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize Database
	logger.Info("📦 Connecting to database...", zap.String("driver", cfg.Database.Driver))
	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(apperrors.ErrDBConnectionFailed(err)))
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		logger.Info("🔄 Applying embedded migrations...")
		if _, err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
			logger.Fatal("Failed to apply migrations", zap.Error(err))
		}
	} else {
		logger.Info("🔄 Skipping migrations; run cmd/migrate before starting the server")
	}

	// Initialize analysis cache store
	var store cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		logger.Info("📦 Connecting to Redis...", zap.String("addr", cfg.GetRedisAddr()))
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisClient.Close()
		store = cache.NewRedisStore(redisClient, cfg.Cache.Key)
	default:
		store = cache.NewMemoryStore()
	}

	// Initialize repositories
	clk := clock.New()
	meetingRepo := repository.NewMeetingRepository(db, clk)
	proposalRepo := repository.NewProposalRepository(db, clk)

	// Initialize AI components
	logger.Info("🤖 Initializing AI components...", zap.String("provider", cfg.AI.Provider))
	generator, err := pkgai.NewTextGenerator(&cfg.AI)
	if err != nil {
		logger.Fatal("Failed to initialize text generator", zap.Error(err))
	}

	analysisCache := analysis.NewCache(store, clk, cfg.Analysis.CacheWindow, logger)
	analysisService := analysis.NewService(proposalRepo, analysisCache, generator, analysis.Options{
		Model:    pkgai.ModelFor(&cfg.AI, generator),
		Language: cfg.Analysis.Language,
	}, logger)

	brainstormService := brainstorm.NewService(meetingRepo, proposalRepo, analysisService, analysisCache, logger)
	brainstormHandler := handler.NewBrainstormHandler(brainstormService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, brainstormHandler, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
