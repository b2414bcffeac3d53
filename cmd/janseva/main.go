package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"janseva/internal/api"
	"janseva/internal/api/handlers"
	"janseva/internal/repository"
	"janseva/internal/search"
	"janseva/internal/service"
	"janseva/pkg/auth"
	"janseva/pkg/cache"
	"janseva/pkg/config"
	"janseva/pkg/logger"
	"janseva/pkg/postgres"

	"go.uber.org/zap"
)

// @title JanSeva API
// @version 1.0
// @description Citizen-facing FAQ and government-scheme chatbot with an admin console

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting JanSeva service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	faqRepo := repository.NewFaqRepository(db, appLogger)
	schemeRepo := repository.NewSchemeRepository(db, appLogger)
	interactionRepo := repository.NewInteractionRepository(db, appLogger)
	adminRepo := repository.NewAdminRepository(db, appLogger)

	// Optional reply cache
	replyCache, err := cache.New(ctx, &cfg.Redis, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	if replyCache == nil {
		appLogger.Info("Reply cache disabled")
	}
	defer replyCache.Close()

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Pick the corpus matching strategy. The fuzzy index is only built
	// and kept fresh when it is the active strategy.
	intentService := service.NewIntentService(faqRepo, schemeRepo, appLogger)
	rebuilders := []service.Rebuilder{intentService}

	var matcher service.Matcher
	switch cfg.Match.Strategy {
	case service.StrategyKeyword:
		matcher = service.NewKeywordMatcher(faqRepo, schemeRepo)
	case service.StrategyFuzzy:
		index := search.NewIndex(faqRepo, schemeRepo, appLogger)
		if err := index.Rebuild(ctx); err != nil {
			appLogger.Fatal("Failed to build search index", zap.Error(err))
		}
		rebuilders = append(rebuilders, index)
		matcher = service.NewFuzzyMatcher(index)
	case service.StrategyFulltext:
		matcher = service.NewFulltextMatcher(faqRepo, schemeRepo, cfg.Match.TopK)
	default:
		appLogger.Fatal("Unknown match strategy", zap.String("strategy", cfg.Match.Strategy))
	}
	appLogger.Info("Matching strategy selected", zap.String("strategy", cfg.Match.Strategy))

	if err := intentService.Rebuild(ctx); err != nil {
		appLogger.Warn("Intent classifier training failed", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtManager, appLogger)
	chatService := service.NewChatService(matcher, interactionRepo, replyCache, appLogger)
	faqService := service.NewFaqService(faqRepo, rebuilders, appLogger)
	schemeService := service.NewSchemeService(schemeRepo, rebuilders, appLogger)
	analyticsService := service.NewAnalyticsService(interactionRepo, faqRepo, schemeRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	chatHandler := handlers.NewChatHandler(chatService, appLogger)
	faqHandler := handlers.NewFaqHandler(faqService, appLogger)
	schemeHandler := handlers.NewSchemeHandler(schemeService, appLogger)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, intentService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, chatHandler, faqHandler, schemeHandler, analyticsHandler, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}

	// Drain pending interaction log writes before exiting
	chatService.Close()
}
