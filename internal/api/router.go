package api

import (
	"janseva/internal/api/handlers"
	"janseva/pkg/auth"
	"janseva/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	authHandler *handlers.AuthHandler,
	chatHandler *handlers.ChatHandler,
	faqHandler *handlers.FaqHandler,
	schemeHandler *handlers.SchemeHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	jwtManager *auth.JWTManager,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/refresh", authHandler.RefreshToken)

	// Citizen-facing routes (public)
	app.Post("/chat/message", chatHandler.Message)
	app.Get("/faqs", faqHandler.List)
	app.Get("/faqs/:id", faqHandler.GetByID)
	app.Get("/schemes", schemeHandler.List)
	app.Get("/schemes/:id", schemeHandler.GetByID)

	// Admin routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	faqs := protected.Group("/faqs")
	faqs.Post("", faqHandler.Create)
	faqs.Put("/:id", faqHandler.Update)
	faqs.Delete("/:id", faqHandler.Delete)

	schemes := protected.Group("/schemes")
	schemes.Post("", schemeHandler.Create)
	schemes.Put("/:id", schemeHandler.Update)
	schemes.Delete("/:id", schemeHandler.Delete)

	analytics := protected.Group("/analytics")
	analytics.Get("/overview", analyticsHandler.Overview)
	analytics.Get("/intents", analyticsHandler.Intents)
	analytics.Get("/queries", analyticsHandler.Queries)
	analytics.Get("/sources", analyticsHandler.Sources)
	analytics.Get("/classify", analyticsHandler.Classify)

	protected.Get("/dashboard/stats", analyticsHandler.DashboardStats)

	return app
}
