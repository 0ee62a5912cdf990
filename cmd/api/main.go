package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	"github.com/agentforge/agentforge-be/internal/core/auth"
	"github.com/agentforge/agentforge-be/internal/core/catalog"
	"github.com/agentforge/agentforge-be/internal/core/integrations"
	"github.com/agentforge/agentforge-be/internal/core/llm"
	"github.com/agentforge/agentforge-be/internal/core/whatsapp"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/handlers"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/repositories"
	"github.com/agentforge/agentforge-be/internal/modules/dashboard/services"
	"github.com/agentforge/agentforge-be/internal/shared/config"
	"github.com/agentforge/agentforge-be/internal/shared/database"
	"github.com/agentforge/agentforge-be/internal/shared/utils"
)

// @title AgentForge Dashboard API
// @version 1.0
// @description API for configuring and managing AI chat agents
// @contact.name API Support
// @contact.email support@agentforge.app
// @license.name MIT
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load config
	cfg := config.LoadConfig()

	// Init logger
	utils.InitLogger(cfg.Env)
	log.Printf("🚀 Starting agentforge-api on port %s", cfg.Port)

	// Init database
	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	// Static registries
	registry := catalog.DefaultRegistry()
	integrationCatalog := integrations.DefaultCatalog()

	// Init repositories (use GORM instance)
	agentRepo := repositories.NewAgentRepo(db.GORM)
	draftRepo := repositories.NewDraftRepo(db.GORM)

	// Init LLM service (used by agent preview)
	llmService := llm.NewService(cfg.OpenAIKey)

	// Init WhatsApp service (used by whatsapp-agent pairing)
	waService := whatsapp.NewService(cfg.WhatsAppStoreURL)

	// Resume an existing WhatsApp pairing in the background; first-time
	// pairing happens through /whatsapp/qr
	waCtx, waCancel := context.WithCancel(context.Background())
	defer waCancel()
	go func() {
		if err := waService.Connect(); err != nil {
			log.Printf("⚠️ WhatsApp session not resumed: %v", err)
			return
		}
		waService.StartKeepAlive(waCtx)
	}()
	defer waService.Disconnect()

	// Init auth
	authService := auth.NewService(db.GORM, cfg.JWTSecret)
	authHandler := auth.NewHandler(authService)

	// Init services
	agentService := services.NewAgentService(agentRepo, registry, llmService, cfg.WidgetBaseURL)
	draftService := services.NewDraftService(draftRepo)
	if err := draftService.StartPruner(); err != nil {
		log.Fatalf("Failed to start draft pruner: %v", err)
	}
	defer draftService.Shutdown()

	// Init handlers
	agentHandler := handlers.NewAgentHandler(agentService)
	draftHandler := handlers.NewDraftHandler(draftService)
	categoryHandler := handlers.NewCategoryHandler(registry)
	integrationHandler := handlers.NewIntegrationHandler(integrationCatalog)
	whatsappHandler := handlers.NewWhatsAppHandler(waService)
	healthHandler := handlers.NewHealthHandler(waService)

	// Init Fiber app
	app := fiber.New(fiber.Config{
		AppName: "AgentForge Dashboard API",
	})

	// Middleware
	app.Use(cors.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Health check
	app.Get("/health", healthHandler.GetHealth)

	// Auth routes
	app.Post("/auth/register", authHandler.Register)
	app.Post("/auth/login", authHandler.Login)
	app.Post("/auth/refresh", authHandler.Refresh)
	app.Get("/auth/me", auth.AuthMiddleware(authService), authHandler.Me)

	// Category routes (public: the wizard loads these before sign-up)
	app.Get("/categories", categoryHandler.ListCategories)
	app.Get("/categories/:id", categoryHandler.GetCategory)

	// Integration catalog routes
	app.Get("/integrations", integrationHandler.ListIntegrations)
	app.Get("/integrations/:id", integrationHandler.GetIntegration)

	// Authenticated dashboard routes
	protected := app.Group("/", auth.AuthMiddleware(authService))

	// Agent routes
	protected.Post("/agents", agentHandler.CreateAgent)
	protected.Get("/agents", agentHandler.ListAgents)
	protected.Get("/agents/:id", agentHandler.GetAgent)
	protected.Put("/agents/:id", agentHandler.UpdateAgent)
	protected.Delete("/agents/:id", agentHandler.DeleteAgent)
	protected.Get("/agents/:id/snippet", agentHandler.GetWidgetSnippet)
	protected.Put("/agents/:id/widget", agentHandler.UpdateWidgetConfig)
	protected.Post("/agents/:id/preview", agentHandler.PreviewAgent)

	// Draft routes (resume-later wizard state)
	protected.Put("/drafts", draftHandler.SaveDraft)
	protected.Get("/drafts", draftHandler.GetDraft)
	protected.Delete("/drafts", draftHandler.DiscardDraft)

	// WhatsApp pairing routes
	protected.Get("/whatsapp/qr", whatsappHandler.GetQRCode)
	protected.Get("/whatsapp/status", whatsappHandler.GetStatus)
	protected.Post("/whatsapp/test", whatsappHandler.SendTestMessage)

	log.Printf("✅ agentforge-api running at :%s", cfg.Port)
	log.Printf("📄 Swagger UI: http://localhost:%s/swagger/", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
