package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-manager/internal/config"
	"alfredoptarigan/resume-manager/internal/handlers"
	"alfredoptarigan/resume-manager/internal/ranking"
	"alfredoptarigan/resume-manager/internal/repositories"
	"alfredoptarigan/resume-manager/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	assistantRepo := repositories.NewAssistantRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractor := services.NewExtractorService()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	geminiService := services.NewGeminiService(cfg.Gemini.APIKey)
	if geminiService.Available() {
		log.Println("✅ Gemini AI initialized successfully")
	}

	// Initialize Qdrant vector index
	vectorStore, err := services.NewVectorStoreService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant: %v", err)
	}

	if err := vectorStore.InitCollection(); err != nil {
		log.Fatalf("❌ Failed to initialize Qdrant collection: %v", err)
	}
	log.Println("✅ Qdrant initialized successfully")

	// Initialize ranking engine and analyzer
	engine := ranking.NewEngine(geminiService, cfg.Worker.EmbedWorkers)
	analyzerService := services.NewAnalyzerService(
		analysisRepo,
		jobRepo,
		resumeRepo,
		engine,
		cfg.Worker.AnalysisTimeout,
	)
	log.Println("✅ Analyzer service initialized")

	assistantService := services.NewAssistantService(
		geminiService,
		assistantRepo,
		cfg.Gemini.MaxRetries,
	)

	// Initialize worker
	worker := services.NewWorker(
		analysisRepo,
		analyzerService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(userRepo, &cfg.Auth)
	uploadHandler := handlers.NewUploadHandler(
		resumeRepo,
		storageService,
		extractor,
		geminiService,
		vectorStore,
		cfg.Storage.MaxFileSize,
	)
	resumeHandler := handlers.NewResumeHandler(resumeRepo, storageService, geminiService, vectorStore)
	analyzeHandler := handlers.NewAnalyzeHandler(jobRepo, analysisRepo, worker)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	dashboardHandler := handlers.NewDashboardHandler(resumeRepo, jobRepo, analysisRepo)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI Resume Manager API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:5173, http://localhost:3000",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Auth endpoints
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.HandleRegister)
	auth.Post("/login", authHandler.HandleLogin)

	// Authenticated endpoints
	protected := api.Use(handlers.AuthMiddleware(&cfg.Auth, userRepo))
	protected.Get("/auth/me", authHandler.HandleMe)

	protected.Post("/resumes/upload", uploadHandler.HandleUpload)
	protected.Get("/resumes", resumeHandler.HandleListResumes)
	protected.Get("/resumes/:id/similar", resumeHandler.HandleSimilarResumes)
	protected.Delete("/resumes/:id", resumeHandler.HandleDeleteResume)

	protected.Post("/jobs/analyze", analyzeHandler.HandleAnalyze)
	protected.Get("/analyses/:id", analyzeHandler.HandleGetAnalysis)

	protected.Post("/ai/enhance-resume", assistantHandler.HandleEnhanceResume)
	protected.Post("/ai/interview-question", assistantHandler.HandleInterviewQuestion)
	protected.Post("/ai/chat", assistantHandler.HandleChat)

	protected.Get("/templates", dashboardHandler.HandleTemplates)
	protected.Get("/dashboard/stats", dashboardHandler.HandleStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Resume Manager API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/auth/register",
				"POST /api/v1/auth/login",
				"GET /api/v1/auth/me",
				"POST /api/v1/resumes/upload",
				"GET /api/v1/resumes",
				"GET /api/v1/resumes/:id/similar",
				"DELETE /api/v1/resumes/:id",
				"POST /api/v1/jobs/analyze",
				"GET /api/v1/analyses/:id",
				"POST /api/v1/ai/enhance-resume",
				"POST /api/v1/ai/interview-question",
				"POST /api/v1/ai/chat",
				"GET /api/v1/templates",
				"GET /api/v1/dashboard/stats",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
