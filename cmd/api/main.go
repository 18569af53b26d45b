// @title StudyLink API
// @version 1.0
// @description Token-gated API for the StudyLink learning platform.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-Auth-Token
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"studylink/internal/adapter"
	"studylink/internal/cache"
	"studylink/internal/config"
	"studylink/internal/database"
	"studylink/internal/domain"
	"studylink/internal/handler"
	"studylink/internal/logger"
	"studylink/internal/middleware"
	"studylink/internal/repository"
	"studylink/internal/service"
	"studylink/internal/storage"
	"studylink/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	if cfg.IsDefaultJWTSecret() {
		appLogger.Warn("JWT secret is the insecure default; set JWT_SECRET before exposing this server")
	}

	// Connect to database
	db, err := database.NewPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Initialize repositories
	userRepository := repository.NewUserRepository(db)
	progressRepository := repository.NewProgressRepository(db)
	chatRepository := repository.NewChatRepository(db)
	materialRepository := repository.NewMaterialRepository(db)
	enrollmentRepository := repository.NewEnrollmentRepository(db)
	txManager := repository.NewTransactionManagerAdapter(db)

	// Initialize Redis client and cache adapter
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize object storage
	fileStore, err := storage.NewGCSFileStore(context.Background(), cfg.Storage)
	if err != nil {
		appLogger.Fatal("Failed to initialize file store", zap.Error(err))
	}
	appLogger.Info("File store initialized", zap.String("bucket", cfg.Storage.Bucket))

	// Initialize services
	validator := validation.NewValidator()
	authService := service.NewAuthService(userRepository, progressRepository, txManager, validator, cfg)
	chatService := service.NewChatService(chatRepository, cacheAdapter, validator, cfg.Redis.UnreadCountTTL)
	materialService := service.NewMaterialService(materialRepository, fileStore, validator)
	progressService := service.NewProgressService(progressRepository, enrollmentRepository)
	teacherService := service.NewTeacherService(userRepository, enrollmentRepository, materialRepository, validator)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	chatHandler := handler.NewChatHandler(chatService)
	materialHandler := handler.NewMaterialHandler(materialService)
	progressHandler := handler.NewProgressHandler(progressService, authService)
	teacherHandler := handler.NewTeacherHandler(teacherService)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(middleware.CORS())
	app.Use(recover.New())

	authenticated := middleware.Protected(authService)
	teacherOnly := middleware.Protected(authService, domain.RoleTeacher)

	apiGroup := app.Group("/api")

	// Auth routes
	apiGroup.Post("/auth", authHandler.Post)
	apiGroup.Get("/auth", authenticated, authHandler.GetProfile)

	// Chat routes
	apiGroup.Get("/chat", authenticated, chatHandler.GetThread)
	apiGroup.Post("/chat", authenticated, chatHandler.Post)

	// Material routes: listing for both roles, mutations teacher-only
	apiGroup.Get("/materials", authenticated, materialHandler.List)
	apiGroup.Post("/materials", teacherOnly, materialHandler.Post)
	apiGroup.Delete("/materials", teacherOnly, materialHandler.Delete)

	// Progress routes
	apiGroup.Get("/progress", authenticated, progressHandler.Get)
	apiGroup.Post("/progress", authenticated, progressHandler.Post)

	// Teacher routes
	apiGroup.Get("/teacher", teacherOnly, teacherHandler.Get)
	apiGroup.Post("/teacher", teacherOnly, teacherHandler.Post)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
