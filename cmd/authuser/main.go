package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ead/internal/config"
	"ead/internal/database"
	"ead/internal/handlers"
	"ead/internal/logger"
	"ead/internal/middleware"
	"ead/internal/repositories"
	"ead/internal/services"
	"ead/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load(config.ServiceAuthUser)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// --- Database ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, zlog)
	if err != nil {
		zlog.Fatal("failed to open database", zap.Error(err))
	}
	defer database.Close(db)
	if err := database.MigrateUsers(db); err != nil {
		zlog.Fatal("failed to migrate database", zap.Error(err))
	}

	// --- User events ---
	// An empty RABBITMQ_URL runs the service without publishing.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.UserEventExchange}, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize RabbitMQ client", zap.Error(err))
		}
		defer mqClient.Close()
		publisher = mqClient
	} else {
		zlog.Warn("RABBITMQ_URL not set, user events will not be published")
	}

	app := newApp(cfg, db, publisher, zlog)

	// --- Start HTTP Server ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		zlog.Info("starting server", zap.String("service", cfg.Service), zap.String("port", cfg.AppPort))
		if err := app.Listen(cfg.AppPort); err != nil {
			zlog.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	zlog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Error("error during fiber shutdown", zap.Error(err))
	}
	zlog.Info("server gracefully stopped")
}

// newApp wires repositories, services and handlers of the authuser service.
func newApp(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, zlog *zap.Logger) *fiber.App {
	userRepo := repositories.NewGORMUserRepository(db)

	opts := []services.Option{services.WithLogger(zlog), services.WithPublisher(publisher)}
	authService := services.NewAuthService(userRepo, opts...)
	userService := services.NewUserService(userRepo, opts...)

	authHandler := handlers.NewAuthHandler(authService, zlog)
	userHandler := handlers.NewUserHandler(userService, zlog)

	app := fiber.New(fiber.Config{
		AppName:      "ead-authuser",
		ErrorHandler: middleware.ErrorHandler(zlog),
	})

	app.Use(recover.New())
	app.Use(middleware.RequestLogger(zlog))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSOrigins, MaxAge: 3600}))

	authHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"service": cfg.Service,
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	return app
}
