package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"skillpath-service/internal/catalog"
	"skillpath-service/internal/config"
	"skillpath-service/internal/database/mongo"
	"skillpath-service/internal/database/redis"
	"skillpath-service/internal/engine"
	"skillpath-service/internal/event"
	"skillpath-service/internal/handlers"
	"skillpath-service/internal/repository"
	"skillpath-service/internal/services"
	"skillpath-service/pkg/discovery"

	"github.com/gofiber/fiber/v3"
)

func setupLogging() (*os.File, error) {
	logDir := filepath.Join("/skillpath", "log", "skillpath_service")
	err := os.MkdirAll(logDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create log directory: %v", err)
	}

	currentTime := time.Now()
	logFileName := fmt.Sprintf("log_%s.log", currentTime.Format("2006-01-02"))
	logFile := filepath.Join(logDir, logFileName)

	file, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}

	log.SetOutput(file)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	return file, nil
}

func main() {
	logFile, err := setupLogging()
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer logFile.Close()

	cfg := config.ServiceConfig

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("SkillPath Service is healthy")
	})

	// Load the career-path catalogue (built-in data + optional overlay files)
	pathCatalog := catalog.New()
	if err := pathCatalog.InitializeData(cfg.SkillPath.DataDirectory); err != nil {
		log.Fatalf("Failed to load catalog data: %v", err)
	}

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(mongo.Mongo_Database, "student_profiles")
	recRepo := repository.NewRecommendationRepository(mongo.Mongo_Database, "skill_path_recommendations")
	subRepo := repository.NewSubscriptionRepository(mongo.Mongo_Database, "subscriptions")
	redisRepo := repository.NewRedisRepo(redis.Redis_Client)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := profileRepo.InitializeIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to initialize profile indexes: %v", err)
	}
	if err := recRepo.InitializeIndexes(indexCtx); err != nil {
		log.Printf("Warning: Failed to initialize recommendation indexes: %v", err)
	}
	indexCancel()

	// Initialize event publisher
	eventPublisher, err := event.NewEventPublisher(cfg.RabbitMQ.URI, cfg.RabbitMQ.Exchange)
	if err != nil {
		log.Printf("Warning: Failed to initialize event publisher, events disabled: %v", err)
		eventPublisher, _ = event.NewEventPublisher("", cfg.RabbitMQ.Exchange)
	}

	// Initialize the recommendation engine and orchestrating service
	engineConfig := &engine.Config{
		BaseLevel:         cfg.SkillPath.BaseLevel,
		ProjectIncrement:  cfg.SkillPath.ProjectIncrement,
		RecencyBonus:      cfg.SkillPath.RecencyBonus,
		RecencyWindow:     cfg.SkillPath.RecencyWindow,
		MaxGaps:           cfg.SkillPath.MaxGaps,
		HoursPerDelta:     cfg.SkillPath.HoursPerDelta,
		MinEstimatedHours: cfg.SkillPath.MinEstimatedHours,
		MaxEstimatedHours: cfg.SkillPath.MaxEstimatedHours,
		PresenceThreshold: cfg.SkillPath.PresenceThreshold,
	}
	skillPathEngine := engine.New(engineConfig, pathCatalog)

	skillPathService := services.NewSkillPathService(
		profileRepo,
		recRepo,
		subRepo,
		redisRepo,
		skillPathEngine,
		pathCatalog,
		eventPublisher,
		&cfg.SkillPath,
	)

	// Initialize and register handlers
	skillPathHandler := handlers.NewSkillPathHandler(skillPathService)
	skillPathHandler.RegisterRoutes(app)

	shutdownChan := make(chan os.Signal, 1)
	doneChan := make(chan bool, 1)

	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
		doneChan <- true
	}()

	<-shutdownChan
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("Error shutting down HTTP server: %v", err)
	}

	// Close event publisher
	if eventPublisher != nil {
		if err := eventPublisher.Close(); err != nil {
			log.Printf("Error closing event publisher: %v", err)
		}
	}

	// Disconnect from MongoDB
	mongo.DisconnectMongo()

	// Deregister from service discovery
	if discovery.ServiceDiscovery != nil {
		if err := discovery.ServiceDiscovery.Deregister(); err != nil {
			log.Printf("Error deregistering from service discovery: %v", err)
		}
	}

	<-doneChan
	log.Println("Server shutdown complete")
}
