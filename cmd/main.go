package main

import (
	"context"
	"fmt"
	"os"

	"github.com/moduhak/moduhak-backend/internal/config"
	"github.com/moduhak/moduhak-backend/internal/db"
	"github.com/moduhak/moduhak-backend/internal/handlers"
	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/middleware"
	"github.com/moduhak/moduhak-backend/internal/observability"
	"github.com/moduhak/moduhak-backend/internal/repos"
	"github.com/moduhak/moduhak-backend/internal/server"
	"github.com/moduhak/moduhak-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	log.Info("Loading configuration from main...")
	cfg := config.Load(log)

	// Tracing
	shutdownOtel := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "moduhak-backend",
		Environment: os.Getenv("APP_ENV"),
		Version:     os.Getenv("APP_VERSION"),
	})
	if shutdownOtel != nil {
		defer shutdownOtel(context.Background())
	}

	// MySQL
	mysqlService, err := db.NewMySQLService(log, cfg.Database)
	if err != nil {
		log.Error("MySQL init failed", "error", err)
		os.Exit(1)
	}
	if err = mysqlService.AutoMigrateAll(); err != nil {
		log.Warn("MySQL auto migration failed", "error", err)
	}
	theDB := mysqlService.DB()

	// Repos
	log.Info("Setting up repos from main...")
	userRepo := repos.NewUserRepo(theDB, log)
	profileRepo := repos.NewProfileRepo(theDB, log)
	scenarioRepo := repos.NewScenarioRepo(theDB, log)
	learningLogRepo := repos.NewLearningLogRepo(theDB, log)
	answerRepo := repos.NewAnswerRepo(theDB, log)
	learningListRepo := repos.NewLearningListRepo(theDB, log)
	characterRepo := repos.NewCharacterRepo(theDB, log)
	learningReportRepo := repos.NewLearningReportRepo(theDB, log)
	staticsRepo := repos.NewStaticsRepo(theDB, log)

	// Services
	log.Info("Setting up services from main...")
	evaluator, err := services.NewOpenAIEvaluator(log, cfg.OpenAI)
	if err != nil {
		log.Error("Could not init evaluation generator", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(log, userRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL)
	profileService := services.NewProfileService(log, profileRepo)
	learningService := services.NewLearningService(log, learningLogRepo, answerRepo, scenarioRepo)
	characterService := services.NewCharacterService(log, characterRepo)
	learningListService := services.NewLearningListService(log, learningListRepo, scenarioRepo)
	reportService := services.NewReportService(theDB, log, learningLogRepo, scenarioRepo, answerRepo, learningReportRepo, staticsRepo, evaluator)
	statisticsService := services.NewStatisticsService(theDB, log, learningLogRepo, answerRepo, scenarioRepo, staticsRepo)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	learningHandler := handlers.NewLearningHandler(learningService)
	characterHandler := handlers.NewCharacterHandler(characterService)
	learningListHandler := handlers.NewLearningListHandler(learningListService)
	reportHandler := handlers.NewReportHandler(reportService)
	statisticsHandler := handlers.NewStatisticsHandler(statisticsService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AllowedOrigins:      cfg.AllowedOrigins,
		AuthHandler:         authHandler,
		AuthMiddleware:      authMiddleware,
		ProfileHandler:      profileHandler,
		LearningHandler:     learningHandler,
		CharacterHandler:    characterHandler,
		LearningListHandler: learningListHandler,
		ReportHandler:       reportHandler,
		StatisticsHandler:   statisticsHandler,
	})

	log.Info("Server listening", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
