package server

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/moduhak/moduhak-backend/internal/handlers"
	"github.com/moduhak/moduhak-backend/internal/middleware"
)

type RouterConfig struct {
	AllowedOrigins      []string
	AuthHandler         *handlers.AuthHandler
	AuthMiddleware      *middleware.AuthMiddleware
	ProfileHandler      *handlers.ProfileHandler
	LearningHandler     *handlers.LearningHandler
	CharacterHandler    *handlers.CharacterHandler
	LearningListHandler *handlers.LearningListHandler
	ReportHandler       *handlers.ReportHandler
	StatisticsHandler   *handlers.StatisticsHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.RequestID())
	router.Use(otelgin.Middleware("moduhak-backend"))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/register", cfg.AuthHandler.Register)
	router.POST("/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	// Profiles
	protected.GET("/profiles/get", cfg.ProfileHandler.Get)
	protected.POST("/profiles/set", cfg.ProfileHandler.Set)
	protected.DELETE("/profiles/rm", cfg.ProfileHandler.Remove)
	// Learning sessions
	protected.POST("/learn/start", cfg.LearningHandler.Start)
	protected.POST("/learn/step", cfg.LearningHandler.Step)
	protected.GET("/learn/logs", cfg.LearningHandler.Logs)
	protected.GET("/answers", cfg.LearningHandler.Answers)
	// Character customization
	protected.POST("/character/update", cfg.CharacterHandler.Update)
	protected.GET("/character/get", cfg.CharacterHandler.Get)
	// Learning list
	protected.POST("/learning_list/add", cfg.LearningListHandler.Add)
	protected.POST("/learning_list/scenarios", cfg.LearningListHandler.Scenarios)
	protected.POST("/learning_list/remove", cfg.LearningListHandler.Remove)
	// Reports and statistics
	protected.POST("/learn/ai_report", cfg.ReportHandler.Generate)
	protected.GET("/learn/ai_report", cfg.ReportHandler.Get)
	protected.GET("/statics", cfg.StatisticsHandler.Get)

	return router
}
