package config

import (
	"time"

	"github.com/moduhak/moduhak-backend/internal/logger"
	"github.com/moduhak/moduhak-backend/internal/utils"
)

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type OpenAI struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Config struct {
	Port           string
	AllowedOrigins []string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
	Database       Database
	OpenAI         OpenAI
}

// Load reads every recognized environment option once at process start.
// Components receive the resulting struct (or a sub-struct) explicitly;
// nothing else in the codebase reads the environment.
func Load(log *logger.Logger) Config {
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	openAITimeoutSeconds := utils.GetEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60, log)
	return Config{
		Port: utils.GetEnv("PORT", "8080", log),
		AllowedOrigins: utils.GetEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:80",
			"http://localhost:3000",
		}, log),
		JWTSecretKey:   utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
		Database: Database{
			Host:     utils.GetEnv("MYSQL_HOST", "localhost", log),
			Port:     utils.GetEnv("MYSQL_PORT", "3306", log),
			User:     utils.GetEnv("MYSQL_USER", "root", log),
			Password: utils.GetEnv("MYSQL_PASSWORD", "", log),
			Name:     utils.GetEnv("MYSQL_DATABASE", "moduhak", log),
		},
		OpenAI: OpenAI{
			APIKey:  utils.GetEnv("OPENAI_API_KEY", "", log),
			Model:   utils.GetEnv("OPENAI_MODEL", "gpt-4o-2024-08-06", log),
			Timeout: time.Duration(openAITimeoutSeconds) * time.Second,
		},
	}
}
