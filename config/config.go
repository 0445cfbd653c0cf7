package config

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

type Config struct {
	Server ServerConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	AllowOrigins []string
}

// Load загружает конфигурацию сервера из переменных окружения.
// Коэффициенты модели и пороги риска конфигурацией не являются:
// это константы, зашитые вместе с версией модели.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8053"),
			Mode:         getEnv("GIN_MODE", gin.ReleaseMode),
			AllowOrigins: strings.Split(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000"), ","),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
