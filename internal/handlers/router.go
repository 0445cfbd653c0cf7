package handlers

import (
	"time"

	"stemi-service/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title STEMI Risk Scoring API
// @version 1.0
// @description API оценки вероятности STEMI по клиническим признакам пациента

// @host localhost:8053
// @BasePath /api/v1

// @tag.name stemi
// @tag.description Скоринг вероятности STEMI

// @tag.name health
// @tag.description Мониторинг состояния сервиса

// SetupRoutes настраивает маршруты REST API
func SetupRoutes(cfg *config.Config, predictHandler *PredictHandler) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()

	// Middleware
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Prometheus
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API группа
	api := r.Group("/api/v1")
	{
		api.POST("/stemi/predict", predictHandler.Predict)
		api.GET("/stemi/model", predictHandler.Model)
		api.GET("/stemi/health", predictHandler.Health)
	}

	return r
}

// requestID проставляет X-Request-ID каждому запросу
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
