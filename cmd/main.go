package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stemi-service/config"
	"stemi-service/internal/handlers"
	"stemi-service/internal/metrics"
	"stemi-service/internal/scoring"
	"stemi-service/internal/services"
)

func main() {
	config.InitLogger()
	slog.Info("Starting STEMI scoring service", "version", "1.0.0")

	// 1. Загрузка конфигурации
	cfg := config.Load()
	slog.Info("Configuration loaded successfully",
		"server_port", cfg.Server.Port,
		"gin_mode", cfg.Server.Mode,
	)

	// 2. Скоринговый движок: таблица коэффициентов проверяется при старте,
	// поврежденная таблица — фатальная ошибка, а не тихое продолжение
	engine, err := scoring.NewEngine(scoring.DefaultCoefficients(), scoring.DefaultThresholds())
	if err != nil {
		slog.Error("Failed to initialize scoring engine", "error", err)
		os.Exit(1)
	}
	slog.Info("Scoring engine initialized", "model_version", engine.ModelVersion())

	// 3. Инициализация сервисов и обработчиков
	m := metrics.NewPrometheusMetrics()
	predictionService := services.NewPredictionService(engine, m)
	predictHandler := handlers.NewPredictHandler(predictionService, m)

	// 4. Настройка роутера
	router := handlers.SetupRoutes(cfg, predictHandler)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Server started successfully", "port", cfg.Server.Port)

	waitForShutdown(server)
}

func waitForShutdown(server *http.Server) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	slog.Info("Shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully")
}
