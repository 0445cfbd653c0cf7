package config

import (
	"log/slog"
	"os"
)

var Logger *slog.Logger

func InitLogger() {
	level := parseLevel(os.Getenv("LOG_LEVEL"))

	var handler slog.Handler

	if os.Getenv("ENV") == "production" {
		// Продакшен: JSON формат
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: replaceTimeAttr,
			AddSource:   true,
		})
	}

	// Каждая запись сервиса скоринга помечается именем сервиса,
	// чтобы логи различались в общем потоке медицинских сервисов
	Logger = slog.New(handler).With("service", "stemi-service")
	slog.SetDefault(Logger)

	slog.Info("Logger initialized successfully", "log_level", level.String())
}

func parseLevel(raw string) slog.Level {
	switch raw {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func replaceTimeAttr(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.String("time", a.Value.Time().Local().Format("2006-01-02 15:04:05"))
	}
	return a
}
