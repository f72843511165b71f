package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Vodeneev/sofacheck/internal/pkg/config"
)

// SetupLogger installs the global logger. Logs go to stderr so the report on
// stdout can be piped or diffed as is.
func SetupLogger(cfg *config.LoggingConfig, serviceName string) (*slog.Logger, error) {
	return setupLoggerWithWriter(cfg, serviceName, os.Stderr)
}

func setupLoggerWithWriter(cfg *config.LoggingConfig, serviceName string, w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	logger := slog.New(handler).With("service", serviceName)

	// Устанавливаем как глобальный логгер
	slog.SetDefault(logger)

	return logger, nil
}

// ParseLevel accepts debug, info, warn and error (case-insensitive). An empty
// level means info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
