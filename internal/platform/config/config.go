package config

import (
	"log/slog"
	"os"
	"strings"
)

// Validation captures settings for hosts embedding the observed validator.
type Validation struct {
	LogLevel         slog.Level
	MetricsEnabled   bool
	MetricsNamespace string
}

// FromEnv builds a Validation config from environment variables.
func FromEnv() Validation {
	namespace := os.Getenv("CNP_METRICS_NAMESPACE")
	if namespace == "" {
		namespace = "cnp"
	}

	return Validation{
		LogLevel:         parseLevel(os.Getenv("CNP_LOG_LEVEL")),
		MetricsEnabled:   os.Getenv("CNP_METRICS_ENABLED") == "true",
		MetricsNamespace: namespace,
	}
}

// parseLevel falls back to info for empty or unknown values.
func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
