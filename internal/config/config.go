package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/heatwatch/heatwave-dashboard/internal/domain"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
	CORSOrigins     []string

	// Series defaults used when a request omits parameters.
	Location         string
	SeriesSeed       int64
	SeriesWindowDays int

	// Kafka alert publishing configuration.
	AlertsEnabled   bool
	KafkaBrokers    []string
	KafkaAlertTopic string
	AlertSchedule   string
	AlertMinLevel   domain.RiskLevel
}

// Load reads configuration from environment variables, applying defaults
// where unset. A .env file in the working directory is merged in first when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load() // optional; a missing .env is fine

	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	seed, err := parseInt64("SERIES_SEED", 7)
	if err != nil {
		return nil, err
	}

	windowDays, err := parseInt("SERIES_WINDOW_DAYS", 7)
	if err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		return nil, errors.New("SERIES_WINDOW_DAYS must be positive")
	}

	minLevel, err := domain.ParseRiskLevel(envOrDefault("ALERT_MIN_LEVEL", "HIGH"))
	if err != nil {
		return nil, fmt.Errorf("invalid ALERT_MIN_LEVEL: %w", err)
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		CORSOrigins:     splitList(envOrDefault("CORS_ORIGINS", "*")),

		Location:         envOrDefault("LOCATION", "Kuala Lumpur"),
		SeriesSeed:       seed,
		SeriesWindowDays: windowDays,

		AlertsEnabled:   os.Getenv("ALERTS_ENABLED") == "true",
		KafkaBrokers:    splitList(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaAlertTopic: envOrDefault("KAFKA_ALERT_TOPIC", "heatwave-alerts"),
		AlertSchedule:   envOrDefault("ALERT_SCHEDULE", "0 6 * * *"),
		AlertMinLevel:   minLevel,
	}

	if cfg.AlertsEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("ALERTS_ENABLED is true but KAFKA_BROKERS is empty")
		}
		if cfg.KafkaAlertTopic == "" {
			return nil, errors.New("ALERTS_ENABLED is true but KAFKA_ALERT_TOPIC is empty")
		}
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parseInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
