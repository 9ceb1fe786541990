package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "github.com/heatwatch/heatwave-dashboard/internal/adapter/http"
	kafkaadapter "github.com/heatwatch/heatwave-dashboard/internal/adapter/kafka"
	"github.com/heatwatch/heatwave-dashboard/internal/alerting"
	"github.com/heatwatch/heatwave-dashboard/internal/config"
	"github.com/heatwatch/heatwave-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Alert publishing is feature-flagged via ALERTS_ENABLED.
	var (
		publisher *kafkaadapter.Publisher
		evaluator *alerting.Evaluator
		ready     httpadapter.ReadinessChecker
	)
	if cfg.AlertsEnabled {
		publisher = kafkaadapter.NewPublisher(cfg, logger)
		evaluator = alerting.New(cfg, publisher, logger, metrics)
		ready = evaluator
		logger.Info("alerting enabled",
			"topic", cfg.KafkaAlertTopic,
			"schedule", cfg.AlertSchedule,
			"min_level", cfg.AlertMinLevel,
		)
	} else {
		logger.Info("alerting disabled")
	}

	srv := httpadapter.NewServer(cfg, ready, metrics, logger)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start alert scheduler.
	if evaluator != nil {
		if err := evaluator.Start(ctx); err != nil {
			logger.Error("alert scheduler error", "error", err)
			stop()
		}
	}

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if evaluator != nil {
		evaluator.Stop()
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			logger.Error("kafka publisher close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
