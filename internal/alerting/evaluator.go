// Package alerting runs scheduled risk evaluations and publishes heat alerts.
package alerting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heatwatch/heatwave-dashboard/internal/config"
	"github.com/heatwatch/heatwave-dashboard/internal/domain"
	"github.com/heatwatch/heatwave-dashboard/internal/observability"
)

// AlertPublisher delivers a heat alert to downstream consumers.
type AlertPublisher interface {
	Publish(ctx context.Context, alert domain.HeatAlert) error
}

// Evaluator regenerates the rolling window on a cron schedule, classifies it,
// and publishes an alert when the window risk reaches the configured level.
type Evaluator struct {
	cfg       *config.Config
	publisher AlertPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
	cron      *cron.Cron
	ready     atomic.Bool
}

// New creates an Evaluator. The schedule comes from cfg.AlertSchedule.
func New(cfg *config.Config, publisher AlertPublisher, logger *slog.Logger, metrics *observability.Metrics) *Evaluator {
	return &Evaluator{
		cfg:       cfg,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
		cron:      cron.New(),
	}
}

// CheckReadiness returns nil once at least one evaluation has completed.
func (e *Evaluator) CheckReadiness(_ context.Context) error {
	if !e.ready.Load() {
		return errors.New("no evaluation has completed yet")
	}
	return nil
}

// Start runs one evaluation immediately, then schedules recurring runs.
func (e *Evaluator) Start(ctx context.Context) error {
	if err := e.Evaluate(ctx); err != nil {
		e.logger.Error("initial evaluation failed", "error", err)
	}

	_, err := e.cron.AddFunc(e.cfg.AlertSchedule, func() {
		if err := e.Evaluate(ctx); err != nil {
			e.logger.Error("scheduled evaluation failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("invalid alert schedule %q: %w", e.cfg.AlertSchedule, err)
	}

	e.cron.Start()
	e.metrics.SchedulerRunning.Set(1)
	e.logger.Info("alert scheduler started",
		"schedule", e.cfg.AlertSchedule,
		"min_level", e.cfg.AlertMinLevel,
	)
	return nil
}

// Stop halts the scheduler and waits for any running evaluation to finish.
func (e *Evaluator) Stop() {
	stopCtx := e.cron.Stop()
	<-stopCtx.Done()
	e.metrics.SchedulerRunning.Set(0)
	e.logger.Info("alert scheduler stopped")
}

// Evaluate generates the current rolling window, summarizes it, and publishes
// an alert when the window risk is at or above the configured minimum level.
func (e *Evaluator) Evaluate(ctx context.Context) error {
	start := time.Now()

	windowStart, windowEnd := domain.DefaultWindow(e.cfg.SeriesWindowDays)
	records := domain.GenerateSeries(windowStart, windowEnd, e.cfg.SeriesSeed)
	summary := domain.Summarize(records)
	summary.Location = e.cfg.Location

	e.metrics.EvaluationDuration.Observe(time.Since(start).Seconds())
	e.metrics.RiskAssessments.WithLabelValues(string(summary.Risk)).Inc()
	e.ready.Store(true)

	if summary.Risk.Rank() < e.cfg.AlertMinLevel.Rank() {
		e.logger.Debug("window risk below alert level",
			"risk", summary.Risk,
			"min_level", e.cfg.AlertMinLevel,
		)
		return nil
	}

	alert := domain.NewHeatAlert(e.cfg.Location, summary)
	if err := e.publisher.Publish(ctx, alert); err != nil {
		e.metrics.AlertPublishErrors.Inc()
		return err
	}
	e.metrics.AlertsPublished.Inc()
	return nil
}
