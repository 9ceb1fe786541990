package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// series generator and the alert evaluator.
type Metrics struct {
	SeriesGenerated prometheus.Counter
	SeriesLength    prometheus.Histogram

	RiskAssessments *prometheus.CounterVec // label: level={LOW,MEDIUM,HIGH}

	// Alert evaluation metrics.
	EvaluationDuration prometheus.Histogram
	AlertsPublished    prometheus.Counter
	AlertPublishErrors prometheus.Counter
	SchedulerRunning   prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		SeriesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "series_generated_total",
			Help:      "Total synthetic series generated.",
		}),
		SeriesLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatwave",
			Name:      "series_length_days",
			Help:      "Number of daily records per generated series.",
			Buckets:   []float64{1, 3, 7, 14, 31, 92, 366},
		}),
		RiskAssessments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "risk_assessments_total",
			Help:      "Window-level risk classifications by level.",
		}, []string{"level"}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "heatwave",
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of a scheduled alert evaluation.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "alerts_published_total",
			Help:      "Total heat alerts published to the alert topic.",
		}),
		AlertPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "heatwave",
			Name:      "alert_publish_errors_total",
			Help:      "Total failed attempts to publish a heat alert.",
		}),
		SchedulerRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "heatwave",
			Name:      "scheduler_running",
			Help:      "1 when the alert scheduler is active, 0 when shut down.",
		}),
	}

	prometheus.MustRegister(
		m.SeriesGenerated,
		m.SeriesLength,
		m.RiskAssessments,
		m.EvaluationDuration,
		m.AlertsPublished,
		m.AlertPublishErrors,
		m.SchedulerRunning,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		SeriesGenerated:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatwave", Name: "series_generated_total"}),
		SeriesLength:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "heatwave", Name: "series_length_days"}),
		RiskAssessments:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "heatwave", Name: "risk_assessments_total"}, []string{"level"}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "heatwave", Name: "evaluation_duration_seconds"}),
		AlertsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatwave", Name: "alerts_published_total"}),
		AlertPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "heatwave", Name: "alert_publish_errors_total"}),
		SchedulerRunning:   prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "heatwave", Name: "scheduler_running"}),
	}
}
