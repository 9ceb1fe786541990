package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/heatwatch/heatwave-dashboard/internal/config"
	"github.com/heatwatch/heatwave-dashboard/internal/dashboard"
	"github.com/heatwatch/heatwave-dashboard/internal/domain"
	"github.com/heatwatch/heatwave-dashboard/internal/observability"
)

const dateLayout = "2006-01-02"

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the dashboard page, the series JSON API, and the health,
// readiness, and metrics endpoints.
type Server struct {
	httpServer *http.Server
	cfg        *config.Config
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewServer wires all routes. A nil ReadinessChecker means the service is
// always ready (alerting disabled).
func NewServer(cfg *config.Config, ready ReadinessChecker, metrics *observability.Metrics, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet},
	})

	s := &Server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      corsMiddleware.Handler(mux),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
	}

	mux.HandleFunc("GET /{$}", s.handleDashboard)
	mux.HandleFunc("GET /api/series", s.handleSeries)
	mux.HandleFunc("GET /api/summary", s.handleSummary)
	mux.HandleFunc("GET /api/reference", s.handleReference)
	mux.HandleFunc("GET /api/locations", s.handleLocations)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// seriesResponse wraps the generated records with the effective parameters,
// so clients see which defaults were applied.
type seriesResponse struct {
	Location string               `json:"location"`
	Start    time.Time            `json:"start"`
	End      time.Time            `json:"end"`
	Seed     int64                `json:"seed"`
	Records  []domain.DailyRecord `json:"records"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboard.HTML()))
}

func (s *Server) handleSeries(w http.ResponseWriter, r *http.Request) {
	start, end, seed, err := s.seriesParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	records, _ := s.generate(start, end, seed)
	writeJSON(w, http.StatusOK, seriesResponse{
		Location: s.cfg.Location,
		Start:    start,
		End:      end,
		Seed:     seed,
		Records:  records,
	})
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	start, end, seed, err := s.seriesParams(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	_, summary := s.generate(start, end, seed)
	writeJSON(w, http.StatusOK, summary)
}

func (s *Server) handleReference(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.GlobalReference())
}

func (s *Server) handleLocations(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, domain.Locations())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if checker == nil {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// generate runs the domain generator and summarizes the result exactly once
// per request, recording the series metrics along the way.
func (s *Server) generate(start, end time.Time, seed int64) ([]domain.DailyRecord, domain.Summary) {
	records := domain.GenerateSeries(start, end, seed)
	summary := domain.Summarize(records)
	summary.Location = s.cfg.Location

	s.metrics.SeriesGenerated.Inc()
	s.metrics.SeriesLength.Observe(float64(len(records)))
	s.metrics.RiskAssessments.WithLabelValues(string(summary.Risk)).Inc()

	return records, summary
}

// seriesParams resolves start/end/seed from the query, falling back to the
// configured rolling window and default seed. The start <= end precondition
// is enforced here, at the service boundary, so the domain generator never
// sees a reversed range.
func (s *Server) seriesParams(r *http.Request) (start, end time.Time, seed int64, err error) {
	q := r.URL.Query()

	start, end = domain.DefaultWindow(s.cfg.SeriesWindowDays)
	seed = s.cfg.SeriesSeed

	if v := q.Get("start"); v != "" {
		if start, err = time.Parse(dateLayout, v); err != nil {
			return start, end, seed, fmt.Errorf("invalid start date %q, want YYYY-MM-DD", v)
		}
	}
	if v := q.Get("end"); v != "" {
		if end, err = time.Parse(dateLayout, v); err != nil {
			return start, end, seed, fmt.Errorf("invalid end date %q, want YYYY-MM-DD", v)
		}
	}
	if v := q.Get("seed"); v != "" {
		if seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return start, end, seed, fmt.Errorf("invalid seed %q", v)
		}
	}

	if start.After(end) {
		return start, end, seed, fmt.Errorf("start date must be <= end date")
	}
	return start, end, seed, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
