package httphandler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/reviewreport/internal/application"
	"github.com/ericfisherdev/reviewreport/internal/domain/port/driven"
	"github.com/ericfisherdev/reviewreport/internal/logging"
)

// Handler is the HTTP driving adapter that serves the REST API.
type Handler struct {
	reports *application.ReviewReportService
	metrics *Metrics
	logger  *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(reports *application.ReviewReportService, metrics *Metrics, logger *slog.Logger) *Handler {
	return &Handler{
		reports: reports,
		metrics: metrics,
		logger:  logger,
	}
}

// RegisterAPIRoutes registers the report API and the metrics endpoint on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
	mux.HandleFunc("GET /api/v1/reports", h.ListReports)
	mux.HandleFunc("GET /api/v1/journals/{journal}/reports/reviews", h.ReviewReport)
	mux.Handle("GET /metrics", h.metrics.Handler())
}

// ApplyMiddleware wraps handler with request id, logging, metrics and
// recovery middleware.
func ApplyMiddleware(handler http.Handler, metrics *Metrics, logger *slog.Logger) http.Handler {
	// Recovery innermost so panics are caught before logging.
	wrapped := recoveryMiddleware(logger, handler)
	wrapped = metrics.middleware(wrapped)
	wrapped = loggingMiddleware(logger, wrapped)
	wrapped = requestIDMiddleware(wrapped)

	return wrapped
}

// NewServeMux creates an http.Handler with all routes registered and wrapped
// with middleware.
func NewServeMux(h *Handler, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()
	RegisterAPIRoutes(mux, h)
	return ApplyMiddleware(mux, h.metrics, logger)
}

// ListReports returns the report catalogue, labelled in the negotiated locale.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	locale := h.reports.Catalog().Match(r.URL.Query().Get("locale"), r.Header.Get("Accept-Language"))

	reports := h.reports.ListReports(locale)
	resp := make([]ReportResponse, 0, len(reports))
	for _, report := range reports {
		resp = append(resp, toReportResponse(report))
	}

	writeJSON(w, http.StatusOK, ReportListResponse{Locale: locale, Reports: resp})
}

// ReviewReport streams the review assignment report of a journal as a CSV
// download. The ?locale= parameter wins over Accept-Language; the journal's
// primary locale is the final fallback.
func (h *Handler) ReviewReport(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context(), h.logger)
	journalPath := r.PathValue("journal")
	start := time.Now()

	report, err := h.reports.Prepare(r.Context(), journalPath,
		r.URL.Query().Get("locale"),
		r.Header.Get("Accept-Language"),
	)
	if errors.Is(err, driven.ErrJournalNotFound) {
		h.metrics.observeReport(reportNotFound, 0, time.Since(start))
		writeError(w, http.StatusNotFound, "journal not found")
		return
	}
	if err != nil {
		logger.Error("failed to prepare review report", "journal", journalPath, "error", err)
		h.metrics.observeReport(reportFailed, 0, time.Since(start))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/comma-separated-values")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.Filename)
	w.WriteHeader(http.StatusOK)

	// The status line is already sent; failures from here on can only be logged.
	if err := report.WriteCSV(r.Context(), w); err != nil {
		logger.Error("failed to write review report",
			"journal", journalPath,
			"locale", report.Locale,
			"error", err,
		)
		h.metrics.observeReport(reportFailed, 0, time.Since(start))
		return
	}

	h.metrics.observeReport(reportOK, report.Rows(), time.Since(start))
	logger.Info("review report generated",
		"journal", journalPath,
		"locale", report.Locale,
		"rows", report.Rows(),
	)
}

// Health returns a simple health check response.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   time.Now().UTC().Format(time.RFC3339),
	})
}
