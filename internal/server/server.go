package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/iwvelando/vendor-insights/internal/content"
	"github.com/iwvelando/vendor-insights/internal/insights"
	"github.com/iwvelando/vendor-insights/internal/rotation"
	"github.com/iwvelando/vendor-insights/pkg/constants"
	"github.com/iwvelando/vendor-insights/pkg/datetime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	service     *insights.Service
	maxBodySize int64
	version     string
}

// Options configures the HTTP handler.
type Options struct {
	MaxBodySize    int64
	Version        string
	AllowedOrigins []string
}

// NewHandler constructs the HTTP handler that serves the daily quote and
// recommendation API.
func NewHandler(logger *zap.Logger, service *insights.Service, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if opts.MaxBodySize <= 0 {
		opts.MaxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	h := &handler{logger: logger, service: service, maxBodySize: opts.MaxBodySize, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", h.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		// Version endpoint for dashboard metadata
		r.Get("/version", h.handleVersion)

		r.Route("/vendors/{vendorID}", func(r chi.Router) {
			r.Get("/quote", h.handleQuote)
			r.Get("/quotes", h.handleRecentQuotes)
			r.Post("/recommendations", h.handleRecommendations)
		})
	})

	return r
}

// New wraps handler in an http.Server using the timeouts of cfg.
func New(cfg *Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}
}

type quoteResponse struct {
	VendorID string        `json:"vendorId"`
	Day      string        `json:"day"`
	Quote    content.Quote `json:"quote"`
}

type recentQuotesResponse struct {
	VendorID string                `json:"vendorId"`
	Quotes   []insights.DatedQuote `json:"quotes"`
}

type recommendationsResponse struct {
	VendorID        string                    `json:"vendorId"`
	Day             string                    `json:"day"`
	Recommendations content.RecommendationSet `json:"recommendations"`
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuote"

	vendorID := vendorParam(r)
	day, err := h.requestDay(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	quote, err := h.service.DailyQuoteAt(vendorID, day)
	if err != nil {
		h.respondServiceError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, quoteResponse{
		VendorID: vendorID,
		Day:      h.service.DayKey(day),
		Quote:    quote,
	})
}

func (h *handler) handleRecentQuotes(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRecentQuotes"

	vendorID := vendorParam(r)
	day, err := h.requestDay(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	days := constants.DefaultRecentDays
	if raw := strings.TrimSpace(r.URL.Query().Get("days")); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days <= 0 || days > constants.MaxRecentDays {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("days must be an integer between 1 and %d", constants.MaxRecentDays), op)
			return
		}
	}

	quotes, err := h.service.RecentQuotesAt(vendorID, days, day)
	if err != nil {
		h.respondServiceError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, recentQuotesResponse{VendorID: vendorID, Quotes: quotes})
}

func (h *handler) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleRecommendations"

	vendorID := vendorParam(r)
	day, err := h.requestDay(r)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var metrics content.VendorMetrics
	if err := decoder.Decode(&metrics); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode metrics: %v", err), op)
		return
	}

	set, err := h.service.DailyRecommendationsAt(vendorID, metrics, day)
	if err != nil {
		h.respondServiceError(w, err, op)
		return
	}

	h.writeJSON(w, http.StatusOK, recommendationsResponse{
		VendorID:        vendorID,
		Day:             h.service.DayKey(day),
		Recommendations: set,
	})
}

// vendorParam returns the vendor id path segment decoded exactly once. chi
// matches on RawPath only when the request carried escapes that Path cannot
// represent, such as an encoded slash; otherwise the segment is already decoded.
func vendorParam(r *http.Request) string {
	raw := chi.URLParam(r, "vendorID")
	if r.URL.RawPath == "" {
		return raw
	}
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// requestDay returns the simulated day from the optional date query
// parameter, or the service clock's current instant.
func (h *handler) requestDay(r *http.Request) (time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("date"))
	if raw == "" {
		return h.service.Now(), nil
	}
	return datetime.ParseDay(raw, h.service.Location())
}

func (h *handler) respondServiceError(w http.ResponseWriter, err error, op string) {
	var poolErr *rotation.InvalidPoolError
	var cfgErr *content.ConfigurationError
	switch {
	case errors.Is(err, insights.ErrInvalidEntityID), errors.Is(err, insights.ErrInvalidMetrics):
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
	case errors.As(err, &poolErr), errors.As(err, &cfgErr):
		h.respondErrorWithOp(w, http.StatusInternalServerError, "content pool misconfigured", op)
	default:
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		h.logger.Info("request served",
			zap.String("op", "server.logRequests"),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
