package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/model"
	"github.com/secmon-lab/ajaxdemo/pkg/domain/types"
	"github.com/secmon-lab/ajaxdemo/pkg/service/display"
	"github.com/secmon-lab/ajaxdemo/pkg/usecase"
)

// DemoUseCase runs named demo actions
type DemoUseCase interface {
	Actions() []types.ActionName
	Trigger(ctx context.Context, name types.ActionName) (*usecase.Action, error)
	State(panel types.PanelID) types.ActionState
}

// RegionReader reads display regions
type RegionReader interface {
	Get(id types.RegionID) display.Region
}

// NotificationLister lists the active notifications
type NotificationLister interface {
	Active() []model.Notification
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

type serverOptions struct {
	limiter *RateLimiter
	page    http.FileSystem
}

// ServerOption configures NewServer
type ServerOption func(*serverOptions)

// WithRateLimiter limits action triggers per client
func WithRateLimiter(limiter *RateLimiter) ServerOption {
	return func(o *serverOptions) { o.limiter = limiter }
}

// WithPage serves the demo page from fs
func WithPage(fs http.FileSystem) ServerOption {
	return func(o *serverOptions) { o.page = fs }
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	demo DemoUseCase,
	regions RegionReader,
	notifications NotificationLister,
	opts ...ServerOption,
) (*Server, error) {
	var options serverOptions
	for _, opt := range opts {
		opt(&options)
	}

	router := chi.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	h := &handler{
		demo:          demo,
		regions:       regions,
		notifications: notifications,
	}

	router.Get("/health", handleHealth)
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Use(NoCache)

		r.Route("/actions", func(r chi.Router) {
			r.Get("/", h.listActions)
			r.Group(func(r chi.Router) {
				if options.limiter != nil {
					r.Use(options.limiter.Middleware)
				}
				r.Post("/{name}", h.triggerAction)
			})
		})
		r.Get("/panels/{panel}", h.getPanel)
		r.Get("/notifications", h.listNotifications)
	})

	if options.page != nil {
		page, err := NewPageHandler(options.page)
		if err != nil {
			return nil, err
		}
		ctxlog.From(ctx).Info("Serving demo page from embedded files")
		router.Handle("/*", page)
	} else {
		router.Get("/*", handleFallbackHome)
	}

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "ajaxdemo",
	})
}

// handleFallbackHome handles the root path when the page is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>AJAX demo</title></head>
<body>
    <h1>AJAX demo</h1>
    <p>The demo page is not bundled. Trigger actions with <code>POST /api/actions/{name}</code>.</p>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

// writeJSON writes v as a JSON response with status
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

// writeError writes an error response
func writeError(w http.ResponseWriter, r *http.Request, err error, status int) {
	writeJSON(w, r, status, map[string]string{
		"error": err.Error(),
	})
}
