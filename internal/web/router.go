/*
Package web serves the fuel efficiency dashboard and its JSON API.

ROUTES:

	GET /                                 Dashboard (?vehicle=KA01AB1234)
	GET /health                           Liveness and record count
	GET /api/vehicles                     Distinct vehicle numbers
	GET /api/vehicles/{id}/records        Selected records with summary
	GET /api/vehicles/{id}/chart.png      Chart image (also chart.svg)

The dataset is loaded before the router is built and only read afterwards,
so handlers share it without locking.
*/
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// NewRouter creates a router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/", h.Dashboard)
	r.Get("/health", h.Health)

	r.Route("/api/vehicles", func(r chi.Router) {
		r.Get("/", h.ListVehicles)
		r.Get("/{id}/records", h.GetRecords)
		r.Get("/{id}/chart.png", h.GetChartPNG)
		r.Get("/{id}/chart.svg", h.GetChartSVG)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
