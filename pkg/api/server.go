// Package api exposes a chunk pipeline over HTTP: raw chunk bytes in and
// out, addressed by grid coordinates, with API-key authentication and
// Prometheus instrumentation.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/ssargent/njord/pkg/pipeline"
)

// Router builds the chi router with all routes configured
func Router(p *pipeline.Pipeline, config ServerConfig, metrics *Metrics) http.Handler {
	server := NewServer(p, config, metrics)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))
		r.Get("/stats", metrics.InstrumentHandler("GET", "/api/v1/stats", server.handleStats))

		// Chunk operations; {coords} is comma-separated grid coordinates
		r.Put("/chunks/{coords}", metrics.InstrumentHandler("PUT", "/api/v1/chunks/{coords}", server.handlePutChunk))
		r.Get("/chunks/{coords}", metrics.InstrumentHandler("GET", "/api/v1/chunks/{coords}", server.handleGetChunk))
		r.Delete("/chunks/{coords}", metrics.InstrumentHandler("DELETE", "/api/v1/chunks/{coords}", server.handleDeleteChunk))
		r.Get("/chunks", metrics.InstrumentHandler("GET", "/api/v1/chunks", server.handleListChunks))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(p *pipeline.Pipeline, config ServerConfig) error {
	metrics := NewMetrics()
	r := Router(p, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Printf("Starting NjordDB chunk API server on %s", addr)
	log.Printf("Metrics available at: http://%s/metrics", addr)
	return http.ListenAndServe(addr, r)
}
