package api

import (
	"github.com/ssargent/njord/pkg/pipeline"
)

// ServerConfig holds the HTTP server configuration
type ServerConfig struct {
	Bind   string
	Port   int
	APIKey string
}

// APIResponse is the envelope for all JSON responses
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StatsResponse reports chunk counts for the served array
type StatsResponse struct {
	Chunks int `json:"chunks"`
}

// Server handles chunk HTTP requests against one pipeline
type Server struct {
	pipeline *pipeline.Pipeline
	config   ServerConfig
	metrics  *Metrics
}

// NewServer creates a new chunk API server
func NewServer(p *pipeline.Pipeline, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		pipeline: p,
		config:   config,
		metrics:  metrics,
	}
}
