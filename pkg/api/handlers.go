package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/ssargent/njord/pkg/store"
)

// parseCoords parses a comma-separated coordinate path segment like "1,2,3"
func parseCoords(param string) ([]int, error) {
	parts := strings.Split(param, ",")
	coords := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid coordinate %q", part)
		}
		coords[i] = n
	}
	return coords, nil
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]string{"status": "ok"})
}

// handleStats reports chunk counts for the served array
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	coords, err := s.pipeline.ListChunks(r.Context())
	if err != nil {
		sendError(w, fmt.Sprintf("failed to list chunks: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.UpdateChunkCount(len(coords))
	sendSuccess(w, StatsResponse{Chunks: len(coords)})
}

// handlePutChunk decodes the request body as one chunk and stores it
func (s *Server) handlePutChunk(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoords(chi.URLParam(r, "coords"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		sendError(w, "failed to read request body", http.StatusBadRequest)
		return
	}

	spec := s.pipeline.Spec()
	array, err := s.pipeline.Codec().DecodeSingle(spec.Prototype.NewBuffer(body), spec)
	if err != nil {
		sendError(w, fmt.Sprintf("chunk bytes do not match the array spec: %v", err), http.StatusBadRequest)
		return
	}

	start := time.Now()
	err = s.pipeline.WriteChunk(r.Context(), coords, array)
	s.metrics.RecordChunkOperation("put", err == nil, time.Since(start))
	if err != nil {
		sendError(w, fmt.Sprintf("failed to store chunk: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]any{"coords": coords, "bytes": len(body)})
}

// handleGetChunk returns one chunk's canonical encoded bytes
func (s *Server) handleGetChunk(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoords(chi.URLParam(r, "coords"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	array, err := s.pipeline.ReadChunk(r.Context(), coords)
	s.metrics.RecordChunkOperation("get", err == nil, time.Since(start))
	if errors.Is(err, store.ErrChunkNotFound) {
		sendError(w, "chunk not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("failed to read chunk: %v", err), http.StatusInternalServerError)
		return
	}

	encoded, err := s.pipeline.Codec().EncodeSingle(array, s.pipeline.Spec())
	if err != nil {
		sendError(w, fmt.Sprintf("failed to encode chunk: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(encoded.Bytes())
}

// handleDeleteChunk removes one chunk
func (s *Server) handleDeleteChunk(w http.ResponseWriter, r *http.Request) {
	coords, err := parseCoords(chi.URLParam(r, "coords"))
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	err = s.pipeline.DeleteChunk(r.Context(), coords)
	s.metrics.RecordChunkOperation("delete", err == nil, time.Since(start))
	if errors.Is(err, store.ErrChunkNotFound) {
		sendError(w, "chunk not found", http.StatusNotFound)
		return
	}
	if err != nil {
		sendError(w, fmt.Sprintf("failed to delete chunk: %v", err), http.StatusInternalServerError)
		return
	}
	sendSuccess(w, map[string]any{"coords": coords})
}

// handleListChunks enumerates stored chunk coordinates
func (s *Server) handleListChunks(w http.ResponseWriter, r *http.Request) {
	coords, err := s.pipeline.ListChunks(r.Context())
	if err != nil {
		sendError(w, fmt.Sprintf("failed to list chunks: %v", err), http.StatusInternalServerError)
		return
	}
	s.metrics.UpdateChunkCount(len(coords))
	sendSuccess(w, map[string]any{"chunks": coords})
}
