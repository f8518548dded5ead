package http

import (
	"encoding/json"
	"net/http"
)

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"status": s.api.Health()})
	})

	// Post pipeline: read the current state, or run one of its operations.
	s.mux.HandleFunc("GET /posts", s.handleGetPosts)
	s.mux.HandleFunc("POST /posts/refresh", s.handleRefresh)
	s.mux.HandleFunc("POST /posts/sort", s.handleSort)
	s.mux.HandleFunc("POST /posts/group", s.handleGroup)

	// Audio control panel.
	s.mux.HandleFunc("GET /audio", s.handleGetAudio)
	s.mux.HandleFunc("POST /audio/{index}/play", s.handlePlay)
	s.mux.HandleFunc("POST /audio/{index}/stop", s.handleStop)
}
