package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/vongst/web-audio-api/internal/audio"
	"github.com/vongst/web-audio-api/internal/models"
)

const pipelineTimeout = 15 * time.Second

func (s *Server) handleGetPosts(w http.ResponseWriter, r *http.Request) {
	writeSnapshot(w, s.api.Posts())
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pipelineTimeout)
	defer cancel()
	writeSnapshot(w, s.api.Refresh(ctx))
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pipelineTimeout)
	defer cancel()
	writeSnapshot(w, s.api.SortByTitle(ctx))
}

func (s *Server) handleGroup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pipelineTimeout)
	defer cancel()
	writeSnapshot(w, s.api.GroupByUser(ctx))
}

func (s *Server) handleGetAudio(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items": s.api.AudioEntries(),
	})
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.audioAction(w, r, s.api.Play)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	s.audioAction(w, r, s.api.Stop)
}

// audioAction maps panel errors onto HTTP: an out-of-range index is a 404,
// an action whose button would be disabled is a 409, and success responds
// with the entry list so the caller sees the new enabled flags.
func (s *Server) audioAction(w http.ResponseWriter, r *http.Request, action func(int) error) {
	idx, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		http.Error(w, "invalid entry index", http.StatusBadRequest)
		return
	}
	if err := action(idx); err != nil {
		switch {
		case errors.Is(err, audio.ErrNoSuchEntry):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, audio.ErrActionDisabled):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	s.handleGetAudio(w, r)
}

func writeSnapshot(w http.ResponseWriter, snap models.Snapshot) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"items":     snap.Posts,
		"direction": snap.Direction,
	})
}
