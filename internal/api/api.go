package api

import (
	"time"

	"github.com/vongst/web-audio-api/internal/audio"
	"github.com/vongst/web-audio-api/internal/feed"
)

// API is the application-facing facade. All callers (HTTP, tooling) go
// through this rather than reaching into the pipeline or panel directly.
type API struct {
	ctrl  *feed.Controller
	panel *audio.Panel
}

func New(ctrl *feed.Controller, panel *audio.Panel) *API {
	return &API{ctrl: ctrl, panel: panel}
}

// Health responds with the health status of the app.
func (a *API) Health() interface{} {
	return map[string]interface{}{
		"app":       "web-audio-api",
		"startedAt": time.Now().Format(time.RFC3339),
		"status":    "ok",
	}
}
