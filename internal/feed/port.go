package feed

import (
	"context"

	"github.com/vongst/web-audio-api/internal/models"
)

// CollectorPort is the upstream JSON source for post records.
type CollectorPort interface {
	Fetch(ctx context.Context) ([]models.Post, error)
}

// Renderer is the presentation boundary. Each call must fully replace any
// previously rendered content with one entry per record, exposing at least
// id, userId, title and body.
type Renderer interface {
	Render(snap models.Snapshot)
}
