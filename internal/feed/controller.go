package feed

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/vongst/web-audio-api/internal/models"
)

// Controller owns the pipeline's session state: the current post collection
// and the sort-direction flag. Every operation replaces the collection
// wholesale and finishes by invoking the renderer; operations serialize on an
// internal mutex, mirroring the run-to-completion handler model of the
// original page.
type Controller struct {
	collector CollectorPort
	renderer  Renderer
	log       *zap.Logger

	mu        sync.Mutex
	posts     []models.Post
	direction models.SortDirection
}

func NewController(collector CollectorPort, renderer Renderer, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{collector: collector, renderer: renderer, log: log}
}

// FetchAndRender fetches the collection and renders it. A fetch or decode
// failure is logged and replaced by an empty collection, which is still
// rendered. The failure never reaches the caller: the contract is
// render-with-empty-state, not an error.
func (c *Controller) FetchAndRender(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = c.fetchLocked(ctx)
	c.renderLocked()
}

// SortAndRender toggles the sort direction and renders the reordered
// collection. An empty collection triggers an implicit fetch first; this
// deliberately refetches even after a genuinely empty result. First toggle
// from the unset flag sorts descending.
func (c *Controller) SortAndRender(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.posts) == 0 {
		c.posts = c.fetchLocked(ctx)
	}
	if c.direction == models.SortDescending {
		c.direction = models.SortAscending
	} else {
		c.direction = models.SortDescending
	}
	c.posts = SortByTitle(c.posts, c.direction == models.SortDescending)
	c.renderLocked()
}

// GroupAndRender partitions the collection by userId and renders it. Same
// implicit-fetch precondition as SortAndRender; the direction flag is left
// untouched.
func (c *Controller) GroupAndRender(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.posts) == 0 {
		c.posts = c.fetchLocked(ctx)
	}
	c.posts = GroupByUser(c.posts)
	c.renderLocked()
}

// Snapshot returns a copy of the current session state.
func (c *Controller) Snapshot() models.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) fetchLocked(ctx context.Context) []models.Post {
	posts, err := c.collector.Fetch(ctx)
	if err != nil {
		c.log.Warn("post fetch failed, rendering empty collection", zap.Error(err))
		return []models.Post{}
	}
	return posts
}

func (c *Controller) snapshotLocked() models.Snapshot {
	posts := make([]models.Post, len(c.posts))
	copy(posts, c.posts)
	return models.Snapshot{Posts: posts, Direction: c.direction}
}

func (c *Controller) renderLocked() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.snapshotLocked())
}
