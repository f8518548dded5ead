package api

import (
	"context"

	"github.com/vongst/web-audio-api/internal/models"
)

// Refresh refetches the post collection and renders it, returning the
// resulting snapshot. A failed fetch surfaces as an empty snapshot, never
// as an error.
func (a *API) Refresh(ctx context.Context) models.Snapshot {
	a.ctrl.FetchAndRender(ctx)
	return a.ctrl.Snapshot()
}

// SortByTitle toggles the title sort and returns the reordered snapshot.
func (a *API) SortByTitle(ctx context.Context) models.Snapshot {
	a.ctrl.SortAndRender(ctx)
	return a.ctrl.Snapshot()
}

// GroupByUser partitions the collection by userId and returns the snapshot.
func (a *API) GroupByUser(ctx context.Context) models.Snapshot {
	a.ctrl.GroupAndRender(ctx)
	return a.ctrl.Snapshot()
}

// Posts returns the current snapshot without triggering any pipeline work.
func (a *API) Posts() models.Snapshot {
	return a.ctrl.Snapshot()
}
