package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/vongst/web-audio-api/internal/models"
)

type fakeCollector struct {
	items []models.Post
	err   error
	calls int
}

func (f *fakeCollector) Fetch(ctx context.Context) ([]models.Post, error) {
	f.calls++
	return f.items, f.err
}

type captureRenderer struct {
	snaps []models.Snapshot
}

func (c *captureRenderer) Render(snap models.Snapshot) {
	c.snaps = append(c.snaps, snap)
}

func (c *captureRenderer) last(t *testing.T) models.Snapshot {
	t.Helper()
	if len(c.snaps) == 0 {
		t.Fatalf("renderer was never invoked")
	}
	return c.snaps[len(c.snaps)-1]
}

func samplePosts() []models.Post {
	return []models.Post{
		{ID: 1, UserID: 2, Title: "B", Body: "b"},
		{ID: 2, UserID: 1, Title: "A", Body: "a"},
		{ID: 3, UserID: 2, Title: "C", Body: "c"},
	}
}

func TestController_FetchAndRender(t *testing.T) {
	col := &fakeCollector{items: samplePosts()}
	out := &captureRenderer{}
	ctrl := NewController(col, out, nil)

	ctrl.FetchAndRender(context.Background())

	snap := out.last(t)
	if len(snap.Posts) != 3 {
		t.Fatalf("expected 3 rendered posts, got %d", len(snap.Posts))
	}
	if snap.Direction != models.SortUnset {
		t.Fatalf("fetch must not touch the direction flag, got %s", snap.Direction)
	}
}

func TestController_FetchFailureRendersEmpty(t *testing.T) {
	col := &fakeCollector{err: errors.New("upstream down")}
	out := &captureRenderer{}
	ctrl := NewController(col, out, nil)

	// must not panic or surface the error; the contract is an empty render
	ctrl.FetchAndRender(context.Background())

	snap := out.last(t)
	if len(snap.Posts) != 0 {
		t.Fatalf("expected empty collection after failed fetch, got %d", len(snap.Posts))
	}
	if got := ctrl.Snapshot(); len(got.Posts) != 0 {
		t.Fatalf("session state not emptied: %d posts", len(got.Posts))
	}
}

func TestController_SortTogglesDirection(t *testing.T) {
	col := &fakeCollector{items: samplePosts()}
	out := &captureRenderer{}
	ctrl := NewController(col, out, nil)
	ctrl.FetchAndRender(context.Background())

	// first toggle from unset sorts descending
	ctrl.SortAndRender(context.Background())
	first := out.last(t)
	if first.Direction != models.SortDescending {
		t.Fatalf("first sort: want descending, got %s", first.Direction)
	}
	for i, want := range []string{"C", "B", "A"} {
		if first.Posts[i].Title != want {
			t.Fatalf("descending[%d]: want %q got %q", i, want, first.Posts[i].Title)
		}
	}

	ctrl.SortAndRender(context.Background())
	second := out.last(t)
	if second.Direction != models.SortAscending {
		t.Fatalf("second sort: want ascending, got %s", second.Direction)
	}
	for i, want := range []string{"A", "B", "C"} {
		if second.Posts[i].Title != want {
			t.Fatalf("ascending[%d]: want %q got %q", i, want, second.Posts[i].Title)
		}
	}

	// round-trip: a third toggle reproduces the first ordering
	ctrl.SortAndRender(context.Background())
	third := out.last(t)
	for i := range first.Posts {
		if third.Posts[i] != first.Posts[i] {
			t.Fatalf("round-trip broke at %d: %+v vs %+v", i, third.Posts[i], first.Posts[i])
		}
	}
}

func TestController_SortFetchesImplicitlyWhenEmpty(t *testing.T) {
	col := &fakeCollector{items: samplePosts()}
	out := &captureRenderer{}
	ctrl := NewController(col, out, nil)

	ctrl.SortAndRender(context.Background())

	if col.calls != 1 {
		t.Fatalf("expected exactly one implicit fetch, got %d", col.calls)
	}
	if snap := out.last(t); len(snap.Posts) != 3 {
		t.Fatalf("expected fetched posts to be rendered, got %d", len(snap.Posts))
	}
}

func TestController_EmptyResultRefetchesEveryTime(t *testing.T) {
	// a legitimately empty collection is indistinguishable from "no data
	// yet", so each sort/group refetches
	col := &fakeCollector{items: []models.Post{}}
	ctrl := NewController(col, &captureRenderer{}, nil)

	ctrl.SortAndRender(context.Background())
	ctrl.GroupAndRender(context.Background())

	if col.calls != 2 {
		t.Fatalf("expected a refetch per operation on empty state, got %d", col.calls)
	}
}

func TestController_GroupAndRender(t *testing.T) {
	col := &fakeCollector{items: samplePosts()}
	out := &captureRenderer{}
	ctrl := NewController(col, out, nil)
	ctrl.FetchAndRender(context.Background())
	ctrl.SortAndRender(context.Background())

	ctrl.GroupAndRender(context.Background())

	snap := out.last(t)
	// after descending sort (C,B,A) the first-seen users are 2 then 1
	wantUsers := []int{2, 2, 1}
	for i, p := range snap.Posts {
		if p.UserID != wantUsers[i] {
			t.Fatalf("group position %d: want user %d got %d", i, wantUsers[i], p.UserID)
		}
	}
	if snap.Direction != models.SortDescending {
		t.Fatalf("group must leave the direction flag untouched, got %s", snap.Direction)
	}
}

func TestController_SnapshotIsACopy(t *testing.T) {
	col := &fakeCollector{items: samplePosts()}
	ctrl := NewController(col, nil, nil)
	ctrl.FetchAndRender(context.Background())

	snap := ctrl.Snapshot()
	snap.Posts[0].Title = "MUTATED"

	if ctrl.Snapshot().Posts[0].Title == "MUTATED" {
		t.Fatalf("snapshot aliases internal state")
	}
}
