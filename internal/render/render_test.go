package render

import (
	"strings"
	"testing"

	"github.com/vongst/web-audio-api/internal/models"
)

func TestTableRenderer_RendersEveryRecord(t *testing.T) {
	var sb strings.Builder
	r := NewTableRenderer(&sb)

	r.Render(models.Snapshot{
		Posts: []models.Post{
			{ID: 1, UserID: 2, Title: "first title", Body: "short body"},
			{ID: 2, UserID: 1, Title: "second title", Body: strings.Repeat("x", 200)},
		},
		Direction: models.SortAscending,
	})

	out := sb.String()
	for _, want := range []string{"first title", "second title", "short body", "2 posts", "ascending"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, strings.Repeat("x", 200)) {
		t.Fatalf("long body was not truncated")
	}
}

func TestTableRenderer_EmptySnapshot(t *testing.T) {
	var sb strings.Builder
	NewTableRenderer(&sb).Render(models.Snapshot{})
	if !strings.Contains(sb.String(), "0 posts") {
		t.Fatalf("empty render should still report a count:\n%s", sb.String())
	}
}
