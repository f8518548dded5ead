// Package render holds presentation adapters for the post pipeline. Each
// renderer consumes a plain snapshot; the transform layer never sees a UI.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"

	"github.com/vongst/web-audio-api/internal/models"
)

const bodyPreviewLen = 48

// TableRenderer writes each snapshot as a full text table, replacing (in
// terminal terms: following) whatever was rendered before.
type TableRenderer struct {
	Out io.Writer
}

func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{Out: out}
}

func (r *TableRenderer) Render(snap models.Snapshot) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"ID", "USER", "TITLE", "BODY"})
	for _, p := range snap.Posts {
		tw.AppendRow(table.Row{p.ID, p.UserID, p.Title, preview(p.Body)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	fmt.Fprintf(r.Out, "%s\n%d posts (%s)\n", tw.Render(), len(snap.Posts), snap.Direction)
}

func preview(body string) string {
	runes := []rune(body)
	if len(runes) <= bodyPreviewLen {
		return body
	}
	return string(runes[:bodyPreviewLen]) + "…"
}

// LogRenderer emits one structured line per render, for headless runs.
type LogRenderer struct {
	Log *zap.Logger
}

func NewLogRenderer(log *zap.Logger) *LogRenderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogRenderer{Log: log}
}

func (r *LogRenderer) Render(snap models.Snapshot) {
	ids := make([]string, len(snap.Posts))
	for i, p := range snap.Posts {
		ids[i] = strconv.Itoa(p.ID)
	}
	r.Log.Info("rendered post collection",
		zap.Int("count", len(snap.Posts)),
		zap.Stringer("direction", snap.Direction),
		zap.Strings("ids", ids),
	)
}
