package render

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"

	"github.com/icelens/icelens/internal/timeline"
)

// operationColors maps the snapshot operation (the chart grouping key) to a
// display color.
var operationColors = map[string]color.Color{
	"append":    color.Green,
	"overwrite": color.Yellow,
	"replace":   color.Magenta,
	"delete":    color.Red,
}

func operationColor(op string) color.Color {
	if c, ok := operationColors[op]; ok {
		return c
	}
	return color.Cyan
}

// Timeline writes the chronological snapshot projection, one commit per line.
// Empty projections render the no-data indicator.
func Timeline(w io.Writer, tl timeline.Timeline) {
	if tl.Empty() {
		NoData(w, "snapshot history")
		return
	}

	for _, e := range tl.Events {
		parent := "-"
		if e.ParentID != nil {
			parent = fmt.Sprintf("%d", *e.ParentID)
		}
		fmt.Fprintf(w, "  %s  %-10s snapshot=%d parent=%s\n",
			e.CommittedAt.Format(time.RFC3339),
			operationColor(e.Operation).Sprint(e.Operation),
			e.SnapshotID,
			parent,
		)
	}
}
