// Package timeline projects snapshot history into a chronological view.
package timeline

import (
	"sort"

	"github.com/icelens/icelens/internal/types"
)

// Timeline is a display-ready chronological projection of snapshot events,
// ordered ascending by commit time.
type Timeline struct {
	Events []types.SnapshotEvent
}

// Project sorts events ascending by commit time. The sort is stable, so
// events sharing a commit timestamp keep their input order, and well-formed
// parent ordering is never assumed. An empty input projects to an empty but
// valid Timeline.
func Project(events []types.SnapshotEvent) Timeline {
	sorted := make([]types.SnapshotEvent, len(events))
	copy(sorted, events)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CommittedAt.Before(sorted[j].CommittedAt)
	})

	return Timeline{Events: sorted}
}

// Empty reports whether there is any history to display. Callers branch on
// this to render a "no data" indicator instead of a chart.
func (t Timeline) Empty() bool {
	return len(t.Events) == 0
}

// Operations returns the distinct operation names in first-seen order.
// The operation doubles as the chart grouping/color key.
func (t Timeline) Operations() []string {
	var ops []string
	seen := make(map[string]bool)
	for _, e := range t.Events {
		if !seen[e.Operation] {
			seen[e.Operation] = true
			ops = append(ops, e.Operation)
		}
	}
	return ops
}
