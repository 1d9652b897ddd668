package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/icelens/icelens/internal/stats"
)

// StatsCards lays out the table overview metrics in their fixed dashboard
// order. The ordered map keeps insertion order under iteration, matching the
// two metric rows of the dashboard.
func StatsCards(s stats.TableStats) *orderedmap.OrderedMap[string, string] {
	cards := orderedmap.NewOrderedMap[string, string]()

	cards.Set("Files", groupInt(s.FileCount))
	cards.Set("Partitions", groupInt(s.PartitionCount))
	cards.Set("Rows", groupInt(s.RowCount))
	cards.Set("Snapshots", groupInt(s.SnapshotCount))
	cards.Set("History", groupInt(s.HistoryEntryCount))
	cards.Set("Small Files", groupInt(s.SmallFileCount))

	cards.Set("Avg File Size (MB)", fmt.Sprintf("%.2f", s.AvgFileSizeMB))
	cards.Set("Largest File Size (MB)", fmt.Sprintf("%.2f", s.MaxFileSizeMB))
	cards.Set("Smallest File Size (MB)", fmt.Sprintf("%.2f", s.MinFileSizeMB))
	cards.Set("Avg Records per File", groupInt(s.AvgRecordsPerFile))
	cards.Set("Std Dev File Size (MB)", fmt.Sprintf("%.2f", s.StddevFileSizeMB))
	cards.Set("Variance File Size (Bytes²)", fmt.Sprintf("%.2f", s.VarianceFileSizeBytes2))

	return cards
}

// Cards writes the metric cards as aligned label/value lines.
func Cards(w io.Writer, cards *orderedmap.OrderedMap[string, string]) {
	labelWidth := 0
	for el := cards.Front(); el != nil; el = el.Next() {
		if lw := runewidth.StringWidth(el.Key); lw > labelWidth {
			labelWidth = lw
		}
	}

	for el := cards.Front(); el != nil; el = el.Next() {
		label := runewidth.FillRight(el.Key, labelWidth)
		fmt.Fprintf(w, "  %s  %s\n", color.Cyan.Sprint(label), color.Bold.Sprint(el.Value))
	}
}

// groupInt formats an integer with thousands separators for display.
func groupInt(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}
