package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/icelens/icelens/internal/stats"
	"github.com/icelens/icelens/internal/types"
)

const (
	histogramBins     = 10
	histogramBarWidth = 40
)

// SizeHistogram writes an ASCII histogram of data-file sizes, one bucket per
// line with MB range labels. Empty input renders the no-data indicator.
func SizeHistogram(w io.Writer, files []types.FileRecord) {
	var sizes []int64
	for _, f := range files {
		if f.IsData() {
			sizes = append(sizes, f.SizeInBytes)
		}
	}
	if len(sizes) == 0 {
		NoData(w, "file details")
		return
	}

	minSize, maxSize := sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		if s < minSize {
			minSize = s
		}
		if s > maxSize {
			maxSize = s
		}
	}

	bins := make([]int, histogramBins)
	span := maxSize - minSize
	for _, s := range sizes {
		idx := 0
		if span > 0 {
			idx = int(int64(histogramBins-1) * (s - minSize) / span)
		}
		bins[idx]++
	}

	maxCount := 0
	for _, c := range bins {
		if c > maxCount {
			maxCount = c
		}
	}

	binWidth := float64(span) / histogramBins
	for i, count := range bins {
		lo := float64(minSize) + binWidth*float64(i)
		hi := lo + binWidth
		bar := strings.Repeat("█", histogramBarWidth*count/maxCount)
		fmt.Fprintf(w, "  %8.1f - %8.1f MB |%-*s| %d\n",
			lo/stats.BytesPerMB, hi/stats.BytesPerMB, histogramBarWidth, bar, count)
	}
}
