// Package stats derives table-health statistics from Iceberg file metadata.
package stats

import (
	"math"

	"github.com/icelens/icelens/internal/config"
	"github.com/icelens/icelens/internal/metaview"
	"github.com/icelens/icelens/internal/types"
)

// BytesPerMB converts byte sizes to megabytes for display metrics.
const BytesPerMB = 1 << 20

// TableStats is the fixed set of derived scalar statistics for one table.
// Values are raw numerics; formatting belongs to the render layer. Stats are
// recomputed on every request and never persisted.
type TableStats struct {
	FileCount         int64
	PartitionCount    int64
	// RowCount is the sum of record counts across live data files.
	RowCount          int64
	SnapshotCount     int64
	HistoryEntryCount int64
	SmallFileCount    int64

	AvgFileSizeMB float64
	MaxFileSizeMB float64
	MinFileSizeMB float64

	// AvgRecordsPerFile is RowCount / FileCount with integer truncation
	// (1000 rows over 3 files reports 333). Zero when there are no files.
	AvgRecordsPerFile int64

	StddevFileSizeMB float64
	// VarianceFileSizeBytes2 is the population variance of file sizes, in
	// bytes squared.
	VarianceFileSizeBytes2 float64
}

// Aggregator computes TableStats from file records and table counts.
type Aggregator struct {
	// SmallFileThresholdBytes is the size below which a data file counts as
	// small. Zero falls back to the 100 MiB default.
	SmallFileThresholdBytes int64
}

// NewAggregator creates an Aggregator with the configured small-file threshold.
func NewAggregator(cfg *config.StatsConfig) *Aggregator {
	threshold := config.DefaultSmallFileThresholdBytes
	if cfg != nil && cfg.SmallFileThresholdBytes > 0 {
		threshold = cfg.SmallFileThresholdBytes
	}
	return &Aggregator{SmallFileThresholdBytes: threshold}
}

// Aggregate derives TableStats from the files view rows and the separately
// gathered counts. Only data files contribute; delete files are skipped.
// Every size-derived field is 0 (never NaN) when there are no data files, and
// variance/stddev are 0 when a single file leaves nothing to deviate.
func (a *Aggregator) Aggregate(files []types.FileRecord, counts metaview.TableCounts) TableStats {
	threshold := a.SmallFileThresholdBytes
	if threshold <= 0 {
		threshold = config.DefaultSmallFileThresholdBytes
	}

	stats := TableStats{
		PartitionCount:    counts.Partitions,
		SnapshotCount:     counts.Snapshots,
		HistoryEntryCount: counts.History,
	}

	var (
		totalBytes int64
		minBytes   int64
		maxBytes   int64
	)
	for _, f := range files {
		if !f.IsData() {
			continue
		}
		if stats.FileCount == 0 {
			minBytes = f.SizeInBytes
			maxBytes = f.SizeInBytes
		} else {
			if f.SizeInBytes < minBytes {
				minBytes = f.SizeInBytes
			}
			if f.SizeInBytes > maxBytes {
				maxBytes = f.SizeInBytes
			}
		}
		stats.FileCount++
		totalBytes += f.SizeInBytes
		stats.RowCount += f.RecordCount
		if f.SizeInBytes < threshold {
			stats.SmallFileCount++
		}
	}

	if stats.FileCount == 0 {
		return stats
	}

	mean := float64(totalBytes) / float64(stats.FileCount)
	stats.AvgFileSizeMB = mean / BytesPerMB
	stats.MinFileSizeMB = float64(minBytes) / BytesPerMB
	stats.MaxFileSizeMB = float64(maxBytes) / BytesPerMB
	stats.AvgRecordsPerFile = stats.RowCount / stats.FileCount

	if stats.FileCount > 1 {
		var sumSquares float64
		for _, f := range files {
			if !f.IsData() {
				continue
			}
			d := float64(f.SizeInBytes) - mean
			sumSquares += d * d
		}
		// Population variance: divide by N, not N-1.
		stats.VarianceFileSizeBytes2 = sumSquares / float64(stats.FileCount)
		stats.StddevFileSizeMB = math.Sqrt(stats.VarianceFileSizeBytes2) / BytesPerMB
	}

	return stats
}
