// Package types contains shared types used across multiple packages to avoid import cycles.
package types

import "time"

// File content kinds as reported by the Iceberg files metadata view.
const (
	ContentData            = 0
	ContentPositionDeletes = 1
	ContentEqualityDeletes = 2
)

// FileRecord is an immutable snapshot of one physical data or delete file,
// decoded from a row of the files metadata view.
type FileRecord struct {
	Path        string
	SizeInBytes int64
	RecordCount int64
	Format      string
	Content     int // ContentData, ContentPositionDeletes or ContentEqualityDeletes
}

// IsData reports whether the file holds table data rows (as opposed to
// position or equality deletes).
func (f FileRecord) IsData() bool {
	return f.Content == ContentData
}

// SnapshotEvent is one committed table snapshot, decoded from a row of the
// snapshots metadata view. ParentID is nil for the root snapshot.
type SnapshotEvent struct {
	SnapshotID  int64
	ParentID    *int64
	Operation   string
	CommittedAt time.Time
	Summary     map[string]string
}
