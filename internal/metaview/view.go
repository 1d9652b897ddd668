// Package metaview reads the Iceberg metadata views Trino exposes alongside
// each table ($files, $snapshots, $partitions, ...) and returns their rows
// with fixed, display-ready column schemas.
package metaview

import "fmt"

// View selects one of the Iceberg metadata views of a table.
type View string

// The fixed set of metadata views. The selector is appended to the table
// name ("orders$files"), never interpolated from user input.
const (
	ViewProperties   View = "properties"
	ViewHistory      View = "history"
	ViewManifests    View = "manifests"
	ViewAllManifests View = "all_manifests"
	ViewMetadataLog  View = "metadata_log_entries"
	ViewSnapshots    View = "snapshots"
	ViewPartitions   View = "partitions"
	ViewFiles        View = "files"
	ViewEntries      View = "entries"
	ViewAllEntries   View = "all_entries"
	ViewRefs         View = "refs"
)

// AllViews lists every metadata view in dashboard display order.
var AllViews = []View{
	ViewProperties,
	ViewHistory,
	ViewManifests,
	ViewAllManifests,
	ViewMetadataLog,
	ViewSnapshots,
	ViewPartitions,
	ViewFiles,
	ViewEntries,
	ViewAllEntries,
	ViewRefs,
}

// ParseView converts a user-supplied view name into a View.
func ParseView(name string) (View, error) {
	for _, v := range AllViews {
		if string(v) == name {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown metadata view %q", name)
}

// viewColumns maps each view to its source column expressions (left) and
// display headers (right). Order matters: callers render cells positionally.
var viewColumns = map[View]struct {
	source  []string
	display []string
}{
	ViewProperties: {
		source:  []string{"key", "value"},
		display: []string{"Key", "Value"},
	},
	ViewHistory: {
		source:  []string{"made_current_at", "snapshot_id", "parent_id", "is_current_ancestor"},
		display: []string{"Made Current At", "Snapshot ID", "Parent ID", "Is Current Ancestor"},
	},
	ViewManifests: {
		source: []string{
			"path", "length", "partition_spec_id",
			"added_data_files_count", "existing_data_files_count", "deleted_data_files_count",
			"added_position_deletes_count", "existing_position_deletes_count", "deleted_position_deletes_count",
			"partitions",
		},
		display: []string{
			"Path", "Length", "Partition Spec ID",
			"Added Data Files Count", "Existing Data Files Count", "Deleted Data Files Count",
			"Added Position Deletes Count", "Existing Position Deletes Count", "Deleted Position Deletes Count",
			"Partitions",
		},
	},
	ViewAllManifests: {
		source: []string{
			"path", "length", "partition_spec_id", "added_snapshot_id",
			"added_data_files_count", "existing_data_files_count", "deleted_data_files_count",
			"partition_summaries",
		},
		display: []string{
			"Path", "Length", "Partition Spec ID", "Added Snapshot ID",
			"Added Data Files Count", "Existing Data Files Count", "Deleted Data Files Count",
			"Partition Summaries",
		},
	},
	ViewMetadataLog: {
		source:  []string{"timestamp", "file", "latest_snapshot_id", "latest_schema_id", "latest_sequence_number"},
		display: []string{"Timestamp", "File", "Latest Snapshot ID", "Latest Schema ID", "Latest Sequence Number"},
	},
	ViewSnapshots: {
		source:  []string{"committed_at", "snapshot_id", "parent_id", "operation", "manifest_list", "summary"},
		display: []string{"Committed At", "Snapshot ID", "Parent ID", "Operation", "Manifest List", "Summary"},
	},
	ViewPartitions: {
		source:  []string{"record_count", "file_count", "total_size", "data"},
		display: []string{"Record Count", "File Count", "Total Size", "Data"},
	},
	ViewFiles: {
		source:  []string{"content", "file_path", "record_count", "file_format", "file_size_in_bytes"},
		display: []string{"Content", "File Path", "Record Count", "File Format", "File Size (Bytes)"},
	},
	ViewEntries: {
		source:  []string{"status", "snapshot_id", "sequence_number", "file_sequence_number", "data_file", "readable_metrics"},
		display: []string{"Status", "Snapshot ID", "Seq Num", "File Seq Num", "Data File", "Readable Metrics"},
	},
	ViewAllEntries: {
		source:  []string{"status", "snapshot_id", "sequence_number", "file_sequence_number", "data_file", "readable_metrics"},
		display: []string{"Status", "Snapshot ID", "Seq Num", "File Seq Num", "Data File", "Readable Metrics"},
	},
	ViewRefs: {
		source:  []string{"name", "type", "snapshot_id", "max_reference_age_in_ms", "min_snapshots_to_keep", "max_snapshot_age_in_ms"},
		display: []string{"Name", "Type", "Snapshot ID", "Max Reference Age (ms)", "Min Snapshots to Keep", "Max Snapshot Age (ms)"},
	},
}

// Columns returns the display headers for the view, in render order.
func (v View) Columns() []string {
	return viewColumns[v].display
}

// sourceColumns returns the engine-side column expressions for the view.
func (v View) sourceColumns() []string {
	return viewColumns[v].source
}

func (v View) String() string {
	return string(v)
}
