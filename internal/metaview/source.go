package metaview

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/icelens/icelens/internal/logger"
	"github.com/icelens/icelens/internal/sqlutil"
	"github.com/icelens/icelens/internal/types"
)

// RowSource executes reads against a table's metadata views. It holds no
// state beyond the injected session handle, so every call is independent.
type RowSource struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewRowSource creates a RowSource over an established session.
func NewRowSource(db *sql.DB, log *logger.Logger) *RowSource {
	if log == nil {
		log = logger.NewDefault()
	}
	return &RowSource{db: db, logger: log}
}

// Rows is the ordered result of one metadata view query. Cells are already
// stringified; numeric aggregation works on the typed decoders instead.
type Rows struct {
	View    View
	Columns []string
	Records [][]string
}

// Empty reports whether the view returned no rows.
func (r *Rows) Empty() bool {
	return len(r.Records) == 0
}

// ViewResult pairs a view with either its rows or the error that prevented
// reading it. FetchAll returns one per view so failures stay isolated.
type ViewResult struct {
	View View
	Rows *Rows
	Err  error
}

// Fetch issues a single read against one metadata view and returns its rows.
// Engine-side failures come back as *QueryError; invalid identifiers are
// rejected before any SQL is built.
func (s *RowSource) Fetch(ctx context.Context, schema, table string, view View) (*Rows, error) {
	ref, err := sqlutil.QualifyMetadataView(schema, table, view.String())
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT %s FROM %s", strings.Join(view.sourceColumns(), ", "), ref)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{View: view, Err: err}
	}
	defer rows.Close()

	result := &Rows{View: view, Columns: view.Columns()}

	cols, err := rows.Columns()
	if err != nil {
		return nil, &QueryError{View: view, Err: err}
	}

	for rows.Next() {
		vals := make([]interface{}, len(cols))
		ptrs := make([]interface{}, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, &QueryError{View: view, Err: err}
		}

		record := make([]string, len(cols))
		for i, v := range vals {
			record[i] = types.ToString(v)
		}
		result.Records = append(result.Records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{View: view, Err: err}
	}

	return result, nil
}

// FetchAll reads every metadata view in display order. Each view fails
// independently: a failed view carries its error in the corresponding
// ViewResult and the remaining views are still attempted.
func (s *RowSource) FetchAll(ctx context.Context, schema, table string) []ViewResult {
	results := make([]ViewResult, 0, len(AllViews))
	for _, view := range AllViews {
		rows, err := s.Fetch(ctx, schema, table, view)
		if err != nil {
			s.logger.WithTable(schema, table).WithView(view.String()).Warnw("metadata view query failed", "error", err)
		}
		results = append(results, ViewResult{View: view, Rows: rows, Err: err})
	}
	return results
}

// FetchFiles reads the files view into typed records, largest files first.
// Delete files are included; the stats aggregator filters to data files.
func (s *RowSource) FetchFiles(ctx context.Context, schema, table string) ([]types.FileRecord, error) {
	ref, err := sqlutil.QualifyMetadataView(schema, table, ViewFiles.String())
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		"SELECT content, file_path, record_count, file_format, file_size_in_bytes FROM %s ORDER BY file_size_in_bytes DESC",
		ref,
	)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{View: ViewFiles, Err: err}
	}
	defer rows.Close()

	var files []types.FileRecord
	for rows.Next() {
		var (
			content     sql.NullInt64
			path        sql.NullString
			recordCount sql.NullInt64
			format      sql.NullString
			size        sql.NullInt64
		)
		if err := rows.Scan(&content, &path, &recordCount, &format, &size); err != nil {
			return nil, &QueryError{View: ViewFiles, Err: err}
		}
		files = append(files, types.FileRecord{
			Path:        path.String,
			SizeInBytes: size.Int64,
			RecordCount: recordCount.Int64,
			Format:      format.String,
			Content:     int(content.Int64),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{View: ViewFiles, Err: err}
	}

	return files, nil
}

// FetchSnapshots reads the snapshots view into typed events. Ordering is
// whatever the engine returns; the timeline projector sorts explicitly.
func (s *RowSource) FetchSnapshots(ctx context.Context, schema, table string) ([]types.SnapshotEvent, error) {
	ref, err := sqlutil.QualifyMetadataView(schema, table, ViewSnapshots.String())
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT committed_at, snapshot_id, parent_id, operation, summary FROM %s", ref)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &QueryError{View: ViewSnapshots, Err: err}
	}
	defer rows.Close()

	var events []types.SnapshotEvent
	for rows.Next() {
		var (
			committedAt time.Time
			snapshotID  int64
			parentID    sql.NullInt64
			operation   sql.NullString
			summary     interface{}
		)
		if err := rows.Scan(&committedAt, &snapshotID, &parentID, &operation, &summary); err != nil {
			return nil, &QueryError{View: ViewSnapshots, Err: err}
		}

		event := types.SnapshotEvent{
			SnapshotID:  snapshotID,
			Operation:   operation.String,
			CommittedAt: committedAt,
			Summary:     parseSummary(summary),
		}
		if parentID.Valid {
			parent := parentID.Int64
			event.ParentID = &parent
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{View: ViewSnapshots, Err: err}
	}

	return events, nil
}

// parseSummary normalizes the snapshot summary map across the shapes the
// driver may hand back (typed map, generic map, raw text).
func parseSummary(v interface{}) map[string]string {
	switch m := v.(type) {
	case nil:
		return nil
	case map[string]string:
		return m
	case map[string]interface{}:
		out := make(map[string]string, len(m))
		for k, val := range m {
			out[k] = types.ToString(val)
		}
		return out
	default:
		return map[string]string{"summary": types.ToString(v)}
	}
}

// TableCounts holds the metadata entity counts the stats aggregator consumes
// alongside file records.
type TableCounts struct {
	Partitions int64
	Snapshots  int64
	History    int64
}

// Counts gathers partition, snapshot and history counts in three round trips
// on the shared session.
func (s *RowSource) Counts(ctx context.Context, schema, table string) (TableCounts, error) {
	var counts TableCounts

	viewCounts := []struct {
		view View
		dest *int64
	}{
		{ViewPartitions, &counts.Partitions},
		{ViewSnapshots, &counts.Snapshots},
		{ViewHistory, &counts.History},
	}
	for _, vc := range viewCounts {
		ref, err := sqlutil.QualifyMetadataView(schema, table, vc.view.String())
		if err != nil {
			return counts, err
		}
		if err := s.countQuery(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", ref), vc.dest); err != nil {
			return counts, &QueryError{View: vc.view, Err: err}
		}
	}

	return counts, nil
}

func (s *RowSource) countQuery(ctx context.Context, query string, dest *int64) error {
	return s.db.QueryRowContext(ctx, query).Scan(dest)
}

// ShowCreate returns the table DDL as reported by the engine.
func (s *RowSource) ShowCreate(ctx context.Context, schema, table string) (string, error) {
	ref, err := sqlutil.QualifyTable(schema, table)
	if err != nil {
		return "", err
	}

	var ddl string
	if err := s.db.QueryRowContext(ctx, "SHOW CREATE TABLE "+ref).Scan(&ddl); err != nil {
		return "", fmt.Errorf("failed to fetch DDL: %w", err)
	}
	return ddl, nil
}
