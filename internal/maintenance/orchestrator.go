// Package maintenance drives Iceberg table maintenance procedures through
// Trino's ALTER TABLE ... EXECUTE surface.
package maintenance

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/icelens/icelens/internal/config"
	"github.com/icelens/icelens/internal/logger"
	"github.com/icelens/icelens/internal/sqlutil"
)

// Procedure identifies one of the maintenance procedures icelens can invoke.
type Procedure string

const (
	ProcedureOptimize          Procedure = "optimize"
	ProcedureOptimizeManifests Procedure = "optimize_manifests"
	ProcedureExpireSnapshots   Procedure = "expire_snapshots"
	ProcedureRemoveOrphans     Procedure = "remove_orphan_files"
	ProcedureDropExtendedStats Procedure = "drop_extended_stats"
)

// AllProcedures lists the supported procedures in menu order.
var AllProcedures = []Procedure{
	ProcedureOptimize,
	ProcedureOptimizeManifests,
	ProcedureExpireSnapshots,
	ProcedureRemoveOrphans,
	ProcedureDropExtendedStats,
}

// ParseProcedure converts a user-supplied name into a Procedure.
func ParseProcedure(name string) (Procedure, error) {
	for _, p := range AllProcedures {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown maintenance procedure %q", name)
}

// Outcome is the terminal classification of one maintenance invocation.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

// Result is the structured outcome of a single maintenance invocation.
// It is created per call and never persisted. ErrorMessage carries the
// engine's message verbatim when Outcome is OutcomeFailed.
type Result struct {
	Procedure    Procedure
	Table        string // qualified schema.table identifier
	Outcome      Outcome
	ErrorMessage string
	Duration     time.Duration
}

// Succeeded reports whether the procedure completed without an engine error.
func (r Result) Succeeded() bool {
	return r.Outcome == OutcomeSuccess
}

// Options carries the tunable procedure parameters. Zero values fall back to
// the orchestrator's configured defaults.
type Options struct {
	// FileSizeThreshold is the optimize rewrite target, e.g. "128MB".
	FileSizeThreshold string
	// RetentionThreshold applies to expire_snapshots and remove_orphan_files,
	// e.g. "7d".
	RetentionThreshold string
}

// Orchestrator issues maintenance procedure calls against tables.
// Each invocation is a single blocking attempt with no retry and no
// cancellation once issued; the engine owns concurrency control over the
// target table.
type Orchestrator struct {
	db     *sql.DB
	cfg    config.MaintenanceConfig
	logger *logger.Logger
}

// NewOrchestrator creates an orchestrator over an established session.
func NewOrchestrator(db *sql.DB, cfg config.MaintenanceConfig, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.NewDefault()
	}
	if cfg.FileSizeThreshold == "" {
		cfg.FileSizeThreshold = config.DefaultFileSizeThreshold
	}
	if cfg.SnapshotRetention == "" {
		cfg.SnapshotRetention = config.DefaultRetention
	}
	if cfg.OrphanRetention == "" {
		cfg.OrphanRetention = config.DefaultRetention
	}
	return &Orchestrator{db: db, cfg: cfg, logger: log}
}

// Run issues one maintenance procedure against schema.table and waits for it
// to finish. Engine failures are captured in the Result and never returned as
// an error; the error return covers only invalid identifiers or procedure
// parameters, detected before anything is issued.
func (o *Orchestrator) Run(ctx context.Context, schema, table string, proc Procedure, opts Options) (Result, error) {
	tableRef, err := sqlutil.QualifyTable(schema, table)
	if err != nil {
		return Result{}, err
	}

	call, err := o.buildCall(proc, opts)
	if err != nil {
		return Result{}, err
	}

	result := Result{Procedure: proc, Table: tableRef}
	log := o.logger.WithTable(schema, table).WithProcedure(string(proc))

	log.Infow("issuing maintenance procedure", "call", call)

	started := time.Now()
	_, execErr := o.db.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s EXECUTE %s", tableRef, call))
	result.Duration = time.Since(started)

	if execErr != nil {
		result.Outcome = OutcomeFailed
		result.ErrorMessage = execErr.Error()
		log.Warnw("maintenance procedure failed", "error", execErr, "duration", result.Duration)
	} else {
		result.Outcome = OutcomeSuccess
		log.Infow("maintenance procedure completed", "duration", result.Duration)
	}

	return result, nil
}

// buildCall renders the EXECUTE clause for a procedure, applying configured
// defaults where the options leave a parameter unset.
func (o *Orchestrator) buildCall(proc Procedure, opts Options) (string, error) {
	switch proc {
	case ProcedureOptimize:
		threshold := opts.FileSizeThreshold
		if threshold == "" {
			threshold = o.cfg.FileSizeThreshold
		}
		if !config.IsValidSize(threshold) {
			return "", fmt.Errorf("invalid file size threshold %q", threshold)
		}
		return fmt.Sprintf("optimize(file_size_threshold => '%s')", threshold), nil
	case ProcedureOptimizeManifests:
		return "optimize_manifests", nil
	case ProcedureExpireSnapshots:
		retention := opts.RetentionThreshold
		if retention == "" {
			retention = o.cfg.SnapshotRetention
		}
		if !config.IsValidDuration(retention) {
			return "", fmt.Errorf("invalid retention threshold %q", retention)
		}
		return fmt.Sprintf("expire_snapshots(retention_threshold => '%s')", retention), nil
	case ProcedureRemoveOrphans:
		retention := opts.RetentionThreshold
		if retention == "" {
			retention = o.cfg.OrphanRetention
		}
		if !config.IsValidDuration(retention) {
			return "", fmt.Errorf("invalid retention threshold %q", retention)
		}
		return fmt.Sprintf("remove_orphan_files(retention_threshold => '%s')", retention), nil
	case ProcedureDropExtendedStats:
		return "drop_extended_stats", nil
	default:
		return "", fmt.Errorf("unknown maintenance procedure %q", proc)
	}
}

// Analyze collects extended statistics for the table via ANALYZE, under the
// same single-attempt, failure-in-result contract as Run.
func (o *Orchestrator) Analyze(ctx context.Context, schema, table string) (Result, error) {
	tableRef, err := sqlutil.QualifyTable(schema, table)
	if err != nil {
		return Result{}, err
	}

	result := Result{Procedure: "analyze", Table: tableRef}
	log := o.logger.WithTable(schema, table).WithProcedure("analyze")

	log.Infow("issuing analyze")
	started := time.Now()
	_, execErr := o.db.ExecContext(ctx, "ANALYZE "+tableRef)
	result.Duration = time.Since(started)

	if execErr != nil {
		result.Outcome = OutcomeFailed
		result.ErrorMessage = execErr.Error()
		log.Warnw("analyze failed", "error", execErr, "duration", result.Duration)
	} else {
		result.Outcome = OutcomeSuccess
		log.Infow("analyze completed", "duration", result.Duration)
	}

	return result, nil
}
