package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/metaview"
	"github.com/icelens/icelens/internal/render"
	"github.com/icelens/icelens/internal/timeline"
)

var (
	timelineSchema string
	timelineTable  string
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the chronological snapshot timeline for a table",
	Long: `Timeline projects the table's snapshots into commit order, one line
per snapshot with its operation, id and parent id.

Example:
  icelens timeline --schema sales --table orders`,
	RunE: runTimeline,
}

func init() {
	timelineCmd.Flags().StringVarP(&timelineSchema, "schema", "s", "",
		"Schema of the table (required)")
	timelineCmd.Flags().StringVarP(&timelineTable, "table", "t", "",
		"Table name (required)")
	timelineCmd.MarkFlagRequired("schema")
	timelineCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(timelineCmd)
}

func runTimeline(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	_, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	source := metaview.NewRowSource(dbManager.DB, log)

	events, err := source.FetchSnapshots(ctx, timelineSchema, timelineTable)
	if err != nil {
		return fmt.Errorf("failed to read snapshots: %w", err)
	}

	tl := timeline.Project(events)

	fmt.Fprintf(outputWriter, "Snapshot timeline for %s.%s:\n\n", timelineSchema, timelineTable)
	render.Timeline(outputWriter, tl)

	if ops := tl.Operations(); len(ops) > 0 {
		fmt.Fprintf(outputWriter, "\nOperations: %s\n", strings.Join(ops, ", "))
	}
	return nil
}
