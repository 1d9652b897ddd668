package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/metaview"
	"github.com/icelens/icelens/internal/render"
	"github.com/icelens/icelens/internal/stats"
)

var (
	statsSchema string
	statsTable  string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show file and snapshot statistics for a table",
	Long: `Stats aggregates data-file metadata into the table overview metrics:
file counts, row counts, small-file counts and file-size distribution
figures, plus an ASCII size histogram.

Example:
  icelens stats --schema sales --table orders`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringVarP(&statsSchema, "schema", "s", "",
		"Schema of the table (required)")
	statsCmd.Flags().StringVarP(&statsTable, "table", "t", "",
		"Table name (required)")
	statsCmd.MarkFlagRequired("schema")
	statsCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	cfg, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	source := metaview.NewRowSource(dbManager.DB, log)

	files, err := source.FetchFiles(ctx, statsSchema, statsTable)
	if err != nil {
		return fmt.Errorf("failed to read file metadata: %w", err)
	}
	counts, err := source.Counts(ctx, statsSchema, statsTable)
	if err != nil {
		return fmt.Errorf("failed to read table counts: %w", err)
	}

	aggregator := stats.NewAggregator(&cfg.Stats)
	tableStats := aggregator.Aggregate(files, counts)

	fmt.Fprintf(outputWriter, "Table: %s.%s\n\n", statsSchema, statsTable)
	render.Cards(outputWriter, render.StatsCards(tableStats))
	fmt.Fprintln(outputWriter)
	fmt.Fprintln(outputWriter, "File size distribution:")
	render.SizeHistogram(outputWriter, files)
	return nil
}
