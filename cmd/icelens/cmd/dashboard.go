package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/metaview"
	"github.com/icelens/icelens/internal/render"
	"github.com/icelens/icelens/internal/stats"
	"github.com/icelens/icelens/internal/timeline"
)

var (
	dashboardSchema string
	dashboardTable  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the full metadata dashboard for a table",
	Long: `Dashboard combines the overview statistics, the file size histogram,
the snapshot timeline and every metadata view into one report. Sections
backed by a failing view are reported inline without aborting the rest.

Example:
  icelens dashboard --schema sales --table orders`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVarP(&dashboardSchema, "schema", "s", "",
		"Schema of the table (required)")
	dashboardCmd.Flags().StringVarP(&dashboardTable, "table", "t", "",
		"Table name (required)")
	dashboardCmd.MarkFlagRequired("schema")
	dashboardCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(dashboardCmd)
}

func printSection(title string) {
	fmt.Fprintf(outputWriter, "%s\n", color.Bold.Sprintf("-- %s --", title))
}

func runDashboard(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	cfg, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	source := metaview.NewRowSource(dbManager.DB, log)

	fmt.Fprintf(outputWriter, "%s\n\n",
		color.Bold.Sprintf("Iceberg table %s.%s", dashboardSchema, dashboardTable))

	// Overview metrics. File or count reads failing here leave the section
	// out rather than aborting the dashboard.
	files, filesErr := source.FetchFiles(ctx, dashboardSchema, dashboardTable)
	counts, countsErr := source.Counts(ctx, dashboardSchema, dashboardTable)

	printSection("Overview")
	if filesErr != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", filesErr)
	} else if countsErr != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", countsErr)
	} else {
		aggregator := stats.NewAggregator(&cfg.Stats)
		render.Cards(outputWriter, render.StatsCards(aggregator.Aggregate(files, counts)))
	}
	fmt.Fprintln(outputWriter)

	printSection("File size distribution")
	if filesErr != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", filesErr)
	} else {
		render.SizeHistogram(outputWriter, files)
	}
	fmt.Fprintln(outputWriter)

	printSection("Snapshot timeline")
	if events, err := source.FetchSnapshots(ctx, dashboardSchema, dashboardTable); err != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", err)
	} else {
		render.Timeline(outputWriter, timeline.Project(events))
	}
	fmt.Fprintln(outputWriter)

	printSection("Table DDL")
	if ddl, err := source.ShowCreate(ctx, dashboardSchema, dashboardTable); err != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", err)
	} else {
		fmt.Fprintln(outputWriter, ddl)
	}
	fmt.Fprintln(outputWriter)

	for i, result := range source.FetchAll(ctx, dashboardSchema, dashboardTable) {
		if i > 0 {
			fmt.Fprintln(outputWriter)
		}
		printView(result)
	}
	return nil
}
