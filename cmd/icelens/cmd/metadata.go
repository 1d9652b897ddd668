package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/metaview"
	"github.com/icelens/icelens/internal/render"
)

var (
	metadataSchema string
	metadataTable  string
	metadataView   string
)

var metadataCmd = &cobra.Command{
	Use:   "metadata",
	Short: "Show metadata views for a table",
	Long: `Metadata reads the $-suffixed metadata views of an Iceberg table and
renders each as a bordered table. With --view a single view is shown;
without it all views are shown in their fixed order. A failing view is
reported inline and never aborts the remaining views.

Examples:
  icelens metadata --schema sales --table orders
  icelens metadata --schema sales --table orders --view snapshots`,
	RunE: runMetadata,
}

func init() {
	metadataCmd.Flags().StringVarP(&metadataSchema, "schema", "s", "",
		"Schema of the table (required)")
	metadataCmd.Flags().StringVarP(&metadataTable, "table", "t", "",
		"Table name (required)")
	metadataCmd.Flags().StringVarP(&metadataView, "view", "v", "",
		"Single metadata view to show (default all)")
	metadataCmd.MarkFlagRequired("schema")
	metadataCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(metadataCmd)
}

func runMetadata(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	_, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	source := metaview.NewRowSource(dbManager.DB, log)

	if metadataView != "" {
		view, err := metaview.ParseView(metadataView)
		if err != nil {
			return err
		}
		rows, err := source.Fetch(ctx, metadataSchema, metadataTable, view)
		if err != nil {
			return err
		}
		printView(metaview.ViewResult{View: view, Rows: rows})
		return nil
	}

	for i, result := range source.FetchAll(ctx, metadataSchema, metadataTable) {
		if i > 0 {
			fmt.Fprintln(outputWriter)
		}
		printView(result)
	}
	return nil
}

func printView(result metaview.ViewResult) {
	fmt.Fprintf(outputWriter, "== %s ==\n", result.View)
	if result.Err != nil {
		fmt.Fprintf(outputWriter, "  (unavailable: %v)\n", result.Err)
		return
	}
	if result.Rows.Empty() {
		render.NoData(outputWriter, string(result.View))
		return
	}
	render.Table(outputWriter, result.Rows.Columns, result.Rows.Records)
}
