package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/discovery"
)

var tablesSchema string

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List Iceberg schemas and tables in the catalog",
	Long: `Tables lists the schemas of the configured catalog, or the base
tables of one schema when --schema is given. System schemas are excluded.

Examples:
  icelens tables
  icelens tables --schema sales`,
	RunE: runTables,
}

func init() {
	tablesCmd.Flags().StringVarP(&tablesSchema, "schema", "s", "",
		"Schema to list tables for (omit to list schemas)")

	rootCmd.AddCommand(tablesCmd)
}

func runTables(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	_, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	lister := discovery.NewLister(dbManager.DB, log)

	if tablesSchema == "" {
		schemas, err := lister.Schemas(ctx)
		if err != nil {
			return fmt.Errorf("failed to list schemas: %w", err)
		}
		for _, schema := range schemas {
			fmt.Fprintln(outputWriter, schema)
		}
		return nil
	}

	tables, err := lister.Tables(ctx, tablesSchema)
	if err != nil {
		return fmt.Errorf("failed to list tables in %q: %w", tablesSchema, err)
	}
	for _, table := range tables {
		fmt.Fprintln(outputWriter, table)
	}
	return nil
}
