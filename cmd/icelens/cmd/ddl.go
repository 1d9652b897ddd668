package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/metaview"
)

var (
	ddlSchema string
	ddlTable  string
)

var ddlCmd = &cobra.Command{
	Use:   "ddl",
	Short: "Show the CREATE TABLE statement for a table",
	Long: `DDL prints the SHOW CREATE TABLE output for an Iceberg table, which
includes the column definitions and the table properties.

Example:
  icelens ddl --schema sales --table orders`,
	RunE: runDDL,
}

func init() {
	ddlCmd.Flags().StringVarP(&ddlSchema, "schema", "s", "",
		"Schema of the table (required)")
	ddlCmd.Flags().StringVarP(&ddlTable, "table", "t", "",
		"Table name (required)")
	ddlCmd.MarkFlagRequired("schema")
	ddlCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(ddlCmd)
}

func runDDL(cmd *cobra.Command, args []string) error {
	ctx := database.SetupSignalHandler()

	_, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	source := metaview.NewRowSource(dbManager.DB, log)

	ddl, err := source.ShowCreate(ctx, ddlSchema, ddlTable)
	if err != nil {
		return fmt.Errorf("failed to read table DDL: %w", err)
	}

	fmt.Fprintln(outputWriter, ddl)
	return nil
}
