package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/icelens/icelens/internal/database"
	"github.com/icelens/icelens/internal/maintenance"
)

var (
	maintenanceSchema  string
	maintenanceTable   string
	maintenanceProc    string
	maintenanceAnalyze bool
	fileSizeThreshold  string
	retentionThreshold string
)

var maintenanceCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Run a maintenance procedure against a table",
	Long: `Maintenance issues one ALTER TABLE ... EXECUTE procedure call, or
ANALYZE with --analyze. A failing procedure is reported with the engine
message and a non-zero exit; thresholds fall back to configured defaults.

Procedures: ` + procedureNames() + `

Examples:
  icelens maintenance --schema sales --table orders --run optimize
  icelens maintenance --schema sales --table orders --run expire_snapshots --retention 3d
  icelens maintenance --schema sales --table orders --analyze`,
	RunE: runMaintenance,
}

func init() {
	maintenanceCmd.Flags().StringVarP(&maintenanceSchema, "schema", "s", "",
		"Schema of the table (required)")
	maintenanceCmd.Flags().StringVarP(&maintenanceTable, "table", "t", "",
		"Table name (required)")
	maintenanceCmd.Flags().StringVarP(&maintenanceProc, "run", "r", "",
		"Maintenance procedure to run")
	maintenanceCmd.Flags().BoolVar(&maintenanceAnalyze, "analyze", false,
		"Collect table statistics with ANALYZE instead of a procedure")
	maintenanceCmd.Flags().StringVar(&fileSizeThreshold, "file-size-threshold", "",
		"Override optimize file size threshold (e.g. 128MB)")
	maintenanceCmd.Flags().StringVar(&retentionThreshold, "retention", "",
		"Override retention threshold for snapshot/orphan cleanup (e.g. 7d)")
	maintenanceCmd.MarkFlagRequired("schema")
	maintenanceCmd.MarkFlagRequired("table")

	rootCmd.AddCommand(maintenanceCmd)
}

func procedureNames() string {
	names := make([]string, 0, len(maintenance.AllProcedures))
	for _, p := range maintenance.AllProcedures {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

func runMaintenance(cmd *cobra.Command, args []string) error {
	if maintenanceProc == "" && !maintenanceAnalyze {
		return fmt.Errorf("either --run or --analyze is required")
	}
	if maintenanceProc != "" && maintenanceAnalyze {
		return fmt.Errorf("--run and --analyze are mutually exclusive")
	}

	ctx := database.SetupSignalHandler()

	cfg, log, dbManager, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer dbManager.Close()

	cfg.ApplyMaintenanceOverrides(fileSizeThreshold, retentionThreshold)
	orchestrator := maintenance.NewOrchestrator(dbManager.DB, cfg.Maintenance, log)

	var result maintenance.Result
	if maintenanceAnalyze {
		result, err = orchestrator.Analyze(ctx, maintenanceSchema, maintenanceTable)
	} else {
		proc, perr := maintenance.ParseProcedure(maintenanceProc)
		if perr != nil {
			return perr
		}
		result, err = orchestrator.Run(ctx, maintenanceSchema, maintenanceTable, proc, maintenance.Options{})
	}
	if err != nil {
		return err
	}

	printResult(result)
	if !result.Succeeded() {
		return fmt.Errorf("%s failed on %s", result.Procedure, result.Table)
	}
	return nil
}

func printResult(result maintenance.Result) {
	if result.Succeeded() {
		fmt.Fprintf(outputWriter, "%s %s on %s completed in %s\n",
			color.Green.Sprint("OK"), result.Procedure, result.Table,
			result.Duration.Round(time.Millisecond))
		return
	}
	fmt.Fprintf(outputWriter, "%s %s on %s: %s\n",
		color.Red.Sprint("FAILED"), result.Procedure, result.Table, result.ErrorMessage)
}
