package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/reports"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run aggregate reports over the current data",
	Long: `Report loads the current snapshot into an in-memory SQLite
database and prints the recruiting funnel, the sales pipeline, and the
activity load.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func runReport(cmd *cobra.Command, args []string) error {
	snap, err := currentSnapshot(cmd)
	if err != nil {
		return err
	}
	sum, err := reports.Build(snap)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(sum)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	fmt.Fprintln(w, "APPLICATIONS BY STAGE")
	fmt.Fprintln(w, "STAGE\tCOUNT")
	for _, row := range sum.ApplicationsByStage {
		fmt.Fprintf(w, "%s\t%d\n", row.Stage, row.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "SALES PIPELINE")
	fmt.Fprintln(w, "STAGE\tCOUNT\tVALUE\tWEIGHTED")
	for _, row := range sum.SalesPipeline {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\n", row.Stage, row.Count, row.Value, row.Weighted)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "ACTIVITY LOAD")
	fmt.Fprintln(w, "TYPE\tTOTAL\tDONE")
	for _, row := range sum.Activities {
		fmt.Fprintf(w, "%s\t%d\t%d\n", row.Type, row.Total, row.Done)
	}
	return w.Flush()
}
