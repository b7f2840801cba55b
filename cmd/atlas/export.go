// Export command: CSV export of a collection through the table engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/table"
)

var (
	exportOpts tableOpts
	exportOut  string
)

var exportCmd = &cobra.Command{
	Use:   "export <collection>",
	Short: "Export a collection to CSV",
	Long: `Export writes the collection as CSV: header row first, one
line per record, comma-delimited. The view flags apply before export, so
the file matches what list shows: filtered, sorted, hidden columns
omitted. Values containing a comma are wrapped in double quotes.

Example:
  atlas export candidates
  atlas export jobs --query remote --sort title --out jobs.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	addTableFlags(exportCmd.Flags(), &exportOpts)
	exportCmd.Flags().StringVar(&exportOut, "out", table.ExportFilename, "output file (use - for stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	exportOpts.csv = true

	if exportOut == "-" {
		return renderCollection(cmd, args[0], os.Stdout, exportOpts)
	}

	f, err := os.Create(exportOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", exportOut, err)
	}
	defer f.Close()

	if err := renderCollection(cmd, args[0], f, exportOpts); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, "exported to", exportOut)
	return nil
}
