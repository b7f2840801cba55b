// Snapshot export/import: the whole dataset as one JSON document, for
// backup and for moving data between machines.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/pkg/types"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export or import the full dataset",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the full dataset as JSON",
	Long:  "Export writes every collection as one JSON document. Without a file argument the snapshot goes to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSnapshotExport,
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the full dataset from a JSON snapshot",
	Long: `Import replaces the entire dataset with the snapshot in the
given file ("-" reads stdin). The current data is discarded wholesale;
there is no merge. Import is local-only; the remote API has no bulk
write.`,
	Args: cobra.ExactArgs(1),
	RunE: runSnapshotImport,
}

func init() {
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
}

func runSnapshotExport(cmd *cobra.Command, args []string) error {
	snap, err := currentSnapshot(cmd)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	out = append(out, '\n')

	if len(args) == 0 || args[0] == "-" {
		_, err = os.Stdout.Write(out)
		return err
	}
	if err := os.WriteFile(args[0], out, 0o644); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}
	fmt.Printf("snapshot written to %s\n", args[0])
	return nil
}

func runSnapshotImport(cmd *cobra.Command, args []string) error {
	if err := requireLocal("snapshot import"); err != nil {
		return err
	}

	var (
		raw []byte
		err error
	)
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}

	var snap types.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidData, err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	s.Import(snap)
	fmt.Println("snapshot imported")
	return nil
}
