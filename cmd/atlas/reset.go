package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard all data and restore the seed dataset",
	Long: `Reset throws away every record and repopulates the store with
the deterministic demo dataset. This cannot be undone; pass --force to
skip the confirmation prompt.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "skip confirmation")
}

func runReset(cmd *cobra.Command, args []string) error {
	if err := requireLocal("reset"); err != nil {
		return err
	}
	if !resetForce {
		fmt.Print("This discards all data and restores the demo dataset. Continue? [y/N] ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if answer := strings.ToLower(strings.TrimSpace(line)); answer != "y" && answer != "yes" {
			fmt.Println("aborted")
			return nil
		}
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	s.Reset()
	fmt.Println("store reset to seed data")
	return nil
}
