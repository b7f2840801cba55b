// Package main provides the atlas CLI: a local-first recruiting/CRM
// store with job postings, candidates, staged applications, accounts,
// and sales opportunities, fronted by generic table and board views.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/huemot/atlas/internal/memstore"
	"github.com/huemot/atlas/internal/paths"
	"github.com/huemot/atlas/internal/rest"
)

// Version is the CLI version reported by the version command.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "atlas",
	Short:   "Atlas is a local-first recruiting and CRM store",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		appConfig = cfg
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.atlas-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(duplicatesCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps an error to the process exit code. Remote API and
// filesystem failures are system errors; bad input, unknown collections,
// and missing records are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var httpErr *rest.HTTPError
	var pathErr *fs.PathError
	if errors.As(err, &httpErr) || errors.As(err, &pathErr) {
		return exitSysError
	}
	return exitUserError
}

// resolveDataDir returns the data directory path following the precedence
// flag > config.yaml data_dir > ATLAS_DATA_DIR env > default $(CWD)/.atlas-db.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence flag > ATLAS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("atlas v" + Version)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the atlas store",
	Long:  "Initialize the data directory with the seed dataset unless a snapshot already exists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dataDir, err := resolveDataDir()
		if err != nil {
			return err
		}
		s, err := openStore()
		if err != nil {
			return err
		}
		if _, statErr := os.Stat(filepath.Join(dataDir, memstore.SnapshotFile)); os.IsNotExist(statErr) {
			s.Reset()
		}
		fmt.Printf("atlas store ready in %s\n", dataDir)
		return nil
	},
}
