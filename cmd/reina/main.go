// Package main provides the reina CLI: save-data backups, play-session
// recording, statistics rollups, and storage-path management for the
// ReinaManager library.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/misaka10843/ReinaManager/internal/paths"
	"github.com/misaka10843/ReinaManager/internal/sqlite"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	verbose   bool
}

var (
	flags rootFlags

	logger   *zap.Logger
	backend  *sqlite.Backend
	resolver *paths.Resolver
)

var rootCmd = &cobra.Command{
	Use:   "reina",
	Short: "Manage ReinaManager save-data backups and play statistics",
	Long: `Reina manages the ReinaManager game library's save-data backups,
play sessions, statistics rollups, and storage paths. Data lives in a
SQLite database under the portable or platform data directory.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initApp,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return closeApp() },
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "base data directory (default: resolved per install mode)")
	rootCmd.PersistentFlags().BoolVar(&flags.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newBackupCmd())
	rootCmd.AddCommand(newSessionCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newPathsCmd())
	rootCmd.AddCommand(newMoveBackupsCmd())
	rootCmd.AddCommand(newCoversCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// initApp builds the logger, loads config.yaml, attaches the storage
// backend, and wires the path resolver to the settings table.
func initApp(cmd *cobra.Command, args []string) error {
	var err error
	logger, err = newLogger(flags.verbose)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	configDir, err := resolveConfigDir(flags.configDir)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	dataDir, err := resolveBaseDataDir(flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return err
	}

	backend = sqlite.NewBackend()
	if err := backend.Attach(types.Config{DataDir: dataDir}); err != nil {
		return fmt.Errorf("attaching storage backend: %w", err)
	}

	settings, err := backend.Settings()
	if err != nil {
		return err
	}
	resolver = paths.NewResolver(settings)

	return nil
}

// closeApp detaches the backend and flushes the logger.
func closeApp() error {
	if logger != nil {
		_ = logger.Sync()
	}
	if backend == nil {
		return nil
	}
	return backend.Detach()
}

// newLogger returns a development logger when verbose, a no-op logger
// otherwise; command output goes through stdout, not the logger.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// resolveBaseDataDir follows the precedence chain:
// flag > config.yaml data_dir > mode-based default.
func resolveBaseDataDir(flag, configValue string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configValue != "" {
		return configValue, nil
	}
	return paths.BaseDataDirForMode(paths.DetectMode())
}

// newInitCmd creates the storage directories, database schema, and a
// default config.yaml. Attach in PersistentPreRunE already did the work;
// the command exists so first-run setup has an explicit entry point.
func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize storage and configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolver.BaseDataDir()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "initialized %s install at %s\n", resolver.Mode(), base)
			return nil
		},
	}
}
