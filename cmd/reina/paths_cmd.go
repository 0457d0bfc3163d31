package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newPathsCmd groups the storage-path subcommands.
func newPathsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Inspect and override resolved storage paths",
	}
	cmd.AddCommand(newPathsShowCmd())
	cmd.AddCommand(newPathsSetCmd())
	return cmd
}

func newPathsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the install mode and resolved storage paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := resolver.BaseDataDir()
			if err != nil {
				return err
			}
			dbPath, err := resolver.DBPath()
			if err != nil {
				return err
			}
			dbBackup, err := resolver.DBBackupPath()
			if err != nil {
				return err
			}
			savedataBackup, err := resolver.SavedataBackupPath()
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]string{
				"mode":            string(resolver.Mode()),
				"base_data_dir":   base,
				"database":        dbPath,
				"db_backup":       dbBackup,
				"savedata_backup": savedataBackup,
			})
		},
	}
}

// newPathsSetCmd writes path overrides to the settings row and
// invalidates the resolver cache so the next resolution sees them.
func newPathsSetCmd() *cobra.Command {
	var (
		dbBackupPath string
		saveRootPath string
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override backup locations (blank value clears an override)",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := backend.Settings()
			if err != nil {
				return err
			}

			changed := false
			if cmd.Flags().Changed("db-backup-path") {
				if err := settings.SetDBBackupPath(dbBackupPath); err != nil {
					return err
				}
				changed = true
			}
			if cmd.Flags().Changed("save-root") {
				if err := settings.SetSaveRootPath(saveRootPath); err != nil {
					return err
				}
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to set: pass --db-backup-path or --save-root")
			}

			resolver.Invalidate()
			fmt.Fprintln(cmd.OutOrStdout(), "paths updated")
			return nil
		},
	}
	cmd.Flags().StringVar(&dbBackupPath, "db-backup-path", "", "database backup directory override")
	cmd.Flags().StringVar(&saveRootPath, "save-root", "", "save-data root override (backups go under <root>/backups)")
	return cmd
}
