package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaka10843/ReinaManager/internal/savedata"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// newBackupCmd groups the save-data backup subcommands.
func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Create, delete, and list save-data backups",
	}
	cmd.AddCommand(newBackupCreateCmd())
	cmd.AddCommand(newBackupDeleteCmd())
	cmd.AddCommand(newBackupListCmd())
	return cmd
}

func newBackupCreateCmd() *cobra.Command {
	var (
		gameID    int64
		sourceDir string
		rootDir   string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Archive a game's save directory into the backup root",
		RunE: func(cmd *cobra.Command, args []string) error {
			if rootDir == "" {
				var err error
				rootDir, err = resolver.SavedataBackupPath()
				if err != nil {
					return err
				}
			}

			orch := savedata.NewOrchestrator(logger)
			record, err := orch.CreateBackup(cmd.Context(), gameID, sourceDir, rootDir)
			if err != nil {
				return err
			}

			backups, err := backend.Backups()
			if err != nil {
				return err
			}
			record.ID, err = backups.Save(record)
			if err != nil {
				return fmt.Errorf("archive created at %s but saving its record failed: %w", record.StoragePath, err)
			}

			return printJSON(cmd, record)
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	cmd.Flags().StringVar(&sourceDir, "source", "", "save directory to archive")
	cmd.Flags().StringVar(&rootDir, "root", "", "backup root directory (default: resolved savedata backup path)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("source")
	return cmd
}

func newBackupDeleteCmd() *cobra.Command {
	var recordID string
	cmd := &cobra.Command{
		Use:   "delete <backup-file-path>",
		Short: "Delete a backup file, and optionally its history record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orch := savedata.NewOrchestrator(logger)
			if err := orch.DeleteBackup(args[0]); err != nil {
				return err
			}

			if recordID != "" {
				backups, err := backend.Backups()
				if err != nil {
					return err
				}
				if err := backups.Delete(recordID); err != nil && !errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("backup file deleted but removing its record failed: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "backup deleted")
			return nil
		},
	}
	cmd.Flags().StringVar(&recordID, "record", "", "backup record ID to remove alongside the file")
	return cmd
}

func newBackupListCmd() *cobra.Command {
	var gameID int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a game's backup history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			backups, err := backend.Backups()
			if err != nil {
				return err
			}
			records, err := backups.List(gameID)
			if err != nil {
				return err
			}
			if records == nil {
				records = []types.BackupRecord{}
			}
			return printJSON(cmd, records)
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}
