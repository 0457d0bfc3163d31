package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaka10843/ReinaManager/internal/fsutil"
)

// newMoveBackupsCmd relocates a backup directory tree, typically after a
// save-root override changes where backups should live.
func newMoveBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move-backups <old-dir> <new-dir>",
		Short: "Move a backup directory to a new location",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := fsutil.MoveDirectory(args[0], args[1])
			if err != nil {
				// The copied-source-remains case moved the data but left
				// the old tree behind; report it with the status attached.
				return fmt.Errorf("move finished with status %q: %w", status, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "move finished: %s\n", status)
			return nil
		},
	}
}
