package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaka10843/ReinaManager/internal/fsutil"
)

// newCoversCmd groups cover-asset maintenance subcommands.
func newCoversCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covers",
		Short: "Maintain custom cover assets",
	}
	cmd.AddCommand(newCoversCleanCmd())
	return cmd
}

// newCoversCleanCmd removes a game's cover files best-effort: individual
// failures are logged and the rest of the batch continues.
func newCoversCleanCmd() *cobra.Command {
	var (
		gameID    int64
		coversDir string
	)
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete a game's custom cover files",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fsutil.DeleteGameCovers(logger, gameID, coversDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "covers cleaned for game %d\n", gameID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	cmd.Flags().StringVar(&coversDir, "dir", "", "covers directory")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}
