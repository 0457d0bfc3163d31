package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// newStatsCmd groups the statistics subcommands.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Inspect play-statistics rollups",
	}
	cmd.AddCommand(newStatsShowCmd())
	cmd.AddCommand(newStatsTodayCmd())
	cmd.AddCommand(newStatsInitCmd())
	cmd.AddCommand(newStatsListCmd())
	return cmd
}

func newStatsShowCmd() *cobra.Command {
	var gameID int64
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show a game's statistics rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			statistics, err := backend.Statistics()
			if err != nil {
				return err
			}
			stats, err := statistics.Get(gameID)
			if err != nil {
				if errors.Is(err, types.ErrNotFound) {
					return fmt.Errorf("no statistics recorded for game %d", gameID)
				}
				return err
			}
			return printJSON(cmd, stats)
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func newStatsTodayCmd() *cobra.Command {
	var (
		gameID int64
		date   string
	)
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show a game's playtime for a day (default: today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = todayKey()
			}
			statistics, err := backend.Statistics()
			if err != nil {
				return err
			}
			playtime, err := statistics.GetTodayPlaytime(gameID, date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", playtime)
			return nil
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	cmd.Flags().StringVar(&date, "date", "", "day key YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func newStatsInitCmd() *cobra.Command {
	var gameID int64
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a zeroed statistics row for a game (no-op if present)",
		RunE: func(cmd *cobra.Command, args []string) error {
			statistics, err := backend.Statistics()
			if err != nil {
				return err
			}
			if err := statistics.InitIfNotExists(gameID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "statistics ready for game %d\n", gameID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

func newStatsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every game's statistics rollup",
		RunE: func(cmd *cobra.Command, args []string) error {
			statistics, err := backend.Statistics()
			if err != nil {
				return err
			}
			all, err := statistics.GetAll()
			if err != nil {
				return err
			}
			return printJSON(cmd, all)
		},
	}
}
