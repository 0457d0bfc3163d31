package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// newSessionCmd groups the play-session subcommands.
func newSessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Record and list play sessions",
	}
	cmd.AddCommand(newSessionRecordCmd())
	cmd.AddCommand(newSessionListCmd())
	return cmd
}

// newSessionRecordCmd records a completed session and immediately merges
// it into the game's statistics rollup, keeping the lifetime total equal
// to the daily histogram sum.
func newSessionRecordCmd() *cobra.Command {
	var (
		gameID   int64
		start    int64
		end      int64
		duration int64
		date     string
	)
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a finished play session and update statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			if duration == 0 && end > start {
				duration = end - start
			}
			if date == "" {
				date = dayKeyOf(end)
			}

			sessions, err := backend.Sessions()
			if err != nil {
				return err
			}
			statistics, err := backend.Statistics()
			if err != nil {
				return err
			}

			sessionID, err := sessions.Record(gameID, start, end, duration, date)
			if err != nil {
				return err
			}

			if err := statistics.InitIfNotExists(gameID); err != nil {
				return err
			}
			stats, err := statistics.Get(gameID)
			if err != nil && !errors.Is(err, types.ErrNotFound) {
				return err
			}

			merged, err := types.MergeDaily(stats.Daily, date, duration)
			if err != nil {
				return err
			}
			lastPlayed := end
			if err := statistics.Update(gameID, types.TotalPlaytime(merged), stats.SessionCount+1, &lastPlayed, merged); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recorded session %s (%ds on %s)\n", sessionID, duration, date)
			return nil
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	cmd.Flags().Int64Var(&start, "start", 0, "session start (unix seconds)")
	cmd.Flags().Int64Var(&end, "end", 0, "session end (unix seconds)")
	cmd.Flags().Int64Var(&duration, "duration", 0, "session duration in seconds (default: end - start)")
	cmd.Flags().StringVar(&date, "date", "", "day key YYYY-MM-DD (default: derived from end)")
	_ = cmd.MarkFlagRequired("game")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newSessionListCmd() *cobra.Command {
	var (
		gameID int64
		limit  int64
		offset int64
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a game's play sessions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := backend.Sessions()
			if err != nil {
				return err
			}
			records, err := sessions.List(gameID, limit, offset)
			if err != nil {
				return err
			}
			if records == nil {
				records = []types.SessionRecord{}
			}
			return printJSON(cmd, records)
		},
	}
	cmd.Flags().Int64Var(&gameID, "game", 0, "game ID")
	cmd.Flags().Int64Var(&limit, "limit", 50, "maximum sessions to return (0 for all)")
	cmd.Flags().Int64Var(&offset, "offset", 0, "sessions to skip")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}
