package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// dayKeyLayout is the calendar-day key used by the daily histogram.
const dayKeyLayout = "2006-01-02"

// printJSON writes v to the command's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

// todayKey returns the current local day key.
func todayKey() string {
	return time.Now().Format(dayKeyLayout)
}

// dayKeyOf returns the local day key for a unix timestamp.
func dayKeyOf(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).Format(dayKeyLayout)
}
