package types

import "errors"

// DailyStat is one entry of the per-game daily playtime histogram.
// The JSON field names match the persisted daily_stats payload.
type DailyStat struct {
	Date     string `json:"date"`
	Playtime int64  `json:"playtime"` // seconds
}

// GameStatistics is the per-game rollup: lifetime totals plus the daily
// histogram. Daily preserves insertion order and holds at most one entry
// per date.
type GameStatistics struct {
	GameID       int64       `json:"game_id"`
	TotalTime    int64       `json:"total_time"` // seconds
	SessionCount int64       `json:"session_count"`
	LastPlayed   *int64      `json:"last_played"` // unix seconds, nil if never
	Daily        []DailyStat `json:"daily_stats"`
}

// Statistics errors.
var (
	ErrStatsCorrupt     = errors.New("malformed daily stats payload")
	ErrNegativeDuration = errors.New("session duration must not be negative")
)

// MergeDaily returns a copy of daily with seconds added to the entry for
// date, appending a new entry when the date is not present. The result
// keeps insertion order, holds at most one entry per date, and its summed
// playtime grows by exactly seconds, so a caller that stores
// TotalPlaytime(merged) keeps the total equal to the histogram sum.
func MergeDaily(daily []DailyStat, date string, seconds int64) ([]DailyStat, error) {
	if seconds < 0 {
		return nil, ErrNegativeDuration
	}
	merged := make([]DailyStat, len(daily))
	copy(merged, daily)
	for i := range merged {
		if merged[i].Date == date {
			merged[i].Playtime += seconds
			return merged, nil
		}
	}
	return append(merged, DailyStat{Date: date, Playtime: seconds}), nil
}

// TotalPlaytime returns the sum of all histogram entries in seconds.
func TotalPlaytime(daily []DailyStat) int64 {
	var total int64
	for _, d := range daily {
		total += d.Playtime
	}
	return total
}
