package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// StatisticsTable accesses the per-game rollup rows.
type StatisticsTable struct {
	backend *Backend
}

// Update upserts the rollup for gameID, replacing total_time,
// session_count, last_played, and the daily histogram wholesale. The
// caller computes the new histogram (typically with types.MergeDaily)
// before calling; no arithmetic happens here.
func (st *StatisticsTable) Update(gameID, totalTime, sessionCount int64, lastPlayed *int64, daily []types.DailyStat) error {
	if daily == nil {
		daily = []types.DailyStat{}
	}
	payload, err := json.Marshal(daily)
	if err != nil {
		return fmt.Errorf("serializing daily stats: %w", err)
	}

	var exists bool
	err = st.backend.db.QueryRow(
		"SELECT 1 FROM game_statistics WHERE game_id = ?", gameID,
	).Scan(&exists)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("checking statistics existence: %w", err)
	}

	if exists {
		_, err = st.backend.db.Exec(
			"UPDATE game_statistics SET total_time = ?, session_count = ?, last_played = ?, daily_stats = ? WHERE game_id = ?",
			totalTime, sessionCount, nullableInt(lastPlayed), string(payload), gameID,
		)
	} else {
		_, err = st.backend.db.Exec(
			"INSERT INTO game_statistics (game_id, total_time, session_count, last_played, daily_stats) VALUES (?, ?, ?, ?, ?)",
			gameID, totalTime, sessionCount, nullableInt(lastPlayed), string(payload),
		)
	}
	if err != nil {
		return fmt.Errorf("persisting statistics: %w", err)
	}
	return nil
}

// Get returns the rollup for gameID. Returns ErrNotFound when no row
// exists and ErrStatsCorrupt when the stored histogram does not parse.
func (st *StatisticsTable) Get(gameID int64) (types.GameStatistics, error) {
	row := st.backend.db.QueryRow(
		"SELECT game_id, total_time, session_count, last_played, daily_stats FROM game_statistics WHERE game_id = ?",
		gameID,
	)
	return hydrateStatistics(row)
}

// GetBatch returns the rollups for the given game IDs. Missing games are
// simply absent from the result.
func (st *StatisticsTable) GetBatch(gameIDs []int64) ([]types.GameStatistics, error) {
	if len(gameIDs) == 0 {
		return []types.GameStatistics{}, nil
	}

	placeholders := ""
	args := make([]any, len(gameIDs))
	for i, id := range gameIDs {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args[i] = id
	}

	rows, err := st.backend.db.Query(
		"SELECT game_id, total_time, session_count, last_played, daily_stats FROM game_statistics WHERE game_id IN ("+placeholders+")",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("querying statistics batch: %w", err)
	}
	defer rows.Close()

	return collectStatistics(rows)
}

// GetAll returns every rollup row.
func (st *StatisticsTable) GetAll() ([]types.GameStatistics, error) {
	rows, err := st.backend.db.Query(
		"SELECT game_id, total_time, session_count, last_played, daily_stats FROM game_statistics",
	)
	if err != nil {
		return nil, fmt.Errorf("querying all statistics: %w", err)
	}
	defer rows.Close()

	return collectStatistics(rows)
}

// GetTodayPlaytime returns the playtime recorded for todayKey, or 0 when
// the game or the date has no entry. Only a malformed stored histogram is
// an error.
func (st *StatisticsTable) GetTodayPlaytime(gameID int64, todayKey string) (int64, error) {
	stats, err := st.Get(gameID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	for _, d := range stats.Daily {
		if d.Date == todayKey {
			return d.Playtime, nil
		}
	}
	return 0, nil
}

// InitIfNotExists creates a zeroed rollup row for gameID. No-op when the
// row already exists.
func (st *StatisticsTable) InitIfNotExists(gameID int64) error {
	if _, err := st.backend.db.Exec(
		"INSERT OR IGNORE INTO game_statistics (game_id, total_time, session_count, last_played, daily_stats) VALUES (?, 0, 0, NULL, '[]')",
		gameID,
	); err != nil {
		return fmt.Errorf("initializing statistics: %w", err)
	}
	return nil
}

// Delete removes the rollup for gameID. Returns ErrNotFound when absent.
func (st *StatisticsTable) Delete(gameID int64) error {
	res, err := st.backend.db.Exec(
		"DELETE FROM game_statistics WHERE game_id = ?", gameID,
	)
	if err != nil {
		return fmt.Errorf("deleting statistics: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking statistics deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ParseDailyStats decodes a stored daily_stats payload. A payload that
// does not parse fails loudly with ErrStatsCorrupt rather than silently
// dropping data.
func ParseDailyStats(payload string) ([]types.DailyStat, error) {
	var daily []types.DailyStat
	if err := json.Unmarshal([]byte(payload), &daily); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrStatsCorrupt, err)
	}
	if daily == nil {
		daily = []types.DailyStat{}
	}
	return daily, nil
}

// hydrateStatistics converts a single row into a GameStatistics.
func hydrateStatistics(row *sql.Row) (types.GameStatistics, error) {
	var g types.GameStatistics
	var lastPlayed sql.NullInt64
	var payload string
	if err := row.Scan(&g.GameID, &g.TotalTime, &g.SessionCount, &lastPlayed, &payload); err != nil {
		if err == sql.ErrNoRows {
			return types.GameStatistics{}, types.ErrNotFound
		}
		return types.GameStatistics{}, fmt.Errorf("scanning statistics: %w", err)
	}
	if lastPlayed.Valid {
		v := lastPlayed.Int64
		g.LastPlayed = &v
	}
	daily, err := ParseDailyStats(payload)
	if err != nil {
		return types.GameStatistics{}, err
	}
	g.Daily = daily
	return g, nil
}

// collectStatistics hydrates every row of a multi-row statistics query.
func collectStatistics(rows *sql.Rows) ([]types.GameStatistics, error) {
	var results []types.GameStatistics
	for rows.Next() {
		var g types.GameStatistics
		var lastPlayed sql.NullInt64
		var payload string
		if err := rows.Scan(&g.GameID, &g.TotalTime, &g.SessionCount, &lastPlayed, &payload); err != nil {
			return nil, fmt.Errorf("scanning statistics: %w", err)
		}
		if lastPlayed.Valid {
			v := lastPlayed.Int64
			g.LastPlayed = &v
		}
		daily, err := ParseDailyStats(payload)
		if err != nil {
			return nil, err
		}
		g.Daily = daily
		results = append(results, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating statistics: %w", err)
	}
	if results == nil {
		results = []types.GameStatistics{}
	}
	return results, nil
}

// nullableInt maps a nil pointer to SQL NULL.
func nullableInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
