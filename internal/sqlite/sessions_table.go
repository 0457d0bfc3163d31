package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// SessionsTable accesses the immutable play-session log.
type SessionsTable struct {
	backend *Backend
}

// Record inserts a completed play session and returns its generated ID.
// Sessions are append-only; recording one does not touch the statistics
// rollup, the caller follows up with a merge and an Update on the
// statistics table.
func (st *SessionsTable) Record(gameID, startTime, endTime, duration int64, date string) (string, error) {
	if duration < 0 {
		return "", types.ErrNegativeDuration
	}

	id := generateID()
	if _, err := st.backend.db.Exec(
		"INSERT INTO game_sessions (session_id, game_id, start_time, end_time, duration, date, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		id, gameID, startTime, endTime, duration, date, endTime,
	); err != nil {
		return "", fmt.Errorf("recording session: %w", err)
	}
	return id, nil
}

// List returns sessions for a game, newest first, with limit/offset
// paging. A non-positive limit returns all remaining rows.
func (st *SessionsTable) List(gameID int64, limit, offset int64) ([]types.SessionRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := st.backend.db.Query(
		"SELECT session_id, game_id, start_time, end_time, duration, date, created_at FROM game_sessions WHERE game_id = ? ORDER BY start_time DESC LIMIT ? OFFSET ?",
		gameID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()

	var sessions []types.SessionRecord
	for rows.Next() {
		s, err := hydrateSession(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrating session: %w", err)
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// Delete removes a session by ID. Returns ErrNotFound when absent.
func (st *SessionsTable) Delete(sessionID string) error {
	if sessionID == "" {
		return types.ErrInvalidID
	}
	res, err := st.backend.db.Exec(
		"DELETE FROM game_sessions WHERE session_id = ?", sessionID,
	)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking session deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}

// hydrateSession converts a row from sql.Rows into a SessionRecord.
func hydrateSession(rows *sql.Rows) (types.SessionRecord, error) {
	var s types.SessionRecord
	if err := rows.Scan(&s.SessionID, &s.GameID, &s.StartTime, &s.EndTime, &s.Duration, &s.Date, &s.CreatedAt); err != nil {
		return types.SessionRecord{}, err
	}
	return s, nil
}
