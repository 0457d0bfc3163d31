package types

// SessionRecord is one completed play session. Sessions are created once
// when a game exits and never updated.
type SessionRecord struct {
	SessionID string `json:"session_id"`
	GameID    int64  `json:"game_id"`
	StartTime int64  `json:"start_time"` // unix seconds
	EndTime   int64  `json:"end_time"`   // unix seconds
	Duration  int64  `json:"duration"`   // seconds
	Date      string `json:"date"`       // day key, YYYY-MM-DD
	CreatedAt int64  `json:"created_at"` // unix seconds
}
