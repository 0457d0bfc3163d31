// Package sqlite implements the SQLite storage backend for ReinaManager's
// settings, play sessions, statistics rollups, and backup records.
package sqlite

// Schema DDL. Statements are idempotent; the database file persists
// across runs.
const (
	createSettings = `CREATE TABLE IF NOT EXISTS settings (
    id INTEGER PRIMARY KEY CHECK (id = 1),
    db_backup_path TEXT,
    save_root_path TEXT
);`

	createGameSessions = `CREATE TABLE IF NOT EXISTS game_sessions (
    session_id TEXT PRIMARY KEY,
    game_id INTEGER NOT NULL,
    start_time INTEGER NOT NULL,
    end_time INTEGER NOT NULL,
    duration INTEGER NOT NULL,
    date TEXT NOT NULL,
    created_at INTEGER NOT NULL
);`

	createGameSessionsIndex = `CREATE INDEX IF NOT EXISTS idx_game_sessions_game_start
    ON game_sessions (game_id, start_time DESC);`

	createGameStatistics = `CREATE TABLE IF NOT EXISTS game_statistics (
    game_id INTEGER PRIMARY KEY,
    total_time INTEGER NOT NULL,
    session_count INTEGER NOT NULL,
    last_played INTEGER,
    daily_stats TEXT NOT NULL
);`

	createSavedataBackups = `CREATE TABLE IF NOT EXISTS savedata_backups (
    id TEXT PRIMARY KEY,
    game_id INTEGER NOT NULL,
    archive_file_name TEXT NOT NULL,
    backup_time INTEGER NOT NULL,
    file_size_bytes INTEGER NOT NULL,
    storage_path TEXT NOT NULL
);`

	createSavedataBackupsIndex = `CREATE INDEX IF NOT EXISTS idx_savedata_backups_game_time
    ON savedata_backups (game_id, backup_time DESC);`
)

// schemaStatements lists every DDL statement Attach executes, in order.
var schemaStatements = []string{
	createSettings,
	createGameSessions,
	createGameSessionsIndex,
	createGameStatistics,
	createSavedataBackups,
	createSavedataBackupsIndex,
}
