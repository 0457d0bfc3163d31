package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/misaka10843/ReinaManager/internal/paths"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// Backend owns the SQLite connection and the table accessors. It is not
// usable until Attach succeeds; after Detach every accessor returns
// types.ErrNotAttached.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB

	settings   *SettingsTable
	sessions   *SessionsTable
	statistics *StatisticsTable
	backups    *BackupsTable
}

// NewBackend creates an unattached backend.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach opens (or creates) the database under config.DataDir/data and
// ensures the schema and the singleton settings row exist. Returns
// ErrAlreadyAttached when called twice.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	dbDir := filepath.Join(dataDir, paths.DataDirName)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dbDir, paths.DBFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	// Singleton settings row; the resolver reads overrides from it.
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO settings (id, db_backup_path, save_root_path) VALUES (1, NULL, NULL)",
	); err != nil {
		db.Close()
		return fmt.Errorf("seeding settings row: %w", err)
	}

	b.db = db
	b.config = config
	b.attached = true

	b.settings = &SettingsTable{backend: b}
	b.sessions = &SessionsTable{backend: b}
	b.statistics = &StatisticsTable{backend: b}
	b.backups = &BackupsTable{backend: b}

	return nil
}

// Detach closes the database connection. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}

	b.attached = false
	b.settings = nil
	b.sessions = nil
	b.statistics = nil
	b.backups = nil

	return nil
}

// Settings returns the settings accessor.
func (b *Backend) Settings() (*SettingsTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrNotAttached
	}
	return b.settings, nil
}

// Sessions returns the play-session accessor.
func (b *Backend) Sessions() (*SessionsTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrNotAttached
	}
	return b.sessions, nil
}

// Statistics returns the statistics accessor.
func (b *Backend) Statistics() (*StatisticsTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrNotAttached
	}
	return b.statistics, nil
}

// Backups returns the backup-record accessor.
func (b *Backend) Backups() (*BackupsTable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return nil, types.ErrNotAttached
	}
	return b.backups, nil
}

// generateID generates a UUID v7 record ID, falling back to v4 if v7
// generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
