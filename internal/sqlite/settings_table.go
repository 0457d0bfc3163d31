package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/misaka10843/ReinaManager/internal/paths"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// Compile-time check: SettingsTable feeds path overrides to the resolver.
var _ paths.SettingsSource = (*SettingsTable)(nil)

// SettingsTable accesses the singleton user-settings row (id = 1).
type SettingsTable struct {
	backend *Backend
}

// Get returns the settings row. NULL columns come back as blank strings.
func (st *SettingsTable) Get() (types.Settings, error) {
	var dbBackup, saveRoot sql.NullString
	err := st.backend.db.QueryRow(
		"SELECT db_backup_path, save_root_path FROM settings WHERE id = 1",
	).Scan(&dbBackup, &saveRoot)
	if err != nil {
		return types.Settings{}, fmt.Errorf("reading settings: %w", err)
	}
	return types.Settings{
		DBBackupPath: dbBackup.String,
		SaveRootPath: saveRoot.String,
	}, nil
}

// SetDBBackupPath stores the database-backup path override. A blank value
// clears the override. Callers must invalidate the path resolver cache
// after this write.
func (st *SettingsTable) SetDBBackupPath(path string) error {
	if _, err := st.backend.db.Exec(
		"UPDATE settings SET db_backup_path = ? WHERE id = 1", nullable(path),
	); err != nil {
		return fmt.Errorf("updating db backup path: %w", err)
	}
	return nil
}

// SetSaveRootPath stores the save-data root override. A blank value clears
// the override. Callers must invalidate the path resolver cache after this
// write.
func (st *SettingsTable) SetSaveRootPath(path string) error {
	if _, err := st.backend.db.Exec(
		"UPDATE settings SET save_root_path = ? WHERE id = 1", nullable(path),
	); err != nil {
		return fmt.Errorf("updating save root path: %w", err)
	}
	return nil
}

// DBBackupOverride returns the database-backup override, "" when absent or
// blank.
func (st *SettingsTable) DBBackupOverride() (string, error) {
	settings, err := st.Get()
	if err != nil {
		return "", err
	}
	return settings.DBBackupOverride(), nil
}

// SaveRootOverride returns the save-data root override, "" when absent or
// blank.
func (st *SettingsTable) SaveRootOverride() (string, error) {
	settings, err := st.Get()
	if err != nil {
		return "", err
	}
	return settings.SaveRootOverride(), nil
}

// nullable maps a blank string to SQL NULL.
func nullable(v string) any {
	if v == "" {
		return nil
	}
	return v
}
