package types

import "strings"

// Settings is the single persisted user-settings row. The path fields are
// optional overrides for the computed backup locations; blank or
// whitespace-only values mean "use the default".
type Settings struct {
	DBBackupPath string `json:"db_backup_path"`
	SaveRootPath string `json:"save_root_path"`
}

// DBBackupOverride returns the database-backup path override, or "" when
// the field is absent or blank.
func (s Settings) DBBackupOverride() string {
	return normalizeOverride(s.DBBackupPath)
}

// SaveRootOverride returns the save-data root override, or "" when the
// field is absent or blank.
func (s Settings) SaveRootOverride() string {
	return normalizeOverride(s.SaveRootPath)
}

func normalizeOverride(v string) string {
	return strings.TrimSpace(v)
}
