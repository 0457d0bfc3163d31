package types

import "errors"

// BackupRecord describes one completed save-data backup. Records are
// immutable once created; deleting a record does not delete the archive
// file, callers remove both.
type BackupRecord struct {
	ID              string `json:"id"`
	GameID          int64  `json:"game_id"`
	ArchiveFileName string `json:"archive_file_name"`
	BackupTime      int64  `json:"backup_time"` // unix seconds
	FileSizeBytes   int64  `json:"file_size_bytes"`
	StoragePath     string `json:"storage_path"`
}

// Backup and filesystem operation errors.
var (
	ErrSourceNotFound      = errors.New("source directory not found")
	ErrSourceNotADirectory = errors.New("source path is not a directory")
	ErrBackupNotFound      = errors.New("backup file not found")
	ErrDestinationExists   = errors.New("destination already exists")
	ErrDirResolution       = errors.New("cannot resolve platform directory")
)
