package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// BackupsTable accesses the per-game backup history. Rows are immutable
// once created; there is no update operation.
type BackupsTable struct {
	backend *Backend
}

// Save inserts a backup record and returns its ID. A blank record ID gets
// a generated UUID v7. Deleting the archive file is a separate step from
// deleting the row; callers remove both.
func (bt *BackupsTable) Save(record types.BackupRecord) (string, error) {
	id := record.ID
	if id == "" {
		id = generateID()
	}
	if _, err := bt.backend.db.Exec(
		"INSERT INTO savedata_backups (id, game_id, archive_file_name, backup_time, file_size_bytes, storage_path) VALUES (?, ?, ?, ?, ?, ?)",
		id, record.GameID, record.ArchiveFileName, record.BackupTime, record.FileSizeBytes, record.StoragePath,
	); err != nil {
		return "", fmt.Errorf("saving backup record: %w", err)
	}
	return id, nil
}

// List returns the backup history for a game, newest first.
func (bt *BackupsTable) List(gameID int64) ([]types.BackupRecord, error) {
	rows, err := bt.backend.db.Query(
		"SELECT id, game_id, archive_file_name, backup_time, file_size_bytes, storage_path FROM savedata_backups WHERE game_id = ? ORDER BY backup_time DESC",
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing backup records: %w", err)
	}
	defer rows.Close()

	var records []types.BackupRecord
	for rows.Next() {
		var r types.BackupRecord
		if err := rows.Scan(&r.ID, &r.GameID, &r.ArchiveFileName, &r.BackupTime, &r.FileSizeBytes, &r.StoragePath); err != nil {
			return nil, fmt.Errorf("scanning backup record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating backup records: %w", err)
	}
	return records, nil
}

// Get returns a backup record by ID. Returns ErrNotFound when absent.
func (bt *BackupsTable) Get(id string) (types.BackupRecord, error) {
	if id == "" {
		return types.BackupRecord{}, types.ErrInvalidID
	}
	var r types.BackupRecord
	err := bt.backend.db.QueryRow(
		"SELECT id, game_id, archive_file_name, backup_time, file_size_bytes, storage_path FROM savedata_backups WHERE id = ?",
		id,
	).Scan(&r.ID, &r.GameID, &r.ArchiveFileName, &r.BackupTime, &r.FileSizeBytes, &r.StoragePath)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.BackupRecord{}, types.ErrNotFound
		}
		return types.BackupRecord{}, fmt.Errorf("getting backup record: %w", err)
	}
	return r, nil
}

// Delete removes a backup record by ID. Returns ErrNotFound when absent.
func (bt *BackupsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	res, err := bt.backend.db.Exec(
		"DELETE FROM savedata_backups WHERE id = ?", id,
	)
	if err != nil {
		return fmt.Errorf("deleting backup record: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking backup record deletion: %w", err)
	}
	if affected == 0 {
		return types.ErrNotFound
	}
	return nil
}
