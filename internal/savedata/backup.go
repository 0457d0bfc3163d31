// Package savedata orchestrates save-data backup creation and deletion:
// per-game directory layout, timestamped archive naming, and backup-file
// removal with host-convention path normalization.
package savedata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/misaka10843/ReinaManager/internal/archive"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// filenameTimeLayout gives second-granularity, sortable archive names.
const filenameTimeLayout = "20060102_150405"

// Orchestrator creates and deletes save-data backups.
type Orchestrator struct {
	writer *archive.Writer
	logger *zap.Logger

	// now is the clock used for archive naming; tests override it.
	now func() time.Time
}

// NewOrchestrator returns an Orchestrator. A nil logger is replaced with a
// no-op logger.
func NewOrchestrator(logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		writer: archive.NewWriter(logger),
		logger: logger,
		now:    time.Now,
	}
}

// CreateBackup archives sourceDir into backupRoot/game_{gameID}/ and
// returns the resulting record. The archive is named
// savedata_{gameID}_{YYYYMMDD_HHMMSS}.tar.gz with a UTC timestamp; a
// second call within the same clock second truncates and rewrites the same
// file, so the later call wins. Nothing is persisted; storing the record
// is the caller's step.
func (o *Orchestrator) CreateBackup(ctx context.Context, gameID int64, sourceDir, backupRoot string) (types.BackupRecord, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return types.BackupRecord{}, fmt.Errorf("%w: %s", types.ErrSourceNotFound, sourceDir)
		}
		return types.BackupRecord{}, fmt.Errorf("checking source %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return types.BackupRecord{}, fmt.Errorf("%w: %s", types.ErrSourceNotADirectory, sourceDir)
	}

	gameDir := filepath.Join(backupRoot, fmt.Sprintf("game_%d", gameID))
	if err := os.MkdirAll(gameDir, 0o755); err != nil {
		return types.BackupRecord{}, fmt.Errorf("creating backup directory: %w", err)
	}

	now := o.now().UTC()
	fileName := fmt.Sprintf("savedata_%d_%s%s", gameID, now.Format(filenameTimeLayout), archive.Extension)
	destPath := filepath.Join(gameDir, fileName)

	size, err := o.writer.Create(ctx, sourceDir, destPath)
	if err != nil {
		return types.BackupRecord{}, fmt.Errorf("creating archive: %w", err)
	}

	o.logger.Info("created save-data backup",
		zap.Int64("game_id", gameID),
		zap.String("archive", destPath),
		zap.Int64("size_bytes", size))

	return types.BackupRecord{
		GameID:          gameID,
		ArchiveFileName: fileName,
		BackupTime:      now.Unix(),
		FileSizeBytes:   size,
		StoragePath:     destPath,
	}, nil
}

// DeleteBackup removes the backup file at path after normalizing both
// separator styles to the host convention. A missing file is an error,
// not a no-op, so callers can detect stale backup metadata.
func (o *Orchestrator) DeleteBackup(path string) error {
	normalized := NormalizeSeparators(path)

	if _, err := os.Stat(normalized); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrBackupNotFound, normalized)
		}
		return fmt.Errorf("checking backup file %s: %w", normalized, err)
	}

	if err := os.Remove(normalized); err != nil {
		return fmt.Errorf("deleting backup file %s: %w", normalized, err)
	}

	o.logger.Info("deleted save-data backup", zap.String("archive", normalized))
	return nil
}

// NormalizeSeparators rewrites both `/` and `\` to the host path
// separator. Stored backup paths may carry either style depending on the
// platform that recorded them.
func NormalizeSeparators(path string) string {
	sep := string(filepath.Separator)
	path = strings.ReplaceAll(path, "\\", sep)
	return strings.ReplaceAll(path, "/", sep)
}
