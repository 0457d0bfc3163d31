// Package fsutil provides the generic filesystem helpers used around
// backup management: directory moves with a cross-volume fallback,
// idempotent file deletion, file copy, and best-effort cover cleanup.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// MoveStatus reports how MoveDirectory completed.
type MoveStatus string

const (
	// MoveSkippedMissing means the source did not exist; nothing to do.
	MoveSkippedMissing MoveStatus = "skipped-missing"
	// MoveRenamed means a single rename moved the directory.
	MoveRenamed MoveStatus = "renamed"
	// MoveCopied means the rename failed (typically cross-volume) and the
	// tree was copied, then the source removed.
	MoveCopied MoveStatus = "copied"
	// MoveCopiedSourceRemains means the tree was copied but removing the
	// source failed; both copies exist. Returned together with an error.
	MoveCopiedSourceRemains MoveStatus = "copied-source-remains"
	// MoveFailed means the directory was not moved.
	MoveFailed MoveStatus = "failed"
)

// MoveDirectory moves the directory at oldPath to newPath. A missing
// source is a successful no-op. An existing destination fails with
// ErrDestinationExists and leaves both trees untouched. Missing parents of
// newPath are created. A rename is attempted first; on failure the tree is
// copied and the source removed, with the copied-but-not-removed case
// reported distinctly.
func MoveDirectory(oldPath, newPath string) (MoveStatus, error) {
	if _, err := os.Stat(oldPath); err != nil {
		if os.IsNotExist(err) {
			return MoveSkippedMissing, nil
		}
		return MoveFailed, fmt.Errorf("checking source directory: %w", err)
	}

	if _, err := os.Stat(newPath); err == nil {
		return MoveFailed, fmt.Errorf("%w: %s", types.ErrDestinationExists, newPath)
	} else if !os.IsNotExist(err) {
		return MoveFailed, fmt.Errorf("checking destination: %w", err)
	}

	if parent := filepath.Dir(newPath); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return MoveFailed, fmt.Errorf("creating destination parent: %w", err)
		}
	}

	if err := os.Rename(oldPath, newPath); err == nil {
		return MoveRenamed, nil
	}

	// Rename can fail across volumes; fall back to copy then delete.
	if err := copyDirAll(oldPath, newPath); err != nil {
		return MoveFailed, fmt.Errorf("copying directory tree: %w", err)
	}
	if err := os.RemoveAll(oldPath); err != nil {
		return MoveCopiedSourceRemains, fmt.Errorf("copied to %s but removing source failed: %w", newPath, err)
	}
	return MoveCopied, nil
}

// copyDirAll recursively copies the tree rooted at src to dst.
func copyDirAll(src, dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyDirAll(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFileContents(srcPath, dstPath); err != nil {
			return err
		}
	}
	return nil
}

// CopyFile copies src to dst, creating missing parent directories of dst.
func CopyFile(src, dst string) error {
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", types.ErrSourceNotFound, src)
		}
		return fmt.Errorf("checking source file: %w", err)
	}
	if parent := filepath.Dir(dst); parent != "" {
		if err := os.MkdirAll(parent, 0o755); err != nil {
			return fmt.Errorf("creating destination parent: %w", err)
		}
	}
	return copyFileContents(src, dst)
}

func copyFileContents(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s: %w", src, err)
	}
	return out.Close()
}

// DeleteFile removes the file at path. A missing file is success.
func DeleteFile(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking file: %w", err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting file %s: %w", path, err)
	}
	return nil
}

// DeleteGameCovers removes every cover_{gameID}_* file in coversDir.
// Cleanup is best-effort: a failed removal is logged and the remaining
// files are still processed. A missing directory is success.
func DeleteGameCovers(logger *zap.Logger, gameID int64, coversDir string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	entries, err := os.ReadDir(coversDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading covers directory: %w", err)
	}

	prefix := fmt.Sprintf("cover_%d_", gameID)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		path := filepath.Join(coversDir, entry.Name())
		if err := os.Remove(path); err != nil {
			logger.Warn("failed to delete cover file",
				zap.String("path", path),
				zap.Error(err))
		}
	}
	return nil
}
