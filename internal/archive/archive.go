// Package archive packs a directory tree into a single gzip-compressed tar
// container, preserving byte content and forward-slash relative paths.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// Extension is the container suffix for archives produced by Writer.
const Extension = ".tar.gz"

// Writer creates save-data archives. Only regular files are packed; empty
// directories, symlinks, permissions, and timestamps are not represented.
type Writer struct {
	logger *zap.Logger
}

// NewWriter returns a Writer. A nil logger is replaced with a no-op logger.
func NewWriter(logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{logger: logger}
}

// Create packs every regular file under sourceDir into a tar.gz container
// at destPath and returns the container's size in bytes. Entry names are
// the POSIX-style relative paths from sourceDir. On failure an incomplete
// file may remain at destPath but the call reports the error; it is never
// claimed complete.
func (w *Writer) Create(ctx context.Context, sourceDir, destPath string) (int64, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%w: %s", types.ErrSourceNotFound, sourceDir)
		}
		return 0, fmt.Errorf("checking source %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", types.ErrSourceNotADirectory, sourceDir)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("creating archive file: %w", err)
	}
	defer out.Close()

	gzWriter := gzip.NewWriter(out)
	tarWriter := tar.NewWriter(gzWriter)

	if err := w.addTree(ctx, tarWriter, sourceDir); err != nil {
		tarWriter.Close()
		gzWriter.Close()
		return 0, err
	}
	if err := tarWriter.Close(); err != nil {
		return 0, fmt.Errorf("finalizing tar stream: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return 0, fmt.Errorf("finalizing gzip stream: %w", err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("closing archive file: %w", err)
	}

	return Size(destPath)
}

// addTree walks sourceDir and streams each regular file into the tar
// writer. Traversal order is directory-listing order; consumers must not
// rely on in-archive ordering.
func (w *Writer) addTree(ctx context.Context, tarWriter *tar.Writer, sourceDir string) error {
	return filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return fmt.Errorf("relativizing %s: %w", path, err)
		}
		if relPath == "." {
			return nil
		}
		if info.IsDir() {
			// Directories carry no entry; files below them name their
			// full relative path.
			return nil
		}
		if !info.Mode().IsRegular() {
			w.logger.Warn("skipping non-regular file",
				zap.String("path", path),
				zap.String("mode", info.Mode().String()))
			return nil
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return fmt.Errorf("building header for %s: %w", path, err)
		}
		header.Name = filepath.ToSlash(relPath)

		if err := tarWriter.WriteHeader(header); err != nil {
			return fmt.Errorf("writing header for %s: %w", relPath, err)
		}

		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer file.Close()

		if _, err := io.Copy(tarWriter, file); err != nil {
			return fmt.Errorf("archiving %s: %w", relPath, err)
		}

		w.logger.Debug("added file to archive", zap.String("entry", header.Name))
		return nil
	})
}

// Size returns the on-disk size of the archive at path.
func Size(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("sizing archive: %w", err)
	}
	return info.Size(), nil
}
