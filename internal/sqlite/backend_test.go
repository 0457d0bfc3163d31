package sqlite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/misaka10843/ReinaManager/internal/paths"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

// attachTestBackend attaches a backend to a temporary data directory and
// detaches it on cleanup.
func attachTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: t.TempDir()}))
	t.Cleanup(func() { require.NoError(t, b.Detach()) })
	return b
}

func TestBackendLifecycle(t *testing.T) {
	dataDir := t.TempDir()
	b := NewBackend()

	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))

	// The database lives under DataDir/data.
	_, err := os.Stat(filepath.Join(dataDir, paths.DataDirName, paths.DBFileName))
	assert.NoError(t, err)

	assert.ErrorIs(t, b.Attach(types.Config{DataDir: dataDir}), types.ErrAlreadyAttached)

	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach()) // idempotent

	_, err = b.Settings()
	assert.ErrorIs(t, err, types.ErrNotAttached)
	_, err = b.Sessions()
	assert.ErrorIs(t, err, types.ErrNotAttached)
	_, err = b.Statistics()
	assert.ErrorIs(t, err, types.ErrNotAttached)
	_, err = b.Backups()
	assert.ErrorIs(t, err, types.ErrNotAttached)
}

func TestBackendReattach(t *testing.T) {
	dataDir := t.TempDir()

	b := NewBackend()
	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
	settings, err := b.Settings()
	require.NoError(t, err)
	require.NoError(t, settings.SetDBBackupPath("/mnt/backups"))
	require.NoError(t, b.Detach())

	// Data survives across attach cycles.
	require.NoError(t, b.Attach(types.Config{DataDir: dataDir}))
	defer b.Detach()

	settings, err = b.Settings()
	require.NoError(t, err)
	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "/mnt/backups", got.DBBackupPath)
}

func TestGenerateID(t *testing.T) {
	a := generateID()
	b := generateID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
