package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// overridePlatform points the platform-detection functions at test
// directories and restores them on cleanup.
func overridePlatform(t *testing.T, exeDir, configDir string) {
	t.Helper()
	saved := platformDir
	platformDir.executable = func() (string, error) {
		return filepath.Join(exeDir, "reina"), nil
	}
	platformDir.userConfigDir = func() (string, error) {
		return configDir, nil
	}
	t.Cleanup(func() { platformDir = saved })
}

// plantPortableMarker creates resources/data/reina_manager.db next to the
// fake executable.
func plantPortableMarker(t *testing.T, exeDir string) {
	t.Helper()
	dataDir := filepath.Join(exeDir, ResourceDirName, DataDirName)
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, DBFileName), []byte{}, 0o644))
}

// stubSettings is a fixed-value SettingsSource.
type stubSettings struct {
	dbBackup string
	saveRoot string
	err      error
}

func (s *stubSettings) DBBackupOverride() (string, error) { return s.dbBackup, s.err }
func (s *stubSettings) SaveRootOverride() (string, error) { return s.saveRoot, s.err }

func TestDetectMode(t *testing.T) {
	t.Run("standard without marker", func(t *testing.T) {
		overridePlatform(t, t.TempDir(), t.TempDir())
		assert.Equal(t, ModeStandard, DetectMode())
	})

	t.Run("standard with data dir but no database", func(t *testing.T) {
		exeDir := t.TempDir()
		overridePlatform(t, exeDir, t.TempDir())
		require.NoError(t, os.MkdirAll(filepath.Join(exeDir, ResourceDirName, DataDirName), 0o755))
		assert.Equal(t, ModeStandard, DetectMode())
	})

	t.Run("portable with full marker", func(t *testing.T) {
		exeDir := t.TempDir()
		overridePlatform(t, exeDir, t.TempDir())
		plantPortableMarker(t, exeDir)
		assert.Equal(t, ModePortable, DetectMode())
	})
}

func TestBaseDataDirForMode(t *testing.T) {
	exeDir := t.TempDir()
	configDir := t.TempDir()
	overridePlatform(t, exeDir, configDir)

	portable, err := BaseDataDirForMode(ModePortable)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(exeDir, ResourceDirName), portable)

	standard, err := BaseDataDirForMode(ModeStandard)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, AppDirName), standard)
}

func TestResolverDefaults(t *testing.T) {
	exeDir := t.TempDir()
	configDir := t.TempDir()
	overridePlatform(t, exeDir, configDir)

	r := NewResolver(&stubSettings{})
	base := filepath.Join(configDir, AppDirName)

	assert.Equal(t, ModeStandard, r.Mode())

	dbPath, err := r.DBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, DataDirName, DBFileName), dbPath)

	dbBackup, err := r.DBBackupPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, DataDirName, BackupSubdirName), dbBackup)

	saveBackup, err := r.SavedataBackupPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, BackupSubdirName), saveBackup)
}

func TestResolverOverrides(t *testing.T) {
	overridePlatform(t, t.TempDir(), t.TempDir())

	custom := t.TempDir()
	r := NewResolver(&stubSettings{dbBackup: custom, saveRoot: custom})

	// The db-backup override is used exactly as stored.
	dbBackup, err := r.DBBackupPath()
	require.NoError(t, err)
	assert.Equal(t, custom, dbBackup)

	// The save-root override gets the fixed backups subdirectory appended.
	saveBackup, err := r.SavedataBackupPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(custom, BackupSubdirName), saveBackup)
}

func TestResolverCacheStability(t *testing.T) {
	exeDir := t.TempDir()
	overridePlatform(t, exeDir, t.TempDir())
	plantPortableMarker(t, exeDir)

	r := NewResolver(&stubSettings{})
	require.Equal(t, ModePortable, r.Mode())

	first, err := r.SavedataBackupPath()
	require.NoError(t, err)

	// Removing the portable marker after first resolution changes nothing:
	// the cached mode and path keep answering.
	require.NoError(t, os.RemoveAll(filepath.Join(exeDir, ResourceDirName, DataDirName)))
	assert.Equal(t, ModePortable, r.Mode())
	again, err := r.SavedataBackupPath()
	require.NoError(t, err)
	assert.Equal(t, first, again)

	// Invalidation drops both, so the next lookup re-detects.
	r.Invalidate()
	assert.Equal(t, ModeStandard, r.Mode())
	after, err := r.SavedataBackupPath()
	require.NoError(t, err)
	assert.NotEqual(t, first, after)
}

func TestResolverSettingsChange(t *testing.T) {
	overridePlatform(t, t.TempDir(), t.TempDir())

	settings := &stubSettings{}
	r := NewResolver(settings)

	defaultPath, err := r.DBBackupPath()
	require.NoError(t, err)

	// A settings write alone does not move the cached path.
	custom := t.TempDir()
	settings.dbBackup = custom
	cached, err := r.DBBackupPath()
	require.NoError(t, err)
	assert.Equal(t, defaultPath, cached)

	r.Invalidate()
	fresh, err := r.DBBackupPath()
	require.NoError(t, err)
	assert.Equal(t, custom, fresh)
}

func TestResolverSettingsError(t *testing.T) {
	overridePlatform(t, t.TempDir(), t.TempDir())

	wantErr := errors.New("database closed")
	r := NewResolver(&stubSettings{err: wantErr})

	_, err := r.DBBackupPath()
	assert.ErrorIs(t, err, wantErr)

	_, err = r.SavedataBackupPath()
	assert.ErrorIs(t, err, wantErr)
}
