package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	b := attachTestBackend(t)
	settings, err := b.Settings()
	require.NoError(t, err)

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Empty(t, got.DBBackupPath)
	assert.Empty(t, got.SaveRootPath)

	dbOverride, err := settings.DBBackupOverride()
	require.NoError(t, err)
	assert.Empty(t, dbOverride)

	saveOverride, err := settings.SaveRootOverride()
	require.NoError(t, err)
	assert.Empty(t, saveOverride)
}

func TestSettingsSetAndClear(t *testing.T) {
	b := attachTestBackend(t)
	settings, err := b.Settings()
	require.NoError(t, err)

	require.NoError(t, settings.SetDBBackupPath("/mnt/db-backups"))
	require.NoError(t, settings.SetSaveRootPath("/mnt/saves"))

	got, err := settings.Get()
	require.NoError(t, err)
	assert.Equal(t, "/mnt/db-backups", got.DBBackupPath)
	assert.Equal(t, "/mnt/saves", got.SaveRootPath)

	// A blank write clears the override back to NULL.
	require.NoError(t, settings.SetDBBackupPath(""))
	got, err = settings.Get()
	require.NoError(t, err)
	assert.Empty(t, got.DBBackupPath)
	assert.Equal(t, "/mnt/saves", got.SaveRootPath)
}

func TestSettingsWhitespaceOverrideIsAbsent(t *testing.T) {
	b := attachTestBackend(t)
	settings, err := b.Settings()
	require.NoError(t, err)

	require.NoError(t, settings.SetSaveRootPath("   "))
	override, err := settings.SaveRootOverride()
	require.NoError(t, err)
	assert.Empty(t, override)
}
