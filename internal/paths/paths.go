// Package paths resolves the canonical locations for the database,
// database backups, and save-data backups across the two deployment
// modes, and memoizes resolved paths for the resolver's lifetime.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/misaka10843/ReinaManager/pkg/types"
)

// Fixed layout names.
const (
	DataDirName      = "data"
	DBFileName       = "reina_manager.db"
	BackupSubdirName = "backups"
	ResourceDirName  = "resources"
	AppDirName       = "ReinaManager"
)

// Mode is the deployment mode decided by the portable-marker predicate.
type Mode string

const (
	// ModePortable keeps application data next to the executable's
	// resource directory.
	ModePortable Mode = "portable"
	// ModeStandard keeps application data in the platform per-user
	// application-data directory.
	ModeStandard Mode = "standard"
)

// platformDir holds platform-detection functions that can be overridden in
// tests.
var platformDir = struct {
	executable    func() (string, error)
	userConfigDir func() (string, error)
}{
	executable:    os.Executable,
	userConfigDir: os.UserConfigDir,
}

// ResourceDir returns the executable-adjacent resources directory.
func ResourceDir() (string, error) {
	exe, err := platformDir.executable()
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrDirResolution, err)
	}
	return filepath.Join(filepath.Dir(exe), ResourceDirName), nil
}

// DetectMode returns ModePortable when both the resource-adjacent data
// directory and the database file under it exist, else ModeStandard.
func DetectMode() Mode {
	resourceDir, err := ResourceDir()
	if err != nil {
		return ModeStandard
	}
	dataDir := filepath.Join(resourceDir, DataDirName)
	dbFile := filepath.Join(dataDir, DBFileName)

	if _, err := os.Stat(dataDir); err != nil {
		return ModeStandard
	}
	if _, err := os.Stat(dbFile); err != nil {
		return ModeStandard
	}
	return ModePortable
}

// BaseDataDirForMode returns the base data directory for the given mode:
// the resource directory for portable installs, the platform application
// data directory otherwise.
func BaseDataDirForMode(mode Mode) (string, error) {
	if mode == ModePortable {
		return ResourceDir()
	}
	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrDirResolution, err)
	}
	return filepath.Join(dir, AppDirName), nil
}

// SettingsSource supplies the optional user path overrides persisted in
// the settings row. Blank means no override.
type SettingsSource interface {
	DBBackupOverride() (string, error)
	SaveRootOverride() (string, error)
}

// resolvedCache memoizes the deployment mode and the resolved backup
// paths. Entries are stable until Invalidate clears all of them.
type resolvedCache struct {
	mode           Mode
	dbBackup       string
	savedataBackup string
}

// Resolver computes and caches the backup locations. The cache mutex is
// held only for map reads and writes, never across the settings query.
type Resolver struct {
	settings SettingsSource

	mu    sync.Mutex
	cache resolvedCache
}

// NewResolver returns a Resolver backed by the given settings source.
func NewResolver(settings SettingsSource) *Resolver {
	return &Resolver{settings: settings}
}

// Mode returns the deployment mode, detecting it on first use and reusing
// the cached answer afterwards regardless of later filesystem changes.
func (r *Resolver) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cache.mode == "" {
		r.cache.mode = DetectMode()
	}
	return r.cache.mode
}

// BaseDataDir returns the base data directory for the cached mode.
func (r *Resolver) BaseDataDir() (string, error) {
	return BaseDataDirForMode(r.Mode())
}

// DBPath returns the database file location under the base data dir.
func (r *Resolver) DBPath() (string, error) {
	base, err := r.BaseDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DataDirName, DBFileName), nil
}

// DBBackupPath returns the database-backup directory: the settings
// override verbatim when present, else base/data/backups. The result is
// cached until Invalidate.
func (r *Resolver) DBBackupPath() (string, error) {
	r.mu.Lock()
	if r.cache.dbBackup != "" {
		path := r.cache.dbBackup
		r.mu.Unlock()
		return path, nil
	}
	r.mu.Unlock()

	override, err := r.settings.DBBackupOverride()
	if err != nil {
		return "", fmt.Errorf("reading db backup override: %w", err)
	}

	path := override
	if path == "" {
		base, err := r.BaseDataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(base, DataDirName, BackupSubdirName)
	}

	return r.commit(&r.cache.dbBackup, path), nil
}

// SavedataBackupPath returns the save-data backup directory: the settings
// save-root override joined with the fixed backups subdirectory when
// present, else base/backups. The result is cached until Invalidate.
func (r *Resolver) SavedataBackupPath() (string, error) {
	r.mu.Lock()
	if r.cache.savedataBackup != "" {
		path := r.cache.savedataBackup
		r.mu.Unlock()
		return path, nil
	}
	r.mu.Unlock()

	override, err := r.settings.SaveRootOverride()
	if err != nil {
		return "", fmt.Errorf("reading save root override: %w", err)
	}

	var path string
	if override != "" {
		path = filepath.Join(override, BackupSubdirName)
	} else {
		base, err := r.BaseDataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(base, BackupSubdirName)
	}

	return r.commit(&r.cache.savedataBackup, path), nil
}

// commit stores path in the given cache slot unless another call already
// populated it, and returns the winning value. The first resolution wins
// so a populated entry never changes until invalidation.
func (r *Resolver) commit(slot *string, path string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if *slot == "" {
		*slot = path
	}
	return *slot
}

// Invalidate clears every cached entry, including the detected mode.
// Callers invoke it after any settings write that could affect a path.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = resolvedCache{}
}
