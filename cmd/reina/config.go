// Config loading for the reina CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/misaka10843/ReinaManager/internal/paths"
	"github.com/misaka10843/ReinaManager/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	cfgKeyDataDir = "data_dir"

	// EnvConfigDir overrides the configuration directory.
	EnvConfigDir = "REINA_CONFIG_DIR"
)

// defaultConfigYAML is written to config.yaml on first run.
const defaultConfigYAML = `# Reina CLI configuration

# Base data directory (optional; overridable by --data-dir flag).
# Leave unset to resolve per install mode: the resources directory for
# portable installs, the platform application-data directory otherwise.
# data_dir:
`

// resolveConfigDir returns the configuration directory following the
// precedence chain: flag > REINA_CONFIG_DIR env > platform default.
func resolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrDirResolution, err)
	}
	return filepath.Join(dir, paths.AppDirName), nil
}

// loadConfig reads config.yaml from configDir using Viper, creating the
// directory and a default config.yaml on first run. A missing config.yaml
// is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := ensureDefaultConfigFile(configDir); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// ensureDefaultConfigFile creates a default config.yaml if the file does
// not exist in the config directory.
func ensureDefaultConfigFile(configDir string) error {
	path := filepath.Join(configDir, configFileExt)

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(defaultConfigYAML), 0o644)
}
