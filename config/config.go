// ABOUTME: Client configuration stored as JSON under the XDG data directory
// ABOUTME: Handles API base URLs, environment overrides, and per-install client ID
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

const (
	// AppName is the directory name for all locally persisted state.
	AppName = "radar"

	// ConfigFileName is where we store local config.
	ConfigFileName = "config.json"

	// DefaultAPIBase matches the development backend the original client
	// shipped against. Override with RADAR_API_BASE or the config file.
	DefaultAPIBase = "http://127.0.0.1:8000/api"

	// DefaultAuthBase hosts the token endpoint, mounted outside /api.
	DefaultAuthBase = "http://127.0.0.1:8000"
)

// Config holds client connection settings and local paths.
type Config struct {
	// APIBase is the REST API root (".../api").
	APIBase string `json:"api_base,omitempty"`

	// AuthBase is the root hosting /auth/token/.
	AuthBase string `json:"auth_base,omitempty"`

	// DataDir overrides where the preference store and cache DB live.
	DataDir string `json:"data_dir,omitempty"`

	// ClientID identifies this install in request headers.
	ClientID string `json:"client_id,omitempty"`
}

// DefaultConfig returns a new config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		APIBase:  DefaultAPIBase,
		AuthBase: DefaultAuthBase,
		ClientID: uuid.NewString(),
	}
}

// Dir returns the data directory, creating it if needed.
func (c *Config) Dir() (string, error) {
	dir := c.DataDir
	if dir == "" {
		dir = filepath.Join(xdg.DataHome, AppName)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// PrefsPath returns the badger directory for the preference store.
func (c *Config) PrefsPath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prefs"), nil
}

// CachePath returns the sqlite database path for favorites and searches.
func (c *Config) CachePath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "radar.db"), nil
}

func configPath() (string, error) {
	dataDir := filepath.Join(xdg.DataHome, AppName)
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, ConfigFileName), nil
}

// Load reads config from disk, or returns defaults if not found.
// Environment variables override file values:
// - RADAR_API_BASE
// - RADAR_AUTH_BASE
// - RADAR_DATA_DIR.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		// Can't determine config path, use defaults
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, nil //nolint:nilerr // Intentionally returning defaults on path error
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// Invalid config, use defaults
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, nil //nolint:nilerr // Intentionally returning defaults on parse error
	}

	// Apply defaults for missing fields
	if cfg.APIBase == "" {
		cfg.APIBase = DefaultAPIBase
	}
	if cfg.AuthBase == "" {
		cfg.AuthBase = DefaultAuthBase
	}
	if cfg.ClientID == "" {
		cfg.ClientID = uuid.NewString()
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if base := os.Getenv("RADAR_API_BASE"); base != "" {
		cfg.APIBase = base
	}
	if base := os.Getenv("RADAR_AUTH_BASE"); base != "" {
		cfg.AuthBase = base
	}
	if dir := os.Getenv("RADAR_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
}

// Save persists the config to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
