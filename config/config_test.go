package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != DefaultAPIBase {
		t.Errorf("APIBase = %q, want default", cfg.APIBase)
	}
	if cfg.AuthBase != DefaultAuthBase {
		t.Errorf("AuthBase = %q, want default", cfg.AuthBase)
	}
	if cfg.ClientID == "" {
		t.Error("Expected a generated client ID")
	}
}

func TestSaveAndLoad(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.APIBase = "https://api.example.com/api"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.APIBase != "https://api.example.com/api" {
		t.Errorf("APIBase = %q, want saved value", loaded.APIBase)
	}
	if loaded.ClientID != cfg.ClientID {
		t.Errorf("ClientID changed across save/load")
	}
}

func TestLoadCorruptFileFallsBack(t *testing.T) {
	dir := isolate(t)

	cfgDir := filepath.Join(dir, AppName)
	if err := os.MkdirAll(cfgDir, 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, ConfigFileName), []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load should fall back on corrupt config, got: %v", err)
	}
	if cfg.APIBase != DefaultAPIBase {
		t.Errorf("APIBase = %q, want default", cfg.APIBase)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("RADAR_API_BASE", "https://override.example.com/api")
	t.Setenv("RADAR_DATA_DIR", "/tmp/radar-data")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.APIBase != "https://override.example.com/api" {
		t.Errorf("APIBase = %q, want env override", cfg.APIBase)
	}
	if cfg.DataDir != "/tmp/radar-data" {
		t.Errorf("DataDir = %q, want env override", cfg.DataDir)
	}
}

func TestPathsUnderDataDir(t *testing.T) {
	isolate(t)

	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()

	prefs, err := cfg.PrefsPath()
	if err != nil {
		t.Fatalf("PrefsPath failed: %v", err)
	}
	if filepath.Dir(prefs) != cfg.DataDir {
		t.Errorf("PrefsPath = %q, want under %q", prefs, cfg.DataDir)
	}

	cache, err := cfg.CachePath()
	if err != nil {
		t.Fatalf("CachePath failed: %v", err)
	}
	if filepath.Dir(cache) != cfg.DataDir {
		t.Errorf("CachePath = %q, want under %q", cache, cfg.DataDir)
	}
}
