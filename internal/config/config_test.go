package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tasks.File != DefaultTasksFile {
		t.Errorf("expected tasks file %q, got %q", DefaultTasksFile, cfg.Tasks.File)
	}
	if cfg.Activity.CacheFile != DefaultCacheFile {
		t.Errorf("expected cache file %q, got %q", DefaultCacheFile, cfg.Activity.CacheFile)
	}
	if cfg.Activity.APIURL != DefaultAPIURL {
		t.Errorf("expected api url %q, got %q", DefaultAPIURL, cfg.Activity.APIURL)
	}
	if cfg.Activity.TokenEnv != DefaultTokenEnv {
		t.Errorf("expected token env %q, got %q", DefaultTokenEnv, cfg.Activity.TokenEnv)
	}
}

func TestLoad_ProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	content := "[tasks]\nfile = \"work/tasks.json\"\n\n[activity]\napi-url = \"https://github.example.com/api/v3\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tracklet.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tasks.File != "work/tasks.json" {
		t.Errorf("expected tasks file 'work/tasks.json', got %q", cfg.Tasks.File)
	}
	if cfg.Activity.APIURL != "https://github.example.com/api/v3" {
		t.Errorf("expected project api url, got %q", cfg.Activity.APIURL)
	}
	// Undefined keys still get defaults.
	if cfg.Activity.CacheFile != DefaultCacheFile {
		t.Errorf("expected default cache file, got %q", cfg.Activity.CacheFile)
	}
}

func TestLoad_ProjectOverridesGlobal(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	globalDir := filepath.Join(homeDir, ".config", "tracklet")
	if err := os.MkdirAll(globalDir, 0o755); err != nil {
		t.Fatalf("failed to create global config dir: %v", err)
	}
	globalContent := "[tasks]\nfile = \"global-tasks.json\"\n\n[activity]\ntoken-env = \"GH_TOKEN\"\n"
	if err := os.WriteFile(filepath.Join(globalDir, "config.toml"), []byte(globalContent), 0o644); err != nil {
		t.Fatalf("failed to write global config: %v", err)
	}

	dir := t.TempDir()
	projectContent := "[tasks]\nfile = \"project-tasks.json\"\n"
	if err := os.WriteFile(filepath.Join(dir, "tracklet.toml"), []byte(projectContent), 0o644); err != nil {
		t.Fatalf("failed to write project config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Tasks.File != "project-tasks.json" {
		t.Errorf("expected project value to win, got %q", cfg.Tasks.File)
	}
	if cfg.Activity.TokenEnv != "GH_TOKEN" {
		t.Errorf("expected global token env to apply, got %q", cfg.Activity.TokenEnv)
	}
}

func TestLoad_CorruptProjectFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "tracklet.toml"), []byte("tasks = {"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error for corrupt config file")
	}
}

func TestToken(t *testing.T) {
	t.Setenv("TRACKLET_TEST_TOKEN", "sekrit")

	cfg := &Config{}
	applyDefaults(cfg)
	cfg.Activity.TokenEnv = "TRACKLET_TEST_TOKEN"

	if got := cfg.Token(); got != "sekrit" {
		t.Errorf("expected token 'sekrit', got %q", got)
	}
}
