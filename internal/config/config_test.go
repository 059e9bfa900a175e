package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsUseDataDir(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg := Default()
	if cfg.DBPath != filepath.Join(dataHome, "mytodo", "mytodo.db") {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.LogFile != filepath.Join(dataHome, "mytodo", "mytodo.log") {
		t.Fatalf("unexpected log path: %q", cfg.LogFile)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" || cfg.DarkMode {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigPathHonoursXDG(t *testing.T) {
	cfgHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", cfgHome)
	if got := ConfigPath(); got != filepath.Join(cfgHome, "mytodo", "config.toml") {
		t.Fatalf("unexpected config path: %q", got)
	}
}

func TestLoadFileMissingKeepsBase(t *testing.T) {
	base := Config{DBPath: "base.db", LogLevel: "info"}
	cfg, err := LoadFile(base, filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file should not fail: %v", err)
	}
	if cfg != base {
		t.Fatalf("expected base config, got %+v", cfg)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "db_path = \"/tmp/custom.db\"\nlog_level = \"debug\"\ndark_mode = true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadFile(Config{LogFormat: "text"}, path)
	if err != nil {
		t.Fatalf("load file: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.LogLevel != "debug" || !cfg.DarkMode {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.LogFormat != "text" {
		t.Fatalf("unset keys should keep base values: %+v", cfg)
	}
}

func TestLoadFileRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("db_path = = nope"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(Default(), path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("MYTODO_DB_PATH", "state/custom.db")
	t.Setenv("MYTODO_LOG_FILE", "")
	t.Setenv("MYTODO_LOG_LEVEL", "warn")
	t.Setenv("MYTODO_LOG_FORMAT", "json")
	t.Setenv("MYTODO_DARK_MODE", "yes")

	cfg := FromEnv(Config{DBPath: "x.db", LogFile: "x.log"})
	if cfg.DBPath != "state/custom.db" {
		t.Fatalf("unexpected db path: %+v", cfg)
	}
	if cfg.LogFile != "" {
		t.Fatalf("explicitly empty log file should disable logging: %+v", cfg)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "json" || !cfg.DarkMode {
		t.Fatalf("unexpected env overrides: %+v", cfg)
	}
}

func TestLoadLayersFileThenEnv(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("log_level = \"debug\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MYTODO_LOG_LEVEL", "error")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Fatalf("env should win over file, got %q", cfg.LogLevel)
	}
}
