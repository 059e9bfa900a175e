// Package config resolves runtime settings from defaults, a TOML file and
// MYTODO_* environment variables. CLI flags are applied last by the caller.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const appDirName = "mytodo"

type Config struct {
	DBPath    string `toml:"db_path"`
	LogFile   string `toml:"log_file"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	DarkMode  bool   `toml:"dark_mode"`
}

func Default() Config {
	dir := DataDir()
	return Config{
		DBPath:    filepath.Join(dir, "mytodo.db"),
		LogFile:   filepath.Join(dir, "mytodo.log"),
		LogLevel:  "info",
		LogFormat: "text",
		DarkMode:  false,
	}
}

// Load layers the file at path (a missing file is fine) and the
// environment over the defaults.
func Load(path string) (Config, error) {
	cfg, err := LoadFile(Default(), path)
	if err != nil {
		return Config{}, err
	}
	return FromEnv(cfg), nil
}

func LoadFile(base Config, path string) (Config, error) {
	cfg := base
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return base, nil
		}
		return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
	}
	return cfg, nil
}

func FromEnv(base Config) Config {
	cfg := base
	if v, ok := getEnvString("MYTODO_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := os.LookupEnv("MYTODO_LOG_FILE"); ok {
		cfg.LogFile = strings.TrimSpace(v)
	}
	if v, ok := getEnvString("MYTODO_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := getEnvString("MYTODO_LOG_FORMAT"); ok {
		cfg.LogFormat = v
	}
	if v, ok := getEnvBool("MYTODO_DARK_MODE"); ok {
		cfg.DarkMode = v
	}
	return cfg
}

// DataDir is where the database and log live by default.
func DataDir() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); xdg != "" {
		return filepath.Join(xdg, appDirName)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", appDirName)
	}
	return "."
}

func ConfigPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return filepath.Join(xdg, appDirName, "config.toml")
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, appDirName, "config.toml")
	}
	return "config.toml"
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
