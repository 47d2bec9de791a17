package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Settings holds tool preferences loaded from ~/.config/envsh/config.toml
// and environment variables. Environment variables always take precedence.
type Settings struct {
	// Shell is the preferred shell binary for sessions and export output,
	// used when the --shell flag is absent. Empty means fall back to $SHELL.
	Shell string `toml:"shell"`
}

// UserDir returns the envsh configuration directory. Explicit config
// references resolve against it and `list` catalogs it.
func UserDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "envsh"), nil
}

// RequireUserDir is UserDir plus an existence check; a missing directory is
// a pre-existing setup failure reported before any catalog or explicit
// lookup runs.
func RequireUserDir() (string, error) {
	dir, err := UserDir()
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(dir); err != nil {
		return "", ErrConfigDirNotFound
	}
	return dir, nil
}

func settingsPath() (string, error) {
	dir, err := UserDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// LoadSettings reads config.toml if present, then overlays environment
// variables. A missing file is fine.
func LoadSettings() (*Settings, error) {
	s := &Settings{}

	p, err := settingsPath()
	if err != nil {
		return nil, err
	}
	if b, err := os.ReadFile(p); err == nil {
		if err := toml.Unmarshal(b, s); err != nil {
			return nil, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	if v := os.Getenv("ENVSH_SHELL"); v != "" {
		s.Shell = v
	}
	return s, nil
}

// SaveSettings writes the settings to config.toml. File mode 0600.
func SaveSettings(s *Settings) error {
	p, err := settingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	buf, err := toml.Marshal(*s)
	if err != nil {
		return err
	}
	return os.WriteFile(p, buf, 0o600)
}
