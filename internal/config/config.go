// Package config resolves passview settings from an optional YAML file and
// the environment variables pass(1) itself honors.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultStorePath       = "~/.password-store"
	DefaultClipTime        = 45
	DefaultResyncSeconds   = 5
	DefaultPasswordLength  = 16
	DefaultPassphraseWords = 5
)

// Config holds all passview settings.
//
// Example YAML (~/.config/passview/config.yaml):
//
// store_path: ~/.password-store
// clip_time: 45
// resync_seconds: 5
// password_length: 16
// passphrase_words: 5
// words_file: /usr/share/dict/words
type Config struct {
	// StorePath is the root of the password store. PASSWORD_STORE_DIR
	// overrides it.
	StorePath string `yaml:"store_path,omitempty"`

	// ClipTime is how long (seconds) pass keeps a copied secret in the
	// clipboard. PASSWORD_STORE_CLIP_TIME overrides it. Display-only: the
	// actual clearing is done by pass.
	ClipTime int `yaml:"clip_time,omitempty"`

	// ResyncSeconds is the interval between background reconciliations of
	// the table against the store.
	ResyncSeconds int `yaml:"resync_seconds,omitempty"`

	// Generator defaults for the new-entry dialog.
	PasswordLength  int    `yaml:"password_length,omitempty"`
	PassphraseWords int    `yaml:"passphrase_words,omitempty"`
	WordsFile       string `yaml:"words_file,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StorePath:       DefaultStorePath,
		ClipTime:        DefaultClipTime,
		ResyncSeconds:   DefaultResyncSeconds,
		PasswordLength:  DefaultPasswordLength,
		PassphraseWords: DefaultPassphraseWords,
		WordsFile:       "/usr/share/dict/words",
	}
}

// Load reads the config file if present, then applies environment overrides.
// A missing file is not an error; a malformed one is.
func Load() (Config, error) {
	cfg := Default()

	path := configPath()
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.StorePath = ExpandHome(cfg.StorePath)
	cfg.WordsFile = ExpandHome(cfg.WordsFile)
	return cfg, nil
}

func (c *Config) applyEnv() {
	if env := os.Getenv("PASSWORD_STORE_DIR"); env != "" {
		c.StorePath = env
	}
	if env := os.Getenv("PASSWORD_STORE_CLIP_TIME"); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			c.ClipTime = n
		}
	}
}

// ResyncInterval returns the background reconciliation period.
func (c Config) ResyncInterval() time.Duration {
	if c.ResyncSeconds < 1 {
		return DefaultResyncSeconds * time.Second
	}
	return time.Duration(c.ResyncSeconds) * time.Second
}

func configPath() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, "passview", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "passview", "config.yaml")
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
