// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; credentials go to the OS keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"odoolink/cli/internal/xdg"

	"github.com/joho/godotenv"
)

// Defaults applied when the file or a field is missing.
const (
	DefaultLogLevel       = "info"
	DefaultProfile        = "default"
	DefaultTimeoutSeconds = 30
)

// Config holds non-sensitive CLI settings.
type Config struct {
	LogLevel       string `json:"log_level"`
	DefaultProfile string `json:"default_profile"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// Timeout returns the HTTP timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.DefaultProfile == "" {
		c.DefaultProfile = DefaultProfile
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		var c Config
		c.applyDefaults()
		return c, err
	}
	return LoadFile(p)
}

// LoadFile reads configuration from p; a missing file returns defaults. On any
// error the returned Config still carries the defaults.
func LoadFile(p string) (Config, error) {
	var c Config
	data, err := os.ReadFile(p)
	if err != nil {
		c.applyDefaults()
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		c = Config{}
		c.applyDefaults()
		return c, err
	}
	c.applyDefaults()
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	return SaveFile(p, c)
}

// SaveFile writes configuration to p with 0600 permissions.
func SaveFile(p string, c Config) error {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Keys lists the settings Set accepts.
var Keys = []string{"log_level", "default_profile", "timeout_seconds"}

var logLevels = []string{"trace", "debug", "info", "warn", "error", "disabled"}

// Set assigns value to the setting named key, validating it.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "log_level":
		level := strings.ToLower(value)
		for _, l := range logLevels {
			if level == l {
				c.LogLevel = level
				return nil
			}
		}
		return fmt.Errorf("invalid log_level %q (want one of %s)", value, strings.Join(logLevels, ", "))
	case "default_profile":
		if value == "" {
			return errors.New("default_profile must not be empty")
		}
		c.DefaultProfile = value
		return nil
	case "timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid timeout_seconds %q (want a positive integer)", value)
		}
		c.TimeoutSeconds = n
		return nil
	default:
		return fmt.Errorf("unknown setting %q (want one of %s)", key, strings.Join(Keys, ", "))
	}
}

// LoadEnv loads KEY=VALUE pairs from the given files (".env" when none) into the
// process environment without overriding variables that are already set.
// Missing files are ignored.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}
