// Package config handles the XDG configuration directory, the optional
// config.toml file and the location of the tasks file.
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

const (
	// AppName is the application directory name.
	AppName = "todo"

	// ConfigFile is the optional configuration filename inside Dir.
	ConfigFile = "config.toml"

	// TasksFile is the default tasks filename inside the home directory.
	TasksFile = "tasks.json"
)

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string `toml:"-"`

	// TasksPath is the tasks file location.
	TasksPath string `toml:"tasks_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is one of text, json, logfmt.
	LogFormat string `toml:"log_format"`

	// Quiet suppresses informational output.
	Quiet bool `toml:"quiet"`
}

// New creates a Config with defaults for the given config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/todo or $HOME/.config/todo.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:       dir,
		TasksPath: DefaultTasksPath(),
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load creates a Config for configDir and applies config.toml on top of the
// defaults. A missing file is not an error. On a malformed file the returned
// Config still holds usable defaults alongside the error.
func Load(configDir string) (*Config, error) {
	cfg := New(configDir)

	path := cfg.FilePath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("stat config file: %w", err)
	}

	parsed := *cfg
	if _, err := toml.DecodeFile(path, &parsed); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	parsed.TasksPath = expandHome(parsed.TasksPath)
	if parsed.TasksPath == "" {
		parsed.TasksPath = cfg.TasksPath
	}
	return &parsed, nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultTasksPath returns $HOME/tasks.json.
func DefaultTasksPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return TasksFile
	}
	return filepath.Join(home, TasksFile)
}

// FilePath returns the path to config.toml.
func (c *Config) FilePath() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
