package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg := New("/custom/dir")

	if cfg.Dir != "/custom/dir" {
		t.Errorf("expected Dir /custom/dir, got %q", cfg.Dir)
	}
	if want := filepath.Join(home, TasksFile); cfg.TasksPath != want {
		t.Errorf("expected TasksPath %q, got %q", want, cfg.TasksPath)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected LogLevel warn, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected LogFormat text, got %q", cfg.LogFormat)
	}
	if cfg.Quiet {
		t.Error("expected Quiet to be false")
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")

	if got := DefaultConfigDir(); got != filepath.Join("/xdg", AppName) {
		t.Errorf("expected /xdg/todo, got %q", got)
	}
}

func TestDefaultConfigDir_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)

	if got, want := DefaultConfigDir(), filepath.Join(home, ".config", AppName); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, TasksFile); cfg.TasksPath != want {
		t.Errorf("expected default TasksPath %q, got %q", want, cfg.TasksPath)
	}
}

func TestLoad_Overrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	writeConfig(t, dir, `
tasks_file = "~/notes/tasks.json"
log_level = "debug"
log_format = "json"
quiet = true
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join(home, "notes", "tasks.json"); cfg.TasksPath != want {
		t.Errorf("expected TasksPath %q, got %q", want, cfg.TasksPath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel debug, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("expected LogFormat json, got %q", cfg.LogFormat)
	}
	if !cfg.Quiet {
		t.Error("expected Quiet to be true")
	}
	if cfg.Dir != dir {
		t.Errorf("expected Dir %q, got %q", dir, cfg.Dir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	writeConfig(t, dir, `log_level = "info"`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel info, got %q", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" {
		t.Errorf("expected default LogFormat text, got %q", cfg.LogFormat)
	}
	if want := filepath.Join(home, TasksFile); cfg.TasksPath != want {
		t.Errorf("expected default TasksPath %q, got %q", want, cfg.TasksPath)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := t.TempDir()
	writeConfig(t, dir, `log_level = `)

	cfg, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed config")
	}
	if cfg == nil {
		t.Fatal("expected usable defaults alongside the error")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("expected default LogLevel warn, got %q", cfg.LogLevel)
	}
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in   string
		want string
	}{
		{"~/tasks.json", filepath.Join(home, "tasks.json")},
		{"~", home},
		{"/abs/tasks.json", "/abs/tasks.json"},
		{"rel/tasks.json", "rel/tasks.json"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
