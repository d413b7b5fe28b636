package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSettingsManager_Path(t *testing.T) {
	baseDir := t.TempDir()
	sm := NewSettingsManager(NewPaths(baseDir))

	want := filepath.Join(baseDir, "nrlgen.yaml")
	if got := sm.Path(); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}

func TestSettingsManager_LoadOrDefault_MissingFile(t *testing.T) {
	sm := NewSettingsManager(NewPaths(t.TempDir()))

	got, err := sm.LoadOrDefault()
	if err != nil {
		t.Fatalf("LoadOrDefault() error: %v", err)
	}

	if got.Barrier.Attempts != 10 {
		t.Errorf("Barrier.Attempts = %d, want 10", got.Barrier.Attempts)
	}
	if got.Barrier.Interval != 100*time.Millisecond {
		t.Errorf("Barrier.Interval = %s, want 100ms", got.Barrier.Interval)
	}
	if got.PrefixLength != 24 {
		t.Errorf("PrefixLength = %d, want 24", got.PrefixLength)
	}
	if got.Log.Level != "info" || got.Log.Format != "console" {
		t.Errorf("Log = %+v", got.Log)
	}
}

func TestSettingsManager_SaveAndLoad(t *testing.T) {
	sm := NewSettingsManager(NewPaths(t.TempDir()))

	want := DefaultSettings()
	want.Barrier.Attempts = 30
	want.Barrier.Interval = 250 * time.Millisecond
	want.PrefixLength = 16
	want.Log.Format = "json"

	if err := sm.Save(want); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if *got != *want {
		t.Errorf("Load() = %+v, want %+v", got, want)
	}

	data, err := os.ReadFile(sm.Path())
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "interval: 250ms") {
		t.Errorf("interval should be stored as a duration string:\n%s", data)
	}
}

func TestSettingsManager_LoadPartialFileKeepsDefaults(t *testing.T) {
	baseDir := t.TempDir()
	sm := NewSettingsManager(NewPaths(baseDir))

	content := "barrier:\n  attempts: 3\nlog:\n  level: DEBUG\n"
	if err := os.WriteFile(sm.Path(), []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	got, err := sm.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if got.Barrier.Attempts != 3 {
		t.Errorf("Barrier.Attempts = %d, want 3", got.Barrier.Attempts)
	}
	if got.Barrier.Interval != 100*time.Millisecond {
		t.Errorf("Barrier.Interval = %s, want default 100ms", got.Barrier.Interval)
	}
	if got.PrefixLength != 24 {
		t.Errorf("PrefixLength = %d, want default 24", got.PrefixLength)
	}
	if got.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", got.Log.Level, "debug")
	}
}

func TestSettingsManager_LoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero attempts", "barrier:\n  attempts: 0\n"},
		{"negative interval", "barrier:\n  interval: -1s\n"},
		{"prefix too long", "prefix_length: 33\n"},
		{"unknown log format", "log:\n  format: xml\n"},
		{"malformed yaml", "barrier: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(NewPaths(t.TempDir()))
			if err := os.WriteFile(sm.Path(), []byte(tt.content), 0644); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}

			if _, err := sm.Load(); err == nil {
				t.Error("Load() expected error, got nil")
			}
			if _, err := sm.LoadOrDefault(); err == nil {
				t.Error("LoadOrDefault() should not hide a broken settings file")
			}
		})
	}
}

func TestSettingsManager_SaveRejectsInvalid(t *testing.T) {
	sm := NewSettingsManager(NewPaths(t.TempDir()))

	s := DefaultSettings()
	s.PrefixLength = 0

	if err := sm.Save(s); err == nil {
		t.Fatal("Save() expected error, got nil")
	}
	if _, err := os.Stat(sm.Path()); !os.IsNotExist(err) {
		t.Errorf("settings file should not be written, stat err = %v", err)
	}
	if err := sm.Save(nil); err == nil {
		t.Error("Save(nil) expected error, got nil")
	}
}

func TestSettings_GetSet(t *testing.T) {
	tests := []struct {
		key   string
		value string
		want  string
	}{
		{"barrier.attempts", "20", "20"},
		{"barrier.interval", "0.5s", "500ms"},
		{"prefix-length", "16", "16"},
		{"log.level", "WARN", "warn"},
		{"log.format", "json", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			s := DefaultSettings()
			if err := s.Set(tt.key, tt.value); err != nil {
				t.Fatalf("Set(%q, %q) error: %v", tt.key, tt.value, err)
			}
			got, err := s.Get(tt.key)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestSettings_SetInvalidLeavesUnchanged(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"barrier.attempts", "0"},
		{"barrier.attempts", "many"},
		{"barrier.interval", "soon"},
		{"prefix-length", "40"},
		{"log.level", "verbose"},
		{"nope", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			s := DefaultSettings()
			if err := s.Set(tt.key, tt.value); err == nil {
				t.Fatalf("Set(%q, %q) expected error", tt.key, tt.value)
			}
			if *s != *DefaultSettings() {
				t.Errorf("settings changed after failed Set: %+v", s)
			}
		})
	}
}

func TestSettings_GetUnknownKey(t *testing.T) {
	_, err := DefaultSettings().Get("db-url")
	if err == nil {
		t.Fatal("Get() expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "barrier.attempts") {
		t.Errorf("error should list supported keys: %v", err)
	}
}
