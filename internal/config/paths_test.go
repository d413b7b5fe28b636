package config

import (
	"path/filepath"
	"testing"
)

func TestNewPaths(t *testing.T) {
	baseDir := "/test/base"

	paths := NewPaths(baseDir)

	if paths.BaseDir != baseDir {
		t.Errorf("BaseDir = %v, want %v", paths.BaseDir, baseDir)
	}
}

func TestNewPaths_DefaultFromEnv(t *testing.T) {
	t.Setenv(HomeEnv, "/test/nrlgen-home")

	paths := NewPaths("")

	if paths.BaseDir != "/test/nrlgen-home" {
		t.Errorf("BaseDir = %v, want %v", paths.BaseDir, "/test/nrlgen-home")
	}
}

func TestDefaultBaseDir_Home(t *testing.T) {
	t.Setenv(HomeEnv, "")
	t.Setenv("HOME", "/test/home")

	want := filepath.Join("/test/home", ".nrlgen")
	if got := DefaultBaseDir(); got != want {
		t.Errorf("DefaultBaseDir() = %v, want %v", got, want)
	}
}

func TestPaths_Files(t *testing.T) {
	baseDir := "/test/base"
	paths := NewPaths(baseDir)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"SettingsFile", paths.SettingsFile(), filepath.Join(baseDir, "nrlgen.yaml")},
		{"OutputDir", paths.OutputDir(), filepath.Join(baseDir, "out")},
		{"NodeDir", paths.NodeDir("n1"), filepath.Join(baseDir, "out", "n1")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s() = %v, want %v", tt.name, tt.got, tt.want)
			}
		})
	}
}
