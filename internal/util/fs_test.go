package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileExists(t *testing.T) {
	// Create temp file for testing
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")
	os.WriteFile(existingFile, []byte("test"), 0644)

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{
			name:     "file exists",
			path:     existingFile,
			expected: true,
		},
		{
			name:     "file doesn't exist",
			path:     filepath.Join(tmpDir, "notfound.txt"),
			expected: false,
		},
		{
			name:     "path is directory",
			path:     tmpDir,
			expected: true, // FileExists returns true for both files and directories
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FileExists(tt.path)
			if result != tt.expected {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, result, tt.expected)
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		path    string
		content string
		perm    os.FileMode
		setup   func(path string)
	}{
		{
			name:    "creates parent directories",
			path:    filepath.Join(tmpDir, "n1", "etc", "olsrd", "olsrd.conf"),
			content: "LinkQualityFishEye  0\n",
			perm:    0644,
		},
		{
			name:    "executable script",
			path:    filepath.Join(tmpDir, "n1", "startsmf.sh"),
			content: "#!/bin/sh\n",
			perm:    0755,
		},
		{
			name:    "overwrites existing file",
			path:    filepath.Join(tmpDir, "existing.txt"),
			content: "new content",
			perm:    0644,
			setup: func(path string) {
				os.WriteFile(path, []byte("old content"), 0644)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(tt.path)
			}

			if err := WriteFile(tt.path, []byte(tt.content), tt.perm); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}

			content, err := os.ReadFile(tt.path)
			if err != nil {
				t.Fatalf("Failed to read written file: %v", err)
			}
			if string(content) != tt.content {
				t.Errorf("Content = %q, want %q", string(content), tt.content)
			}

			info, err := os.Stat(tt.path)
			if err != nil {
				t.Fatalf("Stat() error = %v", err)
			}
			if info.Mode().Perm() != tt.perm {
				t.Errorf("Mode = %v, want %v", info.Mode().Perm(), tt.perm)
			}

			entries, _ := os.ReadDir(filepath.Dir(tt.path))
			for _, e := range entries {
				if strings.HasPrefix(e.Name(), ".") {
					t.Errorf("temp file left behind: %s", e.Name())
				}
			}
		})
	}
}

func TestDirExists(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "file.txt")
	os.WriteFile(file, []byte("x"), 0644)

	if !DirExists(tmpDir) {
		t.Errorf("DirExists(%q) = false, want true", tmpDir)
	}
	if DirExists(file) {
		t.Errorf("DirExists(%q) = true, want false for a regular file", file)
	}
	if DirExists(filepath.Join(tmpDir, "missing")) {
		t.Error("DirExists() = true for missing path")
	}
}

func TestIsDirEmpty(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		setup       func() string
		expected    bool
		expectError bool
	}{
		{
			name: "empty directory",
			setup: func() string {
				dir := filepath.Join(tmpDir, "empty")
				os.MkdirAll(dir, 0755)
				return dir
			},
			expected:    true,
			expectError: false,
		},
		{
			name: "directory with files",
			setup: func() string {
				dir := filepath.Join(tmpDir, "withfiles")
				os.MkdirAll(dir, 0755)
				os.WriteFile(filepath.Join(dir, "file.txt"), []byte("test"), 0644)
				return dir
			},
			expected:    false,
			expectError: false,
		},
		{
			name: "directory with hidden files",
			setup: func() string {
				dir := filepath.Join(tmpDir, "withhidden")
				os.MkdirAll(dir, 0755)
				os.WriteFile(filepath.Join(dir, ".hidden"), []byte("test"), 0644)
				return dir
			},
			expected:    false,
			expectError: false,
		},
		{
			name: "directory doesn't exist",
			setup: func() string {
				return filepath.Join(tmpDir, "nonexistent")
			},
			expected:    true, // Non-existent directory is considered empty
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup()
			result, err := IsDirEmpty(dir)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				if result != tt.expected {
					t.Errorf("IsDirEmpty(%q) = %v, want %v", dir, result, tt.expected)
				}
			}
		})
	}
}

func TestMkdirAll(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		paths       []string
		expectError bool
	}{
		{
			name:        "create single directory",
			paths:       []string{filepath.Join(tmpDir, "single")},
			expectError: false,
		},
		{
			name:        "create nested directories",
			paths:       []string{filepath.Join(tmpDir, "a", "b", "c")},
			expectError: false,
		},
		{
			name:        "create multiple directories",
			paths:       []string{filepath.Join(tmpDir, "d1"), filepath.Join(tmpDir, "d2")},
			expectError: false,
		},
		{
			name:        "directory already exists",
			paths:       []string{tmpDir},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MkdirAll(tt.paths...)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				// Verify all directories exist
				for _, path := range tt.paths {
					if _, err := os.Stat(path); os.IsNotExist(err) {
						t.Errorf("Directory not created: %s", path)
					}
				}
			}
		})
	}
}
