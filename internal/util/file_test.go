package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/holiday.mp4", "holiday"},
		{"frame_0001.png", "frame_0001"},
		{"archive.tar.gz", "archive.tar"},
		{"noextension", "noextension"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := GetFileStem(tt.path); got != tt.want {
				t.Errorf("GetFileStem(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestEnsureDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Creates nested directories
	nested := filepath.Join(tmpDir, "a", "b", "c")
	if err := EnsureDirectory(nested); err != nil {
		t.Fatalf("EnsureDirectory failed: %v", err)
	}
	if !DirectoryExists(nested) {
		t.Error("expected directory to exist")
	}

	// Existing directory is not an error
	if err := EnsureDirectory(nested); err != nil {
		t.Errorf("EnsureDirectory on existing dir failed: %v", err)
	}

	// Path occupied by a regular file fails
	file := filepath.Join(tmpDir, "occupied")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDirectory(file); err == nil {
		t.Error("expected error when path collides with a file")
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "present")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("expected FileExists to be true for a regular file")
	}
	if FileExists(tmpDir) {
		t.Error("expected FileExists to be false for a directory")
	}
	if FileExists(filepath.Join(tmpDir, "absent")) {
		t.Error("expected FileExists to be false for a missing path")
	}
}

func TestGetFileSize(t *testing.T) {
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "sized")
	if err := os.WriteFile(file, make([]byte, 42), 0644); err != nil {
		t.Fatal(err)
	}

	size, err := GetFileSize(file)
	if err != nil {
		t.Fatalf("GetFileSize failed: %v", err)
	}
	if size != 42 {
		t.Errorf("GetFileSize = %d, want 42", size)
	}

	if _, err := GetFileSize(filepath.Join(tmpDir, "absent")); err == nil {
		t.Error("expected error for missing file")
	}
}
