package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "nested", "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "data", "state.json")

	// Parent directory is created on demand
	if err := WriteFileAtomic(target, []byte("first")); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	content, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(content) != "first" {
		t.Errorf("Expected content 'first', got %q", content)
	}

	// Overwrite replaces content in full
	if err := WriteFileAtomic(target, []byte("second")); err != nil {
		t.Fatalf("Failed to overwrite file: %v", err)
	}
	content, err = os.ReadFile(target)
	if err != nil {
		t.Fatalf("Failed to read back file: %v", err)
	}
	if string(content) != "second" {
		t.Errorf("Expected content 'second', got %q", content)
	}

	// No temp files are left behind
	entries, err := os.ReadDir(filepath.Dir(target))
	if err != nil {
		t.Fatalf("Failed to list directory: %v", err)
	}
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".tmp-") {
			t.Errorf("Temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 {
		t.Errorf("Expected exactly one file in directory, got %d", len(entries))
	}
}

func TestRevealInFileManager_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()
	nonExistentFile := filepath.Join(tempDir, "nonexistent.json")

	err := RevealInFileManager(nonExistentFile)
	if err == nil {
		t.Error("Expected error for non-existent file, got nil")
	}

	if !strings.Contains(err.Error(), "file does not exist:") {
		t.Errorf("Error message should contain 'file does not exist:', got: %v", err)
	}
}
