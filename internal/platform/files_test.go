package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Creating an existing directory is a no-op
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Expected no error on existing directory, got %v", err)
	}
}

func TestImportImage(t *testing.T) {
	dataDir := t.TempDir()

	srcDir := t.TempDir()
	srcPath := filepath.Join(srcDir, "sword.png")
	if err := os.WriteFile(srcPath, []byte("fake-png-bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write source image: %v", err)
	}

	destPath, err := ImportImage(srcPath, dataDir, "item-42")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(filepath.Base(destPath), "item-42_") {
		t.Errorf("Expected destination name prefixed with item ID, got %s", destPath)
	}
	if filepath.Dir(destPath) != ImagesDir(dataDir) {
		t.Errorf("Expected image inside %s, got %s", ImagesDir(dataDir), destPath)
	}

	data, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatalf("Expected copied file to exist, got %v", err)
	}
	if string(data) != "fake-png-bytes" {
		t.Error("Expected copied content to match source")
	}
}

func TestImportImage_MissingSource(t *testing.T) {
	dataDir := t.TempDir()

	_, err := ImportImage(filepath.Join(dataDir, "missing.png"), dataDir, "item-1")
	if err == nil {
		t.Error("Expected error for missing source image")
	}
}

func TestRemoveImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "img.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write image: %v", err)
	}

	if err := RemoveImage(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected image to be removed")
	}

	// Missing files and empty paths are fine
	if err := RemoveImage(path); err != nil {
		t.Errorf("Expected no error for already-removed image, got %v", err)
	}
	if err := RemoveImage(""); err != nil {
		t.Errorf("Expected no error for empty path, got %v", err)
	}
}

func TestDefaultDataDir(t *testing.T) {
	dir, err := DefaultDataDir()
	if err != nil {
		t.Skipf("No user config dir in this environment: %v", err)
	}

	if filepath.Base(dir) != AppDirName {
		t.Errorf("Expected data dir to end with %s, got %s", AppDirName, dir)
	}
}
