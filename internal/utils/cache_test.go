package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return path
}

func TestCache_BasicOperations(t *testing.T) {
	cache := NewCache[string, int]()
	file := writeTempFile(t, t.TempDir(), "a.go", "package a")

	if err := cache.SetFromFile("key1", 42, file); err != nil {
		t.Fatalf("SetFromFile failed: %v", err)
	}
	value, exists := cache.Get("key1")
	if !exists {
		t.Error("expected key1 to exist")
	}
	if value != 42 {
		t.Errorf("expected value 42, got %d", value)
	}

	_, exists = cache.Get("nonexistent")
	if exists {
		t.Error("expected nonexistent key to not exist")
	}

	cache.Delete("key1")
	if _, exists = cache.Get("key1"); exists {
		t.Error("expected key1 to be deleted")
	}
}

func TestCache_Clear(t *testing.T) {
	cache := NewCache[string, string]()
	dir := t.TempDir()

	cache.SetFromFile("key1", "value1", writeTempFile(t, dir, "one.yaml", "1"))
	cache.SetFromFile("key2", "value2", writeTempFile(t, dir, "two.yaml", "2"))

	if cache.Size() != 2 {
		t.Errorf("expected size 2, got %d", cache.Size())
	}

	cache.Clear()

	if cache.Size() != 0 {
		t.Errorf("expected size 0 after clear, got %d", cache.Size())
	}
}

func TestCache_FileValidation(t *testing.T) {
	cache := NewCache[string, string]()
	tmpFile := writeTempFile(t, t.TempDir(), "model.yaml", "initial content")

	if err := cache.SetFromFile("test", "initial content", tmpFile); err != nil {
		t.Fatalf("failed to set cache with file info: %v", err)
	}

	value, exists := cache.GetFresh("test", tmpFile)
	if !exists {
		t.Error("expected cached value to exist")
	}
	if value != "initial content" {
		t.Errorf("expected cached content, got %s", value)
	}

	// Modify the file so size and modtime both change
	later := time.Now().Add(time.Second)
	if err := os.WriteFile(tmpFile, []byte("modified content, longer"), 0644); err != nil {
		t.Fatalf("failed to modify temp file: %v", err)
	}
	if err := os.Chtimes(tmpFile, later, later); err != nil {
		t.Fatalf("failed to touch temp file: %v", err)
	}

	if _, exists = cache.GetFresh("test", tmpFile); exists {
		t.Error("expected cached value to be invalidated after file change")
	}
	if cache.Size() != 0 {
		t.Errorf("expected cache to be empty after invalidation, got size %d", cache.Size())
	}
}

func TestCache_FileValidationNonExistentFile(t *testing.T) {
	cache := NewCache[string, string]()

	if _, exists := cache.GetFresh("test", "/nonexistent/file.txt"); exists {
		t.Error("expected false for non-existent file")
	}
	if err := cache.SetFromFile("test", "content", "/nonexistent/file.txt"); err == nil {
		t.Error("expected error for non-existent file")
	}
}
