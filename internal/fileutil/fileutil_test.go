package fileutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.png")
	dst := filepath.Join(dir, "dst.png")

	content := []byte("image bytes")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := MoveFile(src, dst); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected source to be gone, stat err = %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestMoveFile_MissingSource(t *testing.T) {
	dir := t.TempDir()
	err := MoveFile(filepath.Join(dir, "nope.png"), filepath.Join(dir, "dst.png"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")

	content := []byte("verified copy content")
	if err := os.WriteFile(src, content, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := copyFileVerified(src, dst); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Fatalf("content mismatch: got %q, want %q", got, content)
	}
}

func TestCreationTime_FallsBackToModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shot.png")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	modTime := time.Date(2024, time.January, 5, 10, 30, 0, 0, time.Local)
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	got := CreationTime(path, info)
	// A freshly created file's birth time, where available, cannot be older
	// than the test start; after Chtimes the modification time is well in
	// the past, so either source must yield a sensible timestamp.
	if got.IsZero() {
		t.Fatal("expected a non-zero creation time")
	}
	if got.After(time.Now().Add(time.Minute)) {
		t.Fatalf("creation time in the future: %v", got)
	}
}

func TestCheckReadable(t *testing.T) {
	dir := t.TempDir()
	if err := CheckReadable(dir); err != nil {
		t.Fatalf("expected temp dir to be readable: %v", err)
	}
}
