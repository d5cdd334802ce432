package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"subgrid/internal/fileutil"
)

func TestReadTextStripsBOMAndNormalizesNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.srt")
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:02,000\rhello\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := fileutil.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	want := "1\n00:00:01,000 --> 00:00:02,000\nhello\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestReadTextNormalizesToNFC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.srt")
	// "é" as the decomposed sequence e + U+0301.
	if err := os.WriteFile(path, []byte("caf\x65\xcc\x81"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	got, err := fileutil.ReadText(path)
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	if got != "café" {
		t.Fatalf("expected NFC-composed text, got %q", got)
	}
}

func TestReadTextMissingFile(t *testing.T) {
	if _, err := fileutil.ReadText(filepath.Join(t.TempDir(), "absent.srt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := fileutil.EnsureDir(dir); err != nil {
		t.Fatalf("EnsureDir: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory at %s: %v", dir, err)
	}
}
