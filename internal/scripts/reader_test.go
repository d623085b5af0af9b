package scripts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestReadAsTextPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.txt")
	if err := os.WriteFile(path, []byte("line one\r\nline two"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := ReadAsText(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "line one\nline two" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestReadAsTextStripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.md")
	if err := os.WriteFile(path, []byte("\xef\xbb\xbf# Hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := ReadAsText(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "# Hello" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestReadAsTextUTF16(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talk.txt")
	// "Hi" in UTF-16LE with BOM.
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 'H', 0, 'i', 0}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	text, err := ReadAsText(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if text != "Hi" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestReadAsTextErrors(t *testing.T) {
	dir := t.TempDir()
	var readErr *ReadError

	_, err := ReadAsText(filepath.Join(dir, "talk.pdf"))
	if !errors.As(err, &readErr) || !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected unsupported type ReadError, got %v", err)
	}

	_, err = ReadAsText(filepath.Join(dir, "missing.txt"))
	if !errors.As(err, &readErr) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist ReadError, got %v", err)
	}
}
