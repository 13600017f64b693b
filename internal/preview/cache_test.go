package preview

import (
	"image"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCache(t *testing.T) {
	c := Cache{Dir: filepath.Join(t.TempDir(), "ansi_cache")}

	if _, ok := c.Load("missing"); ok {
		t.Fatal("Load() hit on an empty cache")
	}
	if err := c.Store("k", "\x1b[0m▀\n"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}
	got, ok := c.Load("k")
	if !ok || got != "\x1b[0m▀\n" {
		t.Errorf("Load() = %q, %v", got, ok)
	}
	if _, ok := c.Load("other"); ok {
		t.Error("Load() hit for a different key")
	}
}

func TestKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.png")
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}

	first := image.Rect(2, 2, 114, 158)
	second := image.Rect(116, 2, 228, 158)

	a, err := Key(path, first, 40)
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	if b, _ := Key(path, second, 40); b == a {
		t.Error("different frames share a key")
	}
	if b, _ := Key(path, first, 20); b == a {
		t.Error("different widths share a key")
	}

	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if b, _ := Key(path, first, 40); b == a {
		t.Error("rewritten sheet kept its key")
	}

	if _, err := Key(filepath.Join(t.TempDir(), "absent.png"), first, 40); err == nil {
		t.Error("Key() of a missing file succeeded")
	}
}
