package preview

import (
	"crypto/md5"
	"fmt"
	"image"
	"os"
	"path/filepath"
)

// Cache keeps rendered previews as files named after a hash of their key.
// Keys should change whenever the rendered output would.
type Cache struct {
	Dir string
}

// Key identifies the preview of one frame of a sheet file at a width. The
// file's modification time is part of the key, so regenerating the sheet
// invalidates its previews.
func Key(path string, frame image.Rectangle, width int) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%d:%v:%d", abs, info.ModTime().UnixNano(), frame, width), nil
}

func (c Cache) path(key string) string {
	return filepath.Join(c.Dir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
}

// Load returns the cached preview for key.
func (c Cache) Load(key string) (string, bool) {
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Store saves a rendered preview under key.
func (c Cache) Store(key, art string) error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create preview cache directory: %w", err)
	}
	if err := os.WriteFile(c.path(key), []byte(art), 0644); err != nil {
		return fmt.Errorf("failed to write preview to cache: %w", err)
	}
	return nil
}
