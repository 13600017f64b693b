// Package sheetfile reads and writes sprite-sheet PNG files.
package sheetfile

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
)

// BackupTimeLayout formats the timestamp in backup file names.
const BackupTimeLayout = "20060102_1504"

// MissingFileError reports a required input file that does not exist.
type MissingFileError struct {
	Path string
}

func (e *MissingFileError) Error() string {
	return "required image file not found: " + e.Path
}

// LoadImage decodes the PNG at path.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingFileError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return img, nil
}

// LoadCanvas decodes the PNG at path into a mutable RGBA canvas.
func LoadCanvas(path string) (*image.RGBA, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA returns img as an *image.RGBA anchored at the origin, copying when
// it is not already one.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Copy(rgba, image.Point{}, img, b, xdraw.Src, nil)
	return rgba
}

// Save encodes img as PNG at path. The image is written to a temporary file in
// the same directory and renamed into place, so path never holds a partial image.
func Save(path string, img image.Image) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".spritedeck-*.png")
	if err != nil {
		return fmt.Errorf("error creating temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return fmt.Errorf("error encoding %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// BackupName returns the archive file name for a backup taken at t.
func BackupName(t time.Time) string {
	return "cards_" + t.Format(BackupTimeLayout) + ".png"
}

// Backup copies path into archiveDir under a timestamped name. It returns the
// backup path, or "" when path does not exist and there is nothing to back up.
func Backup(path, archiveDir string, now time.Time) (string, error) {
	src, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("error creating archive directory: %w", err)
	}

	backupPath := filepath.Join(archiveDir, BackupName(now))
	dst, err := os.Create(backupPath)
	if err != nil {
		return "", fmt.Errorf("error creating backup: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("error copying backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", err
	}

	// Keep the source modification time, like a plain archive copy would.
	if info, err := os.Stat(path); err == nil {
		_ = os.Chtimes(backupPath, info.ModTime(), info.ModTime())
	}
	return backupPath, nil
}
