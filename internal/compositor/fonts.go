package compositor

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontSource hands out faces of one typeface at pixel sizes, caching each size.
type FontSource struct {
	Name  string
	font  *opentype.Font
	faces map[float64]font.Face
}

// DefaultFonts returns the embedded Go Regular typeface, which covers the
// four suit symbols.
func DefaultFonts() (*FontSource, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("error parsing embedded font: %w", err)
	}
	return &FontSource{Name: "Go Regular", font: f, faces: make(map[float64]font.Face)}, nil
}

// EmbeddedFonts returns the Go typefaces bundled with the binary, for
// comparing suit symbol rendering when no font files are given.
func EmbeddedFonts() ([]*FontSource, error) {
	embedded := []struct {
		name string
		ttf  []byte
	}{
		{"Go Regular", goregular.TTF},
		{"Go Bold", gobold.TTF},
		{"Go Mono", gomono.TTF},
	}

	sources := make([]*FontSource, 0, len(embedded))
	for _, e := range embedded {
		f, err := opentype.Parse(e.ttf)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", e.name, err)
		}
		sources = append(sources, &FontSource{Name: e.name, font: f, faces: make(map[float64]font.Face)})
	}
	return sources, nil
}

// LoadFonts parses a TrueType or OpenType font file. An empty path selects
// the embedded default.
func LoadFonts(path string) (*FontSource, error) {
	if path == "" {
		return DefaultFonts()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading font: %w", err)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("error parsing font %s: %w", path, err)
	}
	return &FontSource{Name: filepath.Base(path), font: f, faces: make(map[float64]font.Face)}, nil
}

// Face returns a face whose em size is px pixels.
func (fs *FontSource) Face(px float64) (font.Face, error) {
	if face, ok := fs.faces[px]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(fs.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating %.0fpx face: %w", px, err)
	}
	fs.faces[px] = face
	return face, nil
}

// Close releases every cached face.
func (fs *FontSource) Close() error {
	for px, face := range fs.faces {
		face.Close()
		delete(fs.faces, px)
	}
	return nil
}
