package validator

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/config"
	"github.com/arcanaland/spritedeck/internal/deck"
	"github.com/arcanaland/spritedeck/internal/grid"
	"github.com/arcanaland/spritedeck/internal/sheetfile"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// OK reports whether no errors were found.
func (r ValidationResults) OK() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	Template string
	Paths    config.Paths
	Grid     grid.Grid
	TileSize int
	Suits    [4]card.Suit
	Results  ValidationResults
}

func NewValidator(template string, paths config.Paths, g grid.Grid, tileSize int) *Validator {
	return &Validator{
		Template: template,
		Paths:    paths,
		Grid:     g,
		TileSize: tileSize,
		Suits:    card.Suits,
		Results:  ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if v.Grid.Columns <= 0 || v.Grid.CellWidth <= 0 || v.Grid.CellHeight <= 0 {
		return v.Results, fmt.Errorf("invalid grid: %d columns of %dx%d cells",
			v.Grid.Columns, v.Grid.CellWidth, v.Grid.CellHeight)
	}

	v.validateTemplate()
	v.validateArt()
	v.validateBacks()

	return v.Results, nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// load records an error for a missing or undecodable file and returns nil.
func (v *Validator) load(path, what string) image.Image {
	img, err := sheetfile.LoadImage(path)
	var missing *sheetfile.MissingFileError
	switch {
	case errors.As(err, &missing):
		v.errorf("%s not found: %s", what, path)
		return nil
	case err != nil:
		v.errorf("%s unreadable: %v", what, err)
		return nil
	}
	return img
}

// validateTemplate checks the template covers every slot the sheet uses
func (v *Validator) validateTemplate() {
	img := v.load(v.Template, "template")
	if img == nil {
		return
	}

	b := img.Bounds()
	want := v.Grid.Bounds()
	if !v.Grid.Contains(b, card.FeatherBackIndex) {
		v.errorf("template is %dx%d, too small for slot %d (need %dx%d)",
			b.Dx(), b.Dy(), card.FeatherBackIndex, want.Dx(), want.Dy())
		return
	}
	if b.Size() != want.Size() {
		v.warnf("template is %dx%d, layout expects %dx%d", b.Dx(), b.Dy(), want.Dx(), want.Dy())
	}
}

// validateArt checks the bird art for every suit
func (v *Validator) validateArt() {
	seen := make(map[string]bool)
	for _, s := range v.Suits {
		if seen[s.Art] {
			continue
		}
		seen[s.Art] = true

		img := v.load(filepath.Join(v.Paths.Assets, s.Art), s.Name+" art")
		if img == nil {
			continue
		}
		v.checkTransparency(s.Art, img)

		size := img.Bounds().Size()
		if size.X > v.Grid.CellWidth || size.Y > v.Grid.CellHeight {
			v.warnf("%s is %dx%d, larger than the %dx%d card", s.Art, size.X, size.Y,
				v.Grid.CellWidth, v.Grid.CellHeight)
		}
	}
}

// validateBacks checks the feather tile and the alternate back
func (v *Validator) validateBacks() {
	if img := v.load(filepath.Join(v.Paths.Assets, deck.FeatherAsset), "feather tile"); img != nil {
		v.checkTransparency(deck.FeatherAsset, img)
		if size := img.Bounds().Size(); size.X != v.TileSize || size.Y != v.TileSize {
			v.warnf("%s is %dx%d, tiles are laid out %dpx apart", deck.FeatherAsset,
				size.X, size.Y, v.TileSize)
		}
	}

	if img := v.load(filepath.Join(v.Paths.Assets, deck.AlternateAsset), "alternate back"); img != nil {
		size := img.Bounds().Size()
		if size.X != v.Grid.CellWidth || size.Y != v.Grid.CellHeight {
			v.warnf("%s is %dx%d and will be resized to %dx%d", deck.AlternateAsset,
				size.X, size.Y, v.Grid.CellWidth, v.Grid.CellHeight)
		}
	}
}

func (v *Validator) checkTransparency(name string, img image.Image) {
	if !hasTransparency(img) {
		v.warnf("%s has no transparent pixels and will cover the card as a rectangle", name)
	}
}

func hasTransparency(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a < 0xffff {
				return true
			}
		}
	}
	return false
}
