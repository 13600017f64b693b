// Package deck composes playing-card sprite-sheets: card faces, the feather
// back and the alternate back, on top of a blank template.
package deck

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nfnt/resize"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/compositor"
	"github.com/arcanaland/spritedeck/internal/config"
	"github.com/arcanaland/spritedeck/internal/grid"
	"github.com/arcanaland/spritedeck/internal/sheetfile"
)

// Asset file names looked up in the assets directory.
const (
	FeatherAsset   = "feather.png"
	AlternateAsset = "card-back-alternate.png"
)

// Face styles.
const (
	StyleArt         = "art"
	StylePlaceholder = "placeholder"
)

// Placeholder geometry in unscaled pixels.
const (
	placeholderMargin = 5
	placeholderHeader = 32
	placeholderRadius = 9
	placeholderLetter = 36
	placeholderDrop   = 4
)

// artDrop moves bird art below the slot center, clear of the corner labels.
const artDrop = 12

// Builder runs one sheet generation.
type Builder struct {
	Paths  config.Paths
	Layout config.Layout
	Params Params
	Suits  [4]card.Suit
	Style  string
	Fonts  *compositor.FontSource
	Logger *log.Logger

	// Now stamps backups.
	Now func() time.Time

	assets map[string]image.Image
}

// NewBuilder prepares a builder from the configuration. Suit colour overrides
// and the configured font are applied here.
func NewBuilder(cfg *config.Config, p Params, logger *log.Logger) (*Builder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	colours, err := cfg.SuitColours()
	if err != nil {
		return nil, err
	}
	fonts, err := compositor.LoadFonts(cfg.Paths.Font)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Builder{
		Paths:  cfg.Paths,
		Layout: cfg.Layout,
		Params: p,
		Suits:  card.WithColours(colours),
		Style:  cfg.Layout.Style,
		Fonts:  fonts,
		Logger: logger,
		Now:    time.Now,
		assets: make(map[string]image.Image),
	}, nil
}

// Close releases the builder's font faces.
func (b *Builder) Close() error {
	return b.Fonts.Close()
}

// Grid returns the scaled sheet layout.
func (b *Builder) Grid() grid.Grid {
	return b.Params.Grid(b.Layout)
}

// TemplatePath returns the blank template for the builder's parameters.
func (b *Builder) TemplatePath() string {
	return filepath.Join(b.Paths.Templates, b.Params.TemplateName())
}

// OutputPath returns where the generated sheet is written.
func (b *Builder) OutputPath() string {
	return filepath.Join(b.Paths.Output, b.Params.OutputName())
}

// AssetPath returns the path of a named asset.
func (b *Builder) AssetPath(name string) string {
	return filepath.Join(b.Paths.Assets, name)
}

func (b *Builder) asset(name string) (image.Image, error) {
	if img, ok := b.assets[name]; ok {
		return img, nil
	}
	img, err := sheetfile.LoadImage(b.AssetPath(name))
	if err != nil {
		return nil, err
	}
	if b.assets == nil {
		b.assets = make(map[string]image.Image)
	}
	b.assets[name] = img
	return img, nil
}

// DrawFaces draws the 52 faces in suit order and returns how many were drawn.
func (b *Builder) DrawFaces(c *compositor.Compositor) (int, error) {
	scale := b.Params.Scale
	metrics := compositor.DefaultMetrics(scale)

	count := 0
	for _, face := range card.Faces(b.Suits) {
		s, err := c.SlotFor(face.Index)
		if err != nil {
			return count, err
		}

		switch b.Style {
		case StylePlaceholder:
			if err := b.drawPlaceholder(c, s, face.Suit); err != nil {
				return count, err
			}
		default:
			art, err := b.asset(face.Suit.Art)
			if err != nil {
				return count, err
			}
			c.OverlayCentered(art, s.Center(), artDrop*scale)
		}

		if _, err := c.AnnotateRankAndSymbol(s, face.Suit, face.Rank, metrics, b.Fonts); err != nil {
			return count, fmt.Errorf("error annotating %s: %w", face.Code(), err)
		}
		b.Logger.Debug("drew face", "card", face.Code(), "index", face.Index)
		count++
	}
	return count, nil
}

// drawPlaceholder draws a coloured panel with the suit letter in white.
func (b *Builder) drawPlaceholder(c *compositor.Compositor, s grid.Slot, suit card.Suit) error {
	scale := b.Params.Scale
	r := c.DrawPlaceholder(s, suit.Colour,
		placeholderMargin*scale, placeholderHeader*scale, placeholderRadius*scale)

	face, err := b.Fonts.Face(float64(placeholderLetter * scale))
	if err != nil {
		return err
	}
	ink := compositor.TextBounds(suit.Letter, image.Point{}, face)
	mid := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	at := image.Pt(
		mid.X-ink.Min.X-ink.Dx()/2,
		mid.Y-ink.Min.Y-ink.Dy()/2+placeholderDrop*scale,
	)
	c.DrawText(suit.Letter, at, face, color.White)
	return nil
}

// AddFeatherBack tiles the feather onto the feather back slot and returns the
// number of tiles placed.
func (b *Builder) AddFeatherBack(c *compositor.Compositor) (int, error) {
	tile, err := b.asset(FeatherAsset)
	if err != nil {
		return 0, err
	}
	s, err := c.SlotFor(card.FeatherBackIndex)
	if err != nil {
		return 0, err
	}
	return c.TileDecoration(tile, compositor.FeatherFan(s.Center(), b.Layout.TileSize)), nil
}

// AddAlternateBack pastes the alternate back onto its slot, resizing it to
// the cell when the sizes differ.
func (b *Builder) AddAlternateBack(c *compositor.Compositor) error {
	img, err := b.asset(AlternateAsset)
	if err != nil {
		return err
	}
	s, err := c.SlotFor(card.AlternateBackIndex)
	if err != nil {
		return err
	}

	if size := img.Bounds().Size(); size != s.Rect.Size() {
		b.Logger.Debug("resizing alternate back", "from", size, "to", s.Rect.Size())
		img = resize.Resize(uint(s.Width()), uint(s.Height()), img, resize.Lanczos3)
	}
	c.Paste(img, s.Min())
	return nil
}

// Compose draws faces and both backs onto canvas.
func (b *Builder) Compose(canvas *image.RGBA) error {
	c := compositor.New(canvas, b.Grid())

	b.Logger.Info("Drawing card faces...", "style", b.Style)
	n, err := b.DrawFaces(c)
	if err != nil {
		return err
	}
	b.Logger.Info("Created card faces", "count", n)

	b.Logger.Info("Adding feather back design", "frame", card.FeatherBackIndex)
	if _, err := b.AddFeatherBack(c); err != nil {
		return err
	}

	b.Logger.Info("Adding alternate back design", "frame", card.AlternateBackIndex)
	return b.AddAlternateBack(c)
}

// Result describes a written sheet.
type Result struct {
	Output string
	Backup string // empty when nothing was backed up
}

// Generate loads the template, composes the sheet and writes it to output.
// When backup is set an existing output is first copied to the archive.
func (b *Builder) Generate(template, output string, backup bool) (Result, error) {
	res := Result{Output: output}

	b.Logger.Info("Loading blank template", "path", template, "params", b.Params.String())
	canvas, err := sheetfile.LoadCanvas(template)
	if err != nil {
		return res, err
	}
	if want := b.Grid().Bounds(); !canvas.Bounds().Size().Eq(want.Size()) {
		b.Logger.Warn("template size does not match layout",
			"template", canvas.Bounds().Size(), "layout", want.Size())
	}

	if err := b.Compose(canvas); err != nil {
		return res, err
	}

	if err := b.write(output, canvas, backup, &res); err != nil {
		return res, err
	}
	return res, nil
}

// AddBacks draws the selected backs onto an existing sheet and writes the
// result to output.
func (b *Builder) AddBacks(input, output string, feather, alternate bool) (Result, error) {
	res := Result{Output: output}

	canvas, err := sheetfile.LoadCanvas(input)
	if err != nil {
		return res, err
	}
	c := compositor.New(canvas, b.Grid())

	if feather {
		b.Logger.Info("Adding feather back design", "frame", card.FeatherBackIndex)
		if _, err := b.AddFeatherBack(c); err != nil {
			return res, err
		}
	}
	if alternate {
		b.Logger.Info("Adding alternate back design", "frame", card.AlternateBackIndex)
		if err := b.AddAlternateBack(c); err != nil {
			return res, err
		}
	}

	if err := b.write(output, canvas, true, &res); err != nil {
		return res, err
	}
	return res, nil
}

func (b *Builder) write(output string, canvas image.Image, backup bool, res *Result) error {
	if backup {
		path, err := sheetfile.Backup(output, b.Paths.Archive, b.Now())
		if err != nil {
			return fmt.Errorf("error backing up %s: %w", output, err)
		}
		if path != "" {
			b.Logger.Info("Backed up existing file", "path", path)
		}
		res.Backup = path
	}
	return sheetfile.Save(output, canvas)
}
