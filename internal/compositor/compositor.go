// Package compositor draws onto a sprite-sheet canvas: shapes, text and
// alpha-masked bitmaps positioned by card slot.
package compositor

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	xdraw "golang.org/x/image/draw"

	"github.com/arcanaland/spritedeck/internal/grid"
)

// Compositor mutates one canvas in place. Later draws occlude earlier ones.
type Compositor struct {
	canvas *image.RGBA
	dc     *gg.Context
	grid   grid.Grid
}

// New wraps canvas. The canvas must be anchored at the origin.
func New(canvas *image.RGBA, g grid.Grid) *Compositor {
	return &Compositor{
		canvas: canvas,
		dc:     gg.NewContextForRGBA(canvas),
		grid:   g,
	}
}

// Canvas returns the underlying image.
func (c *Compositor) Canvas() *image.RGBA {
	return c.canvas
}

// Grid returns the layout the compositor positions slots with.
func (c *Compositor) Grid() grid.Grid {
	return c.grid
}

// SlotFor returns the slot for a card index.
func (c *Compositor) SlotFor(index int) (grid.Slot, error) {
	return c.grid.SlotFor(index)
}

// DrawPlaceholder fills a rounded rectangle inset from the slot by margin on
// the sides and bottom and by header from the top. It returns the filled area.
func (c *Compositor) DrawPlaceholder(s grid.Slot, col color.Color, margin, header, radius int) image.Rectangle {
	r := image.Rect(
		s.Rect.Min.X+margin,
		s.Rect.Min.Y+header,
		s.Rect.Max.X-margin,
		s.Rect.Max.Y-margin,
	)
	if r.Empty() {
		return r
	}
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()), float64(radius))
	c.dc.Fill()
	return r
}

// FillRect fills r with a solid colour.
func (c *Compositor) FillRect(r image.Rectangle, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(float64(r.Min.X), float64(r.Min.Y), float64(r.Dx()), float64(r.Dy()))
	c.dc.Fill()
}

// FillRoundedRect fills a rounded rectangle with a solid colour.
func (c *Compositor) FillRoundedRect(r image.Rectangle, radius int, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRoundedRectangle(float64(r.Min.X), float64(r.Min.Y),
		float64(r.Dx()), float64(r.Dy()), float64(radius))
	c.dc.Fill()
}

// Paste composites asset with its top-left corner at at. The asset's alpha
// channel is the paste mask: transparent pixels leave the canvas untouched.
func (c *Compositor) Paste(asset image.Image, at image.Point) {
	src := toNRGBA(asset)
	r := image.Rectangle{Min: at, Max: at.Add(src.Bounds().Size())}
	xdraw.Draw(c.canvas, r, src, src.Bounds().Min, xdraw.Over)
}

// OverlayCentered pastes asset so that its center lands on center shifted
// down by dy. It returns the top-left corner the asset was pasted at.
func (c *Compositor) OverlayCentered(asset image.Image, center image.Point, dy int) image.Point {
	size := asset.Bounds().Size()
	at := image.Pt(center.X-size.X/2, center.Y-size.Y/2+dy)
	c.Paste(asset, at)
	return at
}

// DrawText draws s with its line box's top-left corner at at, the way the
// card art was laid out: y is the ascender line, not the baseline. It returns
// the ink bounds of the drawn glyphs.
func (c *Compositor) DrawText(s string, at image.Point, face font.Face, col color.Color) image.Rectangle {
	baseline := at.Y + face.Metrics().Ascent.Round()
	c.dc.SetFontFace(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, float64(at.X), float64(baseline))
	return TextBounds(s, at, face)
}

// TextBounds returns the ink bounds DrawText would produce for s at at.
func TextBounds(s string, at image.Point, face font.Face) image.Rectangle {
	b, _ := font.BoundString(face, s)
	baseline := at.Y + face.Metrics().Ascent.Round()
	return image.Rect(
		at.X+b.Min.X.Floor(),
		baseline+b.Min.Y.Floor(),
		at.X+b.Max.X.Ceil(),
		baseline+b.Max.Y.Ceil(),
	)
}

// TextSize returns the width and height of the ink bounds of s.
func TextSize(s string, face font.Face) (int, int) {
	r := TextBounds(s, image.Point{}, face)
	return r.Dx(), r.Dy()
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}
