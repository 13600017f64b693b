package deck

import (
	"image"
	"image/color"

	"github.com/arcanaland/spritedeck/internal/compositor"
	"github.com/arcanaland/spritedeck/internal/config"
)

// Blank card geometry in unscaled pixels.
const (
	blankInset  = 2
	blankRadius = 7
)

var (
	blankBorder = color.RGBA{0, 0, 0, 255}
	blankFill   = color.RGBA{255, 250, 240, 255}
)

// Blank draws the blank template for p: a transparent sheet with one
// rounded, bordered card per slot. The side, top and bottom borders are
// p.Edge, p.Top and p.Base pixels thick, times the scale.
func Blank(p Params, l config.Layout) (*image.RGBA, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := p.Grid(l)
	canvas := image.NewRGBA(g.Bounds())
	c := compositor.New(canvas, g)

	sc := p.Scale
	radius := blankRadius * sc
	for i := 0; i < g.Capacity(); i++ {
		s, err := c.SlotFor(i)
		if err != nil {
			return nil, err
		}
		outer := s.Rect.Inset(blankInset * sc)
		c.FillRoundedRect(outer, radius, blankBorder)

		inner := image.Rect(
			outer.Min.X+p.Edge*sc,
			outer.Min.Y+p.Top*sc,
			outer.Max.X-p.Edge*sc,
			outer.Max.Y-p.Base*sc,
		)
		c.FillRoundedRect(inner, max(radius-p.Edge*sc, 0), blankFill)
	}
	return canvas, nil
}
