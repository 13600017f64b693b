package deck

import (
	"image"
	"image/color"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/compositor"
	"github.com/arcanaland/spritedeck/internal/grid"
)

// Symbol sheet layout.
const (
	symbolSheetWidth     = 400
	symbolSheetMinHeight = 300
	symbolRowHeight      = 40
	symbolTop            = 20
	symbolSize           = 24
	symbolLabelSize      = 12
	symbolStep           = 25
)

var symbolLabelColour = color.RGBA{100, 100, 100, 255}

// SymbolSheet renders one row per typeface: its name, the four suit symbols
// in black, then each symbol in its suit colour. labels sets the typeface of
// the names.
func SymbolSheet(fonts []*compositor.FontSource, labels *compositor.FontSource, suits [4]card.Suit) (*image.RGBA, error) {
	height := max(symbolSheetMinHeight, symbolTop*2+len(fonts)*symbolRowHeight)
	canvas := image.NewRGBA(image.Rect(0, 0, symbolSheetWidth, height))
	c := compositor.New(canvas, grid.Grid{})
	c.FillRect(canvas.Bounds(), color.White)

	labelFace, err := labels.Face(symbolLabelSize)
	if err != nil {
		return nil, err
	}

	var all string
	for _, s := range suits {
		all += s.Symbol
	}

	y := symbolTop
	for _, fs := range fonts {
		face, err := fs.Face(symbolSize)
		if err != nil {
			return nil, err
		}

		c.DrawText(fs.Name, image.Pt(10, y), labelFace, symbolLabelColour)
		c.DrawText(all, image.Pt(180, y-5), face, color.Black)
		for i, s := range suits {
			c.DrawText(s.Symbol, image.Pt(270+i*symbolStep, y-5), face, s.Colour)
		}
		y += symbolRowHeight
	}
	return canvas, nil
}
