package compositor

import (
	"fmt"
	"image"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/grid"
)

// Metrics holds the corner annotation sizes and offsets in unscaled pixels.
type Metrics struct {
	Scale int

	RankSize   int
	RankLeft   int
	RankLeftQ  int
	RankTop    int
	SymbolSize int

	// "10" is drawn as a bar followed by a zero so it fits the corner.
	TenBarLeft   int
	TenBarTop    int
	TenBarWidth  int
	TenBarHeight int
	TenZeroLeft  int

	SymbolRight int
	SymbolTop   int
}

// DefaultMetrics returns the annotation layout for a 56x78 card drawn at scale.
func DefaultMetrics(scale int) Metrics {
	return Metrics{
		Scale:        scale,
		RankSize:     30,
		RankLeft:     6,
		RankLeftQ:    4,
		RankTop:      -2,
		SymbolSize:   36,
		TenBarLeft:   7,
		TenBarTop:    5,
		TenBarWidth:  2,
		TenBarHeight: 19,
		TenZeroLeft:  11,
		SymbolRight:  24,
		SymbolTop:    -7,
	}
}

// Annotation records the ink bounds of a drawn corner annotation.
type Annotation struct {
	Rank   image.Rectangle
	Symbol image.Rectangle
}

// AnnotateRankAndSymbol draws the rank label in the top-left corner and the
// suit symbol in the top-right corner of the slot, applying the suit's nudge.
func (c *Compositor) AnnotateRankAndSymbol(s grid.Slot, suit card.Suit, rank string, m Metrics, fonts *FontSource) (Annotation, error) {
	var a Annotation
	sc := m.Scale
	origin := s.Min()

	rankFace, err := fonts.Face(float64(m.RankSize * sc))
	if err != nil {
		return a, err
	}

	switch rank {
	case "10":
		bar := image.Rect(0, 0, m.TenBarWidth*sc+1, m.TenBarHeight*sc+1).
			Add(origin.Add(image.Pt(m.TenBarLeft*sc, m.TenBarTop*sc)))
		c.FillRect(bar, suit.Colour)
		zero := c.DrawText("0", origin.Add(image.Pt(m.TenZeroLeft*sc, m.RankTop*sc)), rankFace, suit.Colour)
		a.Rank = bar.Union(zero)
	case "Q":
		a.Rank = c.DrawText(rank, origin.Add(image.Pt(m.RankLeftQ*sc, m.RankTop*sc)), rankFace, suit.Colour)
	default:
		a.Rank = c.DrawText(rank, origin.Add(image.Pt(m.RankLeft*sc, m.RankTop*sc)), rankFace, suit.Colour)
	}

	symbolFace, err := fonts.Face(float64((m.SymbolSize + suit.SymbolSizeDelta) * sc))
	if err != nil {
		return a, fmt.Errorf("symbol face for %s: %w", suit.Name, err)
	}
	right := (m.SymbolRight + suit.Nudge.Right) * sc
	top := (m.SymbolTop + suit.Nudge.Top) * sc
	at := image.Pt(origin.X+s.Width()-right, origin.Y+top)
	a.Symbol = c.DrawText(suit.Symbol, at, symbolFace, suit.Colour)

	return a, nil
}
