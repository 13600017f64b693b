package compositor

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/grid"
)

var background = color.RGBA{255, 250, 240, 255}

func sheetGrid() grid.Grid {
	return grid.Grid{CellWidth: 112, CellHeight: 156, Spacing: 2, Columns: 3, Rows: 19}
}

func newCanvas(g grid.Grid) *image.RGBA {
	canvas := image.NewRGBA(g.Bounds())
	for i := 0; i < len(canvas.Pix); i += 4 {
		canvas.Pix[i+0] = background.R
		canvas.Pix[i+1] = background.G
		canvas.Pix[i+2] = background.B
		canvas.Pix[i+3] = background.A
	}
	return canvas
}

// stampAsset is opaque red with a transparent hole at (1, 2).
func stampAsset() *image.NRGBA {
	asset := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			asset.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
		}
	}
	asset.SetNRGBA(1, 2, color.NRGBA{0, 0, 255, 0})
	return asset
}

func TestOverlayCenteredRespectsAlpha(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)

	center := image.Pt(10, 10)
	at := c.OverlayCentered(stampAsset(), center, 3)
	if at != image.Pt(8, 11) {
		t.Fatalf("OverlayCentered pasted at %v, expected (8, 11)", at)
	}

	canvas := c.Canvas()
	if got := canvas.RGBAAt(at.X+1, at.Y+2); got != background {
		t.Errorf("transparent asset pixel changed canvas to %v", got)
	}
	if got := canvas.RGBAAt(at.X, at.Y); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("opaque asset pixel = %v, expected red", got)
	}
	if got := canvas.RGBAAt(at.X+4, at.Y); got != background {
		t.Errorf("pixel outside asset changed to %v", got)
	}
}

func TestPasteConvertsToAlphaFormat(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(0, 0, color.Gray{Y: 40})
	c.Paste(gray, image.Pt(5, 5))

	if got := c.Canvas().RGBAAt(5, 5); got != (color.RGBA{40, 40, 40, 255}) {
		t.Errorf("pasted gray pixel = %v", got)
	}
}

func TestPastePastCanvasClips(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)

	s, err := c.SlotFor(g.Capacity() + 3)
	if err != nil {
		t.Fatal(err)
	}
	// Must not panic; everything lands outside the canvas.
	c.Paste(stampAsset(), s.Min())
	c.DrawPlaceholder(s, color.Black, 2, 2, 2)
}

func TestDrawPlaceholder(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)
	s, _ := c.SlotFor(4)
	col := color.RGBA{90, 90, 90, 255}

	r := c.DrawPlaceholder(s, col, 10, 64, 18)
	want := image.Rect(s.Rect.Min.X+10, s.Rect.Min.Y+64, s.Rect.Max.X-10, s.Rect.Max.Y-10)
	if r != want {
		t.Fatalf("DrawPlaceholder area = %v, expected %v", r, want)
	}

	canvas := c.Canvas()
	mid := image.Pt((r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2)
	if got := canvas.RGBAAt(mid.X, mid.Y); got != col {
		t.Errorf("placeholder center = %v, expected %v", got, col)
	}
	if got := canvas.RGBAAt(s.Rect.Min.X+2, s.Rect.Min.Y+2); got != background {
		t.Errorf("header area changed to %v", got)
	}
	// Rounded corner leaves the exact corner pixel unfilled.
	if got := canvas.RGBAAt(r.Min.X, r.Min.Y); got == col {
		t.Errorf("corner pixel fully filled, expected rounding")
	}
}

func TestTileDecorationDeterministic(t *testing.T) {
	g := sheetGrid()
	tile := stampAsset()
	s, _ := g.SlotFor(card.FeatherBackIndex)

	run := func() []byte {
		c := New(newCanvas(g), g)
		c.TileDecoration(tile, FeatherFan(s.Center(), 4))
		return c.Canvas().Pix
	}

	first, second := run(), run()
	if !bytes.Equal(first, second) {
		t.Fatal("tiling the same input twice produced different images")
	}
}

func TestFeatherFanPredicates(t *testing.T) {
	fan := FeatherFan(image.Pt(286, 2924), 16)

	if fan.Origin != image.Pt(286-48, 2924-72) {
		t.Errorf("Origin = %v", fan.Origin)
	}

	tests := []struct {
		name         string
		row, col     int
		skip, flip   bool
		expectOffset int
	}{
		{name: "outer left", row: 0, col: 0},
		{name: "inner left", row: 3, col: 1, expectOffset: 8},
		{name: "inner left last row", row: 8, col: 1, skip: true, expectOffset: 8},
		{name: "centre left last row", row: 8, col: 2},
		{name: "centre right", row: 0, col: 3, flip: true},
		{name: "inner right last row", row: 8, col: 4, skip: true, flip: true, expectOffset: 8},
		{name: "outer right", row: 8, col: 5, flip: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := fan.Skip(tc.row, tc.col); got != tc.skip {
				t.Errorf("Skip = %v, expected %v", got, tc.skip)
			}
			if got := fan.Flip(tc.row, tc.col); got != tc.flip {
				t.Errorf("Flip = %v, expected %v", got, tc.flip)
			}
			if got := fan.Offset(tc.row, tc.col); got != tc.expectOffset {
				t.Errorf("Offset = %d, expected %d", got, tc.expectOffset)
			}
		})
	}
}

func TestTileDecorationFlipsAndCounts(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)

	// Left column opaque green, rest transparent.
	tile := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	green := color.NRGBA{0, 200, 0, 255}
	for y := 0; y < 4; y++ {
		tile.SetNRGBA(0, y, green)
	}

	fan := FeatherFan(image.Pt(100, 100), 4)
	placed := c.TileDecoration(tile, fan)
	if placed != 6*9-2 {
		t.Fatalf("placed %d tiles, expected 52", placed)
	}

	canvas := c.Canvas()
	// Column 0 is not flipped: its green stripe is on the left.
	x0, y0 := fan.Origin.X, fan.Origin.Y
	if got := canvas.RGBAAt(x0, y0); got != (color.RGBA{0, 200, 0, 255}) {
		t.Errorf("unflipped tile left pixel = %v", got)
	}
	// Column 5 is flipped: its green stripe is on the right.
	x5 := fan.Origin.X + 5*4
	if got := canvas.RGBAAt(x5+3, y0); got != (color.RGBA{0, 200, 0, 255}) {
		t.Errorf("flipped tile right pixel = %v", got)
	}
	if got := canvas.RGBAAt(x5, y0); got != background {
		t.Errorf("flipped tile left pixel = %v, expected background", got)
	}
	// Column 1 is staggered by half a tile, so its first row starts 2px lower.
	x1 := fan.Origin.X + 4
	if got := canvas.RGBAAt(x1, y0); got != background {
		t.Errorf("staggered column top pixel = %v, expected background", got)
	}
	if got := canvas.RGBAAt(x1, y0+2); got != (color.RGBA{0, 200, 0, 255}) {
		t.Errorf("staggered column first tile pixel = %v", got)
	}
}

func TestAnnotateAceOfClubs(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)
	fonts, err := DefaultFonts()
	if err != nil {
		t.Fatal(err)
	}
	defer fonts.Close()

	clubs := card.Suits[0]
	if clubs.Colour != (color.RGBA{90, 90, 90, 255}) {
		t.Fatalf("clubs colour = %v", clubs.Colour)
	}

	s, _ := c.SlotFor(0)
	placeholder := c.DrawPlaceholder(s, clubs.Colour, 10, 64, 18)
	a, err := c.AnnotateRankAndSymbol(s, clubs, "A", DefaultMetrics(2), fonts)
	if err != nil {
		t.Fatalf("AnnotateRankAndSymbol returned error: %v", err)
	}

	if a.Rank.Empty() {
		t.Fatal("rank bounds are empty")
	}
	if !a.Rank.In(s.Rect) {
		t.Errorf("rank bounds %v not inside slot %v", a.Rank, s.Rect)
	}
	if a.Rank.Overlaps(placeholder) {
		t.Errorf("rank bounds %v overlap placeholder %v", a.Rank, placeholder)
	}
	if a.Symbol.Empty() {
		t.Error("symbol bounds are empty")
	}
	if a.Symbol.Min.X <= a.Rank.Max.X {
		t.Errorf("symbol %v not right of rank %v", a.Symbol, a.Rank)
	}

	// Some rank ink must actually be on the canvas in the suit colour range.
	inked := false
	canvas := c.Canvas()
	for y := a.Rank.Min.Y; y < a.Rank.Max.Y && !inked; y++ {
		for x := a.Rank.Min.X; x < a.Rank.Max.X; x++ {
			if canvas.RGBAAt(x, y) != background {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("no rank ink drawn inside its bounds")
	}
}

func TestAnnotateTen(t *testing.T) {
	g := sheetGrid()
	c := New(newCanvas(g), g)
	fonts, _ := DefaultFonts()
	defer fonts.Close()

	s, _ := c.SlotFor(9)
	hearts := card.Suits[2]
	a, err := c.AnnotateRankAndSymbol(s, hearts, "10", DefaultMetrics(2), fonts)
	if err != nil {
		t.Fatal(err)
	}

	bar := image.Pt(s.Rect.Min.X+14, s.Rect.Min.Y+10)
	if got := c.Canvas().RGBAAt(bar.X+1, bar.Y+1); got != hearts.Colour {
		t.Errorf("ten bar pixel = %v, expected %v", got, hearts.Colour)
	}
	if !a.Rank.In(s.Rect) {
		t.Errorf("ten bounds %v not inside slot %v", a.Rank, s.Rect)
	}
}

func TestFontSourceCachesFaces(t *testing.T) {
	fonts, err := LoadFonts("")
	if err != nil {
		t.Fatal(err)
	}
	defer fonts.Close()

	a, _ := fonts.Face(60)
	b, _ := fonts.Face(60)
	if a != b {
		t.Error("Face(60) returned different faces")
	}
	if _, err := LoadFonts("/nonexistent/font.ttf"); err == nil {
		t.Error("expected error for missing font file")
	}
}
