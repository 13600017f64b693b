package compositor

import (
	"image"

	"github.com/disintegration/imaging"
)

// Tiling places a tile on a Down x Across grid starting at Origin. The
// predicates are pure functions of the cell; nil means "never" or zero.
type Tiling struct {
	Origin   image.Point
	Across   int
	Down     int
	TileSize int

	Skip   func(row, col int) bool
	Offset func(row, col int) int
	Flip   func(row, col int) bool
}

// TileDecoration pastes tile into every cell of t that is not skipped and
// returns the number of tiles placed.
func (c *Compositor) TileDecoration(tile image.Image, t Tiling) int {
	src := toNRGBA(tile)
	var flipped *image.NRGBA

	placed := 0
	for row := 0; row < t.Down; row++ {
		for col := 0; col < t.Across; col++ {
			if t.Skip != nil && t.Skip(row, col) {
				continue
			}
			at := image.Pt(t.Origin.X+col*t.TileSize, t.Origin.Y+row*t.TileSize)
			if t.Offset != nil {
				at.Y += t.Offset(row, col)
			}

			img := src
			if t.Flip != nil && t.Flip(row, col) {
				if flipped == nil {
					flipped = imaging.FlipH(src)
				}
				img = flipped
			}
			c.Paste(img, at)
			placed++
		}
	}
	return placed
}

// FeatherFan is the feather card-back layout: six columns of nine tiles
// centered on center. The inner column of each half (1 and 4) is staggered
// down by half a tile and drops its last tile, and the right half mirrors
// the left.
func FeatherFan(center image.Point, tileSize int) Tiling {
	const across, down = 6, 9
	inner := func(col int) bool { return col == 1 || col == 4 }

	return Tiling{
		Origin:   image.Pt(center.X-across*tileSize/2, center.Y-down*tileSize/2),
		Across:   across,
		Down:     down,
		TileSize: tileSize,
		Skip: func(row, col int) bool {
			return inner(col) && row >= down-1
		},
		Offset: func(row, col int) int {
			if inner(col) {
				return tileSize / 2
			}
			return 0
		},
		Flip: func(row, col int) bool {
			return col >= across/2
		},
	}
}
