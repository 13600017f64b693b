package grid

import (
	"errors"
	"fmt"
	"image"
)

// ErrNegativeIndex is returned when a slot is requested for an index below zero.
var ErrNegativeIndex = errors.New("card index must not be negative")

// Grid describes a sprite-sheet of equally sized cells laid out row-major.
// The spacing is applied before the first cell on each axis as well as
// between cells.
type Grid struct {
	CellWidth  int
	CellHeight int
	Spacing    int
	Columns    int
	Rows       int
}

// Slot is the pixel rectangle of one card on the sheet.
type Slot struct {
	Index int
	Rect  image.Rectangle
}

// Min returns the top-left corner of the slot.
func (s Slot) Min() image.Point {
	return s.Rect.Min
}

// Width returns the slot width in pixels.
func (s Slot) Width() int {
	return s.Rect.Dx()
}

// Height returns the slot height in pixels.
func (s Slot) Height() int {
	return s.Rect.Dy()
}

// Center returns the slot center, rounded down on both axes.
func (s Slot) Center() image.Point {
	return image.Pt(s.Rect.Min.X+s.Rect.Dx()/2, s.Rect.Min.Y+s.Rect.Dy()/2)
}

// SlotFor returns the slot for a linear card index. There is no upper bound:
// slots past Capacity lie outside Bounds and drawing into them is clipped.
func (g Grid) SlotFor(index int) (Slot, error) {
	if index < 0 {
		return Slot{}, fmt.Errorf("slot %d: %w", index, ErrNegativeIndex)
	}
	if g.Columns <= 0 {
		return Slot{}, fmt.Errorf("grid has %d columns", g.Columns)
	}

	row := index / g.Columns
	col := index % g.Columns

	x := g.Spacing + col*(g.CellWidth+g.Spacing)
	y := g.Spacing + row*(g.CellHeight+g.Spacing)

	return Slot{
		Index: index,
		Rect:  image.Rect(x, y, x+g.CellWidth, y+g.CellHeight),
	}, nil
}

// Capacity returns the number of cells the grid holds.
func (g Grid) Capacity() int {
	return g.Columns * g.Rows
}

// Bounds returns the canvas rectangle needed to hold every cell, including
// the trailing spacing on the right and bottom edges.
func (g Grid) Bounds() image.Rectangle {
	w := g.Spacing + g.Columns*(g.CellWidth+g.Spacing)
	h := g.Spacing + g.Rows*(g.CellHeight+g.Spacing)
	return image.Rect(0, 0, w, h)
}

// Contains reports whether the slot for index lies entirely within b.
func (g Grid) Contains(b image.Rectangle, index int) bool {
	s, err := g.SlotFor(index)
	if err != nil {
		return false
	}
	return s.Rect.In(b)
}
