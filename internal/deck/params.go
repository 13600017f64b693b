package deck

import (
	"errors"
	"fmt"

	"github.com/arcanaland/spritedeck/internal/config"
	"github.com/arcanaland/spritedeck/internal/grid"
)

// ErrParamRange is returned when a generation parameter is out of range.
var ErrParamRange = errors.New("parameter out of range")

// Valid parameter ranges.
const (
	MinBorder = 0
	MaxBorder = 3
	MinScale  = 1
	MaxScale  = 2
)

// Params selects the template variant and output scale of a run. Edge, Top
// and Base are the border thicknesses of the blank card in unscaled pixels.
type Params struct {
	Edge  int
	Top   int
	Base  int
	Scale int
}

// DefaultParams returns the parameters offered at the prompt.
func DefaultParams() Params {
	return Params{Edge: 1, Top: 1, Base: 1, Scale: 2}
}

// ParamsFromConfig returns the configured defaults.
func ParamsFromConfig(d config.Defaults) Params {
	return Params{Edge: d.Edge, Top: d.Top, Base: d.Base, Scale: d.Scale}
}

// Validate reports the first parameter outside its range.
func (p Params) Validate() error {
	checks := []struct {
		name     string
		value    int
		min, max int
	}{
		{"edge", p.Edge, MinBorder, MaxBorder},
		{"top", p.Top, MinBorder, MaxBorder},
		{"base", p.Base, MinBorder, MaxBorder},
		{"scale", p.Scale, MinScale, MaxScale},
	}
	for _, c := range checks {
		if c.value < c.min || c.value > c.max {
			return fmt.Errorf("%w: %s must be %d-%d, got %d", ErrParamRange, c.name, c.min, c.max, c.value)
		}
	}
	return nil
}

// TemplateName returns the file name of the blank template for p.
func (p Params) TemplateName() string {
	return fmt.Sprintf("cards_blank_56x78_corner-7_edge-%d-top-%d-base-%d_scale-%d.png",
		p.Edge, p.Top, p.Base, p.Scale)
}

// OutputName returns the file name of the generated sheet for p.
func (p Params) OutputName() string {
	return fmt.Sprintf("cards_edge-%d-top-%d-base-%d_scale-%d.png", p.Edge, p.Top, p.Base, p.Scale)
}

// Grid returns the sheet layout scaled by p.Scale.
func (p Params) Grid(l config.Layout) grid.Grid {
	return grid.Grid{
		CellWidth:  l.CardWidth * p.Scale,
		CellHeight: l.CardHeight * p.Scale,
		Spacing:    l.Spacing * p.Scale,
		Columns:    l.Columns,
		Rows:       l.Rows,
	}
}

func (p Params) String() string {
	return fmt.Sprintf("edge=%d, top=%d, base=%d, scale=%d", p.Edge, p.Top, p.Base, p.Scale)
}
