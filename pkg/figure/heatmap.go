package figure

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"

	"github.com/minimav/pitchplot/pkg/heatmap"
)

// defaultPaletteColours is the number of bands in the default heat palette.
const defaultPaletteColours = 12

// HeatmapOption adjusts how a grid is coloured and laid out.
type HeatmapOption func(*heatmapSettings)

type heatmapSettings struct {
	palette      palette.Palette
	min          float64
	max          float64
	rangeSet     bool
	underflow    color.Color
	overflow     color.Color
	nan          color.Color
	reversedRows bool
}

// WithPalette selects the colour palette for heatmap cells.
func WithPalette(p palette.Palette) HeatmapOption {
	return func(s *heatmapSettings) { s.palette = p }
}

// WithRange fixes the values mapped to the two ends of the palette. Without
// it the grid's own value range is used.
func WithRange(min, max float64) HeatmapOption {
	return func(s *heatmapSettings) {
		s.min, s.max = min, max
		s.rangeSet = true
	}
}

// WithUnderflow colours cells whose value falls below the palette range.
func WithUnderflow(c color.Color) HeatmapOption {
	return func(s *heatmapSettings) { s.underflow = c }
}

// WithOverflow colours cells whose value falls above the palette range.
func WithOverflow(c color.Color) HeatmapOption {
	return func(s *heatmapSettings) { s.overflow = c }
}

// WithNaNColour colours cells that hold no data.
func WithNaNColour(c color.Color) HeatmapOption {
	return func(s *heatmapSettings) { s.nan = c }
}

// WithReversedRows lays grid row 0 along the top edge instead of the bottom.
func WithReversedRows() HeatmapOption {
	return func(s *heatmapSettings) { s.reversedRows = true }
}

// AddHeatmap overlays gridded data on the figure. The figure's axis ranges
// are partitioned into equal cells, as many columns as the grid has along x
// and as many rows along y, with grid row 0 on the bottom edge unless
// reversed. The heatmap lands on top of previously added shapes.
func (f *Figure) AddHeatmap(g *heatmap.Grid, opts ...HeatmapOption) error {
	if g == nil {
		return fmt.Errorf("%w: no grid", heatmap.ErrInvalidGrid)
	}

	s := heatmapSettings{palette: palette.Heat(defaultPaletteColours, 1)}
	for _, opt := range opts {
		opt(&s)
	}

	cells := &cellGrid{
		grid:     g,
		dx:       f.Plot.X.Max / float64(g.Cols()),
		dy:       f.Plot.Y.Max / float64(g.Rows()),
		reversed: s.reversedRows,
	}
	h := plotter.NewHeatMap(cells, s.palette)

	min, max := g.ValueRange()
	if s.rangeSet {
		min, max = s.min, s.max
	}
	if math.IsNaN(min) || math.IsNaN(max) {
		min, max = 0, 1
	}
	if min == max {
		// A degenerate range cannot be mapped onto the palette; widen it so a
		// constant grid renders in the lowest band.
		max = min + 1
	}
	h.Min, h.Max = min, max
	if s.underflow != nil {
		h.Underflow = s.underflow
	}
	if s.overflow != nil {
		h.Overflow = s.overflow
	}
	if s.nan != nil {
		h.NaN = s.nan
	}

	f.Plot.Add(h)
	return nil
}

// cellGrid lays a heatmap.Grid over the figure's axis ranges by reporting
// cell-centre coordinates in the layout the plotter's grid interface
// expects.
type cellGrid struct {
	grid     *heatmap.Grid
	dx       float64
	dy       float64
	reversed bool
}

// Dims returns the number of columns and rows.
func (c *cellGrid) Dims() (cols, rows int) {
	return c.grid.Cols(), c.grid.Rows()
}

// Z returns the value of the cell in the given column and row.
func (c *cellGrid) Z(col, row int) float64 {
	if c.reversed {
		row = c.grid.Rows() - 1 - row
	}
	return c.grid.Value(row, col)
}

// X returns the centre x coordinate of the cells in the given column.
func (c *cellGrid) X(col int) float64 {
	return c.dx/2 + float64(col)*c.dx
}

// Y returns the centre y coordinate of the cells in the given row.
func (c *cellGrid) Y(row int) float64 {
	return c.dy/2 + float64(row)*c.dy
}
