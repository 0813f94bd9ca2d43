package background

import (
	"fmt"

	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// SingleColour fills the whole pitch with one colour.
func SingleColour(colour string) (Background, error) {
	c, err := geo.ParseColour(colour)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackground, err)
	}
	return singleColour{colour: c}, nil
}

type singleColour struct {
	colour geo.Colour
}

func (b singleColour) Generate(d pitch.Dimensions) []geo.Rect {
	return []geo.Rect{
		{X0: 0, Y0: 0, X1: d.Length, Y1: d.Width, Fill: b.colour},
	}
}

// AttackVsDefence colours each half of the pitch for a team. The attacking
// team's half runs from the origin to the halfway line, which is the left
// side of a horizontal pitch and the bottom of a vertical one.
func AttackVsDefence(attack, defence string) (Background, error) {
	a, err := geo.ParseColour(attack)
	if err != nil {
		return nil, fmt.Errorf("%w: attack: %v", ErrInvalidBackground, err)
	}
	d, err := geo.ParseColour(defence)
	if err != nil {
		return nil, fmt.Errorf("%w: defence: %v", ErrInvalidBackground, err)
	}
	return attackVsDefence{attack: a, defence: d}, nil
}

type attackVsDefence struct {
	attack  geo.Colour
	defence geo.Colour
}

func (b attackVsDefence) Generate(d pitch.Dimensions) []geo.Rect {
	return []geo.Rect{
		{X0: 0, Y0: 0, X1: d.MidLength(), Y1: d.Width, Fill: b.attack},
		{X0: d.MidLength(), Y0: 0, X1: d.Length, Y1: d.Width, Fill: b.defence},
	}
}

// VerticalStripes tiles the pitch with n equal bands along its length,
// cycling through the supplied colours in order.
func VerticalStripes(colours []string, n int) (Background, error) {
	cs, err := stripeParams(colours, n)
	if err != nil {
		return nil, err
	}
	return stripes{colours: cs, count: n, alongLength: true}, nil
}

// HorizontalStripes tiles the pitch with n equal bands along its width,
// cycling through the supplied colours in order.
func HorizontalStripes(colours []string, n int) (Background, error) {
	cs, err := stripeParams(colours, n)
	if err != nil {
		return nil, err
	}
	return stripes{colours: cs, count: n, alongLength: false}, nil
}

func stripeParams(colours []string, n int) ([]geo.Colour, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: stripe count must be positive, got %d", ErrInvalidBackground, n)
	}
	return parseColours(colours)
}

type stripes struct {
	colours     []geo.Colour
	count       int
	alongLength bool
}

func (b stripes) Generate(d pitch.Dimensions) []geo.Rect {
	dim := d.Width
	if b.alongLength {
		dim = d.Length
	}
	edges := bandEdges(dim, b.count)

	rects := make([]geo.Rect, b.count)
	for i := range rects {
		fill := b.colours[i%len(b.colours)]
		if b.alongLength {
			rects[i] = geo.Rect{X0: edges[i], Y0: 0, X1: edges[i+1], Y1: d.Width, Fill: fill}
		} else {
			rects[i] = geo.Rect{X0: 0, Y0: edges[i], X1: d.Length, Y1: edges[i+1], Fill: fill}
		}
	}
	return rects
}

// Chequered tiles the pitch with rows x cols cells in a checkerboard
// pattern. The colour of the cell in row r, column c is colours[(r+c) mod
// len(colours)], so with two or more colours no edge-adjacent cells share a
// colour. Rows run along the pitch width and columns along its length.
func Chequered(colours []string, rows, cols int) (Background, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("%w: row count must be positive, got %d", ErrInvalidBackground, rows)
	}
	if cols <= 0 {
		return nil, fmt.Errorf("%w: column count must be positive, got %d", ErrInvalidBackground, cols)
	}
	cs, err := parseColours(colours)
	if err != nil {
		return nil, err
	}
	return chequered{colours: cs, rows: rows, cols: cols}, nil
}

type chequered struct {
	colours []geo.Colour
	rows    int
	cols    int
}

func (b chequered) Generate(d pitch.Dimensions) []geo.Rect {
	xEdges := bandEdges(d.Length, b.cols)
	yEdges := bandEdges(d.Width, b.rows)

	rects := make([]geo.Rect, 0, b.rows*b.cols)
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			rects = append(rects, geo.Rect{
				X0:   xEdges[col],
				Y0:   yEdges[row],
				X1:   xEdges[col+1],
				Y1:   yEdges[row+1],
				Fill: b.colours[(row+col)%len(b.colours)],
			})
		}
	}
	return rects
}
