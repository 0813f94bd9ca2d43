// Package background generates the coloured rectangles drawn underneath the
// pitch markings. Every variant emits pitch-relative rects; the figure
// assembly applies the orientation transform afterwards, so a striped
// background rotates with the pitch.
package background

import (
	"errors"
	"fmt"

	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// ErrInvalidBackground reports unusable background parameters: non-positive
// stripe or chequer counts, empty colour lists, or unparseable colours.
var ErrInvalidBackground = errors.New("invalid background")

// DefaultStripeCount is the stripe count the config layer applies when a
// striped or chequered variant does not set one.
const DefaultStripeCount = 10

// Background produces the rectangles covering the pitch area. Generate is
// pure: rect i+1 starts where rect i ends and the union of all rects is
// exactly the pitch rectangle.
type Background interface {
	Generate(dims pitch.Dimensions) []geo.Rect
}

func parseColours(colours []string) ([]geo.Colour, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("%w: colour list is empty", ErrInvalidBackground)
	}
	out := make([]geo.Colour, len(colours))
	for i, s := range colours {
		c, err := geo.ParseColour(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBackground, err)
		}
		out[i] = c
	}
	return out, nil
}

// bandEdges splits [0, dim] into n bands. Edges are computed as fractions of
// the full dimension and the final edge is pinned to dim, so the last band
// absorbs any floating point remainder.
func bandEdges(dim float64, n int) []float64 {
	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		edges[i] = dim * float64(i) / float64(n)
	}
	edges[n] = dim
	return edges
}
