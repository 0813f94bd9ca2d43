package figure

import (
	"time"

	"github.com/minimav/pitchplot/pkg/background"
	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/markings"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// Diagram is the declarative content of a pitch figure, expressed in
// figure-space coordinates after the orientation transform. It is what the
// shapes command and the dev server serialise, and what tests inspect.
type Diagram struct {
	Metadata   Metadata     `json:"metadata"`
	Extents    Extents      `json:"extents"`
	Style      Style        `json:"style"`
	Background []geo.Rect   `json:"background"`
	Markings   markings.Set `json:"markings"`
}

// Metadata records what the diagram was built from.
type Metadata struct {
	Orientation pitch.Orientation `json:"orientation"`
	Dimensions  pitch.Dimensions  `json:"dimensions"`
	GeneratedAt string            `json:"generated_at"`
}

// Extents is the drawable area. Both axes start at zero; for a horizontal
// pitch XMax is the pitch length, for a vertical one the pitch width.
type Extents struct {
	XMax float64 `json:"x_max"`
	YMax float64 `json:"y_max"`
}

// Style is the line styling shared by every marking.
type Style struct {
	Colour geo.Colour `json:"colour"`
	Width  float64    `json:"width"`
}

// ShapeCount returns the number of drawable shapes in the diagram, markings
// and background rects together.
func (d Diagram) ShapeCount() int {
	return len(d.Background) + d.Markings.Count()
}

// Compose assembles the figure-space diagram: background rects beneath the
// marking set, both mapped by the orientation transform exactly once. A nil
// background leaves the pitch transparent.
func Compose(dims pitch.Dimensions, orientation pitch.Orientation, bg background.Background, style Style) Diagram {
	var rects []geo.Rect
	if bg != nil {
		generated := bg.Generate(dims)
		rects = make([]geo.Rect, len(generated))
		for i, r := range generated {
			rects[i] = orientation.ApplyRect(r)
		}
	}

	extent := orientation.Apply(geo.Pt(dims.Length, dims.Width))

	return Diagram{
		Metadata: Metadata{
			Orientation: orientation,
			Dimensions:  dims,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
		Extents:    Extents{XMax: extent.X, YMax: extent.Y},
		Style:      style,
		Background: rects,
		Markings:   markings.Build(dims).Transform(orientation),
	}
}
