// Package markings computes the standard line markings of a football pitch.
// All geometry is closed-form in pitch-relative coordinates: the attacking
// half runs from the goal line at x = 0 to the halfway line, and every
// right-side marking is the mirror of a left-side one through length - x.
package markings

import (
	"math"

	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// Set is the complete collection of markings for one pitch. Shape order is
// stable: lines are outline, halfway, attacking then defending penalty box,
// attacking then defending six-yard box; spots are attacking penalty,
// defending penalty, centre; arcs are centre circle, attacking then defending
// penalty arc, then the corner arcs (bottom and top of the left goal line,
// bottom and top of the right).
type Set struct {
	Lines []geo.Polyline `json:"lines"`
	Spots []geo.Spot     `json:"spots"`
	Arcs  []geo.Arc      `json:"arcs"`
}

// Count returns the number of shapes across all marking kinds.
func (s Set) Count() int {
	return len(s.Lines) + len(s.Spots) + len(s.Arcs)
}

// Transform maps the set into figure space for the given orientation. For a
// horizontal pitch the set is returned unchanged; for a vertical one every
// shape has its axes exchanged.
func (s Set) Transform(o pitch.Orientation) Set {
	if o != pitch.Vertical {
		return s
	}
	out := Set{
		Lines: make([]geo.Polyline, len(s.Lines)),
		Spots: make([]geo.Spot, len(s.Spots)),
		Arcs:  make([]geo.Arc, len(s.Arcs)),
	}
	for i, l := range s.Lines {
		out.Lines[i] = l.Swap()
	}
	for i, sp := range s.Spots {
		out.Spots[i] = sp.Swap()
	}
	for i, a := range s.Arcs {
		out.Arcs[i] = a.Swap()
	}
	return out
}

// Build derives the marking set from validated dimensions. The result is
// deterministic and orientation-free; the figure assembly applies the
// orientation transform.
func Build(d pitch.Dimensions) Set {
	mid := d.MidLength()

	// 1. Touchlines and goal lines as one closed outline, then the halfway
	// line.
	outline := geo.Line(
		geo.Pt(0, 0),
		geo.Pt(d.Length, 0),
		geo.Pt(d.Length, d.Width),
		geo.Pt(0, d.Width),
		geo.Pt(0, 0),
	)
	halfway := geo.Line(geo.Pt(mid, 0), geo.Pt(mid, d.Width))

	// 2. Boxes, drawn as open three-sided polylines; the goal line completes
	// them visually.
	penaltyBox := box(d.PenaltyBoxLength, d.PenaltyBoxWidthMin(), d.PenaltyBoxWidthMax())
	sixYardBox := box(d.SixYardBoxLength, d.SixYardBoxWidthMin(), d.SixYardBoxWidthMax())

	lines := []geo.Polyline{
		outline,
		halfway,
		penaltyBox,
		penaltyBox.MirrorX(mid),
		sixYardBox,
		sixYardBox.MirrorX(mid),
	}

	// 3. Penalty spots and centre spot.
	penaltySpot := geo.Spot{Centre: geo.Pt(d.PenaltySpotDistance, d.MidWidth())}
	spots := []geo.Spot{
		penaltySpot,
		penaltySpot.MirrorX(mid),
		{Centre: geo.Pt(mid, d.MidWidth())},
	}

	// 4. Centre circle, penalty arcs and corner arcs.
	arcs := []geo.Arc{
		geo.Circle(geo.Pt(mid, d.MidWidth()), d.CentreCircleRadius),
	}
	if arc, ok := penaltyArc(d); ok {
		arcs = append(arcs, arc, arc.MirrorX(mid))
	}
	arcs = append(arcs, cornerArcs(d)...)

	return Set{Lines: lines, Spots: spots, Arcs: arcs}
}

// box returns the attacking-side box polyline from the goal line out to
// depth, between the given touchline offsets.
func box(depth, yMin, yMax float64) geo.Polyline {
	return geo.Line(
		geo.Pt(0, yMin),
		geo.Pt(depth, yMin),
		geo.Pt(depth, yMax),
		geo.Pt(0, yMax),
	)
}

// penaltyArc returns the attacking penalty arc: the part of the circle of
// centre circle radius around the penalty spot that lies outside the penalty
// box. The reported ok is false when the whole circle sits inside the box,
// in which case no arc is drawn.
func penaltyArc(d pitch.Dimensions) (geo.Arc, bool) {
	ratio := (d.PenaltyBoxLength - d.PenaltySpotDistance) / d.CentreCircleRadius
	if ratio >= 1 {
		return geo.Arc{}, false
	}
	if ratio < -1 {
		ratio = -1
	}
	halfAngle := math.Acos(ratio)
	return geo.Arc{
		Centre: geo.Pt(d.PenaltySpotDistance, d.MidWidth()),
		Radius: d.CentreCircleRadius,
		Start:  -halfAngle,
		End:    halfAngle,
	}, true
}

// cornerArcs returns the four quarter-circle corner arcs, built on the left
// goal line and mirrored to the right one.
func cornerArcs(d pitch.Dimensions) []geo.Arc {
	bottomLeft := geo.Arc{
		Centre: geo.Pt(0, 0),
		Radius: d.CornerArcRadius,
		Start:  0,
		End:    math.Pi / 2,
	}
	topLeft := geo.Arc{
		Centre: geo.Pt(0, d.Width),
		Radius: d.CornerArcRadius,
		Start:  -math.Pi / 2,
		End:    0,
	}
	mid := d.MidLength()
	return []geo.Arc{
		bottomLeft,
		topLeft,
		bottomLeft.MirrorX(mid),
		topLeft.MirrorX(mid),
	}
}
