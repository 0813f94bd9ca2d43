package markings

import (
	"math"
	"testing"

	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func pointsApproxEqual(p, q geo.Point, tol float64) bool {
	return approxEqual(p.X, q.X, tol) && approxEqual(p.Y, q.Y, tol)
}

// --- shape count tests ---

func TestBuildDefaultCounts(t *testing.T) {
	s := Build(pitch.Default())

	if got := len(s.Lines); got != 6 {
		t.Errorf("lines: expected 6, got %d", got)
	}
	if got := len(s.Spots); got != 3 {
		t.Errorf("spots: expected 3, got %d", got)
	}
	// Centre circle, two penalty arcs, four corner arcs.
	if got := len(s.Arcs); got != 7 {
		t.Errorf("arcs: expected 7, got %d", got)
	}
	if got := s.Count(); got != 16 {
		t.Errorf("Count: expected 16, got %d", got)
	}
}

// --- line tests ---

func TestOutline(t *testing.T) {
	d := pitch.Default()
	outline := Build(d).Lines[0]

	if len(outline.Points) != 5 {
		t.Fatalf("outline: expected 5 points, got %d", len(outline.Points))
	}
	if !outline.Closed() {
		t.Error("outline should be closed")
	}
	want := []geo.Point{
		{X: 0, Y: 0}, {X: d.Length, Y: 0}, {X: d.Length, Y: d.Width}, {X: 0, Y: d.Width}, {X: 0, Y: 0},
	}
	for i, p := range want {
		if outline.Points[i] != p {
			t.Errorf("outline point %d: expected %+v, got %+v", i, p, outline.Points[i])
		}
	}
}

func TestHalfwayLine(t *testing.T) {
	d := pitch.Default()
	halfway := Build(d).Lines[1]

	if len(halfway.Points) != 2 {
		t.Fatalf("halfway line: expected 2 points, got %d", len(halfway.Points))
	}
	if halfway.Points[0] != geo.Pt(52.5, 0) || halfway.Points[1] != geo.Pt(52.5, 68) {
		t.Errorf("halfway line: expected x = 52.5 across the width, got %+v", halfway.Points)
	}
}

func TestPenaltyBoxes(t *testing.T) {
	d := pitch.Default()
	s := Build(d)

	attacking := s.Lines[2]
	want := []geo.Point{
		{X: 0, Y: d.PenaltyBoxWidthMin()},
		{X: d.PenaltyBoxLength, Y: d.PenaltyBoxWidthMin()},
		{X: d.PenaltyBoxLength, Y: d.PenaltyBoxWidthMax()},
		{X: 0, Y: d.PenaltyBoxWidthMax()},
	}
	if len(attacking.Points) != 4 {
		t.Fatalf("penalty box: expected 4 points, got %d", len(attacking.Points))
	}
	for i, p := range want {
		if !pointsApproxEqual(attacking.Points[i], p, tolerance) {
			t.Errorf("attacking penalty box point %d: expected %+v, got %+v", i, p, attacking.Points[i])
		}
	}

	defending := s.Lines[3]
	for i, p := range attacking.Points {
		mirrored := p.MirrorX(d.MidLength())
		if !pointsApproxEqual(defending.Points[i], mirrored, tolerance) {
			t.Errorf("defending penalty box point %d: expected %+v, got %+v", i, mirrored, defending.Points[i])
		}
	}
}

func TestSixYardBoxes(t *testing.T) {
	d := pitch.Default()
	s := Build(d)

	attacking := s.Lines[4]
	if got := attacking.Points[1].X; !approxEqual(got, d.SixYardBoxLength, tolerance) {
		t.Errorf("six yard box depth: expected %v, got %v", d.SixYardBoxLength, got)
	}
	if got := attacking.Points[0].Y; !approxEqual(got, d.SixYardBoxWidthMin(), tolerance) {
		t.Errorf("six yard box lower edge: expected %v, got %v", d.SixYardBoxWidthMin(), got)
	}

	defending := s.Lines[5]
	for i, p := range attacking.Points {
		mirrored := p.MirrorX(d.MidLength())
		if !pointsApproxEqual(defending.Points[i], mirrored, tolerance) {
			t.Errorf("defending six yard box point %d: expected %+v, got %+v", i, mirrored, defending.Points[i])
		}
	}
}

// --- spot tests ---

func TestSpots(t *testing.T) {
	d := pitch.Default()
	s := Build(d)

	if got := s.Spots[0].Centre; !pointsApproxEqual(got, geo.Pt(d.PenaltySpotDistance, 34), tolerance) {
		t.Errorf("attacking penalty spot: expected (%v, 34), got %+v", d.PenaltySpotDistance, got)
	}
	if got := s.Spots[1].Centre; !pointsApproxEqual(got, geo.Pt(105-d.PenaltySpotDistance, 34), tolerance) {
		t.Errorf("defending penalty spot: expected (%v, 34), got %+v", 105-d.PenaltySpotDistance, got)
	}
	if got := s.Spots[2].Centre; !pointsApproxEqual(got, geo.Pt(52.5, 34), tolerance) {
		t.Errorf("centre spot: expected (52.5, 34), got %+v", got)
	}
}

// --- arc tests ---

func TestCentreCircle(t *testing.T) {
	d := pitch.Default()
	circle := Build(d).Arcs[0]

	if !pointsApproxEqual(circle.Centre, geo.Pt(52.5, 34), tolerance) {
		t.Errorf("centre circle centre: expected (52.5, 34), got %+v", circle.Centre)
	}
	if !approxEqual(circle.Radius, d.CentreCircleRadius, tolerance) {
		t.Errorf("centre circle radius: expected %v, got %v", d.CentreCircleRadius, circle.Radius)
	}
	if !approxEqual(circle.End-circle.Start, 2*math.Pi, tolerance) {
		t.Errorf("centre circle should sweep a full turn, got %v", circle.End-circle.Start)
	}
}

func TestPenaltyArcs(t *testing.T) {
	d := pitch.Default()
	s := Build(d)

	attacking := s.Arcs[1]
	if !pointsApproxEqual(attacking.Centre, geo.Pt(d.PenaltySpotDistance, 34), tolerance) {
		t.Errorf("attacking arc centre: expected the penalty spot, got %+v", attacking.Centre)
	}
	if !approxEqual(attacking.Radius, d.CentreCircleRadius, tolerance) {
		t.Errorf("attacking arc radius: expected %v, got %v", d.CentreCircleRadius, attacking.Radius)
	}

	// Both endpoints sit on the penalty box edge and the bulge lies outside
	// the box.
	pts := attacking.Flatten(60)
	if got := pts[0].X; !approxEqual(got, d.PenaltyBoxLength, tolerance) {
		t.Errorf("arc start x: expected %v, got %v", d.PenaltyBoxLength, got)
	}
	if got := pts[len(pts)-1].X; !approxEqual(got, d.PenaltyBoxLength, tolerance) {
		t.Errorf("arc end x: expected %v, got %v", d.PenaltyBoxLength, got)
	}
	for i, p := range pts {
		if p.X < d.PenaltyBoxLength-tolerance {
			t.Errorf("arc point %d is inside the penalty box: %+v", i, p)
		}
	}

	// The defending arc is the mirror image.
	defending := s.Arcs[2]
	mirrored := attacking.MirrorX(d.MidLength()).Flatten(60)
	for i, p := range defending.Flatten(60) {
		if !pointsApproxEqual(p, mirrored[i], tolerance) {
			t.Errorf("defending arc point %d: expected %+v, got %+v", i, mirrored[i], p)
		}
	}
}

func TestPenaltyArcOmittedWhenInsideBox(t *testing.T) {
	// Deep box, close spot, small circle: the whole arc circle fits inside
	// the penalty box, so no arc is drawn.
	d, err := pitch.New(
		pitch.WithPenaltyBoxLength(20),
		pitch.WithPenaltySpotDistance(5),
		pitch.WithCentreCircleRadius(10),
	)
	if err != nil {
		t.Fatalf("New: unexpected error %v", err)
	}

	s := Build(d)
	if got := len(s.Arcs); got != 5 {
		t.Fatalf("arcs: expected 5 (no penalty arcs), got %d", got)
	}
	if got := s.Count(); got != 14 {
		t.Errorf("Count: expected 14, got %d", got)
	}
}

func TestCornerArcs(t *testing.T) {
	d := pitch.Default()
	s := Build(d)

	corners := s.Arcs[3:]
	if len(corners) != 4 {
		t.Fatalf("corner arcs: expected 4, got %d", len(corners))
	}

	wantCentres := []geo.Point{
		{X: 0, Y: 0}, {X: 0, Y: d.Width}, {X: d.Length, Y: 0}, {X: d.Length, Y: d.Width},
	}
	for i, arc := range corners {
		if !pointsApproxEqual(arc.Centre, wantCentres[i], tolerance) {
			t.Errorf("corner arc %d centre: expected %+v, got %+v", i, wantCentres[i], arc.Centre)
		}
		if !approxEqual(arc.Radius, d.CornerArcRadius, tolerance) {
			t.Errorf("corner arc %d radius: expected %v, got %v", i, d.CornerArcRadius, arc.Radius)
		}
		if got := math.Abs(arc.End - arc.Start); !approxEqual(got, math.Pi/2, tolerance) {
			t.Errorf("corner arc %d should sweep a quarter turn, got %v", i, got)
		}
		for j, p := range arc.Flatten(30) {
			if p.X < -tolerance || p.X > d.Length+tolerance || p.Y < -tolerance || p.Y > d.Width+tolerance {
				t.Errorf("corner arc %d point %d outside the pitch: %+v", i, j, p)
			}
		}
	}
}

// --- transform tests ---

func TestTransformHorizontalIsIdentity(t *testing.T) {
	s := Build(pitch.Default())
	h := s.Transform(pitch.Horizontal)

	if h.Count() != s.Count() {
		t.Fatalf("Count changed: expected %d, got %d", s.Count(), h.Count())
	}
	for i, l := range s.Lines {
		for j, p := range l.Points {
			if h.Lines[i].Points[j] != p {
				t.Errorf("line %d point %d changed: %+v", i, j, h.Lines[i].Points[j])
			}
		}
	}
}

func TestTransformVerticalSwapsAxes(t *testing.T) {
	d := pitch.Default()
	s := Build(d)
	v := s.Transform(pitch.Vertical)

	// Outline corners land on the swapped extents.
	if got := v.Lines[0].Points[2]; got != geo.Pt(d.Width, d.Length) {
		t.Errorf("outline corner: expected (%v, %v), got %+v", d.Width, d.Length, got)
	}
	// The halfway line now runs across the figure at height mid-length.
	if got := v.Lines[1].Points[0]; got != geo.Pt(0, d.MidLength()) {
		t.Errorf("halfway start: expected (0, %v), got %+v", d.MidLength(), got)
	}
	// Arcs trace the axis-exchanged point sets.
	for i := range s.Arcs {
		orig := s.Arcs[i].Flatten(20)
		swapped := v.Arcs[i].Flatten(20)
		for j := range orig {
			want := orig[j].Swap()
			if !pointsApproxEqual(swapped[j], want, tolerance) {
				t.Errorf("arc %d point %d: expected %+v, got %+v", i, j, want, swapped[j])
			}
		}
	}

	// Applying the vertical transform twice restores the original set.
	back := v.Transform(pitch.Vertical)
	for i, sp := range s.Spots {
		if back.Spots[i] != sp {
			t.Errorf("spot %d after double transform: expected %+v, got %+v", i, sp, back.Spots[i])
		}
	}
}

// --- symmetry test ---

func TestMarkingsMirrorAboutHalfway(t *testing.T) {
	d := pitch.Default()
	s := Build(d)
	mid := d.MidLength()

	pairs := []struct {
		name        string
		left, right geo.Polyline
	}{
		{"penalty boxes", s.Lines[2], s.Lines[3]},
		{"six yard boxes", s.Lines[4], s.Lines[5]},
	}
	for _, pair := range pairs {
		for i, p := range pair.left.Points {
			mirrored := p.MirrorX(mid)
			if !pointsApproxEqual(pair.right.Points[i], mirrored, tolerance) {
				t.Errorf("%s point %d: expected %+v, got %+v", pair.name, i, mirrored, pair.right.Points[i])
			}
		}
	}

	if got := s.Spots[1].Centre; !pointsApproxEqual(got, s.Spots[0].Centre.MirrorX(mid), tolerance) {
		t.Errorf("penalty spots are not mirrored: %+v vs %+v", s.Spots[0].Centre, got)
	}

	arcPairs := [][2]geo.Arc{
		{s.Arcs[1], s.Arcs[2]}, // penalty arcs
		{s.Arcs[3], s.Arcs[5]}, // bottom corner arcs
		{s.Arcs[4], s.Arcs[6]}, // top corner arcs
	}
	for k, pair := range arcPairs {
		left := pair[0].Flatten(20)
		right := pair[1].Flatten(20)
		for i := range left {
			mirrored := left[i].MirrorX(mid)
			if !pointsApproxEqual(right[i], mirrored, tolerance) {
				t.Errorf("arc pair %d point %d: expected %+v, got %+v", k, i, mirrored, right[i])
			}
		}
	}
}
