package geo

import "math"

// Rect is an axis-aligned filled rectangle. Background generators emit rects
// in pitch-relative coordinates; corners need not be ordered until Canonical
// is applied.
type Rect struct {
	X0   float64 `json:"x0"`
	Y0   float64 `json:"y0"`
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	Fill Colour  `json:"fill"`
}

// Canonical returns the rect with X0 <= X1 and Y0 <= Y1.
func (r Rect) Canonical() Rect {
	if r.X0 > r.X1 {
		r.X0, r.X1 = r.X1, r.X0
	}
	if r.Y0 > r.Y1 {
		r.Y0, r.Y1 = r.Y1, r.Y0
	}
	return r
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 {
	return math.Abs(r.X1 - r.X0)
}

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 {
	return math.Abs(r.Y1 - r.Y0)
}

// Area returns the area of the rect.
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Swap returns the rect with its axes exchanged.
func (r Rect) Swap() Rect {
	return Rect{X0: r.Y0, Y0: r.X0, X1: r.Y1, Y1: r.X1, Fill: r.Fill}
}

// Vertices returns the four corners in counterclockwise order starting from
// the canonical minimum corner.
func (r Rect) Vertices() []Point {
	c := r.Canonical()
	return []Point{
		{c.X0, c.Y0},
		{c.X1, c.Y0},
		{c.X1, c.Y1},
		{c.X0, c.Y1},
	}
}

// Polyline is an open or closed sequence of straight segments.
type Polyline struct {
	Points []Point `json:"points"`
}

// Line builds a polyline from points.
func Line(pts ...Point) Polyline {
	return Polyline{Points: pts}
}

// Closed reports whether the polyline ends where it starts.
func (l Polyline) Closed() bool {
	n := len(l.Points)
	return n > 2 && l.Points[0] == l.Points[n-1]
}

// MirrorX returns the polyline reflected about the vertical line x = axis.
// Point order is preserved.
func (l Polyline) MirrorX(axis float64) Polyline {
	pts := make([]Point, len(l.Points))
	for i, p := range l.Points {
		pts[i] = p.MirrorX(axis)
	}
	return Polyline{Points: pts}
}

// Swap returns the polyline with the axes of every point exchanged.
func (l Polyline) Swap() Polyline {
	pts := make([]Point, len(l.Points))
	for i, p := range l.Points {
		pts[i] = p.Swap()
	}
	return Polyline{Points: pts}
}

// Arc is a circular arc swept anticlockwise from Start to End radians around
// Centre. Start greater than End sweeps clockwise.
type Arc struct {
	Centre Point   `json:"centre"`
	Radius float64 `json:"radius"`
	Start  float64 `json:"start"`
	End    float64 `json:"end"`
}

// Circle returns a full-circle arc.
func Circle(centre Point, radius float64) Arc {
	return Arc{Centre: centre, Radius: radius, Start: 0, End: 2 * math.Pi}
}

// Flatten interpolates the arc into n points, including both endpoints.
// n values below 2 are treated as 2.
func (a Arc) Flatten(n int) []Point {
	if n < 2 {
		n = 2
	}
	pts := make([]Point, n)
	step := (a.End - a.Start) / float64(n-1)
	for i := range pts {
		theta := a.Start + float64(i)*step
		pts[i] = a.Centre.Add(Pt(math.Cos(theta), math.Sin(theta)).Scale(a.Radius))
	}
	return pts
}

// MirrorX returns the arc reflected about the vertical line x = axis. The
// reflection maps an angle theta to pi - theta, so the sweep direction is
// reversed while the swept point set is the mirror image.
func (a Arc) MirrorX(axis float64) Arc {
	return Arc{
		Centre: a.Centre.MirrorX(axis),
		Radius: a.Radius,
		Start:  math.Pi - a.Start,
		End:    math.Pi - a.End,
	}
}

// Swap returns the arc reflected about the line y = x, exchanging the axes.
// The reflection maps an angle theta to pi/2 - theta.
func (a Arc) Swap() Arc {
	return Arc{
		Centre: a.Centre.Swap(),
		Radius: a.Radius,
		Start:  math.Pi/2 - a.Start,
		End:    math.Pi/2 - a.End,
	}
}

// Spot is a point marker such as the penalty or centre spot.
type Spot struct {
	Centre Point `json:"centre"`
}

// MirrorX returns the spot reflected about the vertical line x = axis.
func (s Spot) MirrorX(axis float64) Spot {
	return Spot{Centre: s.Centre.MirrorX(axis)}
}

// Swap returns the spot with its axes exchanged.
func (s Spot) Swap() Spot {
	return Spot{Centre: s.Centre.Swap()}
}
