package figure

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/minimav/pitchplot/pkg/background"
	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/heatmap"
	"github.com/minimav/pitchplot/pkg/pitch"
)

const tolerance = 1e-9

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustFigure(t *testing.T, f *Figure, err error) *Figure {
	t.Helper()
	if err != nil {
		t.Fatalf("New: unexpected error %v", err)
	}
	return f
}

// --- assembly tests ---

func TestNewDefaults(t *testing.T) {
	fig, err := New(pitch.Default())
	f := mustFigure(t, fig, err)

	if f.Width != DefaultWidthPx || f.Height != DefaultHeightPx {
		t.Errorf("size: expected %dx%d, got %dx%d", DefaultWidthPx, DefaultHeightPx, f.Width, f.Height)
	}
	if got := len(f.Diagram.Background); got != 0 {
		t.Errorf("background: expected no rects, got %d", got)
	}
	if got := f.Diagram.Markings.Count(); got != 16 {
		t.Errorf("markings: expected 16 shapes, got %d", got)
	}
	if f.Diagram.Extents.XMax != 105 || f.Diagram.Extents.YMax != 68 {
		t.Errorf("extents: expected 105x68, got %vx%v", f.Diagram.Extents.XMax, f.Diagram.Extents.YMax)
	}
	if f.Plot == nil {
		t.Fatal("expected a plot handle")
	}
	if f.Plot.X.Min != 0 || f.Plot.X.Max != 105 || f.Plot.Y.Min != 0 || f.Plot.Y.Max != 68 {
		t.Errorf("plot ranges: expected [0, 105]x[0, 68], got [%v, %v]x[%v, %v]",
			f.Plot.X.Min, f.Plot.X.Max, f.Plot.Y.Min, f.Plot.Y.Max)
	}

	want, _ := geo.ParseColour(DefaultMarkingColour)
	if f.Diagram.Style.Colour != want {
		t.Errorf("marking colour: expected %v, got %v", want, f.Diagram.Style.Colour)
	}
	if f.Diagram.Style.Width != DefaultMarkingWidth {
		t.Errorf("marking width: expected %v, got %v", DefaultMarkingWidth, f.Diagram.Style.Width)
	}
}

func TestNewVerticalSwapsExtents(t *testing.T) {
	fig, err := New(pitch.Default(), WithOrientation(pitch.Vertical))
	f := mustFigure(t, fig, err)

	if f.Diagram.Extents.XMax != 68 || f.Diagram.Extents.YMax != 105 {
		t.Errorf("extents: expected 68x105, got %vx%v", f.Diagram.Extents.XMax, f.Diagram.Extents.YMax)
	}
	if f.Plot.X.Max != 68 || f.Plot.Y.Max != 105 {
		t.Errorf("plot ranges: expected x to 68 and y to 105, got %v and %v", f.Plot.X.Max, f.Plot.Y.Max)
	}
	if got := f.Diagram.Markings.Count(); got != 16 {
		t.Errorf("markings: expected 16 shapes, got %d", got)
	}
}

func TestNewSingleColourBackground(t *testing.T) {
	bg, err := background.SingleColour("#81B622")
	if err != nil {
		t.Fatalf("SingleColour: unexpected error %v", err)
	}
	fig, err := New(pitch.Default(), WithBackground(bg))
	f := mustFigure(t, fig, err)

	if got := len(f.Diagram.Background); got != 1 {
		t.Fatalf("background: expected 1 rect, got %d", got)
	}
	r := f.Diagram.Background[0]
	if r.X0 != 0 || r.Y0 != 0 || r.X1 != 105 || r.Y1 != 68 {
		t.Errorf("background rect: expected the full pitch, got %+v", r)
	}
	want, _ := geo.ParseColour("#81B622")
	if r.Fill != want {
		t.Errorf("background fill: expected %v, got %v", want, r.Fill)
	}
	if got := f.Diagram.ShapeCount(); got != 17 {
		t.Errorf("ShapeCount: expected 17, got %d", got)
	}
}

func TestComposeTransformsBackgroundOnce(t *testing.T) {
	bg, err := background.AttackVsDefence("red", "blue")
	if err != nil {
		t.Fatalf("AttackVsDefence: unexpected error %v", err)
	}
	d := Compose(pitch.Default(), pitch.Vertical, bg, Style{})

	if len(d.Background) != 2 {
		t.Fatalf("background: expected 2 rects, got %d", len(d.Background))
	}
	// The attacking half lands at the bottom of a vertical pitch.
	attack := d.Background[0].Canonical()
	if attack.X1 != 68 || !approxEqual(attack.Y1, 52.5, tolerance) {
		t.Errorf("attack half: expected to span x to 68 and y to 52.5, got %+v", attack)
	}
	defence := d.Background[1].Canonical()
	if !approxEqual(defence.Y0, 52.5, tolerance) || defence.Y1 != 105 {
		t.Errorf("defence half: expected y from 52.5 to 105, got %+v", defence)
	}
}

func TestNewRejections(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero width", []Option{WithSize(0, 600)}, ErrInvalidFigure},
		{"negative height", []Option{WithSize(800, -1)}, ErrInvalidFigure},
		{"zero marking width", []Option{WithMarkingWidth(0)}, ErrInvalidFigure},
		{"bad marking colour", []Option{WithMarkingColour("no-such-colour")}, ErrInvalidFigure},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(pitch.Default(), tc.opts...)
			if err == nil {
				t.Fatal("expected error, got none")
			}
			if !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewValidatesDimensions(t *testing.T) {
	_, err := New(pitch.Dimensions{Length: -10, Width: 68})
	if err == nil {
		t.Fatal("expected error, got none")
	}
	if !errors.Is(err, pitch.ErrInvalidDimension) {
		t.Errorf("expected ErrInvalidDimension, got %v", err)
	}
}

// --- heatmap tests ---

func TestAddHeatmapKeepsRanges(t *testing.T) {
	fig, err := New(pitch.Default())
	f := mustFigure(t, fig, err)

	g, err := heatmap.NewGrid([][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, 3, 4, 5, 6, 7},
		{3, 4, 5, 6, 7, 8},
		{4, 5, 6, 7, 8, 9},
	})
	if err != nil {
		t.Fatalf("NewGrid: unexpected error %v", err)
	}
	if err := f.AddHeatmap(g); err != nil {
		t.Fatalf("AddHeatmap: unexpected error %v", err)
	}

	if !approxEqual(f.Plot.X.Max, 105, tolerance) || !approxEqual(f.Plot.Y.Max, 68, tolerance) {
		t.Errorf("plot ranges changed: [%v, %v]x[%v, %v]", f.Plot.X.Min, f.Plot.X.Max, f.Plot.Y.Min, f.Plot.Y.Max)
	}
}

func TestAddHeatmapNilGrid(t *testing.T) {
	fig, err := New(pitch.Default())
	f := mustFigure(t, fig, err)
	if err := f.AddHeatmap(nil); !errors.Is(err, heatmap.ErrInvalidGrid) {
		t.Errorf("expected ErrInvalidGrid, got %v", err)
	}
}

func TestCellGridLayout(t *testing.T) {
	g, err := heatmap.NewGrid([][]float64{
		{1, 2, 3, 4, 5, 6},
		{7, 8, 9, 10, 11, 12},
		{13, 14, 15, 16, 17, 18},
		{19, 20, 21, 22, 23, 24},
	})
	if err != nil {
		t.Fatalf("NewGrid: unexpected error %v", err)
	}

	dx, dy := 105.0/6, 68.0/4
	cells := &cellGrid{grid: g, dx: dx, dy: dy}

	cols, rows := cells.Dims()
	if cols != 6 || rows != 4 {
		t.Fatalf("Dims: expected (6, 4), got (%d, %d)", cols, rows)
	}

	// Cell centres start half a cell in and advance one cell at a time.
	if got := cells.X(0); !approxEqual(got, dx/2, tolerance) {
		t.Errorf("X(0): expected %v, got %v", dx/2, got)
	}
	if got := cells.X(5); !approxEqual(got, 105-dx/2, tolerance) {
		t.Errorf("X(5): expected %v, got %v", 105-dx/2, got)
	}
	if got := cells.Y(0); !approxEqual(got, dy/2, tolerance) {
		t.Errorf("Y(0): expected %v, got %v", dy/2, got)
	}
	if got := cells.Y(3); !approxEqual(got, 68-dy/2, tolerance) {
		t.Errorf("Y(3): expected %v, got %v", 68-dy/2, got)
	}

	// Every cell covers an equal share of the pitch.
	if got := dx * dy; !approxEqual(got, 105.0*68/24, tolerance) {
		t.Errorf("cell area: expected %v, got %v", 105.0*68/24, got)
	}

	// Grid row 0 is the bottom row; value lookup is (row, col).
	if got := cells.Z(0, 0); got != 1 {
		t.Errorf("Z(0, 0): expected 1, got %v", got)
	}
	if got := cells.Z(2, 3); got != 21 {
		t.Errorf("Z(2, 3): expected 21, got %v", got)
	}

	reversed := &cellGrid{grid: g, dx: dx, dy: dy, reversed: true}
	if got := reversed.Z(0, 0); got != 19 {
		t.Errorf("reversed Z(0, 0): expected 19, got %v", got)
	}
	if got := reversed.Z(0, 3); got != 1 {
		t.Errorf("reversed Z(0, 3): expected 1, got %v", got)
	}
}

// --- decoration and export tests ---

func TestAddLabel(t *testing.T) {
	fig, err := New(pitch.Default())
	f := mustFigure(t, fig, err)
	if err := f.AddLabel("kickoff", geo.Pt(52.5, 34)); err != nil {
		t.Fatalf("AddLabel: unexpected error %v", err)
	}
	if !approxEqual(f.Plot.X.Max, 105, tolerance) {
		t.Errorf("plot range changed after interior label: %v", f.Plot.X.Max)
	}
}

func TestPxToLength(t *testing.T) {
	if got := pxToLength(96); got != vg.Inch {
		t.Errorf("pxToLength(96): expected one inch, got %v", got)
	}
	if got := pxToLength(800); !approxEqual(float64(got), 600, tolerance) {
		t.Errorf("pxToLength(800): expected 600 points, got %v", got)
	}
}
