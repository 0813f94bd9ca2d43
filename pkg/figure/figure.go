// Package figure assembles pitch dimensions, markings and backgrounds into a
// renderable plot. Rendering is delegated to gonum/plot; this package only
// decides what shapes exist and where they sit, then hands styled plotters to
// the plot.
package figure

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/minimav/pitchplot/pkg/background"
	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// ErrInvalidFigure reports unusable figure parameters: non-positive pixel
// sizes or marking widths, or an unparseable marking colour.
var ErrInvalidFigure = errors.New("invalid figure")

// Assembly defaults. Sizes are pixels.
const (
	DefaultMarkingColour = "black"
	DefaultMarkingWidth  = 4.0
	DefaultWidthPx       = 800
	DefaultHeightPx      = 600
)

// pixelsPerInch converts requested pixel sizes into vg lengths.
const pixelsPerInch = 96

// Interpolation counts for curved markings.
const (
	circleFlattenPoints = 100
	arcFlattenPoints    = 60
)

// spotRadiusPx is the marker radius for penalty and centre spots.
const spotRadiusPx = 3.0

// Figure is a renderable pitch diagram. Plot is the underlying gonum plot;
// callers may add any further plotters to it before saving. Width and Height
// are the requested export size in pixels.
type Figure struct {
	Plot    *plot.Plot
	Width   int
	Height  int
	Diagram Diagram
}

// Option configures figure assembly.
type Option func(*settings)

type settings struct {
	orientation   pitch.Orientation
	bg            background.Background
	markingColour string
	markingWidth  float64
	widthPx       int
	heightPx      int
}

// WithOrientation lays the pitch out horizontally or vertically.
func WithOrientation(o pitch.Orientation) Option {
	return func(s *settings) { s.orientation = o }
}

// WithBackground colours the pitch area. The default is a transparent
// background.
func WithBackground(b background.Background) Option {
	return func(s *settings) { s.bg = b }
}

// WithMarkingColour sets the marking colour as a hex string or SVG name.
func WithMarkingColour(colour string) Option {
	return func(s *settings) { s.markingColour = colour }
}

// WithMarkingWidth sets the marking line width in pixels.
func WithMarkingWidth(px float64) Option {
	return func(s *settings) { s.markingWidth = px }
}

// WithSize sets the export size in pixels. Width corresponds to the figure's
// x axis, which carries the pitch length only for horizontal pitches.
func WithSize(widthPx, heightPx int) Option {
	return func(s *settings) {
		s.widthPx = widthPx
		s.heightPx = heightPx
	}
}

// New assembles a pitch figure. The dimensions are validated, the diagram is
// composed in figure space and every shape is rendered onto a fresh plot
// with hidden axes, backgrounds beneath markings.
func New(dims pitch.Dimensions, opts ...Option) (*Figure, error) {
	s := settings{
		orientation:   pitch.Horizontal,
		markingColour: DefaultMarkingColour,
		markingWidth:  DefaultMarkingWidth,
		widthPx:       DefaultWidthPx,
		heightPx:      DefaultHeightPx,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := dims.Validate(); err != nil {
		return nil, err
	}
	if s.widthPx <= 0 || s.heightPx <= 0 {
		return nil, fmt.Errorf("%w: size must be positive, got %dx%d", ErrInvalidFigure, s.widthPx, s.heightPx)
	}
	if s.markingWidth <= 0 {
		return nil, fmt.Errorf("%w: marking width must be positive, got %v", ErrInvalidFigure, s.markingWidth)
	}
	colour, err := geo.ParseColour(s.markingColour)
	if err != nil {
		return nil, fmt.Errorf("%w: marking colour: %v", ErrInvalidFigure, err)
	}

	diagram := Compose(dims, s.orientation, s.bg, Style{Colour: colour, Width: s.markingWidth})
	p, err := render(diagram)
	if err != nil {
		return nil, err
	}

	return &Figure{
		Plot:    p,
		Width:   s.widthPx,
		Height:  s.heightPx,
		Diagram: diagram,
	}, nil
}

// render draws the diagram onto a fresh plot. Plotters are added in z-order:
// background rects first, then lines, arcs and spots. Axis ranges are set
// last because adding a plotter widens them.
func render(d Diagram) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.Transparent

	for i, r := range d.Background {
		poly, err := plotter.NewPolygon(xysFromPoints(r.Vertices()))
		if err != nil {
			return nil, fmt.Errorf("background rect %d: %w", i, err)
		}
		poly.Color = r.Fill
		poly.LineStyle.Color = r.Fill
		p.Add(poly)
	}

	lineStyle := draw.LineStyle{
		Color: d.Style.Colour,
		Width: pxToLength(d.Style.Width),
	}
	for i, l := range d.Markings.Lines {
		line, err := plotter.NewLine(xysFromPoints(l.Points))
		if err != nil {
			return nil, fmt.Errorf("marking line %d: %w", i, err)
		}
		line.LineStyle = lineStyle
		p.Add(line)
	}
	for i, a := range d.Markings.Arcs {
		line, err := plotter.NewLine(xysFromPoints(a.Flatten(flattenPoints(a))))
		if err != nil {
			return nil, fmt.Errorf("marking arc %d: %w", i, err)
		}
		line.LineStyle = lineStyle
		p.Add(line)
	}
	for i, spot := range d.Markings.Spots {
		scatter, err := plotter.NewScatter(xysFromPoints([]geo.Point{spot.Centre}))
		if err != nil {
			return nil, fmt.Errorf("marking spot %d: %w", i, err)
		}
		scatter.GlyphStyle = draw.GlyphStyle{
			Color:  d.Style.Colour,
			Radius: pxToLength(spotRadiusPx),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(scatter)
	}

	p.X.Min, p.X.Max = 0, d.Extents.XMax
	p.Y.Min, p.Y.Max = 0, d.Extents.YMax
	return p, nil
}

func flattenPoints(a geo.Arc) int {
	if math.Abs(a.End-a.Start) > math.Pi {
		return circleFlattenPoints
	}
	return arcFlattenPoints
}

func xysFromPoints(pts []geo.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return xys
}

// pxToLength converts CSS-style pixels to vg lengths at 96 pixels per inch.
func pxToLength(px float64) vg.Length {
	return vg.Length(px) * vg.Inch / pixelsPerInch
}

// AddLabel writes text at a figure-space position.
func (f *Figure) AddLabel(text string, at geo.Point) error {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: at.X, Y: at.Y}},
		Labels: []string{text},
	})
	if err != nil {
		return fmt.Errorf("label %q: %w", text, err)
	}
	f.Plot.Add(labels)
	return nil
}

// Save renders the figure to a file, inferring the format from the
// extension: .png, .svg, .pdf, .eps, .jpg or .tif.
func (f *Figure) Save(path string) error {
	return f.Plot.Save(pxToLength(float64(f.Width)), pxToLength(float64(f.Height)), path)
}

// WriteTo renders the figure into w in the named format ("png", "svg",
// "pdf", "eps", "jpg" or "tif").
func (f *Figure) WriteTo(w io.Writer, format string) error {
	wt, err := f.Plot.WriterTo(pxToLength(float64(f.Width)), pxToLength(float64(f.Height)), format)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return nil
}
