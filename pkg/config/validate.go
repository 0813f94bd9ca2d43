package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/minimav/pitchplot/pkg/background"
	"github.com/minimav/pitchplot/pkg/geo"
	"github.com/minimav/pitchplot/pkg/pitch"
	"github.com/minimav/pitchplot/pkg/validation"
)

var backgroundKinds = []string{
	"single", "attack_defence", "vertical_stripes", "horizontal_stripes", "chequered",
}

var outputFormats = []string{
	"eps", "jpg", "jpeg", "pdf", "png", "svg", "tex", "tif", "tiff",
}

// Validate checks a figure config for every problem it can find. Unlike
// Resolve, which stops at the first error, Validate collects all findings
// so the validate command and the dev server can show them at once.
func Validate(cfg *FigureConfig) *validation.Report {
	r := validation.NewReport()

	validatePitch(cfg, r)
	validateOrientation(cfg, r)
	validateMarkings(cfg, r)
	validateBackground(cfg, r)
	validateHeatmap(cfg, r)
	validateOutput(cfg, r)

	return r
}

func validatePitch(cfg *FigureConfig, r *validation.Report) {
	p := cfg.Pitch
	fields := []struct {
		name  string
		value *float64
	}{
		{"length", p.Length},
		{"width", p.Width},
		{"penalty_box_length", p.PenaltyBoxLength},
		{"penalty_box_width", p.PenaltyBoxWidth},
		{"six_yard_box_length", p.SixYardBoxLength},
		{"six_yard_box_width", p.SixYardBoxWidth},
		{"penalty_spot_distance", p.PenaltySpotDistance},
		{"centre_circle_radius", p.CentreCircleRadius},
		{"corner_arc_radius", p.CornerArcRadius},
	}

	overridden := 0
	schemaOK := true
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		overridden++
		v := *f.value
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("pitch.%s must be a finite number of metres", f.name),
				ConfigPath:  "pitch." + f.name,
				ActualValue: v,
				Expected:    "a finite number",
			})
			schemaOK = false
			continue
		}
		if v <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("pitch.%s must be positive", f.name),
				ConfigPath:  "pitch." + f.name,
				ActualValue: v,
				Expected:    "> 0",
			})
			schemaOK = false
		}
	}

	if overridden == 0 {
		r.AddInfo(validation.Result{
			Level:      validation.LevelSchema,
			Message:    fmt.Sprintf("using regulation pitch dimensions (%gm x %gm)", pitch.DefaultLength, pitch.DefaultWidth),
			ConfigPath: "pitch",
		})
	}

	// Relational checks need the full measurement set, so they only run once
	// every overridden field is individually usable.
	if !schemaOK {
		return
	}
	validatePitchGeometry(effectiveDimensions(p), r)
}

// effectiveDimensions fills unset measurements the same way pitch.New does,
// without validating, so the geometry checks below can report every conflict
// rather than the first.
func effectiveDimensions(p PitchConfig) pitch.Dimensions {
	regulation := pitch.Default()
	length := valueOrFloat(p.Length, pitch.DefaultLength)
	width := valueOrFloat(p.Width, pitch.DefaultWidth)
	penaltyBoxLength := valueOrFloat(p.PenaltyBoxLength, regulation.PenaltyBoxLength)

	return pitch.Dimensions{
		Length:              length,
		Width:               width,
		PenaltyBoxLength:    penaltyBoxLength,
		PenaltyBoxWidth:     valueOrFloat(p.PenaltyBoxWidth, 0.6*width),
		SixYardBoxLength:    valueOrFloat(p.SixYardBoxLength, penaltyBoxLength/3),
		SixYardBoxWidth:     valueOrFloat(p.SixYardBoxWidth, 0.3*width),
		PenaltySpotDistance: valueOrFloat(p.PenaltySpotDistance, 2*penaltyBoxLength/3),
		CentreCircleRadius:  valueOrFloat(p.CentreCircleRadius, length/10),
		CornerArcRadius:     valueOrFloat(p.CornerArcRadius, regulation.CornerArcRadius),
	}
}

func validatePitchGeometry(d pitch.Dimensions, r *validation.Report) {
	before := len(r.Errors)

	if d.PenaltyBoxLength >= d.MidLength() {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("penalty box length %g does not fit inside half the pitch length %g", d.PenaltyBoxLength, d.Length),
			ConfigPath:   "pitch.penalty_box_length",
			ActualValue:  d.PenaltyBoxLength,
			Expected:     fmt.Sprintf("< %g", d.MidLength()),
			ConflictWith: "pitch.length",
		})
	}
	if d.PenaltyBoxWidth >= d.Width {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("penalty box width %g is not narrower than the pitch width %g", d.PenaltyBoxWidth, d.Width),
			ConfigPath:   "pitch.penalty_box_width",
			ActualValue:  d.PenaltyBoxWidth,
			Expected:     fmt.Sprintf("< %g", d.Width),
			ConflictWith: "pitch.width",
		})
	}
	if d.SixYardBoxLength >= d.PenaltyBoxLength {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("six yard box length %g is not shorter than the penalty box length %g", d.SixYardBoxLength, d.PenaltyBoxLength),
			ConfigPath:   "pitch.six_yard_box_length",
			ActualValue:  d.SixYardBoxLength,
			Expected:     fmt.Sprintf("< %g", d.PenaltyBoxLength),
			ConflictWith: "pitch.penalty_box_length",
		})
	}
	if d.SixYardBoxWidth >= d.PenaltyBoxWidth {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("six yard box width %g is not narrower than the penalty box width %g", d.SixYardBoxWidth, d.PenaltyBoxWidth),
			ConfigPath:   "pitch.six_yard_box_width",
			ActualValue:  d.SixYardBoxWidth,
			Expected:     fmt.Sprintf("< %g", d.PenaltyBoxWidth),
			ConflictWith: "pitch.penalty_box_width",
		})
	}
	if d.PenaltySpotDistance >= d.MidLength() {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("penalty spot distance %g is not before the halfway line at %g", d.PenaltySpotDistance, d.MidLength()),
			ConfigPath:   "pitch.penalty_spot_distance",
			ActualValue:  d.PenaltySpotDistance,
			Expected:     fmt.Sprintf("< %g", d.MidLength()),
			ConflictWith: "pitch.length",
		})
	}
	if d.CentreCircleRadius >= d.MidWidth() || d.CentreCircleRadius >= d.MidLength() {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("centre circle radius %g does not fit inside the pitch %gx%g", d.CentreCircleRadius, d.Length, d.Width),
			ConfigPath:   "pitch.centre_circle_radius",
			ActualValue:  d.CentreCircleRadius,
			Expected:     fmt.Sprintf("< %g", math.Min(d.MidLength(), d.MidWidth())),
			ConflictWith: "pitch.width",
		})
	}
	if d.CornerArcRadius >= d.MidWidth() || d.CornerArcRadius >= d.MidLength() {
		r.AddError(validation.Result{
			Level:        validation.LevelGeometry,
			Message:      fmt.Sprintf("corner arc radius %g does not fit inside the pitch %gx%g", d.CornerArcRadius, d.Length, d.Width),
			ConfigPath:   "pitch.corner_arc_radius",
			ActualValue:  d.CornerArcRadius,
			Expected:     fmt.Sprintf("< %g", math.Min(d.MidLength(), d.MidWidth())),
			ConflictWith: "pitch.width",
		})
	}

	// Catch anything the explicit checks above miss so an invalid config can
	// never validate cleanly.
	if len(r.Errors) == before {
		if err := d.Validate(); err != nil {
			r.AddError(validation.Result{
				Level:      validation.LevelGeometry,
				Message:    err.Error(),
				ConfigPath: "pitch",
			})
		}
	}

	if d.Width >= d.Length {
		r.AddWarning(validation.Result{
			Level:       validation.LevelGeometry,
			Message:     fmt.Sprintf("pitch is wider (%gm) than it is long (%gm)", d.Width, d.Length),
			ConfigPath:  "pitch.width",
			ActualValue: d.Width,
			Expected:    fmt.Sprintf("< %g", d.Length),
		})
	}
}

func validateOrientation(cfg *FigureConfig, r *validation.Report) {
	if cfg.Orientation == "" {
		return
	}
	if _, err := pitch.ParseOrientation(cfg.Orientation); err != nil {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     fmt.Sprintf("unknown orientation %q", cfg.Orientation),
			ConfigPath:  "orientation",
			ActualValue: cfg.Orientation,
			Expected:    "horizontal or vertical",
			Suggestions: []string{"horizontal", "vertical"},
		})
	}
}

func validateMarkings(cfg *FigureConfig, r *validation.Report) {
	m := cfg.Markings
	if m.Colour != "" {
		if _, err := geo.ParseColour(m.Colour); err != nil {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("unusable marking colour: %v", err),
				ConfigPath:  "markings.colour",
				ActualValue: m.Colour,
				Expected:    "a named colour or a hex code like #81b622",
			})
		}
	}
	if m.Width != nil {
		w := *m.Width
		if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     "markings.width must be a positive number of pixels",
				ConfigPath:  "markings.width",
				ActualValue: w,
				Expected:    "> 0",
			})
		}
	}
}

func validateBackground(cfg *FigureConfig, r *validation.Report) {
	if cfg.Background == nil {
		return
	}
	_, err := buildBackground(cfg.Background)
	if err == nil {
		return
	}

	result := validation.Result{
		Level:      validation.LevelSchema,
		Message:    err.Error(),
		ConfigPath: "background",
	}
	if !errors.Is(err, background.ErrInvalidBackground) {
		result.ConfigPath = "background.kind"
		result.ActualValue = cfg.Background.Kind
		result.Expected = "one of " + strings.Join(backgroundKinds, ", ")
		result.Suggestions = backgroundKinds
	}
	r.AddError(result)
}

func validateHeatmap(cfg *FigureConfig, r *validation.Report) {
	if cfg.Heatmap == nil {
		return
	}
	h := cfg.Heatmap

	switch {
	case len(h.Values) > 0 && h.CSV != "":
		r.AddError(validation.Result{
			Level:        validation.LevelSchema,
			Message:      "heatmap.values and heatmap.csv are mutually exclusive",
			ConfigPath:   "heatmap.values",
			ConflictWith: "heatmap.csv",
			Suggestions:  []string{"keep the inline values", "keep the csv path"},
		})
		return
	case len(h.Values) == 0 && h.CSV == "":
		r.AddError(validation.Result{
			Level:      validation.LevelSchema,
			Message:    "heatmap needs inline values or a csv path",
			ConfigPath: "heatmap",
			Expected:   "values or csv",
		})
		return
	}

	if _, err := resolveGrid(h); err != nil {
		path := "heatmap.values"
		if h.CSV != "" {
			path = "heatmap.csv"
		}
		r.AddError(validation.Result{
			Level:      validation.LevelData,
			Message:    err.Error(),
			ConfigPath: path,
		})
	}
}

func validateOutput(cfg *FigureConfig, r *validation.Report) {
	out := cfg.Output

	if out.Path != "" {
		ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(out.Path), "."))
		supported := false
		for _, f := range outputFormats {
			if ext == f {
				supported = true
				break
			}
		}
		if !supported {
			r.AddError(validation.Result{
				Level:       validation.LevelSchema,
				Message:     fmt.Sprintf("output.path %q has an unsupported image format", out.Path),
				ConfigPath:  "output.path",
				ActualValue: out.Path,
				Expected:    "a file extension of " + strings.Join(outputFormats, ", "),
			})
		}
	}

	if out.WidthPx != nil && *out.WidthPx <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "output.width_px must be positive",
			ConfigPath:  "output.width_px",
			ActualValue: *out.WidthPx,
			Expected:    "> 0",
		})
	}
	if out.HeightPx != nil && *out.HeightPx <= 0 {
		r.AddError(validation.Result{
			Level:       validation.LevelSchema,
			Message:     "output.height_px must be positive",
			ConfigPath:  "output.height_px",
			ActualValue: *out.HeightPx,
			Expected:    "> 0",
		})
	}
}
