package config

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/minimav/pitchplot/pkg/background"
	"github.com/minimav/pitchplot/pkg/figure"
	"github.com/minimav/pitchplot/pkg/heatmap"
	"github.com/minimav/pitchplot/pkg/pitch"
)

// DefaultOutputPath is used when the config names no export file.
const DefaultOutputPath = "pitch.png"

// Resolved is a figure config turned into domain values, ready for figure
// assembly.
type Resolved struct {
	Dimensions    pitch.Dimensions
	Orientation   pitch.Orientation
	Background    background.Background // nil for a transparent pitch
	Grid          *heatmap.Grid         // nil when no heatmap is configured
	ReversedRows  bool
	MarkingColour string
	MarkingWidth  float64
	OutputPath    string
	WidthPx       int
	HeightPx      int
}

// Resolve parses a loaded config into domain values. It fails on the first
// problem; Validate collects all of them instead.
func Resolve(cfg *FigureConfig) (*Resolved, error) {
	dims, err := resolveDimensions(cfg.Pitch)
	if err != nil {
		return nil, fmt.Errorf("resolving pitch dimensions: %w", err)
	}

	orientation := pitch.Horizontal
	if cfg.Orientation != "" {
		orientation, err = pitch.ParseOrientation(cfg.Orientation)
		if err != nil {
			return nil, fmt.Errorf("resolving orientation: %w", err)
		}
	}

	var bg background.Background
	if cfg.Background != nil {
		bg, err = buildBackground(cfg.Background)
		if err != nil {
			return nil, fmt.Errorf("resolving background: %w", err)
		}
	}

	var grid *heatmap.Grid
	reversed := false
	if cfg.Heatmap != nil {
		grid, err = resolveGrid(cfg.Heatmap)
		if err != nil {
			return nil, fmt.Errorf("resolving heatmap: %w", err)
		}
		reversed = cfg.Heatmap.ReversedRows
	}

	r := &Resolved{
		Dimensions:    dims,
		Orientation:   orientation,
		Background:    bg,
		Grid:          grid,
		ReversedRows:  reversed,
		MarkingColour: cfg.Markings.Colour,
		MarkingWidth:  valueOrFloat(cfg.Markings.Width, figure.DefaultMarkingWidth),
		OutputPath:    cfg.Output.Path,
		WidthPx:       valueOrInt(cfg.Output.WidthPx, figure.DefaultWidthPx),
		HeightPx:      valueOrInt(cfg.Output.HeightPx, figure.DefaultHeightPx),
	}
	if r.MarkingColour == "" {
		r.MarkingColour = figure.DefaultMarkingColour
	}
	if r.OutputPath == "" {
		r.OutputPath = DefaultOutputPath
	}
	return r, nil
}

// FigureOptions expands the resolved styling into figure assembly options.
func (r *Resolved) FigureOptions() []figure.Option {
	opts := []figure.Option{
		figure.WithOrientation(r.Orientation),
		figure.WithMarkingColour(r.MarkingColour),
		figure.WithMarkingWidth(r.MarkingWidth),
		figure.WithSize(r.WidthPx, r.HeightPx),
	}
	if r.Background != nil {
		opts = append(opts, figure.WithBackground(r.Background))
	}
	return opts
}

// HeatmapOptions expands the resolved heatmap settings into overlay options.
func (r *Resolved) HeatmapOptions() []figure.HeatmapOption {
	var opts []figure.HeatmapOption
	if r.ReversedRows {
		opts = append(opts, figure.WithReversedRows())
	}
	return opts
}

func resolveDimensions(p PitchConfig) (pitch.Dimensions, error) {
	var opts []pitch.Option
	add := func(v *float64, opt func(float64) pitch.Option) {
		if v != nil {
			opts = append(opts, opt(*v))
		}
	}
	add(p.Length, pitch.WithLength)
	add(p.Width, pitch.WithWidth)
	add(p.PenaltyBoxLength, pitch.WithPenaltyBoxLength)
	add(p.PenaltyBoxWidth, pitch.WithPenaltyBoxWidth)
	add(p.SixYardBoxLength, pitch.WithSixYardBoxLength)
	add(p.SixYardBoxWidth, pitch.WithSixYardBoxWidth)
	add(p.PenaltySpotDistance, pitch.WithPenaltySpotDistance)
	add(p.CentreCircleRadius, pitch.WithCentreCircleRadius)
	add(p.CornerArcRadius, pitch.WithCornerArcRadius)
	return pitch.New(opts...)
}

func buildBackground(b *BackgroundConfig) (background.Background, error) {
	stripes := valueOrInt(b.Stripes, background.DefaultStripeCount)
	switch normaliseKind(b.Kind) {
	case "single":
		return background.SingleColour(b.Colour)
	case "attack_defence":
		return background.AttackVsDefence(b.AttackColour, b.DefenceColour)
	case "vertical_stripes":
		return background.VerticalStripes(b.Colours, stripes)
	case "horizontal_stripes":
		return background.HorizontalStripes(b.Colours, stripes)
	case "chequered":
		rows := valueOrInt(b.Rows, background.DefaultStripeCount)
		cols := valueOrInt(b.Cols, background.DefaultStripeCount)
		return background.Chequered(b.Colours, rows, cols)
	}
	return nil, fmt.Errorf("unknown background kind %q", b.Kind)
}

func normaliseKind(kind string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(kind)), "-", "_")
}

func resolveGrid(h *HeatmapConfig) (*heatmap.Grid, error) {
	switch {
	case len(h.Values) > 0 && h.CSV != "":
		return nil, fmt.Errorf("values and csv are mutually exclusive")
	case len(h.Values) > 0:
		return heatmap.NewGrid(h.Values)
	case h.CSV != "":
		values, err := readCSVGrid(h.CSV)
		if err != nil {
			return nil, err
		}
		return heatmap.NewGrid(values)
	}
	return nil, fmt.Errorf("heatmap needs inline values or a csv path")
}

// readCSVGrid loads heatmap values from a CSV file, one record per grid row.
// Record 0 is grid row 0, the bottom row of the pitch. Fields may be "NaN"
// for cells with no data.
func readCSVGrid(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heatmap csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading heatmap csv: %w", err)
	}

	values := make([][]float64, len(records))
	for i, record := range records {
		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("heatmap csv row %d, column %d: %w", i+1, j+1, err)
			}
			row[j] = v
		}
		values[i] = row
	}
	return values, nil
}

func valueOrFloat(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

func valueOrInt(v *int, fallback int) int {
	if v != nil {
		return *v
	}
	return fallback
}
