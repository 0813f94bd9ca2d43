// Package config loads pitch figure descriptions from YAML and resolves
// them into domain values for figure assembly.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file LoadProject looks for.
const DefaultFileName = "pitch.yaml"

// FigureConfig describes one pitch figure: measurement overrides, styling,
// an optional background pattern and an optional heatmap overlay.
type FigureConfig struct {
	Pitch       PitchConfig       `yaml:"pitch" json:"pitch"`
	Orientation string            `yaml:"orientation" json:"orientation,omitempty"`
	Markings    MarkingsConfig    `yaml:"markings" json:"markings"`
	Background  *BackgroundConfig `yaml:"background" json:"background,omitempty"`
	Heatmap     *HeatmapConfig    `yaml:"heatmap" json:"heatmap,omitempty"`
	Output      OutputConfig      `yaml:"output" json:"output"`
}

// PitchConfig overrides pitch measurements in metres. Nil fields keep the
// regulation-derived defaults.
type PitchConfig struct {
	Length              *float64 `yaml:"length" json:"length,omitempty"`
	Width               *float64 `yaml:"width" json:"width,omitempty"`
	PenaltyBoxLength    *float64 `yaml:"penalty_box_length" json:"penalty_box_length,omitempty"`
	PenaltyBoxWidth     *float64 `yaml:"penalty_box_width" json:"penalty_box_width,omitempty"`
	SixYardBoxLength    *float64 `yaml:"six_yard_box_length" json:"six_yard_box_length,omitempty"`
	SixYardBoxWidth     *float64 `yaml:"six_yard_box_width" json:"six_yard_box_width,omitempty"`
	PenaltySpotDistance *float64 `yaml:"penalty_spot_distance" json:"penalty_spot_distance,omitempty"`
	CentreCircleRadius  *float64 `yaml:"centre_circle_radius" json:"centre_circle_radius,omitempty"`
	CornerArcRadius     *float64 `yaml:"corner_arc_radius" json:"corner_arc_radius,omitempty"`
}

// MarkingsConfig styles the pitch markings.
type MarkingsConfig struct {
	Colour string   `yaml:"colour" json:"colour,omitempty"`
	Width  *float64 `yaml:"width" json:"width,omitempty"`
}

// BackgroundConfig selects one background variant by kind: "single",
// "attack_defence", "vertical_stripes", "horizontal_stripes" or "chequered".
type BackgroundConfig struct {
	Kind          string   `yaml:"kind" json:"kind"`
	Colour        string   `yaml:"colour" json:"colour,omitempty"`
	AttackColour  string   `yaml:"attack_colour" json:"attack_colour,omitempty"`
	DefenceColour string   `yaml:"defence_colour" json:"defence_colour,omitempty"`
	Colours       []string `yaml:"colours" json:"colours,omitempty"`
	Stripes       *int     `yaml:"stripes" json:"stripes,omitempty"`
	Rows          *int     `yaml:"rows" json:"rows,omitempty"`
	Cols          *int     `yaml:"cols" json:"cols,omitempty"`
}

// HeatmapConfig supplies overlay data, either inline rows or a CSV file with
// one record per grid row. Row 0 is the bottom row of the pitch unless
// reversed.
type HeatmapConfig struct {
	Values       [][]float64 `yaml:"values" json:"values,omitempty"`
	CSV          string      `yaml:"csv" json:"csv,omitempty"`
	ReversedRows bool        `yaml:"reversed_rows" json:"reversed_rows,omitempty"`
}

// OutputConfig sets the export target. The format follows the path
// extension.
type OutputConfig struct {
	Path     string `yaml:"path" json:"path,omitempty"`
	WidthPx  *int   `yaml:"width_px" json:"width_px,omitempty"`
	HeightPx *int   `yaml:"height_px" json:"height_px,omitempty"`
}

// Load reads a figure config from a YAML file.
func Load(path string) (*FigureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading figure config: %w", err)
	}

	var cfg FigureConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing figure config YAML: %w", err)
	}

	return &cfg, nil
}

// LoadProject loads a figure config from a project directory. It looks for
// pitch.yaml in the given directory.
func LoadProject(projectDir string) (*FigureConfig, error) {
	return Load(filepath.Join(projectDir, DefaultFileName))
}
