package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/minimav/pitchplot/pkg/config"
	"github.com/minimav/pitchplot/pkg/figure"
	"github.com/minimav/pitchplot/pkg/validation"
)

// configPath accepts either a YAML file or a directory holding pitch.yaml.
func configPath(arg string) string {
	if info, err := os.Stat(arg); err == nil && info.IsDir() {
		return filepath.Join(arg, config.DefaultFileName)
	}
	return arg
}

// loadAndValidate loads the config and collects every validation finding.
func loadAndValidate(arg string) (*config.FigureConfig, *validation.Report, error) {
	cfg, err := config.Load(configPath(arg))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, config.Validate(cfg), nil
}

// buildFigure resolves the config and assembles the figure, heatmap overlay
// included.
func buildFigure(cfg *config.FigureConfig) (*figure.Figure, *config.Resolved, error) {
	resolved, err := config.Resolve(cfg)
	if err != nil {
		return nil, nil, err
	}
	fig, err := figure.New(resolved.Dimensions, resolved.FigureOptions()...)
	if err != nil {
		return nil, nil, err
	}
	if resolved.Grid != nil {
		if err := fig.AddHeatmap(resolved.Grid, resolved.HeatmapOptions()...); err != nil {
			return nil, nil, err
		}
	}
	return fig, resolved, nil
}

func runValidate(arg string) error {
	_, report, err := loadAndValidate(arg)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runRender(arg, output string) error {
	cfg, report, err := loadAndValidate(arg)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("config has validation errors")
	}

	fig, resolved, err := buildFigure(cfg)
	if err != nil {
		return err
	}

	path := resolved.OutputPath
	if output != "" {
		path = output
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := fig.Save(path); err != nil {
		return err
	}

	fmt.Printf("Rendered %d shapes to %s (%dx%d px)\n",
		fig.Diagram.ShapeCount(), path, fig.Width, fig.Height)
	return nil
}

func runShapes(arg string) error {
	cfg, report, err := loadAndValidate(arg)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return fmt.Errorf("config has validation errors")
	}

	fig, _, err := buildFigure(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(fig.Diagram)
}
