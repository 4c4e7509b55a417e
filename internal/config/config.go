// Package config loads converter options from a YAML file.
//
// File-based configuration mirrors the CLI flag surface; flags given on
// the command line take precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options holds all converter settings that can come from a config file.
type Options struct {
	// Input is the raster image to convert.
	Input string `yaml:"input"`

	// Output is the SVG path to write. Defaults to "output.svg".
	Output string `yaml:"output"`

	// HexSize overrides the derived hexagon circumradius when positive.
	HexSize float64 `yaml:"hex_size"`

	// MaxWidth downscales wider images before sampling. 0 disables.
	MaxWidth int `yaml:"max_width"`

	// SmoothSigma applies Gaussian smoothing before sampling. 0 disables.
	SmoothSigma float64 `yaml:"smooth_sigma"`

	// Stroke is an optional polygon outline color ("#rrggbb").
	Stroke string `yaml:"stroke"`

	// StrokeWidth is the outline width in pixels. Defaults to 1.
	StrokeWidth float64 `yaml:"stroke_width"`
}

// Load reads configuration from a YAML file and applies defaults for
// unset fields.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if opts.Output == "" {
		opts.Output = "output.svg"
	}
	if opts.StrokeWidth == 0 {
		opts.StrokeWidth = 1
	}

	return &opts, nil
}
