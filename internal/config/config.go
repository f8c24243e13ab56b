// Package config defines all configuration structures for MolViz-Engine.
// No I/O or parsing logic lives here — only plain data types and validation;
// loading is in loader.go.
package config

import "fmt"

// GeometryConfig holds the layout tunables shared by the geometry builders.
type GeometryConfig struct {
	// BondStep is the x spacing between chained atoms in a molecule build.
	BondStep float64 `mapstructure:"bond_step"`
	// JitterAmplitude is the full width of the carbon y/z jitter band.
	JitterAmplitude float64 `mapstructure:"jitter_amplitude"`
	// JitterSeed seeds the jitter source; 0 selects a time-based seed.
	JitterSeed int64 `mapstructure:"jitter_seed"`
	// JitterDisabled turns carbon jitter off entirely, making molecule
	// builds byte-deterministic.
	JitterDisabled bool `mapstructure:"jitter_disabled"`

	// Helix layout.
	HelixRadius     float64 `mapstructure:"helix_radius"`
	HelixStep       float64 `mapstructure:"helix_step"`
	ResiduesPerTurn float64 `mapstructure:"residues_per_turn"`

	// CurveSamplesPerSegment controls protein backbone curve density.
	CurveSamplesPerSegment int `mapstructure:"curve_samples_per_segment"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level       string   `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format      string   `mapstructure:"format"` // "json" | "console"
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds metric registry parameters.
type MetricsConfig struct {
	Namespace       string `mapstructure:"namespace"`
	EnableGoMetrics bool   `mapstructure:"enable_go_metrics"`
}

// Config is the root configuration object.
type Config struct {
	Geometry GeometryConfig `mapstructure:"geometry"`
	Log      LogConfig      `mapstructure:"log"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

// Validate checks cross-field consistency.  It assumes ApplyDefaults has
// already run, so zero values that have defaults are no longer present.
func (c *Config) Validate() error {
	if c.Geometry.BondStep <= 0 {
		return fmt.Errorf("geometry.bond_step must be positive, got %v", c.Geometry.BondStep)
	}
	if c.Geometry.JitterAmplitude < 0 {
		return fmt.Errorf("geometry.jitter_amplitude must be non-negative, got %v", c.Geometry.JitterAmplitude)
	}
	if c.Geometry.HelixRadius <= 0 {
		return fmt.Errorf("geometry.helix_radius must be positive, got %v", c.Geometry.HelixRadius)
	}
	if c.Geometry.HelixStep <= 0 {
		return fmt.Errorf("geometry.helix_step must be positive, got %v", c.Geometry.HelixStep)
	}
	if c.Geometry.ResiduesPerTurn <= 0 {
		return fmt.Errorf("geometry.residues_per_turn must be positive, got %v", c.Geometry.ResiduesPerTurn)
	}
	if c.Geometry.CurveSamplesPerSegment < 1 {
		return fmt.Errorf("geometry.curve_samples_per_segment must be >= 1, got %d", c.Geometry.CurveSamplesPerSegment)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	return nil
}
