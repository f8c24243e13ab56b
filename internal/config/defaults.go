package config

// Default value constants.  The geometry constants mirror the builder
// package defaults so that an empty config file reproduces library behavior.
const (
	DefaultBondStep        = 1.5
	DefaultJitterAmplitude = 0.8

	DefaultHelixRadius     = 2.0
	DefaultHelixStep       = 0.5
	DefaultResiduesPerTurn = 10.0

	DefaultCurveSamplesPerSegment = 8

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "molviz"
)

// ApplyDefaults fills every zero-value field in cfg with the project default.
// Fields already set by the caller are left unchanged so that explicit
// configuration always wins.  It must run after unmarshalling and before
// Validate().
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Geometry ──────────────────────────────────────────────────────────
	if cfg.Geometry.BondStep == 0 {
		cfg.Geometry.BondStep = DefaultBondStep
	}
	if cfg.Geometry.JitterAmplitude == 0 {
		cfg.Geometry.JitterAmplitude = DefaultJitterAmplitude
	}
	if cfg.Geometry.HelixRadius == 0 {
		cfg.Geometry.HelixRadius = DefaultHelixRadius
	}
	if cfg.Geometry.HelixStep == 0 {
		cfg.Geometry.HelixStep = DefaultHelixStep
	}
	if cfg.Geometry.ResiduesPerTurn == 0 {
		cfg.Geometry.ResiduesPerTurn = DefaultResiduesPerTurn
	}
	if cfg.Geometry.CurveSamplesPerSegment == 0 {
		cfg.Geometry.CurveSamplesPerSegment = DefaultCurveSamplesPerSegment
	}

	// ── Log ───────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}

	// ── Metrics ───────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
}
