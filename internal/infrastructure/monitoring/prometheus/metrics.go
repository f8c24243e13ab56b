// Package prometheus registers and exposes the metric families emitted by
// the geometry builders.  Metrics live on a private registry so that
// embedding hosts can gather them without colliding with their own; this
// package deliberately ships no HTTP listener — exposing the registry over a
// network is the host's concern.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metric label values for the molecule build outcome.
const (
	OutcomeParsed   = "parsed"
	OutcomeFallback = "fallback"
)

// Metric label values for validation results.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

// Builder labels for the duration histogram.
const (
	BuilderMolecule = "molecule"
	BuilderHelix    = "helix"
	BuilderBackbone = "backbone"
)

// Config holds registry construction parameters.
type Config struct {
	// Namespace prefixes every metric name.  Defaults to "molviz".
	Namespace string `mapstructure:"namespace"`
	// EnableGoMetrics additionally registers the standard Go runtime
	// collectors on the registry.
	EnableGoMetrics bool `mapstructure:"enable_go_metrics"`
}

// Metrics bundles the metric families recorded by the visualization service.
type Metrics struct {
	registry *prometheus.Registry

	moleculeBuilds *prometheus.CounterVec
	sequenceBuilds *prometheus.CounterVec
	validations    *prometheus.CounterVec
	buildDuration  *prometheus.HistogramVec
}

// NewMetrics creates the private registry and registers all metric families.
func NewMetrics(cfg Config) *Metrics {
	ns := cfg.Namespace
	if ns == "" {
		ns = "molviz"
	}

	registry := prometheus.NewRegistry()
	if cfg.EnableGoMetrics {
		registry.MustRegister(collectors.NewGoCollector())
	}

	m := &Metrics{
		registry: registry,
		moleculeBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "molecule_builds_total",
			Help:      "SMILES builds by outcome (parsed vs fallback exemplar).",
		}, []string{"outcome"}),
		sequenceBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "sequence_builds_total",
			Help:      "Sequence geometry builds by kind.",
		}, []string{"kind"}),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "validations_total",
			Help:      "SMILES bracket-balance validations by result.",
		}, []string{"result"}),
		buildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "build_duration_seconds",
			Help:      "Wall time of one geometry build.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"builder"}),
	}

	registry.MustRegister(m.moleculeBuilds, m.sequenceBuilds, m.validations, m.buildDuration)
	return m
}

// Registry returns the private registry for embedding hosts to gather.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// ObserveMoleculeBuild records one SMILES build.
func (m *Metrics) ObserveMoleculeBuild(outcome string, elapsed time.Duration) {
	m.moleculeBuilds.WithLabelValues(outcome).Inc()
	m.buildDuration.WithLabelValues(BuilderMolecule).Observe(elapsed.Seconds())
}

// ObserveSequenceBuild records one helix or backbone build.
func (m *Metrics) ObserveSequenceBuild(builder, kind string, elapsed time.Duration) {
	m.sequenceBuilds.WithLabelValues(kind).Inc()
	m.buildDuration.WithLabelValues(builder).Observe(elapsed.Seconds())
}

// ObserveValidation records one bracket-balance validation.
func (m *Metrics) ObserveValidation(valid bool) {
	result := ResultValid
	if !valid {
		result = ResultInvalid
	}
	m.validations.WithLabelValues(result).Inc()
}
