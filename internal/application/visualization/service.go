// Package visualization is the application-layer service that turns raw
// request inputs (SMILES strings, residue sequences) into renderer-agnostic
// geometry models.  It owns the jitter seed policy, logging, and metrics;
// all chemistry/geometry logic lives in the domain packages.
package visualization

import (
	"context"
	"math/rand"
	"time"

	"github.com/turtacn/MolViz-Engine/internal/config"
	"github.com/turtacn/MolViz-Engine/internal/domain/formula"
	"github.com/turtacn/MolViz-Engine/internal/domain/sequence"
	"github.com/turtacn/MolViz-Engine/internal/domain/smiles"
	"github.com/turtacn/MolViz-Engine/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/MolViz-Engine/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/MolViz-Engine/pkg/errors"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Input type tags accepted by Analyze.
const (
	InputSMILES  = "smiles"
	InputInChI   = "inchi"
	InputFormula = "formula"
)

// AnalysisResult is the plain-data outcome of one Analyze call.
type AnalysisResult struct {
	Input     string `json:"input"`
	InputType string `json:"input_type"`

	Formula   string         `json:"molecular_formula,omitempty"`
	Weight    float64        `json:"molecular_weight"`
	AtomCount int            `json:"atom_count,omitempty"`
	Atoms     map[string]int `json:"atom_counts,omitempty"`

	// Properties is populated for SMILES input only.
	Properties *formula.Properties `json:"properties,omitempty"`
}

// Service orchestrates the geometry builders and analysis utilities behind a
// single entry point.  A Service is safe for concurrent use: every build
// call allocates its own model and, when jitter is enabled, its own
// pseudo-random source.
type Service struct {
	geo     config.GeometryConfig
	logger  logging.Logger
	metrics *prometheus.Metrics
}

// NewService constructs a Service.  metrics may be nil to disable recording;
// a nil logger is replaced with the no-op implementation.
func NewService(geo config.GeometryConfig, logger logging.Logger, metrics *prometheus.Metrics) *Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Service{
		geo:     geo,
		logger:  logger.Named("visualization"),
		metrics: metrics,
	}
}

// jitterSource returns a fresh rand.Rand for one build, or nil when jitter
// is disabled.  A fresh source per call keeps concurrent and repeated builds
// independently reproducible for a fixed seed.
func (s *Service) jitterSource() *rand.Rand {
	if s.geo.JitterDisabled {
		return nil
	}
	seed := s.geo.JitterSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ─────────────────────────────────────────────────────────────────────────────
// Molecule operations
// ─────────────────────────────────────────────────────────────────────────────

// BuildMolecule parses input as SMILES and returns a renderable molecule
// model.  It never fails: unparseable input yields the fallback exemplar.
// Validation is a separate pre-check (ValidateSMILES) by design, so even
// bracket-unbalanced input is accepted here.
func (s *Service) BuildMolecule(_ context.Context, input string) *geometry.MoleculeModel {
	start := time.Now()

	builder := smiles.NewBuilder(smiles.BuilderConfig{
		BondStep:        s.geo.BondStep,
		JitterAmplitude: s.geo.JitterAmplitude,
	}, s.jitterSource())

	mol := builder.Build(input)
	model := mol.ToModel()

	outcome := prometheus.OutcomeParsed
	if model.Fallback {
		outcome = prometheus.OutcomeFallback
		s.logger.Warn("no atoms recognized, substituted fallback exemplar",
			logging.String("smiles", input))
	}
	if s.metrics != nil {
		s.metrics.ObserveMoleculeBuild(outcome, time.Since(start))
	}

	s.logger.Debug("molecule built",
		logging.String("smiles", input),
		logging.Int("atoms", model.AtomCount()),
		logging.Int("bonds", model.BondCount()),
		logging.Bool("fallback", model.Fallback))

	return model
}

// ValidateSMILES reports whether input passes the bracket-balance pre-check.
func (s *Service) ValidateSMILES(input string) bool {
	valid := smiles.ValidateSMILES(input)
	if s.metrics != nil {
		s.metrics.ObserveValidation(valid)
	}
	return valid
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence operations
// ─────────────────────────────────────────────────────────────────────────────

// BuildHelix builds a double-helix model for a DNA or RNA sequence.  kind
// must be "dna" or "rna"; residue-level problems inside the sequence degrade
// silently per placement.
func (s *Service) BuildHelix(_ context.Context, seq, kind string) (*geometry.HelixModel, error) {
	start := time.Now()

	k, ok := sequence.ParseKind(kind)
	if !ok || k == sequence.KindProtein {
		return nil, errors.New(errors.CodeSequenceKindInvalid, "helix builder accepts dna or rna").
			WithDetail("kind=" + kind)
	}

	model, err := sequence.BuildHelix(seq, k, sequence.HelixConfig{
		Radius:          s.geo.HelixRadius,
		Step:            s.geo.HelixStep,
		ResiduesPerTurn: s.geo.ResiduesPerTurn,
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveSequenceBuild(prometheus.BuilderHelix, string(k), time.Since(start))
	}
	s.logger.Debug("helix built",
		logging.String("kind", string(k)),
		logging.Int("residues", len(model.Sequence)),
		logging.Int("placements", len(model.Placements)))

	return model, nil
}

// BuildBackbone builds the protein backbone model for an amino-acid
// sequence.  Unknown residue codes are colored with the neutral default,
// never rejected.
func (s *Service) BuildBackbone(_ context.Context, seq string) (*geometry.BackboneModel, error) {
	start := time.Now()

	model, err := sequence.BuildBackbone(seq, sequence.BackboneConfig{
		SamplesPerSegment: s.geo.CurveSamplesPerSegment,
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ObserveSequenceBuild(prometheus.BuilderBackbone, string(sequence.KindProtein), time.Since(start))
	}
	s.logger.Debug("backbone built",
		logging.Int("residues", len(model.Sequence)),
		logging.Int("curve_points", len(model.Curve)))

	return model, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Analysis operations
// ─────────────────────────────────────────────────────────────────────────────

// MolecularWeight computes the summed atomic weight of a molecular formula,
// rounded to 2 decimal places.
func (s *Service) MolecularWeight(f string) float64 {
	return formula.MolecularWeight(f)
}

// Analyze dispatches on inputType ("smiles", "inchi", "formula") and returns
// a composition/weight report.  Only an unsupported inputType or a
// non-InChI string under "inchi" is an error; chemistry-level oddities
// produce best-effort numbers.
func (s *Service) Analyze(_ context.Context, input, inputType string) (*AnalysisResult, error) {
	result := &AnalysisResult{Input: input, InputType: inputType}

	switch inputType {
	case InputSMILES:
		comp := formula.AnalyzeComposition(input)
		props := formula.EstimateProperties(input)
		result.Formula = comp.Formula
		result.Weight = comp.Weight
		result.AtomCount = comp.AtomCount
		result.Atoms = comp.AtomCounts
		result.Properties = &props

	case InputInChI:
		if !formula.ValidateInChI(input) {
			return nil, errors.New(errors.CodeMoleculeInvalidInChI, "input is not an InChI string")
		}
		if f := formula.FormulaFromInChI(input); f != "" {
			result.Formula = f
			result.Weight = formula.MolecularWeight(f)
		}

	case InputFormula:
		result.Formula = input
		result.Weight = formula.MolecularWeight(input)

	default:
		return nil, errors.New(errors.CodeMoleculeInvalidFormat, "unsupported input type").
			WithDetail("input_type=" + inputType)
	}

	return result, nil
}
