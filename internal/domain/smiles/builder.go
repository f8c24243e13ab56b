package smiles

import (
	"math/rand"
	"strings"

	"github.com/turtacn/MolViz-Engine/pkg/types/common"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Default layout constants.  BondStep is the fixed x spacing between chained
// atoms; JitterAmplitude bounds the pseudo-random y/z offset applied to
// carbon atoms to suggest non-linear geometry.
const (
	DefaultBondStep        = 1.5
	DefaultJitterAmplitude = 0.8
)

// structuralPunctuation strips the SMILES syntax that the simplified path
// does not reconstruct: bracket-atom notation, branching, and explicit
// double bonds.
var structuralPunctuation = strings.NewReplacer(
	"[", "",
	"]", "",
	"(", "",
	")", "",
	"=", "",
)

// BuilderConfig carries the layout tunables for a Builder.
type BuilderConfig struct {
	// BondStep is the x distance between consecutive chain atoms.
	// Zero means DefaultBondStep.
	BondStep float64
	// JitterAmplitude is the full width of the carbon y/z jitter band.
	// Zero means DefaultJitterAmplitude.
	JitterAmplitude float64
}

// Builder converts SMILES strings into Molecule aggregates.  A Builder is
// cheap to construct and carries no per-call state; construct one per parse
// when reproducibility of the jitter stream matters.
type Builder struct {
	step   float64
	jitter float64

	// rng feeds the carbon jitter.  A nil rng disables jitter entirely,
	// which makes builds byte-deterministic for tests.
	rng *rand.Rand
}

// NewBuilder returns a Builder with the given layout config and jitter
// source.  Pass a nil rng to disable jitter.
func NewBuilder(cfg BuilderConfig, rng *rand.Rand) *Builder {
	step := cfg.BondStep
	if step == 0 {
		step = DefaultBondStep
	}
	jitter := cfg.JitterAmplitude
	if jitter == 0 {
		jitter = DefaultJitterAmplitude
	}
	return &Builder{step: step, jitter: jitter, rng: rng}
}

// Build parses smiles and returns a fresh Molecule.  It never fails: input
// from which no atom can be recognized (empty strings, lowercase-only
// aromatic notation) yields the fixed fallback exemplar instead of an empty
// molecule, so callers always receive a non-degenerate, renderable structure.
func (b *Builder) Build(smiles string) *Molecule {
	mol := &Molecule{
		BaseEntity: common.NewBaseEntity(),
		SMILES:     smiles,
	}

	simplified := structuralPunctuation.Replace(smiles)

	for i := 0; i < len(simplified); i++ {
		c := simplified[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		symbol := string(c)
		// Greedy two-letter extension covers halogens like Cl and Br.
		if i+1 < len(simplified) && simplified[i+1] >= 'a' && simplified[i+1] <= 'z' {
			symbol += string(simplified[i+1])
			i++
		}

		index := len(mol.Atoms)
		mol.Atoms = append(mol.Atoms, newAtom(index, symbol, b.position(index, symbol)))

		// Chain-only connectivity: a single bond back to the previous atom.
		if index > 0 {
			mol.Bonds = append(mol.Bonds, Bond{From: index - 1, To: index, Order: 1})
		}
	}

	if len(mol.Atoms) == 0 {
		return b.fallback(smiles)
	}
	return mol
}

// position lays atoms out along increasing x.  Carbon atoms additionally get
// a small y/z jitter when a jitter source is configured.
func (b *Builder) position(index int, symbol string) geometry.Vec3 {
	pos := geometry.Vec3{X: float64(index) * b.step}
	if symbol == "C" && b.rng != nil {
		pos.Y = (b.rng.Float64() - 0.5) * b.jitter
		pos.Z = (b.rng.Float64() - 0.5) * b.jitter
	}
	return pos
}
