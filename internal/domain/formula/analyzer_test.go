package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeComposition(t *testing.T) {
	comp := AnalyzeComposition("CCO")

	assert.Equal(t, map[string]int{"C": 2, "O": 1}, comp.AtomCounts)
	assert.Equal(t, "C2O", comp.Formula)
	assert.Equal(t, 3, comp.AtomCount)
	assert.InDelta(t, 40.02, comp.Weight, 0.011)
}

func TestAnalyzeCompositionStripsNoise(t *testing.T) {
	// Branch parens, the double bond, and ring digits are all noise.
	comp := AnalyzeComposition("CC(=O)Cl")

	assert.Equal(t, map[string]int{"C": 2, "O": 1, "Cl": 1}, comp.AtomCounts)
	assert.Equal(t, "C2ClO", comp.Formula, "symbols sorted alphabetically, count 1 omitted")
	assert.Equal(t, 4, comp.AtomCount)
}

func TestAnalyzeCompositionLowercaseOnlyIsEmpty(t *testing.T) {
	comp := AnalyzeComposition("c1ccccc1")

	assert.Empty(t, comp.AtomCounts)
	assert.Empty(t, comp.Formula)
	assert.Zero(t, comp.Weight)
	assert.Zero(t, comp.AtomCount)
}

func TestEstimateProperties(t *testing.T) {
	tests := []struct {
		name          string
		smiles        string
		aromaticRings int
		hydroxyl      int
		logP          float64
		drugLike      bool
	}{
		{"ethanol", "CCO", 0, 1, 0.5, true},
		{"benzene aromatic", "c1ccccc1", 1, 0, 3.0, true},
		{"benzene kekule", "C1=CC=CC=C1", 1, 0, 3.0, true},
		{"hexane no oxygen", "CCCCCC", 0, 0, 3.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EstimateProperties(tt.smiles)
			assert.Equal(t, tt.aromaticRings, p.AromaticRings)
			assert.Equal(t, tt.hydroxyl, p.HydroxylGroups)
			assert.InDelta(t, tt.logP, p.EstimatedLogP, 0.011)
			assert.Equal(t, tt.drugLike, p.DrugLike)
		})
	}
}

func TestEstimatePropertiesHeteroatomCounts(t *testing.T) {
	p := EstimateProperties("NCCSCl")

	assert.Equal(t, 1, p.NitrogenCount)
	assert.Equal(t, 1, p.SulfurCount)
	// Cl counts once as a halogen; the uppercase C of Cl is not a halogen.
	assert.GreaterOrEqual(t, p.HalogenCount, 1)
}

func TestEstimatePropertiesLipinskiViolations(t *testing.T) {
	// A long carbon chain with no oxygen pushes logP past 5.
	p := EstimateProperties("CCCCCCCCCCCC")

	assert.Greater(t, p.EstimatedLogP, 5.0)
	assert.Equal(t, 1, p.LipinskiViolations)
	assert.True(t, p.DrugLike, "one violation is still drug-like")
}

func TestValidateInChI(t *testing.T) {
	assert.True(t, ValidateInChI("InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3"))
	assert.True(t, ValidateInChI("InChI="))
	assert.False(t, ValidateInChI("C2H6O"))
	assert.False(t, ValidateInChI(""))
	assert.False(t, ValidateInChI("inchi=1S/C2H6O"))
}

func TestFormulaFromInChI(t *testing.T) {
	f := FormulaFromInChI("InChI=1S/C2H6O/c1-2-3/h3H,2H2,1H3")
	require.Equal(t, "C2H6O", f)

	assert.Empty(t, FormulaFromInChI("InChI=1S"))
	assert.Empty(t, FormulaFromInChI(""))
}
