package sequence

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolViz-Engine/pkg/errors"
)

func TestBuildHelixTenResiduesOneTurn(t *testing.T) {
	model, err := BuildHelix("ATGCATGCAT", KindDNA, HelixConfig{})
	require.NoError(t, err)

	assert.Equal(t, "dna", model.Kind)
	assert.Equal(t, 2.0, model.Radius)
	assert.InDelta(t, 5.0, model.Height, 1e-9, "10 residues * 0.5 step")
	assert.InDelta(t, 1.0, model.Turns, 1e-9, "10 residues / 10 per turn")
	require.Len(t, model.Placements, 10)

	for i, p := range model.Placements {
		frac := float64(i) / 10.0
		assert.InDelta(t, frac*2*math.Pi, p.Angle, 1e-9, "placement %d", i)
		assert.InDelta(t, frac*5.0-2.5, p.Height, 1e-9, "placement %d", i)

		// Primary sphere sits on the helix cylinder at the placement angle.
		assert.InDelta(t, 2.0*math.Cos(p.Angle), p.Primary.Center.X, 1e-9)
		assert.InDelta(t, p.Height, p.Primary.Center.Y, 1e-9)
		assert.InDelta(t, 2.0*math.Sin(p.Angle), p.Primary.Center.Z, 1e-9)
	}
}

func TestBuildHelixComplementOppositeStrand(t *testing.T) {
	model, err := BuildHelix("A", KindDNA, HelixConfig{})
	require.NoError(t, err)
	require.Len(t, model.Placements, 1)

	p := model.Placements[0]
	assert.Equal(t, "A", p.Code)
	assert.Equal(t, "T", p.ComplementCode)
	require.NotNil(t, p.Complement)
	require.NotNil(t, p.HydrogenBond)

	// The complement sits at angle+π: mirrored through the axis, same height.
	assert.InDelta(t, -p.Primary.Center.X, p.Complement.Center.X, 1e-9)
	assert.InDelta(t, p.Primary.Center.Y, p.Complement.Center.Y, 1e-9)
	assert.InDelta(t, -p.Primary.Center.Z, p.Complement.Center.Z, 1e-9)

	assert.Equal(t, p.Primary.Center, p.HydrogenBond.Start)
	assert.Equal(t, p.Complement.Center, p.HydrogenBond.End)
}

func TestBuildHelixPairingTables(t *testing.T) {
	dna, err := BuildHelix("ATGC", KindDNA, HelixConfig{})
	require.NoError(t, err)
	require.Len(t, dna.Placements, 4)
	assert.Equal(t, "T", dna.Placements[0].ComplementCode)
	assert.Equal(t, "A", dna.Placements[1].ComplementCode)
	assert.Equal(t, "C", dna.Placements[2].ComplementCode)
	assert.Equal(t, "G", dna.Placements[3].ComplementCode)

	rna, err := BuildHelix("AUGC", KindRNA, HelixConfig{})
	require.NoError(t, err)
	require.Len(t, rna.Placements, 4)
	assert.Equal(t, "U", rna.Placements[0].ComplementCode)
	assert.Equal(t, "A", rna.Placements[1].ComplementCode)
}

func TestBuildHelixSkipsUnrecognizedResidues(t *testing.T) {
	model, err := BuildHelix("AXT", KindDNA, HelixConfig{})
	require.NoError(t, err, "unknown residues never fail the build")
	require.Len(t, model.Placements, 2)
	assert.Equal(t, 0, model.Placements[0].Index)
	assert.Equal(t, 2, model.Placements[1].Index)
}

func TestBuildHelixThymineNotInRNAAlphabet(t *testing.T) {
	model, err := BuildHelix("AT", KindRNA, HelixConfig{})
	require.NoError(t, err)
	require.Len(t, model.Placements, 1)
	assert.Equal(t, "A", model.Placements[0].Code)
}

func TestBuildHelixAllUnknownKeepsBackbone(t *testing.T) {
	model, err := BuildHelix("XXXX", KindDNA, HelixConfig{})
	require.NoError(t, err)
	assert.Empty(t, model.Placements)

	// The scaffold cylinders always span the full height at ± radius.
	assert.Equal(t, 2.0, model.Backbone[0].Start.X)
	assert.Equal(t, -2.0, model.Backbone[1].Start.X)
	assert.InDelta(t, -model.Height/2, model.Backbone[0].Start.Y, 1e-9)
	assert.InDelta(t, model.Height/2, model.Backbone[0].End.Y, 1e-9)
}

func TestBuildHelixNormalizesInput(t *testing.T) {
	model, err := BuildHelix("  atgc ", KindDNA, HelixConfig{})
	require.NoError(t, err)
	assert.Equal(t, "ATGC", model.Sequence)
	assert.Len(t, model.Placements, 4)
}

func TestBuildHelixErrors(t *testing.T) {
	_, err := BuildHelix("", KindDNA, HelixConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSequenceEmpty))

	_, err = BuildHelix("   ", KindDNA, HelixConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSequenceEmpty))

	_, err = BuildHelix("ATGC", KindProtein, HelixConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSequenceKindInvalid))

	_, err = BuildHelix("ATGC", Kind("chromosome"), HelixConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSequenceKindInvalid))
}

func TestBuildHelixConfigOverrides(t *testing.T) {
	model, err := BuildHelix("ATGCA", KindDNA, HelixConfig{
		Radius:          3.0,
		Step:            1.0,
		ResiduesPerTurn: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 3.0, model.Radius)
	assert.InDelta(t, 5.0, model.Height, 1e-9)
	assert.InDelta(t, 1.0, model.Turns, 1e-9)
}

func TestBuildHelixDeterministic(t *testing.T) {
	first, err := BuildHelix("ATGCATGC", KindDNA, HelixConfig{})
	require.NoError(t, err)
	second, err := BuildHelix("ATGCATGC", KindDNA, HelixConfig{})
	require.NoError(t, err)

	require.Len(t, second.Placements, len(first.Placements))
	for i := range first.Placements {
		assert.Equal(t, first.Placements[i].Primary.Center, second.Placements[i].Primary.Center)
	}
}
