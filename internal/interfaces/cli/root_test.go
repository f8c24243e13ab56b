package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/MolViz-Engine/pkg/errors"
)

// runCommand executes the CLI with args and returns stdout plus the Execute error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMoleculeBuildCommand(t *testing.T) {
	out, err := runCommand(t, "molecule", "build", "--smiles", "CCO", "--no-jitter")
	require.NoError(t, err)

	var model struct {
		SMILES   string `json:"smiles"`
		Fallback bool   `json:"fallback"`
		Atoms    []struct {
			Symbol string `json:"symbol"`
		} `json:"atoms"`
		Bonds []struct {
			From int `json:"from"`
			To   int `json:"to"`
		} `json:"bonds"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))

	assert.Equal(t, "CCO", model.SMILES)
	assert.False(t, model.Fallback)
	require.Len(t, model.Atoms, 3)
	assert.Len(t, model.Bonds, 2)
	assert.Equal(t, "O", model.Atoms[2].Symbol)
}

func TestMoleculeBuildFallbackOutput(t *testing.T) {
	out, err := runCommand(t, "molecule", "build", "--smiles", "c1ccccc1", "--no-jitter")
	require.NoError(t, err)

	var model struct {
		Fallback bool `json:"fallback"`
		Atoms    []struct {
			Symbol string `json:"symbol"`
		} `json:"atoms"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))
	assert.True(t, model.Fallback)
	assert.Len(t, model.Atoms, 9)
}

func TestMoleculeBuildTextOutput(t *testing.T) {
	out, err := runCommand(t, "molecule", "build", "--smiles", "CCO", "--no-jitter", "-o", "text")
	require.NoError(t, err)

	assert.Contains(t, out, "SMILES:   CCO")
	assert.Contains(t, out, "Atoms:    3")
	assert.Contains(t, out, "bond 1-2")
}

func TestMoleculeValidateCommand(t *testing.T) {
	out, err := runCommand(t, "molecule", "validate", "--smiles", "CC(=O)O")
	require.NoError(t, err)
	assert.Contains(t, out, `"valid": true`)

	_, err = runCommand(t, "molecule", "validate", "--smiles", "CC(=O")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMoleculeInvalidSMILES))
}

func TestSequenceHelixCommand(t *testing.T) {
	out, err := runCommand(t, "sequence", "helix", "--type", "dna", "--seq", "ATGC")
	require.NoError(t, err)

	var model struct {
		Kind       string `json:"kind"`
		Placements []struct {
			Code           string `json:"code"`
			ComplementCode string `json:"complement_code"`
		} `json:"placements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))

	assert.Equal(t, "dna", model.Kind)
	require.Len(t, model.Placements, 4)
	assert.Equal(t, "A", model.Placements[0].Code)
	assert.Equal(t, "T", model.Placements[0].ComplementCode)
}

func TestSequenceHelixRejectsProtein(t *testing.T) {
	_, err := runCommand(t, "sequence", "helix", "--type", "protein", "--seq", "MKVLA")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeSequenceKindInvalid))
}

func TestSequenceBackboneCommand(t *testing.T) {
	out, err := runCommand(t, "sequence", "backbone", "--seq", "MKVLA")
	require.NoError(t, err)

	var model struct {
		Sequence string `json:"sequence"`
		Curve    []struct {
			T float64 `json:"t"`
		} `json:"curve"`
		Markers []struct {
			Code string `json:"code"`
		} `json:"markers"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &model))

	assert.Equal(t, "MKVLA", model.Sequence)
	assert.Len(t, model.Markers, 5)
	assert.NotEmpty(t, model.Curve)
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := runCommand(t, "analyze", "--input", "CCO", "--type", "smiles")
	require.NoError(t, err)

	var result struct {
		Formula   string `json:"molecular_formula"`
		AtomCount int    `json:"atom_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "C2O", result.Formula)
	assert.Equal(t, 3, result.AtomCount)
}

func TestAnalyzeCommandRejectsBadType(t *testing.T) {
	_, err := runCommand(t, "analyze", "--input", "CCO", "--type", "mol2")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeMoleculeInvalidFormat))
}

func TestWeightCommand(t *testing.T) {
	out, err := runCommand(t, "weight", "--formula", "C2H6O", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "46.07")
}

func TestRequiredFlags(t *testing.T) {
	_, err := runCommand(t, "molecule", "build")
	require.Error(t, err)

	_, err = runCommand(t, "weight")
	require.Error(t, err)
}

func TestLogLevelOverride(t *testing.T) {
	// Invalid override values surface as config validation errors.
	_, err := runCommand(t, "--log-level", "verbose", "weight", "--formula", "H2O")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
