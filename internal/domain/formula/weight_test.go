package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMolecularWeight(t *testing.T) {
	tests := []struct {
		name    string
		formula string
		want    float64
	}{
		{"ethanol", "C2H6O", 46.07},
		{"water", "H2O", 18.02},
		{"carbon dioxide", "CO2", 44.01},
		{"single carbon", "C", 12.01},
		{"sodium chloride", "NaCl", 58.44},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MolecularWeight(tt.formula), 0.011)
		})
	}
}

func TestMolecularWeightUnknownElementContributesZero(t *testing.T) {
	// Unknown tokens are skipped rather than failing the whole formula.
	assert.Zero(t, MolecularWeight("Xx5"))
	assert.InDelta(t, 12.011, MolecularWeight("CXx5"), 0.011)
}
