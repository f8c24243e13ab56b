package smiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSMILES(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple chain", "CCO", true},
		{"balanced branch", "CC(=O)O", true},
		{"balanced square brackets", "C[N+](C)(C)C", true},
		{"nested brackets", "CC(C(=O)[O-])N", true},
		{"unclosed paren", "CC(=O", false},
		{"unopened paren", "CC)=O", false},
		{"close before open", ")(", false},
		{"square close before open", "]C[", false},
		{"unclosed square", "[CH3", false},
		{"empty", "", false},
		{"aromatic ring", "c1ccccc1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateSMILES(tt.input))
		})
	}
}
