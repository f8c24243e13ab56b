package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  Kind
		ok    bool
	}{
		{"dna", KindDNA, true},
		{"DNA", KindDNA, true},
		{" rna ", KindRNA, true},
		{"protein", KindProtein, true},
		{"peptide", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseKind(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComplementOf(t *testing.T) {
	tests := []struct {
		kind Kind
		code byte
		want byte
		ok   bool
	}{
		{KindDNA, 'A', 'T', true},
		{KindDNA, 'T', 'A', true},
		{KindDNA, 'G', 'C', true},
		{KindDNA, 'C', 'G', true},
		{KindDNA, 'U', 0, false},
		{KindRNA, 'A', 'U', true},
		{KindRNA, 'U', 'A', true},
		{KindRNA, 'T', 0, false},
		{KindDNA, 'X', 0, false},
		{KindProtein, 'A', 0, false},
	}

	for _, tt := range tests {
		got, ok := complementOf(tt.kind, tt.code)
		assert.Equal(t, tt.ok, ok, "kind=%s code=%c", tt.kind, tt.code)
		if tt.ok {
			assert.Equal(t, tt.want, got, "kind=%s code=%c", tt.kind, tt.code)
		}
	}
}

func TestBaseColorFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, baseColors['A'], baseColor('A'))
	assert.Equal(t, defaultResidueColor, baseColor('X'))
}

func TestAminoColorFallsBackToNeutral(t *testing.T) {
	assert.Equal(t, aminoColors['W'], aminoColor('W'))
	assert.Equal(t, defaultResidueColor, aminoColor('Z'))
}

func TestIsCanonicalAmino(t *testing.T) {
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY") {
		assert.True(t, IsCanonicalAmino(c), "%c", c)
	}
	assert.False(t, IsCanonicalAmino('B'))
	assert.False(t, IsCanonicalAmino('Z'))
	assert.False(t, IsCanonicalAmino('a'))
}
