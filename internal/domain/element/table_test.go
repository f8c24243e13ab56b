package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnownSymbols(t *testing.T) {
	tests := []struct {
		symbol string
		weight float64
		radius float64
	}{
		{"H", 1.008, 0.31},
		{"C", 12.011, 0.76},
		{"O", 15.999, 0.66},
		{"Cl", 35.453, 1.02},
		{"Br", 79.904, 1.20},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			e, ok := Lookup(tt.symbol)
			require.True(t, ok)
			assert.Equal(t, tt.symbol, e.Symbol)
			assert.Equal(t, tt.weight, e.Weight)
			assert.Equal(t, tt.radius, e.Radius)
		})
	}
}

func TestLookupUnknownSymbolReturnsDefault(t *testing.T) {
	e, ok := Lookup("Xx")
	assert.False(t, ok)
	assert.Equal(t, Default, e)
	assert.Equal(t, "?", e.Symbol)
	assert.Zero(t, e.Weight)
	assert.Positive(t, e.Radius, "default entry must still be renderable")
}

func TestWeight(t *testing.T) {
	assert.Equal(t, 12.011, Weight("C"))
	assert.Zero(t, Weight("Zz"))
	assert.Zero(t, Weight(""))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known("Fe"))
	assert.False(t, Known("fe"), "lookup is case-sensitive")
	assert.False(t, Known("?"))
}

func TestSymbolsCoversTable(t *testing.T) {
	symbols := Symbols()
	assert.Len(t, symbols, 20)
	for _, s := range symbols {
		assert.True(t, Known(s))
	}
}
