// Package element provides the static element lookup table used by every
// geometry builder: covalent radius (Å), display color, and atomic weight
// (g/mol) keyed by element symbol.
//
// The table is deliberately lenient: unknown symbols resolve to a neutral
// default entry instead of an error, so that malformed or exotic SMILES
// still produce a renderable structure.
package element

import (
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Element is one immutable row of the lookup table.
type Element struct {
	Symbol string
	// Radius is the covalent radius in ångströms, used directly as the
	// rendered sphere radius.
	Radius float64
	Color  geometry.RGB
	// Weight is the standard atomic weight in g/mol.
	Weight float64
}

// Default is the entry returned for symbols missing from the table: a
// mid-sized neutral gray sphere with zero weight.  Callers must tolerate it.
var Default = Element{
	Symbol: "?",
	Radius: 0.65,
	Color:  geometry.RGB{R: 0.7, G: 0.7, B: 0.7},
	Weight: 0,
}

// table covers the elements common in drug-like molecules; colors follow the
// CPK convention.
var table = map[string]Element{
	"H":  {Symbol: "H", Radius: 0.31, Color: geometry.RGB{R: 1.0, G: 1.0, B: 1.0}, Weight: 1.008},
	"C":  {Symbol: "C", Radius: 0.76, Color: geometry.RGB{R: 0.2, G: 0.2, B: 0.2}, Weight: 12.011},
	"N":  {Symbol: "N", Radius: 0.71, Color: geometry.RGB{R: 0.19, G: 0.31, B: 0.97}, Weight: 14.007},
	"O":  {Symbol: "O", Radius: 0.66, Color: geometry.RGB{R: 1.0, G: 0.05, B: 0.05}, Weight: 15.999},
	"F":  {Symbol: "F", Radius: 0.57, Color: geometry.RGB{R: 0.56, G: 0.88, B: 0.31}, Weight: 18.998},
	"P":  {Symbol: "P", Radius: 1.07, Color: geometry.RGB{R: 1.0, G: 0.5, B: 0.0}, Weight: 30.974},
	"S":  {Symbol: "S", Radius: 1.05, Color: geometry.RGB{R: 1.0, G: 1.0, B: 0.19}, Weight: 32.065},
	"Cl": {Symbol: "Cl", Radius: 1.02, Color: geometry.RGB{R: 0.12, G: 0.94, B: 0.12}, Weight: 35.453},
	"Br": {Symbol: "Br", Radius: 1.20, Color: geometry.RGB{R: 0.65, G: 0.16, B: 0.16}, Weight: 79.904},
	"I":  {Symbol: "I", Radius: 1.39, Color: geometry.RGB{R: 0.58, G: 0.0, B: 0.58}, Weight: 126.904},
	"Na": {Symbol: "Na", Radius: 1.66, Color: geometry.RGB{R: 0.67, G: 0.36, B: 0.95}, Weight: 22.990},
	"K":  {Symbol: "K", Radius: 2.03, Color: geometry.RGB{R: 0.56, G: 0.25, B: 0.83}, Weight: 39.098},
	"Mg": {Symbol: "Mg", Radius: 1.41, Color: geometry.RGB{R: 0.54, G: 1.0, B: 0.0}, Weight: 24.305},
	"Ca": {Symbol: "Ca", Radius: 1.76, Color: geometry.RGB{R: 0.24, G: 1.0, B: 0.0}, Weight: 40.078},
	"Fe": {Symbol: "Fe", Radius: 1.32, Color: geometry.RGB{R: 0.88, G: 0.4, B: 0.2}, Weight: 55.845},
	"Zn": {Symbol: "Zn", Radius: 1.22, Color: geometry.RGB{R: 0.49, G: 0.5, B: 0.69}, Weight: 65.409},
	"Cu": {Symbol: "Cu", Radius: 1.32, Color: geometry.RGB{R: 0.78, G: 0.5, B: 0.2}, Weight: 63.546},
	"Mn": {Symbol: "Mn", Radius: 1.39, Color: geometry.RGB{R: 0.61, G: 0.48, B: 0.78}, Weight: 54.938},
	"Co": {Symbol: "Co", Radius: 1.26, Color: geometry.RGB{R: 0.94, G: 0.56, B: 0.63}, Weight: 58.933},
	"Ni": {Symbol: "Ni", Radius: 1.24, Color: geometry.RGB{R: 0.31, G: 0.82, B: 0.31}, Weight: 58.693},
}

// Lookup returns the table entry for symbol, or Default when the symbol is
// unknown.  The second return value reports whether the symbol was found.
func Lookup(symbol string) (Element, bool) {
	if e, ok := table[symbol]; ok {
		return e, true
	}
	return Default, false
}

// Weight returns the atomic weight for symbol, or 0 for unknown symbols.
func Weight(symbol string) float64 {
	e, _ := Lookup(symbol)
	return e.Weight
}

// Known reports whether symbol is present in the table.
func Known(symbol string) bool {
	_, ok := table[symbol]
	return ok
}

// Symbols returns all known element symbols in unspecified order.
func Symbols() []string {
	out := make([]string, 0, len(table))
	for s := range table {
		out = append(out, s)
	}
	return out
}
