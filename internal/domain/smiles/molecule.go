// Package smiles turns SMILES strings into chemically-plausible 3-D
// atom/bond models.
//
// The parsing here is heuristic, not grammar-based: branch topology, ring
// closures, and explicit bond orders present in SMILES syntax are not
// reconstructed.  The builder's contract is "always produce a renderable
// structure", so malformed chemical input degrades silently instead of
// raising errors; the only hard rejection point is the separate
// ValidateSMILES pre-check.
package smiles

import (
	"github.com/turtacn/MolViz-Engine/internal/domain/element"
	"github.com/turtacn/MolViz-Engine/pkg/types/common"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Atom is one parsed atom.  Index is 0-based, assigned in parse order, and
// never reused within one parse.
type Atom struct {
	Index    int
	Symbol   string
	Position geometry.Vec3
	Radius   float64
	Color    geometry.RGB
}

// Bond connects two atoms of the same molecule by index.  Order is 1, 2,
// or 3; the simplified chain path only ever emits order 1.
type Bond struct {
	From  int
	To    int
	Order int
}

// Molecule is the aggregate produced by one Build call.  It owns its atoms
// (insertion order = parse order = default connectivity chain) and bonds,
// and is never mutated after construction — a re-parse allocates a fresh
// instance.
type Molecule struct {
	common.BaseEntity

	SMILES   string
	Fallback bool
	Atoms    []Atom
	Bonds    []Bond
}

// newAtom constructs an Atom at the given index with display attributes
// resolved from the element table (defaults for unknown symbols).
func newAtom(index int, symbol string, pos geometry.Vec3) Atom {
	e, _ := element.Lookup(symbol)
	return Atom{
		Index:    index,
		Symbol:   symbol,
		Position: pos,
		Radius:   e.Radius,
		Color:    e.Color,
	}
}

// ToModel converts the aggregate into the renderer-agnostic DTO.
func (m *Molecule) ToModel() *geometry.MoleculeModel {
	out := &geometry.MoleculeModel{
		BaseEntity: m.BaseEntity,
		SMILES:     m.SMILES,
		Fallback:   m.Fallback,
		Atoms:      make([]geometry.AtomModel, len(m.Atoms)),
		Bonds:      make([]geometry.BondModel, len(m.Bonds)),
	}
	for i, a := range m.Atoms {
		out.Atoms[i] = geometry.AtomModel{
			Index:    a.Index,
			Symbol:   a.Symbol,
			Position: a.Position,
			Radius:   a.Radius,
			Color:    a.Color,
		}
	}
	for i, b := range m.Bonds {
		out.Bonds[i] = geometry.BondModel{From: b.From, To: b.To, Order: b.Order}
	}
	return out
}
