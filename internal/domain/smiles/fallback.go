package smiles

import (
	"github.com/turtacn/MolViz-Engine/pkg/types/common"
	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// fallbackSpec describes the fixed ethanol-like exemplar substituted when a
// parse recognizes zero atoms: a C-C-O heavy-atom chain with its six
// hydrogens, 9 atoms and 8 bonds in total.  Positions are deterministic and
// never jittered, so repeated fallback builds are identical.
var fallbackSpec = struct {
	atoms []struct {
		symbol string
		pos    geometry.Vec3
	}
	bonds []Bond
}{
	atoms: []struct {
		symbol string
		pos    geometry.Vec3
	}{
		{"C", geometry.Vec3{X: 0.0}},
		{"C", geometry.Vec3{X: 1.5}},
		{"O", geometry.Vec3{X: 3.0}},
		{"H", geometry.Vec3{X: -0.6, Y: 0.9}},
		{"H", geometry.Vec3{X: -0.6, Y: -0.45, Z: 0.8}},
		{"H", geometry.Vec3{X: -0.6, Y: -0.45, Z: -0.8}},
		{"H", geometry.Vec3{X: 1.5, Y: 0.9, Z: 0.6}},
		{"H", geometry.Vec3{X: 1.5, Y: 0.9, Z: -0.6}},
		{"H", geometry.Vec3{X: 3.6, Y: 0.7}},
	},
	bonds: []Bond{
		{From: 0, To: 1, Order: 1},
		{From: 1, To: 2, Order: 1},
		{From: 0, To: 3, Order: 1},
		{From: 0, To: 4, Order: 1},
		{From: 0, To: 5, Order: 1},
		{From: 1, To: 6, Order: 1},
		{From: 1, To: 7, Order: 1},
		{From: 2, To: 8, Order: 1},
	},
}

// FallbackAtomCount and FallbackBondCount describe the exemplar's shape.
const (
	FallbackAtomCount = 9
	FallbackBondCount = 8
)

// fallback constructs the exemplar molecule, preserving the original input
// string for traceability.
func (b *Builder) fallback(smiles string) *Molecule {
	mol := &Molecule{
		BaseEntity: common.NewBaseEntity(),
		SMILES:     smiles,
		Fallback:   true,
		Atoms:      make([]Atom, 0, len(fallbackSpec.atoms)),
		Bonds:      make([]Bond, len(fallbackSpec.bonds)),
	}
	for i, a := range fallbackSpec.atoms {
		mol.Atoms = append(mol.Atoms, newAtom(i, a.symbol, a.pos))
	}
	copy(mol.Bonds, fallbackSpec.bonds)
	return mol
}
