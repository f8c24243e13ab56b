// Package geometry defines the renderer-agnostic output models produced by
// the MolViz-Engine builders.  Everything here is plain data: downstream
// presentation adapters (WebGL scene builders, SVG exporters, report
// generators) consume these structs directly, and no rendering-library type
// leaks into this package.
package geometry

import (
	"github.com/turtacn/MolViz-Engine/pkg/types/common"
)

// ─────────────────────────────────────────────────────────────────────────────
// Primitive value types
// ─────────────────────────────────────────────────────────────────────────────

// Vec3 is a point or direction in 3-D space.  Units are unitless "scene"
// lengths; the SMILES builder spaces chained atoms ~1.5 apart.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// RGB is a display color with each channel in [0,1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Sphere is a renderable sphere primitive.
type Sphere struct {
	Center Vec3    `json:"center"`
	Radius float64 `json:"radius"`
	Color  RGB     `json:"color"`
}

// Cylinder is a renderable cylinder primitive defined by its two end points.
type Cylinder struct {
	Start  Vec3    `json:"start"`
	End    Vec3    `json:"end"`
	Radius float64 `json:"radius"`
	Color  RGB     `json:"color"`
}

// Line is a thin line primitive, used for hydrogen-bond indicators.
type Line struct {
	Start Vec3 `json:"start"`
	End   Vec3 `json:"end"`
	Color RGB  `json:"color"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Molecule model
// ─────────────────────────────────────────────────────────────────────────────

// AtomModel is one positioned atom in a molecule model.  Index is 0-based,
// assigned in parse order, and stable for the lifetime of the model.
type AtomModel struct {
	Index    int     `json:"index"`
	Symbol   string  `json:"symbol"`
	Position Vec3    `json:"position"`
	Radius   float64 `json:"radius"`
	Color    RGB     `json:"color"`
}

// BondModel connects two atoms by index.  Order is 1, 2, or 3.
type BondModel struct {
	From  int `json:"from"`
	To    int `json:"to"`
	Order int `json:"order"`
}

// MoleculeModel is the complete renderable output of the SMILES builder.
// Fallback is true when the input yielded no recognizable atoms and the
// fixed exemplar skeleton was substituted.
type MoleculeModel struct {
	common.BaseEntity

	SMILES   string      `json:"smiles"`
	Fallback bool        `json:"fallback"`
	Atoms    []AtomModel `json:"atoms"`
	Bonds    []BondModel `json:"bonds"`
}

// AtomCount returns the number of atoms in the model.
func (m *MoleculeModel) AtomCount() int { return len(m.Atoms) }

// BondCount returns the number of bonds in the model.
func (m *MoleculeModel) BondCount() int { return len(m.Bonds) }

// ─────────────────────────────────────────────────────────────────────────────
// Helix model (DNA / RNA)
// ─────────────────────────────────────────────────────────────────────────────

// BasePairPlacement is one positioned residue on the double helix.  Complement
// and HydrogenBond are nil when the residue has no canonical partner.
type BasePairPlacement struct {
	Index          int     `json:"index"`
	Code           string  `json:"code"`
	ComplementCode string  `json:"complement_code,omitempty"`
	Angle          float64 `json:"angle"`
	Height         float64 `json:"height"`

	Primary      Sphere  `json:"primary"`
	Complement   *Sphere `json:"complement,omitempty"`
	HydrogenBond *Line   `json:"hydrogen_bond,omitempty"`
}

// HelixModel is the complete renderable output of the double-helix builder.
// Backbone holds the two scaffold cylinders running along the helix axis.
type HelixModel struct {
	common.BaseEntity

	Kind     string  `json:"kind"` // "dna" | "rna"
	Sequence string  `json:"sequence"`
	Radius   float64 `json:"radius"`
	Height   float64 `json:"height"`
	Turns    float64 `json:"turns"`

	Placements []BasePairPlacement `json:"placements"`
	Backbone   [2]Cylinder         `json:"backbone"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Protein backbone model
// ─────────────────────────────────────────────────────────────────────────────

// CurvePoint is one sample on the interpolated backbone curve.  T is the
// normalized curve parameter in [0,1].
type CurvePoint struct {
	T        float64 `json:"t"`
	Position Vec3    `json:"position"`
}

// ResidueMarker is one per-residue sphere placed along the backbone curve.
type ResidueMarker struct {
	Index       int     `json:"index"`
	Code        string  `json:"code"`
	ArcPosition float64 `json:"arc_position"`
	Position    Vec3    `json:"position"`
	Color       RGB     `json:"color"`
}

// BackboneModel is the complete renderable output of the protein backbone
// builder: a smooth curve plus one marker per residue.
type BackboneModel struct {
	common.BaseEntity

	Sequence string          `json:"sequence"`
	Curve    []CurvePoint    `json:"curve"`
	Markers  []ResidueMarker `json:"markers"`
}
