// Package sequence builds 3-D geometry from linear biological sequences: a
// double-helix model for nucleic acids and a smooth backbone curve for
// proteins.  Both builders are pure functions of (sequence, kind) plus their
// layout constants — no randomness, no shared state — so repeated builds of
// the same input are identical.
package sequence

import (
	"strings"

	"github.com/turtacn/MolViz-Engine/pkg/types/geometry"
)

// Kind tags the residue alphabet of a sequence.
type Kind string

const (
	KindDNA     Kind = "dna"
	KindRNA     Kind = "rna"
	KindProtein Kind = "protein"
)

// ParseKind normalizes s into a Kind.  The boolean result is false for
// unrecognized tags.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDNA:
		return KindDNA, true
	case KindRNA:
		return KindRNA, true
	case KindProtein:
		return KindProtein, true
	default:
		return "", false
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Nucleic-acid alphabet
// ─────────────────────────────────────────────────────────────────────────────

// Base-pairing tables.  A residue absent from its table is unrecognized and
// produces no placement (spec leniency: skipped, not errored).  Note T is
// absent from the RNA table and U from the DNA table.
var (
	dnaComplement = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}
	rnaComplement = map[byte]byte{'A': 'U', 'U': 'A', 'G': 'C', 'C': 'G'}
)

// complementOf returns the canonical partner of code under the given kind's
// pairing rules, or false when code is not part of the alphabet.
func complementOf(kind Kind, code byte) (byte, bool) {
	switch kind {
	case KindDNA:
		c, ok := dnaComplement[code]
		return c, ok
	case KindRNA:
		c, ok := rnaComplement[code]
		return c, ok
	default:
		return 0, false
	}
}

// baseColors assigns a display color to each nucleotide base.
var baseColors = map[byte]geometry.RGB{
	'A': {R: 0.26, G: 0.65, B: 0.96}, // blue
	'T': {R: 0.96, G: 0.45, B: 0.26}, // orange
	'G': {R: 0.30, G: 0.80, B: 0.40}, // green
	'C': {R: 0.95, G: 0.83, B: 0.25}, // yellow
	'U': {R: 0.78, G: 0.35, B: 0.85}, // violet
}

// baseColor resolves a base code to its display color, falling back to
// neutral gray for anything outside the alphabet.
func baseColor(code byte) geometry.RGB {
	if c, ok := baseColors[code]; ok {
		return c
	}
	return defaultResidueColor
}

// ─────────────────────────────────────────────────────────────────────────────
// Amino-acid alphabet
// ─────────────────────────────────────────────────────────────────────────────

// defaultResidueColor is the neutral fallback for unknown residue codes —
// unknown codes are colored, never rejected.
var defaultResidueColor = geometry.RGB{R: 0.7, G: 0.7, B: 0.7}

// aminoColors covers the 20 canonical amino-acid letters, grouped loosely by
// side-chain character (hydrophobic greens, polar blues, charged reds/
// oranges, special-case purples).
var aminoColors = map[byte]geometry.RGB{
	'A': {R: 0.53, G: 0.78, B: 0.42},
	'C': {R: 0.90, G: 0.90, B: 0.30},
	'D': {R: 0.90, G: 0.30, B: 0.30},
	'E': {R: 0.85, G: 0.20, B: 0.40},
	'F': {R: 0.35, G: 0.60, B: 0.35},
	'G': {R: 0.75, G: 0.75, B: 0.75},
	'H': {R: 0.45, G: 0.55, B: 0.95},
	'I': {R: 0.40, G: 0.70, B: 0.30},
	'K': {R: 0.95, G: 0.55, B: 0.20},
	'L': {R: 0.45, G: 0.75, B: 0.35},
	'M': {R: 0.85, G: 0.80, B: 0.25},
	'N': {R: 0.35, G: 0.75, B: 0.85},
	'P': {R: 0.70, G: 0.45, B: 0.80},
	'Q': {R: 0.30, G: 0.65, B: 0.80},
	'R': {R: 0.95, G: 0.45, B: 0.15},
	'S': {R: 0.50, G: 0.80, B: 0.90},
	'T': {R: 0.40, G: 0.70, B: 0.85},
	'V': {R: 0.50, G: 0.72, B: 0.38},
	'W': {R: 0.60, G: 0.35, B: 0.70},
	'Y': {R: 0.55, G: 0.50, B: 0.30},
}

// aminoColor resolves an amino-acid code to its display color, falling back
// to the neutral default.
func aminoColor(code byte) geometry.RGB {
	if c, ok := aminoColors[code]; ok {
		return c
	}
	return defaultResidueColor
}

// IsCanonicalAmino reports whether code is one of the 20 canonical
// amino-acid letters.
func IsCanonicalAmino(code byte) bool {
	_, ok := aminoColors[code]
	return ok
}
