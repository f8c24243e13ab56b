package formula

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/turtacn/MolViz-Engine/internal/domain/element"
)

// ─────────────────────────────────────────────────────────────────────────────
// Composition analysis
// ─────────────────────────────────────────────────────────────────────────────

// Composition summarizes the element make-up extracted from a SMILES string.
// Hydrogens are implicit in SMILES and therefore not counted.
type Composition struct {
	// AtomCounts maps element symbol to occurrence count.
	AtomCounts map[string]int `json:"atom_counts"`
	// Formula is the derived molecular formula with symbols in
	// alphabetical order and counts of 1 omitted.
	Formula string `json:"molecular_formula"`
	// Weight is the summed atomic weight of the counted atoms, rounded to
	// 2 decimal places.  Unknown symbols contribute zero.
	Weight float64 `json:"molecular_weight"`
	// AtomCount is the total number of counted atoms.
	AtomCount int `json:"atom_count"`
}

// compositionNoise strips brackets, bond symbols, charges, stereo markers,
// and ring-closure digits before the element scan.
var compositionNoise = regexp.MustCompile(`[\(\)\[\]=\-#@+\\/0-9]`)

// AnalyzeComposition counts element occurrences in smiles (uppercase letter
// optionally extended by one lowercase letter), derives the molecular
// formula, and sums the molecular weight.  Never fails: unrecognizable input
// simply yields an empty composition.
func AnalyzeComposition(smiles string) Composition {
	simplified := compositionNoise.ReplaceAllString(smiles, "")

	counts := make(map[string]int)
	for i := 0; i < len(simplified); i++ {
		c := simplified[i]
		if c < 'A' || c > 'Z' {
			continue
		}
		symbol := string(c)
		if i+1 < len(simplified) && simplified[i+1] >= 'a' && simplified[i+1] <= 'z' {
			symbol += string(simplified[i+1])
			i++
		}
		counts[symbol]++
	}

	symbols := make([]string, 0, len(counts))
	for s := range counts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var sb strings.Builder
	total := 0
	weight := 0.0
	for _, s := range symbols {
		n := counts[s]
		if n == 1 {
			sb.WriteString(s)
		} else {
			fmt.Fprintf(&sb, "%s%d", s, n)
		}
		total += n
		weight += element.Weight(s) * float64(n)
	}

	return Composition{
		AtomCounts: counts,
		Formula:    sb.String(),
		Weight:     round2(weight),
		AtomCount:  total,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Property estimation
// ─────────────────────────────────────────────────────────────────────────────

// Properties holds rough, pattern-based molecular property estimates.  These
// are screening heuristics for the collaboration UI, not computed chemistry.
type Properties struct {
	AromaticRings      int     `json:"aromatic_rings"`
	HydroxylGroups     int     `json:"hydroxyl_groups"`
	NitrogenCount      int     `json:"nitrogen_count"`
	SulfurCount        int     `json:"sulfur_count"`
	HalogenCount       int     `json:"halogen_count"`
	EstimatedLogP      float64 `json:"estimated_logp"`
	LipinskiViolations int     `json:"lipinski_violations"`
	DrugLike           bool    `json:"drug_like"`
}

// aromaticRing matches a six-membered aromatic ring in either lowercase
// aromatic or Kekulé notation.
var aromaticRing = regexp.MustCompile(`c1c+c+c+c+c+1|C1=CC=CC=C1`)

// EstimateProperties derives screening-level property estimates from raw
// SMILES character patterns.
func EstimateProperties(smiles string) Properties {
	p := Properties{
		AromaticRings:  len(aromaticRing.FindAllString(smiles, -1)),
		HydroxylGroups: strings.Count(smiles, "O") + strings.Count(smiles, "OH"),
		NitrogenCount:  strings.Count(smiles, "N"),
		SulfurCount:    strings.Count(smiles, "S"),
		HalogenCount: strings.Count(smiles, "F") + strings.Count(smiles, "Cl") +
			strings.Count(smiles, "Br") + strings.Count(smiles, "I"),
	}

	carbons := strings.Count(smiles, "C") + strings.Count(smiles, "c")
	oxygens := strings.Count(smiles, "O")
	if oxygens > 0 {
		p.EstimatedLogP = round2(float64(carbons-oxygens) * 0.5)
	} else {
		p.EstimatedLogP = round2(float64(carbons) * 0.5)
	}

	// Rule-of-five screen against the derived composition.
	mw := AnalyzeComposition(smiles).Weight
	if mw > 500 {
		p.LipinskiViolations++
	}
	if p.EstimatedLogP > 5 {
		p.LipinskiViolations++
	}
	if p.HydroxylGroups > 5 {
		p.LipinskiViolations++
	}
	if p.NitrogenCount+p.HydroxylGroups > 10 {
		p.LipinskiViolations++
	}
	p.DrugLike = p.LipinskiViolations <= 1

	return p
}

// ─────────────────────────────────────────────────────────────────────────────
// InChI helpers
// ─────────────────────────────────────────────────────────────────────────────

// inchiFormulaLayer extracts the molecular-formula layer from an InChI string.
var inchiFormulaLayer = regexp.MustCompile(`/([CH][0-9]*[A-Z][0-9A-Za-z]*)`)

// ValidateInChI reports whether s looks like an InChI string: non-empty and
// prefixed with "InChI=".  Purely syntactic.
func ValidateInChI(s string) bool {
	return strings.HasPrefix(s, "InChI=")
}

// FormulaFromInChI returns the molecular formula embedded in an InChI
// string, or "" when no formula layer is present.
func FormulaFromInChI(inchi string) string {
	m := inchiFormulaLayer.FindStringSubmatch(inchi)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}
