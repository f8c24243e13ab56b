// Package formula provides molecular-formula arithmetic and the lightweight
// composition/property analysis that upstream validation and formatting code
// calls before (or instead of) full geometry construction.
package formula

import (
	"math"
	"regexp"
	"strconv"

	"github.com/turtacn/MolViz-Engine/internal/domain/element"
)

// formulaToken matches one (ElementSymbol, optional count) pair in a
// molecular formula such as "C2H6O".
var formulaToken = regexp.MustCompile(`([A-Z][a-z]?)(\d*)`)

// MolecularWeight parses formula as a sequence of element/count tokens and
// returns the summed weight in g/mol, rounded to 2 decimal places.  Unknown
// element tokens contribute zero rather than failing, so an exotic formula
// still yields a best-effort number.
func MolecularWeight(formula string) float64 {
	total := 0.0
	for _, m := range formulaToken.FindAllStringSubmatch(formula, -1) {
		symbol, digits := m[1], m[2]
		if symbol == "" {
			continue
		}
		count := 1
		if digits != "" {
			count, _ = strconv.Atoi(digits)
		}
		total += element.Weight(symbol) * float64(count)
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
