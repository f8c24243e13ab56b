package smiles

// ValidateSMILES reports whether the round parentheses and square brackets in
// s are each balanced, with no prefix of s ever closing a bracket that was
// not opened.  This is a purely syntactic pre-check — it says nothing about
// chemical validity — and it is the only hard rejection point in the module:
// the builder itself accepts anything.
//
// Empty input is invalid.
func ValidateSMILES(s string) bool {
	if s == "" {
		return false
	}

	paren, square := 0, 0
	for _, ch := range s {
		switch ch {
		case '(':
			paren++
		case ')':
			paren--
		case '[':
			square++
		case ']':
			square--
		}
		if paren < 0 || square < 0 {
			return false
		}
	}
	return paren == 0 && square == 0
}
