// core/nussinov/notation.go
package nussinov

// Encode renders pairs as a dot-bracket string of the given length.
// Later pairs overwrite earlier ones at a shared index.
func Encode(pairs PairingSet, length int) string {
	dot := make([]byte, length)
	for k := range dot {
		dot[k] = '.'
	}
	for _, p := range pairs {
		lo, hi := p.I, p.J
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo < 0 || hi >= length {
			panic(&IndexError{I: p.I, J: p.J, N: length})
		}
		dot[lo] = '('
		dot[hi] = ')'
	}
	return string(dot)
}
