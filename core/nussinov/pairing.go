// core/nussinov/pairing.go
package nussinov

import "strings"

// DefaultMinLoopLength disables the minimum separation between paired positions.
const DefaultMinLoopLength = 0

// Options tunes matrix filling and reconstruction.
type Options struct {
	// MinLoopLength is the smallest j-i for which i and j may be considered
	// for pairing. Spans shorter than this score 0.
	MinLoopLength int

	// Excluded lists symbols that never pair (e.g. a module separator).
	Excluded string

	// Workers > 1 traces prefixes concurrently in Family.
	Workers int
}

// CanPair reports whether a and b may form a base pair: the same letter in
// opposite case. Identical symbols never pair.
func CanPair(a, b byte) bool {
	return lower(a) == lower(b) && a != b
}

// pair is CanPair with the Excluded symbols filtered out, as 0/1.
func (o Options) pair(a, b byte) int {
	if o.Excluded != "" && (strings.IndexByte(o.Excluded, a) >= 0 || strings.IndexByte(o.Excluded, b) >= 0) {
		return 0
	}
	if CanPair(a, b) {
		return 1
	}
	return 0
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
