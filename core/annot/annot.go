// core/annot/annot.go
package annot

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultMarker    = '*'
	DefaultSeparator = 'l'
)

var ErrInvalidSequence = errors.New("invalid sequence")

// PositionError locates an ErrInvalidSequence at a 1-based input position.
type PositionError struct {
	Pos    int
	Symbol byte
	Reason string
}

func (e *PositionError) Error() string {
	return fmt.Sprintf("%v: %q at %d: %s", ErrInvalidSequence, e.Symbol, e.Pos, e.Reason)
}

func (e *PositionError) Unwrap() error { return ErrInvalidSequence }

// Options names the reserved symbols of the annotated format.
type Options struct {
	Marker    byte // follows a base to flag it as eligible
	Separator byte // delimits modules
}

func (o Options) withDefaults() Options {
	if o.Marker == 0 {
		o.Marker = DefaultMarker
	}
	if o.Separator == 0 {
		o.Separator = DefaultSeparator
	}
	return o
}

// Canonical is a marker-free sequence. Eligibility is carried by case:
// Eligible[i] is true iff Seq[i] is upper case.
type Canonical struct {
	Seq      string
	Eligible []bool
}

// Len returns the number of canonical positions.
func (c Canonical) Len() int { return len(c.Seq) }

// Preprocess upper-cases every base followed by a marker and strips the
// markers. Separators are kept so canonical positions line up with modules.
func Preprocess(raw string, opts Options) (Canonical, error) {
	opts = opts.withDefaults()
	if raw == "" {
		return Canonical{}, fmt.Errorf("%w: empty input", ErrInvalidSequence)
	}
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == opts.Marker:
			if i == 0 {
				return Canonical{}, &PositionError{Pos: 1, Symbol: c, Reason: "marker without a preceding base"}
			}
			prev := raw[i-1]
			if prev == opts.Marker || prev == opts.Separator {
				return Canonical{}, &PositionError{Pos: i + 1, Symbol: c, Reason: "marker must follow a base"}
			}
			out[len(out)-1] = upper(prev)
		case c == opts.Separator:
			out = append(out, c)
		case isLetter(c):
			out = append(out, c)
		default:
			return Canonical{}, &PositionError{Pos: i + 1, Symbol: c, Reason: "not a base letter"}
		}
	}
	if len(out) == 0 {
		return Canonical{}, fmt.Errorf("%w: no bases", ErrInvalidSequence)
	}
	return newCanonical(string(out)), nil
}

// FromAnnotation builds a canonical sequence from bases and a parallel
// eligibility array, bypassing the marker format. Symbols matching the
// separator (in either case, for a letter separator) become the separator
// and may not be eligible, as in the marker format.
func FromAnnotation(bases string, eligible []bool, opts Options) (Canonical, error) {
	opts = opts.withDefaults()
	if len(bases) != len(eligible) {
		return Canonical{}, fmt.Errorf("%w: %d bases but %d annotations", ErrInvalidSequence, len(bases), len(eligible))
	}
	b := []byte(bases)
	for i, c := range b {
		switch {
		case c == opts.Separator || (isLetter(c) && lowerByte(c) == opts.Separator):
			if eligible[i] {
				return Canonical{}, &PositionError{Pos: i + 1, Symbol: c, Reason: "separator cannot be eligible"}
			}
			b[i] = opts.Separator
		case !isLetter(c):
			return Canonical{}, &PositionError{Pos: i + 1, Symbol: c, Reason: "not a base letter"}
		case eligible[i]:
			b[i] = upper(c)
		default:
			b[i] = lowerByte(c)
		}
	}
	return newCanonical(string(b)), nil
}

// Format renders c in the marker format: lower-case bases, each eligible
// base followed by the marker. Separators are written unchanged.
func Format(c Canonical, opts Options) string {
	opts = opts.withDefaults()
	var sb strings.Builder
	sb.Grow(len(c.Seq) * 2)
	for i := 0; i < len(c.Seq); i++ {
		s := c.Seq[i]
		if s == opts.Separator {
			sb.WriteByte(s)
			continue
		}
		if lowerByte(s) == opts.Separator {
			// upper-case form of a letter separator; lowering it would split a module
			sb.WriteByte(s)
			continue
		}
		sb.WriteByte(lowerByte(s))
		if c.Eligible[i] {
			sb.WriteByte(opts.Marker)
		}
	}
	return sb.String()
}

func newCanonical(seq string) Canonical {
	el := make([]bool, len(seq))
	for i := 0; i < len(seq); i++ {
		el[i] = 'A' <= seq[i] && seq[i] <= 'Z'
	}
	return Canonical{Seq: seq, Eligible: el}
}

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func lowerByte(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
