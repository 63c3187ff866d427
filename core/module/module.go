// core/module/module.go
package module

import (
	"errors"
	"fmt"
	"strings"

	"nussifold-core/annot"
	"nussifold-core/nussinov"
)

// DefaultTracked is the symbol whose positions make up a folding path.
const DefaultTracked = 'b'

var ErrFamilyMismatch = errors.New("structure family does not match sequence")

// Options names the reserved symbols; zero values take the defaults.
type Options struct {
	Marker    byte
	Separator byte
	Tracked   byte // compared case-insensitively
}

func (o Options) annotOptions() annot.Options {
	return annot.Options{Marker: o.Marker, Separator: o.Separator}
}

func (o Options) separator() byte {
	if o.Separator == 0 {
		return annot.DefaultSeparator
	}
	return o.Separator
}

func (o Options) tracked() byte {
	if o.Tracked == 0 {
		return DefaultTracked
	}
	return o.Tracked
}

// Module is one separator-delimited region in canonical coordinates.
type Module struct {
	Index      int
	Start, End int // [Start, End)
	// Boundary is the transcript length at which the module is complete:
	// all preceding modules and separators plus the module itself.
	Boundary int
}

// Layout splits raw into modules. k separators always give k+1 modules,
// empty ones included.
func Layout(raw string, opts Options) ([]Module, annot.Canonical, error) {
	c, err := annot.Preprocess(raw, opts.annotOptions())
	if err != nil {
		return nil, annot.Canonical{}, err
	}
	return layout(c, opts), c, nil
}

func layout(c annot.Canonical, opts Options) []Module {
	sep := opts.separator()
	var mods []Module
	start := 0
	for i := 0; i <= len(c.Seq); i++ {
		if i == len(c.Seq) || c.Seq[i] == sep {
			mods = append(mods, Module{Index: len(mods), Start: start, End: i, Boundary: i})
			start = i + 1
		}
	}
	return mods
}

// Project picks, for every module, the family entry at the module's
// boundary and keeps only the characters at tracked positions.
//
// family must come from the canonical form of raw (len(family) == N+1).
func Project(family []string, raw string, opts Options) ([]string, error) {
	mods, c, err := Layout(raw, opts)
	if err != nil {
		return nil, err
	}
	if len(family) != c.Len()+1 {
		return nil, fmt.Errorf("%w: %d structures for %d positions", ErrFamilyMismatch, len(family), c.Len())
	}
	return project(family, c, mods, opts), nil
}

func project(family []string, c annot.Canonical, mods []Module, opts Options) []string {
	tr := lower(opts.tracked())
	out := make([]string, len(mods))
	for k, m := range mods {
		dot := family[m.Boundary]
		var sb strings.Builder
		for z := 0; z < len(dot); z++ {
			if lower(c.Seq[z]) == tr {
				sb.WriteByte(dot[z])
			}
		}
		out[k] = sb.String()
	}
	return out
}

// Paths is the whole analysis of one annotated sequence.
type Paths struct {
	Canonical annot.Canonical
	Modules   []Module
	Fold      nussinov.Fold // full-length structure
	Family    []string
	Paths     []string
}

// FoldingPaths preprocesses raw, folds every prefix and projects the result
// onto the modules.
func FoldingPaths(raw string, fold nussinov.Options, opts Options) (Paths, error) {
	mods, c, err := Layout(raw, opts)
	if err != nil {
		return Paths{}, err
	}
	return FoldCanonical(c, mods, fold, opts), nil
}

// FoldCanonical is FoldingPaths for a sequence already split by Layout.
// The matrix is filled once and shared by the full-length structure and
// every prefix. The separator is always excluded from pairing.
func FoldCanonical(c annot.Canonical, mods []Module, fold nussinov.Options, opts Options) Paths {
	fold.Excluded += string(opts.separator())
	f := nussinov.FoldSequence(c.Seq, fold)
	fam := nussinov.FamilyFrom(f.Matrix, c.Seq, fold)
	return Paths{
		Canonical: c,
		Modules:   mods,
		Fold:      f,
		Family:    fam,
		Paths:     project(fam, c, mods, opts),
	}
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
