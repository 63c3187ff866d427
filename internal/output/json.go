// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"nussifold/internal/engine"
	"nussifold/pkg/api"
)

// ToAPI converts a Result to the v1 wire type. The family is included only
// when withFamily is set; it holds N+1 strings.
func ToAPI(r engine.Result, withFamily bool) api.FoldV1 {
	pairs := make([][2]int, len(r.Pairs))
	for i, p := range r.Pairs {
		pairs[i] = [2]int{p.I, p.J}
	}
	mods := make([]api.ModulePathV1, len(r.Modules))
	for i, m := range r.Modules {
		mods[i] = api.ModulePathV1{Index: m.Index, Start: m.Start, End: m.End, Boundary: m.Boundary, Path: m.Path}
	}
	out := api.FoldV1{
		ID:        r.ID,
		Input:     r.Input,
		Canonical: r.Canonical,
		Length:    r.Length,
		Score:     r.Score,
		Structure: r.Structure,
		Pairs:     pairs,
		Modules:   mods,
	}
	if withFamily {
		out.Family = append([]string(nil), r.Family...)
	}
	return out
}

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteJSON writes the results as one indented JSON array.
func WriteJSON(w io.Writer, list []engine.Result, withFamily bool) error {
	out := make([]api.FoldV1, len(list))
	for i, r := range list {
		out[i] = ToAPI(r, withFamily)
	}
	return EncodePretty(w, out)
}
