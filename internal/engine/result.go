// internal/engine/result.go
package engine

import "nussifold-core/nussinov"

// Result is the analysis of one record.
type Result struct {
	ID        string
	Input     string // annotated input as read
	Canonical string // marker-stripped sequence
	Length    int
	Score     int
	Pairs     nussinov.PairingSet
	Structure string
	Family    []string // len == Length+1
	Modules   []ModulePath
}

// ModulePath is one module's span and its folding path.
type ModulePath struct {
	Index    int
	Start    int
	End      int
	Boundary int
	Path     string
}
