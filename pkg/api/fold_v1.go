// pkg/api/fold_v1.go
package api

// FoldV1 is the stable JSON/JSONL schema for one folded record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type FoldV1 struct {
	ID        string         `json:"id"`
	Input     string         `json:"input"`
	Canonical string         `json:"canonical"`
	Length    int            `json:"length"`
	Score     int            `json:"score"`
	Structure string         `json:"structure"`
	Pairs     [][2]int       `json:"pairs"` // [i, j], 0-based, i < j
	Modules   []ModulePathV1 `json:"modules"`
	Family    []string       `json:"family,omitempty"` // entry x folds the first x positions
}

// ModulePathV1 is one module's span (canonical, half-open) and folding path.
type ModulePathV1 struct {
	Index    int    `json:"index"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Boundary int    `json:"boundary"`
	Path     string `json:"path"`
}
