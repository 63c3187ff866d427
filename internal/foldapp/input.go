package foldapp

import (
	"fmt"
	"path/filepath"
	"strings"

	"nussifold-core/fasta"

	"nussifold/internal/pipeline"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// expandFiles resolves glob patterns among the --fasta paths. A pattern
// that matches nothing is an error; "-" passes through as stdin.
func expandFiles(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		if p == "-" || !hasGlobMeta(p) {
			out = append(out, p)
			continue
		}
		m, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("bad glob %q: %v", p, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("no input matched %q", p)
		}
		out = append(out, m...)
	}
	return out, nil
}

// collectInput turns positional sequences (named seq1..seqN) and --fasta
// paths into pipeline input.
func collectInput(args, files []string) (pipeline.Input, error) {
	var in pipeline.Input
	for i, s := range args {
		in.Inline = append(in.Inline, fasta.Record{ID: fmt.Sprintf("seq%d", i+1), Seq: []byte(s)})
	}
	fs, err := expandFiles(files)
	if err != nil {
		return pipeline.Input{}, err
	}
	in.Files = fs
	if len(in.Inline) == 0 && len(in.Files) == 0 {
		return pipeline.Input{}, fmt.Errorf("no input: pass sequences as arguments or use --fasta")
	}
	return in, nil
}
