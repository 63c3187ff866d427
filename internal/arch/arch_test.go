// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

// layers below the command line never reach up into it
var outer = []string{
	"nussifold/internal/foldapp", "nussifold/internal/appshell", "nussifold/cmd/",
}

func banned(extra ...string) []string { return append(append([]string{}, outer...), extra...) }

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		"nussifold/internal/engine": banned(
			"nussifold/internal/pipeline", "nussifold/internal/writers",
			"nussifold/internal/output", "nussifold/internal/pretty",
			"nussifold/internal/config", "github.com/spf13/",
		),
		"nussifold/internal/pipeline": banned(
			"nussifold/internal/writers", "nussifold/internal/output",
			"nussifold/internal/config", "github.com/spf13/",
		),
		"nussifold/internal/writers": banned(
			"nussifold/internal/pipeline", "nussifold/internal/config", "github.com/spf13/",
		),
		"nussifold/internal/output": banned(
			"nussifold/internal/pipeline", "nussifold/internal/writers", "github.com/spf13/",
		),
		"nussifold/internal/pretty": banned(
			"nussifold/internal/pipeline", "nussifold/internal/writers", "github.com/spf13/",
		),
		"nussifold/internal/config": banned(
			"nussifold/internal/engine", "nussifold/internal/pipeline", "github.com/spf13/cobra",
		),
		"nussifold/pkg/": banned("nussifold/internal/"),
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, "nussifold/") {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if imp != prefix && !strings.HasPrefix(imp, strings.TrimSuffix(prefix, "/")+"/") {
				continue
			}
			for _, dep := range p.Imports {
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}

// The folding core is its own module and must stay free of third-party code.
func TestCoreHasNoThirdPartyImports(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "./...")
	cmd.Dir = "../../core"
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		for _, dep := range p.Imports {
			if strings.Contains(strings.SplitN(dep, "/", 2)[0], ".") {
				t.Errorf("%s imports %s", p.ImportPath, dep)
			}
		}
	}
}
