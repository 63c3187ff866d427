package foldapp

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"nussifold/internal/appshell"
	"nussifold/internal/version"
	"nussifold/pkg/api"
)

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var o, e bytes.Buffer
	code = Run(args, &o, &e)
	return code, o.String(), e.String()
}

func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func TestFold_Inline(t *testing.T) {
	code, out, errOut := run(t, "fold", "b*ablb")
	if code != appshell.ExitOK {
		t.Fatalf("exit %d, stderr=%q", code, errOut)
	}
	want := "seq1\t5\t1\tBablb\t(.)..\t(),().\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFold_Header(t *testing.T) {
	_, out, _ := run(t, "--header", "fold", "Aa")
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "id\tlength") {
		t.Fatalf("unexpected output %q", out)
	}
	if lines[1] != "seq1\t2\t1\tAa\t()\t" {
		t.Fatalf("row %q", lines[1])
	}
}

func TestPath_Rows(t *testing.T) {
	code, out, _ := run(t, "path", "b*ablb")
	if code != appshell.ExitOK {
		t.Fatalf("exit %d", code)
	}
	want := "seq1\t1\t3\t()\nseq1\t2\t5\t().\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestPath_CustomSymbols(t *testing.T) {
	code, out, errOut := run(t, "--separator", "|", "--tracked", "a", "path", "a*a|a")
	if code != appshell.ExitOK {
		t.Fatalf("exit %d, stderr=%q", code, errOut)
	}
	want := "seq1\t1\t2\t()\nseq1\t2\t4\t().\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFold_RejectedRecordIsSkipped(t *testing.T) {
	code, out, errOut := run(t, "fold", "*ab", "ab")
	if code != appshell.ExitUsage {
		t.Fatalf("exit %d want %d", code, appshell.ExitUsage)
	}
	if out != "seq2\t2\t0\tab\t..\t.\n" {
		t.Fatalf("valid record not written: %q", out)
	}
	if !strings.Contains(errOut, "skipping record") || !strings.Contains(errOut, "seq1") {
		t.Fatalf("warning missing: %q", errOut)
	}
}

func TestFold_JSONL(t *testing.T) {
	code, out, _ := run(t, "-o", "jsonl", "--family", "fold", "AaAa", "b*ablb")
	if code != appshell.ExitOK {
		t.Fatalf("exit %d", code)
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	var got []api.FoldV1
	for sc.Scan() {
		var f api.FoldV1
		if err := json.Unmarshal(sc.Bytes(), &f); err != nil {
			t.Fatalf("decode %q: %v", sc.Text(), err)
		}
		got = append(got, f)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "seq1" || got[0].Structure != "(())" || got[0].Score != 2 {
		t.Fatalf("first record %+v", got[0])
	}
	if want := []string{"", ".", "()", ".()", "(())"}; strings.Join(got[0].Family, "|") != strings.Join(want, "|") {
		t.Fatalf("family %q", got[0].Family)
	}
	if len(got[1].Modules) != 2 || got[1].Modules[1].Path != "()." {
		t.Fatalf("modules %+v", got[1].Modules)
	}
}

func TestFold_FastaParallelMatchesSerial(t *testing.T) {
	dir := t.TempDir()
	var b strings.Builder
	seqs := []string{"GGGAAAUCC", "b*ablb", "AaAa", "gGcCaAuU", "ab*alba*b", "xyz", "UUUaaa"}
	for i, s := range seqs {
		b.WriteString(">r")
		b.WriteString(string(rune('a' + i)))
		b.WriteString("\n")
		b.WriteString(s)
		b.WriteString("\n")
	}
	writeFile(t, dir, "one.fa", b.String())
	writeFile(t, dir, "two.fa", b.String())
	pattern := filepath.Join(dir, "*.fa")

	c1, serial, e1 := run(t, "-t", "1", "fold", "--fasta", pattern)
	c4, parallel, e4 := run(t, "-t", "4", "--prefix-workers", "3", "fold", "--fasta", pattern)
	if c1 != appshell.ExitOK || c4 != appshell.ExitOK {
		t.Fatalf("exit %d/%d: %q %q", c1, c4, e1, e4)
	}
	if serial != parallel {
		t.Fatalf("parallel output differs:\n%s\nvs\n%s", serial, parallel)
	}
	if n := strings.Count(serial, "\n"); n != 2*len(seqs) {
		t.Fatalf("want %d rows, got %d", 2*len(seqs), n)
	}
}

func TestFold_PlainTextFile(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "seqs.txt", "Aa\n\nAaAa\n")
	code, out, _ := run(t, "fold", "-f", fn)
	if code != appshell.ExitOK {
		t.Fatalf("exit %d", code)
	}
	want := "seqs.txt:1\t2\t1\tAa\t()\t\nseqs.txt:3\t4\t2\tAaAa\t(())\t\n"
	if out != want {
		t.Fatalf("got %q want %q", out, want)
	}
}

func TestFold_MissingFile(t *testing.T) {
	code, _, errOut := run(t, "fold", "--fasta", filepath.Join(t.TempDir(), "none.fa"))
	if code != appshell.ExitIO {
		t.Fatalf("exit %d want %d (%s)", code, appshell.ExitIO, errOut)
	}
}

func TestFold_UnmatchedGlob(t *testing.T) {
	code, _, _ := run(t, "fold", "--fasta", filepath.Join(t.TempDir(), "*.fa"))
	if code != appshell.ExitUsage {
		t.Fatalf("exit %d want %d", code, appshell.ExitUsage)
	}
}

func TestFold_FailEmpty(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "empty.fa", "")
	if code, _, _ := run(t, "fold", "--fasta", fn); code != appshell.ExitOK {
		t.Fatalf("empty input without --fail-empty: exit %d", code)
	}
	if code, _, _ := run(t, "fold", "--fail-empty", "--fasta", fn); code != appshell.ExitEmpty {
		t.Fatalf("exit %d want %d", code, appshell.ExitEmpty)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no input", []string{"fold"}},
		{"unknown format", []string{"-o", "xml", "fold", "Aa"}},
		{"bad marker", []string{"--marker", "ab", "fold", "Aa"}},
		{"bad log level", []string{"--log-level", "loud", "fold", "Aa"}},
		{"unknown flag", []string{"fold", "--nope", "Aa"}},
		{"too long", []string{"--max-length", "3", "fold", "AaAa"}},
		{"matrix arity", []string{"matrix", "Aa", "Aa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := run(t, tt.args...)
			if code != appshell.ExitUsage {
				t.Fatalf("exit %d want %d (stderr=%q)", code, appshell.ExitUsage, errOut)
			}
			if errOut == "" {
				t.Fatal("expected a message on stderr")
			}
		})
	}
}

func TestMinLoopFlag(t *testing.T) {
	_, out, _ := run(t, "--min-loop", "3", "fold", "AaAa")
	if !strings.Contains(out, "\t1\tAaAa\t(..)\t") {
		t.Fatalf("min loop not applied: %q", out)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	fn := writeFile(t, t.TempDir(), "nussifold.yaml", "min_loop_length: 3\nheader: true\n")
	_, out, _ := run(t, "--config", fn, "fold", "AaAa")
	if !strings.HasPrefix(out, "id\t") || !strings.Contains(out, "(..)") {
		t.Fatalf("config file not applied: %q", out)
	}

	t.Setenv("NUSSIFOLD_OUTPUT", "jsonl")
	_, out, _ = run(t, "fold", "Aa")
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("env not applied: %q", out)
	}
	// flags beat the environment
	_, out, _ = run(t, "-o", "text", "fold", "Aa")
	if !strings.HasPrefix(out, "seq1\t") {
		t.Fatalf("flag should override env: %q", out)
	}
}

func TestMatrix(t *testing.T) {
	code, out, errOut := run(t, "matrix", "A*a")
	if code != appshell.ExitOK {
		t.Fatalf("exit %d (%s)", code, errOut)
	}
	// canonical "Aa" filled: one pair over the full span
	if !strings.Contains(out, "A") || !strings.Contains(out, "1") {
		t.Fatalf("matrix output %q", out)
	}
	if code, _, _ := run(t, "matrix", "*A"); code != appshell.ExitUsage {
		t.Fatalf("invalid sequence: exit %d", code)
	}
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != appshell.ExitOK || out != "nussifold version "+version.Version+"\n" {
		t.Fatalf("exit %d out %q", code, out)
	}
}

func TestNoArgsPrintsHelp(t *testing.T) {
	code, out, _ := run(t)
	if code != appshell.ExitOK || !strings.Contains(out, "Usage:") || !strings.Contains(out, "fold") {
		t.Fatalf("exit %d out %q", code, out)
	}
}

func TestDocs(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ref")
	if code, _, errOut := run(t, "docs", "--dir", dir); code != appshell.ExitOK {
		t.Fatalf("exit %d (%s)", code, errOut)
	}
	for _, name := range []string{"nussifold.md", "nussifold_fold.md", "nussifold_path.md", "nussifold_matrix.md"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}
