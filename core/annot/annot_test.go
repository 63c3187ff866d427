package annot

import (
	"errors"
	"reflect"
	"testing"
)

func TestPreprocess(t *testing.T) {
	cases := []struct {
		raw, want string
	}{
		{"a*ub*", "AuB"},
		{"AUAU", "AUAU"},
		{"a*blb*a", "AblBa"},
		{"ab*l", "aBl"},
		{"l", "l"},
	}
	for _, c := range cases {
		got, err := Preprocess(c.raw, Options{})
		if err != nil {
			t.Fatalf("Preprocess(%q): %v", c.raw, err)
		}
		if got.Seq != c.want {
			t.Errorf("Preprocess(%q)=%q want %q", c.raw, got.Seq, c.want)
		}
	}
}

func TestPreprocess_Eligibility(t *testing.T) {
	got, err := Preprocess("a*ub*l", Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, true, false}
	if !reflect.DeepEqual(got.Eligible, want) {
		t.Fatalf("eligible=%v want %v", got.Eligible, want)
	}
}

func TestPreprocess_Invalid(t *testing.T) {
	cases := []struct {
		raw string
		pos int // 0 when no position is reported
	}{
		{"", 0},
		{"*a", 1},
		{"a**", 3},
		{"al*", 3},
		{"a1", 2},
		{"a b", 2},
	}
	for _, c := range cases {
		_, err := Preprocess(c.raw, Options{})
		if !errors.Is(err, ErrInvalidSequence) {
			t.Errorf("Preprocess(%q): want ErrInvalidSequence, got %v", c.raw, err)
			continue
		}
		var pe *PositionError
		if errors.As(err, &pe) {
			if pe.Pos != c.pos {
				t.Errorf("Preprocess(%q): pos %d want %d", c.raw, pe.Pos, c.pos)
			}
		} else if c.pos != 0 {
			t.Errorf("Preprocess(%q): expected a PositionError, got %v", c.raw, err)
		}
	}
}

func TestPreprocess_CustomSymbols(t *testing.T) {
	got, err := Preprocess("a+u|U", Options{Marker: '+', Separator: '|'})
	if err != nil {
		t.Fatal(err)
	}
	if got.Seq != "Au|U" {
		t.Fatalf("got %q", got.Seq)
	}
	if _, err := Preprocess("a*", Options{Marker: '+', Separator: '|'}); err == nil {
		t.Fatal("default marker should be rejected when a custom one is set")
	}
}

func TestFromAnnotationAndFormat_RoundTrip(t *testing.T) {
	c, err := FromAnnotation("augcLb", []bool{true, false, false, true, false, false}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Seq != "AugClb" {
		t.Fatalf("canonical=%q", c.Seq)
	}
	raw := Format(c, Options{})
	if raw != "a*ugc*lb" {
		t.Fatalf("format=%q", raw)
	}
	back, err := Preprocess(raw, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(back, c) {
		t.Fatalf("round trip: %+v != %+v", back, c)
	}
}

func TestFromAnnotation_LengthMismatch(t *testing.T) {
	if _, err := FromAnnotation("ab", []bool{true}, Options{}); !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("want ErrInvalidSequence, got %v", err)
	}
}

// An eligible separator is rejected on both input paths, so modules never merge.
func TestFromAnnotation_EligibleSeparator(t *testing.T) {
	tests := []struct {
		bases string
		opts  Options
		raw   string // the same annotation in marker form, if expressible
	}{
		{"alb", Options{}, "al*b"},
		{"aLb", Options{}, ""}, // input case carries no meaning here
		{"a|b", Options{Separator: '|'}, "a|*b"},
	}
	for _, tt := range tests {
		_, err := FromAnnotation(tt.bases, []bool{false, true, false}, tt.opts)
		var pe *PositionError
		if !errors.As(err, &pe) || pe.Pos != 2 {
			t.Errorf("FromAnnotation(%q): want PositionError at 2, got %v", tt.bases, err)
		}
		if tt.raw == "" {
			continue
		}
		if _, err := Preprocess(tt.raw, tt.opts); !errors.Is(err, ErrInvalidSequence) {
			t.Errorf("Preprocess(%q): want ErrInvalidSequence, got %v", tt.raw, err)
		}
	}
}

func TestFromAnnotation_SeparatorKeepsModules(t *testing.T) {
	c, err := FromAnnotation("aLb", []bool{true, false, false}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if c.Seq != "Alb" {
		t.Fatalf("canonical=%q", c.Seq)
	}
	back, err := Preprocess(Format(c, Options{}), Options{})
	if err != nil || back.Seq != c.Seq {
		t.Fatalf("round trip %q: %v", back.Seq, err)
	}
}
