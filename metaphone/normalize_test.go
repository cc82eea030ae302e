package metaphone

import (
	"testing"

	"github.com/npillmayer/phonetic/internal/tracing"
)

func TestNormalize(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	cases := []struct {
		word    string
		letters string
	}{
		{"Smith", "SMITH"},
		{"o'brien", "OBRIEN"},
		{"van Gogh", "VANGOGH"},
		{"Ångström", "ANGSTROM"},
		{"Œuvre", "UVRE"}, // ligatures do not decompose to letters
		{"x1y2z3", "XYZ"},
		{"", ""},
		{"123", ""},
	}
	for _, c := range cases {
		in := normalize(c.word)
		if in.letters() != c.letters {
			t.Errorf("%q: have %q, want %q", c.word, in.letters(), c.letters)
		}
		if in.last != len(c.letters)-1 {
			t.Errorf("%q: have last = %d, want %d", c.word, in.last, len(c.letters)-1)
		}
	}
}

func TestBufferAccessors(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	in := normalize("abc")
	if in.at(0) != 'A' || in.at(2) != 'C' {
		t.Errorf("unexpected letters: %q %q", in.at(0), in.at(2))
	}
	if in.at(-1) != sentinel || in.at(3) != sentinel || in.at(100) != sentinel {
		t.Error("out of range positions should read as the sentinel")
	}
	if !in.is(0, "ABC") || !in.is(1, "BC", "XY") || in.is(0, "ABCD") {
		t.Error("pattern matching at positions failed")
	}
	if in.sub(1, 3) != "BC" || in.sub(-2, 2) != "AB" || in.sub(20, 30) != "" {
		t.Error("substring clamping failed")
	}
	if in.sub(2, 5) != "C--" {
		t.Error("windows beyond the last letter should read padding")
	}
}

func TestSlavoGermanic(t *testing.T) {
	tracing.SetTestingLog(t)
	//
	cases := []struct {
		word  string
		slavo bool
	}{
		{"Wasserman", true},
		{"Kowalski", true},
		{"Czerny", true},
		{"Horowitz", true},
		{"Thomas", false},
		{"Cabrillo", false},
		{"", false},
	}
	for _, c := range cases {
		if have := normalize(c.word).isSlavoGermanic(); have != c.slavo {
			t.Errorf("%s: have %v, want %v", c.word, have, c.slavo)
		}
	}
}
