package match_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/phonetic/match"
	"github.com/npillmayer/phonetic/metaphone"
	"github.com/npillmayer/phonetic/soundex"
	"github.com/npillmayer/schuko/testconfig"
)

func ExampleRank() {
	var enc metaphone.Encoder
	ranked := match.Rank(enc, "Smith", []string{"Schmidt", "Thomas", "Smithe"})
	for _, c := range ranked {
		fmt.Println(c.Word)
	}
	// Output: Smithe
	// Schmidt
}

func TestEqual(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var enc metaphone.Encoder
	cases := []struct {
		a, b  string
		equal bool
	}{
		{"Smith", "Schmidt", true}, // both may encode to XMT
		{"Smith", "Smyth", true},
		{"Jankelowicz", "Yankelovich", true},
		{"Smith", "Thomas", false},
		{"", "Smith", false},
		{"", "", false}, // no codes, nothing to overlap
	}
	for _, c := range cases {
		if have := match.Equal(enc, c.a, c.b); have != c.equal {
			t.Errorf("Equal(%q, %q): have %v, want %v", c.a, c.b, have, c.equal)
		}
	}
}

func TestEqualWithSoundex(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var enc soundex.Encoder
	if !match.Equal(enc, "Robert", "Rupert") {
		t.Error("Robert and Rupert share the Soundex code R163")
	}
	if match.Equal(enc, "Robert", "Washington") {
		t.Error("Robert and Washington should not match")
	}
}

func TestScore(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if s := match.Score("Smith", "smith"); s != 1 {
		t.Errorf("identical words up to case should score 1, have %f", s)
	}
	if close, far := match.Score("Smith", "Smithe"), match.Score("Smith", "Schmidt"); close <= far {
		t.Errorf("Smithe (%f) should outscore Schmidt (%f)", close, far)
	}
}

func TestRank(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var enc metaphone.Encoder
	ranked := match.Rank(enc, "Smith", []string{"Thomas", "Schmidt", "Wasserman", "Smithe"})
	if len(ranked) != 2 {
		t.Fatalf("have %d candidates, want 2: %v", len(ranked), ranked)
	}
	if ranked[0].Word != "Smithe" || ranked[1].Word != "Schmidt" {
		t.Errorf("unexpected ranking order: %v", ranked)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("scores should decrease: %v", ranked)
	}
	if empty := match.Rank(enc, "", []string{"Smith"}); len(empty) != 0 {
		t.Errorf("empty query should match nothing, have %v", empty)
	}
}

func TestMatcherMinScore(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Schmidt is phonetically equal to Smith but spelled too differently
	// for a strict minimum score.
	var enc metaphone.Encoder
	m := match.NewMatcher(enc, match.MinScore(0.9))
	if ranked := m.Rank("Smith", []string{"Schmidt"}); len(ranked) != 0 {
		t.Errorf("Schmidt should fall below the minimum score, have %v", ranked)
	}
}

func TestMatcherFallbackScore(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	// Xavier and Javier share no code (SF/SFR vs. JF/AFR), so only the
	// spelling fallback can match them.
	var enc metaphone.Encoder
	if ranked := match.Rank(enc, "Xavier", []string{"Javier"}); len(ranked) != 0 {
		t.Errorf("Javier should not match with the default thresholds, have %v", ranked)
	}
	m := match.NewMatcher(enc, match.FallbackScore(0.85))
	if ranked := m.Rank("Xavier", []string{"Javier"}); len(ranked) != 1 {
		t.Errorf("Javier should match on spelling alone, have %v", ranked)
	}
}

func TestMatcherBest(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	var enc metaphone.Encoder
	m := match.NewMatcher(enc)
	best, ok := m.Best("Smith", []string{"Schmidt", "Smithe"})
	if !ok || best.Word != "Smithe" {
		t.Errorf("have %v (%v), want Smithe", best, ok)
	}
	if _, ok := m.Best("Smith", []string{"Thomas"}); ok {
		t.Error("Thomas should not match Smith at all")
	}
}
