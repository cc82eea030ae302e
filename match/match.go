/*
Package match provides fuzzy name matching on top of the phonetic
encoders of this module.

Two words are considered phonetically equal if their code sets overlap,
so "Smith" matches "Schmidt" under Double Metaphone because both may
encode to XMT. Matching a query against a list of candidates happens in
two stages: phonetic equality acts as a coarse filter, and the
Jaro-Winkler string similarity of the words orders the survivors and
weeds out accidental code collisions below a minimum score. Candidates
that fail the phonetic filter may still match on spelling alone if
their similarity clears a second, stricter threshold.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package match

import (
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/phonetic"
	"github.com/npillmayer/phonetic/internal/tracing"
)

// Default thresholds of a Matcher. A phonetically equal candidate must
// reach MinScore in spelling similarity; a candidate that is not
// phonetically equal must reach FallbackScore.
const (
	DefaultMinScore      = 0.6
	DefaultFallbackScore = 0.9
)

// Equal reports whether a and b share at least one phonetic code under
// enc. Words that encode to no code at all (e.g. without any Latin
// letter) match nothing, not even each other.
func Equal(enc phonetic.Encoder, a, b string) bool {
	codes := codeSet(enc, a)
	for _, c := range enc.Encode(b).Codes() {
		if codes.Contains(c) {
			return true
		}
	}
	return false
}

// Score returns the Jaro-Winkler similarity of a and b in [0, 1],
// ignoring case. It measures spelling, not sound; the Matcher uses it
// to order words that already matched phonetically.
func Score(a, b string) float64 {
	return matchr.JaroWinkler(strings.ToLower(a), strings.ToLower(b), false)
}

// A Candidate is one ranked result of Matcher.Rank.
type Candidate struct {
	Word  string
	Score float64
}

// A Matcher matches query words against candidate words using a fixed
// phonetic encoder and similarity thresholds. The zero thresholds are
// filled in from the defaults; a Matcher is safe for concurrent use.
type Matcher struct {
	enc           phonetic.Encoder
	minScore      float64
	fallbackScore float64
}

// Option configures a Matcher.
type Option func(*Matcher)

// MinScore sets the similarity threshold for phonetically equal
// candidates.
func MinScore(s float64) Option {
	return func(m *Matcher) { m.minScore = s }
}

// FallbackScore sets the similarity threshold for candidates that are
// not phonetically equal to the query. Setting it to 1 restricts the
// fallback to identical spellings; above 1 it is off entirely.
func FallbackScore(s float64) Option {
	return func(m *Matcher) { m.fallbackScore = s }
}

// NewMatcher creates a Matcher on top of enc.
func NewMatcher(enc phonetic.Encoder, opts ...Option) *Matcher {
	m := &Matcher{
		enc:           enc,
		minScore:      DefaultMinScore,
		fallbackScore: DefaultFallbackScore,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Rank returns the candidates matching query, ordered by descending
// spelling similarity. The sort is stable, so candidates with equal
// scores keep their input order.
func (m *Matcher) Rank(query string, candidates []string) []Candidate {
	codes := codeSet(m.enc, query)
	tracing.P("query", query).Debugf("ranking %d candidates against %v", len(candidates), codes.Values())
	var ranked []Candidate
	for _, word := range candidates {
		score := Score(query, word)
		if m.phoneticsOverlap(codes, word) {
			if score >= m.minScore {
				ranked = append(ranked, Candidate{Word: word, Score: score})
			}
		} else if score >= m.fallbackScore {
			ranked = append(ranked, Candidate{Word: word, Score: score})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Best returns the best matching candidate for query, if any.
func (m *Matcher) Best(query string, candidates []string) (Candidate, bool) {
	ranked := m.Rank(query, candidates)
	if len(ranked) == 0 {
		return Candidate{}, false
	}
	return ranked[0], true
}

func (m *Matcher) phoneticsOverlap(codes *hashset.Set, word string) bool {
	for _, c := range m.enc.Encode(word).Codes() {
		if codes.Contains(c) {
			return true
		}
	}
	return false
}

func codeSet(enc phonetic.Encoder, word string) *hashset.Set {
	codes := hashset.New()
	for _, c := range enc.Encode(word).Codes() {
		codes.Add(c)
	}
	return codes
}

// Rank matches candidates against query with a default Matcher on enc.
func Rank(enc phonetic.Encoder, query string, candidates []string) []Candidate {
	return NewMatcher(enc).Rank(query, candidates)
}
