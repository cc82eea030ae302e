package metaphone

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// The rule table looks at windows of up to six letters beyond the cursor
// ("HARAC" after an initial C is the widest). Padding the normalized
// letters with six sentinels makes every lookahead window safe without
// bounds checks; lookbehind is handled by the clamped accessors below.
const (
	sentinel = '-'
	padding  = "------"
)

// folder decomposes precomposed letters and strips the combining marks,
// so that "é" folds to "E" and "Ñ" to "N" before dispatch.
var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// buffer is the normalized form of an input word: uppercase A–Z letters
// followed by sentinel padding. All rule predicates operate on buffers.
type buffer struct {
	buf  string
	last int // index of the last real letter, -1 if there is none
}

// normalize folds word to uppercase Latin letters, drops everything
// else, and appends the sentinel padding. It is total: the worst case
// is an empty buffer consisting of padding only.
func normalize(word string) buffer {
	folded, _, err := transform.String(folder, word)
	if err != nil {
		folded = word
	}
	var sb strings.Builder
	sb.Grow(len(folded) + len(padding))
	for _, r := range folded {
		switch {
		case r >= 'A' && r <= 'Z':
			sb.WriteByte(byte(r))
		case r >= 'a' && r <= 'z':
			sb.WriteByte(byte(r - 'a' + 'A'))
		}
	}
	n := sb.Len()
	sb.WriteString(padding)
	return buffer{buf: sb.String(), last: n - 1}
}

// letters returns the real letters of the buffer, without the padding.
func (b buffer) letters() string {
	return b.buf[:b.last+1]
}

// at returns the letter at position i, or the sentinel if i lies outside
// the buffer.
func (b buffer) at(i int) byte {
	if i < 0 || i >= len(b.buf) {
		return sentinel
	}
	return b.buf[i]
}

// sub returns the window [i, j) of the buffer, clamped to its bounds.
// A clamped window is shorter than requested and therefore never equals
// a full-length pattern, which is exactly the behavior the rule table
// relies on for positions near the start of the word.
func (b buffer) sub(i, j int) string {
	if i < 0 {
		i = 0
	}
	if j > len(b.buf) {
		j = len(b.buf)
	}
	if i >= j {
		return ""
	}
	return b.buf[i:j]
}

// is reports whether any of the patterns occurs at position i.
func (b buffer) is(i int, patterns ...string) bool {
	for _, p := range patterns {
		if b.sub(i, i+len(p)) == p {
			return true
		}
	}
	return false
}

// among reports whether c is one of the letters in set.
func among(c byte, set string) bool {
	return strings.IndexByte(set, c) >= 0
}

// isVowel treats Y as a vowel, as the rule table does.
func isVowel(c byte) bool {
	return among(c, "AEIOUY")
}
