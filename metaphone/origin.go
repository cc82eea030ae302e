package metaphone

import "strings"

// isSlavoGermanic reports whether Slavic or Germanic spelling conventions
// likely apply to the word. The predicate is deliberately crude: the
// presence of a W or K anywhere (rare in native English and Romance
// spellings), or of the clusters CZ or WITZ, is taken as evidence.
// The flag gates a handful of rules downstream, e.g. how an initial J or
// a -WICZ ending is coded.
func (b buffer) isSlavoGermanic() bool {
	w := b.letters()
	return strings.Contains(w, "W") ||
		strings.Contains(w, "K") ||
		strings.Contains(w, "CZ") ||
		strings.Contains(w, "WITZ")
}
