/*
Package phonetic is about phonetic encoding algorithms and approximate
name matching.

Description

Phonetic encoding algorithms map a word or name to a short code which
reflects, intentionally approximately, how the word sounds. Two spellings
of the same name ("Smith", "Smyth") will usually receive the same code,
which makes the codes a good pre-filter for fuzzy search, deduplication
and record linkage. The codes are not phonetic transcriptions: they trade
precision for robustness against spelling variation and misspelling.

The algorithms implemented in the sub-packages of phonetic are classics of
this family.

Double Metaphone (package metaphone) is the second generation of the
Metaphone algorithm, published by Lawrence Philips in 2000. It is called
"double" because it may return two codes for a word, a primary and a
secondary, to account for ambiguous pronunciation as well as for variants
of surnames with common ancestry. Encoding "Smith" yields SM0 with
secondary XMT, while "Schmidt" yields XMT with secondary SMT; the shared
XMT is what lets the two names match. Double Metaphone tries to account
for irregularities in English of Slavic, Germanic, Celtic, Greek, French,
Italian, Spanish, and Chinese origin; the letter C alone is tested for
roughly 100 different contexts.

Soundex (package soundex) is the 1918 ancestor of this family, still in
use in genealogy and census work: an initial letter followed by digit
classes for the consonants.

Caverphone (package caverphone) is an algorithm developed for matching
names in New Zealand electoral rolls, implemented here in its revised
2.0 form.

Package match builds a small candidate matcher on top of any of the
encoders: phonetic code overlap selects candidates, string similarity
ranks them.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

Contents

Base package phonetic provides the shared plumbing for the encoders in
the sub-packages: the Result pair, the Encoder interface, and a pooled
code Builder which accumulates the primary/secondary symbol sequences of
an encoding pass.

Every encoder in this module is a pure function of its input: encoding
holds no state across calls, never fails, and is safe to call from any
number of goroutines concurrently. Edge conditions like empty input or
input without any Latin letter are defined outputs (empty codes), not
errors.
*/
package phonetic
