/*
Package soundex implements the classic Soundex phonetic encoding.

Soundex keeps the first letter of a word and replaces the remaining
letters by digit classes (labials, gutturals, dentals, and so on),
dropping vowels and collapsing runs of the same class. The code is
padded with zeros to a fixed length, four by default. It is much coarser
than Double Metaphone but cheap and still in widespread use, e.g. in
genealogy databases.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package soundex

import (
	"strings"
	"unicode"

	"github.com/npillmayer/phonetic"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLength is the code length of standard Soundex.
const DefaultLength = 4

// digits maps 'A'…'Z' to their Soundex digit class, with '0' marking the
// letters that separate runs without coding.
const digits = "01230120022455012623010202"

var folder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Encode returns the standard 4-symbol Soundex code for word, e.g.
// "R163" for both "Robert" and "Rupert". Words without Latin letters
// encode to the empty string.
func Encode(word string) string {
	return encode(word, DefaultLength)
}

// Encoder makes Soundex available behind the phonetic.Encoder interface.
// Length is the code length; the zero value uses DefaultLength. Soundex
// has no notion of a pronunciation alternative, so the Result's
// Secondary always equals its Primary.
type Encoder struct {
	Length int
}

// Encode encodes a single word. (Interface phonetic.Encoder)
func (e Encoder) Encode(word string) phonetic.Result {
	length := e.Length
	if length <= 0 {
		length = DefaultLength
	}
	code := encode(word, length)
	return phonetic.Result{Primary: code, Secondary: code}
}

func encode(word string, length int) string {
	folded, _, err := transform.String(folder, word)
	if err != nil {
		folded = word
	}
	out := phonetic.NewPooledBuilder(length)
	defer out.Discard()
	var prev byte
	for _, r := range folded {
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			continue
		}
		d := digits[r-'A']
		if out.Len() == 0 {
			out.Add(string(r)) // the first letter codes as itself
		} else if d != '0' && d != prev {
			out.Add(string(d))
		}
		prev = d
		if out.Full() {
			break
		}
	}
	code := out.Result().Primary
	if code == "" {
		return ""
	}
	if n := length - len(code); n > 0 {
		code += strings.Repeat("0", n)
	}
	return code
}
