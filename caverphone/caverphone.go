/*
Package caverphone implements the Caverphone 2.0 phonetic encoding.

Caverphone was developed by the Caversham project at the University of
Otago to match surnames in New Zealand electoral rolls, and its rules
reflect the accents found there. The encoding is a fixed cascade of
rewriting steps over the lowercased word, ending in a ten-symbol code
padded with '1' characters, e.g. "Stevenson" to "STFNSN1111". Unlike
Double Metaphone it produces a single code per word.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package caverphone

import (
	"regexp"
	"strings"

	"github.com/npillmayer/phonetic"
)

// Length is the fixed code length of Caverphone 2.0.
const Length = 10

var (
	nonLetter = regexp.MustCompile(`[^a-z]`)
	runs      = []struct {
		re *regexp.Regexp
		to string
	}{
		{regexp.MustCompile(`s+`), "S"},
		{regexp.MustCompile(`t+`), "T"},
		{regexp.MustCompile(`p+`), "P"},
		{regexp.MustCompile(`k+`), "K"},
		{regexp.MustCompile(`f+`), "F"},
		{regexp.MustCompile(`m+`), "M"},
		{regexp.MustCompile(`n+`), "N"},
	}
)

// Encode returns the ten-symbol Caverphone 2.0 code for word. A word
// without Latin letters encodes to all padding, "1111111111".
func Encode(word string) string {
	return encode(word)
}

// Encoder makes Caverphone available behind the phonetic.Encoder
// interface. The zero value is ready to use; the Result's Secondary
// always equals its Primary.
type Encoder struct{}

// Encode encodes a single word. (Interface phonetic.Encoder)
func (Encoder) Encode(word string) phonetic.Result {
	code := encode(word)
	return phonetic.Result{Primary: code, Secondary: code}
}

// The cascade below follows the published 2.0 revision step by step,
// including its oddities (the "wh3" rule is shadowed by the "w3" rule
// right before it). The intermediate alphabet uses '2' for letters to
// be dropped and '3' for vowels.
func encode(word string) string {
	txt := nonLetter.ReplaceAllString(strings.ToLower(word), "")
	txt = strings.TrimSuffix(txt, "e")
	for _, p := range [...][2]string{
		{"cough", "cou2f"}, {"rough", "rou2f"}, {"tough", "tou2f"},
		{"enough", "enou2f"}, {"trough", "trou2f"}, {"gn", "2n"},
	} {
		if strings.HasPrefix(txt, p[0]) {
			txt = p[1] + txt[len(p[0]):]
		}
	}
	if strings.HasSuffix(txt, "mb") {
		txt = txt[:len(txt)-1] + "2"
	}
	for _, p := range [...][2]string{
		{"cq", "2q"}, {"ci", "si"}, {"ce", "se"}, {"cy", "sy"},
		{"tch", "2ch"}, {"c", "k"}, {"q", "k"}, {"x", "k"}, {"v", "f"},
		{"dg", "2g"}, {"tio", "sio"}, {"tia", "sia"}, {"d", "t"},
		{"ph", "fh"}, {"b", "p"}, {"sh", "s2"}, {"z", "s"},
	} {
		txt = strings.ReplaceAll(txt, p[0], p[1])
	}
	if len(txt) > 0 && strings.IndexByte("aeiou", txt[0]) >= 0 {
		txt = "A" + txt[1:]
	}
	txt = strings.Map(func(r rune) rune {
		if strings.ContainsRune("aeiou", r) {
			return '3'
		}
		return r
	}, txt)
	txt = strings.ReplaceAll(txt, "j", "y")
	if strings.HasPrefix(txt, "y3") {
		txt = "Y" + txt[1:]
	} else if strings.HasPrefix(txt, "y") {
		txt = "A" + txt[1:]
	}
	txt = strings.ReplaceAll(txt, "y", "3")
	txt = strings.ReplaceAll(txt, "3gh3", "3kh3")
	txt = strings.ReplaceAll(txt, "gh", "22")
	txt = strings.ReplaceAll(txt, "g", "k")
	for _, r := range runs {
		txt = r.re.ReplaceAllString(txt, r.to)
	}
	txt = strings.ReplaceAll(txt, "w3", "W3")
	txt = strings.ReplaceAll(txt, "wh3", "Wh3")
	txt = replaceFinal(txt, 'w', "3")
	txt = strings.ReplaceAll(txt, "w", "2")
	if strings.HasPrefix(txt, "h") {
		txt = "A" + txt[1:]
	}
	txt = strings.ReplaceAll(txt, "h", "2")
	txt = strings.ReplaceAll(txt, "r3", "R3")
	txt = replaceFinal(txt, 'r', "3")
	txt = strings.ReplaceAll(txt, "r", "2")
	txt = strings.ReplaceAll(txt, "l3", "L3")
	txt = replaceFinal(txt, 'l', "3")
	txt = strings.ReplaceAll(txt, "l", "2")
	txt = strings.ReplaceAll(txt, "2", "")
	txt = replaceFinal(txt, '3', "A")
	txt = strings.ReplaceAll(txt, "3", "")
	txt += strings.Repeat("1", Length)
	return txt[:Length]
}

func replaceFinal(txt string, c byte, with string) string {
	if len(txt) > 0 && txt[len(txt)-1] == c {
		return txt[:len(txt)-1] + with
	}
	return txt
}
