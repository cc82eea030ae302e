/*
Package metaphone implements the Double Metaphone phonetic encoding.

Content

Double Metaphone maps a word to one or two short codes that describe,
intentionally approximately, how the word sounds. The primary code is the
most likely American-English pronunciation; where the spelling admits more
than one reading, a diverging secondary code captures the alternative.
Encoding "Smith" yields SM0 with secondary XMT, "Schmidt" yields XMT with
secondary SMT; the shared XMT is what makes the two names match.

The encoder walks a cursor over the normalized word (uppercase Latin
letters, everything else stripped) and classifies each letter in context:
digraphs and trigraphs ("CH", "SCH", "TCH"), silent letters (initial
"GN"/"KN"/"PN"/"WR"/"PS", interior "GH", island-style "S"), doubled
letters, and a number of language-of-origin branches gated by a
Slavic/Germanic spelling heuristic. Rule order within a letter class is
load-bearing: the first matching context wins.

Codes are capped at four symbols drawn from the alphabet
A B F H J K L M N P R S T V W X Z plus the digit 0 for the TH sound.

Typical Usage

Clients call the package-level function

	primary, secondary := metaphone.Encode("Schmidt")

or use the Encoder type where a phonetic.Encoder is expected:

	var enc metaphone.Encoder
	result := enc.Encode("Schmidt")
	if result.Ambiguous() {
		...
	}

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package metaphone

import (
	"github.com/npillmayer/phonetic"
	"github.com/npillmayer/phonetic/internal/tracing"
)

// MaxCodeLen is the symbol cap for both the primary and the secondary
// code.
const MaxCodeLen = 4

// Encode returns the primary and secondary Double Metaphone codes for
// word. The secondary code equals the primary one if no rule detected a
// pronunciation ambiguity. Characters other than Latin letters are
// ignored; a word without any letter encodes to two empty codes.
func Encode(word string) (primary, secondary string) {
	r := encode(word)
	return r.Primary, r.Secondary
}

// Encoder makes Double Metaphone available behind the phonetic.Encoder
// interface. The zero value is ready to use.
type Encoder struct{}

// Encode encodes a single word. (Interface phonetic.Encoder)
func (Encoder) Encode(word string) phonetic.Result {
	return encode(word)
}

// An action is the outcome of dispatching the letter(s) under the
// cursor: symbols for the primary and the secondary code (either may be
// empty) and the number of letters consumed. Primary and secondary
// differing is what produces "double" codes; both still share the same
// cursor trajectory.
type action struct {
	primary   string
	secondary string
	advance   int
}

func both(symbols string, advance int) action {
	return action{symbols, symbols, advance}
}

func split(primary, secondary string, advance int) action {
	return action{primary, secondary, advance}
}

func silent(advance int) action {
	return action{advance: advance}
}

func encode(word string) phonetic.Result {
	in := normalize(word)
	if in.last < 0 {
		return phonetic.Result{}
	}
	slavo := in.isSlavoGermanic()
	tracing.P("word", in.letters()).Debugf("slavo-germanic = %v", slavo)
	out := phonetic.NewPooledBuilder(MaxCodeLen)
	pos := 0
	if in.is(0, "GN", "KN", "PN", "WR", "PS") { // skip these silent letters at start
		pos = 1
	}
	if in.at(0) == 'X' { // initial 'X' is pronounced 'Z', e.g. 'Xavier'
		out.Add("S")
		pos = 1
	}
	for pos <= in.last && !out.Full() {
		act := dispatch(in, pos, slavo)
		tracing.P("pos", pos).Debugf("%c -> %q|%q +%d", in.at(pos), act.primary, act.secondary, act.advance)
		out.AddAlt(act.primary, act.secondary)
		pos += act.advance
	}
	res := out.Result()
	out.Discard()
	return res
}

// dispatch classifies the letter at pos and runs the contextual
// sub-rules of its class. Within a class the first matching context
// wins; the order of the cases is part of the algorithm.
func dispatch(in buffer, pos int, slavo bool) action {
	switch c := in.at(pos); c {
	case 'A', 'E', 'I', 'O', 'U', 'Y':
		if pos == 0 { // all initial vowels map to 'A'
			return both("A", 1)
		}
		return silent(1)
	case 'B': // "-mb" as in 'dumb' is handled at 'M'
		return doubled(in, pos, "P")
	case 'C':
		return ruleC(in, pos)
	case 'D':
		return ruleD(in, pos)
	case 'F':
		return doubled(in, pos, "F")
	case 'G':
		return ruleG(in, pos, slavo)
	case 'H':
		return ruleH(in, pos)
	case 'J':
		return ruleJ(in, pos, slavo)
	case 'K':
		return doubled(in, pos, "K")
	case 'L':
		return ruleL(in, pos)
	case 'M':
		return ruleM(in, pos)
	case 'N':
		return doubled(in, pos, "N")
	case 'P':
		return ruleP(in, pos)
	case 'Q':
		return doubled(in, pos, "K")
	case 'R':
		return ruleR(in, pos, slavo)
	case 'S':
		return ruleS(in, pos, slavo)
	case 'T':
		return ruleT(in, pos)
	case 'V':
		return doubled(in, pos, "F")
	case 'W':
		return ruleW(in, pos)
	case 'X':
		return ruleX(in, pos)
	case 'Z':
		return ruleZ(in, pos, slavo)
	}
	return silent(1)
}

// doubled collapses a letter and its immediate repetition into a single
// code symbol.
func doubled(in buffer, pos int, symbol string) action {
	if in.at(pos+1) == in.at(pos) {
		return both(symbol, 2)
	}
	return both(symbol, 1)
}

// ruleC handles the most context-dependent letter of the table.
func ruleC(in buffer, pos int) action {
	switch {
	case pos > 1 && !isVowel(in.at(pos-2)) && in.is(pos-1, "ACH") &&
		in.at(pos+2) != 'I' &&
		(in.at(pos+2) != 'E' || in.is(pos-2, "BACHER", "MACHER")):
		return both("K", 2) // various germanic
	case pos == 0 && in.is(0, "CAESAR"):
		return both("S", 2)
	case in.is(pos, "CHIA"): // italian 'chianti'
		return both("K", 2)
	case in.is(pos, "CH"):
		return ruleCH(in, pos)
	case in.is(pos, "CZ") && !in.is(pos-2, "WICZ"): // e.g. 'czerny'
		return split("S", "X", 2)
	case in.is(pos+1, "CIA"): // e.g. 'focaccia'
		return both("X", 3)
	case in.is(pos, "CC") && !(pos == 1 && in.at(0) == 'M'):
		return ruleCC(in, pos) // double 'C', but not 'McClellan'
	case in.is(pos, "CK", "CG", "CQ"):
		return both("K", 2)
	case in.is(pos, "CI", "CE", "CY"):
		if in.is(pos, "CIO", "CIE", "CIA") { // italian vs. english
			return split("S", "X", 2)
		}
		return both("S", 2)
	}
	if among(in.at(pos+1), "CKQ") && !in.is(pos+1, "CE", "CI") {
		return both("K", 2)
	}
	return both("K", 1) // default for 'C'
}

func ruleCH(in buffer, pos int) action {
	switch {
	case pos > 0 && in.is(pos, "CHAE"): // 'michael'
		return split("K", "X", 2)
	case pos == 0 &&
		(in.is(pos+1, "HARAC", "HARIS") || in.is(pos+1, "HOR", "HYM", "HIA", "HEM")) &&
		!in.is(0, "CHORE"):
		return both("K", 2) // greek roots, e.g. 'chorus'
	case in.is(0, "SCH") || // germanic, greek, or otherwise 'ch' for 'kh' sound
		in.is(pos-2, "ORCHES", "ARCHIT", "ORCHID") ||
		among(in.at(pos+2), "TS") ||
		((among(in.at(pos-1), "AOUE") || pos == 0) && among(in.at(pos+2), "LRNMBHFVW")):
		return both("K", 2)
	case pos > 0:
		if in.is(0, "MC") { // e.g. 'McHugh'
			return both("K", 2)
		}
		return split("X", "K", 2)
	}
	return both("X", 2)
}

func ruleCC(in buffer, pos int) action {
	// 'bellocchio' but not 'bacchus'
	if among(in.at(pos+2), "IEH") && !in.is(pos+2, "HU") {
		if (pos == 1 && in.at(0) == 'A') || in.is(pos-1, "UCCEE", "UCCES") {
			return both("KS", 3) // 'accident', 'accede', 'succeed'
		}
		return both("X", 3) // 'bacci', 'bertucci', other italian
	}
	return both("K", 2)
}

func ruleD(in buffer, pos int) action {
	if in.is(pos, "DG") {
		if among(in.at(pos+2), "IEY") { // e.g. 'edge'
			return both("J", 3)
		}
		return both("TK", 2) // e.g. 'edgar'
	}
	if in.is(pos, "DT", "DD") {
		return both("T", 2)
	}
	return both("T", 1)
}

func ruleG(in buffer, pos int, slavo bool) action {
	next := in.at(pos + 1)
	switch {
	case next == 'H':
		return ruleGH(in, pos)
	case next == 'N':
		if !slavo && !in.is(pos+2, "EY") { // not e.g. 'cagney'
			return split("N", "KN", 2)
		}
		return both("KN", 2)
	case in.is(pos+1, "LI") && !slavo: // 'tagliaro'
		return split("KL", "L", 2)
	case pos == 0 &&
		(next == 'Y' || in.is(pos+1, "ES", "EP", "EB", "EL", "EY", "IB", "IL", "IN", "IE", "EI", "ER")):
		return split("K", "J", 2) // -ges-, -gep-, -gel-, -gie- at beginning
	case (in.is(pos+1, "ER") || next == 'Y') &&
		!in.is(0, "DANGER", "RANGER", "MANGER") &&
		!among(in.at(pos-1), "EI") &&
		!in.is(pos-1, "RGY", "OGY"):
		return split("K", "J", 2) // -ger-, -gy-
	case among(next, "EIY") || in.is(pos-1, "AGGI", "OGGI"):
		if in.is(0, "SCH") || in.is(pos+1, "ET") { // obvious germanic
			return both("K", 2)
		}
		return split("J", "K", 2) // italian e.g. 'biaggi'
	case next == 'G':
		return both("K", 2)
	}
	return both("K", 1)
}

func ruleGH(in buffer, pos int) action {
	switch {
	case pos > 0 && !isVowel(in.at(pos-1)):
		return both("K", 2)
	case pos == 0: // 'ghislane', 'ghiradelli'
		if in.at(pos+2) == 'I' {
			return both("J", 2)
		}
		return both("K", 2)
	case (pos > 1 && among(in.at(pos-2), "BHD")) || // Parker's rule, e.g. 'hugh'
		(pos > 2 && among(in.at(pos-3), "BHD")) ||
		(pos > 3 && among(in.at(pos-3), "BH")):
		return silent(2)
	case pos > 2 && in.at(pos-1) == 'U' && among(in.at(pos-3), "CGLRT"):
		return both("F", 2) // e.g. 'laugh', 'McLaughlin', 'cough', 'rough', 'tough'
	case in.at(pos-1) != 'I':
		return both("K", 2)
	}
	return silent(2)
}

func ruleH(in buffer, pos int) action {
	// only keep H at the start or between two vowels; also takes care of 'HH'
	if (pos == 0 || isVowel(in.at(pos-1))) && isVowel(in.at(pos+1)) {
		return both("H", 2)
	}
	return silent(1)
}

func ruleJ(in buffer, pos int, slavo bool) action {
	advance := 1
	if in.at(pos+1) == 'J' {
		advance = 2
	}
	switch {
	case in.is(pos, "JOSE"): // obvious spanish, 'jose'
		return split("J", "H", advance)
	case pos == 0: // Yankelovich/Jankelowicz
		return split("J", "A", advance)
	case isVowel(in.at(pos-1)) && !slavo && among(in.at(pos+1), "AO"):
		return split("J", "H", advance) // spanish pron. of e.g. 'bajador'
	case pos == in.last: // final J may be silent
		return split("J", "", advance)
	case !among(in.at(pos+1), "LTKSNMBZ") && !among(in.at(pos-1), "SKL"):
		return both("J", advance)
	}
	return silent(advance)
}

func ruleL(in buffer, pos int) action {
	if in.at(pos+1) != 'L' {
		return both("L", 1)
	}
	// spanish e.g. 'cabrillo', 'gallegos'
	if (pos == in.last-2 && in.is(pos-1, "ILLO", "ILLA", "ALLE")) ||
		((in.is(in.last-1, "AS", "OS") || among(in.at(in.last), "AO")) && in.is(pos-1, "ALLE")) {
		return split("L", "", 2)
	}
	return both("L", 2)
}

func ruleM(in buffer, pos int) action {
	if (in.is(pos+1, "UMB") && (pos+1 == in.last || in.is(pos+2, "ER"))) ||
		in.at(pos+1) == 'M' {
		return both("M", 2)
	}
	return both("M", 1)
}

func ruleP(in buffer, pos int) action {
	if in.at(pos+1) == 'H' {
		return both("F", 2)
	}
	if among(in.at(pos+1), "PB") { // also account for 'campbell', 'raspberry'
		return both("P", 2)
	}
	return both("P", 1)
}

func ruleR(in buffer, pos int, slavo bool) action {
	advance := 1
	if in.at(pos+1) == 'R' {
		advance = 2
	}
	// french e.g. 'rogier', but exclude 'hochmeier'
	if pos == in.last && !slavo && in.is(pos-2, "IE") && !in.is(pos-4, "ME", "MA") {
		return split("", "R", advance)
	}
	return both("R", advance)
}

func ruleS(in buffer, pos int, slavo bool) action {
	switch {
	case in.is(pos-1, "ISL", "YSL"): // 'island', 'isle', 'carlisle', 'carlysle'
		return silent(1)
	case pos == 0 && in.is(0, "SUGAR"):
		return split("X", "S", 1)
	case in.is(pos, "SH"):
		if in.is(pos+1, "HEIM", "HOEK", "HOLM", "HOLZ") { // germanic
			return both("S", 2)
		}
		return both("X", 2)
	case in.is(pos, "SIO", "SIA") || in.is(pos, "SIAN"): // italian & armenian
		if !slavo {
			return split("S", "X", 3)
		}
		return both("S", 3)
	case (pos == 0 && among(in.at(pos+1), "MNLW")) || in.at(pos+1) == 'Z':
		// german & anglicisations: 'smith' matches 'schmidt',
		// 'snider' matches 'schneider'; also -sz- in slavic
		if in.at(pos+1) == 'Z' {
			return split("S", "X", 2)
		}
		return split("S", "X", 1)
	case in.is(pos, "SC"):
		return ruleSC(in, pos)
	case pos == in.last && in.is(pos-2, "AI", "OI"):
		return split("", "S", 1) // french e.g. 'resnais', 'artois'
	}
	if among(in.at(pos+1), "SZ") {
		return both("S", 2)
	}
	return both("S", 1)
}

// ruleSC is Schlesinger's rule.
func ruleSC(in buffer, pos int) action {
	if in.at(pos+2) == 'H' {
		// dutch origin, e.g. 'school', 'schooner'
		if in.is(pos+3, "OO", "ER", "EN", "UY", "ED", "EM") {
			if in.is(pos+3, "ER", "EN") { // 'schermerhorn', 'schenker'
				return split("X", "SK", 3)
			}
			return both("SK", 3)
		}
		if pos == 0 && !isVowel(in.at(3)) && in.at(3) != 'W' {
			return split("X", "S", 3)
		}
		return both("X", 3)
	}
	if among(in.at(pos+2), "IEY") {
		return both("S", 3)
	}
	return both("SK", 3)
}

func ruleT(in buffer, pos int) action {
	if in.is(pos, "TION") {
		return both("X", 3)
	}
	if in.is(pos, "TIA", "TCH") {
		return both("X", 3)
	}
	if in.is(pos, "TH") || in.is(pos, "TTH") {
		// special case 'thomas', 'thames', or germanic
		if in.is(pos+2, "OM", "AM") || in.is(0, "SCH") {
			return both("T", 2)
		}
		return split("0", "T", 2)
	}
	if among(in.at(pos+1), "TD") {
		return both("T", 2)
	}
	return both("T", 1)
}

func ruleW(in buffer, pos int) action {
	switch {
	case in.is(pos, "WR"): // can also be in the middle of a word
		return both("R", 2)
	case pos == 0 && (isVowel(in.at(pos+1)) || in.is(pos, "WH")):
		if isVowel(in.at(pos + 1)) { // Wasserman should match Vasserman
			return split("A", "F", 1)
		}
		return both("A", 1)
	case (pos == in.last && isVowel(in.at(pos-1))) || // Arnow should match Arnoff
		in.is(pos-1, "EWSKI", "EWSKY", "OWSKI", "OWSKY") ||
		in.is(0, "SCH"):
		return split("", "F", 1)
	case in.is(pos, "WICZ", "WITZ"): // polish e.g. 'filipowicz'
		return split("TS", "FX", 4)
	}
	return silent(1) // default is to skip it
}

func ruleX(in buffer, pos int) action {
	advance := 1
	if among(in.at(pos+1), "CX") {
		advance = 2
	}
	// french e.g. 'breaux'
	if pos == in.last && (in.is(pos-3, "IAU", "EAU") || in.is(pos-2, "AU", "OU")) {
		return silent(advance)
	}
	return both("KS", advance)
}

func ruleZ(in buffer, pos int, slavo bool) action {
	advance := 1
	if among(in.at(pos+1), "ZH") {
		advance = 2
	}
	if in.at(pos+1) == 'H' { // chinese pinyin e.g. 'zhao'
		return both("J", advance)
	}
	if in.is(pos+1, "ZO", "ZI", "ZA") || (slavo && pos > 0 && in.at(pos-1) != 'T') {
		return split("S", "TS", advance)
	}
	return both("S", advance)
}
