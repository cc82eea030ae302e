package soundex_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/phonetic/soundex"
	"github.com/npillmayer/schuko/testconfig"
)

func ExampleEncode() {
	fmt.Println(soundex.Encode("Robert"))
	fmt.Println(soundex.Encode("Rupert"))
	// Output: R163
	// R163
}

func TestEncode(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		word string
		code string
	}{
		{"Robert", "R163"},
		{"Rupert", "R163"},
		{"Pfister", "P236"},
		{"Tymczak", "T522"},
		{"Honeyman", "H555"},
		{"Ashcraft", "A226"},
		{"Lee", "L000"},
		{"O'Brien", "O165"},
		{"", ""},
		{"42", ""},
	}
	for _, c := range cases {
		if have := soundex.Encode(c.word); have != c.code {
			t.Errorf("%q: have %s, want %s", c.word, have, c.code)
		}
	}
}

func TestEncodeIsCaseInsensitive(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if soundex.Encode("washington") != soundex.Encode("WASHINGTON") {
		t.Error("case should not matter")
	}
}

func TestEncoderLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	enc := soundex.Encoder{Length: 6}
	r := enc.Encode("Washington")
	if len(r.Primary) != 6 {
		t.Errorf("have %q, want a 6-symbol code", r.Primary)
	}
	if r.Ambiguous() {
		t.Error("Soundex results should never be ambiguous")
	}
	var def soundex.Encoder // zero value falls back to the default length
	if have := def.Encode("Washington").Primary; have != soundex.Encode("Washington") {
		t.Errorf("zero-value Encoder disagrees with Encode: %s", have)
	}
}
