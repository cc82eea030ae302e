package phonetic

import "testing"

func TestBuilder1(t *testing.T) {
	b := NewPooledBuilder(4)
	defer b.Discard()
	if b.Len() != 0 {
		t.Error("fresh builder should be empty")
	}
	if b.Full() {
		t.Error("fresh builder should not be full")
	}
	b.Add("S")
	b.Add("M")
	r := b.Result()
	if r.Primary != "SM" || r.Secondary != "SM" {
		t.Errorf("Add() should feed both sequences, have %v", r)
	}
	if r.Ambiguous() {
		t.Error("identical sequences should not read as ambiguous")
	}
}

func TestBuilder2(t *testing.T) {
	b := NewPooledBuilder(4)
	defer b.Discard()
	b.Add("S")
	b.AddAlt("M", "N")
	b.AddAlt("0", "T")
	r := b.Result()
	if r.Primary != "SM0" || r.Secondary != "SNT" {
		t.Errorf("AddAlt() should let the sequences diverge, have %v", r)
	}
	if !r.Ambiguous() {
		t.Error("diverging sequences should read as ambiguous")
	}
}

func TestBuilderCap(t *testing.T) {
	b := NewPooledBuilder(4)
	defer b.Discard()
	b.Add("KS")
	b.Add("KS")
	if !b.Full() {
		t.Error("builder at its limit should be full")
	}
	b.Add("L") // dropped
	r := b.Result()
	if r.Primary != "KSKS" || r.Secondary != "KSKS" {
		t.Errorf("symbols beyond the limit should be dropped, have %v", r)
	}
}

func TestBuilderUnevenFill(t *testing.T) {
	b := NewPooledBuilder(4)
	defer b.Discard()
	b.AddAlt("J", "") // a silent alternate keeps the secondary shorter
	b.Add("S")
	if b.Full() {
		t.Error("builder with one short sequence should not be full")
	}
	r := b.Result()
	if r.Primary != "JS" || r.Secondary != "S" {
		t.Errorf("empty symbols should append nothing, have %v", r)
	}
}

func TestBuilderUnbounded(t *testing.T) {
	b := NewPooledBuilder(0)
	defer b.Discard()
	for i := 0; i < 10; i++ {
		b.Add("A")
	}
	if b.Full() {
		t.Error("builder without a limit should never be full")
	}
	if b.Len() != 10 {
		t.Errorf("Len() should be 10, is %d", b.Len())
	}
}

func TestBuilderReuse(t *testing.T) {
	b := NewPooledBuilder(4)
	b.Add("XYZ")
	b.Discard()
	b = NewPooledBuilder(4)
	defer b.Discard()
	if b.Len() != 0 {
		t.Error("builder from pool should be empty")
	}
}

func TestResultCodes(t *testing.T) {
	r := Result{Primary: "XMT", Secondary: "SMT"}
	if codes := r.Codes(); len(codes) != 2 || codes[0] != "XMT" || codes[1] != "SMT" {
		t.Errorf("unexpected code list %v", codes)
	}
	r = Result{Primary: "TMS", Secondary: "TMS"}
	if codes := r.Codes(); len(codes) != 1 || codes[0] != "TMS" {
		t.Errorf("duplicate codes should collapse, have %v", codes)
	}
	r = Result{}
	if codes := r.Codes(); len(codes) != 0 {
		t.Errorf("empty result should yield no codes, have %v", codes)
	}
}
