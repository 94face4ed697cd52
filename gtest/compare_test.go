package gtest_test

import (
	"testing"

	gs "github.com/db47h/gatesim"
	"github.com/db47h/gatesim/gtest"
)

// A 2:1 mux built from NOT/AND/OR must match the MUX2 primitive on all
// binary input vectors.
func Test_compare_mux(t *testing.T) {
	prim, err := gs.New()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := prim.AddWire("a", 1)
	b, _ := prim.AddWire("b", 1)
	sel, _ := prim.AddWire("sel", 1)
	out, _ := prim.AddWire("out", 1)
	if _, err = prim.AddMux2("mux", a, b, sel, out); err != nil {
		t.Fatal(err)
	}

	gates, err := gs.New()
	if err != nil {
		t.Fatal(err)
	}
	a, _ = gates.AddWire("a", 1)
	b, _ = gates.AddWire("b", 1)
	sel, _ = gates.AddWire("sel", 1)
	out, _ = gates.AddWire("out", 1)
	nsel, _ := gates.AddWire("nsel", 1)
	w0, _ := gates.AddWire("w0", 1)
	w1, _ := gates.AddWire("w1", 1)
	if _, err = gates.AddNot("not", sel, nsel); err != nil {
		t.Fatal(err)
	}
	if _, err = gates.AddAnd("and0", a, nsel, w0); err != nil {
		t.Fatal(err)
	}
	if _, err = gates.AddAnd("and1", b, sel, w1); err != nil {
		t.Fatal(err)
	}
	if _, err = gates.AddOr("or", w0, w1, out); err != nil {
		t.Fatal(err)
	}

	gtest.CompareCombinational(t, gates, prim,
		[]string{"a", "b", "sel"}, []string{"out"})
}

// XOR from NANDs against the primitive.
func Test_compare_xor(t *testing.T) {
	prim, err := gs.New()
	if err != nil {
		t.Fatal(err)
	}
	a, _ := prim.AddWire("a", 1)
	b, _ := prim.AddWire("b", 1)
	out, _ := prim.AddWire("out", 1)
	if _, err = prim.AddXor("xor", a, b, out); err != nil {
		t.Fatal(err)
	}

	nands, err := gs.New()
	if err != nil {
		t.Fatal(err)
	}
	a, _ = nands.AddWire("a", 1)
	b, _ = nands.AddWire("b", 1)
	out, _ = nands.AddWire("out", 1)
	nab, _ := nands.AddWire("nab", 1)
	w0, _ := nands.AddWire("w0", 1)
	w1, _ := nands.AddWire("w1", 1)
	if _, err = nands.AddNand("n0", a, b, nab); err != nil {
		t.Fatal(err)
	}
	if _, err = nands.AddNand("n1", a, nab, w0); err != nil {
		t.Fatal(err)
	}
	if _, err = nands.AddNand("n2", b, nab, w1); err != nil {
		t.Fatal(err)
	}
	if _, err = nands.AddNand("n3", w0, w1, out); err != nil {
		t.Fatal(err)
	}

	gtest.CompareCombinational(t, nands, prim, []string{"a", "b"}, []string{"out"})
}
