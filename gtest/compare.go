// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gtest provides utility functions for testing circuits.
//
package gtest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/db47h/gatesim"
)

// CompareCombinational checks that two combinational circuits implement the
// same function. Both circuits must expose single-bit wires with the given
// input and output names. The circuits are driven through every 0/1
// combination of the inputs, propagated, and their outputs compared.
//
// Both circuits are Reset first and left in the state of the last vector.
//
func CompareCombinational(t *testing.T, got, want *gatesim.Circuit, inputs, outputs []string) {
	t.Helper()

	gin, gout := findAll(t, got, inputs), findAll(t, got, outputs)
	win, wout := findAll(t, want, inputs), findAll(t, want, outputs)

	got.Reset()
	want.Reset()

	for v := 0; v < 1<<len(inputs); v++ {
		for i := range inputs {
			s := gatesim.Bool(v&(1<<i) != 0)
			got.SetWire(gin[i], 0, s)
			want.SetWire(win[i], 0, s)
		}
		if err := got.Propagate(); err != nil {
			t.Fatalf("vector %0*b: %v", len(inputs), v, err)
		}
		if err := want.Propagate(); err != nil {
			t.Fatalf("vector %0*b: %v", len(inputs), v, err)
		}
		g := make(map[string]string, len(outputs))
		w := make(map[string]string, len(outputs))
		for i, n := range outputs {
			g[n] = got.GetWire(gout[i], 0).String()
			w[n] = want.GetWire(wout[i], 0).String()
		}
		if diff := cmp.Diff(w, g); diff != "" {
			t.Errorf("vector %0*b: outputs mismatch (-want +got):\n%s", len(inputs), v, diff)
		}
	}
}

func findAll(t *testing.T, c *gatesim.Circuit, names []string) []int {
	t.Helper()
	idx := make([]int, len(names))
	for i, n := range names {
		w := c.FindWire(n)
		if w < 0 {
			t.Fatalf("wire %s does not exist", n)
		}
		idx[i] = w
	}
	return idx
}
