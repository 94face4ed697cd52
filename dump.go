package gatesim

import (
	"fmt"
	"io"
)

// DumpWires writes one line per wire: index, name, width and the current
// state vector, most significant bit first. Iteration order is insertion
// order, so the output is deterministic for a given circuit.
//
func (c *Circuit) DumpWires(w io.Writer) {
	fmt.Fprintf(w, "=== Wires (%d) ===\n", len(c.wires))
	for i, wr := range c.wires {
		fmt.Fprintf(w, "  [%3d] %-20s [%d bits]: ", i, wr.Name, wr.Width)
		for b := wr.Width - 1; b >= 0; b-- {
			fmt.Fprint(w, wr.State[b])
		}
		if wr.IsInput {
			fmt.Fprint(w, " (input)")
		}
		if wr.IsOutput {
			fmt.Fprint(w, " (output)")
		}
		fmt.Fprintln(w)
	}
}

// DumpGates writes one line per gate: index, name, type, the input and
// output endpoints as wire-name[bit], and the stored value of sequential
// gates.
//
func (c *Circuit) DumpGates(w io.Writer) {
	fmt.Fprintf(w, "=== Gates (%d) ===\n", len(c.gates))
	for i, g := range c.gates {
		fmt.Fprintf(w, "  [%3d] %-20s %-6s  in: ", i, g.Name, g.Type)
		for _, p := range g.Inputs {
			fmt.Fprintf(w, "%s[%d] ", c.wires[p.Wire].Name, p.Bit)
		}
		fmt.Fprint(w, " -> out: ")
		for _, p := range g.Outputs {
			fmt.Fprintf(w, "%s[%d] ", c.wires[p.Wire].Name, p.Bit)
		}
		if g.Type.sequential() {
			fmt.Fprintf(w, " (stored=%s)", g.Stored)
		}
		fmt.Fprintln(w)
	}
}

// DumpState writes the cycle counter, stability flag, the fault message if
// any, and the full wire dump.
//
func (c *Circuit) DumpState(w io.Writer) {
	fmt.Fprintf(w, "=== Circuit State ===\n")
	fmt.Fprintf(w, "Cycle: %d\n", c.cycle)
	if c.stable {
		fmt.Fprintf(w, "Stable: YES\n")
	} else {
		fmt.Fprintf(w, "Stable: NO\n")
	}
	if c.err != nil {
		fmt.Fprintf(w, "Error: %s\n", c.err)
	}
	c.DumpWires(w)
}
