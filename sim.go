// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
)

// Propagate settles the combinational logic: it repeatedly evaluates every
// gate against the committed wire frame, commits the pending frame, and
// stops as soon as a full sweep changes nothing. This is a synchronous
// relaxation; for acyclic combinational logic the gate evaluation order only
// affects how many sweeps are needed, never the fixed point itself.
//
// A circuit that fails to settle within the configured iteration bound
// contains an oscillation or an unresolvable combinational cycle. Propagate
// then records a sticky fault and returns it; the circuit must be Reset
// before further simulation is meaningful.
//
func (c *Circuit) Propagate() error {
	for it := 0; it < c.cfg.MaxIterations; it++ {
		c.stable = true

		for _, g := range c.gates {
			c.eval(g)
		}

		// commit pending values
		for _, w := range c.wires {
			for b := range w.State {
				if w.State[b] != w.Next[b] {
					c.stable = false
					w.State[b] = w.Next[b]
				}
			}
		}

		if c.stable {
			return nil
		}
	}
	return c.fault(errors.Errorf("circuit did not stabilize after %d iterations", c.cfg.MaxIterations))
}

// Clock captures the D input (input pin 0) of every sequential gate into its
// stored value and increments the cycle counter. Calling Clock is the rising
// edge: the whole circuit lives in one global clock domain, and whatever
// wire is nominally connected as a flip-flop's clk input is never examined.
// Per-wire edge detection is deliberately not modeled.
//
// All captures read the pre-clock wire frame, so a chain of flip-flops
// shifts by exactly one stage per call.
//
func (c *Circuit) Clock() {
	for _, g := range c.gates {
		if g.Type.sequential() && len(g.Inputs) >= 1 {
			p := g.Inputs[0]
			g.Stored = c.GetWire(p.Wire, p.Bit)
		}
	}
	c.cycle++
}

// Step runs one full simulation cycle: settle the combinational logic, latch
// the sequential state, then settle again so that downstream logic sees the
// new flip-flop outputs.
//
func (c *Circuit) Step() error {
	if err := c.Propagate(); err != nil {
		return err
	}
	c.Clock()
	return c.Propagate()
}

// Run executes n simulation cycles, stopping early on the first fault.
//
func (c *Circuit) Run(n int) error {
	for i := 0; i < n; i++ {
		if c.err != nil {
			return c.err
		}
		if err := c.Step(); err != nil {
			return err
		}
	}
	return c.err
}
