// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A GateType identifies the logic function of a gate.
//
type GateType uint8

// Gate types. Nmos, Pmos and Module are accepted by the construction API for
// the elaborator's bookkeeping but are not interpreted by the engine: their
// outputs evaluate to X. The elaborator is expected to flatten transistor
// level and hierarchical descriptions into the primitive types before
// simulation.
//
const (
	Not GateType = iota
	And
	Or
	Nand
	Nor
	Xor
	Xnor
	Buf
	Mux2   // 2:1 multiplexer, inputs a, b, sel
	DFF    // D flip-flop
	DLatch // D latch
	Nmos
	Pmos
	Const  // constant 0 or 1
	Module // instance of another module
)

func (t GateType) String() string {
	switch t {
	case Not:
		return "NOT"
	case And:
		return "AND"
	case Or:
		return "OR"
	case Nand:
		return "NAND"
	case Nor:
		return "NOR"
	case Xor:
		return "XOR"
	case Xnor:
		return "XNOR"
	case Buf:
		return "BUF"
	case Mux2:
		return "MUX2"
	case DFF:
		return "DFF"
	case DLatch:
		return "DLATCH"
	case Nmos:
		return "NMOS"
	case Pmos:
		return "PMOS"
	case Const:
		return "CONST"
	case Module:
		return "MODULE"
	}
	return "???"
}

// sequential reports whether a gate type holds clocked state.
//
func (t GateType) sequential() bool {
	return t == DFF || t == DLatch
}

// A Pin addresses one bit of one wire: the endpoint of a gate connection.
//
type Pin struct {
	Wire int // wire index in the owning circuit
	Bit  int // bit index within the wire
}

// A Gate is a primitive logic element connecting input pins to output pins.
// Input order is significant (a MUX2 reads a, b, sel as inputs 0, 1, 2; a DFF
// reads D as input 0). Gates with several outputs replicate the same result
// on every output pin.
//
type Gate struct {
	Name    string
	Type    GateType
	Inputs  []Pin
	Outputs []Pin
	Stored  State // sequential types only: the latched value driven on Q
	Const   State // Const type only
	ModRef  int   // Module type only, elaborator bookkeeping; -1 otherwise
}

// in returns the committed state of input pin n, or X when the gate has
// fewer inputs.
func (c *Circuit) in(g *Gate, n int) State {
	if n >= len(g.Inputs) {
		return SX
	}
	p := g.Inputs[n]
	return c.GetWire(p.Wire, p.Bit)
}

// eval computes a gate's output from the committed wire frame and writes it
// to the pending frame of every output pin. It never commits.
func (c *Circuit) eval(g *Gate) {
	var r State

	switch g.Type {
	case Not:
		r = not(c.in(g, 0))
	case Buf:
		r = c.in(g, 0)
	case And, Nand:
		r = c.in(g, 0)
		for i := 1; i < len(g.Inputs); i++ {
			r = and(r, c.in(g, i))
		}
		if g.Type == Nand {
			r = not(r)
		}
	case Or, Nor:
		r = c.in(g, 0)
		for i := 1; i < len(g.Inputs); i++ {
			r = or(r, c.in(g, i))
		}
		if g.Type == Nor {
			r = not(r)
		}
	case Xor:
		// defined over the first two inputs only
		r = xor(c.in(g, 0), c.in(g, 1))
	case Xnor:
		r = not(xor(c.in(g, 0), c.in(g, 1)))
	case Mux2:
		r = SX
		if len(g.Inputs) >= 3 {
			switch c.in(g, 2) {
			case S0:
				r = c.in(g, 0)
			case S1:
				r = c.in(g, 1)
			}
		}
	case DFF, DLatch:
		// output is the latched value, never a function of current inputs
		r = g.Stored
	case Const:
		r = g.Const
	default:
		// Nmos, Pmos, Module: not interpreted
		r = SX
	}

	for _, p := range g.Outputs {
		w := c.wires[p.Wire]
		if w.State[p.Bit] != r {
			c.stable = false
		}
		w.Next[p.Bit] = r
	}
}
