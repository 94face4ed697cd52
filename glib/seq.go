// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package glib

import (
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// RegisterBit builds a loadable register bit: a mux selects between the
// current output and in under load, feeding a flip-flop.
//
//	out(t+1) = in(t) if load else out(t)
//
func RegisterBit(c *gatesim.Circuit, name string, in, load, out Pin) error {
	d, err := c.AddWire(name+"/d", 1)
	if err != nil {
		return err
	}
	g, err := c.AddGate(gatesim.Mux2, name+"/mux")
	if err != nil {
		return err
	}
	for _, p := range []Pin{out, in, load} {
		if err = c.GateAddInput(g, p.Wire, p.Bit); err != nil {
			return err
		}
	}
	if err = c.GateAddOutput(g, d, 0); err != nil {
		return err
	}
	return dff(c, name+"/dff", Bit(d), out)
}

// ToggleBit builds a bit that inverts on every clock: a flip-flop fed by
// its own negated output.
//
func ToggleBit(c *gatesim.Circuit, name string, out Pin) error {
	d, err := c.AddWire(name+"/d", 1)
	if err != nil {
		return err
	}
	g, err := c.AddGate(gatesim.Not, name+"/not")
	if err != nil {
		return err
	}
	if err = c.GateAddInput(g, out.Wire, out.Bit); err != nil {
		return err
	}
	if err = c.GateAddOutput(g, d, 0); err != nil {
		return err
	}
	return dff(c, name+"/dff", Bit(d), out)
}

// Counter builds a width-bit synchronous counter on the multi-bit wire out
// (bit 0 first). Bit i toggles when all lower bits are 1:
//
//	d[i] = out[i] XOR (out[0] AND ... AND out[i-1])
//
func Counter(c *gatesim.Circuit, name string, width, out int) error {
	if width < 1 {
		return errors.Errorf("%s: invalid counter width %d", name, width)
	}
	carry := Bit(gatesim.Vdd)
	for i := 0; i < width; i++ {
		q := Pin{Wire: out, Bit: i}
		bn := name + "/b" + strconv.Itoa(i)
		d, err := c.AddWire(bn+"/d", 1)
		if err != nil {
			return err
		}
		if err = gate2(c, gatesim.Xor, bn+"/xor", q, carry, Bit(d)); err != nil {
			return err
		}
		if err = dff(c, bn+"/dff", Bit(d), q); err != nil {
			return err
		}
		if i < width-1 {
			nc, err := c.AddWire(bn+"/carry", 1)
			if err != nil {
				return err
			}
			if err = gate2(c, gatesim.And, bn+"/and", carry, q, Bit(nc)); err != nil {
				return err
			}
			carry = Bit(nc)
		}
	}
	return nil
}

// dff adds a flip-flop with arbitrary pin endpoints. The unread clk input
// is tied to vdd to keep the netlist well formed.
func dff(c *gatesim.Circuit, name string, d, q Pin) error {
	g, err := c.AddGate(gatesim.DFF, name)
	if err != nil {
		return err
	}
	if err = c.GateAddInput(g, d.Wire, d.Bit); err != nil {
		return err
	}
	if err = c.GateAddInput(g, gatesim.Vdd, 0); err != nil {
		return err
	}
	return c.GateAddOutput(g, q.Wire, q.Bit)
}
