// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package glib builds common circuit structures on top of the gatesim
// construction API: adders, register bits and counters. Every builder goes
// through the same public API an HDL elaborator would use, creating its
// internal wires under the structure's name prefix.
//
package glib

import (
	"strconv"

	"github.com/db47h/gatesim"
	"github.com/pkg/errors"
)

// Pin aliases gatesim.Pin for conciseness.
type Pin = gatesim.Pin

// Bit returns the pin for bit 0 of wire w.
//
func Bit(w int) Pin { return Pin{Wire: w, Bit: 0} }

// HalfAdder builds sum = a XOR b, carry = a AND b.
//
func HalfAdder(c *gatesim.Circuit, name string, a, b, sum, carry Pin) error {
	if err := gate2(c, gatesim.Xor, name+"/xor", a, b, sum); err != nil {
		return err
	}
	return gate2(c, gatesim.And, name+"/and", a, b, carry)
}

// FullAdder builds sum = a XOR b XOR cin and the carry out, from two half
// adders and an OR.
//
func FullAdder(c *gatesim.Circuit, name string, a, b, cin, sum, cout Pin) error {
	s1, err := c.AddWire(name+"/s1", 1)
	if err != nil {
		return err
	}
	c1, err := c.AddWire(name+"/c1", 1)
	if err != nil {
		return err
	}
	c2, err := c.AddWire(name+"/c2", 1)
	if err != nil {
		return err
	}
	if err = HalfAdder(c, name+"/ha0", a, b, Bit(s1), Bit(c1)); err != nil {
		return err
	}
	if err = HalfAdder(c, name+"/ha1", Bit(s1), cin, sum, Bit(c2)); err != nil {
		return err
	}
	return gate2(c, gatesim.Or, name+"/or", Bit(c1), Bit(c2), cout)
}

// RippleAdder chains width full adders over the multi-bit wires a, b and
// sum (bit 0 first). cin feeds the first stage and the last carry lands on
// cout.
//
func RippleAdder(c *gatesim.Circuit, name string, width, a, b, sum int, cin, cout Pin) error {
	if width < 1 {
		return errors.Errorf("%s: invalid adder width %d", name, width)
	}
	carry := cin
	for i := 0; i < width; i++ {
		co := cout
		if i < width-1 {
			w, err := c.AddWire(name+"/c"+strconv.Itoa(i), 1)
			if err != nil {
				return err
			}
			co = Bit(w)
		}
		err := FullAdder(c, name+"/fa"+strconv.Itoa(i),
			Pin{Wire: a, Bit: i}, Pin{Wire: b, Bit: i}, carry,
			Pin{Wire: sum, Bit: i}, co)
		if err != nil {
			return err
		}
		carry = co
	}
	return nil
}

// gate2 adds one two-input gate wired to arbitrary pins.
func gate2(c *gatesim.Circuit, t gatesim.GateType, name string, a, b, out Pin) error {
	g, err := c.AddGate(t, name)
	if err != nil {
		return err
	}
	if err = c.GateAddInput(g, a.Wire, a.Bit); err != nil {
		return err
	}
	if err = c.GateAddInput(g, b.Wire, b.Bit); err != nil {
		return err
	}
	return c.GateAddOutput(g, out.Wire, out.Bit)
}
