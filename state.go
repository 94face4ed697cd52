// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

// A State is the value carried by a single wire bit. Simulation uses
// four-valued logic: besides plain 0 and 1, a bit can be X (unknown or
// conflicting) or Z (floating, high-impedance). For logic evaluation Z is
// indistinguishable from X. The numeric values 0-3 are part of the JSON
// export schema. The underlying type must not be byte-sized, or
// encoding/json would base64-encode state vectors instead of emitting
// number arrays.
//
type State int

// Wire bit states.
//
const (
	S0 State = iota // logic low
	S1              // logic high
	SX              // unknown / uninitialized
	SZ              // high impedance
)

func (s State) String() string {
	switch s {
	case S0:
		return "0"
	case S1:
		return "1"
	case SX:
		return "X"
	case SZ:
		return "Z"
	}
	return "?"
}

// Bool converts a Go bool to a State.
//
func Bool(b bool) State {
	if b {
		return S1
	}
	return S0
}

// not implements four-valued negation: anything but a known 0 or 1
// negates to X.
func not(a State) State {
	switch a {
	case S0:
		return S1
	case S1:
		return S0
	}
	return SX
}

// and implements the dominance rule: a single 0 input forces the output low
// no matter what the other input carries.
func and(a, b State) State {
	if a == S0 || b == S0 {
		return S0
	}
	if a == S1 && b == S1 {
		return S1
	}
	return SX
}

// or is the dual of and: a single 1 input forces the output high.
func or(a, b State) State {
	if a == S1 || b == S1 {
		return S1
	}
	if a == S0 && b == S0 {
		return S0
	}
	return SX
}

// xor has no dominant input: any X or Z poisons the output.
func xor(a, b State) State {
	if a >= SX || b >= SX {
		return SX
	}
	if a != b {
		return S1
	}
	return S0
}
