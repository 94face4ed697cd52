/*
Package gatesim simulates digital circuits at the gate level using
four-valued logic (0, 1, X, Z).

A Circuit is a flat netlist of wires and gates built through the
construction API (AddWire, AddGate, GateAddInput/Output and the AddNot,
AddAnd, ... helpers), typically by an HDL elaborator that has already
flattened module hierarchies and transistor-level descriptions into
primitive gates. Wires and gates are addressed by stable integer index,
never by pointer.

Simulation is strictly two-phase: Propagate relaxes the combinational logic
to a fixed point, Clock latches every flip-flop on a single global rising
edge, and Step composes the two. AnalyzeTiming computes a static
longest-path estimate of the achievable clock speed, and the Dump and
Export functions produce deterministic text and JSON views for debugging
and for the browser visualizer.

*/
package gatesim
