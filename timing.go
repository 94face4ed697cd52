// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"fmt"
	"io"
)

// Timing is a static summary of a circuit: size census plus the longest
// combinational path, in gate delays. It is recomputed on demand by
// AnalyzeTiming and never stored on the circuit.
//
type Timing struct {
	TotalGates       int
	TotalTransistors int // estimated, from a per-type lookup
	NumFlipFlops     int
	CriticalPath     int // longest combinational path, in gate delays
}

// transistors estimates the transistor count of a static CMOS realization
// of a gate type.
//
func (t GateType) transistors() int {
	switch t {
	case Not:
		return 2
	case Buf:
		return 4 // two inverters
	case And, Or:
		return 6 // NAND/NOR plus an inverter
	case Nand, Nor:
		return 4
	case Xor, Xnor:
		return 12
	case Mux2:
		return 12 // transmission gates plus an inverter
	case DFF:
		return 40 // master-slave
	case DLatch:
		return 20
	case Nmos, Pmos:
		return 1
	case Const, Module:
		return 0
	}
	return 4
}

// AnalyzeTiming counts gates, transistors and flip-flops, and computes the
// critical path depth by level relaxation: every wire driven by a
// combinational gate sits one level above its deepest input, while
// flip-flop outputs (and circuit inputs) act as level-0 sources. Sequential
// gates are skipped, so the reported depth is the longest register-to-register
// (or input-to-output) combinational chain.
//
func (c *Circuit) AnalyzeTiming() Timing {
	var t Timing

	for _, g := range c.gates {
		t.TotalGates++
		t.TotalTransistors += g.Type.transistors()
		if g.Type.sequential() {
			t.NumFlipFlops++
		}
	}

	levels := make([]int, len(c.wires))

	// relaxation converges within numGates+1 passes on an acyclic graph;
	// on a cyclic one the bound keeps us from looping forever.
	for pass := 0; pass <= len(c.gates); pass++ {
		changed := false
		for _, g := range c.gates {
			if g.Type.sequential() {
				continue
			}
			max := 0
			for _, p := range g.Inputs {
				if p.Wire >= 0 && p.Wire < len(levels) && levels[p.Wire] > max {
					max = levels[p.Wire]
				}
			}
			for _, p := range g.Outputs {
				if p.Wire >= 0 && p.Wire < len(levels) && max+1 > levels[p.Wire] {
					levels[p.Wire] = max + 1
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	for _, l := range levels {
		if l > t.CriticalPath {
			t.CriticalPath = l
		}
	}
	return t
}

// technology is one row of the historical clock-speed table.
type technology struct {
	name    string
	delayNs float64 // per-gate delay
}

var technologies = []technology{
	{"Relay (1940s)", 10e6},
	{"Vacuum Tube (1950s)", 100e3},
	{"RTL (1960s)", 50},
	{"DTL (1965)", 30},
	{"TTL (1970s)", 10},
	{"NMOS (1980s)", 5},
	{"CMOS 1um (1985)", 2},
	{"CMOS 350nm (1995)", 0.5},
	{"CMOS 65nm (2005)", 0.1},
	{"CMOS 7nm (2020)", 0.01},
}

func fmtFreq(hz float64) string {
	switch {
	case hz >= 1e9:
		return fmt.Sprintf("%.2f GHz", hz/1e9)
	case hz >= 1e6:
		return fmt.Sprintf("%.2f MHz", hz/1e6)
	case hz >= 1e3:
		return fmt.Sprintf("%.2f kHz", hz/1e3)
	}
	return fmt.Sprintf("%.2f Hz", hz)
}

func fmtDelay(ns float64) string {
	switch {
	case ns >= 1e6:
		return fmt.Sprintf("%.0f ms", ns/1e6)
	case ns >= 1e3:
		return fmt.Sprintf("%.0f us", ns/1e3)
	case ns >= 1:
		return fmt.Sprintf("%.0f ns", ns)
	}
	return fmt.Sprintf("%.0f ps", ns*1000)
}

func fmtMIPS(mips float64) string {
	switch {
	case mips >= 1000:
		return fmt.Sprintf("%.0f", mips)
	case mips >= 1:
		return fmt.Sprintf("%.1f", mips)
	case mips >= 0.001:
		return fmt.Sprintf("%.4f", mips)
	}
	return fmt.Sprintf("%.2e", mips)
}

// WriteClockSpeeds writes an illustrative report of the clock frequency the
// analyzed circuit could reach in a range of historical fabrication
// technologies, assuming the whole critical path must settle within one
// clock period and 5 clock cycles per instruction. The numbers come from a
// static per-gate delay table, not from any physical device model.
//
func WriteClockSpeeds(w io.Writer, t Timing) {
	fmt.Fprintf(w, "\n=== Circuit Timing Analysis ===\n")
	fmt.Fprintf(w, "Total gates:        %d\n", t.TotalGates)
	fmt.Fprintf(w, "Total transistors:  ~%d\n", t.TotalTransistors)
	fmt.Fprintf(w, "Flip-flops:         %d\n", t.NumFlipFlops)
	fmt.Fprintf(w, "Critical path:      %d gate delays\n", t.CriticalPath)

	if t.CriticalPath == 0 {
		fmt.Fprintf(w, "\n(No combinational logic path found)\n")
		return
	}

	fmt.Fprintf(w, "\n=== Estimated Clock Speeds ===\n")
	fmt.Fprintf(w, "%-20s | %-12s | %-12s | %-12s\n", "Technology", "Gate Delay", "Max Clock", "MIPS (est)")
	fmt.Fprintf(w, "---------------------|--------------|--------------|-------------\n")

	for _, tech := range technologies {
		delay := float64(t.CriticalPath) * tech.delayNs
		freq := 1e9 / delay
		mips := freq / 5e6 // 5 cycles per instruction
		fmt.Fprintf(w, "%-20s | %-12s | %-12s | %-12s\n",
			tech.name, fmtDelay(tech.delayNs), fmtFreq(freq), fmtMIPS(mips))
	}
	fmt.Fprintln(w)
}
