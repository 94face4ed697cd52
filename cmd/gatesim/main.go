// Command gatesim builds a small demo circuit (a 4-bit counter feeding a
// ripple-carry adder), simulates it and prints the timing analysis. With
// -export, the full graph and the final state are written out as JSON for
// the visualizer.
package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"

	"github.com/db47h/gatesim"
	"github.com/db47h/gatesim/glib"
	"github.com/db47h/gatesim/logger"
)

var (
	cycles  = flag.Int("cycles", 10, "number of clock cycles to simulate")
	export  = flag.Bool("export", false, "write circuit.json and state.json")
	verbose = flag.Bool("v", false, "dump wires and gates after the run")
)

func main() {
	flag.Parse()
	log := logger.Logger()

	c, err := build()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build circuit")
	}

	if err = c.Run(*cycles); err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}
	log.Info().Uint64("cycle", c.Cycle()).Bool("stable", c.Stable()).Msg("run complete")

	if *verbose {
		c.DumpState(os.Stdout)
		c.DumpGates(os.Stdout)
	}

	gatesim.WriteClockSpeeds(os.Stdout, c.AnalyzeTiming())

	if *export {
		if err = c.ExportJSON("circuit.json"); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		if err = c.ExportJSONState("state.json"); err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
		log.Info().Msg("wrote circuit.json and state.json")
	}
}

// build assembles the demo: count keeps incrementing, and the adder
// computes count + 3 combinationally.
func build() (*gatesim.Circuit, error) {
	c, err := gatesim.New()
	if err != nil {
		return nil, err
	}

	count, err := c.AddWire("count", 4)
	if err != nil {
		return nil, err
	}
	c.Wire(count).IsOutput = true
	if err = glib.Counter(c, "counter", 4, count); err != nil {
		return nil, errors.Wrap(err, "counter")
	}

	three, err := c.AddWire("three", 4)
	if err != nil {
		return nil, err
	}
	for b, s := range []gatesim.State{gatesim.S1, gatesim.S1, gatesim.S0, gatesim.S0} {
		c.SetWire(three, b, s)
	}

	sum, err := c.AddWire("sum", 4)
	if err != nil {
		return nil, err
	}
	c.Wire(sum).IsOutput = true
	cout, err := c.AddWire("cout", 1)
	if err != nil {
		return nil, err
	}
	err = glib.RippleAdder(c, "adder", 4, count, three, sum,
		glib.Bit(gatesim.Gnd), glib.Bit(cout))
	if err != nil {
		return nil, errors.Wrap(err, "adder")
	}
	return c, nil
}
