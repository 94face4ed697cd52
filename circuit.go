// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/db47h/gatesim/logger"
)

// Reserved wire indices. New creates these two constant wires before
// anything else; gnd permanently carries 0 and vdd permanently carries 1.
// No gate output may target them, which is the elaborator's responsibility
// to guarantee.
//
const (
	Gnd = 0
	Vdd = 1
)

// Default capacity and iteration limits, matching the original simulator.
const (
	defaultMaxWires       = 1024
	defaultMaxGates       = 2048
	defaultMaxGateInputs  = 16
	defaultMaxGateOutputs = 8
	defaultMaxIterations  = 100
)

// Config holds the construction-time limits of a Circuit.
//
type Config struct {
	MaxWires       int // maximum wire count
	MaxGates       int // maximum gate count
	MaxGateInputs  int // maximum input pins per gate
	MaxGateOutputs int // maximum output pins per gate
	MaxIterations  int // propagation fixed-point bound
	Logger         zerolog.Logger
}

// An Option alters the default Config of a Circuit. See the With functions.
//
type Option func(*Config) error

// WithMaxWires sets the maximum wire count.
//
func WithMaxWires(n int) Option {
	return func(cfg *Config) error {
		if n < 2 {
			return errors.Errorf("max wire count %d too small for constant wires", n)
		}
		cfg.MaxWires = n
		return nil
	}
}

// WithMaxGates sets the maximum gate count.
//
func WithMaxGates(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return errors.Errorf("invalid max gate count %d", n)
		}
		cfg.MaxGates = n
		return nil
	}
}

// WithMaxGateIO sets the maximum number of input and output pins per gate.
//
func WithMaxGateIO(inputs, outputs int) Option {
	return func(cfg *Config) error {
		if inputs < 1 || outputs < 1 {
			return errors.Errorf("invalid gate pin limits %d/%d", inputs, outputs)
		}
		cfg.MaxGateInputs = inputs
		cfg.MaxGateOutputs = outputs
		return nil
	}
}

// WithMaxIterations sets the propagation fixed-point bound.
//
func WithMaxIterations(n int) Option {
	return func(cfg *Config) error {
		if n < 1 {
			return errors.Errorf("invalid iteration bound %d", n)
		}
		cfg.MaxIterations = n
		return nil
	}
}

// WithLogger sets the circuit's logger. By default circuits log through
// the package-wide logger.
//
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) error {
		cfg.Logger = l
		return nil
	}
}

// A Circuit owns a gate-level netlist and simulates it. Wires and gates are
// stored in circuit-owned slices and cross-reference each other by index;
// clients hold indices, never pointers.
//
// A Circuit goes through two strict phases: construction (AddWire, AddGate,
// GateAddInput/Output and the convenience constructors), then simulation
// (Propagate, Clock, Step, Run). The topology must not be mutated once
// simulation has started.
//
type Circuit struct {
	cfg    Config
	log    zerolog.Logger
	wires  []*Wire
	gates  []*Gate
	byName map[string]int // wire name -> index

	cycle  uint64
	stable bool
	err    error // sticky simulation fault
}

// New returns an empty circuit holding only the two constant wires gnd
// and vdd.
//
func New(opts ...Option) (*Circuit, error) {
	cfg := Config{
		MaxWires:       defaultMaxWires,
		MaxGates:       defaultMaxGates,
		MaxGateInputs:  defaultMaxGateInputs,
		MaxGateOutputs: defaultMaxGateOutputs,
		MaxIterations:  defaultMaxIterations,
		Logger:         logger.Logger(),
	}
	for _, o := range opts {
		if err := o(&cfg); err != nil {
			return nil, errors.Wrap(err, "invalid circuit option")
		}
	}
	c := &Circuit{
		cfg:    cfg,
		log:    cfg.Logger,
		byName: make(map[string]int),
	}
	gnd, err := c.AddWire("gnd", 1)
	if err != nil {
		return nil, err
	}
	vdd, err := c.AddWire("vdd", 1)
	if err != nil {
		return nil, err
	}
	c.SetWire(gnd, 0, S0)
	c.SetWire(vdd, 0, S1)
	return c, nil
}

// Reset returns the circuit to its post-construction state: every
// non-constant wire bit goes back to X and every flip-flop to 0. The
// topology is left untouched. Reset also clears the sticky error, so a
// circuit that failed to converge can be reset and driven again.
//
func (c *Circuit) Reset() {
	for i := Vdd + 1; i < len(c.wires); i++ {
		w := c.wires[i]
		for b := range w.State {
			w.State[b] = SX
			w.Next[b] = SX
		}
	}
	for _, g := range c.gates {
		if g.Type.sequential() {
			g.Stored = S0
		}
	}
	c.cycle = 0
	c.stable = false
	c.err = nil
}

// Cycle returns the number of Clock calls since construction or the last
// Reset.
//
func (c *Circuit) Cycle() uint64 { return c.cycle }

// Stable reports whether the last propagation reached a fixed point.
//
func (c *Circuit) Stable() bool { return c.stable }

// Err returns the sticky simulation fault, or nil. Once set, simulation
// results are meaningless until Reset.
//
func (c *Circuit) Err() error { return c.err }

// NumWires returns the wire count, including gnd and vdd.
//
func (c *Circuit) NumWires() int { return len(c.wires) }

// NumGates returns the gate count.
//
func (c *Circuit) NumGates() int { return len(c.gates) }

// fault records a sticky error. The first fault wins.
func (c *Circuit) fault(err error) error {
	if c.err == nil {
		c.err = err
	}
	c.log.Warn().Err(err).Msg("circuit fault")
	return err
}

// AddWire allocates a wire and returns its index. Adding a name that already
// exists returns the existing index without touching the wire, so elaborators
// can reference wires lazily. New wires start all-X.
//
func (c *Circuit) AddWire(name string, width int) (int, error) {
	if i, ok := c.byName[name]; ok {
		return i, nil
	}
	if len(c.wires) >= c.cfg.MaxWires {
		return -1, c.fault(errors.Errorf("too many wires (max %d)", c.cfg.MaxWires))
	}
	if width < 1 {
		return -1, errors.Errorf("wire %s: invalid width %d", name, width)
	}
	i := len(c.wires)
	c.wires = append(c.wires, newWire(name, width))
	c.byName[name] = i
	return i, nil
}

// FindWire returns the index of the named wire, or -1.
//
func (c *Circuit) FindWire(name string) int {
	if i, ok := c.byName[name]; ok {
		return i
	}
	return -1
}

// Wire returns the wire at index i. The returned value is owned by the
// circuit and must not be retained across mutations.
//
func (c *Circuit) Wire(i int) *Wire { return c.wires[i] }

// Gate returns the gate at index i.
//
func (c *Circuit) Gate(i int) *Gate { return c.gates[i] }

// SetWire forces both the committed and pending state of one wire bit, so
// that the next propagation sweep does not immediately overwrite the value.
// Out of range indices are ignored.
//
func (c *Circuit) SetWire(wire, bit int, s State) {
	if wire < 0 || wire >= len(c.wires) {
		return
	}
	w := c.wires[wire]
	if bit < 0 || bit >= w.Width {
		return
	}
	w.State[bit] = s
	w.Next[bit] = s
}

// GetWire returns the committed state of one wire bit, or X for out of
// range indices.
//
func (c *Circuit) GetWire(wire, bit int) State {
	if wire < 0 || wire >= len(c.wires) {
		return SX
	}
	w := c.wires[wire]
	if bit < 0 || bit >= w.Width {
		return SX
	}
	return w.State[bit]
}

// AddGate allocates a gate of the given type with no connections and returns
// its index.
//
func (c *Circuit) AddGate(t GateType, name string) (int, error) {
	if len(c.gates) >= c.cfg.MaxGates {
		return -1, c.fault(errors.Errorf("too many gates (max %d)", c.cfg.MaxGates))
	}
	i := len(c.gates)
	c.gates = append(c.gates, &Gate{
		Name:   name,
		Type:   t,
		Stored: S0,
		Const:  S0,
		ModRef: -1,
	})
	return i, nil
}

// GateAddInput appends an input pin to gate g. Input order is significant.
//
func (c *Circuit) GateAddInput(gate, wire, bit int) error {
	if gate < 0 || gate >= len(c.gates) {
		return errors.Errorf("invalid gate index %d", gate)
	}
	g := c.gates[gate]
	if len(g.Inputs) >= c.cfg.MaxGateInputs {
		return errors.Errorf("gate %s: too many inputs (max %d)", g.Name, c.cfg.MaxGateInputs)
	}
	g.Inputs = append(g.Inputs, Pin{Wire: wire, Bit: bit})
	return nil
}

// GateAddOutput appends an output pin to gate g.
//
func (c *Circuit) GateAddOutput(gate, wire, bit int) error {
	if gate < 0 || gate >= len(c.gates) {
		return errors.Errorf("invalid gate index %d", gate)
	}
	g := c.gates[gate]
	if len(g.Outputs) >= c.cfg.MaxGateOutputs {
		return errors.Errorf("gate %s: too many outputs (max %d)", g.Name, c.cfg.MaxGateOutputs)
	}
	g.Outputs = append(g.Outputs, Pin{Wire: wire, Bit: bit})
	return nil
}
