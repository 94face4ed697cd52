package gatesim

// Convenience constructors. Each one allocates a single gate and wires bit 0
// of the given wires in one call, the way the elaborator emits flattened
// primitives. They all return the new gate's index.

func (c *Circuit) addGate1(t GateType, name string, in, out int) (int, error) {
	g, err := c.AddGate(t, name)
	if err != nil {
		return -1, err
	}
	if err = c.GateAddInput(g, in, 0); err != nil {
		return -1, err
	}
	if err = c.GateAddOutput(g, out, 0); err != nil {
		return -1, err
	}
	return g, nil
}

func (c *Circuit) addGate2(t GateType, name string, a, b, out int) (int, error) {
	g, err := c.AddGate(t, name)
	if err != nil {
		return -1, err
	}
	if err = c.GateAddInput(g, a, 0); err != nil {
		return -1, err
	}
	if err = c.GateAddInput(g, b, 0); err != nil {
		return -1, err
	}
	if err = c.GateAddOutput(g, out, 0); err != nil {
		return -1, err
	}
	return g, nil
}

// AddNot adds a NOT gate: out = !in.
//
func (c *Circuit) AddNot(name string, in, out int) (int, error) {
	return c.addGate1(Not, name, in, out)
}

// AddBuf adds a BUF gate: out = in.
//
func (c *Circuit) AddBuf(name string, in, out int) (int, error) {
	return c.addGate1(Buf, name, in, out)
}

// AddAnd adds a 2-input AND gate.
//
func (c *Circuit) AddAnd(name string, a, b, out int) (int, error) {
	return c.addGate2(And, name, a, b, out)
}

// AddOr adds a 2-input OR gate.
//
func (c *Circuit) AddOr(name string, a, b, out int) (int, error) {
	return c.addGate2(Or, name, a, b, out)
}

// AddNand adds a 2-input NAND gate.
//
func (c *Circuit) AddNand(name string, a, b, out int) (int, error) {
	return c.addGate2(Nand, name, a, b, out)
}

// AddNor adds a 2-input NOR gate.
//
func (c *Circuit) AddNor(name string, a, b, out int) (int, error) {
	return c.addGate2(Nor, name, a, b, out)
}

// AddXor adds a XOR gate.
//
func (c *Circuit) AddXor(name string, a, b, out int) (int, error) {
	return c.addGate2(Xor, name, a, b, out)
}

// AddXnor adds a XNOR gate.
//
func (c *Circuit) AddXnor(name string, a, b, out int) (int, error) {
	return c.addGate2(Xnor, name, a, b, out)
}

// AddMux2 adds a 2:1 multiplexer: out = a if sel is 0, b if sel is 1.
//
func (c *Circuit) AddMux2(name string, a, b, sel, out int) (int, error) {
	g, err := c.addGate2(Mux2, name, a, b, out)
	if err != nil {
		return -1, err
	}
	if err = c.GateAddInput(g, sel, 0); err != nil {
		return -1, err
	}
	return g, nil
}

// AddDFF adds a D flip-flop. Input 0 is D, input 1 is clk, output 0 is Q.
// Note that the clk input exists for the netlist's sake only: Clock captures
// every flip-flop in the circuit at once and never reads clk. See Clock.
//
func (c *Circuit) AddDFF(name string, d, clk, q int) (int, error) {
	return c.addGate2(DFF, name, d, clk, q)
}

// AddDLatch adds a D latch. Input 0 is D, input 1 is the enable, output 0
// is Q. Like the DFF, the enable input is netlist bookkeeping only.
//
func (c *Circuit) AddDLatch(name string, d, en, q int) (int, error) {
	return c.addGate2(DLatch, name, d, en, q)
}

// AddConst adds a constant driver for the given state.
//
func (c *Circuit) AddConst(name string, s State, out int) (int, error) {
	g, err := c.AddGate(Const, name)
	if err != nil {
		return -1, err
	}
	c.gates[g].Const = s
	if err = c.GateAddOutput(g, out, 0); err != nil {
		return -1, err
	}
	return g, nil
}
