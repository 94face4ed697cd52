package gatesim

// A Wire is a named bus of one or more four-valued bits. Wires are owned by
// their Circuit and addressed everywhere by the integer index returned from
// AddWire; the index is stable for the lifetime of the circuit.
//
// Each bit carries two values: the committed state read by gate evaluation,
// and the pending next state written by it. Propagate commits pending values
// at the end of every sweep so that all gates within one sweep observe the
// same frame.
//
type Wire struct {
	Name     string
	Width    int
	State    []State // committed values, one per bit
	Next     []State // pending values
	IsInput  bool    // external circuit input
	IsOutput bool    // external circuit output
}

func newWire(name string, width int) *Wire {
	w := &Wire{
		Name:  name,
		Width: width,
		State: make([]State, width),
		Next:  make([]State, width),
	}
	for i := range w.State {
		w.State[i] = SX
		w.Next[i] = SX
	}
	return w
}
