// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gatesim

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// JSON export schemas, consumed by the browser visualizer. Field order and
// wire/gate order (insertion order) are fixed, so exporting an unchanged
// circuit twice produces byte-identical files.

type jsonPin struct {
	Wire int `json:"wire"`
	Bit  int `json:"bit"`
}

type jsonWire struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Width    int     `json:"width"`
	IsInput  bool    `json:"is_input"`
	IsOutput bool    `json:"is_output"`
	State    []State `json:"state"`
}

type jsonGate struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Type    string    `json:"type"`
	Inputs  []jsonPin `json:"inputs"`
	Outputs []jsonPin `json:"outputs"`
	Stored  *State    `json:"stored,omitempty"` // flip-flops only
}

type jsonCircuit struct {
	Cycle  uint64     `json:"cycle"`
	Stable bool       `json:"stable"`
	Wires  []jsonWire `json:"wires"`
	Gates  []jsonGate `json:"gates"`
}

type jsonDFF struct {
	ID     int   `json:"id"`
	Stored State `json:"stored"`
}

type jsonState struct {
	Cycle      uint64    `json:"cycle"`
	Stable     bool      `json:"stable"`
	WireStates [][]State `json:"wire_states"`
	DFFStates  []jsonDFF `json:"dff_states"`
}

// writeJSON writes v to path atomically: the document is marshaled to a
// temporary file in the target directory, then renamed over path.
func writeJSON(path string, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal")
	}
	b = append(b, '\n')
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	if _, err = f.Write(b); err != nil {
		f.Close()
		os.Remove(f.Name())
		return errors.Wrap(err, "write "+path)
	}
	if err = f.Close(); err != nil {
		os.Remove(f.Name())
		return errors.Wrap(err, "close "+path)
	}
	if err = os.Rename(f.Name(), path); err != nil {
		os.Remove(f.Name())
		return errors.Wrap(err, "rename "+path)
	}
	return nil
}

// ExportJSON writes the full circuit graph and state to path: every wire
// with its flags and state vector, every gate with its endpoints, and the
// stored value of every flip-flop.
//
func (c *Circuit) ExportJSON(path string) error {
	doc := jsonCircuit{
		Cycle:  c.cycle,
		Stable: c.stable,
		Wires:  make([]jsonWire, len(c.wires)),
		Gates:  make([]jsonGate, len(c.gates)),
	}
	for i, w := range c.wires {
		doc.Wires[i] = jsonWire{
			ID:       i,
			Name:     w.Name,
			Width:    w.Width,
			IsInput:  w.IsInput,
			IsOutput: w.IsOutput,
			State:    w.State,
		}
	}
	for i, g := range c.gates {
		jg := jsonGate{
			ID:      i,
			Name:    g.Name,
			Type:    g.Type.String(),
			Inputs:  make([]jsonPin, len(g.Inputs)),
			Outputs: make([]jsonPin, len(g.Outputs)),
		}
		for j, p := range g.Inputs {
			jg.Inputs[j] = jsonPin{Wire: p.Wire, Bit: p.Bit}
		}
		for j, p := range g.Outputs {
			jg.Outputs[j] = jsonPin{Wire: p.Wire, Bit: p.Bit}
		}
		if g.Type == DFF {
			s := g.Stored
			jg.Stored = &s
		}
		doc.Gates[i] = jg
	}
	return writeJSON(path, &doc)
}

// ExportJSONState writes a lightweight per-cycle snapshot to path: the cycle
// counter, stability flag, every wire's state vector and every flip-flop's
// stored value. Intended for animation frame updates, where the full graph
// has already been exported once.
//
func (c *Circuit) ExportJSONState(path string) error {
	doc := jsonState{
		Cycle:      c.cycle,
		Stable:     c.stable,
		WireStates: make([][]State, len(c.wires)),
		DFFStates:  []jsonDFF{},
	}
	for i, w := range c.wires {
		doc.WireStates[i] = w.State
	}
	for i, g := range c.gates {
		if g.Type == DFF {
			doc.DFFStates = append(doc.DFFStates, jsonDFF{ID: i, Stored: g.Stored})
		}
	}
	return writeJSON(path, &doc)
}
