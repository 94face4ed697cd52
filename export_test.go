package gatesim_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	gs "github.com/db47h/gatesim"
)

func exportCircuit(t *testing.T) *gs.Circuit {
	t.Helper()
	c, err := gs.New()
	require.NoError(t, err)
	a, _ := c.AddWire("a", 2)
	c.Wire(a).IsInput = true
	sum, _ := c.AddWire("sum", 1)
	c.Wire(sum).IsOutput = true
	q, _ := c.AddWire("q", 1)

	_, err = c.AddXor("xor", a, a, sum)
	require.NoError(t, err)
	_, err = c.AddDFF("ff", sum, gs.Vdd, q)
	require.NoError(t, err)
	c.SetWire(a, 0, gs.S1)
	c.SetWire(a, 1, gs.S0)
	require.NoError(t, c.Step())
	return c
}

func Test_export_json(t *testing.T) {
	c := exportCircuit(t)
	path := filepath.Join(t.TempDir(), "circuit.json")
	require.NoError(t, c.ExportJSON(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Cycle  uint64 `json:"cycle"`
		Stable bool   `json:"stable"`
		Wires  []struct {
			ID       int    `json:"id"`
			Name     string `json:"name"`
			Width    int    `json:"width"`
			IsInput  bool   `json:"is_input"`
			IsOutput bool   `json:"is_output"`
			State    []int  `json:"state"`
		} `json:"wires"`
		Gates []struct {
			ID      int              `json:"id"`
			Name    string           `json:"name"`
			Type    string           `json:"type"`
			Inputs  []map[string]int `json:"inputs"`
			Outputs []map[string]int `json:"outputs"`
			Stored  *int             `json:"stored"`
		} `json:"gates"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))

	require.Equal(t, uint64(1), doc.Cycle)
	require.True(t, doc.Stable)
	require.Len(t, doc.Wires, c.NumWires())
	require.Len(t, doc.Gates, c.NumGates())

	require.Equal(t, "gnd", doc.Wires[0].Name)
	require.Equal(t, []int{0}, doc.Wires[0].State)
	require.Equal(t, "vdd", doc.Wires[1].Name)
	require.Equal(t, []int{1}, doc.Wires[1].State)
	require.True(t, doc.Wires[2].IsInput)
	require.Equal(t, 2, doc.Wires[2].Width)

	require.Equal(t, "XOR", doc.Gates[0].Type)
	require.Nil(t, doc.Gates[0].Stored)
	require.Equal(t, "DFF", doc.Gates[1].Type)
	require.NotNil(t, doc.Gates[1].Stored)
	require.Equal(t, 0, *doc.Gates[1].Stored) // XOR(a,a) is always 0
}

func Test_export_json_state(t *testing.T) {
	c := exportCircuit(t)
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, c.ExportJSONState(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Cycle      uint64  `json:"cycle"`
		Stable     bool    `json:"stable"`
		WireStates [][]int `json:"wire_states"`
		DFFStates  []struct {
			ID     int `json:"id"`
			Stored int `json:"stored"`
		} `json:"dff_states"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))

	require.Equal(t, uint64(1), doc.Cycle)
	require.Len(t, doc.WireStates, c.NumWires())
	require.Len(t, doc.DFFStates, 1)
	require.Equal(t, 1, doc.DFFStates[0].ID)
}

// Exporting twice without intervening mutation must be byte-identical.
func Test_export_deterministic(t *testing.T) {
	c := exportCircuit(t)
	dir := t.TempDir()
	p1 := filepath.Join(dir, "c1.json")
	p2 := filepath.Join(dir, "c2.json")

	require.NoError(t, c.ExportJSON(p1))
	require.NoError(t, c.ExportJSON(p2))
	b1, err := os.ReadFile(p1)
	require.NoError(t, err)
	b2, err := os.ReadFile(p2)
	require.NoError(t, err)
	if !bytes.Equal(b1, b2) {
		t.Errorf("exports differ:\n%s", cmp.Diff(string(b1), string(b2)))
	}

	require.NoError(t, c.ExportJSONState(p1))
	require.NoError(t, c.ExportJSONState(p2))
	b1, err = os.ReadFile(p1)
	require.NoError(t, err)
	b2, err = os.ReadFile(p2)
	require.NoError(t, err)
	if !bytes.Equal(b1, b2) {
		t.Errorf("state exports differ:\n%s", cmp.Diff(string(b1), string(b2)))
	}

	// no stray temp files left behind
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, ents, 2)
}
