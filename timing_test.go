package gatesim_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	gs "github.com/db47h/gatesim"
)

// andChain builds a straight chain of n 2-input AND gates, the second input
// tied to vdd.
func andChain(t *testing.T, c *gs.Circuit, n int, in int) int {
	t.Helper()
	prev := in
	for i := 0; i < n; i++ {
		next, err := c.AddWire("chain"+strconv.Itoa(i), 1)
		require.NoError(t, err)
		_, err = c.AddAnd("and"+strconv.Itoa(i), prev, gs.Vdd, next)
		require.NoError(t, err)
		prev = next
	}
	return prev
}

func Test_critical_path_chain(t *testing.T) {
	for _, n := range []int{1, 5, 17} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			c, err := gs.New()
			require.NoError(t, err)
			in, err := c.AddWire("in", 1)
			require.NoError(t, err)
			andChain(t, c, n, in)

			tm := c.AnalyzeTiming()
			require.Equal(t, n, tm.CriticalPath)
			require.Equal(t, n, tm.TotalGates)
			require.Equal(t, 6*n, tm.TotalTransistors)
			require.Equal(t, 0, tm.NumFlipFlops)
		})
	}
}

// A flip-flop cuts the combinational path: logic downstream of its Q starts
// again at level 0.
func Test_critical_path_dff_boundary(t *testing.T) {
	c, err := gs.New()
	require.NoError(t, err)
	in, err := c.AddWire("in", 1)
	require.NoError(t, err)

	mid := andChain(t, c, 3, in)
	q, err := c.AddWire("q", 1)
	require.NoError(t, err)
	_, err = c.AddDFF("ff", mid, gs.Vdd, q)
	require.NoError(t, err)

	prev := q
	for i := 0; i < 2; i++ {
		next, err := c.AddWire("post"+strconv.Itoa(i), 1)
		require.NoError(t, err)
		_, err = c.AddAnd("post_and"+strconv.Itoa(i), prev, gs.Vdd, next)
		require.NoError(t, err)
		prev = next
	}

	tm := c.AnalyzeTiming()
	// 3 before the boundary beats 2 after it
	require.Equal(t, 3, tm.CriticalPath)
	require.Equal(t, 1, tm.NumFlipFlops)
	require.Equal(t, 6, tm.TotalGates)
	require.Equal(t, 5*6+40, tm.TotalTransistors)
}

func Test_timing_census(t *testing.T) {
	c, err := gs.New()
	require.NoError(t, err)
	a, _ := c.AddWire("a", 1)
	b, _ := c.AddWire("b", 1)
	o1, _ := c.AddWire("o1", 1)
	o2, _ := c.AddWire("o2", 1)
	o3, _ := c.AddWire("o3", 1)

	_, err = c.AddNot("not", a, o1)
	require.NoError(t, err)
	_, err = c.AddXor("xor", a, b, o2)
	require.NoError(t, err)
	_, err = c.AddDLatch("lat", o2, gs.Vdd, o3)
	require.NoError(t, err)

	tm := c.AnalyzeTiming()
	require.Equal(t, 3, tm.TotalGates)
	require.Equal(t, 2+12+20, tm.TotalTransistors)
	require.Equal(t, 1, tm.NumFlipFlops)
	// dlatch excluded: not=1, xor=1
	require.Equal(t, 1, tm.CriticalPath)
}

func Test_clock_speed_report(t *testing.T) {
	c, err := gs.New()
	require.NoError(t, err)
	in, err := c.AddWire("in", 1)
	require.NoError(t, err)
	andChain(t, c, 10, in)

	var sb strings.Builder
	gs.WriteClockSpeeds(&sb, c.AnalyzeTiming())
	out := sb.String()

	require.Contains(t, out, "Critical path:      10 gate delays")
	require.Contains(t, out, "Relay (1940s)")
	// 10 gates at 10ns (TTL) = 100ns -> 10 MHz, 2 MIPS
	require.Contains(t, out, "10.00 MHz")
	require.Contains(t, out, "CMOS 7nm (2020)")
	// 10 gates at 10ps = 100ps -> 10 GHz
	require.Contains(t, out, "10.00 GHz")
}

func Test_clock_speed_report_empty(t *testing.T) {
	c, err := gs.New()
	require.NoError(t, err)

	var sb strings.Builder
	gs.WriteClockSpeeds(&sb, c.AnalyzeTiming())
	require.Contains(t, sb.String(), "No combinational logic path")
}
