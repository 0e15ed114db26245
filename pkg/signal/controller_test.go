package signal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madnordski/SidingSignal/pkg/device"
	"github.com/madnordski/SidingSignal/pkg/rangefinder"
)

type fakeSampler struct {
	feet int
	err  error
}

func (f *fakeSampler) ScaleFeet() (int, error) {
	if f.err != nil {
		return rangefinder.NoReading, f.err
	}
	return f.feet, nil
}

type fakeSwitch struct{ closed bool }

func (f *fakeSwitch) Closed() bool { return f.closed }

// fakeScreen records the calls the controller makes, mimicking the real
// renderer's suppression of unchanged aspects.
type fakeScreen struct {
	log []string

	lastState State
	valid     bool
}

func (f *fakeScreen) ShowSignal(st State, feet int) bool {
	if f.valid && st == f.lastState {
		return false
	}
	f.lastState = st
	f.valid = true
	f.log = append(f.log, "signal:"+st.String())
	return true
}

func (f *fakeScreen) ShowBlocked() {
	f.valid = false
	f.log = append(f.log, "blocked")
}

func (f *fakeScreen) Clear() {
	f.valid = false
	f.log = append(f.log, "clear")
}

type fakeLamp struct {
	off      int
	failures []uint8
}

func (f *fakeLamp) Off() { f.off++ }

func (f *fakeLamp) SampleFailure(u device.Unit) { f.failures = append(f.failures, u.ID) }

func newTestController(unit device.Unit) (*Controller, *fakeSampler, *fakeSwitch, *fakeScreen, *fakeLamp) {
	samp := &fakeSampler{feet: 12}
	sw := &fakeSwitch{}
	scr := &fakeScreen{}
	lamp := &fakeLamp{}
	return NewController(unit, samp, sw, scr, lamp), samp, sw, scr, lamp
}

func TestCycle_DrawsAspectOnce(t *testing.T) {
	c, samp, _, scr, _ := newTestController(device.Unit1)
	samp.feet = 12

	st, closed, err := c.Cycle()
	require.NoError(t, err)
	assert.Equal(t, Yellow, st)
	assert.False(t, closed)

	// Unchanged distance: no further physical draws.
	_, _, err = c.Cycle()
	require.NoError(t, err)
	_, _, err = c.Cycle()
	require.NoError(t, err)
	assert.Equal(t, []string{"clear", "signal:yellow"}, scr.log)
}

func TestCycle_RedrawsOnAspectChange(t *testing.T) {
	c, samp, _, scr, _ := newTestController(device.Unit1)

	samp.feet = 20
	_, _, _ = c.Cycle()
	samp.feet = 10
	_, _, _ = c.Cycle()
	samp.feet = 3
	_, _, _ = c.Cycle()

	assert.Equal(t, []string{"clear", "signal:green", "signal:yellow", "signal:red"}, scr.log)
}

func TestCycle_ClosedSidingOverridesAspect(t *testing.T) {
	c, samp, sw, scr, _ := newTestController(device.Unit1)
	samp.feet = 3 // would be red
	sw.closed = true

	st, closed, err := c.Cycle()
	require.NoError(t, err)
	assert.Equal(t, Red, st, "decision core still evaluates the distance")
	assert.True(t, closed)
	assert.Equal(t, []string{"blocked"}, scr.log, "no aspect may reach the screen while closed")
}

func TestCycle_SidingTransitionForcesFreshDraw(t *testing.T) {
	c, samp, sw, scr, _ := newTestController(device.Unit1)
	samp.feet = 12

	_, _, _ = c.Cycle() // open: yellow drawn
	sw.closed = true
	_, _, _ = c.Cycle() // closed: blocked screen
	_, _, _ = c.Cycle() // still closed: nothing new
	sw.closed = false
	_, _, _ = c.Cycle() // reopened: clear, then yellow drawn again

	assert.Equal(t, []string{
		"clear", "signal:yellow",
		"blocked",
		"clear", "signal:yellow",
	}, scr.log)
}

func TestCycle_SampleFailureLeavesScreenAlone(t *testing.T) {
	tests := []struct {
		name string
		unit device.Unit
	}{
		{name: "unit 1", unit: device.Unit1},
		{name: "unit 2", unit: device.Unit2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, samp, _, scr, lamp := newTestController(tt.unit)
			samp.feet = 12
			_, _, _ = c.Cycle()
			drawn := len(scr.log)

			samp.err = rangefinder.ErrTimeout
			st, _, err := c.Cycle()
			assert.ErrorIs(t, err, rangefinder.ErrTimeout)
			assert.Equal(t, Unavailable, st)
			assert.Len(t, scr.log, drawn, "failed cycle must not touch the screen")
			assert.Equal(t, []uint8{tt.unit.ID}, lamp.failures)

			// Recovery with the same aspect: lamp off, still no redraw.
			samp.err = nil
			_, _, err = c.Cycle()
			require.NoError(t, err)
			assert.Len(t, scr.log, drawn)
			assert.Greater(t, lamp.off, 0)
		})
	}
}

func TestCycle_BlankBeyondBeginZone(t *testing.T) {
	c, samp, _, _, _ := newTestController(device.Unit2)
	samp.feet = 138 // the 1000-unit burst scenario

	st, _, err := c.Cycle()
	require.NoError(t, err)
	assert.Equal(t, Blank, st)
}
