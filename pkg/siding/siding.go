// Package siding reads the switch that reports whether the rail siding is
// open or closed to traffic.
package siding

import "github.com/madnordski/SidingSignal/pkg/device"

// Pin is the single digital input the monitor reads. machine.Pin satisfies
// it on hardware; tests use a fake.
type Pin interface {
	Get() bool
}

// Monitor maps the raw input level to siding status using the unit's wiring
// polarity. Unit 1 reads closed when the line is high, unit 2 when it is
// low. The asymmetry reflects how the two deployed units are physically
// wired and must not be normalized away.
type Monitor struct {
	pin  Pin
	unit device.Unit
}

// New creates a monitor for the given input and unit.
func New(pin Pin, unit device.Unit) *Monitor {
	return &Monitor{pin: pin, unit: unit}
}

// Closed reports whether the siding is currently closed to traffic. The
// status is recomputed from the input on every call, never latched.
func (m *Monitor) Closed() bool {
	return m.pin.Get() == m.unit.SwitchClosedLevel
}
