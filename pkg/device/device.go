// Package device describes the two deployed siding signal units.
//
// The units are wired differently in the field: each has its own sensor bus
// address, its own outer "begin zone" threshold, and opposite siding switch
// polarity. All differences live in the Unit record so the rest of the code
// never branches on unit identity directly.
package device

// Unit is the immutable configuration of one physical signal unit.
// It is selected once at startup by probing the sensor bus and never
// changes for the lifetime of the process.
type Unit struct {
	// ID is the deployed unit number (1 or 2).
	ID uint8

	// Addr is the sensor's bus address.
	Addr uint16

	// BeginZone is the distance in scale feet at which the signal zone
	// starts. At or below it the signal shows a color, above it the
	// display stays blank.
	BeginZone int

	// Offset is a reserved calibration field. It is configured on unit 1
	// but not in use: no distance computation applies it.
	Offset int

	// SwitchClosedLevel is the physical input level that means the siding
	// is closed to traffic. The two units are wired with opposite
	// polarity, which this field preserves.
	SwitchClosedLevel bool
}

var (
	// Unit1 is the primary unit, probed first at startup.
	Unit1 = Unit{ID: 1, Addr: 0x70, BeginZone: 25, Offset: 2, SwitchClosedLevel: true}

	// Unit2 is selected when unit 1 does not answer its probe.
	Unit2 = Unit{ID: 2, Addr: 0x71, BeginZone: 40, Offset: 0, SwitchClosedLevel: false}
)
