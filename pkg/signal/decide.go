package signal

import "github.com/madnordski/SidingSignal/pkg/device"

// nearTable maps distances close to the stop point, in scale feet, to their
// aspect. The breakpoints are hand-tuned to the physical braking margin of
// the layout: the red band is deliberately wider than the yellow one, and
// entry 15 is the boundary back into green. Do not regularize the split.
var nearTable = [16]State{
	Red, Red, Red, Red, Red, Red, Red, Red, // 0..7
	Yellow, Yellow, Yellow, Yellow, Yellow, Yellow, Yellow, // 8..14
	Green, // 15
}

// Decide maps a measured distance to a signal state for the given unit.
// It is a pure function of its arguments; siding status is handled by the
// caller, which short-circuits to the blocked screen before aspects apply.
//
// Negative distances are the measurement-failure sentinel. Distances inside
// the near-range table take their aspect from it; past the table but at or
// inside the unit's begin zone the aspect is green; beyond the begin zone
// nothing is shown.
func Decide(feet int, unit device.Unit) State {
	switch {
	case feet < 0:
		return Unavailable
	case feet < len(nearTable):
		return nearTable[feet]
	case feet <= unit.BeginZone:
		return Green
	default:
		return Blank
	}
}
