// Package signal holds the decision core of the siding signal: the mapping
// from measured distance and siding status to a displayed signal state, and
// the per-cycle controller that decides when the screen actually changes.
package signal

// State is the discrete signal aspect derived from the measured distance.
type State uint8

const (
	// Blank means no signal is shown; the train is too far to matter.
	Blank State = iota
	// Green, Yellow and Red are the signal aspects, nearest to farthest
	// from the stop point in reverse order.
	Green
	Yellow
	Red
	// Unavailable means the distance measurement failed this cycle.
	Unavailable
)

func (s State) String() string {
	switch s {
	case Blank:
		return "blank"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Unavailable:
		return "unavailable"
	}
	return "unknown"
}

// ParseState maps a state word back to its State, for consumers of the
// device's diagnostic log.
func ParseState(s string) (State, bool) {
	switch s {
	case "blank":
		return Blank, true
	case "green":
		return Green, true
	case "yellow":
		return Yellow, true
	case "red":
		return Red, true
	case "unavailable":
		return Unavailable, true
	}
	return Blank, false
}
