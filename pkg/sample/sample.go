// Package sample turns raw sensor readings into smoothed scale-feet
// distances. The sensor is noisy, so every published distance is the average
// of a burst of consecutive raw reads.
package sample

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/madnordski/SidingSignal/pkg/rangefinder"
)

const (
	// BurstSize is the number of consecutive raw reads averaged into one
	// distance. Large enough to damp sensor noise at the cost of a
	// longer sample window.
	BurstSize = 50

	// ScaleFeetPerUnit converts averaged bus-native millimeters into
	// scale feet on the layout.
	ScaleFeetPerUnit = 0.1378
)

// Sampler produces smoothed, unit-converted distances from a raw reader.
type Sampler struct {
	reader rangefinder.Reader
	burst  int
}

// New creates a sampler over the given raw reader.
func New(reader rangefinder.Reader) *Sampler {
	return &Sampler{reader: reader, burst: BurstSize}
}

// ScaleFeet takes one burst of raw readings and returns their average
// converted to scale feet, rounded to the nearest foot.
//
// Any single failed read invalidates the whole burst immediately: a bad link
// should surface as an error, not as a silently degraded average. On failure
// the returned distance is rangefinder.NoReading.
func (s *Sampler) ScaleFeet() (int, error) {
	var sum float32
	for i := 0; i < s.burst; i++ {
		raw, err := s.reader.ReadRaw()
		if err != nil {
			return rangefinder.NoReading, fmt.Errorf("sample %d/%d: %w", i+1, s.burst, err)
		}
		sum += float32(raw)
	}
	avg := sum / float32(s.burst)
	return int(math32.Round(avg * ScaleFeetPerUnit)), nil
}
