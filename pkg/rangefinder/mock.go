package rangefinder

import (
	"encoding/binary"
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// MockBus simulates the sensor side of the I2C bus for tests and for the
// host simulator. It answers the trigger-then-poll protocol for a single
// configured address.
type MockBus struct {
	mu sync.Mutex

	// Addr is the address the simulated sensor answers on. Transactions
	// to any other address fail, which is how device selection is
	// exercised.
	Addr uint16

	// Distance is the value returned by the next response read,
	// millimeters, big-endian on the wire.
	Distance uint16

	// NackReads makes the next n response reads fail before one
	// succeeds, simulating a sensor still busy measuring.
	NackReads int

	// FailReads makes every response read fail when set, simulating a
	// dead link.
	FailReads bool

	// Triggers counts measurement trigger writes, for assertions.
	Triggers int
}

var _ drivers.I2C = (*MockBus)(nil)

var errNoDevice = errors.New("rangefinder: no device at address")

// NewMockBus creates a mock with one sensor present at addr.
func NewMockBus(addr uint16) *MockBus {
	return &MockBus{Addr: addr}
}

// SetDistance changes the distance reported by subsequent reads.
func (m *MockBus) SetDistance(mm uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Distance = mm
}

// Tx implements drivers.I2C.
func (m *MockBus) Tx(addr uint16, w, r []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if addr != m.Addr {
		return errNoDevice
	}

	if len(w) > 0 {
		m.Triggers++
		return nil
	}

	if m.FailReads {
		return errNoDevice
	}
	if m.NackReads > 0 {
		m.NackReads--
		return errNoDevice
	}
	if len(r) >= 2 {
		binary.BigEndian.PutUint16(r, m.Distance)
	}
	return nil
}
