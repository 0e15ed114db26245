// Package rangefinder reads the siding distance sensor over the I2C bus.
//
// The sensor speaks a trigger-then-poll protocol: a zero-payload write to the
// ranging register starts a measurement, and the result is read back as a
// 2-byte big-endian distance once the sensor is ready. The client performs a
// single transaction; retry policy belongs to the caller.
package rangefinder

import (
	"encoding/binary"
	"errors"
	"time"

	"tinygo.org/x/drivers"

	"github.com/madnordski/SidingSignal/pkg/device"
)

const (
	// rangeReg is the register a zero-payload write is addressed to in
	// order to trigger a measurement.
	rangeReg = 0x00

	// DefaultTimeout bounds how long ReadRaw waits for the 2-byte
	// response before giving up.
	DefaultTimeout = 300 * time.Millisecond

	// settleDelay is the pause between triggering a measurement and the
	// first attempt to read the result.
	settleDelay = time.Millisecond

	// pollInterval is the pause between response read attempts.
	pollInterval = 5 * time.Millisecond
)

// NoReading is the sentinel distance returned when a measurement failed.
const NoReading = -1

// ErrTimeout reports that the sensor did not answer within the bus timeout.
var ErrTimeout = errors.New("rangefinder: no response within timeout")

// Reader is the single-measurement contract the sampler consumes.
type Reader interface {
	ReadRaw() (int, error)
}

// Client reads raw distances from one unit's sensor.
type Client struct {
	bus  drivers.I2C
	unit device.Unit

	// Timeout bounds one read transaction.
	Timeout time.Duration
}

var _ Reader = (*Client)(nil)

// New creates a client bound to the given unit's sensor address.
func New(bus drivers.I2C, unit device.Unit) *Client {
	return &Client{
		bus:     bus,
		unit:    unit,
		Timeout: DefaultTimeout,
	}
}

// ReadRaw performs one measurement transaction and returns the distance in
// bus-native units (millimeters). On any failure it returns NoReading and
// the cause; it never retries.
func (c *Client) ReadRaw() (int, error) {
	if err := c.bus.Tx(c.unit.Addr, []byte{rangeReg}, nil); err != nil {
		return NoReading, ErrTimeout
	}
	time.Sleep(settleDelay)

	var buf [2]byte
	start := time.Now()
	for {
		if err := c.bus.Tx(c.unit.Addr, nil, buf[:]); err == nil {
			return int(binary.BigEndian.Uint16(buf[:])), nil
		}
		if time.Since(start) >= c.Timeout {
			return NoReading, ErrTimeout
		}
		time.Sleep(pollInterval)
	}
}

// Detect probes unit 1's sensor address once and selects the unit that is
// physically present: unit 1 if its sensor answers the probe, unit 2
// otherwise. The selection is one-shot and permanent for the process.
func Detect(bus drivers.I2C) device.Unit {
	if err := bus.Tx(device.Unit1.Addr, []byte{rangeReg}, nil); err == nil {
		return device.Unit1
	}
	return device.Unit2
}
