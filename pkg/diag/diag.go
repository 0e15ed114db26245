// Package diag reads the firmware's diagnostic log from the device's serial
// port. The log is a side channel for humans and tooling; nothing in the
// control loop depends on it.
//
// The firmware emits two kinds of lines: free-form notes prefixed with '#'
// (startup device selection, mode changes) and status records of the form
//
//	millis,feet,state,siding
//
// for example "73412,12,yellow,open". Feet is -1 while the measurement is
// unavailable.
package diag

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.bug.st/serial"

	"github.com/madnordski/SidingSignal/pkg/signal"
)

const (
	// DefaultBaudRate matches the firmware's UART configuration.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the status channel buffer.
	DefaultBufferSize = 100
)

// Status is one parsed status record from the device.
type Status struct {
	Uptime time.Duration // device uptime when the record was emitted
	Feet   int           // measured distance in scale feet, -1 when unavailable
	State  signal.State
	Closed bool // siding closed to traffic
}

// Serial tails the diagnostic log on a serial port.
type Serial struct {
	port     string
	baudRate int
	bufSize  int

	conn      serial.Port
	statuses  chan Status
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool
}

// New creates a log reader for the given port.
func New(port string, baudRate int, bufSize int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}
	if bufSize == 0 {
		bufSize = DefaultBufferSize
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		bufSize:  bufSize,
		statuses: make(chan Status, bufSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Connect opens the serial port and starts reading log lines.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	port, err := serial.Open(d.port, &serial.Mode{BaudRate: d.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go d.readLines(d.conn)

	return nil
}

// Close closes the port and stops reading.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		d.conn = nil
	}

	d.connected = false
	close(d.statuses)

	return nil
}

// Statuses returns the channel of parsed status records.
func (d *Serial) Statuses() <-chan Status {
	return d.statuses
}

// IsConnected reports whether the port is currently open.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// readLines scans the log, forwarding notes to the log package and status
// records to the channel.
func (d *Serial) readLines(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for {
		select {
		case <-d.ctx.Done():
			return
		default:
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil && err != io.EOF {
					log.Printf("Error reading from serial port: %v", err)
				}
				return
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if strings.HasPrefix(line, "#") {
				log.Printf("device: %s", strings.TrimSpace(line[1:]))
				continue
			}

			status, err := ParseLine(line)
			if err != nil {
				log.Printf("Failed to parse line '%s': %v", line, err)
				continue
			}

			select {
			case d.statuses <- status:
			case <-d.ctx.Done():
				return
			default:
				log.Printf("Status channel full, dropping record")
			}
		}
	}
}

// ParseLine parses one status record.
// Format: millis,feet,state,siding. Example: 73412,12,yellow,open.
func ParseLine(line string) (Status, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Status{}, fmt.Errorf("invalid line format: expected 4 comma-separated values, got %d", len(parts))
	}

	millis, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Status{}, fmt.Errorf("invalid uptime: %w", err)
	}
	if millis < 0 {
		return Status{}, fmt.Errorf("uptime out of range: %d", millis)
	}

	feet, err := strconv.Atoi(parts[1])
	if err != nil {
		return Status{}, fmt.Errorf("invalid distance: %w", err)
	}
	if feet < -1 {
		return Status{}, fmt.Errorf("distance out of range: %d", feet)
	}

	state, ok := signal.ParseState(parts[2])
	if !ok {
		return Status{}, fmt.Errorf("unknown state %q", parts[2])
	}

	var closed bool
	switch parts[3] {
	case "closed":
		closed = true
	case "open":
		closed = false
	default:
		return Status{}, fmt.Errorf("unknown siding status %q", parts[3])
	}

	return Status{
		Uptime: time.Duration(millis) * time.Millisecond,
		Feet:   feet,
		State:  state,
		Closed: closed,
	}, nil
}
