// sidingsim runs the real control loop against simulated hardware: a mock
// sensor bus fed by a scripted distance profile, a headless screen, and a
// stdout indicator lamp. Useful for watching the redraw policy without a
// soldering iron.
package main

import (
	"flag"
	"image/color"
	"log"
	"time"

	"github.com/madnordski/SidingSignal/pkg/config"
	"github.com/madnordski/SidingSignal/pkg/device"
	"github.com/madnordski/SidingSignal/pkg/display"
	"github.com/madnordski/SidingSignal/pkg/indicator"
	"github.com/madnordski/SidingSignal/pkg/rangefinder"
	"github.com/madnordski/SidingSignal/pkg/sample"
	"github.com/madnordski/SidingSignal/pkg/siding"
	"github.com/madnordski/SidingSignal/pkg/signal"
)

// headlessDisplay satisfies the display contract without hardware. It only
// counts physical redraws so the simulator can show suppression at work.
type headlessDisplay struct {
	flushes int
}

func (d *headlessDisplay) Size() (int16, int16) { return display.Width, display.Height }

func (d *headlessDisplay) SetPixel(x, y int16, c color.RGBA) {}

func (d *headlessDisplay) Display() error { d.flushes++; return nil }

func (d *headlessDisplay) FillRectangle(x, y, w, h int16, c color.RGBA) error { return nil }

type simPin struct{ level bool }

func (p *simPin) Get() bool { return p.level }

type simChannel struct{ level uint8 }

func (c *simChannel) Set(level uint8) { c.level = level }

func main() {
	configFlag := flag.String("config", "config.yaml", "Configuration file path")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	sim := cfg.Sim

	present := device.Unit1
	if sim.Unit == 2 {
		present = device.Unit2
	}

	bus := rangefinder.NewMockBus(present.Addr)
	bus.SetDistance(uint16(sim.Profile[0]))

	unit := rangefinder.Detect(bus)
	log.Printf("probe: unit %d selected, begin zone %d", unit.ID, unit.BeginZone)

	client := rangefinder.New(bus, unit)
	client.Timeout = 50 * time.Millisecond

	pin := &simPin{level: !unit.SwitchClosedLevel} // start open
	r, g, b := &simChannel{}, &simChannel{}, &simChannel{}
	lamp := indicator.New(r, g, b)
	lamp.Selected(unit)

	screen := &headlessDisplay{}
	renderer := display.New(screen, unit)

	ctl := signal.NewController(unit, sample.New(client), siding.New(pin, unit), renderer, lamp)

	var lastLamp [3]uint8
	for i := 1; i <= sim.Cycles; i++ {
		idx := i - 1
		if idx >= len(sim.Profile) {
			idx = len(sim.Profile) - 1
		}
		bus.SetDistance(uint16(sim.Profile[idx]))
		bus.FailReads = sim.FailAt == i
		if sim.CloseAt == i {
			pin.level = unit.SwitchClosedLevel
		}
		if sim.OpenAt == i {
			pin.level = !unit.SwitchClosedLevel
		}

		st, closed, err := ctl.Cycle()
		sidingWord := "open"
		if closed {
			sidingWord = "closed"
		}
		feet := -1
		if _, lf, ok := renderer.LastDrawn(); ok {
			feet = lf
		}
		if err != nil {
			log.Printf("cycle %2d: state=%-11s siding=%-6s redraws=%d (sample failed: %v)",
				i, st, sidingWord, screen.flushes, err)
		} else {
			log.Printf("cycle %2d: state=%-11s feet=%-4d siding=%-6s redraws=%d",
				i, st, feet, sidingWord, screen.flushes)
		}
		if lampNow := [3]uint8{r.level, g.level, b.level}; lampNow != lastLamp {
			log.Printf("          lamp -> r=%d g=%d b=%d", lampNow[0], lampNow[1], lampNow[2])
			lastLamp = lampNow
		}

		time.Sleep(sim.Interval)
	}
}
