//go:build tinygo

//go:generate tinygo flash -target=xiao

package main

import (
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1331"

	"github.com/madnordski/SidingSignal/pkg/display"
	"github.com/madnordski/SidingSignal/pkg/indicator"
	"github.com/madnordski/SidingSignal/pkg/rangefinder"
	"github.com/madnordski/SidingSignal/pkg/sample"
	"github.com/madnordski/SidingSignal/pkg/siding"
	"github.com/madnordski/SidingSignal/pkg/signal"
)

// lampChannel adapts one PWM channel to the indicator contract.
type lampChannel struct {
	pwm *machine.TCC
	ch  uint8
}

func (c lampChannel) Set(level uint8) {
	c.pwm.Set(c.ch, c.pwm.Top()*uint32(level)/255)
}

func lampChannelFor(pwm *machine.TCC, pin machine.Pin) lampChannel {
	ch, err := pwm.Channel(pin)
	if err != nil {
		println("# lamp channel unavailable on pin", int(pin))
	}
	return lampChannel{pwm: pwm, ch: ch}
}

func main() {
	start := time.Now()

	machine.Serial.Configure(machine.UARTConfig{BaudRate: UART_BAUD_RATE})

	machine.I2C0.Configure(machine.I2CConfig{
		Frequency: I2C_FREQUENCY,
		SDA:       PIN_SDA,
		SCL:       PIN_SCL,
	})

	machine.SPI0.Configure(machine.SPIConfig{Frequency: SPI_FREQUENCY})
	oled := ssd1331.New(machine.SPI0, PIN_OLED_RST, PIN_OLED_DC, PIN_OLED_CS)
	oled.Configure(ssd1331.Config{})

	PIN_SIDING.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	pwm := machine.TCC0
	if err := pwm.Configure(machine.PWMConfig{}); err != nil {
		println("# lamp pwm configure failed")
	}
	lamp := indicator.New(
		lampChannelFor(pwm, PIN_LAMP_R),
		lampChannelFor(pwm, PIN_LAMP_G),
		lampChannelFor(pwm, PIN_LAMP_B),
	)

	// Let the sensor power up before probing for it.
	lamp.Searching()
	time.Sleep(500 * time.Millisecond)

	unit := rangefinder.Detect(machine.I2C0)
	println("# siding signal unit", unit.ID, "selected, begin zone", unit.BeginZone)
	lamp.Selected(unit)
	// Leave the selection color visible before the loop takes the lamp over.
	time.Sleep(time.Second)

	renderer := display.New(&oled, unit)
	ctl := signal.NewController(
		unit,
		sample.New(rangefinder.New(machine.I2C0, unit)),
		siding.New(PIN_SIDING, unit),
		renderer,
		lamp,
	)

	lastState := signal.Unavailable
	lastClosed := false
	reported := false

	for {
		st, closed, err := ctl.Cycle()

		if !reported || st != lastState || closed != lastClosed {
			feet := rangefinder.NoReading
			if _, f, ok := renderer.LastDrawn(); ok {
				feet = f
			}
			printStatus(start, feet, st, closed)
			lastState = st
			lastClosed = closed
			reported = true
		}

		if err != nil {
			time.Sleep(signal.DefaultRetryDelay)
		} else {
			time.Sleep(signal.DefaultInterval)
		}
	}
}

// printStatus emits one diagnostic record: "millis,feet,state,siding".
func printStatus(start time.Time, feet int, st signal.State, closed bool) {
	print(time.Since(start).Milliseconds())
	print(",")
	print(feet)
	print(",")
	print(st.String())
	print(",")
	if closed {
		println("closed")
	} else {
		println("open")
	}
}
