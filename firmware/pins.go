//go:build tinygo

package main

import "machine"

const (
	// Sensor bus configuration
	I2C_FREQUENCY = 400000 // 400kHz fast mode, well within the sonar's rating
	PIN_SDA       = machine.D4
	PIN_SCL       = machine.D5

	// OLED (96x64 SSD1331 over SPI)
	SPI_FREQUENCY = 8000000
	PIN_OLED_RST  = machine.D2
	PIN_OLED_DC   = machine.D3
	PIN_OLED_CS   = machine.D7

	// Siding switch input, pulled up. Polarity is interpreted per unit by
	// the siding monitor, not here.
	PIN_SIDING = machine.D0

	// Indicator lamp PWM channels
	PIN_LAMP_R = machine.D1
	PIN_LAMP_G = machine.D6
	PIN_LAMP_B = machine.D9

	// Serial configuration
	// Diagnostic line format: "millis,feet,state,siding\n"
	// Example: "73412,12,yellow,open\n" = ~25 bytes, emitted only on state
	// changes. 115200 baud leaves enormous headroom.
	UART_BAUD_RATE = 115200
)
