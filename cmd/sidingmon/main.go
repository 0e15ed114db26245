// sidingmon tails the siding signal's diagnostic log over serial and prints
// timestamped status records. Purely an observer; the device runs the same
// with or without it.
package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/madnordski/SidingSignal/pkg/config"
	"github.com/madnordski/SidingSignal/pkg/diag"
)

func main() {
	var (
		portFlag   = flag.String("p", "", "Serial port override (e.g., COM3 or /dev/ttyACM0)")
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *portFlag != "" {
		cfg.Serial.Port = *portFlag
	}

	dev := diag.New(cfg.Serial.Port, cfg.Serial.Baud, 0)
	if err := dev.Connect(); err != nil {
		log.Fatalf("Failed to open %s: %v", cfg.Serial.Port, err)
	}
	defer dev.Close()

	log.Printf("listening on %s at %d baud", cfg.Serial.Port, cfg.Serial.Baud)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case st, ok := <-dev.Statuses():
			if !ok {
				return
			}
			siding := "open"
			if st.Closed {
				siding = "closed"
			}
			log.Printf("up %-12s state=%-11s feet=%-4d siding=%s",
				st.Uptime.Round(time.Millisecond), st.State, st.Feet, siding)
		case <-interrupt:
			log.Println("interrupted")
			return
		}
	}
}
