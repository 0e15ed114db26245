// Package config holds configuration for the host-side tools (the serial
// monitor and the simulator). The signal device itself is configured
// entirely by compile-time constants and never reads a file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the host tool configuration.
type Config struct {
	Serial SerialConfig `yaml:"serial"`
	Sim    SimConfig    `yaml:"sim"`
}

// SerialConfig selects the port the firmware's diagnostic log arrives on.
type SerialConfig struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`
}

// SimConfig drives the simulator's scripted scenario.
type SimConfig struct {
	Unit     int           `yaml:"unit"`     // which sensor answers the probe (1 or 2)
	Interval time.Duration `yaml:"interval"` // pacing between simulated cycles
	Cycles   int           `yaml:"cycles"`   // how many cycles to run
	Profile  []int         `yaml:"profile"`  // raw distances in mm, one per cycle, last repeats
	CloseAt  int           `yaml:"close_at"` // cycle at which the siding closes (0 = never)
	OpenAt   int           `yaml:"open_at"`  // cycle at which it reopens
	FailAt   int           `yaml:"fail_at"`  // cycle with a dead sensor link (0 = never)
}

// Default returns a default configuration with sensible values.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port: "/dev/ttyACM0",
			Baud: 115200,
		},
		Sim: SimConfig{
			Unit:     1,
			Interval: 100 * time.Millisecond,
			Cycles:   30,
			Profile:  []int{1000, 500, 250, 150, 100, 80, 60, 40, 20},
			CloseAt:  0,
			OpenAt:   0,
			FailAt:   0,
		},
	}
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults are returned.
func Load(filename string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ensureDefaults()
	return cfg, nil
}

// Save saves the configuration to a YAML file.
func (c *Config) Save(filename string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ensureDefaults fills required fields that the file left empty.
func (c *Config) ensureDefaults() {
	def := Default()

	if c.Serial.Port == "" {
		c.Serial.Port = def.Serial.Port
	}
	if c.Serial.Baud == 0 {
		c.Serial.Baud = def.Serial.Baud
	}
	if c.Sim.Unit != 1 && c.Sim.Unit != 2 {
		c.Sim.Unit = def.Sim.Unit
	}
	if c.Sim.Interval <= 0 {
		c.Sim.Interval = def.Sim.Interval
	}
	if c.Sim.Cycles <= 0 {
		c.Sim.Cycles = def.Sim.Cycles
	}
	if len(c.Sim.Profile) == 0 {
		c.Sim.Profile = def.Sim.Profile
	}
}
