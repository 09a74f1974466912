// Package config holds the board wiring and behaviour settings shared by the
// firmware and the host tools.
package config

import (
	"encoding/json"
	"errors"

	"digitmatrix/core"
)

// Matrix backends
const (
	BackendPIO     = "pio"     // WS2812 program on a PIO state machine
	BackendBitbang = "bitbang" // tinygo drivers ws2812 bit-banging
)

// MaxPin is the highest GPIO number on the RP2040
const MaxPin = 29

// Config describes one board
type Config struct {
	IncrementPin uint8 `json:"increment_pin"` // button A
	DecrementPin uint8 `json:"decrement_pin"` // button B
	ResetPin     uint8 `json:"reset_pin"`     // joystick push
	StatusPin    uint8 `json:"status_pin"`    // red LED
	MatrixPin    uint8 `json:"matrix_pin"`    // WS2812 data in

	MatrixBackend string `json:"matrix_backend"`

	DebounceMS      uint32 `json:"debounce_ms"`
	BlinkIntervalMS uint32 `json:"blink_interval_ms"`

	EvenColor  core.Color `json:"even_color"`
	OddColor   core.Color `json:"odd_color"`
	Brightness uint8      `json:"brightness"` // 0 blanks the matrix; omitted keeps 255

	Debug bool `json:"debug"`
}

var (
	ErrPinRange     = errors.New("config: pin out of range")
	ErrPinConflict  = errors.New("config: pin assigned twice")
	ErrBackend      = errors.New("config: unknown matrix backend")
	ErrDebounceZero = errors.New("config: debounce_ms must be positive")
	ErrBlinkZero    = errors.New("config: blink_interval_ms must be positive")
	ErrBlinkRange   = errors.New("config: blink_interval_ms too long")
)

// Default returns the BitDogLab wiring: buttons on GPIO5/6, joystick push on
// GPIO22, red LED on GPIO13 and the 5x5 matrix on GPIO7
func Default() *Config {
	return &Config{
		IncrementPin:    5,
		DecrementPin:    6,
		ResetPin:        22,
		StatusPin:       13,
		MatrixPin:       7,
		MatrixBackend:   BackendPIO,
		DebounceMS:      core.DebounceWindowMS,
		BlinkIntervalMS: core.BlinkIntervalMS,
		EvenColor:       core.ColorEven,
		OddColor:        core.ColorOdd,
		Brightness:      255,
		Debug:           true,
	}
}

// LoadConfig parses a JSON configuration. Fields missing from the document
// keep their Default values.
func LoadConfig(jsonData []byte) (*Config, error) {
	config := Default()

	err := json.Unmarshal(jsonData, config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyDefaults fills values that were explicitly zeroed but have no
// meaningful zero
func applyDefaults(config *Config) {
	if config.MatrixBackend == "" {
		config.MatrixBackend = BackendPIO
	}
}

// Validate checks pin ranges, pin uniqueness and timing values
func (c *Config) Validate() error {
	pins := []uint8{c.IncrementPin, c.DecrementPin, c.ResetPin, c.StatusPin, c.MatrixPin}
	seen := make(map[uint8]bool, len(pins))
	for _, p := range pins {
		if p > MaxPin {
			return ErrPinRange
		}
		if seen[p] {
			return ErrPinConflict
		}
		seen[p] = true
	}

	switch c.MatrixBackend {
	case BackendPIO, BackendBitbang:
	default:
		return ErrBackend
	}

	if c.DebounceMS == 0 {
		return ErrDebounceZero
	}
	if c.BlinkIntervalMS == 0 {
		return ErrBlinkZero
	}
	if c.BlinkIntervalMS > core.MaxTimerMS {
		return ErrBlinkRange
	}
	return nil
}

// Bindings returns the button wiring in the form core.BindInputs expects
func (c *Config) Bindings() []core.InputBinding {
	return []core.InputBinding{
		{Pin: core.GPIOPin(c.IncrementPin), Channel: core.IncrementButton},
		{Pin: core.GPIOPin(c.DecrementPin), Channel: core.DecrementButton},
		{Pin: core.GPIOPin(c.ResetPin), Channel: core.ResetButton},
	}
}

// Colors returns the even and odd digit colors scaled by Brightness
func (c *Config) Colors() (even, odd core.Color) {
	return c.EvenColor.Scale(c.Brightness), c.OddColor.Scale(c.Brightness)
}
