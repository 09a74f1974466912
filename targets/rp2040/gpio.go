//go:build rp2040

package main

import (
	"errors"
	"machine"

	"digitmatrix/core"
)

var (
	errPinInvalid  = errors.New("gpio: pin out of range")
	errPinMode     = errors.New("gpio: pin already configured in another mode")
	errPinNotInput = errors.New("gpio: interrupt on a pin that is not an input")
)

type pinMode uint8

const (
	modeOutput pinMode = iota + 1
	modeInputPullUp
)

type rpPin struct {
	pin  machine.Pin
	mode pinMode
}

// RPGPIODriver implements the GPIODriver interface for RP2040
type RPGPIODriver struct {
	// Track configured pins to prevent conflicts
	configuredPins map[core.GPIOPin]rpPin
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		configuredPins: make(map[core.GPIOPin]rpPin),
	}
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	return d.configure(pin, modeOutput, machine.PinConfig{Mode: machine.PinOutput})
}

// ConfigureInputPullUp configures a pin as an input with the internal pull-up
func (d *RPGPIODriver) ConfigureInputPullUp(pin core.GPIOPin) error {
	return d.configure(pin, modeInputPullUp, machine.PinConfig{Mode: machine.PinInputPullup})
}

func (d *RPGPIODriver) configure(pin core.GPIOPin, mode pinMode, cfg machine.PinConfig) error {
	if existing, exists := d.configuredPins[pin]; exists {
		if existing.mode != mode {
			return errPinMode
		}
		// Already configured, this is OK
		return nil
	}
	if pin > 29 {
		return errPinInvalid
	}

	// RP2040 pins map directly to GPIO numbers
	machinePin := machine.Pin(pin)
	machinePin.Configure(cfg)
	d.configuredPins[pin] = rpPin{pin: machinePin, mode: mode}
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, exists := d.configuredPins[pin]
	if !exists {
		// Pin isn't configured - configure it first
		if err := d.ConfigureOutput(pin); err != nil {
			return err
		}
		p = d.configuredPins[pin]
	}

	p.pin.Set(value)
	return nil
}

// GetPin reads the current pin state
func (d *RPGPIODriver) GetPin(pin core.GPIOPin) (bool, error) {
	p, exists := d.configuredPins[pin]
	if !exists {
		// Pin not configured
		return false, nil
	}

	return p.pin.Get(), nil
}

// SetFallingEdgeInterrupt registers handler for high-to-low edges. The
// callback runs in the GPIO interrupt: the handler must not block.
func (d *RPGPIODriver) SetFallingEdgeInterrupt(pin core.GPIOPin, handler func()) error {
	p, exists := d.configuredPins[pin]
	if !exists || p.mode != modeInputPullUp {
		return errPinNotInput
	}

	return p.pin.SetInterrupt(machine.PinFalling, func(machine.Pin) {
		handler()
	})
}
