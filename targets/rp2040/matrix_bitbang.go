//go:build rp2040

package main

import (
	"machine"

	"tinygo.org/x/drivers/ws2812"
)

// BitbangMatrix drives the WS2812 chain with the tinygo drivers bit-banging
// implementation. It leaves both PIO blocks free at the cost of CPU time
// with interrupts masked for each byte.
type BitbangMatrix struct {
	dev ws2812.Device
	pin machine.Pin
}

// NewBitbangMatrix creates the backend; Init must be called before use
func NewBitbangMatrix(pin machine.Pin) *BitbangMatrix {
	return &BitbangMatrix{pin: pin}
}

// Init configures the data pin and holds it low
func (m *BitbangMatrix) Init() error {
	m.pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	m.pin.Low()
	m.dev = ws2812.New(m.pin)
	return nil
}

// EmitPixel writes one GRB pixel, green byte first
func (m *BitbangMatrix) EmitPixel(grb uint32) {
	m.dev.WriteByte(byte(grb >> 16))
	m.dev.WriteByte(byte(grb >> 8))
	m.dev.WriteByte(byte(grb))
}
