package core

import (
	"errors"
	"testing"
)

// mockGPIODriver is a test implementation of GPIODriver
type mockGPIODriver struct {
	outputs    map[GPIOPin]bool
	inputs     map[GPIOPin]bool
	levels     map[GPIOPin]bool
	handlers   map[GPIOPin]func()
	writes     map[GPIOPin]int
	failConfig GPIOPin
	failSet    GPIOPin
}

func newMockGPIODriver() *mockGPIODriver {
	return &mockGPIODriver{
		outputs:    make(map[GPIOPin]bool),
		inputs:     make(map[GPIOPin]bool),
		levels:     make(map[GPIOPin]bool),
		handlers:   make(map[GPIOPin]func()),
		writes:     make(map[GPIOPin]int),
		failConfig: 0xFFFF,
		failSet:    0xFFFF,
	}
}

var errMockConfig = errors.New("mock: configure failed")

func (m *mockGPIODriver) ConfigureOutput(pin GPIOPin) error {
	if pin == m.failConfig {
		return errMockConfig
	}
	m.outputs[pin] = true
	return nil
}

func (m *mockGPIODriver) ConfigureInputPullUp(pin GPIOPin) error {
	if pin == m.failConfig {
		return errMockConfig
	}
	m.inputs[pin] = true
	m.levels[pin] = true
	return nil
}

func (m *mockGPIODriver) SetPin(pin GPIOPin, value bool) error {
	if pin == m.failSet {
		return errMockConfig
	}
	m.levels[pin] = value
	m.writes[pin]++
	return nil
}

func (m *mockGPIODriver) GetPin(pin GPIOPin) (bool, error) {
	return m.levels[pin], nil
}

func (m *mockGPIODriver) SetFallingEdgeInterrupt(pin GPIOPin, handler func()) error {
	m.handlers[pin] = handler
	return nil
}

// fall simulates a falling edge on pin
func (m *mockGPIODriver) fall(pin GPIOPin) {
	if h := m.handlers[pin]; h != nil {
		h()
	}
}

// recordingPixels captures every emitted pixel
type recordingPixels struct {
	pixels []uint32
}

func (r *recordingPixels) EmitPixel(grb uint32) {
	r.pixels = append(r.pixels, grb)
}

func (r *recordingPixels) frame(n int) []uint32 {
	return r.pixels[n*CellCount : (n+1)*CellCount]
}

// setupCore installs fresh mock drivers and clears timer state
func setupCore(t *testing.T) (*mockGPIODriver, *recordingPixels) {
	t.Helper()

	gpio := newMockGPIODriver()
	pixels := &recordingPixels{}
	SetGPIODriver(gpio)
	SetPixelDriver(pixels)

	timerList = nil
	currentTime = 0
	SetTime(0)

	t.Cleanup(func() {
		SetGPIODriver(nil)
		SetPixelDriver(nil)
		SetResetHandler(nil)
		SetDebugEnabled(false)
		SetDebugWriter(func(string) {})
		timerList = nil
	})
	return gpio, pixels
}

// captureDebug enables debug output and collects the lines
func captureDebug(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	return &lines
}
