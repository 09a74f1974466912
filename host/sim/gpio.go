package sim

import (
	"fmt"
	"sync"

	"digitmatrix/config"
	"digitmatrix/core"
)

type pinMode uint8

const (
	modeInput pinMode = iota + 1
	modeOutput
)

type virtualPin struct {
	mode    pinMode
	level   bool
	handler func()
	edges   uint32
}

// VirtualGPIO is an in-memory core.GPIODriver. Input pins idle high
// (pulled up) and Press produces a falling edge.
type VirtualGPIO struct {
	mu   sync.Mutex
	pins map[core.GPIOPin]*virtualPin
}

// NewVirtualGPIO creates a driver with no pins configured
func NewVirtualGPIO() *VirtualGPIO {
	return &VirtualGPIO{pins: make(map[core.GPIOPin]*virtualPin)}
}

func (g *VirtualGPIO) configure(pin core.GPIOPin, mode pinMode) (*virtualPin, error) {
	if pin > config.MaxPin {
		return nil, fmt.Errorf("gpio: pin %d out of range", pin)
	}
	p, ok := g.pins[pin]
	if ok && p.mode != mode {
		return nil, fmt.Errorf("gpio: pin %d already configured in another mode", pin)
	}
	if !ok {
		p = &virtualPin{mode: mode}
		g.pins[pin] = p
	}
	return p, nil
}

func (g *VirtualGPIO) ConfigureOutput(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, err := g.configure(pin, modeOutput)
	return err
}

func (g *VirtualGPIO) ConfigureInputPullUp(pin core.GPIOPin) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, err := g.configure(pin, modeInput)
	if err != nil {
		return err
	}
	p.level = true
	return nil
}

func (g *VirtualGPIO) SetPin(pin core.GPIOPin, value bool) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pins[pin]
	if !ok || p.mode != modeOutput {
		return fmt.Errorf("gpio: pin %d: not in output mode", pin)
	}
	p.level = value
	return nil
}

func (g *VirtualGPIO) GetPin(pin core.GPIOPin) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pins[pin]
	if !ok {
		return false, fmt.Errorf("gpio: pin %d: not configured", pin)
	}
	return p.level, nil
}

func (g *VirtualGPIO) SetFallingEdgeInterrupt(pin core.GPIOPin, handler func()) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	p, ok := g.pins[pin]
	if !ok || p.mode != modeInput {
		return fmt.Errorf("gpio: pin %d: interrupt needs an input", pin)
	}
	p.handler = handler
	return nil
}

// Press pulls an input low and releases it. The edge handler runs on the
// caller's goroutine without the driver lock held, as an interrupt would.
func (g *VirtualGPIO) Press(pin core.GPIOPin) error {
	g.mu.Lock()
	p, ok := g.pins[pin]
	if !ok || p.mode != modeInput {
		g.mu.Unlock()
		return fmt.Errorf("gpio: pin %d: not an input", pin)
	}
	p.level = false
	p.edges++
	handler := p.handler
	g.mu.Unlock()

	if handler != nil {
		handler()
	}

	g.mu.Lock()
	p.level = true
	g.mu.Unlock()
	return nil
}

// Edges returns how many falling edges a pin has seen
func (g *VirtualGPIO) Edges(pin core.GPIOPin) uint32 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if p, ok := g.pins[pin]; ok {
		return p.edges
	}
	return 0
}
