// Package sim runs the firmware core on a desktop with virtual pins and a
// virtual LED matrix.
package sim

import (
	"fmt"
	"sync/atomic"
	"time"

	"digitmatrix/config"
	"digitmatrix/core"
)

// Machine is the board assembled from the same core parts as the firmware.
// The core drivers and timer list are process-wide, so only one Machine may
// be live at a time; Close it before creating another.
type Machine struct {
	Config *config.Config
	GPIO   *VirtualGPIO
	Pixels *FrameBuffer

	state      *core.InputState
	dispatcher *core.Dispatcher
	blink      *core.Blinker
	loop       *core.Loop
	clock      func() time.Duration
	pins       map[core.InputChannel]core.GPIOPin

	resetRequested atomic.Bool
}

// New builds and starts a machine. clock returns time since power-on; log
// receives diagnostic lines and may be nil.
func New(cfg *config.Config, clock func() time.Duration, log func(string)) (*Machine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &Machine{
		Config: cfg,
		GPIO:   NewVirtualGPIO(),
		Pixels: NewFrameBuffer(),
		clock:  clock,
		pins:   make(map[core.InputChannel]core.GPIOPin),
	}

	core.SetDebugWriter(log)
	core.SetDebugEnabled(cfg.Debug && log != nil)

	m.syncTime()
	core.TimerInit()

	core.SetGPIODriver(m.GPIO)
	core.SetPixelDriver(m.Pixels)
	core.SetResetHandler(func() {
		m.resetRequested.Store(true)
	})

	m.state = core.NewInputState(cfg.DebounceMS)
	events := core.NewEventRing()
	m.dispatcher = core.NewDispatcher(m.state, events)

	even, odd := cfg.Colors()
	m.blink = core.NewBlinker(core.GPIOPin(cfg.StatusPin), core.TimerFromMS(cfg.BlinkIntervalMS))
	m.loop = core.NewLoop(m.state, events, core.NewMapper(even, odd), m.blink)
	if err := m.loop.Start(); err != nil {
		return nil, fmt.Errorf("sim: start loop: %w", err)
	}

	bindings := cfg.Bindings()
	if err := core.BindInputs(m.dispatcher, bindings, m.nowMS); err != nil {
		m.blink.Stop()
		return nil, fmt.Errorf("sim: bind inputs: %w", err)
	}
	for _, b := range bindings {
		m.pins[b.Channel] = b.Pin
	}
	return m, nil
}

func (m *Machine) syncTime() {
	core.SetTime(uint32(m.clock().Microseconds()))
}

func (m *Machine) nowMS() uint32 {
	return uint32(m.clock().Milliseconds())
}

// Step runs one main-loop iteration at the current clock time
func (m *Machine) Step() {
	m.syncTime()
	m.loop.Poll()
}

// Press produces a falling edge on the button bound to ch
func (m *Machine) Press(ch core.InputChannel) error {
	pin, ok := m.pins[ch]
	if !ok {
		return fmt.Errorf("sim: no pin bound to %s", ch)
	}
	return m.GPIO.Press(pin)
}

// Value returns the counter
func (m *Machine) Value() uint8 {
	return m.state.Counter.Value()
}

// Renders returns how many frames the loop has drawn
func (m *Machine) Renders() uint32 {
	return m.loop.Renders
}

// StatusLED returns the indicator level
func (m *Machine) StatusLED() bool {
	on, _ := m.GPIO.GetPin(core.GPIOPin(m.Config.StatusPin))
	return on
}

// BlinkToggles returns how many times the indicator has toggled
func (m *Machine) BlinkToggles() uint32 {
	return m.blink.Toggles
}

// ResetRequested reports whether the reset button fired
func (m *Machine) ResetRequested() bool {
	return m.resetRequested.Load()
}

// Close takes the blink timer off the schedule and unregisters the drivers
func (m *Machine) Close() {
	m.blink.Stop()
	core.SetResetHandler(nil)
	core.SetGPIODriver(nil)
	core.SetPixelDriver(nil)
	core.SetDebugWriter(nil)
}
