//go:build rp2040

package main

import (
	"machine"
	"time"

	"digitmatrix/config"
	"digitmatrix/core"
)

func main() {
	cfg := config.Default()

	// Diagnostics go to the USB CDC console
	core.SetDebugWriter(func(s string) {
		println(s)
	})
	core.SetDebugEnabled(cfg.Debug)

	// Initialize clock
	UpdateSystemTime()
	core.TimerInit()

	// Initialize and register GPIO driver
	gpioDriver := NewRPGPIODriver()
	core.SetGPIODriver(gpioDriver)

	// Initialize and register the LED matrix driver
	matrix := selectMatrixBackend(cfg)
	if err := matrix.Init(); err != nil {
		fatal(cfg, "matrix init: "+err.Error())
	}
	core.SetPixelDriver(matrix)

	// The joystick button reboots into the USB bootloader for reflashing
	core.SetResetHandler(func() {
		machine.EnterBootloader()
	})

	state := core.NewInputState(cfg.DebounceMS)
	events := core.NewEventRing()
	dispatcher := core.NewDispatcher(state, events)

	even, odd := cfg.Colors()
	blink := core.NewBlinker(core.GPIOPin(cfg.StatusPin), core.TimerFromMS(cfg.BlinkIntervalMS))
	loop := core.NewLoop(state, events, core.NewMapper(even, odd), blink)
	if err := loop.Start(); err != nil {
		fatal(cfg, "loop start: "+err.Error())
	}

	// Interrupts go live last, once everything they touch exists
	if err := core.BindInputs(dispatcher, cfg.Bindings(), HardwareMillis); err != nil {
		fatal(cfg, "inputs: "+err.Error())
	}

	// Main loop: poll, never block
	for {
		UpdateSystemTime()
		loop.Poll()
	}
}

// fatal reports an init failure and flashes the status LED rapidly forever
func fatal(cfg *config.Config, msg string) {
	println("[FATAL] " + msg)
	led := machine.Pin(cfg.StatusPin)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(50 * time.Millisecond)
		led.Low()
		time.Sleep(50 * time.Millisecond)
	}
}
