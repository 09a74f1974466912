//go:build rp2040

package main

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// WS2812 PIO program, one output bit per loop with the data pin on side-set.
// At 10 PIO cycles per bit (T1=2, T2=5, T3=3) and an 8 MHz PIO clock each
// bit takes 1.25us (800 kHz).
//
//	.side_set 1
//	.wrap_target
//	bitloop:
//	    out x, 1       side 0 [2]
//	    jmp !x do_zero side 1 [1]
//	do_one:
//	    jmp bitloop    side 1 [4]
//	do_zero:
//	    nop            side 0 [4]
//	.wrap
var ws2812Instructions = []uint16{
	0x6221, // 0: out    x, 1            side 0 [2]
	0x1123, // 1: jmp    !x, 3           side 1 [1]
	0x1400, // 2: jmp    0               side 1 [4]
	0xa442, // 3: nop                    side 0 [4]
}

const (
	ws2812Origin       = 0 // jump targets above are absolute
	ws2812WrapTarget   = 0
	ws2812Wrap         = 3
	ws2812CyclesPerBit = 2 + 5 + 3
	ws2812Frequency    = 800000
)

// PIOMatrix drives a WS2812 chain from PIO0 state machine 0
type PIOMatrix struct {
	pio    *rp2pio.PIO
	sm     rp2pio.StateMachine
	pin    machine.Pin
	offset uint8
}

// NewPIOMatrix creates the backend; Init must be called before use
func NewPIOMatrix(pin machine.Pin) *PIOMatrix {
	pioHW := rp2pio.PIO0
	return &PIOMatrix{
		pio: pioHW,
		sm:  pioHW.StateMachine(0),
		pin: pin,
	}
}

// Init loads the program and starts the state machine
func (m *PIOMatrix) Init() error {
	// Claim the state machine first
	m.sm.TryClaim()

	offset, err := m.pio.AddProgram(ws2812Instructions, ws2812Origin)
	if err != nil {
		return err
	}
	m.offset = offset

	m.pin.Configure(machine.PinConfig{Mode: m.pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetWrap(offset+ws2812WrapTarget, offset+ws2812Wrap)
	cfg.SetSidesetParams(1, false, false)
	cfg.SetSidesetPins(m.pin)

	// Shift left, autopull after 24 bits: each FIFO word carries GRB in its top 24 bits
	cfg.SetOutShift(false, true, 24)
	cfg.SetFIFOJoin(rp2pio.FifoJoinTx)

	whole, frac, err := rp2pio.ClkDivFromFrequency(ws2812Frequency*ws2812CyclesPerBit, machine.CPUFrequency())
	if err != nil {
		return err
	}
	cfg.SetClkDivIntFrac(whole, frac)

	// Initialize state machine FIRST, then set the pin direction
	m.sm.Init(offset, cfg)
	m.sm.SetPindirsConsecutive(m.pin, 1, true)
	m.sm.SetEnabled(true)

	return nil
}

// EmitPixel queues one GRB pixel, waiting for FIFO space
func (m *PIOMatrix) EmitPixel(grb uint32) {
	for m.sm.IsTxFIFOFull() {
		// Busy wait - the FIFO drains one pixel every 30us
	}
	m.sm.TxPut(grb << 8)
}
