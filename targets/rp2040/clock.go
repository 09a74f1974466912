//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"

	"digitmatrix/core"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x24 // Raw timer high word (no latching)
	timerTIMERAWL = timerBase + 0x28 // Raw timer low word (no latching)
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// GetHardwareTime reads the RP2040 hardware timer
// Returns the low 32 bits of the microsecond counter
func GetHardwareTime() uint32 {
	return timerRAWL.Get()
}

// GetHardwareUptime reads the full 64-bit RP2040 hardware timer
func GetHardwareUptime() uint64 {
	// Must read high first, then low, then high again to detect rollover
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()

		// If high didn't change, we got a consistent reading
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

// HardwareMillis returns milliseconds since boot, wrapping at 32 bits.
// It reads the raw registers only, so it is safe inside a GPIO interrupt.
func HardwareMillis() uint32 {
	return uint32(GetHardwareUptime() / 1000)
}

// UpdateSystemTime updates the core timer with hardware time
// Called once per main loop iteration
func UpdateSystemTime() {
	core.SetTime(GetHardwareTime())
}
