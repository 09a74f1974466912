//go:build !tinygo

package core

// State stands in for interrupt.State off the microcontroller
type State uintptr

// Host builds (tests and the simulator) have no interrupts to mask; the
// simulator delivers edges on the same goroutine that runs the loop.
func disableInterrupts() State { return 0 }
func restoreInterrupts(state State) {}
