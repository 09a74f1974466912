package core

import "sync/atomic"

// CounterModulus is the number of digits the counter cycles through
const CounterModulus = 10

// Counter holds the displayed digit, always in [0, CounterModulus).
//
// Only the interrupt handler writes it; the main loop only reads it. Every
// write is a single 32-bit atomic store, so a reader never sees a value
// outside the range.
type Counter struct {
	value uint32
}

// Value returns the current digit
func (c *Counter) Value() uint8 {
	return uint8(atomic.LoadUint32(&c.value))
}

// Increment advances the digit, wrapping 9 to 0, and returns the new value
func (c *Counter) Increment() uint8 {
	next := NextUp(c.Value())
	atomic.StoreUint32(&c.value, uint32(next))
	return next
}

// Decrement steps the digit back, wrapping 0 to 9, and returns the new value
func (c *Counter) Decrement() uint8 {
	next := NextDown(c.Value())
	atomic.StoreUint32(&c.value, uint32(next))
	return next
}

// NextUp is the increment transition
func NextUp(v uint8) uint8 {
	return (v%CounterModulus + 1) % CounterModulus
}

// NextDown is the decrement transition. The modulus is added before
// subtracting so the operand never goes negative.
func NextDown(v uint8) uint8 {
	return (v%CounterModulus + CounterModulus - 1) % CounterModulus
}
