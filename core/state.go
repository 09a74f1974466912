package core

import "sync/atomic"

// InputState is everything shared between the GPIO interrupt handler and the
// main loop. One instance is created at startup and passed by pointer to both
// sides.
//
// Writer per field:
//   - Gate: interrupt handler only (read and write)
//   - Counter: written by the interrupt handler, read by the main loop
//   - dirty: set by the interrupt handler, cleared by the main loop
//
// No locks are taken. The handler stores the counter before it sets dirty, and
// the main loop swaps dirty to false before it loads the counter, so a render
// always shows a value at least as new as the flag it consumed.
type InputState struct {
	Counter Counter
	Gate    *DebounceGate

	dirty uint32 // atomic bool
}

// NewInputState creates the shared state with the counter at 0 and no
// refresh pending
func NewInputState(debounceWindowMS uint32) *InputState {
	return &InputState{
		Gate: NewDebounceGate(debounceWindowMS),
	}
}

// Dirty reports whether a display refresh is pending
func (s *InputState) Dirty() bool {
	return atomic.LoadUint32(&s.dirty) != 0
}

// markDirty is called by the interrupt handler after a counter store
func (s *InputState) markDirty() {
	atomic.StoreUint32(&s.dirty, 1)
}

// RequestRefresh asks the main loop to render the current value without a
// counter change (used for the power-on frame)
func (s *InputState) RequestRefresh() {
	atomic.StoreUint32(&s.dirty, 1)
}

// TakeRefresh consumes a pending refresh. It returns the value to render and
// true, or false when nothing is pending. A change that lands after the swap
// sets the flag again and is picked up on the next call.
func (s *InputState) TakeRefresh() (uint8, bool) {
	if atomic.SwapUint32(&s.dirty, 0) == 0 {
		return 0, false
	}
	return s.Counter.Value(), true
}
