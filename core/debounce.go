package core

// DebounceWindowMS is the minimum spacing between two accepted edges on the
// same button.
const DebounceWindowMS = 200

// gateSlot is the per-channel debounce record.
// armed is false until the first edge is accepted, so the first press after
// boot always passes no matter what the millisecond clock reads.
type gateSlot struct {
	last  uint32 // last accepted time in ms
	armed bool
}

// DebounceGate accepts or rejects raw edge events per channel.
//
// The gate is owned by the interrupt handler: nothing else reads or writes it
// while interrupts are enabled, so it needs no synchronization.
type DebounceGate struct {
	window uint32
	slots  [numInputChannels]gateSlot
}

// NewDebounceGate creates a gate with the given window in milliseconds
func NewDebounceGate(windowMS uint32) *DebounceGate {
	return &DebounceGate{window: windowMS}
}

// TryAccept reports whether an edge on ch at nowMS is outside the debounce
// window of the last accepted edge, recording nowMS when it is.
// The millisecond clock is a wrapping 32-bit counter; the unsigned
// subtraction stays correct across the wrap.
func (g *DebounceGate) TryAccept(ch InputChannel, nowMS uint32) bool {
	if ch >= numInputChannels {
		return false
	}

	slot := &g.slots[ch]
	if slot.armed && nowMS-slot.last < g.window {
		return false
	}

	slot.last = nowMS
	slot.armed = true
	return true
}

// LastAccepted returns the time of the last accepted edge on ch and whether
// any edge has been accepted yet
func (g *DebounceGate) LastAccepted(ch InputChannel) (uint32, bool) {
	if ch >= numInputChannels {
		return 0, false
	}
	slot := g.slots[ch]
	return slot.last, slot.armed
}
