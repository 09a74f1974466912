package core

import "sync/atomic"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// Event captures an input transition recorded from interrupt context
type Event struct {
	Kind  uint8  // Event type code
	Value uint8  // Counter value after the transition
	Clock uint32 // Interrupt time in ms
}

// Event type codes
const (
	EvtIncrement = 1 // accepted increment edge
	EvtDecrement = 2 // accepted decrement edge
)

const (
	EventRingSize = 32 // must be a power of two
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
// The writer must tolerate a call from interrupt context: TriggerReset
// writes its line from the reset button's handler.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// Output is best effort and must never be called from interrupt context
// except on the reset path.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// EventRing is a single-producer single-consumer queue of input events.
// The interrupt handler pushes, the main loop pops. When the ring is full new
// events are dropped and counted.
type EventRing struct {
	buf     [EventRingSize]Event
	head    uint32 // next write, producer only
	tail    uint32 // next read, consumer only
	dropped uint32
}

// NewEventRing creates an empty ring
func NewEventRing() *EventRing {
	return &EventRing{}
}

// Push appends an event. Safe to call from interrupt context.
func (r *EventRing) Push(e Event) bool {
	head := atomic.LoadUint32(&r.head)
	tail := atomic.LoadUint32(&r.tail)
	if head-tail >= EventRingSize {
		atomic.AddUint32(&r.dropped, 1)
		return false
	}
	r.buf[head&(EventRingSize-1)] = e
	atomic.StoreUint32(&r.head, head+1)
	return true
}

// Pop removes the oldest event
func (r *EventRing) Pop() (Event, bool) {
	tail := atomic.LoadUint32(&r.tail)
	head := atomic.LoadUint32(&r.head)
	if tail == head {
		return Event{}, false
	}
	e := r.buf[tail&(EventRingSize-1)]
	atomic.StoreUint32(&r.tail, tail+1)
	return e, true
}

// Len returns the number of queued events
func (r *EventRing) Len() int {
	return int(atomic.LoadUint32(&r.head) - atomic.LoadUint32(&r.tail))
}

// TakeDropped returns and clears the overflow count
func (r *EventRing) TakeDropped() uint32 {
	return atomic.SwapUint32(&r.dropped, 0)
}

// FormatEvent renders an event as a diagnostic line
func FormatEvent(e Event) string {
	var name string
	switch e.Kind {
	case EvtIncrement:
		name = IncrementButton.String()
	case EvtDecrement:
		name = DecrementButton.String()
	default:
		name = "unknown"
	}
	return "[INPUT] " + name +
		" value=" + itoa(int(e.Value)) +
		" clock=" + utoa(e.Clock)
}

// DrainEvents pops every queued event and writes it to the debug output.
// Events are consumed even when debug output is disabled.
func DrainEvents(r *EventRing) {
	if r == nil {
		return
	}
	for {
		e, ok := r.Pop()
		if !ok {
			break
		}
		if IsDebugEnabled() {
			DebugPrintln(FormatEvent(e))
		}
	}
	if n := r.TakeDropped(); n != 0 {
		DebugPrintln("[DEBUG] dropped=" + utoa(n))
	}
}
