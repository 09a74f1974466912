package core

// Dispatcher turns raw button edges into counter transitions.
// HandleEdge runs in interrupt context: it never blocks, never allocates and
// never formats text.
type Dispatcher struct {
	state  *InputState
	events *EventRing
}

// NewDispatcher creates a dispatcher over the shared state. events may be nil
// when no diagnostics are wanted.
func NewDispatcher(state *InputState, events *EventRing) *Dispatcher {
	return &Dispatcher{
		state:  state,
		events: events,
	}
}

// HandleEdge processes one falling edge on ch sampled at nowMS.
//
// Increment and decrement edges go through the debounce gate; an accepted
// edge stores the new counter value and then sets the dirty flag. The reset
// edge skips the gate and hands control to the reset handler, which does not
// return on hardware.
func (d *Dispatcher) HandleEdge(ch InputChannel, nowMS uint32) {
	switch ch {
	case IncrementButton:
		if !d.state.Gate.TryAccept(ch, nowMS) {
			return
		}
		v := d.state.Counter.Increment()
		d.state.markDirty()
		d.record(EvtIncrement, v, nowMS)

	case DecrementButton:
		if !d.state.Gate.TryAccept(ch, nowMS) {
			return
		}
		v := d.state.Counter.Decrement()
		d.state.markDirty()
		d.record(EvtDecrement, v, nowMS)

	case ResetButton:
		TriggerReset()
	}
}

func (d *Dispatcher) record(kind uint8, value uint8, nowMS uint32) {
	if d.events == nil {
		return
	}
	d.events.Push(Event{Kind: kind, Value: value, Clock: nowMS})
}
