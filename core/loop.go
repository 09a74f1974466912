package core

// Loop is the cooperative main loop: it never blocks and only polls.
type Loop struct {
	state  *InputState
	events *EventRing
	mapper *Mapper
	blink  *Blinker

	Renders uint32 // frames written since Start
}

// NewLoop wires the main-loop side of the shared state
func NewLoop(state *InputState, events *EventRing, mapper *Mapper, blink *Blinker) *Loop {
	return &Loop{
		state:  state,
		events: events,
		mapper: mapper,
		blink:  blink,
	}
}

// Start arms the blink timer and queues the power-on frame so the matrix
// shows the initial digit before any button is pressed
func (l *Loop) Start() error {
	if l.blink != nil {
		if err := l.blink.Start(GetTime()); err != nil {
			return err
		}
	}
	l.state.RequestRefresh()
	return nil
}

// Poll runs one main-loop iteration at the current system time.
// The target updates the system time before each call.
func (l *Loop) Poll() {
	if value, ok := l.state.TakeRefresh(); ok {
		if IsDebugEnabled() {
			DebugPrintln("[RENDER] value=" + itoa(int(value)))
		}
		l.mapper.Render(value)
		l.Renders++
	}

	// The blink timer runs every iteration whether or not a frame was drawn
	ProcessTimers()

	DrainEvents(l.events)
}
