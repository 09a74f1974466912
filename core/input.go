package core

// InputChannel identifies one of the three push buttons.
type InputChannel uint8

const (
	IncrementButton InputChannel = iota // button A
	DecrementButton                     // button B
	ResetButton                         // joystick push

	numInputChannels
)

// String returns the name used in diagnostic lines
func (c InputChannel) String() string {
	switch c {
	case IncrementButton:
		return "increment"
	case DecrementButton:
		return "decrement"
	case ResetButton:
		return "reset"
	default:
		return "unknown"
	}
}

// InputBinding ties a hardware pin to the channel its falling edge reports.
type InputBinding struct {
	Pin     GPIOPin
	Channel InputChannel
}

// BindInputs configures every binding as a pulled-up input and routes its
// falling-edge interrupt into the dispatcher. nowMS is sampled inside the
// interrupt, so it must be safe to call from interrupt context.
func BindInputs(d *Dispatcher, bindings []InputBinding, nowMS func() uint32) error {
	gpio := MustGPIO()
	for _, b := range bindings {
		if err := gpio.ConfigureInputPullUp(b.Pin); err != nil {
			return err
		}

		ch := b.Channel
		if err := gpio.SetFallingEdgeInterrupt(b.Pin, func() {
			d.HandleEdge(ch, nowMS())
		}); err != nil {
			return err
		}
	}
	return nil
}
