package core

// BlinkIntervalMS is the time between status LED toggles (5 Hz blink)
const BlinkIntervalMS = 100

// Blinker toggles the status indicator on a fixed interval.
// It is owned by the main loop and driven from ProcessTimers; it never looks
// at the counter or the dirty flag.
type Blinker struct {
	Pin        GPIOPin
	Interval   uint32 // ticks between toggles
	On         bool   // current indicator level
	LastToggle uint32 // time of the last toggle in ticks
	Toggles    uint32

	timer Timer
}

// NewBlinker creates a blinker for pin with an interval in ticks, clamped to
// MaxTimerMS
func NewBlinker(pin GPIOPin, interval uint32) *Blinker {
	if interval == 0 {
		interval = 1
	}
	if limit := TimerFromMS(MaxTimerMS); interval > limit {
		interval = limit
	}
	return &Blinker{
		Pin:      pin,
		Interval: interval,
	}
}

// Start configures the pin, drives it low and schedules the first toggle
// one interval after now
func (b *Blinker) Start(now uint32) error {
	gpio := MustGPIO()
	if err := gpio.ConfigureOutput(b.Pin); err != nil {
		return err
	}
	if err := gpio.SetPin(b.Pin, false); err != nil {
		return err
	}

	b.On = false
	b.LastToggle = now
	b.timer.WakeTime = now + b.Interval
	b.timer.Handler = b.toggleEvent
	ScheduleTimer(&b.timer)
	return nil
}

// Stop removes the blinker from the schedule
func (b *Blinker) Stop() {
	CancelTimer(&b.timer)
}

// toggleEvent flips the indicator and reschedules one interval from the
// actual toggle time
func (b *Blinker) toggleEvent(t *Timer) uint8 {
	now := GetTime()
	b.On = !b.On
	if err := MustGPIO().SetPin(b.Pin, b.On); err != nil {
		DebugPrintln("[BLINK] error " + err.Error())
	}
	b.LastToggle = now
	b.Toggles++

	DebugPrintln("[BLINK] state=" + btoa(b.On))

	t.WakeTime = now + b.Interval
	return SF_RESCHEDULE
}
