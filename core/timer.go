package core

import "sync/atomic"

// TimerFreq is the system tick rate: the RP2040 timer counts microseconds.
const (
	TimerFreq = 1000000
)

var (
	systemTicks uint32
	bootTime    uint32 // Time at boot for uptime calculation
)

// GetTime returns the current system time in timer ticks.
// The value wraps roughly every 71 minutes; compare times with TimerBefore.
func GetTime() uint32 {
	return getSystemTicks()
}

// SetTime sets the current system time (for testing/hardware integration)
func SetTime(ticks uint32) {
	setSystemTicks(ticks)
}

// GetUptime returns ticks elapsed since TimerInit
func GetUptime() uint32 {
	return GetTime() - bootTime
}

// MaxTimerMS is the longest delay a timer can be scheduled ahead. Wake
// times are compared on the wrapping clock, so a delay must stay under half
// its range.
const MaxTimerMS = (1<<31 - 1) / (TimerFreq / 1000)

// TimerFromMS converts milliseconds to timer ticks
func TimerFromMS(ms uint32) uint32 {
	return ms * (TimerFreq / 1000)
}

// TimerToMS converts timer ticks to milliseconds
func TimerToMS(ticks uint32) uint32 {
	return ticks / (TimerFreq / 1000)
}

// TimerBefore reports whether a is earlier than b on the wrapping clock
func TimerBefore(a, b uint32) bool {
	return int32(a-b) < 0
}

// getSystemTicks returns the current system ticks
func getSystemTicks() uint32 {
	return atomic.LoadUint32(&systemTicks)
}

// setSystemTicks sets the system ticks
func setSystemTicks(ticks uint32) {
	atomic.StoreUint32(&systemTicks, ticks)
}

// TimerInit records the boot time
func TimerInit() {
	bootTime = GetTime()
}

// ProcessTimers processes scheduled timers
func ProcessTimers() {
	currentTime = GetTime()
	TimerDispatch()
}
