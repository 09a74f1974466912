package core

// The core talks to hardware through three collaborators that the target
// registers at startup: GPIO, the LED chain and the reset call.

// GPIOPin identifies a hardware GPIO pin number
type GPIOPin uint32

// GPIODriver covers the pin operations the board needs: pulled-up button
// inputs with edge interrupts, and the status LED output.
type GPIODriver interface {
	// ConfigureOutput configures a pin as a digital output
	ConfigureOutput(pin GPIOPin) error

	// ConfigureInputPullUp configures a pin as a digital input with pull-up resistor
	ConfigureInputPullUp(pin GPIOPin) error

	// SetPin sets the pin to high (true) or low (false)
	SetPin(pin GPIOPin, value bool) error

	// GetPin reads the current pin state
	GetPin(pin GPIOPin) (bool, error)

	// SetFallingEdgeInterrupt runs handler in interrupt context on every
	// high-to-low transition of an input pin
	SetFallingEdgeInterrupt(pin GPIOPin, handler func()) error
}

// PixelDriver shifts pixels out to the LED matrix
type PixelDriver interface {
	// EmitPixel sends one pixel in GRB order (see Color.GRB).
	// Calls for one frame are made back to back, first cell first.
	EmitPixel(grb uint32)
}

var (
	gpioDriver         GPIODriver
	pixelDriver        PixelDriver
	globalResetHandler func()
)

// SetGPIODriver registers the target's pin driver
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}

// SetPixelDriver registers the target's matrix backend
func SetPixelDriver(d PixelDriver) {
	pixelDriver = d
}

// MustPixels returns the configured driver or panics if missing.
func MustPixels() PixelDriver {
	if pixelDriver == nil {
		panic("pixel driver not configured")
	}
	return pixelDriver
}

// SetResetHandler sets the platform-specific reset handler.
// On the RP2040 this reboots into the USB bootloader and never returns.
func SetResetHandler(handler func()) {
	globalResetHandler = handler
}

// TriggerReset writes a best-effort diagnostic line and invokes the reset
// handler. It is a no-op when no handler is registered.
func TriggerReset() {
	DebugPrintln("[RESET] rebooting into bootloader uptime_ms=" + utoa(TimerToMS(GetUptime())))
	if globalResetHandler != nil {
		globalResetHandler()
	}
}
