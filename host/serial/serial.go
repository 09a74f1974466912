package serial

import (
	"errors"
	"io"
)

// Port is the board console as the host tools see it. The native
// implementation uses github.com/tarm/serial; tests use pipes.
type Port interface {
	io.ReadWriteCloser

	// Flush discards input the OS buffered before we started reading
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate (USB CDC ignores this, a UART bridge does not)
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int

	// FlushOnOpen drops whatever the board printed before the port was
	// opened, so the first line read is a whole line
	FlushOnOpen bool
}

var (
	ErrNoDevice = errors.New("serial: no device given")
	ErrBaud     = errors.New("serial: baud rate must be positive")
)

// DefaultConfig returns a configuration for the board's USB console.
// Reads block; the monitor closes the port to stop a pending read.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 0,
		FlushOnOpen: true,
	}
}

// Validate checks the config before the port is touched
func (c *Config) Validate() error {
	if c.Device == "" {
		return ErrNoDevice
	}
	if c.Baud <= 0 {
		return ErrBaud
	}
	return nil
}
