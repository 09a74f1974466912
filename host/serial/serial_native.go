package serial

import (
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// NativePort is a board console opened through tarm/serial
type NativePort struct {
	*serial.Port
}

// Open validates cfg and opens the console
func Open(cfg *Config) (Port, error) {
	if cfg == nil {
		return nil, fmt.Errorf("serial: config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: time.Duration(cfg.ReadTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Device, err)
	}

	p := &NativePort{Port: port}
	if cfg.FlushOnOpen {
		if err := p.Flush(); err != nil {
			p.Close()
			return nil, fmt.Errorf("serial: flush %s: %w", cfg.Device, err)
		}
	}
	return p, nil
}
