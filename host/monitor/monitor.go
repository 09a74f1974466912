package monitor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"digitmatrix/host/serial"
)

// Monitor follows the diagnostic output of a connected board
type Monitor struct {
	port      serial.Port
	connected bool

	closeOnce sync.Once
}

// NewMonitor creates a monitor (not yet connected)
func NewMonitor() *Monitor {
	return &Monitor{}
}

// ConnectWithConfig opens the board's console with a custom serial config
func (m *Monitor) ConnectWithConfig(cfg *serial.Config) error {
	port, err := serial.Open(cfg)
	if err != nil {
		return fmt.Errorf("failed to open serial port: %w", err)
	}
	m.Attach(port)
	return nil
}

// Attach uses an already open port, e.g. a pipe in tests
func (m *Monitor) Attach(port serial.Port) {
	m.port = port
	m.connected = true
	m.closeOnce = sync.Once{}
}

// Close closes the console. Safe to call more than once.
func (m *Monitor) Close() error {
	var err error
	m.closeOnce.Do(func() {
		if m.port != nil {
			err = m.port.Close()
		}
		m.connected = false
	})
	return err
}

// IsConnected returns whether a console is attached
func (m *Monitor) IsConnected() bool {
	return m.connected
}

// Run reads lines until ctx is cancelled or the port closes. The port is
// closed on cancellation so a blocked read returns, and always closed on exit.
func (m *Monitor) Run(ctx context.Context, fn func(Event, error)) error {
	if !m.connected {
		return fmt.Errorf("not connected to board")
	}

	stop := context.AfterFunc(ctx, func() { m.Close() })
	defer stop()

	err := Scan(ctx, m.port, fn)
	m.Close()
	if ctx.Err() != nil {
		return nil
	}
	return err
}

// Scan parses r line by line, calling fn for every line. It returns nil at
// EOF and ctx.Err() if ctx ends first.
func Scan(ctx context.Context, r io.Reader, fn func(Event, error)) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		ev, err := ParseLine(sc.Text())
		fn(ev, err)
	}
	if err := sc.Err(); err != nil && !errors.Is(err, io.EOF) {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("monitor: read: %w", err)
	}
	return ctx.Err()
}
