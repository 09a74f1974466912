package monitor

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

const session = `[RENDER] value=0
[BLINK] state=1
[INPUT] increment value=1 clock=500
[RENDER] value=1
[BLINK] state=0
[INPUT] decrement value=0 clock=900
[INPUT] decrement value=9 clock=1200
[DEBUG] dropped=2
[RENDER] value=9
[RENDER] value=bad
[RESET] rebooting into bootloader
`

func TestScanSession(t *testing.T) {
	var stats Stats
	err := Scan(context.Background(), strings.NewReader(session), func(ev Event, err error) {
		if err != nil {
			stats.Malformed++
			return
		}
		stats.Add(ev)
	})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	if stats.Increments != 1 || stats.Decrements != 2 {
		t.Errorf("inc/dec = %d/%d, want 1/2", stats.Increments, stats.Decrements)
	}
	if stats.Counts[KindRender] != 3 {
		t.Errorf("renders = %d, want 3", stats.Counts[KindRender])
	}
	if stats.Counts[KindBlink] != 2 || stats.Counts[KindReset] != 1 {
		t.Errorf("blinks/resets = %d/%d", stats.Counts[KindBlink], stats.Counts[KindReset])
	}
	if stats.Dropped != 2 || stats.Malformed != 1 {
		t.Errorf("dropped/malformed = %d/%d", stats.Dropped, stats.Malformed)
	}
	if !stats.HaveValue || stats.LastValue != 9 {
		t.Errorf("last value = %d (%v), want 9", stats.LastValue, stats.HaveValue)
	}
	if stats.LastClock != 1200 {
		t.Errorf("last clock = %d, want 1200", stats.LastClock)
	}

	var buf bytes.Buffer
	stats.Write(&buf)
	for _, want := range []string{"increments: 1", "decrements: 2", "dropped:    2", "last value: 9"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("summary missing %q:\n%s", want, buf.String())
		}
	}
}

func TestScanCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	calls := 0
	err := Scan(ctx, strings.NewReader(session), func(Event, error) { calls++ })
	if err != context.Canceled {
		t.Errorf("Scan error = %v, want context.Canceled", err)
	}
	if calls != 0 {
		t.Errorf("fn called %d times after cancel", calls)
	}
}

// pipePort adapts an io.Pipe to serial.Port
type pipePort struct {
	*io.PipeReader
	w *io.PipeWriter
}

func (p *pipePort) Write(b []byte) (int, error) { return p.w.Write(b) }
func (p *pipePort) Flush() error                { return nil }
func (p *pipePort) Close() error {
	p.w.Close()
	return p.PipeReader.Close()
}

func TestMonitorRunStopsOnCancel(t *testing.T) {
	r, w := io.Pipe()
	m := NewMonitor()
	m.Attach(&pipePort{PipeReader: r, w: w})

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan Event, 4)
	done := make(chan error, 1)
	go func() {
		done <- m.Run(ctx, func(ev Event, err error) {
			if err == nil {
				got <- ev
			}
		})
	}()

	go w.Write([]byte("[RENDER] value=5\n"))
	select {
	case ev := <-got:
		if ev.Kind != KindRender || ev.Value != 5 {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v after cancel", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if m.IsConnected() {
		t.Error("monitor still connected after cancel")
	}
}

func TestMonitorRunNotConnected(t *testing.T) {
	if err := NewMonitor().Run(context.Background(), func(Event, error) {}); err == nil {
		t.Error("Run without a port should fail")
	}
}
