package core

import "testing"

func TestDebounceFirstEdgeAccepted(t *testing.T) {
	// The first edge passes even at boot time 0 and at times near the wrap
	for _, now := range []uint32{0, 1, 199, 0xFFFFFFFF} {
		g := NewDebounceGate(DebounceWindowMS)
		if !g.TryAccept(IncrementButton, now) {
			t.Errorf("First edge at %d was rejected", now)
		}
		if last, ok := g.LastAccepted(IncrementButton); !ok || last != now {
			t.Errorf("LastAccepted after first edge: got (%d, %v), expected (%d, true)", last, ok, now)
		}
	}
}

func TestDebounceWindow(t *testing.T) {
	testCases := []struct {
		name     string
		gap      uint32
		accepted bool
	}{
		{"same instant", 0, false},
		{"bounce 50ms", 50, false},
		{"just inside", 199, false},
		{"exactly window", 200, true},
		{"well outside", 1000, true},
	}

	for _, tc := range testCases {
		g := NewDebounceGate(DebounceWindowMS)
		start := uint32(10000)
		if !g.TryAccept(DecrementButton, start) {
			t.Fatalf("%s: first edge rejected", tc.name)
		}
		if got := g.TryAccept(DecrementButton, start+tc.gap); got != tc.accepted {
			t.Errorf("%s: expected accepted=%v, got %v", tc.name, tc.accepted, got)
		}
	}
}

func TestDebounceRejectDoesNotMoveWindow(t *testing.T) {
	g := NewDebounceGate(DebounceWindowMS)
	g.TryAccept(IncrementButton, 1000)

	// A burst of bounces must not push the window forward
	for _, now := range []uint32{1050, 1100, 1150, 1199} {
		if g.TryAccept(IncrementButton, now) {
			t.Errorf("Bounce at %d accepted", now)
		}
	}
	if last, _ := g.LastAccepted(IncrementButton); last != 1000 {
		t.Errorf("Rejected edges changed last accepted time to %d", last)
	}
	if !g.TryAccept(IncrementButton, 1200) {
		t.Error("Edge 200ms after the accepted one was rejected")
	}
}

func TestDebounceChannelsIndependent(t *testing.T) {
	g := NewDebounceGate(DebounceWindowMS)
	if !g.TryAccept(IncrementButton, 500) {
		t.Fatal("Increment edge rejected")
	}
	if !g.TryAccept(DecrementButton, 510) {
		t.Error("Decrement edge rejected by the increment channel's window")
	}
}

func TestDebounceAcrossClockWrap(t *testing.T) {
	g := NewDebounceGate(DebounceWindowMS)
	g.TryAccept(IncrementButton, 0xFFFFFF9C) // 100ms before wrap

	if g.TryAccept(IncrementButton, 50) { // 150ms later
		t.Error("Edge 150ms later across the wrap was accepted")
	}
	if !g.TryAccept(IncrementButton, 100) { // 200ms later
		t.Error("Edge 200ms later across the wrap was rejected")
	}
}

func TestDebounceUnknownChannel(t *testing.T) {
	g := NewDebounceGate(DebounceWindowMS)
	if g.TryAccept(InputChannel(42), 0) {
		t.Error("Unknown channel accepted")
	}
}
