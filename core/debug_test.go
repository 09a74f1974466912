package core

import "testing"

func TestEventRingFIFO(t *testing.T) {
	r := NewEventRing()
	for i := 0; i < 5; i++ {
		if !r.Push(Event{Kind: EvtIncrement, Value: uint8(i), Clock: uint32(i * 10)}) {
			t.Fatalf("Push %d failed", i)
		}
	}
	if r.Len() != 5 {
		t.Errorf("Expected length 5, got %d", r.Len())
	}
	for i := 0; i < 5; i++ {
		e, ok := r.Pop()
		if !ok || e.Value != uint8(i) {
			t.Errorf("Pop %d: got %+v ok=%v", i, e, ok)
		}
	}
	if _, ok := r.Pop(); ok {
		t.Error("Pop on empty ring succeeded")
	}
}

func TestEventRingOverflowDrops(t *testing.T) {
	r := NewEventRing()
	for i := 0; i < EventRingSize+3; i++ {
		r.Push(Event{Kind: EvtDecrement, Value: uint8(i % 10)})
	}
	if r.Len() != EventRingSize {
		t.Errorf("Expected full ring of %d, got %d", EventRingSize, r.Len())
	}
	if n := r.TakeDropped(); n != 3 {
		t.Errorf("Expected 3 dropped, got %d", n)
	}
	if n := r.TakeDropped(); n != 0 {
		t.Errorf("Dropped count not cleared: %d", n)
	}
}

func TestEventRingWrapsIndices(t *testing.T) {
	r := NewEventRing()
	for round := 0; round < 3*EventRingSize; round++ {
		r.Push(Event{Kind: EvtIncrement, Clock: uint32(round)})
		e, ok := r.Pop()
		if !ok || e.Clock != uint32(round) {
			t.Fatalf("Round %d: got %+v ok=%v", round, e, ok)
		}
	}
}

func TestFormatEvent(t *testing.T) {
	testCases := []struct {
		e    Event
		want string
	}{
		{Event{Kind: EvtIncrement, Value: 3, Clock: 1234}, "[INPUT] increment value=3 clock=1234"},
		{Event{Kind: EvtDecrement, Value: 9, Clock: 0}, "[INPUT] decrement value=9 clock=0"},
		{Event{Kind: 99}, "[INPUT] unknown value=0 clock=0"},
	}
	for _, tc := range testCases {
		if got := FormatEvent(tc.e); got != tc.want {
			t.Errorf("FormatEvent(%+v): expected %q, got %q", tc.e, tc.want, got)
		}
	}
}

func TestDrainEventsReportsDrops(t *testing.T) {
	setupCore(t)
	lines := captureDebug(t)

	r := NewEventRing()
	for i := 0; i < EventRingSize+2; i++ {
		r.Push(Event{Kind: EvtIncrement})
	}
	DrainEvents(r)

	if len(*lines) != EventRingSize+1 {
		t.Fatalf("Expected %d lines, got %d", EventRingSize+1, len(*lines))
	}
	if last := (*lines)[len(*lines)-1]; last != "[DEBUG] dropped=2" {
		t.Errorf("Expected drop report, got %q", last)
	}
}

func TestDebugDisabledWritesNothing(t *testing.T) {
	setupCore(t)

	called := false
	SetDebugWriter(func(string) { called = true })
	SetDebugEnabled(false)
	DebugPrintln("hello")
	if called {
		t.Error("Writer called while debug disabled")
	}
}

func TestItoa(t *testing.T) {
	testCases := map[int]string{0: "0", 7: "7", 42: "42", -15: "-15", 2147483647: "2147483647"}
	for n, want := range testCases {
		if got := itoa(n); got != want {
			t.Errorf("itoa(%d): expected %q, got %q", n, want, got)
		}
	}
}

func TestDrainEventsConsumesWhileDisabled(t *testing.T) {
	setupCore(t)

	called := false
	SetDebugWriter(func(string) { called = true })
	SetDebugEnabled(false)

	r := NewEventRing()
	r.Push(Event{Kind: EvtIncrement, Value: 1})
	r.Push(Event{Kind: EvtDecrement, Value: 0})
	DrainEvents(r)

	if r.Len() != 0 {
		t.Errorf("Expected ring drained, %d events left", r.Len())
	}
	if called {
		t.Error("Writer called while debug disabled")
	}
}
