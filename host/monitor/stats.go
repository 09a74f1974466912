package monitor

import (
	"fmt"
	"io"
)

// Stats accumulates a session summary
type Stats struct {
	Counts     [KindDropped + 1]int
	Increments int
	Decrements int
	Dropped    int
	Malformed  int
	LastValue  int
	HaveValue  bool
	LastClock  uint32
}

// Add folds one event into the summary
func (s *Stats) Add(ev Event) {
	s.Counts[ev.Kind]++
	switch ev.Kind {
	case KindInput:
		if ev.Channel == "increment" {
			s.Increments++
		} else {
			s.Decrements++
		}
		s.LastValue, s.HaveValue = ev.Value, true
		s.LastClock = ev.Clock
	case KindRender:
		s.LastValue, s.HaveValue = ev.Value, true
	case KindDropped:
		s.Dropped += ev.Value
	}
}

// Write prints the summary
func (s *Stats) Write(w io.Writer) {
	fmt.Fprintln(w, "Session summary:")
	fmt.Fprintf(w, "  increments: %d\n", s.Increments)
	fmt.Fprintf(w, "  decrements: %d\n", s.Decrements)
	fmt.Fprintf(w, "  renders:    %d\n", s.Counts[KindRender])
	fmt.Fprintf(w, "  blinks:     %d\n", s.Counts[KindBlink])
	fmt.Fprintf(w, "  resets:     %d\n", s.Counts[KindReset])
	if s.Dropped > 0 {
		fmt.Fprintf(w, "  dropped:    %d\n", s.Dropped)
	}
	if s.Malformed > 0 {
		fmt.Fprintf(w, "  malformed:  %d\n", s.Malformed)
	}
	if s.HaveValue {
		fmt.Fprintf(w, "  last value: %d\n", s.LastValue)
	}
}
