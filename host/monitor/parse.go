package monitor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Kind classifies a diagnostic line from the board
type Kind uint8

const (
	KindUnknown Kind = iota
	KindInput
	KindRender
	KindBlink
	KindReset
	KindDropped
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindRender:
		return "render"
	case KindBlink:
		return "blink"
	case KindReset:
		return "reset"
	case KindDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// ParseKind maps a filter name back to its Kind
func ParseKind(name string) (Kind, error) {
	for k := KindUnknown; k <= KindDropped; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("monitor: unknown event kind %q", name)
}

// Event is one parsed diagnostic line
type Event struct {
	Kind    Kind
	Channel string // input lines only: increment or decrement
	Value   int    // counter value for input/render, LED state for blink, count for dropped
	Clock   uint32 // board milliseconds: acceptance time for input, uptime for reset
	Raw     string
}

var ErrMalformed = errors.New("monitor: malformed line")

// ParseLine decodes one line of board output. Lines without a known tag
// come back as KindUnknown with a nil error.
func ParseLine(line string) (Event, error) {
	line = strings.TrimRight(line, "\r\n")
	ev := Event{Raw: line}

	tag, rest, ok := strings.Cut(line, " ")
	if !ok {
		tag, rest = line, ""
	}

	var err error
	switch tag {
	case "[INPUT]":
		ev.Kind = KindInput
		err = parseInput(&ev, rest)
	case "[RENDER]":
		ev.Kind = KindRender
		ev.Value, err = intField(rest, "value")
	case "[BLINK]":
		if strings.HasPrefix(rest, "error ") {
			// pin driver failure, shown as a raw line
			break
		}
		ev.Kind = KindBlink
		ev.Value, err = intField(rest, "state")
		if err == nil && ev.Value != 0 && ev.Value != 1 {
			err = fmt.Errorf("%w: blink state %d", ErrMalformed, ev.Value)
		}
	case "[RESET]":
		ev.Kind = KindReset
		if up, ferr := field(rest, "uptime_ms"); ferr == nil {
			var n uint64
			n, err = strconv.ParseUint(up, 10, 32)
			if err != nil {
				err = fmt.Errorf("%w: uptime_ms %q", ErrMalformed, up)
			}
			ev.Clock = uint32(n)
		}
	case "[DEBUG]":
		if strings.HasPrefix(rest, "dropped=") {
			ev.Kind = KindDropped
			ev.Value, err = intField(rest, "dropped")
		}
	}
	if err != nil {
		return Event{Raw: line}, err
	}
	return ev, nil
}

func parseInput(ev *Event, rest string) error {
	name, fields, ok := strings.Cut(rest, " ")
	if !ok {
		return fmt.Errorf("%w: %q", ErrMalformed, rest)
	}
	if name != "increment" && name != "decrement" {
		return fmt.Errorf("%w: input channel %q", ErrMalformed, name)
	}
	ev.Channel = name

	v, err := intField(fields, "value")
	if err != nil {
		return err
	}
	ev.Value = v

	c, err := field(fields, "clock")
	if err != nil {
		return err
	}
	clock, err := strconv.ParseUint(c, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: clock %q", ErrMalformed, c)
	}
	ev.Clock = uint32(clock)
	return nil
}

// field returns the value of key=value within space separated fields
func field(s, key string) (string, error) {
	for _, f := range strings.Fields(s) {
		k, v, ok := strings.Cut(f, "=")
		if ok && k == key {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: missing %s", ErrMalformed, key)
}

func intField(s, key string) (int, error) {
	v, err := field(s, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrMalformed, key, v)
	}
	return n, nil
}
