// Package nav holds the sidebar destinations and the selector that tracks
// which one is active.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDestination is returned when a name does not match any destination.
var ErrUnknownDestination = errors.New("unknown destination")

// Destination identifies one sidebar section.
type Destination int

const (
	Home Destination = iota
	Courses
	Calendar
	Profile
)

var destinations = [...]struct {
	name  string
	label string
	icon  string
}{
	Home:     {"home", "Home", "⌂"},
	Courses:  {"courses", "Courses", "▤"},
	Calendar: {"calendar", "Calendar", "▦"},
	Profile:  {"profile", "Profile", "◉"},
}

// Destinations returns every destination in sidebar order.
func Destinations() []Destination {
	return []Destination{Home, Courses, Calendar, Profile}
}

func (d Destination) valid() bool { return d >= 0 && int(d) < len(destinations) }

// String returns the lowercase name used in URLs, flags and JSON.
// Values outside the set print as "Destination(7)".
func (d Destination) String() string {
	if !d.valid() {
		return fmt.Sprintf("Destination(%d)", int(d))
	}
	return destinations[d].name
}

// Label is the human-readable name shown in the sidebar.
func (d Destination) Label() string {
	if !d.valid() {
		return d.String()
	}
	return destinations[d].label
}

// Icon is the glyph drawn before the label.
func (d Destination) Icon() string {
	if !d.valid() {
		return "?"
	}
	return destinations[d].icon
}

// Next returns the destination below d, wrapping to the top.
func (d Destination) Next() Destination {
	return Destination((int(d) + 1) % len(destinations))
}

// Prev returns the destination above d, wrapping to the bottom.
func (d Destination) Prev() Destination {
	return Destination((int(d) + len(destinations) - 1) % len(destinations))
}

// MarshalText encodes d by name so JSON payloads carry "courses", not 1.
func (d Destination) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Destination) UnmarshalText(b []byte) error {
	parsed, err := ParseDestination(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDestination maps a name ("calendar", "Calendar") to its destination.
func ParseDestination(s string) (Destination, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, d := range destinations {
		if d.name == name {
			return Destination(i), nil
		}
	}
	return Home, fmt.Errorf("%w: %q", ErrUnknownDestination, s)
}
