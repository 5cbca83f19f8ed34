package fsrs

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// State represents the learning phase of a card.
type State int

const (
	Learning   State = iota + 1 // New card, in initial learning.
	Review                      // Graduated, in the long-term review cycle.
	Relearning                  // Forgotten, re-entering short intervals.
)

var (
	stateNames  = [...]string{Learning: "learning", Review: "review", Relearning: "relearning"}
	stateByName = map[string]State{
		"learning":   Learning,
		"review":     Review,
		"relearning": Relearning,
	}
)

// Compile-time interface checks.
var (
	_ fmt.Stringer             = State(0)
	_ json.Marshaler           = State(0)
	_ json.Unmarshaler         = (*State)(nil)
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

func (s State) isValid() bool {
	return s >= Learning && s <= Relearning
}

// String returns the canonical name of the state ("learning", "review",
// "relearning"). For invalid values it returns "State(n)".
func (s State) String() string {
	if s.isValid() {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s State) MarshalText() ([]byte, error) {
	if !s.isValid() {
		return nil, fmt.Errorf("%w: state %d", ErrInvalidFormat, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It fails with
// ErrInvalidFormat for any string outside the closed vocabulary.
func (s *State) UnmarshalText(text []byte) error {
	v, ok := stateByName[string(text)]
	if !ok {
		return fmt.Errorf("%w: state %q", ErrInvalidFormat, text)
	}
	*s = v
	return nil
}

// MarshalJSON implements json.Marshaler. State serializes as a JSON string.
func (s State) MarshalJSON() ([]byte, error) {
	text, err := s.MarshalText()
	if err != nil {
		return nil, err
	}
	return json.Marshal(string(text))
}

// UnmarshalJSON implements json.Unmarshaler. Expects a JSON string.
func (s *State) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("%w: state %s", ErrInvalidFormat, data)
	}
	return s.UnmarshalText([]byte(str))
}
