package domain

import (
	"encoding/json"
	"errors"
)

// Event is an opaque server record. The client only reads its Id and
// otherwise passes the received JSON through untouched.
type Event struct {
	ID  string
	raw json.RawMessage
}

// NewEvent wraps raw JSON as an Event.
func NewEvent(raw []byte) (*Event, error) {
	var e Event
	if err := e.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return &e, nil
}

// Raw returns a copy of the event JSON.
func (e *Event) Raw() json.RawMessage {
	out := make(json.RawMessage, len(e.raw))
	copy(out, e.raw)
	return out
}

// UnmarshalJSON keeps the raw bytes and extracts the Id field.
func (e *Event) UnmarshalJSON(data []byte) error {
	var head struct {
		ID string `json:"Id"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return err
	}
	e.ID = head.ID
	e.raw = append(e.raw[:0], data...)
	return nil
}

// MarshalJSON returns the record exactly as received.
func (e Event) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return nil, errors.New("event has no payload")
	}
	return e.raw, nil
}

// EventStatus is one opaque entry of the event status catalog.
type EventStatus = json.RawMessage
