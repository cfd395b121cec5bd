// Package zkwatch implements the watch notification core of a ZooKeeper
// client: one-shot per-path watch registrations correlated with typed
// events pushed by the server.
package zkwatch

import (
	"go.uber.org/zap/zapcore"
)

// Event is a znode or session event sent by the server.
// Refer to EventType for more details.
type Event struct {
	Type  EventType
	State State
	Path  string // empty for session-level events
}

// WatcherEvent is the raw wire form of a server watch notification,
// produced by the transport layer before any vocabulary decoding.
type WatcherEvent struct {
	Type  int32
	State int32
	Path  string
}

// NewEvent assembles an Event from its raw wire form.
// It fails on an undocumented event type or session state code.
func NewEvent(raw WatcherEvent) (Event, error) {
	eventType, err := ParseEventType(raw.Type)
	if err != nil {
		return Event{}, err
	}
	state, err := ParseState(raw.State)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Type:  eventType,
		State: state,
		Path:  raw.Path,
	}, nil
}

// MarshalLogObject renders the logging structure for the EventType
func (t EventType) MarshalLogObject(kv zapcore.ObjectEncoder) error {
	kv.AddInt32("code", int32(t))
	kv.AddString("name", t.String())
	return nil
}

// MarshalLogObject renders the logging structure for the State
func (s State) MarshalLogObject(kv zapcore.ObjectEncoder) error {
	kv.AddInt32("code", int32(s))
	kv.AddString("name", s.String())
	return nil
}

// MarshalLogObject renders the logging structure for the Event
func (e Event) MarshalLogObject(kv zapcore.ObjectEncoder) error {
	kv.AddString("type", e.Type.String())
	kv.AddString("state", e.State.String())
	kv.AddString("path", e.Path)
	return nil
}
