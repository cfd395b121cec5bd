package zkwatch

import (
	"fmt"

	"github.com/pkg/errors"
)

// EventType is the wire-coded type of a watch notification pushed by the server.
type EventType int32

const (
	// EventNone is a session-level event. It carries no path and resolves
	// every pending watch (see WatchManager.Apply).
	EventNone EventType = -1

	EventNodeCreated         EventType = 1
	EventNodeDeleted         EventType = 2
	EventNodeDataChanged     EventType = 3
	EventNodeChildrenChanged EventType = 4

	// EventDataWatchRemoved and EventChildWatchRemoved acknowledge a server
	// side watch removal. The dispatcher ignores them.
	EventDataWatchRemoved  EventType = 5
	EventChildWatchRemoved EventType = 6
)

// State is the wire-coded session state of the client with respect to
// the ZooKeeper ensemble.
type State int32

const (
	StateUnknown           State = -1 // deprecated, never sent by current servers
	StateDisconnected      State = 0
	StateNoSyncConnected   State = 1 // deprecated, never sent by current servers
	StateSyncConnected     State = 3
	StateAuthFailed        State = 4
	StateConnectedReadOnly State = 5
	StateSaslAuthenticated State = 6
	StateExpired           State = -112
)

// ErrUnknownCode indicates a wire code outside the documented protocol
// vocabulary. Decode failures wrap it so callers can match with errors.Is.
var ErrUnknownCode = errors.New("zkwatch: unknown wire code")

var eventTypeNames = map[EventType]string{
	EventNone:                "EventNone",
	EventNodeCreated:         "EventNodeCreated",
	EventNodeDeleted:         "EventNodeDeleted",
	EventNodeDataChanged:     "EventNodeDataChanged",
	EventNodeChildrenChanged: "EventNodeChildrenChanged",
	EventDataWatchRemoved:    "EventDataWatchRemoved",
	EventChildWatchRemoved:   "EventChildWatchRemoved",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int32(t))
}

// ParseEventType decodes a wire event type code.
// An undocumented code is a hard failure, there is no fallback value.
func ParseEventType(code int32) (EventType, error) {
	t := EventType(code)
	if _, ok := eventTypeNames[t]; !ok {
		return 0, errors.Wrapf(ErrUnknownCode, "event type %d", code)
	}
	return t, nil
}

var stateNames = map[State]string{
	StateUnknown:           "StateUnknown",
	StateDisconnected:      "StateDisconnected",
	StateNoSyncConnected:   "StateNoSyncConnected",
	StateSyncConnected:     "StateSyncConnected",
	StateAuthFailed:        "StateAuthFailed",
	StateConnectedReadOnly: "StateConnectedReadOnly",
	StateSaslAuthenticated: "StateSaslAuthenticated",
	StateExpired:           "StateExpired",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// ParseState decodes a wire session state code.
func ParseState(code int32) (State, error) {
	s := State(code)
	if _, ok := stateNames[s]; !ok {
		return 0, errors.Wrapf(ErrUnknownCode, "session state %d", code)
	}
	return s, nil
}
