package zkwatch

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewEvent(t *testing.T) {
	t.Run("normal", func(t *testing.T) {
		ev, err := NewEvent(WatcherEvent{
			Type:  3,
			State: 3,
			Path:  "/workers/worker01",
		})
		assert.Equal(t, nil, err)
		assert.Equal(t, Event{
			Type:  EventNodeDataChanged,
			State: StateSyncConnected,
			Path:  "/workers/worker01",
		}, ev)
	})

	t.Run("session event without path", func(t *testing.T) {
		ev, err := NewEvent(WatcherEvent{
			Type:  -1,
			State: 0,
		})
		assert.Equal(t, nil, err)
		assert.Equal(t, Event{
			Type:  EventNone,
			State: StateDisconnected,
		}, ev)
	})

	t.Run("unknown event type", func(t *testing.T) {
		ev, err := NewEvent(WatcherEvent{
			Type:  9,
			State: 3,
			Path:  "/workers",
		})
		assert.Equal(t, true, errors.Is(err, ErrUnknownCode))
		assert.Equal(t, Event{}, ev)
	})

	t.Run("unknown session state", func(t *testing.T) {
		ev, err := NewEvent(WatcherEvent{
			Type:  1,
			State: 2,
			Path:  "/workers",
		})
		assert.Equal(t, true, errors.Is(err, ErrUnknownCode))
		assert.Equal(t, Event{}, ev)
	})
}

func TestEvent_MarshalLogObject(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	ev := Event{
		Type:  EventNodeDeleted,
		State: StateSyncConnected,
		Path:  "/locks/lock01",
	}
	logger.Info("watch fired",
		zap.Object("event", ev),
		zap.Object("type", ev.Type),
		zap.Object("state", ev.State),
	)

	entries := logs.All()
	assert.Equal(t, 1, len(entries))
	assert.Equal(t, map[string]any{
		"event": map[string]any{
			"type":  "EventNodeDeleted",
			"state": "StateSyncConnected",
			"path":  "/locks/lock01",
		},
		"type": map[string]any{
			"code": int32(2),
			"name": "EventNodeDeleted",
		},
		"state": map[string]any{
			"code": int32(3),
			"name": "StateSyncConnected",
		},
	}, entries[0].ContextMap())
}
