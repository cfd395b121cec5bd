package zkwatch

import (
	"context"
	"slices"
	"sync"
)

// WatchFuture is a one-shot completion handle for a registered watch.
// It is fulfilled exactly once by the dispatch path; any number of
// goroutines may await it independently.
type WatchFuture struct {
	done chan struct{}
	ev   Event
}

func newWatchFuture() *WatchFuture {
	return &WatchFuture{
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the watch fires.
func (f *WatchFuture) Done() <-chan struct{} {
	return f.done
}

// Event returns the event that fired the watch.
// Only valid after the Done channel is closed.
func (f *WatchFuture) Event() Event {
	return f.ev
}

// Wait blocks until the watch fires or ctx is cancelled.
func (f *WatchFuture) Wait(ctx context.Context) (Event, error) {
	select {
	case <-f.done:
		return f.ev, nil
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

func (f *WatchFuture) complete(ev Event) {
	f.ev = ev
	close(f.done)
}

// watchTable is the pending-watch registry of a single watch kind.
// At most one slot exists per path. Only get-or-create and the two drain
// forms touch the map, each in its own critical section.
type watchTable struct {
	mut   sync.Mutex
	slots map[string]*WatchFuture
}

func newWatchTable() *watchTable {
	return &watchTable{
		slots: map[string]*WatchFuture{},
	}
}

func (t *watchTable) getOrCreate(path string) *WatchFuture {
	t.mut.Lock()
	defer t.mut.Unlock()

	future, ok := t.slots[path]
	if !ok {
		future = newWatchFuture()
		t.slots[path] = future
	}
	return future
}

// drain removes and returns the slot at path, if present.
func (t *watchTable) drain(path string) []*WatchFuture {
	t.mut.Lock()
	defer t.mut.Unlock()

	future, ok := t.slots[path]
	if !ok {
		return nil
	}
	delete(t.slots, path)
	return []*WatchFuture{future}
}

// drainAll removes and returns every slot, emptying the table.
func (t *watchTable) drainAll() []*WatchFuture {
	t.mut.Lock()
	defer t.mut.Unlock()

	futures := make([]*WatchFuture, 0, len(t.slots))
	for _, future := range t.slots {
		futures = append(futures, future)
	}
	t.slots = map[string]*WatchFuture{}
	return futures
}

func (t *watchTable) pendingPaths() []string {
	t.mut.Lock()
	defer t.mut.Unlock()

	paths := make([]string, 0, len(t.slots))
	for path := range t.slots {
		paths = append(paths, path)
	}
	return paths
}

// WatchManager correlates server pushed events with pending one-shot watch
// registrations. One instance is owned by a client session and lives for
// the session's duration; it holds no other state.
//
// The three registration methods may be called from any number of
// goroutines while the transport delivery path calls Apply. Neither side
// ever blocks: both only perform map lookups under short per-table locks,
// and a future is completed only after every lock is released, so a
// consumer may register new watches from inside its completion handling.
type WatchManager struct {
	logger Logger

	data     *watchTable
	exists   *watchTable
	children *watchTable
}

// WatchOption ...
type WatchOption func(m *WatchManager)

func WithWatchLogger(l Logger) WatchOption {
	return func(m *WatchManager) {
		m.logger = l
	}
}

// NewWatchManager ...
func NewWatchManager(options ...WatchOption) *WatchManager {
	m := &WatchManager{
		logger: &defaultLoggerImpl{},

		data:     newWatchTable(),
		exists:   newWatchTable(),
		children: newWatchTable(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// DataWatch registers interest in the next data change of path.
// Registering again before the watch fires returns the same future.
func (m *WatchManager) DataWatch(path string) *WatchFuture {
	return m.data.getOrCreate(path)
}

// ExistsWatch registers interest in the creation, deletion or data change
// of path, including paths that do not exist yet.
func (m *WatchManager) ExistsWatch(path string) *WatchFuture {
	return m.exists.getOrCreate(path)
}

// ChildrenWatch registers interest in the next child list change of path.
func (m *WatchManager) ChildrenWatch(path string) *WatchFuture {
	return m.children.getOrCreate(path)
}

// Apply resolves every pending watch matched by ev and removes it from its
// table. It never fails: event types outside the routing rules are ignored.
//
// EventNone is a session-level broadcast and clears all three tables
// irrespective of path. EventNodeCreated resolves exists watches alongside
// data watches: a node transitioning into existence is what satisfies a
// watch set on a not-yet-existing path.
func (m *WatchManager) Apply(ev Event) {
	var futures []*WatchFuture

	switch ev.Type {
	case EventNone:
		futures = append(futures, m.data.drainAll()...)
		futures = append(futures, m.exists.drainAll()...)
		futures = append(futures, m.children.drainAll()...)

	case EventNodeCreated, EventNodeDataChanged:
		futures = drainTables(ev.Path, m.data, m.exists)

	case EventNodeChildrenChanged:
		futures = drainTables(ev.Path, m.children)

	case EventNodeDeleted:
		futures = drainTables(ev.Path, m.data, m.exists, m.children)

	case EventDataWatchRemoved, EventChildWatchRemoved:
		// watch removal acknowledgements, nothing to resolve

	default:
		// unrecognized types resolve nothing
	}

	// all table locks are released at this point
	for _, future := range futures {
		future.complete(ev)
	}
}

func drainTables(path string, tables ...*watchTable) []*WatchFuture {
	var futures []*WatchFuture
	for _, table := range tables {
		if len(path) == 0 {
			futures = append(futures, table.drainAll()...)
		} else {
			futures = append(futures, table.drain(path)...)
		}
	}
	return futures
}

// ApplyWire decodes a raw wire notification and applies it.
// A frame with an undocumented event type or session state code is
// reported back to the transport, which decides to drop or escalate;
// no watch is resolved for such a frame.
func (m *WatchManager) ApplyWire(raw WatcherEvent) error {
	ev, err := NewEvent(raw)
	if err != nil {
		m.logger.Warnf("Drop watch event with path '%s': %v", raw.Path, err)
		return err
	}
	m.Apply(ev)
	return nil
}

// PendingWatches lists the paths with an outstanding watch, per watch kind,
// in the shape of a setWatches request.
type PendingWatches struct {
	DataWatches  []string
	ExistWatches []string
	ChildWatches []string
}

// Pending snapshots the outstanding watches so the session layer can
// re-register them on the server after a reconnect. Paths are sorted.
func (m *WatchManager) Pending() PendingWatches {
	p := PendingWatches{
		DataWatches:  m.data.pendingPaths(),
		ExistWatches: m.exists.pendingPaths(),
		ChildWatches: m.children.pendingPaths(),
	}
	slices.Sort(p.DataWatches)
	slices.Sort(p.ExistWatches)
	slices.Sort(p.ChildWatches)
	return p
}
