// Package keyed is the dispatch primitive every desk service builds on:
// a string-keyed value store with an ordered listener registry and
// synchronous add/update/remove notification.
package keyed

import (
	"sync"

	"github.com/gammazero/deque"
)

type Event string

const (
	EventAdd    Event = "ADD"
	EventUpdate Event = "UPDATE"
	EventRemove Event = "REMOVE"
)

// Listener observes one service's notifications. Implementations that
// only care about a subset of events embed NopListener.
type Listener[V any] interface {
	OnAdd(v V)
	OnUpdate(v V)
	OnRemove(v V)
}

// NopListener is a no-op Listener to embed in partial listeners.
type NopListener[V any] struct{}

func (NopListener[V]) OnAdd(V)    {}
func (NopListener[V]) OnUpdate(V) {}
func (NopListener[V]) OnRemove(V) {}

type notice[V any] struct {
	event Event
	value V
}

// Store maps string keys to values and fans notifications out to its
// listeners in registration order. Access to the map is serialized;
// the notification path assumes the single-threaded synchronous call
// graph of the pipeline and must not be driven from multiple goroutines.
type Store[V any] struct {
	name  string
	keyOf func(V) string
	zero  func(key string) V

	mu   sync.Mutex
	data map[string]V

	listeners []Listener[V]

	// pending notices are drained iteratively so that a listener chain
	// re-entering Notify extends the queue instead of the call stack.
	pending     deque.Deque[notice[V]]
	dispatching bool

	journal *Journal
}

// NewStore creates a store named for its service. keyOf derives the map
// key from a value; zero conjures the default entry for a missing key.
func NewStore[V any](name string, keyOf func(V) string, zero func(key string) V) *Store[V] {
	return &Store[V]{
		name:  name,
		keyOf: keyOf,
		zero:  zero,
		data:  make(map[string]V),
	}
}

// SetJournal records every notification the store emits.
func (s *Store[V]) SetJournal(j *Journal) {
	s.journal = j
}

// AddListener appends a listener; registration order is the dispatch
// order and is part of the observable contract.
func (s *Store[V]) AddListener(l Listener[V]) {
	s.listeners = append(s.listeners, l)
}

// Get returns the value for key, conjuring a zero-valued entry if the
// key is absent. Callers must treat a conjured entry as "unknown key",
// not rely on absence semantics; use Lookup for a real miss signal.
func (s *Store[V]) Get(key string) V {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	if !ok {
		v = s.zero(key)
		s.data[key] = v
	}
	return v
}

// Lookup returns the value for key without creating a default entry.
func (s *Store[V]) Lookup(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data[key]
	return v, ok
}

// Put stores v under its derived key, replacing any previous value.
func (s *Store[V]) Put(v V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[s.keyOf(v)] = v
}

// Len returns the number of stored entries.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data)
}

// Notify invokes every listener's callback for the event, in
// registration order, before returning. Re-entrant calls from listener
// chains are queued and drained by the outermost call, so all side
// effects are visible once the outermost Notify returns.
func (s *Store[V]) Notify(event Event, v V) {
	s.pending.PushBack(notice[V]{event: event, value: v})
	if s.dispatching {
		return
	}

	s.dispatching = true
	defer func() { s.dispatching = false }()

	for s.pending.Len() > 0 {
		n := s.pending.PopFront()
		if s.journal != nil {
			s.journal.Record(s.name, n.event, s.keyOf(n.value))
		}
		for _, l := range s.listeners {
			switch n.event {
			case EventAdd:
				l.OnAdd(n.value)
			case EventUpdate:
				l.OnUpdate(n.value)
			case EventRemove:
				l.OnRemove(n.value)
			}
		}
	}
}
