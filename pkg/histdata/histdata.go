// Package histdata is the generic capture tap: it mirrors add events
// from any upstream service into an output collaborator.
package histdata

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
)

// Sink is the output collaborator each persisted value is handed to.
type Sink[V any] interface {
	Write(v V)
}

// Service keeps the last persisted value per key and forwards every
// persist call to its sink.
type Service[V any] struct {
	store *keyed.Store[V]
	sink  Sink[V]
}

func NewService[V any](name string, keyOf func(V) string, zero func(string) V, sink Sink[V]) *Service[V] {
	return &Service[V]{
		store: keyed.NewStore(name, keyOf, zero),
		sink:  sink,
	}
}

// Persist stores the value and hands it to the sink.
func (s *Service[V]) Persist(v V) {
	s.store.Put(v)
	if s.sink != nil {
		s.sink.Write(v)
	}
	s.store.Notify(keyed.EventAdd, v)
}

func (s *Service[V]) Get(key string) V {
	return s.store.Get(key)
}

func (s *Service[V]) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// Listener taps an upstream service's add events into capture.
type Listener[V any] struct {
	keyed.NopListener[V]
	svc *Service[V]
}

func NewListener[V any](svc *Service[V]) *Listener[V] {
	return &Listener[V]{svc: svc}
}

func (l *Listener[V]) OnAdd(v V) {
	l.svc.Persist(v)
}
