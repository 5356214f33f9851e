// Package gui rate-limits price updates toward the display sink. The
// throttle is a pure gate, not a buffer: dropped updates are gone.
package gui

import (
	"time"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

// DefaultMaxUpdates is the lifetime cap on displayed prices.
const DefaultMaxUpdates = 100

// Sink receives the prices that survive the throttle.
type Sink interface {
	Display(p model.Price)
}

type Service struct {
	store *keyed.Store[model.Price]
	sink  Sink
}

func NewService(sink Sink) *Service {
	return &Service{
		store: keyed.NewStore("gui",
			func(p model.Price) string { return p.Product.CUSIP },
			func(key string) model.Price { return model.Price{Product: model.Bond{CUSIP: key}} }),
		sink: sink,
	}
}

// AddPrice stores the price and hands it straight to the display sink.
func (s *Service) AddPrice(p model.Price) {
	s.store.Put(p)
	if s.sink != nil {
		s.sink.Display(p)
	}
	s.store.Notify(keyed.EventAdd, p)
}

func (s *Service) Get(cusip string) model.Price {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[model.Price]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// Throttle forwards a price update only when the configured interval has
// elapsed since the last forwarded one, and never after the lifetime cap.
type Throttle struct {
	keyed.NopListener[model.Price]
	svc      *Service
	interval time.Duration
	limit    int
	now      func() time.Time

	count int
	last  time.Time
}

// NewThrottle builds the gate with an injectable clock so the timing
// policy is testable without sleeping.
func NewThrottle(svc *Service, interval time.Duration, limit int, now func() time.Time) *Throttle {
	if limit <= 0 {
		limit = DefaultMaxUpdates
	}
	if now == nil {
		now = time.Now
	}
	return &Throttle{svc: svc, interval: interval, limit: limit, now: now}
}

func (t *Throttle) OnAdd(p model.Price) {
	if t.count >= t.limit {
		return
	}
	at := t.now()
	if !t.last.IsZero() && at.Sub(t.last) < t.interval {
		return
	}
	t.last = at
	t.count++
	t.svc.AddPrice(p)
}
