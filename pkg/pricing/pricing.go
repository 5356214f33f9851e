// Package pricing keeps the latest two-way price per bond and fans each
// update out to the GUI and algo-streaming listeners.
package pricing

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type Service struct {
	store *keyed.Store[model.Price]
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("pricing",
			func(p model.Price) string { return p.Product.CUSIP },
			func(key string) model.Price { return model.Price{Product: model.Bond{CUSIP: key}} }),
	}
}

// Ingest stores the price and notifies listeners with an add event.
func (s *Service) Ingest(p model.Price) {
	s.store.Put(p)
	s.store.Notify(keyed.EventAdd, p)
}

// Get returns the latest price for a CUSIP, a zero-valued entry if none
// has been ingested.
func (s *Service) Get(cusip string) model.Price {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[model.Price]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}
