// Package streaming republishes algo-derived quotes to downstream
// consumers such as the historical capture sink.
package streaming

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type Service struct {
	store *keyed.Store[model.PriceStream]
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("streaming",
			func(p model.PriceStream) string { return p.Product.CUSIP },
			func(key string) model.PriceStream { return model.PriceStream{Product: model.Bond{CUSIP: key}} }),
	}
}

// PublishPrice stores the quote and notifies listeners with an add
// event.
func (s *Service) PublishPrice(stream model.PriceStream) {
	s.store.Put(stream)
	s.store.Notify(keyed.EventAdd, stream)
}

// Get returns the latest published quote for a CUSIP.
func (s *Service) Get(cusip string) model.PriceStream {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[model.PriceStream]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// AlgoListener forwards algo stream updates into publication.
type AlgoListener struct {
	keyed.NopListener[model.AlgoStream]
	svc *Service
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc}
}

func (l *AlgoListener) OnUpdate(a model.AlgoStream) {
	l.svc.PublishPrice(a.Stream)
}
