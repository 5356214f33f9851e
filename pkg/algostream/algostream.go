// Package algostream derives a two-sided streaming quote from each price
// update, alternating the visible size call-over-call and always hiding
// twice the visible quantity.
package algostream

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/policy"
)

// Default visible sizes: the larger quoted on even counter values, the
// smaller on odd.
const (
	DefaultEvenVisibleQty = 2_000_000
	DefaultOddVisibleQty  = 1_000_000
)

type Service struct {
	store   *keyed.Store[model.AlgoStream]
	counter *policy.Counter

	evenQty int64
	oddQty  int64
}

// NewService creates the streaming algo with an injected counter and
// the two alternating visible sizes.
func NewService(counter *policy.Counter, evenQty, oddQty int64) *Service {
	if evenQty <= 0 {
		evenQty = DefaultEvenVisibleQty
	}
	if oddQty <= 0 {
		oddQty = DefaultOddVisibleQty
	}
	return &Service{
		store: keyed.NewStore("algostream",
			func(a model.AlgoStream) string { return a.Stream.Product.CUSIP },
			func(key string) model.AlgoStream {
				return model.AlgoStream{Stream: model.PriceStream{Product: model.Bond{CUSIP: key}}}
			}),
		counter: counter,
		evenQty: evenQty,
		oddQty:  oddQty,
	}
}

// PublishPrice turns a price into a two-sided quote: bid and offer are
// half a spread off mid, hidden size is twice the visible on both
// sides. Listeners are notified with an update event.
func (s *Service) PublishPrice(p model.Price) {
	visible := s.evenQty
	if s.counter.Next()%2 != 0 {
		visible = s.oddQty
	}
	hidden := 2 * visible

	stream := model.PriceStream{
		Product: p.Product,
		Bid: model.PriceStreamOrder{
			Price:      p.Bid(),
			VisibleQty: visible,
			HiddenQty:  hidden,
			Side:       model.PricingSideBid,
		},
		Offer: model.PriceStreamOrder{
			Price:      p.Offer(),
			VisibleQty: visible,
			HiddenQty:  hidden,
			Side:       model.PricingSideOffer,
		},
	}
	algo := model.AlgoStream{Stream: stream}
	s.store.Put(algo)
	s.store.Notify(keyed.EventUpdate, algo)
}

// Get returns the latest algo stream for a CUSIP.
func (s *Service) Get(cusip string) model.AlgoStream {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[model.AlgoStream]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// PriceListener feeds pricing add events into the streaming algo.
type PriceListener struct {
	keyed.NopListener[model.Price]
	svc *Service
}

func NewPriceListener(svc *Service) *PriceListener {
	return &PriceListener{svc: svc}
}

func (l *PriceListener) OnAdd(p model.Price) {
	l.svc.PublishPrice(p)
}
