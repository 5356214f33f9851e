// Package algoexec implements the spread-crossing execution strategy:
// when the book is crossed by at least the tightest unit it aggresses
// the top of the alternating side with an iceberg-style market order.
package algoexec

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/policy"
)

// MinSpread is the tightest price unit; the strategy only fires when
// bid - offer reaches it.
const MinSpread = 1.0 / 128.0

// visibleDivisor splits the aggressed quantity roughly 1:3
// visible:hidden.
const visibleDivisor = 4

// crossedPriceSentinel fills the price field of market orders; crossing
// the spread makes the price irrelevant, and an obviously synthetic
// value keeps capture files honest.
const crossedPriceSentinel = 1.0

type Service struct {
	store   *keyed.Store[model.AlgoExecution]
	counter *policy.Counter
	log     *zap.SugaredLogger
}

// NewService creates the strategy with an injected emission counter so
// the side alternation is testable from any starting parity.
func NewService(counter *policy.Counter) *Service {
	return &Service{
		store: keyed.NewStore("algoexec",
			func(a model.AlgoExecution) string { return a.Order.Product.CUSIP },
			func(key string) model.AlgoExecution {
				return model.AlgoExecution{Order: model.ExecutionOrder{Product: model.Bond{CUSIP: key}}}
			}),
		counter: counter,
		log:     zap.S().With("service", "algoexec"),
	}
}

// OnOrderBookUpdate applies the gating policy to a fresh book. When the
// crossed spread reaches MinSpread it emits one market order aggressing
// the full best quantity of the parity-chosen side and notifies
// listeners with an update event; otherwise it is a no-op.
func (s *Service) OnOrderBookUpdate(book model.OrderBook) {
	if len(book.Bids) == 0 || len(book.Offers) == 0 {
		return
	}
	best := book.BestBidOffer()
	if best.Bid.Price-best.Offer.Price < MinSpread {
		return
	}

	n := s.counter.Next()
	side := model.PricingSideBid
	quantity := best.Bid.Quantity
	if n%2 != 0 {
		side = model.PricingSideOffer
		quantity = best.Offer.Quantity
	}

	visible := quantity / visibleDivisor
	order := model.ExecutionOrder{
		Product:    book.Product,
		Side:       side,
		OrderID:    fmt.Sprintf("%s-ALGO-%d", book.Product.Ticker, n),
		Type:       model.OrderTypeMarket,
		Price:      crossedPriceSentinel,
		VisibleQty: visible,
		HiddenQty:  quantity - visible,
	}
	algo := model.AlgoExecution{Order: order}
	s.store.Put(algo)

	s.log.Infow("aggressing crossed book",
		"cusip", book.Product.CUSIP,
		"order_id", order.OrderID,
		"side", side,
		"quantity", quantity)
	s.store.Notify(keyed.EventUpdate, algo)
}

// Get returns the latest algo execution for a CUSIP.
func (s *Service) Get(cusip string) model.AlgoExecution {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[model.AlgoExecution]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// BookListener feeds market-data add events into the strategy.
type BookListener struct {
	keyed.NopListener[model.OrderBook]
	svc *Service
}

func NewBookListener(svc *Service) *BookListener {
	return &BookListener{svc: svc}
}

func (l *BookListener) OnAdd(book model.OrderBook) {
	l.svc.OnOrderBookUpdate(book)
}
