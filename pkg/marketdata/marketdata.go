// Package marketdata stores the order book per bond and answers depth
// aggregation and best-bid/offer queries for the execution algo.
package marketdata

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type Service struct {
	store *keyed.Store[model.OrderBook]
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("marketdata",
			func(b model.OrderBook) string { return b.Product.CUSIP },
			func(key string) model.OrderBook { return model.OrderBook{Product: model.Bond{CUSIP: key}} }),
	}
}

// Ingest stores the book and notifies listeners with an add event.
func (s *Service) Ingest(book model.OrderBook) {
	s.store.Put(book)
	s.store.Notify(keyed.EventAdd, book)
}

// Get returns the stored book for a CUSIP, conjuring an empty one if
// absent.
func (s *Service) Get(cusip string) model.OrderBook {
	return s.store.Get(cusip)
}

// BestBidOffer returns the top of the stored book on both sides.
func (s *Service) BestBidOffer(cusip string) model.BidOffer {
	return s.store.Get(cusip).BestBidOffer()
}

// AggregateDepth merges orders at an identical price on each side into
// one level whose quantity is the sum. The aggregated book replaces the
// stored one and is returned. Aggregating twice yields the same book.
func (s *Service) AggregateDepth(cusip string) model.OrderBook {
	book := s.store.Get(cusip)
	book.Bids = mergeLevels(book.Bids)
	book.Offers = mergeLevels(book.Offers)
	s.store.Put(book)
	return book
}

func (s *Service) AddListener(l keyed.Listener[model.OrderBook]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// mergeLevels sums quantities at equal prices, keeping first-occurrence
// stack order so repeated aggregation is a fixed point.
func mergeLevels(stack []model.Order) []model.Order {
	if len(stack) < 2 {
		return stack
	}

	merged := make([]model.Order, 0, len(stack))
	index := make(map[float64]int, len(stack))
	for _, o := range stack {
		if i, ok := index[o.Price]; ok {
			merged[i].Quantity += o.Quantity
			continue
		}
		index[o.Price] = len(merged)
		merged = append(merged, o)
	}
	return merged
}
