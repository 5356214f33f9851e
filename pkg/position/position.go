// Package position keeps the signed quantity ledger per bond and book,
// pre-seeded with a flat position for the whole traded universe.
package position

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/refdata"
)

type Service struct {
	store *keyed.Store[*model.Position]
}

func NewService() *Service {
	svc := &Service{
		store: keyed.NewStore("position",
			func(p *model.Position) string { return p.Product.CUSIP },
			func(key string) *model.Position { return model.NewPosition(model.Bond{CUSIP: key}) }),
	}
	for _, bond := range refdata.Universe() {
		svc.store.Put(model.NewPosition(bond))
	}
	return svc
}

// ApplyTrade books the trade's signed quantity into the position ledger.
// Listeners see the changed position twice, first as an update then as an
// add, so both styles of consumer observe it.
func (s *Service) ApplyTrade(trade model.Trade) {
	pos := s.store.Get(trade.Product.CUSIP)
	pos.Add(trade.Book, trade.SignedQuantity())
	s.store.Notify(keyed.EventUpdate, pos)
	s.store.Notify(keyed.EventAdd, pos)
}

// Get returns the position ledger for a CUSIP.
func (s *Service) Get(cusip string) *model.Position {
	return s.store.Get(cusip)
}

func (s *Service) AddListener(l keyed.Listener[*model.Position]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// TradeListener applies booked trades to the ledger.
type TradeListener struct {
	keyed.NopListener[model.Trade]
	svc *Service
}

func NewTradeListener(svc *Service) *TradeListener {
	return &TradeListener{svc: svc}
}

func (l *TradeListener) OnUpdate(t model.Trade) {
	l.svc.ApplyTrade(t)
}
