// Package booking converts executed orders into trades, spreading them
// round-robin across the desk's books and inverting the quoting side into
// the dealer's trade side.
package booking

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/policy"
)

// books is the round-robin booking rotation.
var books = []string{"TRSY1", "TRSY2", "TRSY3"}

type Service struct {
	store *keyed.Store[model.Trade]
	log   *zap.SugaredLogger
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("booking",
			func(t model.Trade) string { return t.TradeID },
			func(key string) model.Trade { return model.Trade{TradeID: key} }),
		log: zap.S().With("service", "booking"),
	}
}

// BookTrade stores the trade by trade id and notifies listeners with an
// update event.
func (s *Service) BookTrade(trade model.Trade) {
	s.store.Put(trade)
	s.log.Infow("trade booked",
		"trade_id", trade.TradeID,
		"cusip", trade.Product.CUSIP,
		"book", trade.Book,
		"side", trade.Side,
		"quantity", trade.Quantity)
	s.store.Notify(keyed.EventUpdate, trade)
}

// Get returns the booked trade for a trade id.
func (s *Service) Get(tradeID string) model.Trade {
	return s.store.Get(tradeID)
}

func (s *Service) AddListener(l keyed.Listener[model.Trade]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// ExecutionListener books each executed order: the order that lifted the
// offer is the dealer buying, the one that hit the bid is the dealer
// selling.
type ExecutionListener struct {
	keyed.NopListener[model.ExecutionOrder]
	svc     *Service
	counter *policy.Counter
	rot     *policy.Rotation
}

func NewExecutionListener(svc *Service) *ExecutionListener {
	return &ExecutionListener{
		svc:     svc,
		counter: policy.NewCounter(),
		rot:     policy.NewRotation(len(books)),
	}
}

func (l *ExecutionListener) OnAdd(order model.ExecutionOrder) {
	side := model.TradeSideSell
	if order.Side == model.PricingSideOffer {
		side = model.TradeSideBuy
	}
	l.svc.BookTrade(model.Trade{
		Product:  order.Product,
		TradeID:  fmt.Sprintf("%s-TRD-%d", order.Product.Ticker, l.counter.Next()),
		Price:    order.Price,
		Book:     books[l.rot.Next()],
		Quantity: order.TotalQty(),
		Side:     side,
	})
}
