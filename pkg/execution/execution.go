// Package execution routes orders to trading venues, round-robin across
// the connected markets.
package execution

import (
	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/policy"
)

// venues is the routing rotation order.
var venues = []model.Venue{model.VenueBrokerTec, model.VenueESpeed, model.VenueCME}

type Service struct {
	store *keyed.Store[model.ExecutionOrder]
	log   *zap.SugaredLogger
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("execution",
			func(o model.ExecutionOrder) string { return o.OrderID },
			func(key string) model.ExecutionOrder { return model.ExecutionOrder{OrderID: key} }),
		log: zap.S().With("service", "execution"),
	}
}

// ExecuteOrder stamps the order with its venue, stores it by order id and
// notifies listeners with an add event.
func (s *Service) ExecuteOrder(order model.ExecutionOrder, venue model.Venue) {
	order.Venue = venue
	s.store.Put(order)
	s.log.Infow("order executed",
		"order_id", order.OrderID,
		"cusip", order.Product.CUSIP,
		"venue", venue,
		"quantity", order.TotalQty())
	s.store.Notify(keyed.EventAdd, order)
}

// Get returns the executed order for an order id.
func (s *Service) Get(orderID string) model.ExecutionOrder {
	return s.store.Get(orderID)
}

func (s *Service) AddListener(l keyed.Listener[model.ExecutionOrder]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// AlgoListener routes each algo order to the next venue in rotation.
type AlgoListener struct {
	keyed.NopListener[model.AlgoExecution]
	svc *Service
	rot *policy.Rotation
}

func NewAlgoListener(svc *Service) *AlgoListener {
	return &AlgoListener{svc: svc, rot: policy.NewRotation(len(venues))}
}

func (l *AlgoListener) OnUpdate(a model.AlgoExecution) {
	l.svc.ExecuteOrder(a.Order, venues[l.rot.Next()])
}
