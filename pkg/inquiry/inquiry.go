// Package inquiry runs the customer quote-request state machine:
// RECEIVED -> QUOTED -> DONE, with RECEIVED -> REJECTED as the
// alternative terminal path.
package inquiry

import (
	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

// QuoteReferencePrice is the fixed par price the desk quotes back.
const QuoteReferencePrice = 100.0

// Transport carries quoted or rejected inquiries back to the customer
// side.
type Transport interface {
	Publish(inq model.Inquiry)
}

type Service struct {
	store     *keyed.Store[model.Inquiry]
	transport Transport
	log       *zap.SugaredLogger
}

func NewService() *Service {
	return &Service{
		store: keyed.NewStore("inquiry",
			func(i model.Inquiry) string { return i.InquiryID },
			func(key string) model.Inquiry { return model.Inquiry{InquiryID: key} }),
		log: zap.S().With("service", "inquiry"),
	}
}

func (s *Service) SetTransport(t Transport) {
	s.transport = t
}

// Ingest stores the inquiry and notifies listeners twice, first with an
// add event for capture and then with an update event for the quoting
// logic.
func (s *Service) Ingest(inq model.Inquiry) {
	s.store.Put(inq)
	s.store.Notify(keyed.EventAdd, inq)
	s.store.Notify(keyed.EventUpdate, inq)
}

func terminal(state model.InquiryState) bool {
	switch state {
	case model.InquiryStateDone, model.InquiryStateRejected, model.InquiryStateCustomerRejected:
		return true
	}
	return false
}

// SendQuote prices the stored inquiry and hands it to the transport.
// Terminal inquiries are left alone.
func (s *Service) SendQuote(inquiryID string, price float64) {
	inq := s.store.Get(inquiryID)
	if terminal(inq.State) {
		s.log.Warnw("quote on terminal inquiry ignored", "inquiry_id", inquiryID, "state", inq.State)
		return
	}
	inq.Price = price
	s.store.Put(inq)
	s.log.Infow("quote sent", "inquiry_id", inquiryID, "price", price)
	if s.transport != nil {
		s.transport.Publish(inq)
	}
}

// RejectInquiry moves the inquiry to REJECTED and hands it to the
// transport. Terminal inquiries are left alone.
func (s *Service) RejectInquiry(inquiryID string) {
	inq := s.store.Get(inquiryID)
	if terminal(inq.State) {
		s.log.Warnw("reject on terminal inquiry ignored", "inquiry_id", inquiryID, "state", inq.State)
		return
	}
	inq.State = model.InquiryStateRejected
	s.store.Put(inq)
	s.log.Infow("inquiry rejected", "inquiry_id", inquiryID)
	if s.transport != nil {
		s.transport.Publish(inq)
	}
}

// Get returns the stored inquiry for an id.
func (s *Service) Get(inquiryID string) model.Inquiry {
	return s.store.Get(inquiryID)
}

func (s *Service) AddListener(l keyed.Listener[model.Inquiry]) {
	s.store.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.store.SetJournal(j)
}

// AutoQuoter answers every freshly received inquiry with the reference
// price.
type AutoQuoter struct {
	keyed.NopListener[model.Inquiry]
	svc *Service
}

func NewAutoQuoter(svc *Service) *AutoQuoter {
	return &AutoQuoter{svc: svc}
}

func (a *AutoQuoter) OnUpdate(inq model.Inquiry) {
	if inq.State == model.InquiryStateReceived {
		a.svc.SendQuote(inq.InquiryID, QuoteReferencePrice)
	}
}

// LoopbackTransport simulates the customer side: a quoted inquiry comes
// straight back as QUOTED and is immediately followed by DONE, each
// re-ingested so the full listener chain observes both transitions.
type LoopbackTransport struct {
	svc *Service
}

func NewLoopbackTransport(svc *Service) *LoopbackTransport {
	return &LoopbackTransport{svc: svc}
}

func (t *LoopbackTransport) Publish(inq model.Inquiry) {
	if inq.State == model.InquiryStateRejected {
		return
	}
	inq.State = model.InquiryStateQuoted
	t.svc.Ingest(inq)
	inq.State = model.InquiryStateDone
	t.svc.Ingest(inq)
}
