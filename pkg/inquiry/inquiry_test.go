package inquiry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type inquiryRecorder struct {
	keyed.NopListener[model.Inquiry]
	added []model.Inquiry
}

func (r *inquiryRecorder) OnAdd(i model.Inquiry) {
	r.added = append(r.added, i)
}

type captureTransport struct {
	published []model.Inquiry
}

func (t *captureTransport) Publish(i model.Inquiry) {
	t.published = append(t.published, i)
}

func received() model.Inquiry {
	return model.Inquiry{
		InquiryID: "INQ-1",
		Product:   model.Bond{CUSIP: "91282CJL6", Ticker: "US2Y"},
		Side:      model.TradeSideBuy,
		Quantity:  1_000_000,
		State:     model.InquiryStateReceived,
	}
}

func TestAutoQuoterQuotesReceivedInquiries(t *testing.T) {
	svc := NewService()
	transport := &captureTransport{}
	svc.SetTransport(transport)
	svc.AddListener(NewAutoQuoter(svc))

	svc.Ingest(received())

	require.Len(t, transport.published, 1)
	assert.Equal(t, QuoteReferencePrice, transport.published[0].Price)
	assert.Equal(t, QuoteReferencePrice, svc.Get("INQ-1").Price)
}

func TestLoopbackRunsQuotedThenDone(t *testing.T) {
	svc := NewService()
	svc.SetTransport(NewLoopbackTransport(svc))
	svc.AddListener(NewAutoQuoter(svc))
	rec := &inquiryRecorder{}
	svc.AddListener(rec)

	svc.Ingest(received())

	// one add for the original, then one per loopback transition
	require.Len(t, rec.added, 3)
	assert.Equal(t, model.InquiryStateReceived, rec.added[0].State)
	assert.Equal(t, model.InquiryStateQuoted, rec.added[1].State)
	assert.Equal(t, model.InquiryStateDone, rec.added[2].State)
	assert.Equal(t, model.InquiryStateDone, svc.Get("INQ-1").State)
}

func TestRejectIsTerminal(t *testing.T) {
	svc := NewService()
	svc.SetTransport(NewLoopbackTransport(svc))

	svc.Ingest(received())
	svc.RejectInquiry("INQ-1")

	assert.Equal(t, model.InquiryStateRejected, svc.Get("INQ-1").State)
}

func TestTerminalStatesNeverTransitionBackward(t *testing.T) {
	svc := NewService()
	svc.SetTransport(NewLoopbackTransport(svc))
	svc.AddListener(NewAutoQuoter(svc))

	svc.Ingest(received())
	require.Equal(t, model.InquiryStateDone, svc.Get("INQ-1").State)

	svc.RejectInquiry("INQ-1")
	assert.Equal(t, model.InquiryStateDone, svc.Get("INQ-1").State)

	svc.SendQuote("INQ-1", 99.5)
	assert.Equal(t, model.InquiryStateDone, svc.Get("INQ-1").State)
	assert.Equal(t, QuoteReferencePrice, svc.Get("INQ-1").Price)
}

func TestIngestNotifiesAddThenUpdate(t *testing.T) {
	svc := NewService()
	j := keyed.NewJournal()
	svc.SetJournal(j)

	svc.Ingest(received())

	entries := j.Entries("inquiry")
	require.Len(t, entries, 2)
	assert.Equal(t, keyed.EventAdd, entries[0].Event)
	assert.Equal(t, keyed.EventUpdate, entries[1].Event)
}
