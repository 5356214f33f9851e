package booking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type tradeRecorder struct {
	keyed.NopListener[model.Trade]
	trades []model.Trade
}

func (r *tradeRecorder) OnUpdate(t model.Trade) {
	r.trades = append(r.trades, t)
}

func TestExecutionSideInversion(t *testing.T) {
	svc := NewService()
	rec := &tradeRecorder{}
	svc.AddListener(rec)
	listener := NewExecutionListener(svc)

	bond := model.Bond{CUSIP: "91282CJL6", Ticker: "US2Y"}
	listener.OnAdd(model.ExecutionOrder{Product: bond, OrderID: "US2Y-ALGO-0", Side: model.PricingSideOffer, VisibleQty: 500_000, HiddenQty: 1_500_000})
	listener.OnAdd(model.ExecutionOrder{Product: bond, OrderID: "US2Y-ALGO-1", Side: model.PricingSideBid, VisibleQty: 250_000, HiddenQty: 750_000})

	require.Len(t, rec.trades, 2)
	// hitting the offer side means the desk bought
	assert.Equal(t, model.TradeSideBuy, rec.trades[0].Side)
	assert.Equal(t, int64(2_000_000), rec.trades[0].Quantity)
	assert.Equal(t, model.TradeSideSell, rec.trades[1].Side)
	assert.Equal(t, int64(1_000_000), rec.trades[1].Quantity)
}

func TestTradesRotateBooksAndCarrySequencedIDs(t *testing.T) {
	svc := NewService()
	rec := &tradeRecorder{}
	svc.AddListener(rec)
	listener := NewExecutionListener(svc)

	bond := model.Bond{CUSIP: "91282CJN2", Ticker: "US5Y"}
	for i := 0; i < 5; i++ {
		listener.OnAdd(model.ExecutionOrder{
			Product: bond,
			OrderID: fmt.Sprintf("US5Y-ALGO-%d", i),
			Side:    model.PricingSideBid,
		})
	}

	require.Len(t, rec.trades, 5)
	wantBooks := []string{"TRSY1", "TRSY2", "TRSY3", "TRSY1", "TRSY2"}
	for i, trade := range rec.trades {
		assert.Equalf(t, wantBooks[i], trade.Book, "trade %d", i)
		assert.Equalf(t, fmt.Sprintf("US5Y-TRD-%d", i), trade.TradeID, "trade %d", i)
	}
}

func TestBookTradeStoresByID(t *testing.T) {
	svc := NewService()
	svc.BookTrade(model.Trade{TradeID: "US2Y-TRD-7", Book: "TRSY2", Quantity: 1_000_000, Side: model.TradeSideBuy})
	assert.Equal(t, "TRSY2", svc.Get("US2Y-TRD-7").Book)
}
