package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/bonddesk-dev/pkg/booking"
	"github.com/joripage/bonddesk-dev/pkg/inquiry"
	"github.com/joripage/bonddesk-dev/pkg/marketdata"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/pricing"
)

func writeFeed(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return path
}

func TestReplayPricesParsesFractionalRows(t *testing.T) {
	svc := pricing.NewService()
	path := writeFeed(t,
		"91282CJL6,99-000,100-000",
		"bogus row",
		"XXXXXXXXX,99-000,100-000",
		"91282CJN2,99-16+,99-200",
	)

	require.NoError(t, ReplayPrices(path, svc))

	p := svc.Get("91282CJL6")
	assert.InDelta(t, 99.5, p.Mid, 1e-12)
	assert.InDelta(t, 1.0, p.Spread, 1e-12)

	// bid 99-16+ = 99.515625, ask 99-200 = 99.625
	p = svc.Get("91282CJN2")
	assert.InDelta(t, (99.515625+99.625)/2, p.Mid, 1e-12)
}

func TestReplayTrades(t *testing.T) {
	svc := booking.NewService()
	path := writeFeed(t,
		"91282CJL6,US2Y-TRD-0,99-000,TRSY1,1000000,BUY",
		"91282CJL6,US2Y-TRD-1,99-000,TRSY2,2000000,HOLD",
	)

	require.NoError(t, ReplayTrades(path, svc))

	trade := svc.Get("US2Y-TRD-0")
	assert.Equal(t, "TRSY1", trade.Book)
	assert.Equal(t, int64(1_000_000), trade.Quantity)
	assert.Equal(t, model.TradeSideBuy, trade.Side)
}

func TestReplayInquiriesSkipsBadEnumRows(t *testing.T) {
	svc := inquiry.NewService()
	path := writeFeed(t,
		"INQ-9,91282CJL6,HOLD,1000000,99-000,RECEIVED",
		"INQ-10,91282CJL6,BUY,1000000,99-000,BANANA",
		"INQ-11,91282CJL6,SELL,2000000,99-000,RECEIVED",
	)

	require.NoError(t, ReplayInquiries(path, svc))

	// the malformed rows never reached the service
	assert.Empty(t, svc.Get("INQ-9").State)
	assert.Empty(t, svc.Get("INQ-10").State)

	inq := svc.Get("INQ-11")
	assert.Equal(t, model.TradeSideSell, inq.Side)
	assert.Equal(t, model.InquiryStateReceived, inq.State)
}

func TestReplayMarketDataGroupsRunsOfTen(t *testing.T) {
	svc := marketdata.NewService()

	var lines []string
	for i := 0; i < 5; i++ {
		lines = append(lines, "91282CJL6,99-000,1000000,BID")
	}
	for i := 0; i < 5; i++ {
		lines = append(lines, "91282CJL6,100-000,1000000,OFFER")
	}
	path := writeFeed(t, lines...)

	require.NoError(t, ReplayMarketData(path, svc))

	book := svc.Get("91282CJL6")
	assert.Len(t, book.Bids, 5)
	assert.Len(t, book.Offers, 5)
}

func TestReplayMarketDataPoisonedRunIsDropped(t *testing.T) {
	svc := marketdata.NewService()

	lines := []string{"91282CJL6,garbage,1000000,BID"}
	for i := 0; i < 4; i++ {
		lines = append(lines, "91282CJL6,99-000,1000000,BID")
	}
	for i := 0; i < 5; i++ {
		lines = append(lines, "91282CJL6,100-000,1000000,OFFER")
	}
	path := writeFeed(t, lines...)

	require.NoError(t, ReplayMarketData(path, svc))

	book := svc.Get("91282CJL6")
	assert.Empty(t, book.Bids)
	assert.Empty(t, book.Offers)
}

func TestPriceWriterRowLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.txt")
	at := time.Date(2024, 3, 1, 9, 30, 0, 125_000_000, time.UTC)
	w, err := NewPriceWriter(path, func() time.Time { return at })
	require.NoError(t, err)

	w.Display(model.Price{
		Product: model.Bond{CUSIP: "91282CJL6"},
		Mid:     100.0,
		Spread:  1.0 / 128,
	})
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-01 09:30:00.125,91282CJL6,99-317,100-001\n", string(data))
}

func TestPositionWriterRowLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.txt")
	at := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	w, err := NewPositionWriter(path, func() time.Time { return at })
	require.NoError(t, err)

	pos := model.NewPosition(model.Bond{CUSIP: "91282CJL6"})
	pos.Add("TRSY1", 100)
	pos.Add("TRSY2", -40)
	w.Write(pos)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"2024-03-01 09:30:00.000,91282CJL6,TRSY1,100,TRSY2,-40,TRSY3,0,AGGREGATE,60\n",
		string(data))
}
