package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
)

type priceRecorder struct {
	keyed.NopListener[model.Price]
	prices []model.Price
}

func (r *priceRecorder) OnAdd(p model.Price) {
	r.prices = append(r.prices, p)
}

func TestIngestNotifiesAdd(t *testing.T) {
	svc := NewService()
	rec := &priceRecorder{}
	svc.AddListener(rec)

	price := model.Price{Product: model.Bond{CUSIP: "91282CJL6"}, Mid: 99.5, Spread: 1.0 / 128}
	svc.Ingest(price)

	require.Len(t, rec.prices, 1)
	assert.Equal(t, price, rec.prices[0])
	assert.Equal(t, price, svc.Get("91282CJL6"))
}

func TestGetConjuresDefaultForUnknownCUSIP(t *testing.T) {
	svc := NewService()
	p := svc.Get("912810TV0")
	assert.Equal(t, "912810TV0", p.Product.CUSIP)
	assert.Zero(t, p.Mid)
}
