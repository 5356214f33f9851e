package model

type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// Trade is a booked fill against a particular book.
type Trade struct {
	Product  Bond
	TradeID  string
	Price    float64
	Book     string
	Quantity int64
	Side     TradeSide
}

// SignedQuantity is the position impact of the trade: negative for sells.
func (t Trade) SignedQuantity() int64 {
	if t.Side == TradeSideSell {
		return -t.Quantity
	}
	return t.Quantity
}
