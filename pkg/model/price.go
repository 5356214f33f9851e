package model

// Price is the latest two-way price for a bond, stored as mid and
// bid-offer spread in price units.
type Price struct {
	Product Bond
	Mid     float64
	Spread  float64
}

func (p Price) Bid() float64 {
	return p.Mid - p.Spread/2
}

func (p Price) Offer() float64 {
	return p.Mid + p.Spread/2
}
