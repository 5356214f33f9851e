package model

type PricingSide string

const (
	PricingSideBid   PricingSide = "BID"
	PricingSideOffer PricingSide = "OFFER"
)

// Order is a single resting level in a market-data book.
type Order struct {
	Price    float64
	Quantity int64
	Side     PricingSide
}

// OrderBook holds the bid and offer stacks for one bond, in feed order.
type OrderBook struct {
	Product Bond
	Bids    []Order
	Offers  []Order
}

// BidOffer is the top of the book on both sides.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// BestBidOffer scans both stacks for the highest bid and lowest offer.
// Ties keep the first occurrence in stack order. Empty stacks yield a
// zero Order on that side.
func (b OrderBook) BestBidOffer() BidOffer {
	return BidOffer{
		Bid:   bestOrder(b.Bids, func(candidate, best float64) bool { return candidate > best }),
		Offer: bestOrder(b.Offers, func(candidate, best float64) bool { return candidate < best }),
	}
}

func bestOrder(stack []Order, better func(candidate, best float64) bool) Order {
	if len(stack) == 0 {
		return Order{}
	}
	best := stack[0]
	for _, o := range stack[1:] {
		if better(o.Price, best.Price) {
			best = o
		}
	}
	return best
}
