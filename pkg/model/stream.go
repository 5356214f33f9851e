package model

// PriceStreamOrder is one side of a streamed two-way quote with an
// iceberg-style visible/hidden size split.
type PriceStreamOrder struct {
	Price      float64
	VisibleQty int64
	HiddenQty  int64
	Side       PricingSide
}

// PriceStream is a two-sided streaming quote for one bond.
type PriceStream struct {
	Product Bond
	Bid     PriceStreamOrder
	Offer   PriceStreamOrder
}

// AlgoStream wraps a price stream produced by the streaming algorithm
// before publication.
type AlgoStream struct {
	Stream PriceStream
}
