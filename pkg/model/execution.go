package model

type OrderType string

const (
	OrderTypeFOK    OrderType = "FOK"
	OrderTypeIOC    OrderType = "IOC"
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
	OrderTypeStop   OrderType = "STOP"
)

type Venue string

const (
	VenueBrokerTec Venue = "BROKERTEC"
	VenueESpeed    Venue = "ESPEED"
	VenueCME       Venue = "CME"
)

// ExecutionOrder is an order sent to the market. Venue is empty until the
// execution service routes the order.
type ExecutionOrder struct {
	Product       Bond
	Side          PricingSide
	OrderID       string
	Type          OrderType
	Price         float64
	VisibleQty    int64
	HiddenQty     int64
	ParentOrderID string
	IsChildOrder  bool
	Venue         Venue
}

func (o ExecutionOrder) TotalQty() int64 {
	return o.VisibleQty + o.HiddenQty
}

// AlgoExecution wraps an execution order produced by the spread-crossing
// strategy before it is routed to a venue.
type AlgoExecution struct {
	Order ExecutionOrder
}
