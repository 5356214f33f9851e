package model

type InquiryState string

const (
	InquiryStateReceived         InquiryState = "RECEIVED"
	InquiryStateQuoted           InquiryState = "QUOTED"
	InquiryStateDone             InquiryState = "DONE"
	InquiryStateRejected         InquiryState = "REJECTED"
	InquiryStateCustomerRejected InquiryState = "CUSTOMER_REJECTED"
)

// Inquiry is a customer quote request. Valid transitions are
// RECEIVED -> QUOTED -> DONE and RECEIVED -> REJECTED.
type Inquiry struct {
	InquiryID string
	Product   Bond
	Side      TradeSide
	Quantity  int64
	Price     float64
	State     InquiryState
}
