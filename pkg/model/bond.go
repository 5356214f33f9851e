package model

import "time"

// Bond is the immutable identity of a traded instrument. The CUSIP is the
// primary key for every keyed service in the pipeline.
type Bond struct {
	CUSIP    string
	Ticker   string
	Coupon   float64
	Maturity time.Time
}
