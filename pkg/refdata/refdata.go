// Package refdata holds the static reference universe of the desk: the
// on-the-run US Treasury bonds, their PV01-per-unit constants, and the
// curve sector buckets used for risk aggregation.
package refdata

import (
	"errors"
	"time"

	"github.com/joripage/bonddesk-dev/pkg/model"
)

var ErrUnknownCUSIP = errors.New("unknown cusip")

var universe = []model.Bond{
	{CUSIP: "91282CJL6", Ticker: "US2Y", Coupon: 0.04875, Maturity: date(2025, 11, 30)},
	{CUSIP: "91282CJK8", Ticker: "US3Y", Coupon: 0.04625, Maturity: date(2026, 11, 15)},
	{CUSIP: "91282CJN2", Ticker: "US5Y", Coupon: 0.04375, Maturity: date(2028, 11, 30)},
	{CUSIP: "91282CJM4", Ticker: "US7Y", Coupon: 0.04375, Maturity: date(2030, 11, 30)},
	{CUSIP: "91282CJJ1", Ticker: "US10Y", Coupon: 0.045, Maturity: date(2033, 11, 15)},
	{CUSIP: "912810TW8", Ticker: "US20Y", Coupon: 0.0475, Maturity: date(2043, 11, 15)},
	{CUSIP: "912810TV0", Ticker: "US30Y", Coupon: 0.0475, Maturity: date(2053, 11, 15)},
}

var pv01Table = map[string]float64{
	"91282CJL6": 0.01,
	"91282CJK8": 0.02,
	"91282CJN2": 0.03,
	"91282CJM4": 0.04,
	"91282CJJ1": 0.05,
	"912810TW8": 0.06,
	"912810TV0": 0.07,
}

// bucketNames is the fixed report order of the curve sectors.
var bucketNames = []string{"FrontEnd", "Belly", "LongEnd"}

var bucketMembers = map[string][]string{
	"FrontEnd": {"91282CJL6", "91282CJK8"},
	"Belly":    {"91282CJN2", "91282CJM4", "91282CJJ1"},
	"LongEnd":  {"912810TW8", "912810TV0"},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Universe returns the traded bonds in curve order.
func Universe() []model.Bond {
	out := make([]model.Bond, len(universe))
	copy(out, universe)
	return out
}

// Find resolves a CUSIP to its bond, or ErrUnknownCUSIP.
func Find(cusip string) (model.Bond, error) {
	for _, b := range universe {
		if b.CUSIP == cusip {
			return b, nil
		}
	}
	return model.Bond{}, ErrUnknownCUSIP
}

// PV01 returns the per-unit PV01 constant for a bond, 0 if unknown.
func PV01(cusip string) float64 {
	return pv01Table[cusip]
}

// Buckets returns the curve sectors with their constituent bonds.
func Buckets() []model.BucketedSector {
	out := make([]model.BucketedSector, 0, len(bucketNames))
	for _, name := range bucketNames {
		sector := model.BucketedSector{Name: name}
		for _, cusip := range bucketMembers[name] {
			bond, _ := Find(cusip)
			sector.Products = append(sector.Products, bond)
		}
		out = append(out, sector)
	}
	return out
}

// BucketOf returns the sector a bond belongs to.
func BucketOf(cusip string) (string, bool) {
	for _, name := range bucketNames {
		for _, member := range bucketMembers[name] {
			if member == cusip {
				return name, true
			}
		}
	}
	return "", false
}
