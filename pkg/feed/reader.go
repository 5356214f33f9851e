// Package feed holds the file-based connectors: inbound readers that
// replay delimited feeds into the services, and outbound writers that
// append capture lines. Malformed or unknown-instrument rows are logged
// and skipped; a bad row never stops a replay.
package feed

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/bondprice"
	"github.com/joripage/bonddesk-dev/pkg/booking"
	"github.com/joripage/bonddesk-dev/pkg/inquiry"
	"github.com/joripage/bonddesk-dev/pkg/marketdata"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/pricing"
	"github.com/joripage/bonddesk-dev/pkg/refdata"
)

// bookDepth is the number of levels per side in one market-data run.
const bookDepth = 5

func replayLines(path string, handle func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open feed: %w", err)
	}
	defer f.Close()

	log := zap.S().With("feed", path)
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := handle(line); err != nil {
			log.Warnw("skipping row", "line", lineNo, "error", err)
		}
	}
	return scanner.Err()
}

func parseQuantity(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("quantity %q: %w", s, err)
	}
	return d.IntPart(), nil
}

// ReplayPrices feeds `cusip,bid,ask` rows (fractional prices) into the
// pricing service as mid/spread pairs.
func ReplayPrices(path string, svc *pricing.Service) error {
	return replayLines(path, func(line string) error {
		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return fmt.Errorf("want 3 fields, got %d", len(fields))
		}
		bond, err := refdata.Find(fields[0])
		if err != nil {
			return err
		}
		bid, err := bondprice.Decode(fields[1])
		if err != nil {
			return err
		}
		ask, err := bondprice.Decode(fields[2])
		if err != nil {
			return err
		}
		svc.Ingest(model.Price{
			Product: bond,
			Mid:     (bid + ask) / 2,
			Spread:  ask - bid,
		})
		return nil
	})
}

// ReplayTrades feeds `cusip,tradeId,price,book,quantity,side` rows into
// the booking service.
func ReplayTrades(path string, svc *booking.Service) error {
	return replayLines(path, func(line string) error {
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return fmt.Errorf("want 6 fields, got %d", len(fields))
		}
		bond, err := refdata.Find(fields[0])
		if err != nil {
			return err
		}
		price, err := bondprice.Decode(fields[2])
		if err != nil {
			return err
		}
		qty, err := parseQuantity(fields[4])
		if err != nil {
			return err
		}
		side := model.TradeSide(fields[5])
		if side != model.TradeSideBuy && side != model.TradeSideSell {
			return fmt.Errorf("bad trade side %q", fields[5])
		}
		svc.BookTrade(model.Trade{
			Product:  bond,
			TradeID:  fields[1],
			Price:    price,
			Book:     fields[3],
			Quantity: qty,
			Side:     side,
		})
		return nil
	})
}

// ReplayMarketData feeds `cusip,price,quantity,side` rows into the
// market-data service, grouping runs of ten rows (five bids then five
// offers) into one order book. Every row advances the run boundary; a
// malformed row poisons its run, which is then not ingested.
func ReplayMarketData(path string, svc *marketdata.Service) error {
	var book model.OrderBook
	var rows int
	var dirty bool

	endOfRow := func(err error) error {
		rows++
		if err != nil {
			dirty = true
		}
		if rows == 2*bookDepth {
			if !dirty {
				svc.Ingest(book)
			}
			book = model.OrderBook{}
			rows = 0
			dirty = false
		}
		return err
	}

	return replayLines(path, func(line string) error {
		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return endOfRow(fmt.Errorf("want 4 fields, got %d", len(fields)))
		}
		bond, err := refdata.Find(fields[0])
		if err != nil {
			return endOfRow(err)
		}
		price, err := bondprice.Decode(fields[1])
		if err != nil {
			return endOfRow(err)
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return endOfRow(err)
		}

		if rows == 0 {
			book.Product = bond
		}
		order := model.Order{Price: price, Quantity: qty}
		switch model.PricingSide(fields[3]) {
		case model.PricingSideBid:
			order.Side = model.PricingSideBid
			book.Bids = append(book.Bids, order)
		case model.PricingSideOffer:
			order.Side = model.PricingSideOffer
			book.Offers = append(book.Offers, order)
		default:
			return endOfRow(fmt.Errorf("bad side %q", fields[3]))
		}
		return endOfRow(nil)
	})
}

// ReplayInquiries feeds `inquiryId,cusip,side,quantity,price,state` rows
// into the inquiry service.
func ReplayInquiries(path string, svc *inquiry.Service) error {
	return replayLines(path, func(line string) error {
		fields := strings.Split(line, ",")
		if len(fields) != 6 {
			return fmt.Errorf("want 6 fields, got %d", len(fields))
		}
		bond, err := refdata.Find(fields[1])
		if err != nil {
			return err
		}
		side := model.TradeSide(fields[2])
		if side != model.TradeSideBuy && side != model.TradeSideSell {
			return fmt.Errorf("bad inquiry side %q", fields[2])
		}
		qty, err := parseQuantity(fields[3])
		if err != nil {
			return err
		}
		price, err := bondprice.Decode(fields[4])
		if err != nil {
			return err
		}
		state := model.InquiryState(fields[5])
		switch state {
		case model.InquiryStateReceived, model.InquiryStateQuoted,
			model.InquiryStateDone, model.InquiryStateRejected,
			model.InquiryStateCustomerRejected:
		default:
			return fmt.Errorf("bad inquiry state %q", fields[5])
		}
		svc.Ingest(model.Inquiry{
			InquiryID: fields[0],
			Product:   bond,
			Side:      side,
			Quantity:  qty,
			Price:     price,
			State:     state,
		})
		return nil
	})
}
