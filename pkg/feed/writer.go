package feed

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/joripage/bonddesk-dev/pkg/bondprice"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/risk"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// positionBooks is the column order of the position capture file.
var positionBooks = []string{"TRSY1", "TRSY2", "TRSY3"}

// lineWriter appends timestamped comma-delimited rows to one capture
// file. The clock is injectable for deterministic output in tests.
type lineWriter struct {
	f   *os.File
	now func() time.Time
	log *zap.SugaredLogger
}

func newLineWriter(path string, now func() time.Time) (*lineWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open capture file: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &lineWriter{f: f, now: now, log: zap.S().With("capture", path)}, nil
}

func (w *lineWriter) writeRow(fields ...string) {
	row := w.now().Format(timestampLayout) + "," + strings.Join(fields, ",")
	if _, err := fmt.Fprintln(w.f, row); err != nil {
		w.log.Errorw("write failed", "error", err)
	}
}

func (w *lineWriter) Close() error {
	return w.f.Close()
}

// PriceWriter is the GUI display sink: ts, cusip, bid, offer.
type PriceWriter struct {
	*lineWriter
}

func NewPriceWriter(path string, now func() time.Time) (*PriceWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &PriceWriter{lineWriter: lw}, nil
}

func (w *PriceWriter) Display(p model.Price) {
	w.writeRow(p.Product.CUSIP, bondprice.Encode(p.Bid()), bondprice.Encode(p.Offer()))
}

// PositionWriter captures ledgers: ts, cusip, then book/quantity pairs
// and the aggregate.
type PositionWriter struct {
	*lineWriter
}

func NewPositionWriter(path string, now func() time.Time) (*PositionWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &PositionWriter{lineWriter: lw}, nil
}

func (w *PositionWriter) Write(p *model.Position) {
	fields := []string{p.Product.CUSIP}
	for _, book := range positionBooks {
		fields = append(fields, book, fmt.Sprintf("%d", p.Quantity(book)))
	}
	fields = append(fields, "AGGREGATE", fmt.Sprintf("%d", p.Aggregate()))
	w.writeRow(fields...)
}

// RiskWriter captures per-instrument PV01 records and, after each one,
// pulls the instrument's sector bucket for a fresh weighted row.
type RiskWriter struct {
	*lineWriter
	svc *risk.Service
}

func NewRiskWriter(path string, svc *risk.Service, now func() time.Time) (*RiskWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &RiskWriter{lineWriter: lw, svc: svc}, nil
}

func (w *RiskWriter) Write(pv *model.PV01) {
	w.writeRow(pv.Product.CUSIP, fmt.Sprintf("%g", pv.Value), fmt.Sprintf("%d", pv.Quantity))
	sector, ok := w.svc.BucketOf(pv.Product.CUSIP)
	if !ok {
		return
	}
	bucket := w.svc.RecomputeBucket(sector)
	w.writeRow(bucket.Sector.Name, fmt.Sprintf("%g", bucket.Value), fmt.Sprintf("%d", bucket.Quantity))
}

// ExecutionWriter captures routed orders: ts, cusip, side, orderId,
// orderType, price, visible, hidden, isChild.
type ExecutionWriter struct {
	*lineWriter
}

func NewExecutionWriter(path string, now func() time.Time) (*ExecutionWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &ExecutionWriter{lineWriter: lw}, nil
}

func (w *ExecutionWriter) Write(o model.ExecutionOrder) {
	isChild := "NO"
	if o.IsChildOrder {
		isChild = "YES"
	}
	w.writeRow(o.Product.CUSIP, string(o.Side), o.OrderID, string(o.Type),
		bondprice.Encode(o.Price),
		fmt.Sprintf("%d", o.VisibleQty), fmt.Sprintf("%d", o.HiddenQty), isChild)
}

// StreamingWriter captures published quotes, one row per side.
type StreamingWriter struct {
	*lineWriter
}

func NewStreamingWriter(path string, now func() time.Time) (*StreamingWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &StreamingWriter{lineWriter: lw}, nil
}

func (w *StreamingWriter) Write(s model.PriceStream) {
	for _, order := range []model.PriceStreamOrder{s.Bid, s.Offer} {
		w.writeRow(s.Product.CUSIP, string(order.Side), bondprice.Encode(order.Price),
			fmt.Sprintf("%d", order.VisibleQty), fmt.Sprintf("%d", order.HiddenQty))
	}
}

// InquiryWriter captures inquiry transitions: ts, inquiryId, cusip,
// side, quantity, price, state.
type InquiryWriter struct {
	*lineWriter
}

func NewInquiryWriter(path string, now func() time.Time) (*InquiryWriter, error) {
	lw, err := newLineWriter(path, now)
	if err != nil {
		return nil, err
	}
	return &InquiryWriter{lineWriter: lw}, nil
}

func (w *InquiryWriter) Write(i model.Inquiry) {
	w.writeRow(i.InquiryID, i.Product.CUSIP, string(i.Side),
		fmt.Sprintf("%d", i.Quantity), bondprice.Encode(i.Price), string(i.State))
}
