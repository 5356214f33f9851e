// Package risk maintains PV01 exposure per instrument and, on demand,
// the quantity-weighted PV01 of each curve sector bucket.
package risk

import (
	"github.com/joripage/bonddesk-dev/pkg/keyed"
	"github.com/joripage/bonddesk-dev/pkg/model"
	"github.com/joripage/bonddesk-dev/pkg/refdata"
)

type Service struct {
	instruments *keyed.Store[*model.PV01]
	buckets     *keyed.Store[*model.SectorPV01]
}

// NewService seeds a zero-quantity PV01 record for every bond in the
// reference universe and a zero record for every sector bucket.
func NewService() *Service {
	svc := &Service{
		instruments: keyed.NewStore("risk",
			func(p *model.PV01) string { return p.Product.CUSIP },
			func(key string) *model.PV01 {
				return &model.PV01{Product: model.Bond{CUSIP: key}}
			}),
		buckets: keyed.NewStore("risk.bucket",
			func(s *model.SectorPV01) string { return s.Sector.Name },
			func(key string) *model.SectorPV01 {
				return &model.SectorPV01{Sector: model.BucketedSector{Name: key}}
			}),
	}
	for _, bond := range refdata.Universe() {
		svc.instruments.Put(&model.PV01{Product: bond, Value: refdata.PV01(bond.CUSIP)})
	}
	for _, sector := range refdata.Buckets() {
		sector := sector
		svc.buckets.Put(&model.SectorPV01{Sector: sector})
	}
	return svc
}

// ApplyPosition folds a position's aggregate into the instrument's
// running PV01 quantity and notifies listeners with an add event.
func (s *Service) ApplyPosition(pos *model.Position) {
	pv := s.instruments.Get(pos.Product.CUSIP)
	pv.Quantity += pos.Aggregate()
	s.instruments.Notify(keyed.EventAdd, pv)
}

// Get returns the per-instrument PV01 record for a CUSIP.
func (s *Service) Get(cusip string) *model.PV01 {
	return s.instruments.Get(cusip)
}

// RecomputeBucket rebuilds a sector's record from its constituents:
// PV01 is the quantity-weighted average, 0 when the sector holds nothing,
// and quantity is the total. Callers pull this after each instrument
// update; nothing pushes it.
func (s *Service) RecomputeBucket(sectorName string) *model.SectorPV01 {
	bucket := s.buckets.Get(sectorName)

	var weighted float64
	var total int64
	for _, bond := range bucket.Sector.Products {
		pv := s.instruments.Get(bond.CUSIP)
		weighted += pv.Value * float64(pv.Quantity)
		total += pv.Quantity
	}
	bucket.Quantity = total
	if total == 0 {
		bucket.Value = 0
	} else {
		bucket.Value = weighted / float64(total)
	}
	s.buckets.Put(bucket)
	return bucket
}

// BucketOf returns the sector name a bond rolls up into.
func (s *Service) BucketOf(cusip string) (string, bool) {
	return refdata.BucketOf(cusip)
}

func (s *Service) AddListener(l keyed.Listener[*model.PV01]) {
	s.instruments.AddListener(l)
}

func (s *Service) SetJournal(j *keyed.Journal) {
	s.instruments.SetJournal(j)
	s.buckets.SetJournal(j)
}

// PositionListener folds position updates into the risk ledger.
type PositionListener struct {
	keyed.NopListener[*model.Position]
	svc *Service
}

func NewPositionListener(svc *Service) *PositionListener {
	return &PositionListener{svc: svc}
}

func (l *PositionListener) OnUpdate(p *model.Position) {
	l.svc.ApplyPosition(p)
}
