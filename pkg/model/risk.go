package model

// PV01 is the risk record of one bond: sensitivity per unit and the
// running quantity it applies to.
type PV01 struct {
	Product  Bond
	Value    float64
	Quantity int64
}

// BucketedSector is a named group of bonds used only as a risk
// aggregation key.
type BucketedSector struct {
	Name     string
	Products []Bond
}

// SectorPV01 is the quantity-weighted risk record of a sector bucket.
type SectorPV01 struct {
	Sector   BucketedSector
	Value    float64
	Quantity int64
}
