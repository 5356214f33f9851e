package refdata

import "testing"

func TestFind(t *testing.T) {
	bond, err := Find("91282CJJ1")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if bond.Ticker != "US10Y" {
		t.Errorf("expected US10Y, got %s", bond.Ticker)
	}

	if _, err := Find("000000000"); err != ErrUnknownCUSIP {
		t.Errorf("expected ErrUnknownCUSIP, got %v", err)
	}
}

func TestBucketsCoverUniverse(t *testing.T) {
	seen := map[string]bool{}
	for _, sector := range Buckets() {
		for _, b := range sector.Products {
			if seen[b.CUSIP] {
				t.Errorf("cusip %s in more than one bucket", b.CUSIP)
			}
			seen[b.CUSIP] = true
		}
	}
	for _, b := range Universe() {
		if !seen[b.CUSIP] {
			t.Errorf("cusip %s not bucketed", b.CUSIP)
		}
		if PV01(b.CUSIP) <= 0 {
			t.Errorf("cusip %s has no pv01 constant", b.CUSIP)
		}
	}
}

func TestBucketOf(t *testing.T) {
	sector, ok := BucketOf("91282CJN2")
	if !ok || sector != "Belly" {
		t.Errorf("expected Belly, got %q ok=%v", sector, ok)
	}
	if _, ok := BucketOf("000000000"); ok {
		t.Error("expected miss for unknown cusip")
	}
}
