package model

// Position is the signed quantity ledger of one bond across books.
// The aggregate is always derived from the per-book entries, never stored.
type Position struct {
	Product Bond
	books   map[string]int64
}

func NewPosition(product Bond) *Position {
	return &Position{
		Product: product,
		books:   make(map[string]int64),
	}
}

// Add applies a signed quantity to one book.
func (p *Position) Add(book string, quantity int64) {
	p.books[book] += quantity
}

// Quantity returns the signed position held in one book.
func (p *Position) Quantity(book string) int64 {
	return p.books[book]
}

// Aggregate sums the per-book quantities.
func (p *Position) Aggregate() int64 {
	var total int64
	for _, q := range p.books {
		total += q
	}
	return total
}
