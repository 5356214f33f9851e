// Package policy holds the small injectable pieces of strategy state the
// desk services rotate on: monotonic counters for id derivation and
// side/size alternation, and wrapping rotations for round-robin routing.
package policy

// Counter hands out a monotonically increasing sequence, starting at 0.
// Strategies derive order ids from the raw value and alternate behavior
// on its parity.
type Counter struct {
	n int64
}

func NewCounter() *Counter {
	return &Counter{}
}

// Next returns the current value and advances.
func (c *Counter) Next() int64 {
	v := c.n
	c.n++
	return v
}

// Rotation cycles through slots 0..size-1.
type Rotation struct {
	size int
	next int
}

func NewRotation(size int) *Rotation {
	return &Rotation{size: size}
}

// Next returns the current slot and advances, wrapping at size.
func (r *Rotation) Next() int {
	v := r.next
	r.next = (r.next + 1) % r.size
	return v
}
