package gui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/joripage/bonddesk-dev/pkg/model"
)

type fakeSink struct {
	prices []model.Price
}

func (s *fakeSink) Display(p model.Price) {
	s.prices = append(s.prices, p)
}

type fakeClock struct {
	at time.Time
}

func (c *fakeClock) now() time.Time {
	return c.at
}

func (c *fakeClock) advance(d time.Duration) {
	c.at = c.at.Add(d)
}

func TestThrottleEmitsAtMostOncePerInterval(t *testing.T) {
	sink := &fakeSink{}
	clock := &fakeClock{at: time.Unix(1700000000, 0)}
	gate := NewThrottle(NewService(sink), 300*time.Millisecond, 100, clock.now)

	price := model.Price{Product: model.Bond{CUSIP: "91282CJL6"}, Mid: 100}
	for i := 0; i < 5; i++ {
		gate.OnAdd(price)
		clock.advance(200 * time.Microsecond)
	}

	assert.Len(t, sink.prices, 1)
}

func TestThrottleEmitsAgainAfterInterval(t *testing.T) {
	sink := &fakeSink{}
	clock := &fakeClock{at: time.Unix(1700000000, 0)}
	gate := NewThrottle(NewService(sink), 300*time.Millisecond, 100, clock.now)

	price := model.Price{Product: model.Bond{CUSIP: "91282CJL6"}, Mid: 100}
	gate.OnAdd(price)
	clock.advance(300 * time.Millisecond)
	gate.OnAdd(price)

	assert.Len(t, sink.prices, 2)
}

func TestThrottleLifetimeCap(t *testing.T) {
	sink := &fakeSink{}
	clock := &fakeClock{at: time.Unix(1700000000, 0)}
	gate := NewThrottle(NewService(sink), time.Millisecond, 3, clock.now)

	price := model.Price{Product: model.Bond{CUSIP: "91282CJL6"}, Mid: 100}
	for i := 0; i < 10; i++ {
		gate.OnAdd(price)
		clock.advance(time.Second)
	}

	assert.Len(t, sink.prices, 3)
}
