// Package bondprice converts between decimal bond prices and the
// fractional 32nds notation used on US Treasury feeds, e.g. "99-16+"
// for 99 + 16/32 + 4/256.
package bondprice

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tick is the finest representable price increment.
const Tick = 1.0 / 256.0

var ErrInvalidPrice = errors.New("invalid fractional price")

// Decode parses "NNN-DDE": whole number, two-digit 32nds, and an
// eighths-of-a-32nd character where '+' stands for 4.
func Decode(s string) (float64, error) {
	s = strings.TrimSpace(s)
	dash := strings.IndexByte(s, '-')
	if dash <= 0 || len(s) != dash+4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	whole, err := strconv.Atoi(s[:dash])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	thirtySeconds, err := strconv.Atoi(s[dash+1 : dash+3])
	if err != nil || thirtySeconds > 31 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	var eighths int
	switch c := s[dash+3]; {
	case c == '+':
		eighths = 4
	case c >= '0' && c <= '7':
		eighths = int(c - '0')
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	return float64(whole) + float64(thirtySeconds)/32 + float64(eighths)/256, nil
}

// Encode renders a price in fractional notation. It is the exact inverse
// of Decode for every price on the 1/256 grid; an eighths value of 4
// renders as '+'.
func Encode(price float64) string {
	whole := int(math.Floor(price))
	ticks := int(math.Round((price - float64(whole)) * 256))
	if ticks == 256 {
		// rounding carried into the next whole point
		whole++
		ticks = 0
	}

	thirtySeconds := ticks / 8
	eighths := ticks % 8

	eighthsChar := strconv.Itoa(eighths)
	if eighths == 4 {
		eighthsChar = "+"
	}
	return fmt.Sprintf("%d-%02d%s", whole, thirtySeconds, eighthsChar)
}
