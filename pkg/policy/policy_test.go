package policy

import "testing"

func TestCounter(t *testing.T) {
	c := NewCounter()
	for want := int64(0); want < 5; want++ {
		if got := c.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestRotationWraps(t *testing.T) {
	r := NewRotation(3)
	want := []int{0, 1, 2, 0, 1, 2, 0}
	for i, w := range want {
		if got := r.Next(); got != w {
			t.Fatalf("call %d: Next() = %d, want %d", i, got, w)
		}
	}
}
