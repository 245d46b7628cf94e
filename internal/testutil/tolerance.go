package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-asgram/dsp/core"
)

// RequireNear fails t if got and want differ by more than eps.
func RequireNear(t *testing.T, name string, got, want, eps float64) {
	t.Helper()
	if math.Abs(got-want) > eps {
		t.Fatalf("%s = %v, want %v (tolerance %v)", name, got, want, eps)
	}
}

// RequireFinite fails t at the first NaN or infinite element of data.
func RequireFinite(t *testing.T, name string, data []float64) {
	t.Helper()
	for i, v := range data {
		if !core.IsFinite(v) {
			t.Fatalf("%s[%d] = %v, want a finite value", name, i, v)
		}
	}
}

// MaxIndex returns the index of the largest element, or -1 for an empty slice.
func MaxIndex(data []float64) int {
	idx := -1
	best := math.Inf(-1)
	for i, v := range data {
		if v > best {
			best = v
			idx = i
		}
	}
	return idx
}
