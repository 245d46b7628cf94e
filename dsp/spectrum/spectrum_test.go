package spectrum

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestPowerFromParts(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0, 1e-3i}
	re := make([]float64, len(bins))
	im := make([]float64, len(bins))
	for i, b := range bins {
		re[i], im[i] = real(b), imag(b)
	}

	dst := make([]float64, len(bins))
	PowerFromParts(dst, re, im)

	want := []float64{25, 2, 0, 1e-6}
	if diff := cmp.Diff(want, dst, cmpopts.EquateApprox(1e-12, 0)); diff != "" {
		t.Fatalf("PowerFromParts mismatch (-want +got):\n%s", diff)
	}
}

func TestShiftCentresZeroFrequency(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 7, 8, 64} {
		src := make([]float64, n)
		for i := range src {
			src[i] = float64(i)
		}

		dst := make([]float64, n)
		Shift(dst, src)

		for i, v := range dst {
			if int(v) != ShiftSource(i, n) {
				t.Fatalf("n=%d: dst[%d] = %v, want bin %d", n, i, v, ShiftSource(i, n))
			}

			// Bin j of an n-point DFT has normalized frequency j/n, folded
			// into [-0.5, 0.5).
			f := float64(int(v)) / float64(n)
			if f >= 0.5 {
				f--
			}
			if math.Abs(f-NormalizedFrequency(i, n)) > 1e-12 {
				t.Fatalf("n=%d: position %d shows frequency %v, want %v", n, i, f, NormalizedFrequency(i, n))
			}
		}

		if n > 1 && dst[n/2] != 0 {
			t.Fatalf("n=%d: DC at position %d = %v", n, n/2, dst[n/2])
		}
	}
}

func TestNormalizedFrequencyRange(t *testing.T) {
	const n = 64

	if got := NormalizedFrequency(0, n); got != -0.5 {
		t.Fatalf("NormalizedFrequency(0) = %v, want -0.5", got)
	}
	if got := NormalizedFrequency(n/2, n); got != 0 {
		t.Fatalf("NormalizedFrequency(n/2) = %v, want 0", got)
	}
	if got := NormalizedFrequency(n-1, n); got >= 0.5 {
		t.Fatalf("NormalizedFrequency(n-1) = %v, want < 0.5", got)
	}
}

func TestPeak(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantIdx int
		wantVal float64
	}{
		{"empty", nil, -1, 0},
		{"single", []float64{2}, 0, 2},
		{"middle", []float64{1, 5, 3}, 1, 5},
		{"tie keeps first", []float64{4, 1, 4}, 0, 4},
		{"all zero", []float64{0, 0, 0}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, val := Peak(tt.values)
			if idx != tt.wantIdx || val != tt.wantVal {
				t.Fatalf("Peak() = (%d, %v), want (%d, %v)", idx, val, tt.wantIdx, tt.wantVal)
			}
		})
	}
}
