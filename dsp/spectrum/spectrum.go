package spectrum

import "github.com/cwbudde/algo-vecmath"

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst from
// transform bins split into real and imaginary parts. All three slices must
// have the same length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}

// ShiftSource returns the unshifted transform bin shown at position i of an
// n-bin zero-centred spectrum. Position i corresponds to normalized
// frequency (i - n/2)/n.
func ShiftSource(i, n int) int {
	return (i + n - n/2) % n
}

// Shift reorders transform bins so that zero frequency sits at index
// len(src)/2, writing into dst. dst and src must have equal length and must
// not overlap.
func Shift(dst, src []float64) {
	n := len(src)
	half := n - n/2
	copy(dst, src[half:])
	copy(dst[n-half:], src[:half])
}

// NormalizedFrequency returns the frequency, as a fraction of the sample
// rate in [-0.5, 0.5), of position i in an n-bin zero-centred spectrum.
func NormalizedFrequency(i, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(i-n/2) / float64(n)
}

// Peak returns the index and value of the largest element. Ties resolve to
// the lowest index; an empty slice yields (-1, 0).
func Peak(values []float64) (int, float64) {
	if len(values) == 0 {
		return -1, 0
	}

	idx := 0
	best := values[0]
	for i := 1; i < len(values); i++ {
		if values[i] > best {
			best = values[i]
			idx = i
		}
	}

	return idx, best
}
