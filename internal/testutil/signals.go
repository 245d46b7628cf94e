package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
)

// ComplexTone returns samples start..start+length-1 of the complex
// exponential amplitude*exp(2*pi*i*freq*k), freq in cycles per sample.
// Consecutive calls with advancing start form one phase-continuous tone.
func ComplexTone(freq, amplitude float64, start, length int) []complex128 {
	out := make([]complex128, length)
	for i := range out {
		phase := 2 * math.Pi * freq * float64(start+i)
		out[i] = complex(amplitude, 0) * cmplx.Exp(complex(0, phase))
	}
	return out
}

// ComplexNoise generates circular Gaussian noise with per-sample standard
// deviation std and a fixed seed for reproducibility.
func ComplexNoise(seed int64, std float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	scale := std * math.Sqrt2 / 2
	for i := range out {
		out[i] = complex(rng.NormFloat64()*scale, rng.NormFloat64()*scale)
	}
	return out
}

// Add returns the sample-wise sum of a and b, truncated to the shorter input.
func Add(a, b []complex128) []complex128 {
	out := make([]complex128, min(len(a), len(b)))
	for i := range out {
		out[i] = a[i] + b[i]
	}
	return out
}

// Zeros returns length zero-valued samples.
func Zeros(length int) []complex128 {
	return make([]complex128, length)
}
