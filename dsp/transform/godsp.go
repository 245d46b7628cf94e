package transform

import "github.com/mjibson/go-dsp/fft"

// GoDSP is a Backend over go-dsp's FFT, which handles any positive size
// (Bluestein for non powers of two). go-dsp allocates its output, so Forward
// copies it into dst.
type GoDSP struct {
	n int
}

// NewGoDSP returns an n-point transform.
func NewGoDSP(n int) (*GoDSP, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &GoDSP{n: n}, nil
}

// Len returns the transform size.
func (g *GoDSP) Len() int { return g.n }

// Forward computes the forward transform of src into dst.
func (g *GoDSP) Forward(dst, src []complex128) error {
	if err := validateBuffers(g.n, dst, src); err != nil {
		return err
	}
	copy(dst, fft.FFT(src))
	return nil
}
