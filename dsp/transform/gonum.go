package transform

import "gonum.org/v1/gonum/dsp/fourier"

// Gonum is a Backend over gonum's mixed-radix complex FFT. It accepts any
// positive size.
type Gonum struct {
	fft *fourier.CmplxFFT
	n   int
}

// NewGonum plans an n-point transform.
func NewGonum(n int) (*Gonum, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}
	return &Gonum{fft: fourier.NewCmplxFFT(n), n: n}, nil
}

// Len returns the transform size.
func (g *Gonum) Len() int { return g.n }

// Forward computes the forward transform of src into dst.
func (g *Gonum) Forward(dst, src []complex128) error {
	if err := validateBuffers(g.n, dst, src); err != nil {
		return err
	}
	g.fft.Coefficients(dst, src)
	return nil
}
