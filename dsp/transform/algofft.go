package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFT is a Backend over a precomputed algo-fft plan.
type AlgoFFT struct {
	plan *algofft.Plan[complex128]
	n    int
}

// NewAlgoFFT plans an n-point transform. Sizes the planner rejects are
// reported as ErrInvalidSize.
func NewAlgoFFT(n int) (*AlgoFFT, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algofft plan %d: %w", ErrInvalidSize, n, err)
	}

	return &AlgoFFT{plan: plan, n: n}, nil
}

// Len returns the transform size.
func (a *AlgoFFT) Len() int { return a.n }

// Forward computes the forward transform of src into dst.
func (a *AlgoFFT) Forward(dst, src []complex128) error {
	if err := validateBuffers(a.n, dst, src); err != nil {
		return err
	}
	return a.plan.Forward(dst, src)
}
