package asgram

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-asgram/dsp/core"
	"github.com/cwbudde/algo-asgram/dsp/transform"
)

var (
	// ErrInvalidSize reports a transform size that is not positive or that
	// the transform backend cannot plan. It matches transform.ErrInvalidSize.
	ErrInvalidSize = transform.ErrInvalidSize
	// ErrInvalidScale reports a display divisor that is not a positive finite
	// number, or a non-finite reference level.
	ErrInvalidScale = errors.New("invalid display scale")
	// ErrInvalidSmoothing reports a smoothing factor outside (0, 1).
	ErrInvalidSmoothing = errors.New("invalid smoothing factor")
	// ErrInvalidHop reports a frame hop outside [1, N].
	ErrInvalidHop = errors.New("invalid frame hop")
	// ErrInvalidPalette reports a palette with fewer than two symbols or
	// with characters that are not printable ASCII.
	ErrInvalidPalette = errors.New("invalid palette")
	// ErrClosed is returned by setters called after Close.
	ErrClosed = errors.New("estimator closed")
)

func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: must be > 0: %d", ErrInvalidSize, n)
	}
	return nil
}

func validateSmoothing(alpha float64) error {
	if !(alpha > 0 && alpha < 1) {
		return fmt.Errorf("%w: must be in (0,1): %v", ErrInvalidSmoothing, alpha)
	}
	return nil
}

func validateHop(hop, n int) error {
	if hop < 1 || hop > n {
		return fmt.Errorf("%w: must be in [1,%d]: %d", ErrInvalidHop, n, hop)
	}
	return nil
}

func validateFloor(db float64) error {
	if !core.IsFinite(db) {
		return fmt.Errorf("asgram floor must be finite: %v", db)
	}
	return nil
}
