package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Smoother is a per-bin exponential moving average over successive power
// spectra:
//
//	avg[i] = Alpha*avg[i] + (1-Alpha)*p[i]
//
// Alpha is a decay per update (per frame), not per second: the estimate
// settles with a time constant of roughly 1/(1-Alpha) frames. The first
// update after construction or Fill seeds the average with the new spectrum.
// Seeding stands in for running the formula from a floor-valued average,
// which would take about 1/(1-Alpha) frames to climb out of the floor.
//
// Powers that overflow to +Inf are held at math.MaxFloat64.
type Smoother struct {
	alpha   float64
	avg     []float64
	scratch []float64
	seeded  bool
}

// NewSmoother returns a Smoother over n bins, each starting at initial.
// alpha must lie in [0, 1).
func NewSmoother(n int, alpha, initial float64) (*Smoother, error) {
	if n <= 0 {
		return nil, fmt.Errorf("smoother size must be > 0: %d", n)
	}
	if !(alpha >= 0 && alpha < 1) {
		return nil, fmt.Errorf("smoother alpha must be in [0,1): %v", alpha)
	}

	s := &Smoother{
		alpha:   alpha,
		avg:     make([]float64, n),
		scratch: make([]float64, n),
	}
	s.Fill(initial)

	return s, nil
}

// Alpha returns the per-frame decay.
func (s *Smoother) Alpha() float64 { return s.alpha }

// Len returns the number of bins.
func (s *Smoother) Len() int { return len(s.avg) }

// Update merges p into the average. p must have Len() elements. NaN and
// negative inputs are treated as zero power, +Inf as math.MaxFloat64.
func (s *Smoother) Update(p []float64) {
	if len(p) != len(s.avg) {
		panic(fmt.Sprintf("spectrum: smoother update length %d, want %d", len(p), len(s.avg)))
	}

	for i, v := range p {
		s.scratch[i] = sanitize(v)
	}

	if !s.seeded {
		copy(s.avg, s.scratch)
		s.seeded = true
		return
	}

	vecmath.ScaleBlock(s.avg, s.avg, s.alpha)
	vecmath.ScaleBlock(s.scratch, s.scratch, 1-s.alpha)
	vecmath.AddBlockInPlace(s.avg, s.scratch)

	for i, v := range s.avg {
		if math.IsInf(v, 1) {
			s.avg[i] = math.MaxFloat64
		}
	}
}

func sanitize(p float64) float64 {
	switch {
	case !(p >= 0):
		return 0
	case math.IsInf(p, 1):
		return math.MaxFloat64
	default:
		return p
	}
}

// Values returns the current average. The slice is owned by the Smoother
// and changes on the next Update.
func (s *Smoother) Values() []float64 { return s.avg }

// Fill sets every bin to v and clears the seeded state.
func (s *Smoother) Fill(v float64) {
	for i := range s.avg {
		s.avg[i] = v
	}
	s.seeded = false
}
