package asgram

import (
	"github.com/cwbudde/algo-asgram/dsp/transform"
	"github.com/cwbudde/algo-asgram/dsp/window"
)

const (
	// DefaultSmoothing is the per-frame decay of the running power average.
	// 0.95 gives a time constant of about 20 frames.
	DefaultSmoothing = 0.95
	// DefaultFloorDB is the lowest power reported, in dB. The spectrum starts
	// at this level and non-positive powers are shown at it.
	DefaultFloorDB = -100.0
	// DefaultWindow weights each frame before the transform.
	DefaultWindow = window.TypeHamming
)

// Option configures an Estimator.
type Option func(*config)

type config struct {
	window     window.Type
	smoothing  float64
	floorDB    float64
	scale      Scale
	palette    Palette
	backend    transform.Factory
	hop        int
	sampleRate float64
}

func defaultConfig() config {
	return config{
		window:    DefaultWindow,
		smoothing: DefaultSmoothing,
		floorDB:   DefaultFloorDB,
		scale:     DefaultScale(),
		palette:   DefaultPalette,
		backend:   transform.Default(),
	}
}

// WithWindow selects the frame window. The periodic form is used.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithSmoothing sets the per-frame decay alpha of the running average,
// avg = alpha*avg + (1-alpha)*power. alpha must be in (0, 1).
func WithSmoothing(alpha float64) Option {
	return func(c *config) {
		c.smoothing = alpha
	}
}

// WithFloorDB sets the noise floor in dB.
func WithFloorDB(db float64) Option {
	return func(c *config) {
		c.floorDB = db
	}
}

// WithScale sets the initial display scale.
func WithScale(s Scale) Option {
	return func(c *config) {
		c.scale = s
	}
}

// WithPalette sets the display symbols.
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithBackend selects the transform implementation. A nil factory keeps the
// default backend.
func WithBackend(f transform.Factory) Option {
	return func(c *config) {
		if f != nil {
			c.backend = f
		}
	}
}

// WithHop makes consecutive frames start hop samples apart instead of N.
// hop must be in [1, N]; values below N give overlapping frames.
func WithHop(hop int) Option {
	return func(c *config) {
		c.hop = hop
	}
}

// WithSampleRate enables Line.PeakHz. Non-positive rates are ignored.
func WithSampleRate(hz float64) Option {
	return func(c *config) {
		if hz > 0 {
			c.sampleRate = hz
		}
	}
}
