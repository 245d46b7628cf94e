package asgram

import (
	"fmt"
	"io"
	"sync"

	"github.com/cwbudde/algo-asgram/dsp/buffer"
	"github.com/cwbudde/algo-asgram/dsp/core"
	"github.com/cwbudde/algo-asgram/dsp/spectrum"
	"github.com/cwbudde/algo-asgram/dsp/transform"
	"github.com/cwbudde/algo-asgram/dsp/window"
)

// Estimator is a streaming power-spectrum estimator with an ASCII renderer.
//
// The transform size N is fixed at construction. All methods are safe for
// concurrent use; each call holds the estimator for time proportional to N
// (N log N for Push per completed frame).
type Estimator struct {
	mu sync.Mutex

	n          int
	windowType window.Type
	floorDB    float64
	sampleRate float64
	scale      Scale
	palette    Palette

	coeffs   []float64
	backend  transform.Backend
	framer   *buffer.Framer
	smoother *spectrum.Smoother

	re, im  []float64
	in, out []complex128
	power   []float64
	shifted []float64
	db      []float64
	symbols []byte

	dropped uint64
	closed  bool
}

// New returns an Estimator for n-point frames. It fails with ErrInvalidSize
// when n is not positive or the transform backend cannot plan n points, and
// with the matching sentinel error for any invalid option.
func New(n int, opts ...Option) (*Estimator, error) {
	if err := validateSize(n); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.hop == 0 {
		cfg.hop = n
	}

	if err := validateSmoothing(cfg.smoothing); err != nil {
		return nil, err
	}
	if err := validateHop(cfg.hop, n); err != nil {
		return nil, err
	}
	if err := validateFloor(cfg.floorDB); err != nil {
		return nil, err
	}
	if err := cfg.scale.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.palette.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := window.New(cfg.window, n, window.WithPeriodic())
	if err != nil {
		return nil, fmt.Errorf("asgram window: %w", err)
	}

	backend, err := cfg.backend(n)
	if err != nil {
		return nil, fmt.Errorf("asgram transform: %w", err)
	}
	if backend.Len() != n {
		return nil, fmt.Errorf("%w: backend planned %d points, want %d", ErrInvalidSize, backend.Len(), n)
	}

	framer, err := buffer.NewFramer(n, cfg.hop)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidHop, err)
	}

	smoother, err := spectrum.NewSmoother(n, cfg.smoothing, core.DBPowerToLinear(cfg.floorDB))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSmoothing, err)
	}

	return &Estimator{
		n:          n,
		windowType: cfg.window,
		floorDB:    cfg.floorDB,
		sampleRate: cfg.sampleRate,
		scale:      cfg.scale,
		palette:    cfg.palette,
		coeffs:     coeffs,
		backend:    backend,
		framer:     framer,
		smoother:   smoother,
		re:         make([]float64, n),
		im:         make([]float64, n),
		in:         make([]complex128, n),
		out:        make([]complex128, n),
		power:      make([]float64, n),
		shifted:    make([]float64, n),
		db:         make([]float64, n),
		symbols:    make([]byte, n),
	}, nil
}

// Push feeds samples in time order and updates the running spectrum once per
// completed frame before returning. Blocks of any length are accepted;
// samples short of a frame stay buffered for the next call. Push returns the
// number of frames completed by this call.
func (e *Estimator) Push(samples []complex128) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}

	return e.framer.Push(samples, e.processFrame)
}

// processFrame windows the frame, transforms it and merges its zero-centred
// power into the running average.
func (e *Estimator) processFrame(frame []complex128) {
	for i, x := range frame {
		e.re[i] = real(x)
		e.im[i] = imag(x)
	}

	if err := window.ApplyComplex(e.re, e.im, e.coeffs); err != nil {
		e.dropped++
		return
	}

	for i := range e.in {
		e.in[i] = complex(e.re[i], e.im[i])
	}

	if err := e.backend.Forward(e.out, e.in); err != nil {
		e.dropped++
		return
	}

	for i, x := range e.out {
		e.re[i] = real(x)
		e.im[i] = imag(x)
	}
	spectrum.PowerFromParts(e.power, e.re, e.im)
	spectrum.Shift(e.shifted, e.power)
	e.smoother.Update(e.shifted)
}

// Render maps the current spectrum onto the palette and reports the peak.
// It does not modify the spectrum, so consecutive calls without an
// intervening Push return identical lines. A closed Estimator renders an
// empty Line.
func (e *Estimator) Render() Line {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return Line{PeakIndex: -1}
	}

	avg := e.smoother.Values()
	for i, p := range avg {
		e.db[i] = core.PowerToDB(p, e.floorDB)
	}
	mapInto(e.symbols, e.db, e.scale, e.palette)

	idx, _ := spectrum.Peak(avg)
	line := Line{
		Symbols:   string(e.symbols),
		PeakDB:    e.db[idx],
		PeakFreq:  spectrum.NormalizedFrequency(idx, e.n),
		PeakIndex: idx,
	}
	if e.sampleRate > 0 {
		line.PeakHz = line.PeakFreq * e.sampleRate
	}

	return line
}

// Print renders the current spectrum and writes it to w as one text line.
func (e *Estimator) Print(w io.Writer) (Line, error) {
	line := e.Render()
	_, err := fmt.Fprintln(w, line.String())
	return line, err
}

// SetScale changes the display scale. A divisor that is not a positive
// finite number is rejected with ErrInvalidScale and the previous scale
// stays in effect.
func (e *Estimator) SetScale(refLevelDB, divisorDB float64) error {
	s := Scale{RefLevelDB: refLevelDB, DivisorDB: divisorDB}
	if err := s.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.scale = s

	return nil
}

// Scale returns the display scale in effect.
func (e *Estimator) Scale() Scale {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.scale
}

// SetPalette changes the display symbols. An invalid palette is rejected with
// ErrInvalidPalette and the previous one stays in effect.
func (e *Estimator) SetPalette(p Palette) error {
	if err := p.Validate(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrClosed
	}
	e.palette = p

	return nil
}

// Palette returns the display symbols in effect.
func (e *Estimator) Palette() Palette {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.palette
}

// Spectrum copies the averaged linear power, zero frequency at index N/2,
// into dst (reallocated when too short) and returns it.
func (e *Estimator) Spectrum(dst []float64) []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return dst[:0]
	}

	dst = core.EnsureLen(dst, e.n)
	copy(dst, e.smoother.Values())

	return dst
}

// SpectrumDB is Spectrum in dB, floored at FloorDB.
func (e *Estimator) SpectrumDB(dst []float64) []float64 {
	dst = e.Spectrum(dst)
	for i, p := range dst {
		dst[i] = core.PowerToDB(p, e.floorDB)
	}
	return dst
}

// Reset drops buffered samples, zeroes the frame count and returns the
// spectrum to the floor. The scale and palette are kept.
func (e *Estimator) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.framer.Reset()
	e.smoother.Fill(core.DBPowerToLinear(e.floorDB))
	e.dropped = 0
}

// Close releases the frame, window and spectrum storage. Later calls to Push
// and Render do nothing; setters return ErrClosed. Close is idempotent.
func (e *Estimator) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil
	}

	e.closed = true
	e.coeffs = nil
	e.backend = nil
	e.framer = nil
	e.smoother = nil
	e.re, e.im = nil, nil
	e.in, e.out = nil, nil
	e.power, e.shifted, e.db = nil, nil, nil
	e.symbols = nil

	return nil
}

// Size returns the transform size N.
func (e *Estimator) Size() int { return e.n }

// Window returns the frame window type.
func (e *Estimator) Window() window.Type { return e.windowType }

// FloorDB returns the noise floor in dB.
func (e *Estimator) FloorDB() float64 { return e.floorDB }

// Smoothing returns the per-frame decay of the running average.
func (e *Estimator) Smoothing() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}
	return e.smoother.Alpha()
}

// Hop returns the number of new samples between frames.
func (e *Estimator) Hop() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}
	return e.framer.Hop()
}

// Frames returns the number of frames completed since New or Reset.
func (e *Estimator) Frames() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return 0
	}
	return e.framer.Frames()
}

// Dropped returns how many completed frames could not be transformed and
// were left out of the average.
func (e *Estimator) Dropped() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dropped
}
