// Package window generates the per-sample weighting applied to each analysis
// frame before the transform.
//
// Coefficients are always non-negative, so a windowed frame never changes the
// sign of a sample. The periodic form is the right choice for FFT framing;
// the symmetric form matches the classic textbook definitions and is what
// [At] uses for drift-style envelopes over an outer sequence index.
package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeKaiser
	TypeTriangle
)

const defaultKaiserBeta = 8.6

var (
	hannCoeffs           = []float64{0.5, -0.5}
	hammingCoeffs        = []float64{0.54, -0.46}
	blackmanCoeffs       = []float64{0.42, -0.5, 0.08}
	blackmanHarrisCoeffs = []float64{0.35875, -0.48829, 0.14128, -0.01168}
)

var typeNames = map[Type]string{
	TypeRectangular:    "rectangular",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackman-harris",
	TypeKaiser:         "kaiser",
	TypeTriangle:       "triangle",
}

// String returns the lower-case window name accepted by [ParseType].
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// ParseType resolves a window name such as "hamming" or "blackman-harris".
func ParseType(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for t := TypeRectangular; t <= TypeTriangle; t++ {
		if typeNames[t] == key {
			return t, nil
		}
	}
	return 0, unknownType(name)
}

// Names lists the supported window names in Type order.
func Names() []string {
	out := make([]string, 0, len(typeNames))
	for t := TypeRectangular; t <= TypeTriangle; t++ {
		out = append(out, typeNames[t])
	}
	return out
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta     float64
	periodic bool
}

func defaultConfig() config {
	return config{beta: defaultKaiserBeta}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(v float64) Option {
	return func(c *config) {
		if v >= 0 {
			c.beta = v
		}
	}
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length, or nil when
// length is not positive.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic), cfg)
	}

	return out
}

// New returns window coefficients of the given length and reports invalid
// lengths or unknown types as errors.
func New(t Type, length int, opts ...Option) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}
	if _, ok := typeNames[t]; !ok {
		return nil, unknownType(t.String())
	}
	return Generate(t, length, opts...), nil
}

// At returns the symmetric-form coefficient of sample n in a run of total
// samples. Positions outside [0, total) weigh zero.
func At(t Type, n, total int) float64 {
	if total <= 0 || n < 0 || n >= total {
		return 0
	}
	return evalWindow(t, samplePosition(n, total, false), defaultConfig())
}

// ApplyComplex weights split complex samples in place: re[i] and im[i] are
// both multiplied by coeffs[i].
func ApplyComplex(re, im, coeffs []float64) error {
	if len(re) != len(coeffs) || len(im) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(re, coeffs)
	vecmath.MulBlockInPlace(im, coeffs)

	return nil
}

// CoherentGain returns sum(w)/N, the window's response to a bin-centred tone.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	x = math.Max(0, math.Min(1, x))

	var w float64

	switch t {
	case TypeHann:
		w = cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		w = cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		w = cosineFromCoeffs(x, blackmanCoeffs)
	case TypeBlackmanHarris:
		w = cosineFromCoeffs(x, blackmanHarrisCoeffs)
	case TypeKaiser:
		w = kaiserAt(x, cfg.beta)
	case TypeTriangle:
		w = 1 - math.Abs(2*x-1)
	default:
		w = 1
	}

	// Cosine sums that touch zero at the edges can land a few ulps below it.
	if w < 0 {
		return 0
	}

	return w
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0.5
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
