package asgram

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-asgram/dsp/core"
)

const (
	// DefaultRefLevelDB is the power, in dB, shown by the lowest symbol.
	DefaultRefLevelDB = -30.0
	// DefaultDivisorDB is the width of one palette level in dB.
	DefaultDivisorDB = 5.0
	// DefaultPalette ramps from sparse to dense.
	DefaultPalette Palette = ".,-+=*#%@"
)

// Scale maps dB values onto palette levels:
//
//	level = clamp(round((db - RefLevelDB) / DivisorDB), 0, levels-1)
type Scale struct {
	RefLevelDB float64
	DivisorDB  float64
}

// DefaultScale returns the scale used when none is configured.
func DefaultScale() Scale {
	return Scale{RefLevelDB: DefaultRefLevelDB, DivisorDB: DefaultDivisorDB}
}

// Validate reports ErrInvalidScale unless DivisorDB is positive and both
// values are finite.
func (s Scale) Validate() error {
	if !core.IsFinite(s.RefLevelDB) {
		return fmt.Errorf("%w: reference level must be finite: %v", ErrInvalidScale, s.RefLevelDB)
	}
	if !(s.DivisorDB > 0) || math.IsInf(s.DivisorDB, 1) {
		return fmt.Errorf("%w: divisor must be > 0: %v", ErrInvalidScale, s.DivisorDB)
	}
	return nil
}

// Level returns the palette level of db for a palette with the given number
// of levels.
func (s Scale) Level(db float64, levels int) int {
	if levels <= 1 {
		return 0
	}
	x := math.Round((db - s.RefLevelDB) / s.DivisorDB)
	if math.IsNaN(x) {
		return 0
	}
	return int(core.Clamp(x, 0, float64(levels-1)))
}

// Palette is an ordered set of display symbols, one byte each, from lowest
// to highest energy.
type Palette string

// Validate reports ErrInvalidPalette unless p has at least two printable
// ASCII symbols.
func (p Palette) Validate() error {
	if len(p) < 2 {
		return fmt.Errorf("%w: need at least 2 symbols, got %d", ErrInvalidPalette, len(p))
	}
	for i := 0; i < len(p); i++ {
		if p[i] < ' ' || p[i] > '~' {
			return fmt.Errorf("%w: symbol %d (%q) is not printable ASCII", ErrInvalidPalette, i, p[i])
		}
	}
	return nil
}

// Levels returns the number of symbols.
func (p Palette) Levels() int { return len(p) }

// Symbol returns the symbol for level, clamped to the palette range.
func (p Palette) Symbol(level int) byte {
	return p[core.ClampInt(level, 0, len(p)-1)]
}

// Map renders one symbol per dB value.
func Map(db []float64, scale Scale, palette Palette) string {
	out := make([]byte, len(db))
	mapInto(out, db, scale, palette)
	return string(out)
}

func mapInto(dst []byte, db []float64, scale Scale, palette Palette) {
	levels := palette.Levels()
	for i, v := range db {
		dst[i] = palette[scale.Level(v, levels)]
	}
}

// Line is one rendered spectrogram row.
type Line struct {
	// Symbols holds one character per bin, lowest normalized frequency first.
	Symbols string
	// PeakDB is the averaged power of the strongest bin.
	PeakDB float64
	// PeakFreq is the normalized frequency of the strongest bin, in [-0.5, 0.5).
	PeakFreq float64
	// PeakIndex is the position of the strongest bin within Symbols.
	PeakIndex int
	// PeakHz is PeakFreq times the configured sample rate, or 0 without one.
	PeakHz float64
}

// String formats the line as " > symbols < pk  xx.x dB [ f.ff]".
func (l Line) String() string {
	return fmt.Sprintf(" > %s < pk%5.1f dB [%5.2f]", l.Symbols, l.PeakDB, l.PeakFreq)
}

// PeakMarker returns a row as wide as Symbols with a caret under the peak.
func (l Line) PeakMarker() string {
	n := len(l.Symbols)
	if n == 0 {
		return ""
	}

	row := []byte(strings.Repeat(" ", n))
	if l.PeakIndex >= 0 {
		row[core.ClampInt(l.PeakIndex, 0, n-1)] = '^'
	}

	return string(row)
}
