package window

import (
	"errors"
	"math"
	"testing"

	gonumwindow "gonum.org/v1/gonum/dsp/window"
)

func TestGenerateAllTypes(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			typ, err := ParseType(name)
			if err != nil {
				t.Fatalf("ParseType(%q): %v", name, err)
			}

			for _, periodic := range []bool{false, true} {
				var opts []Option
				if periodic {
					opts = append(opts, WithPeriodic())
				}

				w := Generate(typ, 64, opts...)
				if len(w) != 64 {
					t.Fatalf("len=%d, want 64", len(w))
				}

				for i, v := range w {
					if math.IsNaN(v) || math.IsInf(v, 0) {
						t.Fatalf("coefficient[%d] invalid: %v", i, v)
					}
					if v < 0 {
						t.Fatalf("coefficient[%d] negative: %v", i, v)
					}
				}
			}
		})
	}
}

func TestPeriodicDiffersFromSymmetric(t *testing.T) {
	a := Generate(TypeHann, 16)
	b := Generate(TypeHann, 16, WithPeriodic())

	if almostEqual(a[15], b[15], 1e-12) {
		t.Fatal("expected different end coefficient for periodic form")
	}
	if b[0] != 0 {
		t.Fatalf("periodic hann should start at 0, got %v", b[0])
	}
}

func TestGoldenVectors(t *testing.T) {
	hannExpected := []float64{
		0.0, 0.1882550990706332, 0.6112604669781572, 0.9504844339512095,
		0.9504844339512095, 0.6112604669781573, 0.1882550990706333, 0.0,
	}
	hammingExpected := []float64{
		0.08, 0.25319469114498255, 0.6423596296199047, 0.9544456792351128,
		0.9544456792351128, 0.6423596296199048, 0.25319469114498266, 0.08,
	}
	bhExpected := []float64{
		0.00006, 0.03339172347815117, 0.332833504298565,
		0.8893697722232837, 0.8893697722232838, 0.3328335042985652,
		0.0333917234781512, 0.00006,
	}
	kaiserExpected := []float64{
		0.002338830460264423, 0.1091958100155291, 0.4871186737556569, 0.9261577358777303,
		0.9261577358777303, 0.4871186737556569, 0.1091958100155291, 0.002338830460264423,
	}

	checkGolden(t, Generate(TypeHann, 8), hannExpected, 1e-10)
	checkGolden(t, Generate(TypeHamming, 8), hammingExpected, 1e-10)
	checkGolden(t, Generate(TypeBlackmanHarris, 8), bhExpected, 1e-10)
	checkGolden(t, Generate(TypeKaiser, 8, WithBeta(8)), kaiserExpected, 1e-10)
}

func TestMatchesGonum(t *testing.T) {
	const n = 33

	tests := []struct {
		typ    Type
		oracle func([]float64) []float64
	}{
		{TypeHamming, gonumwindow.Hamming},
		{TypeHann, gonumwindow.Hann},
		{TypeRectangular, gonumwindow.Rectangular},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			ones := make([]float64, n)
			for i := range ones {
				ones[i] = 1
			}

			checkGolden(t, Generate(tt.typ, n), tt.oracle(ones), 1e-12)
		})
	}
}

func TestAtMatchesSymmetricForm(t *testing.T) {
	const total = 200

	w := Generate(TypeHamming, total)
	for _, n := range []int{0, 1, 57, 100, 199} {
		if got := At(TypeHamming, n, total); !almostEqual(got, w[n], 1e-15) {
			t.Fatalf("At(%d) = %v, want %v", n, got, w[n])
		}
	}

	if got := At(TypeHamming, -1, total); got != 0 {
		t.Fatalf("At(-1) = %v, want 0", got)
	}
	if got := At(TypeHamming, total, total); got != 0 {
		t.Fatalf("At(total) = %v, want 0", got)
	}
}

func TestSingleSampleWindowIsUnity(t *testing.T) {
	for _, typ := range []Type{TypeHann, TypeHamming, TypeBlackman, TypeTriangle} {
		w := Generate(typ, 1, WithPeriodic())
		if !almostEqual(w[0], 1, 1e-12) {
			t.Fatalf("%s: w[0] = %v, want 1", typ, w[0])
		}
	}
}

func TestApplyComplex(t *testing.T) {
	re := []float64{1, 2, 3}
	im := []float64{-1, -2, -3}
	coeffs := []float64{0.5, 0, 2}

	if err := ApplyComplex(re, im, coeffs); err != nil {
		t.Fatal(err)
	}

	checkGolden(t, re, []float64{0.5, 0, 6}, 1e-15)
	checkGolden(t, im, []float64{-0.5, 0, -6}, 1e-15)

	if err := ApplyComplex(re, im[:2], coeffs); err == nil {
		t.Fatal("expected mismatch error")
	}
}

func TestGainAndENBW(t *testing.T) {
	w := Generate(TypeHann, 2048, WithPeriodic())

	gain, err := CoherentGain(w)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(gain, 0.5, 1e-9) {
		t.Fatalf("hann coherent gain = %v, want 0.5", gain)
	}

	enbw, err := EquivalentNoiseBandwidth(w)
	if err != nil {
		t.Fatal(err)
	}
	if !almostEqual(enbw, 1.5, 0.01) {
		t.Fatalf("hann ENBW=%v, want ~1.5", enbw)
	}
}

func TestValidationAndEdgeCases(t *testing.T) {
	if got := Generate(TypeHann, 0); got != nil {
		t.Fatalf("expected nil for zero length, got %v", got)
	}

	if _, err := New(TypeHann, 0); err == nil {
		t.Fatal("expected size validation error")
	}

	if _, err := New(Type(99), 8); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("New(Type(99)) err = %v, want ErrUnknownType", err)
	}

	if _, err := ParseType("bogus"); !errors.Is(err, ErrUnknownType) {
		t.Fatalf("ParseType err = %v, want ErrUnknownType", err)
	}

	if typ, err := ParseType("  Blackman-Harris "); err != nil || typ != TypeBlackmanHarris {
		t.Fatalf("ParseType = %v, %v", typ, err)
	}

	if _, err := EquivalentNoiseBandwidth(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}

	if _, err := EquivalentNoiseBandwidth([]float64{0, 0, 0}); err == nil {
		t.Fatal("expected zero coherent gain error")
	}

	if _, err := CoherentGain(nil); err == nil {
		t.Fatal("expected empty coeffs error")
	}
}

func checkGolden(t *testing.T, got, want []float64, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("len mismatch got=%d want=%d", len(got), len(want))
	}

	for i := range got {
		if !almostEqual(got[i], want[i], tol) {
			t.Fatalf("index %d: got=%.16f want=%.16f", i, got[i], want[i])
		}
	}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
