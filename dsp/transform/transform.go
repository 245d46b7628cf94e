// Package transform adapts third-party FFT implementations to the single
// fixed-size forward transform the spectrogram consumes.
//
// Every [Backend] computes the unnormalized forward DFT
//
//	X[k] = sum_n x[n] * exp(-2*pi*i*k*n/N)
//
// for one size N chosen at construction.
package transform

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidSize reports a transform size that is not positive or that
	// the backend cannot plan.
	ErrInvalidSize = errors.New("invalid transform size")
	// ErrLengthMismatch reports Forward buffers whose length differs from Len.
	ErrLengthMismatch = errors.New("transform buffer length mismatch")
	// ErrUnknownBackend reports a backend name with no registered factory.
	ErrUnknownBackend = errors.New("unknown transform backend")
)

// Backend computes a fixed-size forward DFT.
type Backend interface {
	// Len returns the transform size N.
	Len() int
	// Forward writes the DFT of src into dst. Both must have length N and
	// must not overlap unless the backend documents otherwise.
	Forward(dst, src []complex128) error
}

// Factory plans a Backend for size n.
type Factory func(n int) (Backend, error)

// DefaultName names the backend used when none is configured.
const DefaultName = "algofft"

var factories = map[string]Factory{
	"algofft": func(n int) (Backend, error) { return NewAlgoFFT(n) },
	"gonum":   func(n int) (Backend, error) { return NewGonum(n) },
	"godsp":   func(n int) (Backend, error) { return NewGoDSP(n) },
}

// Lookup returns the Factory registered under name.
func Lookup(name string) (Factory, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = DefaultName
	}

	f, ok := factories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownBackend, name, strings.Join(Names(), ", "))
	}

	return f, nil
}

// Default returns the Factory of the default backend.
func Default() Factory {
	return factories[DefaultName]
}

// Names lists the registered backend names in sorted order.
func Names() []string {
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func validateSize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: must be > 0: %d", ErrInvalidSize, n)
	}
	return nil
}

func validateBuffers(n int, dst, src []complex128) error {
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}
	return nil
}
