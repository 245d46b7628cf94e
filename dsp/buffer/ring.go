package buffer

import "fmt"

// Ring is a fixed-capacity circular buffer of complex samples. Once full,
// each write overwrites the oldest sample.
type Ring struct {
	data   []complex128
	write  int
	filled int
}

// NewRing returns an empty Ring holding up to size samples.
func NewRing(size int) (*Ring, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring size must be > 0: %d", size)
	}
	return &Ring{data: make([]complex128, size)}, nil
}

// WriteBlock appends samples in order. Only the last Cap() samples survive
// when xs is longer than the ring.
func (r *Ring) WriteBlock(xs []complex128) {
	if len(xs) > len(r.data) {
		xs = xs[len(xs)-len(r.data):]
	}
	for len(xs) > 0 {
		n := copy(r.data[r.write:], xs)
		xs = xs[n:]
		r.write += n
		if r.write == len(r.data) {
			r.write = 0
		}
		r.filled = min(r.filled+n, len(r.data))
	}
}

// Len returns the number of valid samples.
func (r *Ring) Len() int { return r.filled }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.data) }

// Full reports whether the ring holds Cap() samples.
func (r *Ring) Full() bool { return r.filled == len(r.data) }

// CopyTo copies the valid samples, oldest first, into dst and returns the
// number copied.
func (r *Ring) CopyTo(dst []complex128) int {
	n := min(len(dst), r.filled)
	start := r.index(0)

	first := copy(dst[:n], r.data[start:min(start+n, len(r.data))])
	copy(dst[first:n], r.data[:n-first])

	return n
}

// Reset discards all samples.
func (r *Ring) Reset() {
	clear(r.data)
	r.write = 0
	r.filled = 0
}

func (r *Ring) index(i int) int {
	j := r.write - r.filled + i
	if j < 0 {
		j += len(r.data)
	}
	return j
}
