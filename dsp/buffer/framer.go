package buffer

import "fmt"

// Framer accumulates pushed samples and emits a frame of Size() samples every
// Hop() new samples once the first Size() samples have arrived. With hop equal
// to size, frames do not overlap and exactly floor(total/size) frames are
// emitted over the Framer's lifetime.
//
// A Framer is not safe for concurrent use.
type Framer struct {
	ring      *Ring
	hop       int
	sinceLast int
	frames    uint64
	frame     []complex128
}

// NewFramer returns a Framer for frames of size samples advancing by hop
// samples. hop must be in [1, size].
func NewFramer(size, hop int) (*Framer, error) {
	ring, err := NewRing(size)
	if err != nil {
		return nil, err
	}
	if hop < 1 || hop > size {
		return nil, fmt.Errorf("framer hop must be in [1,%d]: %d", size, hop)
	}

	return &Framer{
		ring:  ring,
		hop:   hop,
		frame: make([]complex128, size),
	}, nil
}

// Push appends samples and calls emit once for every frame completed by them,
// in time order. The frame slice is reused and is only valid during the call.
// Push returns the number of frames emitted.
func (f *Framer) Push(samples []complex128, emit func(frame []complex128)) int {
	emitted := 0

	for len(samples) > 0 {
		need := f.hop - f.sinceLast
		if !f.ring.Full() {
			need = max(need, f.ring.Cap()-f.ring.Len())
		}

		n := min(need, len(samples))
		f.ring.WriteBlock(samples[:n])
		f.sinceLast += n
		samples = samples[n:]

		if !f.ring.Full() || f.sinceLast < f.hop {
			continue
		}

		f.sinceLast = 0
		f.frames++
		emitted++

		f.ring.CopyTo(f.frame)
		if emit != nil {
			emit(f.frame)
		}
	}

	return emitted
}

// Size returns the frame length.
func (f *Framer) Size() int { return f.ring.Cap() }

// Hop returns the number of new samples between frames.
func (f *Framer) Hop() int { return f.hop }

// Pending returns how many more samples complete the next frame.
func (f *Framer) Pending() int {
	need := f.hop - f.sinceLast
	if !f.ring.Full() {
		need = max(need, f.ring.Cap()-f.ring.Len())
	}
	return need
}

// Frames returns the number of frames emitted since creation or Reset.
func (f *Framer) Frames() uint64 { return f.frames }

// Reset drops buffered samples and the frame count.
func (f *Framer) Reset() {
	f.ring.Reset()
	clear(f.frame)
	f.sinceLast = 0
	f.frames = 0
}
