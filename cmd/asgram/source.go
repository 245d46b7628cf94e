package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"math/rand"
	"os"

	"github.com/youpy/go-wav"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-asgram/dsp/window"
)

// source produces complex baseband samples.
type source interface {
	// Read fills dst and returns the number of samples written. It returns
	// io.EOF once no samples remain.
	Read(dst []complex128) (int, error)
	// SampleRate returns the sample rate in Hz, or 0 when unknown.
	SampleRate() float64
	Close() error
}

const (
	sweepDepth    = 0.9 * math.Pi
	sweepDriftInc = 0.003
)

// sweepSource generates a complex exponential whose frequency drifts
// sinusoidally, plus circular Gaussian noise. The drift depth follows a
// Hamming envelope across the requested number of frames so the tone starts
// and ends near DC.
type sweepSource struct {
	rng       *rand.Rand
	noiseStd  float64
	frameSize int
	frames    int

	n      int // samples produced
	theta  float64
	dtheta float64
	phi    float64
}

func newSweepSource(noiseFloorDB float64, frameSize, frames int, seed int64) (*sweepSource, error) {
	if frameSize <= 0 {
		return nil, fmt.Errorf("sweep frame size must be > 0: %d", frameSize)
	}
	if frames <= 0 {
		return nil, fmt.Errorf("sweep frames must be > 0: %d", frames)
	}
	return &sweepSource{
		rng:       rand.New(rand.NewSource(seed)),
		noiseStd:  math.Pow(10, noiseFloorDB/20),
		frameSize: frameSize,
		frames:    frames,
	}, nil
}

func (s *sweepSource) Read(dst []complex128) (int, error) {
	total := s.frameSize * s.frames
	if s.n >= total {
		return 0, io.EOF
	}

	count := min(len(dst), total-s.n)
	scale := s.noiseStd * math.Sqrt2 / 2
	for i := range count {
		noise := complex(s.rng.NormFloat64()*scale, s.rng.NormFloat64()*scale)
		dst[i] = cmplx.Exp(complex(0, s.theta)) + noise

		frame := s.n / s.frameSize
		s.theta += s.dtheta
		s.dtheta = sweepDepth * math.Sin(s.phi) * window.At(window.TypeHamming, frame, s.frames)
		s.phi += sweepDriftInc
		s.n++
	}

	return count, nil
}

func (s *sweepSource) SampleRate() float64 { return 0 }

func (s *sweepSource) Close() error { return nil }

// wavSource reads I/Q samples from a WAV file: channel 0 is I, channel 1 is
// Q. Mono files are read with Q = 0.
type wavSource struct {
	f          io.Closer
	reader     *wav.Reader
	channels   int
	fullScale  float64
	sampleRate float64
	pending    []complex128
	eof        bool
}

func openWAVSource(path string, logger *zap.Logger) (*wavSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	src, err := newWAVSource(f, logger)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	src.f = f

	return src, nil
}

// riffReader is what the WAV decoder reads from.
type riffReader interface {
	io.Reader
	io.ReaderAt
}

func newWAVSource(r riffReader, logger *zap.Logger) (*wavSource, error) {
	reader := wav.NewReader(r)
	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("read wav format: %w", err)
	}
	if format.NumChannels == 0 {
		return nil, errors.New("wav file has no channels")
	}
	if format.BitsPerSample == 0 {
		return nil, errors.New("wav file has zero bits per sample")
	}
	if format.NumChannels == 1 {
		logger.Warn("mono input, quadrature channel set to zero")
	}

	return &wavSource{
		reader:     reader,
		channels:   int(format.NumChannels),
		fullScale:  math.Pow(2, float64(format.BitsPerSample)-1),
		sampleRate: float64(format.SampleRate),
	}, nil
}

func (s *wavSource) Read(dst []complex128) (int, error) {
	for len(s.pending) < len(dst) && !s.eof {
		samples, err := s.reader.ReadSamples()
		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read wav samples: %w", err)
		}

		for _, sample := range samples {
			i := s.value(sample, 0)
			q := 0.0
			if s.channels > 1 {
				q = s.value(sample, 1)
			}
			s.pending = append(s.pending, complex(i, q))
		}
	}

	if len(s.pending) == 0 {
		return 0, io.EOF
	}

	n := copy(dst, s.pending)
	s.pending = s.pending[n:]

	return n, nil
}

// value scales a PCM sample so that full scale is 1.
func (s *wavSource) value(sample wav.Sample, ch uint) float64 {
	return float64(s.reader.IntValue(sample, ch)) / s.fullScale
}

func (s *wavSource) SampleRate() float64 { return s.sampleRate }

func (s *wavSource) Close() error {
	if s.f == nil {
		return nil
	}
	return s.f.Close()
}
