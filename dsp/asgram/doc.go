// Package asgram implements a streaming ASCII spectrogram.
//
// An [Estimator] accepts complex samples of any block size, cuts them into
// frames of N samples, and for every frame applies a window, runs an N-point
// forward transform, and merges the per-bin power into an exponentially
// averaged spectrum. [Estimator.Render] maps that spectrum onto a row of N
// characters, one per bin from -0.5 to just below +0.5 normalized frequency,
// and reports the peak bin.
//
// Typical use:
//
//	est, err := asgram.New(64)
//	if err != nil {
//		return err
//	}
//	_ = est.SetScale(-25, 5)
//	for block := range blocks {
//		est.Push(block)
//		line := est.Render()
//		fmt.Println(line)
//	}
//
// An Estimator serializes its own state, so a producer calling Push and a
// reader calling Render may run on different goroutines.
package asgram
