// Package spectrum provides the power-domain building blocks of the
// spectrogram: per-bin power from transform output, zero-centred bin
// reordering, exponential averaging across frames, and peak search.
//
// The package does not implement a transform itself. It operates on complex
// bins produced by a transform backend.
package spectrum
