// Command asgram prints a live ASCII spectrogram of a complex baseband signal.
//
// Usage:
//
//	asgram [flags]
//	asgram windows [flags]
//	asgram backends
//
// Without --input it renders a synthetic sweeping tone buried in noise. With
// --input it reads a stereo WAV file as I/Q samples (left = I, right = Q).
//
// Examples:
//
//	asgram
//	asgram --nfft 128 --frames 400 --delay 20ms
//	asgram --input capture.wav --frames 0 --delay 0 --progress
//	asgram --config asgram.yaml --print-config
//	ASGRAM_NFFT=32 asgram --window hann
//	asgram windows --size 64
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
