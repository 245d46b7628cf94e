package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cheggaaa/pb"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/cwbudde/algo-asgram/dsp/asgram"
)

func newRootCmd() *cobra.Command {
	var (
		configFile  string
		printConfig bool
	)

	cmd := &cobra.Command{
		Use:   "asgram",
		Short: "Live ASCII spectrogram of a complex baseband signal",
		Long: `asgram renders one line of text per transform frame, one symbol per
frequency bin from -fs/2 to +fs/2, followed by the strongest bin's level and
normalized frequency.

Settings come from flags, ASGRAM_* environment variables (ASGRAM_NFFT,
ASGRAM_NOISE_FLOOR, ...) and an optional YAML config file, in that order of
precedence.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newViper(cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}

			if printConfig {
				return cfg.WriteYAML(cmd.OutOrStdout())
			}

			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			src, err := openSource(cfg, logger)
			if err != nil {
				return err
			}
			defer src.Close()

			redraw := !cfg.Progress && isTerminal(cmd.OutOrStdout())

			return run(cmd.Context(), cfg, src, cmd.OutOrStdout(), cmd.ErrOrStderr(), redraw, logger)
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "YAML config file (default ./asgram.yaml or $HOME/.config/asgram/asgram.yaml)")
	cmd.Flags().BoolVar(&printConfig, "print-config", false, "print the resolved configuration as YAML and exit")
	registerFlags(cmd.Flags())

	cmd.AddCommand(newWindowsCmd(), newBackendsCmd())

	return cmd
}

func openSource(cfg Config, logger *zap.Logger) (source, error) {
	if cfg.Input != "" {
		return openWAVSource(cfg.Input, logger)
	}
	return newSweepSource(cfg.NoiseFloorDB, cfg.NFFT, cfg.Frames, cfg.Seed)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// run streams src through an estimator and prints one line per frame until
// cfg.Frames lines were printed, the source ends or ctx is cancelled.
func run(ctx context.Context, cfg Config, src source, out, progressOut io.Writer, redraw bool, logger *zap.Logger) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if rate := src.SampleRate(); rate > 0 {
		opts = append(opts, asgram.WithSampleRate(rate))
	}

	est, err := asgram.New(cfg.NFFT, opts...)
	if err != nil {
		return err
	}
	defer est.Close()

	logger.Info("spectrogram started",
		zap.Int("nfft", est.Size()),
		zap.Int("hop", est.Hop()),
		zap.Stringer("window", est.Window()),
		zap.String("backend", cfg.Backend),
		zap.Float64("sample_rate", src.SampleRate()),
		zap.Int("frames", cfg.Frames),
	)

	var bar *pb.ProgressBar
	if cfg.Progress {
		bar = pb.New(cfg.Frames).Prefix("Frames")
		bar.Output = progressOut
		bar.Start()
	}

	block := make([]complex128, est.Hop())
	lines := 0
	var last asgram.Line

loop:
	for cfg.Frames == 0 || lines < cfg.Frames {
		if ctx.Err() != nil {
			logger.Info("interrupted", zap.Int("lines", lines))
			break
		}

		n, readErr := fill(src, block)
		if n > 0 && est.Push(block[:n]) > 0 {
			last = est.Render()
			lines++

			if bar != nil {
				bar.Increment()
			} else if err := printLine(out, last, redraw); err != nil {
				return err
			}

			if cfg.Delay > 0 && !sleep(ctx, cfg.Delay) {
				continue
			}
		}

		switch {
		case errors.Is(readErr, io.EOF):
			break loop
		case readErr != nil:
			return readErr
		}
	}

	if bar != nil {
		bar.Finish()
		if lines > 0 {
			if err := printLine(out, last, false); err != nil {
				return err
			}
		}
	}

	if dropped := est.Dropped(); dropped > 0 {
		logger.Warn("frames dropped", zap.Uint64("dropped", dropped))
	}
	logger.Debug("spectrogram finished",
		zap.Int("lines", lines),
		zap.Uint64("frames", est.Frames()),
		zap.Float64("peak_db", last.PeakDB),
		zap.Float64("peak_freq", last.PeakFreq),
	)

	_, err = fmt.Fprintln(out, "done.")
	return err
}

// fill reads from src until block is full or the source ends.
func fill(src source, block []complex128) (int, error) {
	total := 0
	for total < len(block) {
		n, err := src.Read(block[total:])
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// printLine writes the spectrogram line and, when redrawing, the peak marker
// line that the next spectrogram line overwrites.
func printLine(w io.Writer, line asgram.Line, redraw bool) error {
	if _, err := fmt.Fprintln(w, line.String()); err != nil {
		return err
	}
	if redraw {
		if _, err := fmt.Fprintf(w, " > %s < peak location\r", line.PeakMarker()); err != nil {
			return err
		}
	}
	return nil
}

// sleep waits for d and reports false if ctx was cancelled first.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
