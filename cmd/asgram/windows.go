package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-asgram/dsp/transform"
	"github.com/cwbudde/algo-asgram/dsp/window"
)

func newWindowsCmd() *cobra.Command {
	var (
		size     int
		periodic bool
	)

	cmd := &cobra.Command{
		Use:   "windows [window-name ...]",
		Short: "Print gain properties of the frame windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("size must be > 0: %d", size)
			}

			names := args
			if len(names) == 0 {
				names = window.Names()
			}

			var opts []window.Option
			if periodic {
				opts = append(opts, window.WithPeriodic())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\n")
			fmt.Fprintf(tw, "------\t----\t-------------\t-----------\n")

			for _, name := range names {
				t, err := window.ParseType(name)
				if err != nil {
					return err
				}

				coeffs, err := window.New(t, size, opts...)
				if err != nil {
					return err
				}
				gain, err := window.CoherentGain(coeffs)
				if err != nil {
					return fmt.Errorf("%s: %w", t, err)
				}
				enbw, err := window.EquivalentNoiseBandwidth(coeffs)
				if err != nil {
					return fmt.Errorf("%s: %w", t, err)
				}

				fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\n", t, size, gain, enbw)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&size, "size", 64, "window length in samples")
	cmd.Flags().BoolVar(&periodic, "periodic", true, "use the periodic form the spectrogram applies")

	return cmd
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the available FFT backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var b strings.Builder
			for _, name := range transform.Names() {
				b.WriteString(name)
				if name == transform.DefaultName {
					b.WriteString(" (default)")
				}
				b.WriteByte('\n')
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}
