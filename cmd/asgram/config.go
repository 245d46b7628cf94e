package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-asgram/dsp/asgram"
	"github.com/cwbudde/algo-asgram/dsp/transform"
	"github.com/cwbudde/algo-asgram/dsp/window"
)

const (
	envPrefix  = "ASGRAM"
	configName = "asgram"

	// refAboveNoise places the display reference this far above the
	// synthetic noise floor when --ref is not given.
	refAboveNoise = 15.0
)

// Config is the resolved command configuration. Keys match the flag names
// and are shared by the YAML config file and ASGRAM_* environment variables.
type Config struct {
	NFFT         int           `mapstructure:"nfft" yaml:"nfft"`
	Frames       int           `mapstructure:"frames" yaml:"frames"`
	Delay        time.Duration `mapstructure:"delay" yaml:"delay"`
	NoiseFloorDB float64       `mapstructure:"noise-floor" yaml:"noise-floor"`
	RefLevelDB   float64       `mapstructure:"ref" yaml:"ref"`
	DivisorDB    float64       `mapstructure:"div" yaml:"div"`
	Smoothing    float64       `mapstructure:"smoothing" yaml:"smoothing"`
	Window       string        `mapstructure:"window" yaml:"window"`
	Backend      string        `mapstructure:"backend" yaml:"backend"`
	Hop          int           `mapstructure:"hop" yaml:"hop"`
	Palette      string        `mapstructure:"palette" yaml:"palette"`
	Seed         int64         `mapstructure:"seed" yaml:"seed"`
	Input        string        `mapstructure:"input" yaml:"input,omitempty"`
	Progress     bool          `mapstructure:"progress" yaml:"progress"`
	LogLevel     string        `mapstructure:"log-level" yaml:"log-level"`
}

// registerFlags declares every configuration flag with its default.
func registerFlags(fs *pflag.FlagSet) {
	fs.Int("nfft", 64, "transform size (characters per line)")
	fs.Int("frames", 200, "number of lines to print, 0 renders until the input ends")
	fs.Duration("delay", 50*time.Millisecond, "pause between lines")
	fs.Float64("noise-floor", -40, "synthetic source noise level [dB]")
	fs.Float64("ref", 0, "display reference level [dB] (default noise-floor + 15)")
	fs.Float64("div", asgram.DefaultDivisorDB, "display step per symbol [dB]")
	fs.Float64("smoothing", asgram.DefaultSmoothing, "per-frame decay of the running average, in (0, 1)")
	fs.String("window", asgram.DefaultWindow.String(), "frame window ("+strings.Join(window.Names(), ", ")+")")
	fs.String("backend", transform.DefaultName, "FFT backend ("+strings.Join(transform.Names(), ", ")+")")
	fs.Int("hop", 0, "samples between frames, 0 means nfft")
	fs.String("palette", string(asgram.DefaultPalette), "display symbols from low to high energy")
	fs.Int64("seed", 1, "synthetic source noise seed")
	fs.String("input", "", "stereo WAV file with I/Q samples instead of the synthetic sweep")
	fs.Bool("progress", false, "show a progress bar on stderr instead of the spectrogram")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
}

// newViper binds fs and the ASGRAM_* environment to a fresh viper instance
// and reads the config file when one is given or found.
func newViper(fs *pflag.FlagSet, configFile string) (*viper.Viper, error) {
	v := viper.New()

	var lastErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || f.Name == "print-config" || f.Name == "help" {
			return
		}
		if err := v.BindPFlag(f.Name, f); err != nil {
			lastErr = err
		}
		envVar := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if err := v.BindEnv(f.Name, envVar); err != nil {
			lastErr = err
		}
	})
	if lastErr != nil {
		return nil, fmt.Errorf("bind flags: %w", lastErr)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return v, nil
}

// loadConfig resolves v into a validated Config.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if !v.IsSet("ref") {
		cfg.RefLevelDB = cfg.NoiseFloorDB + refAboveNoise
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings the estimator does not check itself.
func (c Config) Validate() error {
	if c.NFFT <= 0 {
		return fmt.Errorf("nfft must be > 0: %d", c.NFFT)
	}
	if c.Frames < 0 {
		return fmt.Errorf("frames must be >= 0: %d", c.Frames)
	}
	if c.Frames == 0 && c.Input == "" {
		return errors.New("frames must be > 0 for the synthetic source")
	}
	if c.Delay < 0 {
		return fmt.Errorf("delay must be >= 0: %v", c.Delay)
	}
	if c.Hop < 0 || c.Hop > c.NFFT {
		return fmt.Errorf("hop must be in [0, %d]: %d", c.NFFT, c.Hop)
	}
	if _, err := window.ParseType(c.Window); err != nil {
		return err
	}
	if _, err := transform.Lookup(c.Backend); err != nil {
		return err
	}
	if err := (asgram.Scale{RefLevelDB: c.RefLevelDB, DivisorDB: c.DivisorDB}).Validate(); err != nil {
		return err
	}
	if err := asgram.Palette(c.Palette).Validate(); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

// Options converts the configuration into estimator options.
func (c Config) Options() ([]asgram.Option, error) {
	wt, err := window.ParseType(c.Window)
	if err != nil {
		return nil, err
	}
	backend, err := transform.Lookup(c.Backend)
	if err != nil {
		return nil, err
	}

	return []asgram.Option{
		asgram.WithWindow(wt),
		asgram.WithBackend(backend),
		asgram.WithSmoothing(c.Smoothing),
		asgram.WithScale(asgram.Scale{RefLevelDB: c.RefLevelDB, DivisorDB: c.DivisorDB}),
		asgram.WithPalette(asgram.Palette(c.Palette)),
		asgram.WithHop(c.Hop),
	}, nil
}

// WriteYAML writes c in config file format.
func (c Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
