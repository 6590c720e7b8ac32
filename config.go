package feather2d

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/feather2d/epa"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const DEFAULT_WORKERS = 1

var ErrInvalidConfig = errors.New("feather2d: invalid config")

// Config tunes the collision pipeline. Keys missing from a YAML file keep their default.
type Config struct {
	Workers int           `yaml:"workers"`
	EPA     EPAConfig     `yaml:"epa"`
	Contact ContactConfig `yaml:"contact"`
	Log     LogConfig     `yaml:"log"`
}

type EPAConfig struct {
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

type ContactConfig struct {
	Tolerance float64 `yaml:"tolerance"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

func DefaultConfig() Config {
	return Config{
		Workers: DEFAULT_WORKERS,
		EPA: EPAConfig{
			Tolerance:     epa.EPAConvergenceTolerance,
			MaxIterations: epa.EPAMaxIterations,
		},
		Contact: ContactConfig{
			Tolerance: epa.ContactTolerance,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

// LoadConfig reads and validates the YAML config file at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return ParseConfig(f)
}

// ParseConfig decodes a YAML config over the defaults, then validates it.
// An empty document yields the defaults.
func ParseConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.EPA.Tolerance <= 0 {
		return fmt.Errorf("%w: epa.tolerance must be positive, got %v", ErrInvalidConfig, c.EPA.Tolerance)
	}
	if c.EPA.MaxIterations < 1 {
		return fmt.Errorf("%w: epa.max_iterations must be at least 1, got %d", ErrInvalidConfig, c.EPA.MaxIterations)
	}
	if c.Contact.Tolerance <= 0 {
		return fmt.Errorf("%w: contact.tolerance must be positive, got %v", ErrInvalidConfig, c.Contact.Tolerance)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.encoding must be json or console, got %q", ErrInvalidConfig, c.Log.Encoding)
	}

	return nil
}

// Settings returns the EPA and contact solver tolerances.
func (c Config) Settings() epa.Settings {
	return epa.Settings{
		Tolerance:        c.EPA.Tolerance,
		MaxIterations:    c.EPA.MaxIterations,
		ContactTolerance: c.Contact.Tolerance,
	}
}
