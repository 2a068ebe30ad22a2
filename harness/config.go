package harness

import (
	"io"
	"runtime"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Variant string

const (
	Unstable Variant = "unstable"
	Stable   Variant = "stable"
)

// Config controls a harness run. Workers is the number of concurrent trials,
// 0 means one per CPU.
type Config struct {
	Trials    uint    `yaml:"trials"`
	MaxLen    int     `yaml:"max_len"`
	MaxAbs    int64   `yaml:"max_abs"`
	ZeroRatio float64 `yaml:"zero_ratio"`
	Seed      int64   `yaml:"seed"`
	Workers   uint    `yaml:"workers"`
	Variant   Variant `yaml:"variant"`
}

func DefaultConfig() Config {
	return Config{
		Trials:    1000,
		MaxLen:    64,
		MaxAbs:    100,
		ZeroRatio: 0.3,
		Seed:      1,
		Workers:   0,
		Variant:   Unstable,
	}
}

// LoadConfig reads a YAML document on top of DefaultConfig. Missing keys keep
// their default values, unknown keys are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.MaxLen < 0:
		return errors.Wrapf(ErrInvalidConfig, "max_len must not be negative: %d", c.MaxLen)
	case c.MaxAbs < 1:
		return errors.Wrapf(ErrInvalidConfig, "max_abs must be positive: %d", c.MaxAbs)
	case c.ZeroRatio < 0 || 1 < c.ZeroRatio:
		return errors.Wrapf(ErrInvalidConfig, "zero_ratio must be in [0, 1]: %v", c.ZeroRatio)
	case c.Variant != Unstable && c.Variant != Stable:
		return errors.Wrapf(ErrInvalidConfig, "unknown variant: %q", c.Variant)
	}
	return nil
}

func (c Config) procNum() int {
	if c.Workers == 0 {
		return runtime.NumCPU()
	}
	return int(c.Workers)
}
