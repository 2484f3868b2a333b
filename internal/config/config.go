package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/sweep"
	"github.com/BenedictAdamson/MC-physics-sub001/internal/trajectory"
)

const (
	DefaultMass          = 1.0
	DefaultDt            = 0.01
	DefaultSweepMinDt    = 1e-3
	DefaultSweepMaxDt    = 1e-1
	DefaultSweepPoints   = 16
	DefaultSampleDt      = 0.01
	DefaultSampleCount   = 1024
	DefaultGravity       = -9.81
	DefaultAngularFreq   = 2.0
	DefaultDecayRate     = -0.1
	DefaultInitialHeight = 10.0
)

var ErrInvalidConfig = errors.New("config: invalid scenario")

// Config describes one scenario: a reference trajectory and how the energy
// term is evaluated against it.
type Config struct {
	Mass       float64                   `yaml:"mass"`
	Dt         float64                   `yaml:"dt"`
	Time       float64                   `yaml:"time"`
	Trajectory trajectory.HarmonicVector `yaml:"trajectory"`
	Sweep      SweepConfig               `yaml:"sweep"`
	Samples    SampleConfig              `yaml:"samples"`
}

type SweepConfig struct {
	MinDt  float64 `yaml:"min_dt"`
	MaxDt  float64 `yaml:"max_dt"`
	Points int     `yaml:"points"`
}

type SampleConfig struct {
	Dt    float64 `yaml:"dt"`
	Count int     `yaml:"count"`
}

func DefaultConfig() *Config {
	return &Config{
		Mass: DefaultMass,
		Dt:   DefaultDt,
		Trajectory: trajectory.HarmonicVector{
			F0: r3.Vec{Z: DefaultInitialHeight},
			F1: r3.Vec{X: 1},
			F2: r3.Vec{Z: 0.5 * DefaultGravity},
			F3: r3.Vec{X: 0.5},
			F4: r3.Vec{Y: 0.5},
			We: DefaultDecayRate,
			Wh: DefaultAngularFreq,
		},
		Sweep: SweepConfig{
			MinDt:  DefaultSweepMinDt,
			MaxDt:  DefaultSweepMaxDt,
			Points: DefaultSweepPoints,
		},
		Samples: SampleConfig{
			Dt:    DefaultSampleDt,
			Count: DefaultSampleCount,
		},
	}
}

// Load reads a scenario file over DefaultConfig.
func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads a scenario file over a copy of base; base is not modified.
// Keys the file omits keep base's values, except that a trajectory given in
// the file replaces base's trajectory as a whole, so unnamed coefficients are
// zero rather than inherited.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var keys struct {
		Trajectory *yaml.Node `yaml:"trajectory"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return nil, err
	}

	cfg := *base
	if keys.Trajectory != nil {
		cfg.Trajectory = trajectory.HarmonicVector{}
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if !(c.Mass > 0) || math.IsInf(c.Mass, 1) {
		return fmt.Errorf("%w: mass must be positive and finite, got %v", ErrInvalidConfig, c.Mass)
	}
	if !(c.Dt > 0) || math.IsInf(c.Dt, 1) {
		return fmt.Errorf("%w: dt must be positive, got %v", ErrInvalidConfig, c.Dt)
	}
	if math.IsNaN(c.Time) || math.IsInf(c.Time, 0) {
		return fmt.Errorf("%w: time must be finite, got %v", ErrInvalidConfig, c.Time)
	}
	if err := c.Trajectory.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.SweepOptions().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.Samples.Dt > 0) || c.Samples.Count < 4 {
		return fmt.Errorf("%w: samples need dt > 0 and count >= 4", ErrInvalidConfig)
	}
	return nil
}

// Particle builds the scenario's reference trajectory.
func (c *Config) Particle() (*trajectory.Harmonic, error) {
	return trajectory.NewHarmonic(c.Trajectory)
}

func (c *Config) SweepOptions() sweep.Options {
	return sweep.Options{
		Mass:   c.Mass,
		T:      c.Time,
		MinDt:  c.Sweep.MinDt,
		MaxDt:  c.Sweep.MaxDt,
		Points: c.Sweep.Points,
	}
}
