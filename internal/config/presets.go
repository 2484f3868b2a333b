package config

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/BenedictAdamson/MC-physics-sub001/internal/trajectory"
)

var Presets = map[string]func(*Config){
	"ballistic": func(c *Config) {
		c.Trajectory = trajectory.HarmonicVector{
			F0: r3.Vec{Z: DefaultInitialHeight},
			F1: r3.Vec{X: 3, Z: 5},
			F2: r3.Vec{Z: 0.5 * DefaultGravity},
		}
	},
	"damped": func(c *Config) {},
	"growing": func(c *Config) {
		c.Trajectory = trajectory.HarmonicVector{
			F3: r3.Vec{X: 0.1},
			F4: r3.Vec{Y: 0.1},
			We: 0.3,
			Wh: 4.0,
		}
		c.Samples.Count = 512
	},
	"circular": func(c *Config) {
		c.Trajectory = trajectory.HarmonicVector{
			F3: r3.Vec{X: 1},
			F4: r3.Vec{Y: 1},
			Wh: 2 * math.Pi,
		}
		c.Dt = 0.005
	},
	"spring": func(c *Config) {
		c.Mass = 0.5
		c.Trajectory = trajectory.HarmonicVector{
			F3: r3.Vec{X: 0.2},
			We: -0.5,
			Wh: 10.0,
		}
		c.Sweep.MaxDt = 0.05
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil for an unknown name.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
