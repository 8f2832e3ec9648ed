package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MinRingSamples is the lowest orbit ring sampling density that still reads as a circle.
const MinRingSamples = 50

// Config holds every tunable of the scene. Keys missing from a YAML overlay keep
// their defaults; keys present replace them, zeros included.
type Config struct {
	Window Window  `yaml:"window"`
	Orbit  Orbit   `yaml:"orbit"`
	Shader Shader  `yaml:"shader"`
	Banner float64 `yaml:"bannerSeconds"` // how long an achievement banner stays up
	Store  string  `yaml:"storePath"`     // empty = default under the user config dir
}

// Window is the render surface size.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Orbit parameters. Speeds are radians per second.
type Orbit struct {
	BaseRadius         float64 `yaml:"baseRadius"`
	Step               float64 `yaml:"step"`         // radius added per planet index
	Speed              float64 `yaml:"speed"`        // planet i orbits at Speed/(i+1)
	PlanetSpin         float64 `yaml:"planetSpin"`   // self rotation
	SunSpin            float64 `yaml:"sunSpin"`      // self rotation
	ConstellationDrift float64 `yaml:"constellationDrift"`
	MoonRadius         float64 `yaml:"moonRadius"` // project moons around their planet
	RingSamples        int     `yaml:"ringSamples"`
}

// Shader parameters shared by every planet.
type Shader struct {
	Seed       int64 `yaml:"seed"`
	SpriteSize int   `yaml:"spriteSize"` // pixels per planet sprite edge
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Window: Window{Width: 1280, Height: 720, Title: "Cosmic Portfolio"},
		Orbit: Orbit{
			BaseRadius:         40,
			Step:               5,
			Speed:              0.06, // ~0.001 rad/frame at 60 TPS
			PlanetSpin:         0.6,
			SunSpin:            0.2,
			ConstellationDrift: 0.06,
			MoonRadius:         5,
			RingSamples:        100,
		},
		Shader: Shader{Seed: 7, SpriteSize: 48},
		Banner: 5,
	}
}

// Load reads a YAML overlay on top of Default.
func Load(path string) (cfg Config, err error) {
	cfg = Default()
	if path == "" {
		return cfg, nil
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse config YAML: %s", path)
		return cfg, err
	}

	err = cfg.Validate()
	if err != nil {
		err = errors.Wrap(err, "config validation failed")
		return cfg, err
	}

	return cfg, nil
}

// Validate rejects values that break the layout and raises ring sampling to its floor.
func (c *Config) Validate() (err error) {
	if c.Orbit.BaseRadius <= 0 {
		return errors.Errorf("orbit base radius must be positive, got %v", c.Orbit.BaseRadius)
	}
	if c.Orbit.Step <= 0 {
		return errors.Errorf("orbit step must be positive, got %v", c.Orbit.Step)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Orbit.MoonRadius <= 0 {
		return errors.Errorf("moon radius must be positive, got %v", c.Orbit.MoonRadius)
	}
	if c.Banner <= 0 {
		return errors.Errorf("banner duration must be positive, got %v", c.Banner)
	}
	if c.Shader.SpriteSize < 8 {
		return errors.Errorf("sprite size must be at least 8, got %d", c.Shader.SpriteSize)
	}
	if c.Orbit.RingSamples < MinRingSamples {
		c.Orbit.RingSamples = MinRingSamples
	}
	return nil
}
