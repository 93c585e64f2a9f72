package bubbles

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gekko3d/bubbles/meshrt/rt/core"
	"gopkg.in/yaml.v3"
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type MeshConfig struct {
	Path  string  `yaml:"path"`
	Scale float32 `yaml:"scale"`
}

type OrbitConfig struct {
	Count  int     `yaml:"count"`
	Radius float32 `yaml:"radius"`
	Speed  float32 `yaml:"speed"`
	Spread float32 `yaml:"spread"`
}

type CameraConfig struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
	Fov         float32 `yaml:"fov"`
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

type Config struct {
	Window  WindowConfig `yaml:"window"`
	Mesh    MeshConfig   `yaml:"mesh"`
	Orbit   OrbitConfig  `yaml:"orbit"`
	Camera  CameraConfig `yaml:"camera"`
	Seed    uint64       `yaml:"seed"`
	Debug   bool         `yaml:"debug"`
	Overlay bool         `yaml:"overlay"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Bubbles"},
		Mesh:   MeshConfig{Path: "buble_16K.txt", Scale: core.DefaultMeshScale},
		Orbit: OrbitConfig{
			Count:  100,
			Radius: core.DefaultOrbitRadius,
			Speed:  core.DefaultOrbitSpeed,
			Spread: core.DefaultPhaseSpread,
		},
		Camera: CameraConfig{
			Speed:       2.5,
			Sensitivity: 0.2,
			Fov:         core.MaxFov,
			Near:        0.01,
			Far:         100,
		},
		Overlay: true,
	}
}

// LoadConfig overlays the YAML file at path onto DefaultConfig. An empty path
// or a missing file yields the defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Mesh.Path == "" {
		errs = append(errs, errors.New("mesh path is empty"))
	}
	if c.Mesh.Scale == 0 {
		errs = append(errs, errors.New("mesh scale is zero"))
	}
	if c.Orbit.Count < 0 {
		errs = append(errs, fmt.Errorf("orbit count %d is negative", c.Orbit.Count))
	}
	if c.Orbit.Spread < 0 {
		errs = append(errs, fmt.Errorf("orbit spread %g is negative", c.Orbit.Spread))
	}
	if !finite(c.Orbit.Radius) || c.Orbit.Radius < 0 {
		errs = append(errs, fmt.Errorf("orbit radius %g must be a non-negative number", c.Orbit.Radius))
	}
	if !finite(c.Orbit.Speed) {
		errs = append(errs, fmt.Errorf("orbit speed %g is not a number", c.Orbit.Speed))
	}
	// The camera module reads zero as "keep the default", so zero is rejected here.
	if !finite(c.Camera.Speed) || c.Camera.Speed <= 0 {
		errs = append(errs, fmt.Errorf("camera speed %g must be positive", c.Camera.Speed))
	}
	if !finite(c.Camera.Sensitivity) || c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity %g must be positive", c.Camera.Sensitivity))
	}
	if c.Camera.Fov < core.MinFov || c.Camera.Fov > core.MaxFov {
		errs = append(errs, fmt.Errorf("camera fov %g outside [%g, %g]", c.Camera.Fov, core.MinFov, core.MaxFov))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range %g..%g is invalid", c.Camera.Near, c.Camera.Far))
	}
	return errors.Join(errs...)
}

func finite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Rand returns the phase source. Seed 0 means a time based seed.
func (c Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
