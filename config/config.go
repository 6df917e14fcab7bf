package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the startup tuning for the demo. Every field has a sensible
// default; a YAML file only needs the values it wants to change.
type Config struct {
	Window   Window   `yaml:"window"`
	Physics  Physics  `yaml:"physics"`
	Steering Steering `yaml:"steering"`
	Curve    Curve    `yaml:"curve"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Physics struct {
	Stiffness float64 `yaml:"stiffness"`
	Damping   float64 `yaml:"damping"`
}

type Steering struct {
	PointerSensitivity  float64 `yaml:"pointer_sensitivity"`
	RotationSensitivity float64 `yaml:"rotation_sensitivity"`
	Margin              float64 `yaml:"margin"`
}

type Curve struct {
	Segments      int `yaml:"segments"`
	TangentStride int `yaml:"tangent_stride"`
}

func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 500,
			Title:  "Curve Engine",
			VSync:  true,
		},
		Physics: Physics{
			Stiffness: 0.08,
			Damping:   0.92,
		},
		Steering: Steering{
			PointerSensitivity:  0.6,
			RotationSensitivity: 2.0,
			Margin:              40,
		},
		Curve: Curve{
			Segments:      100,
			TangentStride: 10,
		},
	}
}

// Read decodes YAML over the defaults. An empty document yields the
// defaults unchanged.
func Read(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Load reads the tuning file at path. A missing file is not an error —
// the defaults apply; a malformed file is.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c, err := Read(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}
