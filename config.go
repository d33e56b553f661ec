package canvas

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation error.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the file form of a canvas setup.
type Config struct {
	Window     WindowConfig `yaml:"window"`
	Mode       Mode         `yaml:"mode"`
	ClearColor []float32    `yaml:"clear_color,omitempty"` // RGBA 0-1; empty uses the mode default
	Palette    [][]int      `yaml:"palette,omitempty"`     // RGB 0-255; empty uses the pastel palette
	Shape      [][]float32  `yaml:"shape,omitempty"`       // three x,y points; empty uses DefaultShape
	Seed       uint64       `yaml:"seed"`                  // 0 picks a random seed
	LogLevel   string       `yaml:"log_level"`
}

// WindowConfig configures the window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
	Hidden bool   `yaml:"hidden"`
}

// DefaultConfig returns an 800x600 spawn canvas.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Triangles",
			VSync:  true,
		},
		Mode:     ModeSpawn,
		LogLevel: "info",
	}
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d must be positive", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if len(c.ClearColor) != 0 && len(c.ClearColor) != 4 {
		return fmt.Errorf("%w: clear_color needs 4 components, got %d", ErrInvalidConfig, len(c.ClearColor))
	}
	for i, rgb := range c.Palette {
		if len(rgb) != 3 {
			return fmt.Errorf("%w: palette[%d] needs 3 components, got %d", ErrInvalidConfig, i, len(rgb))
		}
		for _, v := range rgb {
			if v < 0 || v > 255 {
				return fmt.Errorf("%w: palette[%d] component %d out of range 0-255", ErrInvalidConfig, i, v)
			}
		}
	}
	if len(c.Shape) != 0 {
		if len(c.Shape) != 3 {
			return fmt.Errorf("%w: shape needs 3 points, got %d", ErrInvalidConfig, len(c.Shape))
		}
		for i, p := range c.Shape {
			if len(p) != 2 {
				return fmt.Errorf("%w: shape[%d] needs x and y, got %d values", ErrInvalidConfig, i, len(p))
			}
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Options converts the config into canvas options.
// The config must have passed Validate.
func (c Config) Options() []Option {
	opts := []Option{WithMode(c.Mode)}
	if len(c.ClearColor) == 4 {
		opts = append(opts, WithClearColor(Color{
			R: c.ClearColor[0], G: c.ClearColor[1], B: c.ClearColor[2], A: c.ClearColor[3],
		}))
	}
	if len(c.Palette) > 0 {
		colors := make([]Color, 0, len(c.Palette))
		for _, rgb := range c.Palette {
			colors = append(colors, RGB8(uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])))
		}
		opts = append(opts, WithPalette(NewPalette(colors...)))
	}
	if len(c.Shape) == 3 {
		var shape [3]mgl32.Vec3
		for i, p := range c.Shape {
			shape[i] = mgl32.Vec3{p[0], p[1], 0}
		}
		opts = append(opts, WithShape(shape))
	}
	if c.Seed != 0 {
		opts = append(opts, WithSeed(c.Seed))
	}
	return opts
}
