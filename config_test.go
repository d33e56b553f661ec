package canvas_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-theft-auto/canvas"
)

func TestParseConfig(t *testing.T) {
	data := []byte(`
window:
  width: 1024
  height: 768
  title: Test
mode: triplet
palette:
  - [255, 0, 0]
  - [0, 255, 0]
clear_color: [0.2, 0.2, 0.2, 1]
seed: 9
log_level: debug
`)
	cfg, err := canvas.ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error: %v", err)
	}

	if cfg.Window.Width != 1024 || cfg.Window.Height != 768 || cfg.Window.Title != "Test" {
		t.Errorf("window = %+v", cfg.Window)
	}
	if !cfg.Window.VSync {
		t.Error("vsync should keep its default when not set")
	}
	if cfg.Mode != canvas.ModeTriplet {
		t.Errorf("mode = %v, want triplet", cfg.Mode)
	}
	if len(cfg.Palette) != 2 || cfg.Seed != 9 || cfg.LogLevel != "debug" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := canvas.ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	def := canvas.DefaultConfig()
	if cfg.Window != def.Window || cfg.Mode != def.Mode || cfg.LogLevel != def.LogLevel {
		t.Errorf("empty config = %+v, want defaults %+v", cfg, def)
	}
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "window: {width: 0, height: 600}"},
		{"negative height", "window: {width: 800, height: -1}"},
		{"short clear color", "clear_color: [0, 0, 0]"},
		{"palette out of range", "palette: [[300, 0, 0]]"},
		{"palette short", "palette: [[1, 2]]"},
		{"shape two points", "shape: [[0, 0], [1, 1]]"},
		{"shape missing y", "shape: [[0, 0], [1, 1], [2]]"},
		{"bad log level", "log_level: loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := canvas.ParseConfig([]byte(tt.yaml))
			if !errors.Is(err, canvas.ErrInvalidConfig) {
				t.Errorf("ParseConfig(%q) = %v, want ErrInvalidConfig", tt.yaml, err)
			}
		})
	}
}

func TestParseConfigUnknownMode(t *testing.T) {
	_, err := canvas.ParseConfig([]byte("mode: circles"))
	if err == nil || !strings.Contains(err.Error(), "unknown mode") {
		t.Errorf("expected unknown mode error, got %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.yaml")
	if err := os.WriteFile(path, []byte("mode: static\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := canvas.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if cfg.Mode != canvas.ModeStatic {
		t.Errorf("mode = %v, want static", cfg.Mode)
	}

	if _, err := canvas.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v, want os.ErrNotExist", err)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg, err := canvas.ParseConfig([]byte(`
mode: triplet
palette: [[255, 0, 0], [0, 0, 255]]
clear_color: [0, 0, 1, 1]
`))
	if err != nil {
		t.Fatal(err)
	}

	renderer := &mockRenderer{}
	c := canvas.New(renderer, 800, 600, cfg.Options()...)
	if c.Mode() != canvas.ModeTriplet {
		t.Fatalf("mode = %v, want triplet", c.Mode())
	}
	if c.ClearColor() != canvas.RGB(0, 0, 1) {
		t.Errorf("clear color = %v", c.ClearColor())
	}

	for i := 0; i < 9; i++ {
		c.Push(canvas.MousePress(canvas.MouseButtonLeft, float64(i*10), 5))
	}
	if err := c.Frame(); err != nil {
		t.Fatal(err)
	}

	want := []canvas.Color{canvas.RGB8(255, 0, 0), canvas.RGB8(0, 0, 255), canvas.RGB8(255, 0, 0)}
	for i, tri := range c.Store().Triangles() {
		if tri.Color != want[i] {
			t.Errorf("triangle %d color = %v, want %v", i, tri.Color, want[i])
		}
	}
}

func TestConfigShapeOption(t *testing.T) {
	cfg, err := canvas.ParseConfig([]byte("mode: spawn\nshape: [[0, 0], [0.5, 0], [0, 0.5]]\n"))
	if err != nil {
		t.Fatal(err)
	}
	c := canvas.New(&mockRenderer{}, 800, 600, cfg.Options()...)
	c.Push(canvas.MousePress(canvas.MouseButtonLeft, 400, 300))
	if err := c.Frame(); err != nil {
		t.Fatal(err)
	}

	tri, _ := c.Store().Triangle(0)
	if got := tri.Area(); got != 0.125 {
		t.Errorf("area = %v, want 0.125", got)
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []canvas.Mode{canvas.ModeStatic, canvas.ModeSpawn, canvas.ModeTriplet} {
		got, err := canvas.ParseMode(strings.ToUpper(m.String()))
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := canvas.ParseMode("nope"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
