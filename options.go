package canvas

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Mode selects how clicks become triangles.
type Mode int

const (
	// ModeStatic draws a fixed row of triangles and ignores clicks.
	ModeStatic Mode = iota
	// ModeSpawn places a randomly colored triangle at every click (NDC).
	ModeSpawn
	// ModeTriplet builds a triangle from every three clicks (pixels, palette colors).
	ModeTriplet
)

var modeNames = map[Mode]string{
	ModeStatic:  "static",
	ModeSpawn:   "spawn",
	ModeTriplet: "triplet",
}

// String returns the mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "unknown"
}

// ParseMode returns the mode with the given name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q", name)
}

// UnmarshalYAML decodes a mode from its name.
func (m *Mode) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*m = parsed
	return nil
}

// MarshalYAML encodes a mode as its name.
func (m Mode) MarshalYAML() (any, error) {
	return m.String(), nil
}

// DefaultClearColor returns the background used by a mode when none is set.
func (m Mode) DefaultClearColor() Color {
	if m == ModeSpawn {
		return ColorDarkGray
	}
	return ColorBlack
}

// Option configures a Canvas.
type Option func(*options)

type options struct {
	mode       Mode
	palette    Palette
	shape      [3]mgl32.Vec3
	rng        *rand.Rand
	clearColor *Color
	triangles  []Triangle
	input      InputAdapter
}

func defaultOptions() options {
	return options{
		mode:    ModeSpawn,
		palette: PastelPalette(),
		shape:   DefaultShape,
	}
}

// WithMode sets the interaction mode. The default is ModeSpawn.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithPalette sets the colors cycled by ModeTriplet.
func WithPalette(p Palette) Option {
	return func(o *options) { o.palette = p }
}

// WithShape sets the local triangle used by ModeSpawn and ModeStatic.
func WithShape(shape [3]mgl32.Vec3) Option {
	return func(o *options) { o.shape = shape }
}

// WithRand sets the random source for spawned colors.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithSeed seeds a PCG random source for spawned colors.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithClearColor sets the frame background.
func WithClearColor(c Color) Option {
	return func(o *options) { o.clearColor = &c }
}

// WithTriangles adds triangles present from the first frame.
func WithTriangles(ts ...Triangle) Option {
	return func(o *options) { o.triangles = append(o.triangles, ts...) }
}

// WithInputAdapter replaces the mode's input adapter.
func WithInputAdapter(a InputAdapter) Option {
	return func(o *options) { o.input = a }
}

// adapter returns the input adapter for the configured mode.
func (o options) adapter() InputAdapter {
	if o.input != nil {
		return o.input
	}
	switch o.mode {
	case ModeSpawn:
		return NewSpawnAdapter(o.shape, o.rng)
	case ModeTriplet:
		return NewTripletAdapter(o.palette)
	default:
		return nil
	}
}
