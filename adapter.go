package canvas

import (
	"math/rand/v2"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// InputAdapter turns left-button clicks into geometry.
type InputAdapter interface {
	// HandleClick processes a left-button press at pixel position (px, py).
	HandleClick(state *CanvasState, px, py float64)
	// Space returns the coordinate space the adapter stores vertices in.
	Space() Space
}

// DefaultShape is the local triangle spawned at each click, in NDC units.
var DefaultShape = [3]mgl32.Vec3{
	{-0.1, -0.1, 0},
	{0.1, -0.1, 0},
	{0, 0.1, 0},
}

// SpawnAdapter places a new randomly colored triangle at every click.
// The click is converted to NDC with the current window size and
// becomes the triangle's offset; the vertices are the fixed shape.
type SpawnAdapter struct {
	Shape [3]mgl32.Vec3
	rng   *rand.Rand
}

// NewSpawnAdapter creates a spawn adapter drawing colors from rng.
// A nil rng uses the global random source.
func NewSpawnAdapter(shape [3]mgl32.Vec3, rng *rand.Rand) *SpawnAdapter {
	return &SpawnAdapter{Shape: shape, rng: rng}
}

// Space returns SpaceNDC.
func (a *SpawnAdapter) Space() Space { return SpaceNDC }

// HandleClick adds a triangle centered at the click.
func (a *SpawnAdapter) HandleClick(state *CanvasState, px, py float64) {
	pos := ToNDC(px, py, state.Width, state.Height)
	t := Triangle{
		Vertices: a.Shape,
		Color:    a.randomColor(),
		Offset:   pos,
	}
	h := state.Store.Add(t)
	Logger().Debug("spawned triangle",
		"handle", h, "px", px, "py", py, "ndc_x", pos.X(), "ndc_y", pos.Y())
}

func (a *SpawnAdapter) randomColor() Color {
	if a.rng == nil {
		return RGB(rand.Float32(), rand.Float32(), rand.Float32())
	}
	return RGB(a.rng.Float32(), a.rng.Float32(), a.rng.Float32())
}

// TripletAdapter builds one triangle from every three clicks.
// Vertices are kept in window pixels; colors cycle through the palette.
type TripletAdapter struct {
	palette Palette
	index   int          // Palette index of the next triangle
	clicks  []mgl32.Vec2 // Pending clicks, never more than 2 between flushes
}

// NewTripletAdapter creates a triplet adapter over the given palette.
func NewTripletAdapter(palette Palette) *TripletAdapter {
	return &TripletAdapter{
		palette: palette,
		clicks:  make([]mgl32.Vec2, 0, 3),
	}
}

// Space returns SpacePixels.
func (a *TripletAdapter) Space() Space { return SpacePixels }

// HandleClick buffers the click and completes a triangle on the third one.
func (a *TripletAdapter) HandleClick(state *CanvasState, px, py float64) {
	a.clicks = append(a.clicks, mgl32.Vec2{float32(px), float32(py)})
	if len(a.clicks) < 3 {
		return
	}

	var verts [3]mgl32.Vec3
	for i, c := range a.clicks {
		verts[i] = c.Vec3(0)
	}
	used := a.index
	color := a.palette.At(used)
	a.index = (a.index + 1) % max(a.palette.Len(), 1)
	a.clicks = a.clicks[:0]

	h := state.Store.AddTriangle(verts, color)
	if t, _ := state.Store.Triangle(h); t.Degenerate() {
		Logger().Debug("degenerate triangle", "handle", h)
	}
	Logger().Debug("built triangle", "handle", h, "palette_index", used)
}

// Pending returns a copy of the buffered clicks.
func (a *TripletAdapter) Pending() []mgl32.Vec2 {
	return slices.Clone(a.clicks)
}

// PaletteIndex returns the palette index the next triangle will use.
func (a *TripletAdapter) PaletteIndex() int {
	return a.index
}
