package canvas

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Color is an RGBA color with float components in the 0.0-1.0 range.
type Color struct {
	R, G, B, A float32
}

// Color constants
var (
	ColorWhite    = Color{R: 1, G: 1, B: 1, A: 1}
	ColorBlack    = Color{A: 1}
	ColorDarkGray = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
)

// RGB creates an opaque color from float components (0.0-1.0).
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 creates an opaque color from byte components (0-255).
func RGB8(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// Vec4 returns the color as a vector suitable for a vec4 uniform.
func (c Color) Vec4() mgl32.Vec4 {
	return mgl32.Vec4{c.R, c.G, c.B, c.A}
}

// Triangle is a single flat-colored triangle.
// Vertices are in the canvas coordinate space (NDC or pixels, see Space);
// Offset translates them at draw time.
type Triangle struct {
	Vertices [3]mgl32.Vec3
	Color    Color
	Offset   mgl32.Vec2
}

// TriangleHandle identifies a triangle by its insertion index.
type TriangleHandle int

// Model returns the translation-only model matrix for the triangle.
func (t Triangle) Model() mgl32.Mat4 {
	return mgl32.Translate3D(t.Offset.X(), t.Offset.Y(), 0)
}

// Center returns the centroid of the triangle after its offset is applied.
func (t Triangle) Center() mgl32.Vec2 {
	sum := t.Vertices[0].Add(t.Vertices[1]).Add(t.Vertices[2]).Mul(1.0 / 3)
	return mgl32.Vec2{sum.X() + t.Offset.X(), sum.Y() + t.Offset.Y()}
}

// Area returns the unsigned area of the triangle in its own space.
func (t Triangle) Area() float32 {
	a, b, c := t.Vertices[0], t.Vertices[1], t.Vertices[2]
	cross := (b.X()-a.X())*(c.Y()-a.Y()) - (c.X()-a.X())*(b.Y()-a.Y())
	return math32.Abs(cross) / 2
}

// Degenerate reports whether the vertices are collinear.
func (t Triangle) Degenerate() bool {
	return t.Area() < 1e-6
}

// Space selects the coordinate space triangle vertices are stored in.
type Space int

const (
	// SpaceNDC stores vertices in normalized device coordinates ([-1,1] square).
	SpaceNDC Space = iota
	// SpacePixels stores vertices in window pixels with the origin at the top-left.
	SpacePixels
)

// String returns the space name.
func (s Space) String() string {
	switch s {
	case SpaceNDC:
		return "ndc"
	case SpacePixels:
		return "pixels"
	default:
		return "unknown"
	}
}

// Projection returns the projection matrix for the space at the given window size.
// Pixel space maps (0,0) to the top-left corner and (width,height) to the bottom-right.
func (s Space) Projection(width, height int) mgl32.Mat4 {
	if s == SpacePixels {
		return mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1)
	}
	return mgl32.Ident4()
}

// ToNDC converts a pixel position to normalized device coordinates
// for a window of the given size. Positions outside the window map
// outside [-1,1]; no clamping is applied.
func ToNDC(px, py float64, width, height int) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(px/float64(width)*2 - 1),
		float32(1 - py/float64(height)*2),
	}
}
