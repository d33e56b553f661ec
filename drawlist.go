package canvas

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			CmdBuffer: make([]DrawCmd, 0, 16),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawCmd draws one triangle from the shared vertex buffer.
type DrawCmd struct {
	First int32      // First vertex in the buffer
	Count int32      // Number of vertices (always 3)
	Color Color      // Flat color uniform
	Model mgl32.Mat4 // Translation-only model matrix
}

// DrawList is the backend-independent description of one frame.
type DrawList struct {
	Projection mgl32.Mat4
	ClearColor Color
	CmdBuffer  []DrawCmd

	// VtxBuffer is the full x,y,z vertex buffer. It aliases the store's
	// buffer and must not be modified.
	VtxBuffer []float32
	// Upload is set when VtxBuffer changed since the last frame.
	Upload bool
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.Projection = mgl32.Ident4()
	dl.ClearColor = ColorBlack
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = nil
	dl.Upload = false
}

// Build fills the list from the canvas state: one command per triangle
// in insertion order, so later triangles draw over earlier ones.
// The store's dirty flag is copied into Upload but not cleared.
func (dl *DrawList) Build(state *CanvasState, clear Color) {
	dl.Projection = state.Projection()
	dl.ClearColor = clear
	dl.VtxBuffer = state.Store.VertexData()
	dl.Upload = state.Store.Dirty()

	for i, t := range state.Store.triangles {
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			First: int32(i * 3),
			Count: 3,
			Color: t.Color,
			Model: t.Model(),
		})
	}
}

// TriangleCount returns the number of triangles the list draws.
func (dl *DrawList) TriangleCount() int {
	return len(dl.CmdBuffer)
}
