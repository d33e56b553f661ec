package canvas

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// floatsPerVertex is the vertex stride of VertexData (x, y, z).
const floatsPerVertex = 3

// GeometryStore holds every triangle on the canvas in insertion order,
// together with the flattened vertex buffer the renderer uploads.
//
// The store is append-only. Each addition marks the buffer dirty; the
// whole buffer is re-uploaded on the next frame. Incremental uploads are
// not attempted since triangle counts stay small.
type GeometryStore struct {
	triangles []Triangle
	vertices  []float32
	dirty     bool
}

// NewGeometryStore creates an empty store.
func NewGeometryStore() *GeometryStore {
	return &GeometryStore{
		triangles: make([]Triangle, 0, 16),
		vertices:  make([]float32, 0, 16*3*floatsPerVertex),
	}
}

// AddTriangle appends a triangle with no offset and returns its handle.
func (s *GeometryStore) AddTriangle(vertices [3]mgl32.Vec3, color Color) TriangleHandle {
	return s.Add(Triangle{Vertices: vertices, Color: color})
}

// Add appends a triangle and returns its handle.
func (s *GeometryStore) Add(t Triangle) TriangleHandle {
	h := TriangleHandle(len(s.triangles))
	s.triangles = append(s.triangles, t)
	for _, v := range t.Vertices {
		s.vertices = append(s.vertices, v.X(), v.Y(), v.Z())
	}
	s.dirty = true
	return h
}

// Triangles returns a copy of all triangles in insertion order.
func (s *GeometryStore) Triangles() []Triangle {
	return slices.Clone(s.triangles)
}

// Triangle returns the triangle for a handle.
func (s *GeometryStore) Triangle(h TriangleHandle) (Triangle, bool) {
	if h < 0 || int(h) >= len(s.triangles) {
		return Triangle{}, false
	}
	return s.triangles[h], true
}

// Len returns the number of triangles.
func (s *GeometryStore) Len() int {
	return len(s.triangles)
}

// VertexData returns the flattened x,y,z vertex buffer.
// Triangle i occupies vertices [3*i, 3*i+3).
// The returned slice must not be modified.
func (s *GeometryStore) VertexData() []float32 {
	return s.vertices
}

// Dirty reports whether triangles were added since the last MarkClean.
func (s *GeometryStore) Dirty() bool {
	return s.dirty
}

// MarkClean records that the current buffer has been uploaded.
func (s *GeometryStore) MarkClean() {
	s.dirty = false
}
