package canvas

import "github.com/go-gl/mathgl/mgl32"

// Static demo layout.
const (
	DefaultRowCount   = 5
	DefaultRowSpacing = 0.4
)

// RowOfTriangles lays out n copies of shape along the x axis, centered on
// the origin with the given spacing between centers. The offsets are baked
// into the vertices.
func RowOfTriangles(n int, spacing float32, shape [3]mgl32.Vec3, color Color) []Triangle {
	tris := make([]Triangle, 0, n)
	mid := float32(n-1) / 2
	for i := 0; i < n; i++ {
		dx := (float32(i) - mid) * spacing
		var verts [3]mgl32.Vec3
		for j, v := range shape {
			verts[j] = mgl32.Vec3{v.X() + dx, v.Y(), v.Z()}
		}
		tris = append(tris, Triangle{Vertices: verts, Color: color})
	}
	return tris
}
