package canvas

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGeometryStoreAppendOnly(t *testing.T) {
	s := NewGeometryStore()
	prev := 0
	for i := 0; i < 20; i++ {
		h := s.AddTriangle(DefaultShape, ColorWhite)
		if int(h) != i {
			t.Errorf("handle = %d, want %d", h, i)
		}
		if s.Len() < prev {
			t.Fatalf("store shrank from %d to %d", prev, s.Len())
		}
		prev = s.Len()
	}

	// Mutating the returned copy must not affect the store.
	tris := s.Triangles()
	tris[0].Color = ColorBlack
	if got, _ := s.Triangle(0); got.Color != ColorWhite {
		t.Errorf("stored color changed to %v through the copy", got.Color)
	}
}

func TestGeometryStoreVertexData(t *testing.T) {
	s := NewGeometryStore()
	s.AddTriangle([3]mgl32.Vec3{{1, 2, 0}, {3, 4, 0}, {5, 6, 0}}, ColorWhite)
	s.Add(Triangle{
		Vertices: [3]mgl32.Vec3{{7, 8, 0}, {9, 10, 0}, {11, 12, 0}},
		Offset:   mgl32.Vec2{100, 100},
	})

	want := []float32{
		1, 2, 0, 3, 4, 0, 5, 6, 0,
		7, 8, 0, 9, 10, 0, 11, 12, 0,
	}
	got := s.VertexData()
	if len(got) != len(want) {
		t.Fatalf("len(VertexData()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("VertexData()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGeometryStoreDirty(t *testing.T) {
	s := NewGeometryStore()
	if s.Dirty() {
		t.Error("new store should be clean")
	}

	s.AddTriangle(DefaultShape, ColorWhite)
	if !s.Dirty() {
		t.Error("store should be dirty after AddTriangle")
	}

	s.MarkClean()
	if s.Dirty() {
		t.Error("store should be clean after MarkClean")
	}

	s.AddTriangle(DefaultShape, ColorBlack)
	if !s.Dirty() {
		t.Error("store should be dirty after a second add")
	}
}

func TestGeometryStoreTriangleLookup(t *testing.T) {
	s := NewGeometryStore()
	red := RGB(1, 0, 0)
	h := s.AddTriangle(DefaultShape, red)

	got, ok := s.Triangle(h)
	if !ok || got.Color != red {
		t.Errorf("Triangle(%d) = %v, %v; want red triangle", h, got, ok)
	}
	for _, bad := range []TriangleHandle{-1, 1, 99} {
		if _, ok := s.Triangle(bad); ok {
			t.Errorf("Triangle(%d) should not exist", bad)
		}
	}
}

func TestDrawListBuild(t *testing.T) {
	state := NewCanvasState(640, 480, NewTripletAdapter(PastelPalette()))
	state.Store.Add(Triangle{Vertices: DefaultShape, Color: ColorWhite, Offset: mgl32.Vec2{10, 20}})

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	dl.Build(state, ColorBlack)

	if dl.TriangleCount() != 1 {
		t.Fatalf("TriangleCount() = %d, want 1", dl.TriangleCount())
	}
	if !dl.Upload {
		t.Error("Upload should mirror the dirty store")
	}
	if !state.Store.Dirty() {
		t.Error("Build must not clear the dirty flag")
	}
	if !dl.Projection.ApproxEqual(mgl32.Ortho(0, 640, 480, 0, -1, 1)) {
		t.Errorf("projection = %v, want pixel ortho", dl.Projection)
	}
	if !dl.CmdBuffer[0].Model.ApproxEqual(mgl32.Translate3D(10, 20, 0)) {
		t.Errorf("model = %v, want translation (10,20)", dl.CmdBuffer[0].Model)
	}

	dl.Clear()
	if dl.TriangleCount() != 0 || dl.VtxBuffer != nil || dl.Upload {
		t.Error("Clear should reset the list")
	}
}
