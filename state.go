package canvas

import "github.com/go-gl/mathgl/mgl32"

// CanvasState is everything the canvas mutates in response to events.
// It is owned by a single Canvas and only touched on the render thread.
type CanvasState struct {
	Store *GeometryStore

	// Current window size in pixels, used for NDC conversion and the
	// pixel-space projection.
	Width, Height int

	// Coordinate space of stored vertices.
	Space Space

	// Input handles left clicks; nil ignores clicks.
	Input InputAdapter

	closed bool
}

// NewCanvasState creates state for a window of the given size.
// The coordinate space follows the adapter; without one it is NDC.
func NewCanvasState(width, height int, input InputAdapter) *CanvasState {
	s := &CanvasState{
		Store:  NewGeometryStore(),
		Width:  width,
		Height: height,
		Space:  SpaceNDC,
		Input:  input,
	}
	if input != nil {
		s.Space = input.Space()
	}
	return s
}

// Handle applies one window event.
// Returns true when the event changed the window size.
func (s *CanvasState) Handle(e Event) (resized bool) {
	switch e.Kind {
	case EventMouseButton:
		if e.Button != MouseButtonLeft || e.Action != Press || s.Input == nil {
			return false
		}
		s.Input.HandleClick(s, e.X, e.Y)
	case EventResize:
		// Minimized windows report 0x0; keep the last real size.
		if e.Width <= 0 || e.Height <= 0 {
			return false
		}
		if e.Width == s.Width && e.Height == s.Height {
			return false
		}
		s.Width, s.Height = e.Width, e.Height
		return true
	case EventClose:
		s.closed = true
	}
	return false
}

// Projection returns the projection matrix for the current space and size.
func (s *CanvasState) Projection() mgl32.Mat4 {
	return s.Space.Projection(s.Width, s.Height)
}

// Closed reports whether a close event was observed.
func (s *CanvasState) Closed() bool {
	return s.closed
}
