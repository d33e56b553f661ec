package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvas"
)

// GLFWEventSource feeds GLFW window events into a canvas event queue.
// Callbacks run inside glfw.PollEvents on the main thread, the same thread
// that drains the queue.
type GLFWEventSource struct {
	window *glfw.Window
	queue  *canvas.EventQueue
}

// NewGLFWEventSource installs mouse button, size and close callbacks on window.
func NewGLFWEventSource(window *glfw.Window, queue *canvas.EventQueue) *GLFWEventSource {
	src := &GLFWEventSource{
		window: window,
		queue:  queue,
	}

	window.SetMouseButtonCallback(src.mouseButtonCallback)
	window.SetSizeCallback(src.sizeCallback)
	window.SetCloseCallback(src.closeCallback)

	return src
}

// Detach removes the callbacks installed by NewGLFWEventSource.
func (s *GLFWEventSource) Detach() {
	s.window.SetMouseButtonCallback(nil)
	s.window.SetSizeCallback(nil)
	s.window.SetCloseCallback(nil)
}

func (s *GLFWEventSource) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToCanvas(button)
	if b < 0 {
		return
	}

	x, y := w.GetCursorPos()
	switch action {
	case glfw.Press:
		s.queue.Push(canvas.MousePress(b, x, y))
	case glfw.Release:
		s.queue.Push(canvas.MouseRelease(b, x, y))
	}
}

func (s *GLFWEventSource) sizeCallback(w *glfw.Window, width, height int) {
	s.queue.Push(canvas.ResizeEvent(width, height))
}

func (s *GLFWEventSource) closeCallback(w *glfw.Window) {
	s.queue.Push(canvas.CloseEvent())
}

// glfwMouseButtonToCanvas maps GLFW mouse buttons to canvas mouse buttons.
func glfwMouseButtonToCanvas(button glfw.MouseButton) canvas.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return canvas.MouseButtonLeft
	case glfw.MouseButtonRight:
		return canvas.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return canvas.MouseButtonMiddle
	default:
		return -1
	}
}
