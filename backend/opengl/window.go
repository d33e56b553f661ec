package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvas"
)

// Window is a GLFW window with a current OpenGL 4.1 core context.
// GLFW must be used from the main thread; callers lock it in init.
type Window struct {
	*glfw.Window
}

// OpenWindow initializes GLFW, creates a window from cfg, makes its
// context current and loads the GL function pointers.
func OpenWindow(cfg canvas.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	}

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	canvas.Logger().Info("window opened",
		"width", cfg.Width, "height", cfg.Height,
		"gl_version", gl.GoStr(gl.GetString(gl.VERSION)))

	return &Window{Window: win}, nil
}

// UpdateViewport sets the GL viewport to the current framebuffer size.
// The framebuffer can be larger than the window on high-DPI displays.
func (w *Window) UpdateViewport() {
	fw, fh := w.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.Destroy()
	glfw.Terminate()
}
