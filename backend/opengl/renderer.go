// Package opengl provides an OpenGL 4.1 backend for the canvas package.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/canvas"
)

// Vertex shader source
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 position;

uniform mat4 projection;
uniform mat4 model;

void main() {
    gl_Position = projection * model * vec4(position, 1.0);
}
` + "\x00"

// Fragment shader source
const fragmentShaderSource = `
#version 410 core
uniform vec4 inputColor;

out vec4 color;

void main() {
    color = inputColor;
}
` + "\x00"

// GraphicsContext owns the GL objects the renderer draws with.
// Release frees them exactly once; later calls are no-ops.
type GraphicsContext struct {
	program  uint32
	vao, vbo uint32
	released bool
}

// newGraphicsContext compiles the shader program and creates an empty
// vertex buffer with a single vec3 position attribute.
func newGraphicsContext() (*GraphicsContext, error) {
	program, err := createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	g := &GraphicsContext{program: program}

	gl.GenVertexArrays(1, &g.vao)
	gl.GenBuffers(1, &g.vbo)

	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 0, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return g, nil
}

// Program returns the shader program handle.
func (g *GraphicsContext) Program() uint32 {
	return g.program
}

// Release deletes the program, vertex array and buffer.
func (g *GraphicsContext) Release() {
	if g == nil || g.released {
		return
	}
	g.released = true
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.program != 0 {
		gl.DeleteProgram(g.program)
		g.program = 0
	}
}

// Renderer implements canvas.Renderer using OpenGL.
type Renderer struct {
	gc       *GraphicsContext
	projLoc  int32
	modelLoc int32
	colorLoc int32
	width    int
	height   int

	// Number of floats currently in the GPU buffer
	uploaded int
}

// NewRenderer creates a new OpenGL canvas renderer.
// A GL context must be current.
func NewRenderer(width, height int) (*Renderer, error) {
	gc, err := newGraphicsContext()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader: %w", err)
	}

	r := &Renderer{
		gc:     gc,
		width:  width,
		height: height,
	}
	r.projLoc = gl.GetUniformLocation(gc.program, gl.Str("projection\x00"))
	r.modelLoc = gl.GetUniformLocation(gc.program, gl.Str("model\x00"))
	r.colorLoc = gl.GetUniformLocation(gc.program, gl.Str("inputColor\x00"))

	return r, nil
}

// Resize records the window size.
// The viewport itself follows the framebuffer and is set by the caller.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
}

// Size returns the last size passed to Resize.
func (r *Renderer) Size() (width, height int) {
	return r.width, r.height
}

// Render clears the frame and draws every command in order.
func (r *Renderer) Render(dl *canvas.DrawList) error {
	if dl == nil {
		return nil
	}

	c := dl.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	if len(dl.CmdBuffer) == 0 {
		return nil
	}

	// No depth test: the last triangle drawn wins on overlap.
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(r.gc.program)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &dl.Projection[0])

	gl.BindVertexArray(r.gc.vao)

	if dl.Upload || r.uploaded != len(dl.VtxBuffer) {
		gl.BindBuffer(gl.ARRAY_BUFFER, r.gc.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, len(dl.VtxBuffer)*4, gl.Ptr(dl.VtxBuffer), gl.DYNAMIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, 0)
		r.uploaded = len(dl.VtxBuffer)
	}

	for i := range dl.CmdBuffer {
		cmd := &dl.CmdBuffer[i]
		gl.UniformMatrix4fv(r.modelLoc, 1, false, &cmd.Model[0])
		gl.Uniform4f(r.colorLoc, cmd.Color.R, cmd.Color.G, cmd.Color.B, cmd.Color.A)
		gl.DrawArrays(gl.TRIANGLES, cmd.First, cmd.Count)
	}

	gl.BindVertexArray(0)
	gl.UseProgram(0)

	return nil
}

// Delete releases OpenGL resources.
func (r *Renderer) Delete() {
	r.gc.Release()
}

// createShaderProgram compiles and links a shader program.
// Diagnostics are logged at error level and returned.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader compilation failed: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)

		canvas.Logger().Error("shader program linking failed", "log", string(log))
		return 0, fmt.Errorf("shader program linking failed: %s", string(log))
	}

	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)

		canvas.Logger().Error("shader compilation failed", "kind", shaderKindName(kind), "log", string(log))
		return 0, fmt.Errorf("%s", string(log))
	}
	return shader, nil
}

func shaderKindName(kind uint32) string {
	switch kind {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	default:
		return "unknown"
	}
}
