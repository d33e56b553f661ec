package opengl

import (
	"bytes"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvas"
)

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1,
		2, 2,
		3, 3,
	}
	flipRows(pix, 2, 3)

	want := []byte{
		3, 3,
		2, 2,
		1, 1,
	}
	if !bytes.Equal(pix, want) {
		t.Errorf("flipRows = %v, want %v", pix, want)
	}
}

func TestGLFWMouseButtonMapping(t *testing.T) {
	tests := []struct {
		in   glfw.MouseButton
		want canvas.MouseButton
	}{
		{glfw.MouseButtonLeft, canvas.MouseButtonLeft},
		{glfw.MouseButtonRight, canvas.MouseButtonRight},
		{glfw.MouseButtonMiddle, canvas.MouseButtonMiddle},
		{glfw.MouseButton4, -1},
	}
	for _, tt := range tests {
		if got := glfwMouseButtonToCanvas(tt.in); got != tt.want {
			t.Errorf("glfwMouseButtonToCanvas(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShaderSourcesTerminated(t *testing.T) {
	for name, src := range map[string]string{"vertex": vertexShaderSource, "fragment": fragmentShaderSource} {
		if src[len(src)-1] != 0 {
			t.Errorf("%s shader source must be NUL terminated", name)
		}
	}
}
