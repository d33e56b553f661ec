package canvas_test

import (
	"testing"

	"github.com/go-theft-auto/canvas"
)

func TestPaletteAt(t *testing.T) {
	red, green, blue := canvas.RGB(1, 0, 0), canvas.RGB(0, 1, 0), canvas.RGB(0, 0, 1)
	p := canvas.NewPalette(red, green, blue)

	tests := []struct {
		i    int
		want canvas.Color
	}{
		{0, red}, {1, green}, {2, blue},
		{3, red}, {4, green}, {302, blue},
		{-1, blue}, {-3, red},
	}
	for _, tt := range tests {
		if got := p.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
}

func TestPaletteDefaults(t *testing.T) {
	p := canvas.NewPalette()
	if p.Len() != 10 {
		t.Fatalf("default palette has %d colors, want 10", p.Len())
	}
	if p.At(0) != canvas.RGB8(200, 191, 231) {
		t.Errorf("first pastel color = %v", p.At(0))
	}
	if p.At(9) != canvas.RGB8(183, 201, 226) {
		t.Errorf("last pastel color = %v", p.At(9))
	}
}

func TestPaletteReadOnly(t *testing.T) {
	colors := []canvas.Color{canvas.RGB(1, 0, 0)}
	p := canvas.NewPalette(colors...)

	colors[0] = canvas.ColorBlack
	got := p.Colors()
	got[0] = canvas.ColorBlack

	if p.At(0) != canvas.RGB(1, 0, 0) {
		t.Errorf("palette changed through a shared slice: %v", p.At(0))
	}
}

func TestEmptyPaletteAt(t *testing.T) {
	var p canvas.Palette
	if got := p.At(5); got != canvas.ColorWhite {
		t.Errorf("zero palette At() = %v, want white", got)
	}
}
