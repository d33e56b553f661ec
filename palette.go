package canvas

import "slices"

// Palette is a fixed, ordered sequence of colors.
// It is read-only after construction; indexing wraps around.
type Palette struct {
	colors []Color
}

// NewPalette creates a palette from the given colors.
// An empty color list yields the pastel palette.
func NewPalette(colors ...Color) Palette {
	if len(colors) == 0 {
		return PastelPalette()
	}
	return Palette{colors: slices.Clone(colors)}
}

// PastelPalette returns the default ten-color pastel palette.
func PastelPalette() Palette {
	return Palette{colors: []Color{
		RGB8(200, 191, 231),
		RGB8(174, 217, 224),
		RGB8(181, 234, 215),
		RGB8(255, 241, 182),
		RGB8(255, 188, 188),
		RGB8(246, 193, 199),
		RGB8(255, 216, 190),
		RGB8(220, 198, 224),
		RGB8(208, 230, 165),
		RGB8(183, 201, 226),
	}}
}

// Len returns the number of colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// At returns the color at index i modulo the palette length.
func (p Palette) At(i int) Color {
	n := len(p.colors)
	if n == 0 {
		return ColorWhite
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.colors[i]
}

// Colors returns a copy of the palette colors.
func (p Palette) Colors() []Color {
	return slices.Clone(p.colors)
}
