package texture

import "github.com/chewxy/math32"

// Layout describes how a flat float table is uploaded as a square texture.
type Layout struct {
	Format Format

	// Side length of the square texture. Always a power of two.
	Side int32

	// Number of texels actually occupied by table data.
	Texels int32
}

// Calculate the layout for a float table with the given number of elements.
func NewLayout(format Format, floatCount int) Layout {
	texels := ceilDiv(floatCount, format.Channels())
	return Layout{
		Format: format,
		Side:   sideForTexels(texels),
		Texels: int32(texels),
	}
}

// Capacity in floats of a texture with this layout.
func (l Layout) Capacity() int {
	return int(l.Side) * int(l.Side) * l.Format.Channels()
}

// Return the smallest power of two side length s such that a s x s RGB
// texture can hold floatCount floats.
func SideLength(floatCount int) int32 {
	return NewLayout(Rgb32F, floatCount).Side
}

func sideForTexels(texels int) int32 {
	edge := int32(math32.Ceil(math32.Sqrt(float32(texels))))
	var side int32 = 1
	for side < edge {
		side <<= 1
	}
	return side
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
