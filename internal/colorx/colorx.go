// Package colorx implements the saturating RGB color algebra that drives
// light accumulation and composition: addition, scalar multiplication, and
// grayscale conversion, all clamped to the 0-255 byte range.
package colorx

// Color is a 24-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Black is the zero-value color, used as the default "no light" tint.
var Black = Color{}

// Add returns a+b with each channel saturating at 255.
func Add(a, b Color) Color {
	return Color{
		R: saturate(int(a.R) + int(b.R)),
		G: saturate(int(a.G) + int(b.G)),
		B: saturate(int(a.B) + int(b.B)),
	}
}

// Mul returns c scaled by m, saturating at 255. Negative m clamps to 0.
func Mul(c Color, m float64) Color {
	return Color{
		R: saturate(int(float64(c.R) * m)),
		G: saturate(int(float64(c.G) * m)),
		B: saturate(int(float64(c.B) * m)),
	}
}

// Gray returns a neutral gray of the given intensity in [0,1].
func Gray(intensity float64) Color {
	v := saturate(int(intensity * 255))
	return Color{R: v, G: v, B: v}
}

// Equal reports whether a and b have identical channels.
func Equal(a, b Color) bool {
	return a.R == b.R && a.G == b.G && a.B == b.B
}

func saturate(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
