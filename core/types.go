package core

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

type Rect struct {
	X, Y, Width, Height float32
}
