package renderer

import (
	"fmt"
	gomath "math"

	"curve-engine/core"
	"curve-engine/curve"
	"curve-engine/internal/opengl"
)

// Draw styling. Pixel units throughout.
const (
	curveWidth      = 2.0
	tangentWidth    = 1.0
	tangentLength   = 28.0
	handleSegments  = 24
	ringWidth       = 2.0
	targetCrossSize = 5.0
)

var (
	backgroundColor = core.Color{R: 0.09, G: 0.10, B: 0.13, A: 1}
	curveColor      = core.ColorWhite
	tangentColor    = core.Color{R: 0.95, G: 0.80, B: 0.25, A: 1}
	freeColor       = core.Color{R: 0.30, G: 0.75, B: 0.95, A: 1}
	fixedColor      = core.Color{R: 0.55, G: 0.55, B: 0.60, A: 1}
	dragColor       = core.Color{R: 0.95, G: 0.45, B: 0.30, A: 1}
	targetColor     = core.Color{R: 0.30, G: 0.75, B: 0.95, A: 0.45}
	barFillColor    = core.Color{R: 0.30, G: 0.75, B: 0.95, A: 0.85}
	barFrameColor   = core.Color{R: 0.55, G: 0.55, B: 0.60, A: 1}
)

// RenderEngine is the high-level renderer that drives the OpenGL backend.
// All drawing happens in window pixel coordinates, origin top-left.
type RenderEngine struct {
	gl     *opengl.Renderer
	window *core.Window

	// scratch vertex buffer, reused across draws to avoid per-frame allocs
	verts []float32
}

func NewRenderEngine(window *core.Window) (*RenderEngine, error) {
	glRenderer, err := opengl.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenGL renderer: %w", err)
	}

	fbW, fbH := window.GetFramebufferSize()
	glRenderer.SetViewport(fbW, fbH, window.Width, window.Height)

	fmt.Println("Render engine initialized (OpenGL)")
	return &RenderEngine{
		gl:     glRenderer,
		window: window,
	}, nil
}

// BeginFrame syncs the viewport with the current window size and clears.
func (re *RenderEngine) BeginFrame() {
	fbW, fbH := re.window.GetFramebufferSize()
	re.gl.SetViewport(fbW, fbH, re.window.Width, re.window.Height)
	re.gl.BeginFrame(backgroundColor)
}

// DrawCurve draws the sampled polyline, the sparse tangent markers and the
// four control-point handles of c. Resample must have been called first.
func (re *RenderEngine) DrawCurve(c *curve.Curve) {
	// Curve polyline
	re.verts = re.verts[:0]
	for _, p := range c.Samples {
		re.verts = append(re.verts, float32(p.X), float32(p.Y))
	}
	re.gl.DrawLineStrip(re.verts, curveColor, curveWidth)

	// Tangent markers, centered on their sample point
	re.verts = re.verts[:0]
	for _, m := range c.Markers {
		half := m.Direction.Mul(tangentLength / 2)
		a := m.Point.Sub(half)
		b := m.Point.Add(half)
		re.verts = append(re.verts,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y))
	}
	re.gl.DrawLines(re.verts, tangentColor, tangentWidth)

	// Handles: free points as filled discs (with a faint cross at their
	// spring target), fixed endpoints as rings.
	for _, p := range c.Points {
		x, y := float32(p.Position.X), float32(p.Position.Y)
		r := float32(p.Radius)
		switch {
		case p.Fixed:
			re.drawRing(x, y, r, fixedColor)
		case p.Dragging:
			re.drawDisc(x, y, r, dragColor)
		default:
			re.drawDisc(x, y, r, freeColor)
			re.drawCross(float32(p.Target.X), float32(p.Target.Y), targetCrossSize, targetColor)
		}
	}
}

// DrawParamBar draws one horizontal HUD bar filled to frac of its width.
// frac outside [0,1] is clamped.
func (re *RenderEngine) DrawParamBar(x, y, width, height, frac float32) {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}

	if frac > 0 {
		re.verts = append(re.verts[:0],
			x, y,
			x+width*frac, y,
			x+width*frac, y+height,
			x, y+height)
		re.gl.DrawTriangleFan(re.verts, barFillColor)
	}

	re.verts = append(re.verts[:0],
		x, y,
		x+width, y,
		x+width, y+height,
		x, y+height,
		x, y)
	re.gl.DrawLineStrip(re.verts, barFrameColor, 1)
}

// Present swaps the back buffer to the screen.
func (re *RenderEngine) Present() {
	re.window.SwapBuffers()
}

// DrawStats returns draw calls and vertices issued since BeginFrame.
func (re *RenderEngine) DrawStats() (calls, vertices int) {
	return re.gl.DrawStats()
}

func (re *RenderEngine) Destroy() {
	re.gl.Destroy()
}

// ── Shape helpers ─────────────────────────────────────────────────────────────

func (re *RenderEngine) drawDisc(cx, cy, radius float32, color core.Color) {
	re.verts = append(re.verts[:0], cx, cy)
	for i := 0; i <= handleSegments; i++ {
		a := 2 * gomath.Pi * float64(i) / handleSegments
		re.verts = append(re.verts,
			cx+radius*float32(gomath.Cos(a)),
			cy+radius*float32(gomath.Sin(a)))
	}
	re.gl.DrawTriangleFan(re.verts, color)
}

func (re *RenderEngine) drawRing(cx, cy, radius float32, color core.Color) {
	re.verts = re.verts[:0]
	for i := 0; i <= handleSegments; i++ {
		a := 2 * gomath.Pi * float64(i) / handleSegments
		re.verts = append(re.verts,
			cx+radius*float32(gomath.Cos(a)),
			cy+radius*float32(gomath.Sin(a)))
	}
	re.gl.DrawLineStrip(re.verts, color, ringWidth)
}

func (re *RenderEngine) drawCross(cx, cy, size float32, color core.Color) {
	re.verts = append(re.verts[:0],
		cx-size, cy, cx+size, cy,
		cx, cy-size, cx, cy+size)
	re.gl.DrawLines(re.verts, color, 1)
}
