package opengl

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"curve-engine/core"
)

// Renderer is the OpenGL backend. All geometry is drawn in pixel space
// through a single dynamic vertex buffer; the vertex shader maps pixels
// to NDC with the viewport uniform.
type Renderer struct {
	program uint32

	viewportLoc int32
	colorLoc    int32

	vao uint32
	vbo uint32

	viewportW float32
	viewportH float32

	// Per-frame stats, reset in BeginFrame
	drawCalls int
	vertices  int
}

// ── Shaders ───────────────────────────────────────────────────────────────────

// vertex shader: pixel coordinates in, NDC out. Y points down in pixel
// space (matching the cursor coordinates GLFW reports).
const vertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;

uniform vec2 viewport;

void main() {
    vec2 ndc = vec2(
        inPosition.x / viewport.x * 2.0 - 1.0,
        1.0 - inPosition.y / viewport.y * 2.0);
    gl_Position = vec4(ndc, 0.0, 1.0);
}
` + "\x00"

const fragSrc = `
#version 410 core
uniform vec4 drawColor;

out vec4 outColor;

void main() {
    outColor = drawColor;
}
` + "\x00"

// ── NewRenderer ───────────────────────────────────────────────────────────────

// NewRenderer initialises OpenGL.
// Must be called after the GLFW window context is made current.
func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Printf("OpenGL version: %s\n", version)

	prog, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat shader compile: %w", err)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	r := &Renderer{
		program:     prog,
		viewportLoc: gl.GetUniformLocation(prog, gl.Str("viewport\x00")),
		colorLoc:    gl.GetUniformLocation(prog, gl.Str("drawColor\x00")),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return r, nil
}

// SetViewport resizes the OpenGL viewport to the framebuffer size and sets
// the logical pixel space used by the shader's pixel-to-NDC transform. The
// two differ on high-DPI displays, where cursor coordinates stay logical.
func (r *Renderer) SetViewport(fbWidth, fbHeight, width, height int) {
	r.viewportW = float32(width)
	r.viewportH = float32(height)
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
}

// BeginFrame clears the framebuffer and resets the draw stats.
func (r *Renderer) BeginFrame(clear core.Color) {
	gl.ClearColor(clear.R, clear.G, clear.B, clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	r.drawCalls = 0
	r.vertices = 0
}

// DrawLineStrip draws a connected polyline. verts is packed x,y pairs
// in pixel coordinates.
func (r *Renderer) DrawLineStrip(verts []float32, color core.Color, width float32) {
	gl.LineWidth(width)
	r.draw(gl.LINE_STRIP, verts, color)
}

// DrawLines draws independent segments (one per vertex pair).
func (r *Renderer) DrawLines(verts []float32, color core.Color, width float32) {
	gl.LineWidth(width)
	r.draw(gl.LINES, verts, color)
}

// DrawTriangleFan draws a filled convex shape fanned from the first vertex.
func (r *Renderer) DrawTriangleFan(verts []float32, color core.Color) {
	r.draw(gl.TRIANGLE_FAN, verts, color)
}

// DrawTriangles draws a filled triangle list.
func (r *Renderer) DrawTriangles(verts []float32, color core.Color) {
	r.draw(gl.TRIANGLES, verts, color)
}

func (r *Renderer) draw(primitive uint32, verts []float32, color core.Color) {
	n := len(verts) / 2
	if n == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.Uniform2f(r.viewportLoc, r.viewportW, r.viewportH)
	gl.Uniform4f(r.colorLoc, color.R, color.G, color.B, color.A)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(primitive, 0, int32(n))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.drawCalls++
	r.vertices += n
}

// DrawStats returns the draw calls and vertices issued since BeginFrame.
func (r *Renderer) DrawStats() (calls, vertices int) {
	return r.drawCalls, r.vertices
}

// Destroy frees all GPU resources.
func (r *Renderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// ── Shader helpers ────────────────────────────────────────────────────────────

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
