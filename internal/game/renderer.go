package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Buffer ceilings for the streaming VBOs. The trajectory dominates: one
// vertex per history point.
const (
	maxFlatVerts   = 6000
	maxPointSprite = 64
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Flat program: triangles and line strips in screen space.
	flatProg uint32
	flatVAO  uint32
	flatVBO  uint32
	flatURes int32

	// Point-sprite programs sharing one VAO/VBO.
	circleProg   uint32
	circleURes   int32
	circleUScale int32

	carProg    uint32
	carURes    int32
	carUScale  int32
	carUTex    int32
	carUAspect int32

	boxProg    uint32
	boxURes    int32
	boxUScale  int32
	boxUAspect int32

	spriteVAO uint32
	spriteVBO uint32

	// Optional car sprite texture (0 = use the fallback box).
	carTex uint32

	// Font/text rendering.
	fontTex      uint32
	textProg     uint32
	textVAO      uint32
	textVBO      uint32
	textURes     int32
	textUFontTex int32
	textBuf      []float32

	// Logical resolution and hidpi scale for the current frame.
	screenW, screenH int
	pixelScale       float32
}

func NewRenderer() (*Renderer, error) {
	flatProg, err := linkProgram(flatVertSrc, flatFragSrc)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}
	circleProg, err := linkProgram(spriteVertSrc, circleFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		return nil, fmt.Errorf("circle program: %w", err)
	}
	carProg, err := linkProgram(spriteVertSrc, carFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		gl.DeleteProgram(circleProg)
		return nil, fmt.Errorf("car program: %w", err)
	}
	boxProg, err := linkProgram(spriteVertSrc, boxFragSrc)
	if err != nil {
		gl.DeleteProgram(flatProg)
		gl.DeleteProgram(circleProg)
		gl.DeleteProgram(carProg)
		return nil, fmt.Errorf("box program: %w", err)
	}

	r := &Renderer{
		flatProg:   flatProg,
		circleProg: circleProg,
		carProg:    carProg,
		boxProg:    boxProg,
	}

	// Flat VAO/VBO: pos(2) + color(4), streamed each frame.
	var fVAO, fVBO uint32
	gl.GenVertexArrays(1, &fVAO)
	gl.GenBuffers(1, &fVBO)
	gl.BindVertexArray(fVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, fVBO)

	flatStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxFlatVerts*int(flatStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, flatStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, flatStride, glOffset(2*4))
	r.flatVAO = fVAO
	r.flatVBO = fVBO

	gl.UseProgram(flatProg)
	r.flatURes = gl.GetUniformLocation(flatProg, gl.Str("uResolution\x00"))

	// Sprite VAO/VBO: pos(2) + size(1) + color(4) + rotation(1).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(8 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, maxPointSprite*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	gl.EnableVertexAttribArray(3)
	gl.VertexAttribPointer(3, 1, gl.FLOAT, false, stride, glOffset(7*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(circleProg)
	r.circleURes = gl.GetUniformLocation(circleProg, gl.Str("uResolution\x00"))
	r.circleUScale = gl.GetUniformLocation(circleProg, gl.Str("uPixelScale\x00"))

	gl.UseProgram(carProg)
	r.carURes = gl.GetUniformLocation(carProg, gl.Str("uResolution\x00"))
	r.carUScale = gl.GetUniformLocation(carProg, gl.Str("uPixelScale\x00"))
	r.carUTex = gl.GetUniformLocation(carProg, gl.Str("uCarTex\x00"))
	gl.Uniform1i(r.carUTex, 1)
	r.carUAspect = gl.GetUniformLocation(carProg, gl.Str("uCarAspect\x00"))

	gl.UseProgram(boxProg)
	r.boxURes = gl.GetUniformLocation(boxProg, gl.Str("uResolution\x00"))
	r.boxUScale = gl.GetUniformLocation(boxProg, gl.Str("uPixelScale\x00"))
	r.boxUAspect = gl.GetUniformLocation(boxProg, gl.Str("uCarAspect\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.flatVBO, r.spriteVBO, r.textVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.flatVAO, r.spriteVAO, r.textVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.flatProg, r.circleProg, r.carProg, r.boxProg, r.textProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
	for _, id := range []uint32{r.fontTex, r.carTex} {
		if id != 0 {
			gl.DeleteTextures(1, &id)
		}
	}
}

// BeginFrame clears the framebuffer and records the logical-to-physical
// pixel scale for point sprite sizing.
func (r *Renderer) BeginFrame(screenW, screenH, fbW, fbH int) {
	r.screenW = screenW
	r.screenH = screenH
	r.pixelScale = float32(fbW) / float32(screenW)

	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(
		float32(ColorBg.R)/255.0,
		float32(ColorBg.G)/255.0,
		float32(ColorBg.B)/255.0,
		1.0,
	)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// FillRect draws an axis-aligned filled rectangle in screen pixels.
func (r *Renderer) FillRect(x, y, w, h int, col RGB) {
	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	verts := []float32{
		x0, y0, cr, cg, cb, 1,
		x1, y0, cr, cg, cb, 1,
		x1, y1, cr, cg, cb, 1,
		x0, y0, cr, cg, cb, 1,
		x1, y1, cr, cg, cb, 1,
		x0, y1, cr, cg, cb, 1,
	}
	r.drawFlat(verts, gl.TRIANGLES)
}

// DrawPolyline draws a line strip from pos(2)+color(4) vertices.
func (r *Renderer) DrawPolyline(verts []float32) {
	if len(verts) < 12 {
		return
	}
	gl.LineWidth(TraceWidth)
	r.drawFlat(verts, gl.LINE_STRIP)
}

func (r *Renderer) drawFlat(verts []float32, mode uint32) {
	count := len(verts) / 6
	if count > maxFlatVerts {
		count = maxFlatVerts
	}

	gl.UseProgram(r.flatProg)
	gl.BindVertexArray(r.flatVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.flatVBO)
	gl.Uniform2f(r.flatURes, float32(r.screenW), float32(r.screenH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*6*4, gl.Ptr(verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawCircles renders filled circles from [x, y, size, r, g, b, a, 0]
// point sprites (size = diameter in logical pixels).
func (r *Renderer) DrawCircles(buf []float32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 8
	if count > maxPointSprite {
		count = maxPointSprite
	}

	gl.UseProgram(r.circleProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.circleURes, float32(r.screenW), float32(r.screenH))
	gl.Uniform1f(r.circleUScale, r.pixelScale)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, count*8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}

// DrawCar renders the vehicle at screen position (sx, sy) rotated by rot
// radians: the sprite texture when one loaded, otherwise the fallback box.
func (r *Renderer) DrawCar(sx, sy, rot float32) {
	aspect := float32(CarWidthPx) / float32(CarHeightPx)
	buf := []float32{
		sx, sy, float32(CarHeightPx),
		float32(ColorCarBox.R) / 255.0,
		float32(ColorCarBox.G) / 255.0,
		float32(ColorCarBox.B) / 255.0,
		1.0, rot,
	}

	var prog uint32
	if r.carTex != 0 {
		prog = r.carProg
		gl.UseProgram(prog)
		gl.Uniform2f(r.carURes, float32(r.screenW), float32(r.screenH))
		gl.Uniform1f(r.carUScale, r.pixelScale)
		gl.Uniform1f(r.carUAspect, aspect)
		// Sprite colour multiplier stays white.
		buf[3], buf[4], buf[5] = 1, 1, 1
		gl.ActiveTexture(gl.TEXTURE1)
		gl.BindTexture(gl.TEXTURE_2D, r.carTex)
	} else {
		prog = r.boxProg
		gl.UseProgram(prog)
		gl.Uniform2f(r.boxURes, float32(r.screenW), float32(r.screenH))
		gl.Uniform1f(r.boxUScale, r.pixelScale)
		gl.Uniform1f(r.boxUAspect, aspect)
	}

	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.BufferData(gl.ARRAY_BUFFER, 8*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, 1)
	gl.Disable(gl.BLEND)
	gl.ActiveTexture(gl.TEXTURE0)
}
