package main

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
)

const (
	labelWidth  = 512
	labelHeight = 32
)

// hud renders a single one-line debug label (FPS, position, batch count)
// into a texture and draws it top-left.
type hud struct {
	prog    uint32
	ctx     *freetype.Context
	dst     *image.RGBA
	texture uint32
	white   uint32
	vao     uint32
	vbo     uint32
	dirty   string
}

func newHUD(prog uint32, fontPath string) *hud {
	file, err := os.ReadFile(fontPath)
	if err != nil {
		log.Fatalf("load font %s: %v", fontPath, err)
	}
	font, err := freetype.ParseFont(file)
	if err != nil {
		log.Fatalf("parse font %s: %v", fontPath, err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, labelWidth, labelHeight))
	ctx := freetype.NewContext()
	ctx.SetFont(font)
	ctx.SetFontSize(18)
	ctx.SetDst(dst)
	ctx.SetClip(dst.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(2) // sharp text at small sizes

	h := &hud{prog: prog, ctx: ctx, dst: dst}

	gl.GenTextures(1, &h.texture)
	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// 1x1 white texture for the crosshair bars.
	white := []uint8{255, 255, 255, 200}
	gl.GenTextures(1, &h.white)
	gl.BindTexture(gl.TEXTURE_2D, h.white)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, 1, 1, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(white))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	// Unit quad, scaled by the model matrix.
	quad := []float32{
		0, 1, 0, 0, 1,
		0, 0, 0, 0, 0,
		1, 0, 0, 1, 0,

		0, 1, 0, 0, 1,
		1, 0, 0, 1, 0,
		1, 1, 0, 1, 1,
	}
	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(quad), gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))

	return h
}

func (h *hud) setText(s string) { h.dirty = s }

func (h *hud) draw() {
	if h.dirty != "" {
		draw.Draw(h.dst, h.dst.Bounds(), &image.Uniform{C: color.Transparent}, image.Point{}, draw.Src)
		if _, err := h.ctx.DrawString(h.dirty, freetype.Pt(4, labelHeight-10)); err != nil {
			log.Printf("draw label: %v", err)
		}
		gl.BindTexture(gl.TEXTURE_2D, h.texture)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, labelWidth, labelHeight, 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(h.dst.Pix))
		h.dirty = ""
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(h.prog)
	ortho := mgl32.Ortho(0, windowWidth, windowHeight, 0, -1, 1)
	gl.UniformMatrix4fv(gl.GetUniformLocation(h.prog, gl.Str("projection\x00")), 1, false, &ortho[0])
	model := mgl32.Translate3D(10, 10, 0).Mul4(mgl32.Scale3D(labelWidth, labelHeight, 1))
	gl.UniformMatrix4fv(gl.GetUniformLocation(h.prog, gl.Str("model\x00")), 1, false, &model[0])

	gl.BindTexture(gl.TEXTURE_2D, h.texture)
	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	// Crosshair: two bars reusing the unit quad, centered on the screen.
	gl.BindTexture(gl.TEXTURE_2D, h.white)
	h.drawBar(windowWidth/2-10, windowHeight/2-1, 20, 2)
	h.drawBar(windowWidth/2-1, windowHeight/2-10, 2, 20)

	gl.Disable(gl.BLEND)
}

func (h *hud) drawBar(x, y, w, height float32) {
	model := mgl32.Translate3D(x, y, 0).Mul4(mgl32.Scale3D(w, height, 1))
	gl.UniformMatrix4fv(gl.GetUniformLocation(h.prog, gl.Str("model\x00")), 1, false, &model[0])
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}
