package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"blockworld/internal/cube"
	"blockworld/internal/render"
	"blockworld/internal/world"
)

// glBatchFactory builds one VAO/VBO pair per shown block.
type glBatchFactory struct {
	atlasTiles int
}

func (f *glBatchFactory) Build(p world.Pos, t world.BlockType) render.Batch {
	verts := cube.Interleaved(float32(p.X), float32(p.Y), float32(p.Z), t.Tiles(), f.atlasTiles)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(verts), gl.Ptr(verts), gl.STATIC_DRAW)

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	stride := int32(cube.Stride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(3*4))

	return &glBatch{vao: vao, vbo: vbo, count: int32(len(verts) / cube.Stride)}
}

type glBatch struct {
	vao   uint32
	vbo   uint32
	count int32
}

func (b *glBatch) Draw() {
	gl.BindVertexArray(b.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, b.count)
}

func (b *glBatch) Delete() {
	gl.DeleteVertexArrays(1, &b.vao)
	gl.DeleteBuffers(1, &b.vbo)
}
