package opengl

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"brdf-demo/core"
)

// VertexBuffer holds interleaved float vertices and the vertex array that
// describes them.
type VertexBuffer struct {
	VAO       uint32
	VBO       uint32
	Count     int32
	Structure core.VertexStructure
}

// NewVertexBuffer uploads data laid out as structure. Attribute i of the
// structure is bound to location i.
func NewVertexBuffer(data []float32, structure core.VertexStructure) (*VertexBuffer, error) {
	floats := structure.Floats()
	if floats == 0 || len(data) == 0 || len(data)%int(floats) != 0 {
		return nil, fmt.Errorf("vertex buffer: %d floats do not fit a %d-float layout", len(data), floats)
	}

	vb := &VertexBuffer{
		Count:     int32(len(data) / int(floats)),
		Structure: structure,
	}
	gl.GenVertexArrays(1, &vb.VAO)
	gl.GenBuffers(1, &vb.VBO)
	gl.BindVertexArray(vb.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, vb.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	stride := floats * 4
	offset := 0
	for i, el := range structure {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), el.Components, gl.FLOAT, false, stride, gl.PtrOffset(offset))
		offset += int(el.Components) * 4
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb, nil
}

func (vb *VertexBuffer) Destroy() {
	if vb.VAO != 0 {
		gl.DeleteVertexArrays(1, &vb.VAO)
		gl.DeleteBuffers(1, &vb.VBO)
		vb.VAO, vb.VBO = 0, 0
	}
}

type IndexBuffer struct {
	EBO   uint32
	Count int32
}

func NewIndexBuffer(indices []uint32) (*IndexBuffer, error) {
	if len(indices) == 0 || len(indices)%3 != 0 {
		return nil, fmt.Errorf("index buffer: %d indices is not a triangle list", len(indices))
	}
	ib := &IndexBuffer{Count: int32(len(indices))}
	gl.GenBuffers(1, &ib.EBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return ib, nil
}

func (ib *IndexBuffer) Destroy() {
	if ib.EBO != 0 {
		gl.DeleteBuffers(1, &ib.EBO)
		ib.EBO = 0
	}
}

// DrawIndexed draws ib's triangles from vb.
func DrawIndexed(vb *VertexBuffer, ib *IndexBuffer) {
	gl.BindVertexArray(vb.VAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.EBO)
	gl.DrawElements(gl.TRIANGLES, ib.Count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}
