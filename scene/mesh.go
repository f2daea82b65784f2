package scene

import (
	"errors"

	"brdf-demo/core"
	"brdf-demo/math"
)

var ErrNoGeometry = errors.New("scene: no geometry")

// Mesh holds CPU-side vertex/index data in the layout of
// core.MeshVertexStructure. GPU upload is done by the renderer.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
}

// Bounds is an axis-aligned box in mesh space.
type Bounds struct {
	Min, Max math.Vec3
}

func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
}

// Scale multiplies every position by s. Normals are left alone.
func (m *Mesh) Scale(s float32) {
	for i := range m.Vertices {
		m.Vertices[i].Position = m.Vertices[i].Position.Mul(s)
	}
}

// FlipV turns bottom-left texture coordinates into the top-left convention
// images are uploaded in.
func (m *Mesh) FlipV() {
	for i := range m.Vertices {
		m.Vertices[i].UV = m.Vertices[i].UV.FlipV()
	}
}

// Floats flattens the vertices into the interleaved buffer layout.
func (m *Mesh) Floats() []float32 {
	out := make([]float32, 0, len(m.Vertices)*int(core.MeshVertexStructure.Floats()))
	for _, v := range m.Vertices {
		out = append(out,
			v.Position.X, v.Position.Y, v.Position.Z,
			v.UV.X, v.UV.Y,
			v.Normal.X, v.Normal.Y, v.Normal.Z,
		)
	}
	return out
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: m.Vertices[0].Position, Max: m.Vertices[0].Position}
	for _, v := range m.Vertices[1:] {
		p := v.Position
		b.Min = math.Vec3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)}
		b.Max = math.Vec3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)}
	}
	return b
}
