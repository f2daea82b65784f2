package core

import (
	"brdf-demo/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Vertex matches the pipeline's input layout: pos float3, tex float2,
// nor float3. The field order is the buffer order, 8 floats per vertex.
type Vertex struct {
	Position math.Vec3
	UV       math.Vec2
	Normal   math.Vec3
}

// VertexElement describes one attribute of the vertex layout.
type VertexElement struct {
	Name       string
	Components int32
}

// VertexStructure lists the attributes of a vertex buffer in order.
type VertexStructure []VertexElement

// MeshVertexStructure is the layout of every mesh in the demo.
var MeshVertexStructure = VertexStructure{
	{Name: "pos", Components: 3},
	{Name: "tex", Components: 2},
	{Name: "nor", Components: 3},
}

// Floats returns the number of float32 values per vertex.
func (s VertexStructure) Floats() int32 {
	var n int32
	for _, e := range s {
		n += e.Components
	}
	return n
}

type ClearValue struct {
	Color Color
	Depth float32
}
