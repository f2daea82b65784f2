package renderer

import (
	"fmt"

	"brdf-demo/core"
	"brdf-demo/internal/opengl"
	"brdf-demo/math"
	"brdf-demo/scene"
)

// MeshObject is a textured mesh on the GPU with its model transform.
type MeshObject struct {
	Name string
	M    math.Mat4

	Vertices  int
	Triangles int

	vertexBuffer *opengl.VertexBuffer
	indexBuffer  *opengl.IndexBuffer
	texture      *opengl.Texture
}

// NewMeshObject loads the mesh and texture files and uploads them in the
// given vertex layout. M starts as the identity.
func NewMeshObject(meshPath, texturePath string, structure core.VertexStructure, scale float32) (*MeshObject, error) {
	asset, err := scene.LoadAsset(meshPath, texturePath, scale)
	if err != nil {
		return nil, err
	}
	return UploadAsset(meshPath, asset, structure)
}

// UploadAsset creates the GPU buffers and texture for asset.
func UploadAsset(name string, asset *scene.Asset, structure core.VertexStructure) (*MeshObject, error) {
	if structure.Floats() != core.MeshVertexStructure.Floats() {
		return nil, fmt.Errorf("mesh object %q: layout has %d floats per vertex, meshes have %d",
			name, structure.Floats(), core.MeshVertexStructure.Floats())
	}

	obj := &MeshObject{
		Name:      name,
		M:         math.Mat4Identity(),
		Vertices:  len(asset.Mesh.Vertices),
		Triangles: asset.Mesh.TriangleCount(),
	}

	var err error
	if obj.vertexBuffer, err = opengl.NewVertexBuffer(asset.Mesh.Floats(), structure); err != nil {
		return nil, fmt.Errorf("mesh object %q: %w", name, err)
	}
	if obj.indexBuffer, err = opengl.NewIndexBuffer(asset.Mesh.Indices); err != nil {
		obj.Destroy()
		return nil, fmt.Errorf("mesh object %q: %w", name, err)
	}
	if obj.texture, err = opengl.NewTexture(asset.Texture); err != nil {
		obj.Destroy()
		return nil, fmt.Errorf("mesh object %q: %w", name, err)
	}
	return obj, nil
}

// Render binds the object's texture to unit and draws it with the current
// pipeline. The caller sets M beforehand.
func (o *MeshObject) Render(pipeline *opengl.Pipeline, unit opengl.TextureUnit) {
	pipeline.SetTexture(unit, o.texture)
	opengl.DrawIndexed(o.vertexBuffer, o.indexBuffer)
}

func (o *MeshObject) Destroy() {
	if o.vertexBuffer != nil {
		o.vertexBuffer.Destroy()
	}
	if o.indexBuffer != nil {
		o.indexBuffer.Destroy()
	}
	if o.texture != nil {
		o.texture.Destroy()
	}
}
