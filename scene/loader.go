package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// BuiltinSphere names the generated unit sphere in place of a mesh file.
const BuiltinSphere = "builtin:sphere"

const (
	sphereSegments = 48
	sphereRings    = 32
)

// LoadMesh loads the mesh at path, picking the loader by extension, and
// scales its positions by scale. Texture coordinates come back in the
// top-left image convention whatever the source format. The texture is
// non-nil only when the file embeds one.
func LoadMesh(path string, scale float32) (*Mesh, *Texture, error) {
	var mesh *Mesh
	var tex *Texture
	var err error

	switch ext := strings.ToLower(filepath.Ext(path)); {
	case path == BuiltinSphere:
		mesh = CreateSphere(1, sphereSegments, sphereRings)
	case ext == ".obj":
		mesh, err = LoadOBJ(path)
		if err == nil {
			mesh.FlipV()
		}
	case ext == ".gltf" || ext == ".glb":
		mesh, tex, err = LoadGLTF(path)
	default:
		return nil, nil, fmt.Errorf("load mesh %q: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, nil, err
	}

	if scale != 1 {
		mesh.Scale(scale)
	}
	logger.Debugf("loaded %s: %d vertices, %d triangles", path, len(mesh.Vertices), mesh.TriangleCount())
	return mesh, tex, nil
}

// LoadTextureOrDefault loads path, or returns a white 1x1 texture when path
// is empty.
func LoadTextureOrDefault(path string) (*Texture, error) {
	if path == "" {
		return NewSolidTexture("white", 255, 255, 255, 255), nil
	}
	return LoadTexture(path)
}

// Asset is the CPU-side data for one drawable object.
type Asset struct {
	Mesh    *Mesh
	Texture *Texture
}

// LoadAsset loads a mesh and its texture. An empty texturePath falls back to
// the texture embedded in the mesh file, then to plain white.
func LoadAsset(meshPath, texturePath string, scale float32) (*Asset, error) {
	mesh, embedded, err := LoadMesh(meshPath, scale)
	if err != nil {
		return nil, err
	}

	tex := embedded
	if texturePath != "" || tex == nil {
		if tex, err = LoadTextureOrDefault(texturePath); err != nil {
			return nil, err
		}
	}
	return &Asset{Mesh: mesh, Texture: tex}, nil
}
