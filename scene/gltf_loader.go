package scene

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"brdf-demo/core"
	"brdf-demo/log"
	"brdf-demo/math"
)

var logger = log.New("scene")

// LoadGLTF opens a .glb or .gltf file and merges every triangle primitive
// into one mesh. Node transforms are not applied. The base-colour texture of
// the first textured material is returned too, or nil if there is none.
//
// glTF texture coordinates already use the top-left image convention.
func LoadGLTF(path string) (*Mesh, *Texture, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	mesh := CreateMeshFromData(filepath.Base(path), nil, nil)
	var baseColor *int
	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				logger.Debugf("gltf %q: mesh %d prim %d: skipping mode %v", path, mi, pi, prim.Mode)
				continue
			}
			if err := appendGLTFPrimitive(doc, prim, mesh); err != nil {
				return nil, nil, fmt.Errorf("gltf %q: mesh %d prim %d: %w", path, mi, pi, err)
			}
			if baseColor == nil && prim.Material != nil {
				baseColor = baseColorTexture(doc, *prim.Material)
			}
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, nil, fmt.Errorf("gltf %q: %w", path, ErrNoGeometry)
	}

	var tex *Texture
	if baseColor != nil {
		tex, err = loadGLTFImage(doc, filepath.Dir(path), *baseColor)
		if err != nil {
			logger.Warningf("gltf %q: base colour texture: %v", path, err)
			tex = nil
		}
	}
	return mesh, tex, nil
}

// appendGLTFPrimitive adds one primitive's vertices to m, offsetting its
// indices past the vertices already there.
func appendGLTFPrimitive(doc *gltf.Document, prim *gltf.Primitive, m *Mesh) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		if normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		if uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil); err != nil {
			return fmt.Errorf("texcoords: %w", err)
		}
	}

	base := uint32(len(m.Vertices))
	for i, p := range positions {
		v := core.Vertex{Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]}}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		m.Vertices = append(m.Vertices, v)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
	} else {
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}
	start := len(m.Indices)
	for _, idx := range indices {
		m.Indices = append(m.Indices, base+idx)
	}
	if len(normals) == 0 {
		generateNormals(m.Vertices[base:], rebase(m.Indices[start:], base))
	}
	return nil
}

func rebase(indices []uint32, base uint32) []uint32 {
	out := make([]uint32, len(indices))
	for i, idx := range indices {
		out[i] = idx - base
	}
	return out
}

func baseColorTexture(doc *gltf.Document, material int) *int {
	if material >= len(doc.Materials) {
		return nil
	}
	pbr := doc.Materials[material].PBRMetallicRoughness
	if pbr == nil || pbr.BaseColorTexture == nil {
		return nil
	}
	idx := pbr.BaseColorTexture.Index
	return &idx
}

func loadGLTFImage(doc *gltf.Document, dir string, texture int) (*Texture, error) {
	if texture >= len(doc.Textures) || doc.Textures[texture].Source == nil {
		return nil, fmt.Errorf("texture %d has no image", texture)
	}
	img := doc.Images[*doc.Textures[texture].Source]
	name := img.Name
	if name == "" {
		name = fmt.Sprintf("gltf_img_%d", *doc.Textures[texture].Source)
	}

	switch {
	case img.BufferView != nil:
		raw, err := modeler.ReadBufferView(doc, doc.BufferViews[*img.BufferView])
		if err != nil {
			return nil, fmt.Errorf("image %q bufferview: %w", name, err)
		}
		return DecodeTexture(name, raw)
	case img.IsEmbeddedResource():
		raw, err := img.MarshalData()
		if err != nil {
			return nil, fmt.Errorf("image %q data uri: %w", name, err)
		}
		return DecodeTexture(name, raw)
	case img.URI != "":
		return LoadTexture(filepath.Join(dir, img.URI))
	}
	return nil, fmt.Errorf("image %q has no data", name)
}
