package scene

import (
	"brdf-demo/math"
)

// Camera is a fixed-orientation eye. It always looks down +Z from its
// position, so moving the eye never turns the view.
type Camera struct {
	Eye         math.Vec3
	Look        math.Vec3 // offset from Eye to the look-at target
	Up          math.Vec3
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Cached matrices
	viewMatrix       math.Mat4
	projectionMatrix math.Mat4
	dirty            bool
}

func NewCamera(eye math.Vec3, fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Eye:         eye,
		Look:        math.NewVec3(0, 0, 3),
		Up:          math.Vec3Up,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
		dirty:       true,
	}
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

func (c *Camera) SetPosition(pos math.Vec3) {
	if pos != c.Eye {
		c.Eye = pos
		c.dirty = true
	}
}

func (c *Camera) Target() math.Vec3 {
	return c.Eye.Add(c.Look)
}

func (c *Camera) GetViewMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() math.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix = math.Mat4LookAt(c.Eye, c.Target(), c.Up)
	c.projectionMatrix = math.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.dirty = false
}
