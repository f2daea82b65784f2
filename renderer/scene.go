package renderer

// Scene is the ordered list of objects drawn every frame.
type Scene struct {
	Objects []*MeshObject
}

func NewScene(objects ...*MeshObject) *Scene {
	return &Scene{Objects: objects}
}

func (s *Scene) Add(obj *MeshObject) {
	s.Objects = append(s.Objects, obj)
}

// Destroy releases every object's GPU resources.
func (s *Scene) Destroy() {
	for _, obj := range s.Objects {
		obj.Destroy()
	}
	s.Objects = nil
}
