package math

type Vec2 struct {
	X, Y float32
}

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// FlipV mirrors the second texture coordinate so image rows stored
// top-to-bottom line up with OBJ's bottom-left origin.
func (v Vec2) FlipV() Vec2 {
	return Vec2{X: v.X, Y: 1.0 - v.Y}
}
