package math

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 0.0001
}

func TestVec3Operations(t *testing.T) {
	v1 := NewVec3(1, 2, 3)
	v2 := NewVec3(4, 5, 6)

	if got, want := v1.Add(v2), NewVec3(5, 7, 9); got != want {
		t.Errorf("Add: expected %v, got %v", want, got)
	}
	if got, want := v2.Sub(v1), NewVec3(3, 3, 3); got != want {
		t.Errorf("Sub: expected %v, got %v", want, got)
	}
	if got, want := v1.Mul(2), NewVec3(2, 4, 6); got != want {
		t.Errorf("Mul: expected %v, got %v", want, got)
	}
	if got := v1.Dot(v2); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}

	// Right x Up = Front in a right-handed system
	if cross := Vec3Right.Cross(Vec3Up); cross != Vec3Front {
		t.Errorf("Cross: expected %v, got %v", Vec3Front, cross)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := NewVec3(0, 3, 4).Normalize()
	if !approx(n.Length(), 1) {
		t.Errorf("Normalize: expected length 1, got %v", n.Length())
	}
	if zero := Vec3Zero.Normalize(); zero != Vec3Zero {
		t.Errorf("Normalize: zero vector should stay zero, got %v", zero)
	}
}

func TestVec2FlipV(t *testing.T) {
	uv := NewVec2(0.25, 0.2).FlipV()
	if !approx(uv.X, 0.25) || !approx(uv.Y, 0.8) {
		t.Errorf("FlipV: expected (0.25, 0.8), got %v", uv)
	}
}

func TestMat4Identity(t *testing.T) {
	m := Mat4Identity()
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if m[i][j] != want {
				t.Errorf("Identity: [%d][%d] expected %v, got %v", i, j, want, m[i][j])
			}
		}
	}
	if m.Mul(Mat4Identity()) != m {
		t.Error("Identity * Identity should be Identity")
	}
}

func TestMat4Translation(t *testing.T) {
	translation := NewVec3(0, 1.5, -3)
	m := Mat4Translation(translation)

	if got := m.MulVec3(Vec3Zero); got != translation {
		t.Errorf("Translation: expected %v, got %v", translation, got)
	}
}

func TestMat4RotationYHalfTurn(t *testing.T) {
	got := Mat4RotationY(math.Pi).MulVec3(Vec3Right)
	if !approx(got.X, -1) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("RotationY(pi): expected (-1,0,0), got %v", got)
	}
}

func TestMat4ComposeRowVectors(t *testing.T) {
	// Rotate first, then translate.
	m := Mat4RotationY(math.Pi).Mul(Mat4Translation(NewVec3(0, 0, 5)))
	got := m.MulVec3(Vec3Front)
	if !approx(got.X, 0) || !approx(got.Z, 4) {
		t.Errorf("compose: expected (0,0,4), got %v", got)
	}
}

func TestMat4Perspective(t *testing.T) {
	m := Mat4Perspective(float32(math.Pi*2/3), 1024.0/768.0, 0.1, 100)

	invSqrt3 := float32(1 / math.Sqrt(3))
	if !approx(m[1][1], invSqrt3) {
		t.Errorf("Perspective: expected Y focal %v, got %v", invSqrt3, m[1][1])
	}
	if !approx(m[0][0], invSqrt3*768.0/1024.0) {
		t.Errorf("Perspective: expected X focal %v, got %v", invSqrt3*0.75, m[0][0])
	}
	if m[2][3] != -1 {
		t.Errorf("Perspective: expected w = -z, got %v", m[2][3])
	}

	// Near plane maps to -1 and far plane to +1 in NDC.
	near := NewVec4(0, 0, -0.1, 1).MulMat(m)
	far := NewVec4(0, 0, -100, 1).MulMat(m)
	if !approx(near.Z/near.W, -1) || !approx(far.Z/far.W, 1) {
		t.Errorf("Perspective: depth range wrong, near=%v far=%v", near.Z/near.W, far.Z/far.W)
	}
}

func TestMat4LookAt(t *testing.T) {
	eye := NewVec3(0, 2, -3)
	target := eye.Add(NewVec3(0, 0, 3))
	m := Mat4LookAt(eye, target, Vec3Up)

	if got := m.MulVec3(eye); !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, 0) {
		t.Errorf("LookAt: expected eye at origin, got %v", got)
	}
	// The camera looks down -Z in view space.
	if got := m.MulVec3(target); !approx(got.X, 0) || !approx(got.Y, 0) || !approx(got.Z, -3) {
		t.Errorf("LookAt: expected target at (0,0,-3), got %v", got)
	}
}

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Mat4Perspective(1, 1, 0.1, 100)
	m2 := Mat4LookAt(NewVec3(0, 2, -3), Vec3Zero, Vec3Up)

	for i := 0; i < b.N; i++ {
		_ = m1.Mul(m2)
	}
}
