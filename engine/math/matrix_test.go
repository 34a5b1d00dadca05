package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const StandardTol = float32(1.0e-5)

func assertMat4Near(t *testing.T, expected, actual Mat4, tol float32) {
	t.Helper()
	for i := range expected.Data {
		assert.InDelta(t, expected.Data[i], actual.Data[i], float64(tol), "element %d (row %d, col %d)", i, i%4, i/4)
	}
}

func assertVec3Near(t *testing.T, expected, actual Vec3, tol float32) {
	t.Helper()
	assert.Truef(t, expected.Compare(actual, tol), "expected %v, got %v", expected, actual)
}

func TestMat4Identity(t *testing.T) {
	id := NewMat4Identity()
	m := NewMat4Translation(Vec3{1, 2, 3})

	assert.Equal(t, m, id.Mul(m))
	assert.Equal(t, m, m.Mul(id))
	assert.Equal(t, float32(1), id.At(3, 3))
	assert.Equal(t, float32(2), m.At(1, 3))
}

func TestMat4MulAppliesRightFirst(t *testing.T) {
	scale := NewMat4Scale(Vec3{2, 2, 2})
	translate := NewMat4Translation(Vec3{1, 0, 0})

	p := Vec3{1, 1, 1}
	assertVec3Near(t, Vec3{4, 2, 2}, p.Transform(scale.Mul(translate)), StandardTol)
	assertVec3Near(t, Vec3{3, 2, 2}, p.Transform(translate.Mul(scale)), StandardTol)
}

func TestNewMat4FromRows(t *testing.T) {
	m := NewMat4FromRows(
		Vec4{1, 2, 3, 4},
		Vec4{5, 6, 7, 8},
		Vec4{9, 10, 11, 12},
		Vec4{13, 14, 15, 16})

	assert.Equal(t, float32(2), m.At(0, 1))
	assert.Equal(t, float32(5), m.At(1, 0))
	assert.Equal(t, Vec4{9, 10, 11, 12}, m.Row(2))
	assert.Equal(t, NewMat4Transposed(m).Row(0), Vec4{1, 5, 9, 13})
}

func TestMat4Inverse(t *testing.T) {
	m := NewMat4Translation(Vec3{3, -2, 7}).
		Mul(NewMat4EulerZ(0.7)).
		Mul(NewMat4Scale(Vec3{2, 3, 0.5}))

	assertMat4Near(t, NewMat4Identity(), m.Mul(m.Inverse()), StandardTol)
	assertMat4Near(t, NewMat4Identity(), m.Inverse().Mul(m), StandardTol)

	// Singular matrices collapse to zero instead of Inf.
	singular := NewMat4Scale(Vec3{1, 0, 1})
	for _, v := range singular.Inverse().Data {
		assert.Equal(t, float32(0), v)
	}
}

func TestMat4Orthographic(t *testing.T) {
	left, right, bottom, top := float32(-400), float32(400), float32(-300), float32(300)
	near, far := float32(0.015), float32(1500)
	m := NewMat4Orthographic(left, right, bottom, top, near, far)

	center := m.Project(Vec3{0, 0, -near})
	assert.InDelta(t, 0, center.X, 1e-6)
	assert.InDelta(t, 0, center.Y, 1e-6)

	assertVec3Near(t, Vec3{1, 1, -1}, m.Project(Vec3{right, top, -near}), StandardTol)
	assertVec3Near(t, Vec3{-1, -1, 1}, m.Project(Vec3{left, bottom, -far}), StandardTol)
}

func TestMat4OrthographicDegenerate(t *testing.T) {
	m := NewMat4Orthographic(5, 5, 1, 1, 2, 2)
	for i, v := range m.Data {
		assert.Falsef(t, v != v, "element %d is NaN", i)
	}
	assert.Equal(t, float32(0), m.Data[0])
	assert.Equal(t, float32(0), m.Data[5])
	assert.Equal(t, float32(1), m.Data[15])
}

func TestMat4Perspective(t *testing.T) {
	fov := DegToRad(60)
	m := NewMat4Perspective(fov, 800.0/600.0, 0.001, 1000)

	cot := float32(1.7320508)
	assert.InDelta(t, cot, m.At(1, 1), 1e-5)
	assert.InDelta(t, cot*600/800, m.At(0, 0), 1e-5)
	assert.Equal(t, float32(-1), m.At(3, 2))
	assert.Equal(t, float32(0), m.At(3, 3))

	assert.InDelta(t, -1, m.Project(Vec3{0, 0, -0.001}).Z, 1e-4)
	assert.InDelta(t, 1, m.Project(Vec3{0, 0, -1000}).Z, 1e-4)
}

func TestMat4PerspectiveZeroAspect(t *testing.T) {
	m := NewMat4Perspective(DegToRad(60), 0, 0.1, 100)
	assert.Equal(t, float32(0), m.Data[0])
}

func TestMat4FrustumMatchesSymmetricPerspective(t *testing.T) {
	fov := DegToRad(45)
	aspect := float32(16.0 / 9.0)
	near, far := float32(0.1), float32(250)

	top := near / Cot(fov*0.5)
	right := top * aspect

	assertMat4Near(t,
		NewMat4Perspective(fov, aspect, near, far),
		NewMat4Frustum(-right, right, -top, top, near, far),
		1e-4)
}

func TestMat4FrustumOffAxis(t *testing.T) {
	m := NewMat4Frustum(0, 2, 0, 1, 1, 10)
	corner := m.Project(Vec3{2, 1, -1})
	assert.InDelta(t, 1, corner.X, 1e-5)
	assert.InDelta(t, 1, corner.Y, 1e-5)
	assert.InDelta(t, -1, corner.Z, 1e-5)
}

func TestMat4LookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := NewMat4LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	assertVec3Near(t, Vec3{0, 0, -5}, Vec3{}.Transform(m), StandardTol)
	assertVec3Near(t, Vec3{1, 0, -5}, Vec3{1, 0, 0}.Transform(m), StandardTol)

	require.Equal(t, NewMat4Identity(), NewMat4LookAt(eye, eye, Vec3{0, 1, 0}))
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, float32(2), SafeDiv(4, 2))
	assert.Equal(t, float32(0), SafeDiv(4, 0))
	nan := float32(0)
	nan = nan / nan
	assert.Equal(t, float32(0), SafeDiv(4, nan))
	assert.Equal(t, float32(0), Cot(0))
	assert.Equal(t, 3, Clamp(7, 0, 3))
	assert.Equal(t, float32(128), Max(float32(64), 128))
}

func TestVectorConstructors(t *testing.T) {
	assert.Equal(t, Vec2{X: 3, Y: -1}, NewVec2(3, -1))
	assert.Equal(t, Vec2{}, NewVec2Zero())
	assert.Equal(t, Vec3{0, 1, 0}, NewVec3Up())
	assert.Equal(t, Vec3{1, 0, 0}, NewVec3Right())
	assert.Equal(t, Vec3{0, 0, -1}, NewVec3Forward())
	assert.Equal(t, Vec3{0, 0, 1}, NewVec3Back())
	assert.Equal(t, NewVec3Right(), NewVec3Up().Cross(NewVec3Back()))
	assert.Equal(t, Vec4{1, 2, 3, 4}, NewVec4(1, 2, 3, 4))
	assert.Equal(t, float32(-2), Min(float32(-2), 5))
}

func TestDegreesRadiansRoundTrip(t *testing.T) {
	assert.InDelta(t, K_HALF_PI, DegToRad(90), 1e-6)
	assert.InDelta(t, 180, RadToDeg(K_PI), 1e-4)
	for _, deg := range []float32{-270, -45, 0, 30, 123.5, 359} {
		assert.InDelta(t, deg, RadToDeg(DegToRad(deg)), 1e-3)
	}
}
