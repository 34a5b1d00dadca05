package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/f64"

	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

const StandardTol = float32(1.0e-5)

type fakeTarget struct {
	viewport  metadata.Viewport
	matrices  metadata.CameraMatrices
	transform f64.Aff3
	writes    int
}

func newFakeTarget(w, h float32) *fakeTarget {
	return &fakeTarget{
		viewport: metadata.Viewport{Width: w, Height: h},
		matrices: metadata.NewCameraMatrices(),
	}
}

func (f *fakeTarget) Viewport() metadata.Viewport             { return f.viewport }
func (f *fakeTarget) CameraMatrices() metadata.CameraMatrices { return f.matrices }
func (f *fakeTarget) SetCameraMatrices(m metadata.CameraMatrices) {
	f.matrices = m
	f.writes++
}
func (f *fakeTarget) SetTransform(m f64.Aff3) {
	f.transform = m
	f.writes++
}

func assertMat4Near(t *testing.T, expected, actual math.Mat4, tol float32) {
	t.Helper()
	assert.Truef(t, expected.Compare(actual, tol), "expected\n%v\ngot\n%v", expected.Data, actual.Data)
}

func assertVec3Near(t *testing.T, expected, actual math.Vec3, tol float32) {
	t.Helper()
	assert.Truef(t, expected.Compare(actual, tol), "expected %v, got %v", expected, actual)
}

func assertFinite(t *testing.T, m math.Mat4) {
	t.Helper()
	for i := 0; i < 4; i++ {
		row := m.Row(i)
		assert.Truef(t, row.ToVec3().IsFinite() && math.Vec3{X: row.W}.IsFinite(), "row %d is not finite: %v", i, row)
	}
}
