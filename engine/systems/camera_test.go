package systems

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

type target struct {
	viewport metadata.Viewport
	matrices metadata.CameraMatrices
}

func newTarget(w, h float32) *target {
	return &target{viewport: metadata.Viewport{Width: w, Height: h}, matrices: metadata.NewCameraMatrices()}
}

func (t *target) Viewport() metadata.Viewport                 { return t.viewport }
func (t *target) CameraMatrices() metadata.CameraMatrices     { return t.matrices }
func (t *target) SetCameraMatrices(m metadata.CameraMatrices) { t.matrices = m }

func newCameraSystem(t *testing.T, max uint16) *CameraSystem {
	t.Helper()
	cs, err := NewCameraSystem(&CameraSystemConfig{MaxCameraCount: max})
	require.NoError(t, err)
	return cs
}

func TestNewCameraSystemRequiresCapacity(t *testing.T) {
	_, err := NewCameraSystem(&CameraSystemConfig{})
	assert.Error(t, err)
}

func TestCameraSystemAcquireRelease(t *testing.T) {
	cs := newCameraSystem(t, 4)

	a, err := cs.Acquire("main")
	require.NoError(t, err)
	b, err := cs.Acquire("main")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, uint16(2), cs.ReferenceCount("main"))
	assert.NotEmpty(t, cs.Lookup["main"].ID)

	cs.Release("main")
	assert.Equal(t, uint16(1), cs.ReferenceCount("main"))
	cs.Release("main")
	assert.Equal(t, uint16(0), cs.ReferenceCount("main"))
	_, err = cs.Get("main")
	assert.ErrorIs(t, err, core.ErrCameraNotFound)

	// Releasing an unknown camera is a no-op.
	cs.Release("main")
}

func TestCameraSystemDefaultCamera(t *testing.T) {
	cs := newCameraSystem(t, 1)

	cam, err := cs.Acquire(components.DEFAULT_CAMERA_NAME)
	require.NoError(t, err)
	assert.Same(t, cs.GetDefault(), cam)

	cs.Release(components.DEFAULT_CAMERA_NAME)
	got, err := cs.Get(components.DEFAULT_CAMERA_NAME)
	require.NoError(t, err)
	assert.Same(t, cs.GetDefault(), got)

	assert.Error(t, cs.Register(components.DEFAULT_CAMERA_NAME, components.NewLookAtCamera("x", math.HandednessLeft)))
	assert.Empty(t, cs.Names())
}

func TestCameraSystemLimit(t *testing.T) {
	cs := newCameraSystem(t, 2)

	_, err := cs.Acquire("a")
	require.NoError(t, err)
	_, err = cs.Acquire("b")
	require.NoError(t, err)
	_, err = cs.Acquire("c")
	assert.ErrorIs(t, err, core.ErrCameraLimitReached)

	cs.Release("a")
	_, err = cs.Acquire("c")
	assert.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, cs.Names())
}

func TestCameraSystemRegisterKeepsIdentity(t *testing.T) {
	cs := newCameraSystem(t, 4)
	_, err := cs.Acquire("main")
	require.NoError(t, err)
	id := cs.Lookup["main"].ID

	replacement := components.NewCamera3("main", math.NewTransform3())
	require.NoError(t, cs.Register("main", replacement))

	got, err := cs.Get("main")
	require.NoError(t, err)
	assert.Same(t, replacement, got)
	assert.Equal(t, id, cs.Lookup["main"].ID)
	assert.Equal(t, uint16(1), cs.ReferenceCount("main"))
}

func TestCameraSystemUpdate(t *testing.T) {
	cs := newCameraSystem(t, 4)
	tgt := newTarget(800, 600)
	components.ApplyPerspective(tgt)

	cam := components.NewLookAtCamera("main", math.HandednessLeft)
	require.True(t, cam.LookAt(math.Vec3{X: 0, Y: 0, Z: 500}, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0}))
	require.NoError(t, cs.Register("main", cam))

	require.NoError(t, cs.Update("main", tgt))
	assert.Equal(t, cam.View(), tgt.matrices.View)

	require.NoError(t, cs.Update(components.DEFAULT_CAMERA_NAME, tgt))
	assert.Equal(t, cs.GetDefault().View(), tgt.matrices.View)

	assert.ErrorIs(t, cs.Update("missing", tgt), core.ErrCameraNotFound)
}

func TestCameraSystemApplyRig(t *testing.T) {
	cs := newCameraSystem(t, 4)
	rig := &metadata.CameraRig{
		Name:       "main",
		Handedness: "left",
		Projection: metadata.RigProjection{Kind: "perspective", FieldOfView: 60, NearClip: 0.001, FarClip: 1000},
		LookAt:     &metadata.RigLookAt{Eye: [3]float32{0, 0, 500}, Up: [3]float32{0, 1, 0}},
	}
	require.NoError(t, cs.ApplyRig(rig))

	tgt := newTarget(800, 600)
	require.NoError(t, cs.Update("main", tgt))

	m := tgt.matrices
	assert.Equal(t, metadata.PROJECTION_KIND_PERSPECTIVE, m.Kind)
	assert.InDelta(t, 1/math32.Tan(math.DegToRad(30)), m.Projection.At(1, 1), 1e-5)
	assert.InDelta(t, 0.001, m.NearClip, 1e-9)
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 500}, m.Eye)

	// A resized target gets the rig projection for its new aspect.
	wide := newTarget(1600, 600)
	require.NoError(t, cs.Update("main", wide))
	assert.InDelta(t, 1600.0/600.0, wide.matrices.AspectRatio, 1e-6)

	bad := *rig
	bad.Projection.Kind = "fisheye"
	assert.ErrorIs(t, cs.ApplyRig(&bad), core.ErrRigInvalid)
	cs.OnRigLoaded(&bad, "bad.toml")

	got, err := cs.Get("main")
	require.NoError(t, err)
	_, ok := got.(*components.LookAtCamera)
	assert.True(t, ok)
}
