package renderer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
	"github.com/spaghettifunk/camrig/engine/renderer/raster"
)

func newRenderer(t *testing.T, w, h uint32) (*Renderer, *raster.Canvas) {
	t.Helper()
	canvas := raster.New(color.RGBA{A: 255})
	r := New(canvas)
	require.NoError(t, r.Initialize(&metadata.RendererBackendConfig{ApplicationName: "test"}, w, h))
	return r, canvas
}

func TestRendererInitializeAppliesPerspective(t *testing.T) {
	r, _ := newRenderer(t, 320, 240)

	m := r.CameraMatrices()
	assert.Equal(t, metadata.Viewport{Width: 320, Height: 240}, r.Viewport())
	assert.Equal(t, metadata.PROJECTION_KIND_PERSPECTIVE, m.Kind)
	assert.InDelta(t, 320.0/240.0, m.AspectRatio, 1e-6)
	assert.Equal(t, math.NewMat4Identity(), m.View)
}

func TestRendererResizeReprojectsAndFires(t *testing.T) {
	require.True(t, core.EventInitialize())
	defer core.EventShutdown()

	var got [2]uint32
	listener := &got
	require.True(t, core.EventRegister(core.EVENT_CODE_RESIZED, listener, func(code core.SystemEventCode, sender, inst interface{}, data core.EventContext) bool {
		got[0], got[1] = data.Data.U32[0], data.Data.U32[1]
		return true
	}))

	r, canvas := newRenderer(t, 320, 240)
	cam := components.NewLookAtCamera("main", math.HandednessLeft)
	cam.Update(r)

	require.NoError(t, r.OnResize(640, 240))

	m := r.CameraMatrices()
	assert.Equal(t, [2]uint32{640, 240}, got)
	assert.InDelta(t, 640.0/240.0, m.AspectRatio, 1e-6)
	assert.Equal(t, components.DefaultFieldOfView, m.FieldOfView)
	assert.Equal(t, cam.View(), m.View)
	assert.Equal(t, m.Projection.Mul(m.View), m.Composite)
	assert.Equal(t, 640, canvas.Image().Bounds().Dx())
}

func TestRendererDrawFrameFillsViews(t *testing.T) {
	r, canvas := newRenderer(t, 200, 100)

	cam3 := components.NewLookAtCamera("main", math.HandednessLeft)
	cam3.Update(r)
	cam2 := components.NewCamera2("ui", math.NewTransform2())
	cam2.UpdateRaster(r)

	world := &metadata.RenderViewPacket{ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD}
	ui := &metadata.RenderViewPacket{ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_UI}
	require.NoError(t, r.DrawFrame(&metadata.RenderPacket{ViewPackets: []*metadata.RenderViewPacket{world, ui}}))

	assert.Equal(t, r.CameraMatrices(), world.Matrices)
	assert.Equal(t, cam2.Affine(r.Viewport()), ui.Transform)
	assert.Equal(t, uint64(1), canvas.FrameCount())
}

func TestRendererDrawFrameFailsOnUnknownView(t *testing.T) {
	r, canvas := newRenderer(t, 16, 16)
	err := r.DrawFrame(&metadata.RenderPacket{ViewPackets: []*metadata.RenderViewPacket{{}}})
	assert.Error(t, err)
	assert.Equal(t, uint64(0), canvas.FrameCount())
}
