package testbed

import (
	"fmt"
	"image/color"

	"github.com/spaghettifunk/camrig/engine"
	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
	"github.com/spaghettifunk/camrig/engine/systems"
)

// WorldCameraName is the camera the testbed orbits. A rig with this name replaces it.
const WorldCameraName string = "world"

const (
	orbitFraction float32 = 0.04
	panStep       float32 = 2
	zoomStep      float32 = 0.02
	minZoom       float32 = 0.5
	maxZoom       float32 = 2
)

type TestGame struct {
	*engine.Game
}

type gameState struct {
	handedness math.Handedness

	hudTransform *math.Transform2
	hudCamera    *components.Camera2
	zoom         float32
	zoomDir      float32

	meshes []*metadata.Mesh
	shapes []metadata.Shape2

	width  uint32
	height uint32
}

// NewTestGame builds the demo around config, or around the defaults when config is nil.
func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = engine.DefaultApplicationConfig("camrig testbed")
		config.Frames = 120
	}
	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			State: &gameState{
				zoom:    1,
				zoomDir: 1,
			},
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown
	return tg
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize() error {
	core.LogInfo("initializing testbed...")
	state := g.state()

	h, err := math.ParseHandedness(g.ApplicationConfig.Handedness)
	if err != nil {
		return err
	}
	state.handedness = h

	cameras := g.SystemManager.CameraSystem()
	camera, err := cameras.Acquire(WorldCameraName)
	if err != nil {
		return err
	}
	// A camera loaded from a rig keeps the placement its file gave it.
	if orbit, ok := camera.(*components.LookAtCamera); ok && cameras.ReferenceCount(WorldCameraName) == 1 {
		if !orbit.CamDimetric(0) {
			return fmt.Errorf("failed to place camera '%s'", WorldCameraName)
		}
	}

	state.hudTransform = math.NewTransform2()
	state.hudCamera = components.NewCamera2("hud", state.hudTransform)

	white := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	cube := systems.GenerateCubeGeometry(100, 100, 100, "cube", color.RGBA{R: 240, G: 160, B: 40, A: 255})
	grid := systems.GenerateGridGeometry(800, 800, 16, 16, h, "grid", color.RGBA{R: 90, G: 90, B: 110, A: 255})
	small := systems.GenerateCubeGeometry(40, 40, 40, "small", white)

	offset := math.Vec3{X: 200}
	if h == math.HandednessRight {
		offset.Z = 20
	} else {
		offset.Y = 20
	}
	state.meshes = []*metadata.Mesh{
		{Name: "grid", Geometries: []*metadata.Geometry{grid}},
		{Name: "cube", Geometries: []*metadata.Geometry{cube}, Transform: math.NewTransform3()},
		{Name: "small", Geometries: []*metadata.Geometry{small}, Transform: math.NewTransform3FromPosition(offset)},
	}
	return nil
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.state()

	camera, err := g.SystemManager.CameraSystem().Get(WorldCameraName)
	if err != nil {
		return err
	}
	switch c := camera.(type) {
	case *components.LookAtCamera:
		if !c.MoveByLocal(math.Vec3{X: c.EyeDistance * orbitFraction}) {
			core.LogDebug("orbit step rejected for '%s'", WorldCameraName)
		}
	case *components.Camera3:
		c.MoveBy(math.Vec3{X: panStep})
	}

	state.hudTransform.MoveBy(math.Vec2{X: panStep})
	state.zoom += zoomStep * state.zoomDir
	if state.zoom >= maxZoom || state.zoom <= minZoom {
		state.zoomDir = -state.zoomDir
	}
	state.zoom = math.Clamp(state.zoom, minZoom, maxZoom)
	state.hudTransform.ScaleTo(math.Vec2{X: state.zoom, Y: state.zoom})
	return nil
}

func (g *TestGame) Render(packet *metadata.RenderPacket, deltaTime float64) error {
	state := g.state()

	if err := g.SystemManager.CameraSystem().Update(WorldCameraName, g.Renderer); err != nil {
		return err
	}
	state.hudCamera.UpdateRaster(g.Renderer)

	packet.ViewPackets = append(packet.ViewPackets,
		&metadata.RenderViewPacket{
			ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD,
			Meshes:   state.meshes,
		},
		&metadata.RenderViewPacket{
			ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_UI,
			Shapes:   state.shapes,
		},
	)
	return nil
}

// OnResize lays the HUD markers out along the bottom edge of the new viewport.
func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.width, state.height = width, height

	w, h := float32(width), float32(height)
	size := h * 0.05
	base := -h/2 + size
	state.shapes = state.shapes[:0]
	for i := float32(-2); i <= 2; i++ {
		x := i * w / 6
		state.shapes = append(state.shapes, metadata.Shape2{
			Points: []math.Vec2{
				math.NewVec2(x-size, base),
				math.NewVec2(x+size, base),
				math.NewVec2(x, base+size*1.5),
			},
			Colour: color.RGBA{R: 80, G: 200, B: 120, A: 200},
		})
	}
	return nil
}

func (g *TestGame) Shutdown() error {
	g.SystemManager.CameraSystem().Release(WorldCameraName)
	core.LogInfo("testbed shut down")
	return nil
}
