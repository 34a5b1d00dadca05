package renderer

import (
	"fmt"
	"sync"

	"golang.org/x/image/math/f64"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

/**
 * @brief The renderer frontend. It owns the camera state a backend draws
 * with: the world view's CameraMatrices and the UI view's affine transform.
 * Cameras write into it through the CameraTarget and RasterTarget interfaces.
 */
type Renderer struct {
	mu        sync.RWMutex
	backend   RendererBackend
	viewport  metadata.Viewport
	matrices  metadata.CameraMatrices
	transform f64.Aff3
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{
		backend:   backend,
		matrices:  metadata.NewCameraMatrices(),
		transform: f64.Aff3{1, 0, 0, 0, 1, 0},
	}
}

// Initialize starts the backend and sets up the default perspective for the window size.
func (r *Renderer) Initialize(config *metadata.RendererBackendConfig, width, height uint32) error {
	if err := r.backend.Initialize(config, width, height); err != nil {
		return err
	}
	r.mu.Lock()
	r.viewport = metadata.Viewport{Width: float32(width), Height: float32(height)}
	r.mu.Unlock()

	components.ApplyPerspective(r)
	return nil
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) Viewport() metadata.Viewport {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.viewport
}

func (r *Renderer) CameraMatrices() metadata.CameraMatrices {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.matrices
}

func (r *Renderer) SetCameraMatrices(m metadata.CameraMatrices) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matrices = m
}

func (r *Renderer) Transform() f64.Aff3 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.transform
}

func (r *Renderer) SetTransform(m f64.Aff3) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transform = m
}

/**
 * @brief Resizes the backend, rebuilds the projection for the new viewport
 * and fires EVENT_CODE_RESIZED so cameras can refresh.
 */
func (r *Renderer) OnResize(width, height uint32) error {
	if err := r.backend.Resized(width, height); err != nil {
		return err
	}
	r.mu.Lock()
	prev := r.viewport
	r.viewport = metadata.Viewport{Width: float32(width), Height: float32(height)}
	vp := r.viewport
	current := r.matrices.ProjectionSlot()
	r.mu.Unlock()

	components.ApplyProjection(r, components.Reproject(current, prev, vp))

	ctx := core.EventContext{}
	ctx.Data.U32[0] = width
	ctx.Data.U32[1] = height
	core.EventFire(core.EVENT_CODE_RESIZED, r, ctx)
	return nil
}

// DrawFrame fills each view with the current camera state and hands the packet to the backend.
func (r *Renderer) DrawFrame(renderPacket *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(renderPacket.DeltaTime); err != nil {
		core.LogError(err.Error())
		return err
	}

	matrices, transform := r.CameraMatrices(), r.Transform()
	for _, view := range renderPacket.ViewPackets {
		switch view.ViewType {
		case metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD:
			view.Matrices = matrices
		case metadata.RENDERER_VIEW_KNOWN_TYPE_UI:
			view.Transform = transform
		}
		if err := r.backend.DrawView(view); err != nil {
			err = fmt.Errorf("failed to draw %s view: %w", view.ViewType, err)
			core.LogError(err.Error())
			return err
		}
	}

	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
