package components

import (
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

// Spatial3 is the part of a 3D transform a camera reads. Axes are unit
// length and mutually orthogonal.
type Spatial3 interface {
	GetLocation() math.Vec3
	GetAxes() (right, forward, up math.Vec3)
}

// Mover3 is implemented by transforms a camera may move.
type Mover3 interface {
	TranslateLocal(local math.Vec3)
}

/**
 * @brief A camera whose view comes straight from its transform: it looks
 * along the transform's forward axis with the transform's up axis on top.
 */
type Camera3 struct {
	Name      string
	Transform Spatial3
}

func NewCamera3(name string, transform Spatial3) *Camera3 {
	return &Camera3{
		Name:      name,
		Transform: transform,
	}
}

/**
 * @brief Returns current with the view pair replaced. When current carries
 * no projection the default perspective for the viewport is used.
 */
func (c *Camera3) Matrices(current metadata.CameraMatrices, vp metadata.Viewport) metadata.CameraMatrices {
	right, forward, up := c.Transform.GetAxes()
	loc := c.Transform.GetLocation()

	view, inverse := math.NewMat4View(right, up, forward.Negate(), loc)
	if current.Projection.IsZero() {
		current = current.WithProjection(PerspectiveDefault(vp))
	}
	return current.WithView(view, inverse, loc)
}

func (c *Camera3) Update(target CameraTarget) {
	target.SetCameraMatrices(c.Matrices(target.CameraMatrices(), target.Viewport()))
}

// Dolly moves the camera along its forward axis. Returns false when the
// transform cannot be moved.
func (c *Camera3) Dolly(amount float32) bool {
	return c.MoveBy(math.Vec3{X: 0, Y: amount, Z: 0})
}

// MoveBy moves the camera by right, forward and up amounts.
func (c *Camera3) MoveBy(local math.Vec3) bool {
	m, ok := c.Transform.(Mover3)
	if !ok {
		return false
	}
	m.TranslateLocal(local)
	return true
}
