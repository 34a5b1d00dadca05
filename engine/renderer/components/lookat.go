package components

import (
	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

/**
 * @brief A camera aimed from an eye point at a target. Its frame is
 * {I, J, K}: right, up and back, with K pointing from the target to the eye.
 *
 * A configuration that cannot produce a frame (zero up, eye on the target,
 * or a look direction along the up vector) is ignored and the previous
 * frame stays in place.
 */
type LookAtCamera struct {
	Name       string
	Handedness math.Handedness

	I math.Vec3
	J math.Vec3
	K math.Vec3

	Eye         math.Vec3
	Target      math.Vec3
	RefUp       math.Vec3
	EyeDistance float32

	view    math.Mat4
	inverse math.Mat4
}

// NewLookAtCamera returns a camera placed at the default location for its handedness.
func NewLookAtCamera(name string, handedness math.Handedness) *LookAtCamera {
	c := &LookAtCamera{
		Name:       name,
		Handedness: handedness,
		view:       math.NewMat4Identity(),
		inverse:    math.NewMat4Identity(),
	}
	c.Reset()
	return c
}

// Reset returns the camera to its default eye, target and reference up.
func (c *LookAtCamera) Reset() {
	c.DefaultCamera()
}

/**
 * @brief Aims the camera from eye at target, keeping up as close to the
 * reference up as possible. Returns false and keeps the previous state
 * when the configuration is degenerate.
 */
func (c *LookAtCamera) LookAt(eye, target, up math.Vec3) bool {
	basis, err := math.NewLookAtBasis(eye, target, up, c.Handedness, PolarityTolerance)
	if err != nil {
		core.LogDebug("camera '%s' look-at ignored: %s", c.Name, err)
		return false
	}

	c.I, c.J, c.K = basis.Right, basis.Up, basis.Back
	c.Eye = eye
	c.Target = target
	c.RefUp = up
	c.EyeDistance = basis.Distance

	c.view, c.inverse = math.NewMat4View(c.I, c.J, c.K, c.Eye)
	return true
}

// LookAtTarget aims from eye at target with the stored reference up.
func (c *LookAtCamera) LookAtTarget(eye, target math.Vec3) bool {
	up := c.RefUp
	if up.LengthSquared() < Epsilon {
		up = WorldUp(c.Handedness)
	}
	return c.LookAt(eye, target, up)
}

// Camera rebuilds the frame from the stored eye, target and reference up.
func (c *LookAtCamera) Camera() bool {
	return c.LookAtTarget(c.Eye, c.Target)
}

func (c *LookAtCamera) View() math.Mat4 {
	return c.view
}

func (c *LookAtCamera) InverseView() math.Mat4 {
	return c.inverse
}

// Matrices returns current with the view pair and eye replaced.
func (c *LookAtCamera) Matrices(current metadata.CameraMatrices) metadata.CameraMatrices {
	return current.WithView(c.view, c.inverse, c.Eye)
}

func (c *LookAtCamera) Update(target CameraTarget) {
	target.SetCameraMatrices(c.Matrices(target.CameraMatrices()))
}

// localToWorld maps a vector along I, J and K into world space.
func (c *LookAtCamera) localToWorld(local math.Vec3) math.Vec3 {
	return local.TransformDirection(c.inverse)
}

// Strafe moves the eye and the target together along the camera's own axes.
func (c *LookAtCamera) Strafe(local math.Vec3) bool {
	delta := c.localToWorld(local)
	return c.LookAt(c.Eye.Add(delta), c.Target.Add(delta), c.RefUp)
}

// Dolly moves the eye and target along K. Positive amounts move away from the target's side.
func (c *LookAtCamera) Dolly(z float32) bool {
	return c.Strafe(math.Vec3{X: 0, Y: 0, Z: z})
}

// Truck moves the eye and target along I.
func (c *LookAtCamera) Truck(x float32) bool {
	return c.Strafe(math.Vec3{X: x, Y: 0, Z: 0})
}

// Pedestal moves the eye and target along J.
func (c *LookAtCamera) Pedestal(y float32) bool {
	return c.Strafe(math.Vec3{X: 0, Y: y, Z: 0})
}

// MoveTo places the eye and keeps looking at the current target.
func (c *LookAtCamera) MoveTo(eye math.Vec3) bool {
	return c.LookAt(eye, c.Target, c.RefUp)
}

// MoveByLocal moves only the eye along the camera's own axes, orbiting the target.
func (c *LookAtCamera) MoveByLocal(local math.Vec3) bool {
	return c.MoveTo(c.Eye.Add(c.localToWorld(local)))
}
