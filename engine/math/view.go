package math

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/camrig/engine/core"
)

const (
	/** @brief Squared lengths below this are treated as zero. */
	K_EPSILON float32 = 1e-6
	/**
	 * @brief How close |dot(forward, up)| may come to 1 before a look
	 * direction is considered parallel to the reference up.
	 */
	K_POLARITY_TOLERANCE float32 = 0.001
)

// LookAtBasis is an orthonormal camera frame. Back points from the
// target towards the eye, so the camera looks down -Back.
type LookAtBasis struct {
	Right Vec3
	Up    Vec3
	Back  Vec3
	// Distance between the eye and the target.
	Distance float32
}

// NewLookAtBasis derives a camera frame from an eye, a target and a reference
// up vector. It returns core.ErrZeroUpVector, core.ErrZeroLookDirection or
// core.ErrParallelUpVector when the configuration cannot produce a frame.
func NewLookAtBasis(eye, target, up Vec3, handedness Handedness, polarity float32) (LookAtBasis, error) {
	if up.LengthSquared() < K_EPSILON {
		return LookAtBasis{}, core.ErrZeroUpVector
	}

	lookDir := eye.Sub(target)
	distSq := lookDir.LengthSquared()
	if distSq < K_EPSILON {
		return LookAtBasis{}, core.ErrZeroLookDirection
	}

	dist := math32.Sqrt(distSq)
	k := lookDir.MulScalar(1.0 / dist)
	if math32.Abs(k.Dot(up.Normalized())) > 1.0-polarity {
		return LookAtBasis{}, core.ErrParallelUpVector
	}

	var i, j Vec3
	switch handedness {
	case HandednessRight:
		i = up.Cross(k).Normalized()
		j = k.Cross(i).Normalized()
	default:
		i = k.Cross(up).Normalized()
		j = i.Cross(k).Normalized()
	}

	return LookAtBasis{Right: i, Up: j, Back: k, Distance: dist}, nil
}

/**
 * @brief Builds a view matrix and its inverse from an orthonormal frame
 * and an eye position. Both are closed forms; nothing is inverted numerically.
 *
 * The view has rows right, up and back, each translated by -dot(axis, eye).
 * The inverse has those axes as columns and eye as its translation.
 */
func NewMat4View(right, up, back, eye Vec3) (view, inverse Mat4) {
	view.Data[0] = right.X
	view.Data[4] = right.Y
	view.Data[8] = right.Z
	view.Data[12] = -right.Dot(eye)

	view.Data[1] = up.X
	view.Data[5] = up.Y
	view.Data[9] = up.Z
	view.Data[13] = -up.Dot(eye)

	view.Data[2] = back.X
	view.Data[6] = back.Y
	view.Data[10] = back.Z
	view.Data[14] = -back.Dot(eye)

	view.Data[15] = 1.0

	inverse.Data[0] = right.X
	inverse.Data[1] = right.Y
	inverse.Data[2] = right.Z

	inverse.Data[4] = up.X
	inverse.Data[5] = up.Y
	inverse.Data[6] = up.Z

	inverse.Data[8] = back.X
	inverse.Data[9] = back.Y
	inverse.Data[10] = back.Z

	inverse.Data[12] = eye.X
	inverse.Data[13] = eye.Y
	inverse.Data[14] = eye.Z
	inverse.Data[15] = 1.0

	return view, inverse
}
