package math

import (
	"github.com/chewxy/math32"
)

/**
 * @brief The position, rotation and scale of an object on a plane. The
 * rotation is an angle in radians, counter-clockwise from the x axis.
 */
type Transform2 struct {
	Position Vec2
	Rotation float32
	Scale    Vec2
	// Cached unit x axis, refreshed whenever Rotation changes.
	right Vec2
}

func NewTransform2() *Transform2 {
	t := &Transform2{Position: NewVec2Zero(), Scale: NewVec2One()}
	t.RotateTo(0)
	return t
}

func NewTransform2FromPosition(position Vec2) *Transform2 {
	t := NewTransform2()
	t.Position = position
	return t
}

func (t *Transform2) MoveTo(position Vec2) {
	t.Position = position
}

func (t *Transform2) MoveBy(translation Vec2) {
	t.Position = t.Position.Add(translation)
}

func (t *Transform2) RotateTo(radians float32) {
	t.Rotation = radians
	t.right = NewVec2FromAngle(radians)
}

func (t *Transform2) RotateBy(radians float32) {
	t.RotateTo(t.Rotation + radians)
}

func (t *Transform2) ScaleTo(scale Vec2) {
	t.Scale = scale
}

func (t *Transform2) GetLocation() Vec2 {
	return t.Position
}

func (t *Transform2) GetScale() Vec2 {
	return t.Scale
}

// GetRight returns the unit x axis, (cos, sin) of the rotation.
func (t *Transform2) GetRight() Vec2 {
	if t.right == (Vec2{}) {
		t.RotateTo(t.Rotation)
	}
	return t.right
}

// GetForward returns the unit y axis, (-sin, cos) of the rotation.
func (t *Transform2) GetForward() Vec2 {
	return t.GetRight().Perpendicular()
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods below
 * to ensure proper matrix generation.
 *
 * Axes follow a z-up frame: the unrotated right is +x,
 * forward is +y and up is +z.
 */
type Transform3 struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world. */
	Rotation Quaternion
	/** @brief The scale in the world. */
	Scale Vec3
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4
	/** @brief A parent transform if one is assigned. Can also be nil. */
	Parent *Transform3
}

func NewTransform3() *Transform3 {
	return NewTransform3FromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransform3FromPosition(position Vec3) *Transform3 {
	return NewTransform3FromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransform3FromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform3 {
	t := &Transform3{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local = NewMat4Identity()
	return t
}

func (t *Transform3) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform3) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

// TranslateLocal moves by a vector expressed along the transform's own axes.
func (t *Transform3) TranslateLocal(local Vec3) {
	right, forward, up := t.GetAxes()
	t.Translate(right.MulScalar(local.X).
		Add(forward.MulScalar(local.Y)).
		Add(up.MulScalar(local.Z)))
}

func (t *Transform3) SetRotation(rotation Quaternion) {
	t.Rotation = rotation.Normalize()
	t.IsDirty = true
}

func (t *Transform3) Rotate(rotation Quaternion) {
	t.Rotation = rotation.Mul(t.Rotation).Normalize()
	t.IsDirty = true
}

// RotateZ turns the transform about the world z axis.
func (t *Transform3) RotateZ(radians float32) {
	t.Rotate(NewQuatFromAxisAngle(Vec3{0, 0, 1}, radians, true))
}

func (t *Transform3) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform3) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.SetPosition(position)
	t.SetRotation(rotation)
	t.SetScale(scale)
}

/**
 * @brief Turns the transform so its forward axis points at target, keeping
 * its up axis as close to refUp as possible. Returns false and leaves the
 * rotation unchanged when target coincides with the position or lies along refUp.
 */
func (t *Transform3) LookAt(target, refUp Vec3) bool {
	basis, err := NewLookAtBasis(target, t.GetLocation(), refUp, HandednessRight, K_POLARITY_TOLERANCE)
	if err != nil {
		return false
	}
	// With the eye and target swapped, Back points along the new forward.
	forward := basis.Back
	right := forward.Cross(refUp).Normalized()
	up := right.Cross(forward)
	world := NewQuatFromAxes(right, forward, up)
	if t.Parent != nil {
		world = t.Parent.GetWorldRotation().Inverse().Mul(world)
	}
	t.SetRotation(world)
	return true
}

/**
 * @brief Returns the local matrix, T * R * S, recalculating it if dirty.
 */
func (t *Transform3) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		t.Local = NewMat4Translation(t.Position).
			Mul(t.Rotation.ToMat4()).
			Mul(NewMat4Scale(t.Scale))
		t.IsDirty = false
	}
	return t.Local
}

func (t *Transform3) GetWorld() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		return t.Parent.GetWorld().Mul(l)
	}
	return l
}

func (t *Transform3) GetWorldRotation() Quaternion {
	if t.Parent != nil {
		return t.Parent.GetWorldRotation().Mul(t.Rotation)
	}
	return t.Rotation
}

// GetLocation returns the world-space position.
func (t *Transform3) GetLocation() Vec3 {
	if t.Parent == nil {
		return t.Position
	}
	w := t.GetWorld()
	return Vec3{w.Data[12], w.Data[13], w.Data[14]}
}

func (t *Transform3) GetScale() Vec3 {
	return t.Scale
}

// GetAxes returns the world-space right, forward and up unit vectors.
func (t *Transform3) GetAxes() (right, forward, up Vec3) {
	q := t.GetWorldRotation().Normalize()
	return q.Rotate(Vec3{1, 0, 0}), q.Rotate(Vec3{0, 1, 0}), q.Rotate(Vec3{0, 0, 1})
}

// Heading returns the rotation about the z axis in radians.
func (t *Transform3) Heading() float32 {
	_, forward, _ := t.GetAxes()
	return math32.Atan2(-forward.X, forward.Y)
}
