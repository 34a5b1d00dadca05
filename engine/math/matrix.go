package math

import (
	"github.com/chewxy/math32"
)

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Data[0] = 1.0
	out_matrix.Data[5] = 1.0
	out_matrix.Data[10] = 1.0
	out_matrix.Data[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates a matrix from four rows given in reading order.
 */
func NewMat4FromRows(r0, r1, r2, r3 Vec4) Mat4 {
	out_matrix := Mat4{}
	for r, row := range [4]Vec4{r0, r1, r2, r3} {
		out_matrix.Data[0+r] = row.X
		out_matrix.Data[4+r] = row.Y
		out_matrix.Data[8+r] = row.Z
		out_matrix.Data[12+r] = row.W
	}
	return out_matrix
}

// At returns the element at the given row and column.
func (mt Mat4) At(row, col int) float32 {
	return mt.Data[col*4+row]
}

// Row returns the given row as a vector.
func (mt Mat4) Row(row int) Vec4 {
	return NewVec4(mt.Data[row], mt.Data[4+row], mt.Data[8+row], mt.Data[12+row])
}

/**
 * @brief Returns the product mt * other. Applied to a point, other acts first.
 *
 * @param other The right-hand matrix.
 * @return The result of the matrix multiplication.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	out_matrix := Mat4{}
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			sum := float32(0)
			for i := 0; i < 4; i++ {
				sum += mt.Data[i*4+row] * other.Data[col*4+i]
			}
			out_matrix.Data[col*4+row] = sum
		}
	}
	return out_matrix
}

// MulVec4 returns mt * v.
func (mt Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		mt.Row(0).Dot(v),
		mt.Row(1).Dot(v),
		mt.Row(2).Dot(v),
		mt.Row(3).Dot(v)}
}

/**
 * @brief Transforms a point into clip space and applies the perspective divide.
 * A point with w == 0 maps to the origin.
 */
func (mt Mat4) Project(point Vec3) Vec3 {
	clip := mt.MulVec4(point.ToVec4(1))
	return Vec3{
		SafeDiv(clip.X, clip.W),
		SafeDiv(clip.Y, clip.W),
		SafeDiv(clip.Z, clip.W)}
}

// Compare reports whether every element differs by no more than tolerance.
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if math32.Abs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

// IsZero reports whether the matrix has never been written.
func (mt Mat4) IsZero() bool {
	return mt == Mat4{}
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes. Degenerate extents produce zero terms.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := NewMat4Identity()

	w := SafeDiv(1.0, right-left)
	h := SafeDiv(1.0, top-bottom)
	d := SafeDiv(1.0, far_clip-near_clip)

	out_matrix.Data[0] = 2.0 * w
	out_matrix.Data[5] = 2.0 * h
	out_matrix.Data[10] = -2.0 * d

	out_matrix.Data[12] = -(right + left) * w
	out_matrix.Data[13] = -(top + bottom) * h
	out_matrix.Data[14] = -(far_clip + near_clip) * d
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_radians The vertical field of view in radians.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_radians, aspect_ratio, near_clip, far_clip float32) Mat4 {
	cot := Cot(fov_radians * 0.5)
	d := SafeDiv(1.0, far_clip-near_clip)

	out_matrix := Mat4{}
	out_matrix.Data[0] = SafeDiv(cot, aspect_ratio)
	out_matrix.Data[5] = cot
	out_matrix.Data[10] = -(far_clip + near_clip) * d
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -2.0 * far_clip * near_clip * d
	return out_matrix
}

/**
 * @brief Creates and returns an off-axis perspective matrix from the extents
 * of the near plane.
 */
func NewMat4Frustum(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	w := SafeDiv(1.0, right-left)
	h := SafeDiv(1.0, top-bottom)
	d := SafeDiv(1.0, far_clip-near_clip)
	n2 := 2.0 * near_clip

	out_matrix := Mat4{}
	out_matrix.Data[0] = n2 * w
	out_matrix.Data[5] = n2 * h
	out_matrix.Data[8] = (right + left) * w
	out_matrix.Data[9] = (top + bottom) * h
	out_matrix.Data[10] = -(far_clip + near_clip) * d
	out_matrix.Data[11] = -1.0
	out_matrix.Data[14] = -n2 * far_clip * d
	return out_matrix
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. Uses the right-handed
 * winding; a degenerate configuration returns the identity.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	basis, err := NewLookAtBasis(position, target, up, HandednessRight, K_POLARITY_TOLERANCE)
	if err != nil {
		return NewMat4Identity()
	}
	view, _ := NewMat4View(basis.Right, basis.Up, basis.Back, position)
	return view
}

/**
 * @brief Returns a transposed copy of the provided matrix (rows->colums)
 */
func NewMat4Transposed(matrix Mat4) Mat4 {
	out_matrix := Mat4{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out_matrix.Data[r*4+c] = matrix.Data[c*4+r]
		}
	}
	return out_matrix
}

/**
 * @brief Creates and returns an inverse of the provided matrix. A singular
 * matrix yields the zero matrix.
 */
func (mt Mat4) Inverse() Mat4 {
	m := mt.Data

	t0 := m[10] * m[15]
	t1 := m[14] * m[11]
	t2 := m[6] * m[15]
	t3 := m[14] * m[7]
	t4 := m[6] * m[11]
	t5 := m[10] * m[7]
	t6 := m[2] * m[15]
	t7 := m[14] * m[3]
	t8 := m[2] * m[11]
	t9 := m[10] * m[3]
	t10 := m[2] * m[7]
	t11 := m[6] * m[3]
	t12 := m[8] * m[13]
	t13 := m[12] * m[9]
	t14 := m[4] * m[13]
	t15 := m[12] * m[5]
	t16 := m[4] * m[9]
	t17 := m[8] * m[5]
	t18 := m[0] * m[13]
	t19 := m[12] * m[1]
	t20 := m[0] * m[9]
	t21 := m[8] * m[1]
	t22 := m[0] * m[5]
	t23 := m[4] * m[1]

	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = (t0*m[5] + t3*m[9] + t4*m[13]) - (t1*m[5] + t2*m[9] + t5*m[13])
	o[1] = (t1*m[1] + t6*m[9] + t9*m[13]) - (t0*m[1] + t7*m[9] + t8*m[13])
	o[2] = (t2*m[1] + t7*m[5] + t10*m[13]) - (t3*m[1] + t6*m[5] + t11*m[13])
	o[3] = (t5*m[1] + t8*m[5] + t11*m[9]) - (t4*m[1] + t9*m[5] + t10*m[9])

	d := SafeDiv(1.0, m[0]*o[0]+m[4]*o[1]+m[8]*o[2]+m[12]*o[3])

	o[0] = d * o[0]
	o[1] = d * o[1]
	o[2] = d * o[2]
	o[3] = d * o[3]
	o[4] = d * ((t1*m[4] + t2*m[8] + t5*m[12]) - (t0*m[4] + t3*m[8] + t4*m[12]))
	o[5] = d * ((t0*m[0] + t7*m[8] + t8*m[12]) - (t1*m[0] + t6*m[8] + t9*m[12]))
	o[6] = d * ((t3*m[0] + t6*m[4] + t11*m[12]) - (t2*m[0] + t7*m[4] + t10*m[12]))
	o[7] = d * ((t4*m[0] + t9*m[4] + t10*m[8]) - (t5*m[0] + t8*m[4] + t11*m[8]))
	o[8] = d * ((t12*m[7] + t15*m[11] + t16*m[15]) - (t13*m[7] + t14*m[11] + t17*m[15]))
	o[9] = d * ((t13*m[3] + t18*m[11] + t21*m[15]) - (t12*m[3] + t19*m[11] + t20*m[15]))
	o[10] = d * ((t14*m[3] + t19*m[7] + t22*m[15]) - (t15*m[3] + t18*m[7] + t23*m[15]))
	o[11] = d * ((t17*m[3] + t20*m[7] + t23*m[11]) - (t16*m[3] + t21*m[7] + t22*m[11]))
	o[12] = d * ((t14*m[10] + t17*m[14] + t13*m[6]) - (t16*m[14] + t12*m[6] + t15*m[10]))
	o[13] = d * ((t20*m[14] + t12*m[2] + t19*m[10]) - (t18*m[10] + t21*m[14] + t13*m[2]))
	o[14] = d * ((t18*m[6] + t23*m[14] + t15*m[2]) - (t22*m[14] + t14*m[2] + t19*m[6]))
	o[15] = d * ((t22*m[10] + t16*m[2] + t21*m[6]) - (t20*m[6] + t23*m[10] + t17*m[2]))

	return out_matrix
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix about the z axis, counter-clockwise
 * for positive angles.
 *
 * @param angle_radians The z angle in radians.
 * @return A rotation matrix.
 */
func NewMat4EulerZ(angle_radians float32) Mat4 {
	out_matrix := NewMat4Identity()

	c := math32.Cos(angle_radians)
	s := math32.Sin(angle_radians)

	out_matrix.Data[0] = c
	out_matrix.Data[1] = s
	out_matrix.Data[4] = -s
	out_matrix.Data[5] = c
	return out_matrix
}
