package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/camrig/engine/core"
)

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief a 4x4 matrix stored in column-major order: the element at
 * row r, column c lives at Data[c*4+r]. Points are column vectors.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief The winding used when a camera basis is derived from a look
 * direction and a reference up vector.
 */
type Handedness uint8

const (
	/** @brief i = k x up, j = i x k. Used by Y-up renderers. */
	HandednessLeft Handedness = iota
	/** @brief i = up x k, j = k x i. Used by Z-up renderers. */
	HandednessRight
)

func (h Handedness) String() string {
	switch h {
	case HandednessLeft:
		return "left"
	case HandednessRight:
		return "right"
	}
	return "unknown"
}

// ParseHandedness reads a handedness name. "y-up" and "z-up" are accepted as
// aliases and an empty name is left-handed.
func ParseHandedness(name string) (Handedness, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left", "y-up", "yup":
		return HandednessLeft, nil
	case "right", "z-up", "zup":
		return HandednessRight, nil
	}
	return HandednessLeft, fmt.Errorf("%w: unknown handedness '%s'", core.ErrRigInvalid, name)
}
