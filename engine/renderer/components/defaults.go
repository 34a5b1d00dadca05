package components

import (
	"github.com/spaghettifunk/camrig/engine/math"
)

const (
	/** @brief The near clip plane used when none is given. */
	DefaultNearClip float32 = 0.015
	/** @brief The far clip plane used when none is given. */
	DefaultFarClip float32 = 1500.0
	/** @brief The vertical field of view, 60 degrees. */
	DefaultFieldOfView float32 = math.K_PI / 3.0
	DefaultAspectRatio float32 = 1.0

	/** @brief Viewports narrower or shorter than this fall back to the default half extents. */
	MinViewportSize float32 = 128.0
	DefaultHalfWidth  float32 = 64.0
	DefaultHalfHeight float32 = 64.0

	/** @brief sqrt(3) / 2. Scales the viewport height into an eye distance. */
	DefaultCameraDistanceFactor float32 = 0.8660254

	/** @brief Minimum depth separating the 2D camera from its plane. */
	MinCameraDistance2 float32 = 128.0
	/** @brief The 2D far plane sits this many eye distances behind the near plane. */
	FarClipFactor2 float32 = 10.0

	PolarityTolerance = math.K_POLARITY_TOLERANCE
	Epsilon           = math.K_EPSILON
	/**
	 * @brief Sideways nudge, as a fraction of the eye distance, applied to
	 * top and bottom presets so they do not look straight along the up axis.
	 */
	PolarityOffset float32 = 0.05

	/** @brief Eye distance used by presets when the camera has none of its own. */
	DefaultEyeOffset float32 = 623.53827
)

var (
	/** @brief The default eye of a y-up (left-handed) camera. */
	DefaultLocationYUp = math.Vec3{X: 623.53827, Y: 623.53827, Z: -623.53827}
	/** @brief The default eye of a z-up (right-handed) camera. */
	DefaultLocationZUp = math.Vec3{X: 623.53827, Y: -623.53827, Z: 623.53827}
	DefaultTarget      = math.Vec3{}
)

// WorldUp returns the reference up used by a camera of the given handedness.
func WorldUp(h math.Handedness) math.Vec3 {
	if h == math.HandednessRight {
		return math.Vec3{X: 0, Y: 0, Z: 1}
	}
	return math.NewVec3Up()
}

// DefaultLocation returns the default eye of a camera of the given handedness.
func DefaultLocation(h math.Handedness) math.Vec3 {
	if h == math.HandednessRight {
		return DefaultLocationZUp
	}
	return DefaultLocationYUp
}
