package components

import (
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

// Presets closer than this use DefaultEyeOffset instead of the current eye distance.
const MinEyeDistance float32 = 128.0

var (
	// Pixel-art dimetric look direction (rise 1, run 2, yaw 45 degrees) for y-up cameras.
	dimetricYUp = math.Vec3{X: 0.590089, Y: 0.55098987, Z: -0.590089}
	// The same direction for z-up cameras.
	dimetricZUp = math.Vec3{X: 0.590089, Y: 0.590089, Z: 0.55098987}
)

func (c *LookAtCamera) presetDistance() float32 {
	if c.EyeDistance < MinEyeDistance {
		return DefaultEyeOffset
	}
	return c.EyeDistance
}

func (c *LookAtCamera) lookAtOrigin(eye math.Vec3) bool {
	return c.LookAt(eye, DefaultTarget, WorldUp(c.Handedness))
}

// CamNorth looks north at the origin.
func (c *LookAtCamera) CamNorth() bool {
	d := c.presetDistance()
	if c.Handedness == math.HandednessRight {
		return c.lookAtOrigin(math.Vec3{X: 0, Y: -d, Z: 0})
	}
	return c.lookAtOrigin(math.NewVec3Forward().MulScalar(d))
}

// CamSouth looks south at the origin.
func (c *LookAtCamera) CamSouth() bool {
	d := c.presetDistance()
	if c.Handedness == math.HandednessRight {
		return c.lookAtOrigin(math.Vec3{X: 0, Y: d, Z: 0})
	}
	return c.lookAtOrigin(math.NewVec3Back().MulScalar(d))
}

// CamEast looks east at the origin from the negative x axis.
func (c *LookAtCamera) CamEast() bool {
	return c.lookAtOrigin(math.NewVec3Right().MulScalar(-c.presetDistance()))
}

// CamWest looks west at the origin from the positive x axis.
func (c *LookAtCamera) CamWest() bool {
	return c.lookAtOrigin(math.NewVec3Right().MulScalar(c.presetDistance()))
}

// CamTop looks down at the origin, nudged off the up axis by PolarityOffset.
func (c *LookAtCamera) CamTop() bool {
	d := c.presetDistance()
	if c.Handedness == math.HandednessRight {
		return c.lookAtOrigin(math.Vec3{X: 0, Y: -d * PolarityOffset, Z: d})
	}
	return c.lookAtOrigin(math.Vec3{X: 0, Y: d, Z: d * PolarityOffset})
}

// CamBottom looks up at the origin, nudged off the up axis by PolarityOffset.
func (c *LookAtCamera) CamBottom() bool {
	d := c.presetDistance()
	if c.Handedness == math.HandednessRight {
		return c.lookAtOrigin(math.Vec3{X: 0, Y: d * PolarityOffset, Z: -d})
	}
	return c.lookAtOrigin(math.Vec3{X: 0, Y: -d, Z: d * PolarityOffset})
}

/**
 * @brief Orbits the current target at the given distance along the
 * dimetric direction used for pixel art. Pair it with an orthographic
 * projection. An orbit under Epsilon uses the default eye distance.
 */
func (c *LookAtCamera) CamDimetric(orbit float32) bool {
	if orbit < Epsilon {
		orbit = DefaultEyeOffset * DefaultCameraDistanceFactor
	}
	dir := dimetricYUp
	if c.Handedness == math.HandednessRight {
		dir = dimetricZUp
	}
	return c.LookAt(c.Target.Add(dir.MulScalar(orbit)), c.Target, WorldUp(c.Handedness))
}

/**
 * @brief Looks at the centre of the viewport with y pointing down, so
 * world units map to pixels with the origin in the top left corner.
 */
func (c *LookAtCamera) CamFlipped(vp metadata.Viewport) bool {
	w, h := 0.5*vp.Width, 0.5*vp.Height
	z := vp.Height * DefaultCameraDistanceFactor
	if vp.Height < MinViewportSize {
		z = DefaultEyeOffset
	}
	if c.Handedness == math.HandednessRight {
		z = -z
	}
	return c.LookAt(math.Vec3{X: w, Y: h, Z: z}, math.Vec3{X: w, Y: h, Z: 0}, math.Vec3{X: 0, Y: -1, Z: 0})
}

// DefaultCamera looks at the origin from the default location for the camera's handedness.
func (c *LookAtCamera) DefaultCamera() bool {
	return c.LookAt(DefaultLocation(c.Handedness), DefaultTarget, WorldUp(c.Handedness))
}
