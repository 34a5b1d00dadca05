package components

import (
	"golang.org/x/image/math/f64"

	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

// Spatial2 is the part of a 2D transform a camera reads.
type Spatial2 interface {
	GetLocation() math.Vec2
	GetScale() math.Vec2
	// GetRight returns the unit x axis.
	GetRight() math.Vec2
}

/**
 * @brief A camera on a plane. Its transform's location is the point shown
 * at the centre of the viewport, its scale zooms out and its rotation turns
 * the view.
 */
type Camera2 struct {
	Name      string
	Transform Spatial2
}

func NewCamera2(name string, transform Spatial2) *Camera2 {
	return &Camera2{
		Name:      name,
		Transform: transform,
	}
}

// basis returns the rotation-and-zoom block and the location. A zero scale
// component zeroes the matching terms.
func (c *Camera2) basis() (m00, m01, m10, m11 float32, loc math.Vec2) {
	r := c.Transform.GetRight()
	s := c.Transform.GetScale()
	m00 = math.SafeDiv(r.X, s.X)
	m01 = math.SafeDiv(r.Y, s.Y)
	m10 = math.SafeDiv(-r.Y, s.X)
	m11 = math.SafeDiv(r.X, s.Y)
	return m00, m01, m10, m11, c.Transform.GetLocation()
}

/**
 * @brief Returns the world-to-pixel transform for a raster renderer. Pixel
 * y grows downward, so the world y axis is flipped.
 */
func (c *Camera2) Affine(vp metadata.Viewport) f64.Aff3 {
	m00, m01, m10, m11, l := c.basis()
	return f64.Aff3{
		float64(m00), float64(m01), float64(0.5*vp.Width - l.X*m00 - l.Y*m01),
		float64(-m10), float64(-m11), float64(0.5*vp.Height + l.X*m10 + l.Y*m11),
	}
}

/**
 * @brief Returns the matrices for a GPU renderer. The camera sits
 * max(MinCameraDistance2, height) in front of the plane, looking down -z,
 * under a pixel-sized orthographic projection.
 */
func (c *Camera2) Matrices(vp metadata.Viewport) metadata.CameraMatrices {
	m00, m01, m10, m11, l := c.basis()
	r := c.Transform.GetRight()
	s := c.Transform.GetScale()
	zDist := math.Max(MinCameraDistance2, vp.Height)

	view := math.NewMat4FromRows(
		math.Vec4{X: m00, Y: m01, Z: 0, W: -l.X*m00 - l.Y*m01},
		math.Vec4{X: m10, Y: m11, Z: 0, W: -l.X*m10 - l.Y*m11},
		math.Vec4{X: 0, Y: 0, Z: 1, W: -zDist},
		math.Vec4{X: 0, Y: 0, Z: 0, W: 1})

	inverse := math.NewMat4FromRows(
		math.Vec4{X: r.X * s.X, Y: -r.Y * s.X, Z: 0, W: l.X},
		math.Vec4{X: r.Y * s.Y, Y: r.X * s.Y, Z: 0, W: l.Y},
		math.Vec4{X: 0, Y: 0, Z: 1, W: zDist},
		math.Vec4{X: 0, Y: 0, Z: 0, W: 1})

	w, h := 0.5*vp.Width, 0.5*vp.Height
	projection := Orthographic(OrthographicConfig{
		Left:     -w,
		Right:    w,
		Bottom:   -h,
		Top:      h,
		NearClip: DefaultNearClip,
		FarClip:  DefaultNearClip + zDist*FarClipFactor2,
	})

	return metadata.NewCameraMatrices().
		WithProjection(projection).
		WithView(view, inverse, math.Vec3{X: l.X, Y: l.Y, Z: zDist})
}

// UpdateRaster assigns the camera's affine transform to a raster renderer.
func (c *Camera2) UpdateRaster(target RasterTarget) {
	target.SetTransform(c.Affine(target.Viewport()))
}

// Update assigns the camera's matrices to a GPU renderer.
func (c *Camera2) Update(target CameraTarget) {
	target.SetCameraMatrices(c.Matrices(target.Viewport()))
}
