package components

import (
	"github.com/chewxy/math32"

	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

/** @brief Parameters of an orthographic projection. */
type OrthographicConfig struct {
	Left     float32
	Right    float32
	Bottom   float32
	Top      float32
	NearClip float32
	FarClip  float32
}

/** @brief Parameters of a symmetric perspective projection. FieldOfView is vertical, in radians. */
type PerspectiveConfig struct {
	FieldOfView float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32
}

/** @brief Parameters of an off-axis perspective projection, given as near plane extents. */
type FrustumConfig struct {
	Left     float32
	Right    float32
	Bottom   float32
	Top      float32
	NearClip float32
	FarClip  float32
}

// halfExtents returns half the viewport size, falling back to the default
// half extents for dimensions under MinViewportSize.
func halfExtents(vp metadata.Viewport) (float32, float32) {
	w, h := DefaultHalfWidth, DefaultHalfHeight
	if vp.Width >= MinViewportSize {
		w = 0.5 * vp.Width
	}
	if vp.Height >= MinViewportSize {
		h = 0.5 * vp.Height
	}
	return w, h
}

// DefaultOrthographicConfig centres a pixel-sized window on the origin.
func DefaultOrthographicConfig(vp metadata.Viewport) OrthographicConfig {
	w, h := halfExtents(vp)
	return OrthographicConfig{
		Left:     -w,
		Right:    w,
		Bottom:   -h,
		Top:      h,
		NearClip: DefaultNearClip,
		FarClip:  DefaultFarClip,
	}
}

func DefaultPerspectiveConfig(vp metadata.Viewport) PerspectiveConfig {
	return PerspectiveConfig{
		FieldOfView: DefaultFieldOfView,
		AspectRatio: vp.AspectRatio(),
		NearClip:    DefaultNearClip,
		FarClip:     DefaultFarClip,
	}
}

// DefaultFrustumConfig matches the default perspective: the near plane is
// sized from the default field of view and the viewport aspect.
func DefaultFrustumConfig(vp metadata.Viewport) FrustumConfig {
	top := DefaultNearClip * math32.Tan(DefaultFieldOfView*0.5)
	right := top * vp.AspectRatio()
	return FrustumConfig{
		Left:     -right,
		Right:    right,
		Bottom:   -top,
		Top:      top,
		NearClip: DefaultNearClip,
		FarClip:  DefaultFarClip,
	}
}

func Orthographic(cfg OrthographicConfig) metadata.Projection {
	return metadata.Projection{
		Kind:        metadata.PROJECTION_KIND_ORTHOGRAPHIC,
		Matrix:      math.NewMat4Orthographic(cfg.Left, cfg.Right, cfg.Bottom, cfg.Top, cfg.NearClip, cfg.FarClip),
		AspectRatio: math.SafeDiv(cfg.Right-cfg.Left, cfg.Top-cfg.Bottom),
		NearClip:    cfg.NearClip,
		FarClip:     cfg.FarClip,
	}
}

func Perspective(cfg PerspectiveConfig) metadata.Projection {
	return metadata.Projection{
		Kind:        metadata.PROJECTION_KIND_PERSPECTIVE,
		Matrix:      math.NewMat4Perspective(cfg.FieldOfView, cfg.AspectRatio, cfg.NearClip, cfg.FarClip),
		FieldOfView: cfg.FieldOfView,
		AspectRatio: cfg.AspectRatio,
		NearClip:    cfg.NearClip,
		FarClip:     cfg.FarClip,
	}
}

// Frustum builds an off-axis perspective. The recorded field of view and
// aspect are those of the near plane extents.
func Frustum(cfg FrustumConfig) metadata.Projection {
	height := cfg.Top - cfg.Bottom
	return metadata.Projection{
		Kind:        metadata.PROJECTION_KIND_FRUSTUM,
		Matrix:      math.NewMat4Frustum(cfg.Left, cfg.Right, cfg.Bottom, cfg.Top, cfg.NearClip, cfg.FarClip),
		FieldOfView: 2.0 * math32.Atan(math.SafeDiv(0.5*height, cfg.NearClip)),
		AspectRatio: math.SafeDiv(cfg.Right-cfg.Left, height),
		NearClip:    cfg.NearClip,
		FarClip:     cfg.FarClip,
	}
}

// Ortho is Orthographic with the defaults for the viewport.
func Ortho(vp metadata.Viewport) metadata.Projection {
	return Orthographic(DefaultOrthographicConfig(vp))
}

// PerspectiveDefault is Perspective with the defaults for the viewport.
func PerspectiveDefault(vp metadata.Viewport) metadata.Projection {
	return Perspective(DefaultPerspectiveConfig(vp))
}

// ApplyProjection writes a projection into the target and recomputes its composite.
func ApplyProjection(target CameraTarget, p metadata.Projection) {
	target.SetCameraMatrices(target.CameraMatrices().WithProjection(p))
}

// ApplyOrtho sets the default orthographic projection for the target's viewport.
func ApplyOrtho(target CameraTarget) {
	ApplyProjection(target, Ortho(target.Viewport()))
}

// ApplyPerspective sets the default perspective projection for the target's viewport.
func ApplyPerspective(target CameraTarget) {
	ApplyProjection(target, PerspectiveDefault(target.Viewport()))
}

// projectionExtents recovers the near plane box of an orthographic or frustum
// matrix. ok is false when the matrix does not carry one.
func projectionExtents(p metadata.Projection) (l, r, b, t float32, ok bool) {
	sx, sy := p.Matrix.Data[0], p.Matrix.Data[5]
	if sx == 0 || sy == 0 {
		return 0, 0, 0, 0, false
	}
	var w, h, cx, cy float32
	switch p.Kind {
	case metadata.PROJECTION_KIND_ORTHOGRAPHIC:
		w, h = 2.0/sx, 2.0/sy
		cx, cy = -p.Matrix.Data[12]*w, -p.Matrix.Data[13]*h
	case metadata.PROJECTION_KIND_FRUSTUM:
		w, h = 2.0*p.NearClip/sx, 2.0*p.NearClip/sy
		cx, cy = p.Matrix.Data[8]*w, p.Matrix.Data[9]*h
	default:
		return 0, 0, 0, 0, false
	}
	return 0.5 * (cx - w), 0.5 * (cx + w), 0.5 * (cy - h), 0.5 * (cy + h), true
}

// Reproject rebuilds a projection of the same kind when the viewport changes
// from one size to another. Clip planes carry over, and so does the field of
// view of perspective kinds. An orthographic box is scaled per axis by the
// change in viewport size, keeping world units per pixel. A frustum keeps its
// vertical extents and off-axis shift and is widened by the change in aspect.
func Reproject(p metadata.Projection, from, to metadata.Viewport) metadata.Projection {
	near, far := p.NearClip, p.FarClip
	if far <= near {
		near, far = DefaultNearClip, DefaultFarClip
	}
	fov := p.FieldOfView
	if fov <= 0 {
		fov = DefaultFieldOfView
	}

	switch p.Kind {
	case metadata.PROJECTION_KIND_ORTHOGRAPHIC:
		cfg := DefaultOrthographicConfig(to)
		if l, r, b, t, ok := projectionExtents(p); ok {
			fw, fh := halfExtents(from)
			tw, th := halfExtents(to)
			kx, ky := tw/fw, th/fh
			cfg.Left, cfg.Right, cfg.Bottom, cfg.Top = l*kx, r*kx, b*ky, t*ky
		}
		cfg.NearClip, cfg.FarClip = near, far
		return Orthographic(cfg)
	case metadata.PROJECTION_KIND_PERSPECTIVE:
		return Perspective(PerspectiveConfig{
			FieldOfView: fov,
			AspectRatio: to.AspectRatio(),
			NearClip:    near,
			FarClip:     far,
		})
	case metadata.PROJECTION_KIND_FRUSTUM:
		if l, r, b, t, ok := projectionExtents(p); ok && p.NearClip == near && p.AspectRatio > 0 {
			k := to.AspectRatio() / p.AspectRatio
			return Frustum(FrustumConfig{
				Left:     l * k,
				Right:    r * k,
				Bottom:   b,
				Top:      t,
				NearClip: near,
				FarClip:  far,
			})
		}
		top := near * math32.Tan(fov*0.5)
		right := top * to.AspectRatio()
		return Frustum(FrustumConfig{
			Left:     -right,
			Right:    right,
			Bottom:   -top,
			Top:      top,
			NearClip: near,
			FarClip:  far,
		})
	}
	return p
}
