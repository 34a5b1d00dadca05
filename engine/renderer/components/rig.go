package components

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

func vec3(v [3]float32) math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

/**
 * @brief Builds the projection a rig describes. Angles in the rig are in
 * degrees. Zero values take the defaults for the viewport, and explicit
 * left/right/bottom/top extents override the derived ones.
 */
func ProjectionFromRig(rig *metadata.CameraRig, vp metadata.Viewport) (metadata.Projection, error) {
	if err := rig.Validate(); err != nil {
		return metadata.Projection{}, err
	}
	kind, _ := metadata.ParseProjectionKind(rig.Projection.Kind)
	p := rig.Projection

	near, far := DefaultNearClip, DefaultFarClip
	if p.NearClip > 0 {
		near = p.NearClip
	}
	if p.FarClip > 0 {
		far = p.FarClip
	}
	if far <= near {
		return metadata.Projection{}, fmt.Errorf("%w: rig '%s' far clip %f is not beyond near clip %f", core.ErrRigInvalid, rig.Name, far, near)
	}
	aspect := p.AspectRatio
	if aspect <= 0 {
		aspect = vp.AspectRatio()
	}
	fov := DefaultFieldOfView
	if p.FieldOfView > 0 {
		fov = math.DegToRad(p.FieldOfView)
	}
	explicit := p.Right != p.Left && p.Top != p.Bottom

	switch kind {
	case metadata.PROJECTION_KIND_ORTHOGRAPHIC:
		cfg := DefaultOrthographicConfig(vp)
		if explicit {
			cfg.Left, cfg.Right, cfg.Bottom, cfg.Top = p.Left, p.Right, p.Bottom, p.Top
		}
		cfg.NearClip, cfg.FarClip = near, far
		return Orthographic(cfg), nil
	case metadata.PROJECTION_KIND_FRUSTUM:
		cfg := FrustumConfig{Left: p.Left, Right: p.Right, Bottom: p.Bottom, Top: p.Top, NearClip: near, FarClip: far}
		if !explicit {
			top := near * math32.Tan(fov*0.5)
			right := top * aspect
			cfg.Left, cfg.Right, cfg.Bottom, cfg.Top = -right, right, -top, top
		}
		return Frustum(cfg), nil
	default:
		return Perspective(PerspectiveConfig{
			FieldOfView: fov,
			AspectRatio: aspect,
			NearClip:    near,
			FarClip:     far,
		}), nil
	}
}

/**
 * @brief Builds a look-at camera from a rig. Without a look_at section the
 * camera keeps its default placement; a zero up vector means world up.
 */
func LookAtCameraFromRig(rig *metadata.CameraRig) (*LookAtCamera, error) {
	if err := rig.Validate(); err != nil {
		return nil, err
	}
	h, _ := math.ParseHandedness(rig.Handedness)
	c := NewLookAtCamera(rig.Name, h)
	if rig.LookAt == nil {
		return c, nil
	}

	up := vec3(rig.LookAt.Up)
	if up.LengthSquared() < Epsilon {
		up = WorldUp(h)
	}
	if !c.LookAt(vec3(rig.LookAt.Eye), vec3(rig.LookAt.Target), up) {
		return nil, fmt.Errorf("%w: rig '%s' look_at has no valid frame", core.ErrRigInvalid, rig.Name)
	}
	return c, nil
}

// Camera3FromRig builds a transform camera at the rig's position, turned by its heading in degrees.
func Camera3FromRig(rig *metadata.CameraRig) (*Camera3, error) {
	if err := rig.Validate(); err != nil {
		return nil, err
	}
	if rig.Transform == nil {
		return nil, fmt.Errorf("%w: rig '%s' has no transform", core.ErrRigInvalid, rig.Name)
	}
	tr := math.NewTransform3()
	tr.SetPosition(vec3(rig.Transform.Position))
	tr.RotateZ(math.DegToRad(rig.Transform.Heading))
	core.LogDebug("camera '%s' placed at %v, heading %.1f degrees", rig.Name, tr.GetLocation(), math.RadToDeg(tr.Heading()))
	return NewCamera3(rig.Name, tr), nil
}

// CameraFromRig picks the camera kind the rig describes.
func CameraFromRig(rig *metadata.CameraRig) (Camera, error) {
	if rig.Transform != nil {
		return Camera3FromRig(rig)
	}
	return LookAtCameraFromRig(rig)
}
