package metadata

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
)

/** @brief The pixel size of a render target. */
type Viewport struct {
	Width  float32
	Height float32
}

// AspectRatio returns width / height, or 1 when the height is zero.
func (v Viewport) AspectRatio() float32 {
	if v.Height == 0 {
		return 1.0
	}
	return v.Width / v.Height
}

type ProjectionKind uint8

const (
	PROJECTION_KIND_NONE ProjectionKind = iota
	PROJECTION_KIND_ORTHOGRAPHIC
	PROJECTION_KIND_PERSPECTIVE
	PROJECTION_KIND_FRUSTUM
)

func (k ProjectionKind) String() string {
	switch k {
	case PROJECTION_KIND_ORTHOGRAPHIC:
		return "orthographic"
	case PROJECTION_KIND_PERSPECTIVE:
		return "perspective"
	case PROJECTION_KIND_FRUSTUM:
		return "frustum"
	}
	return "none"
}

// ParseProjectionKind reads a projection kind by name. "ortho" is accepted for orthographic.
func ParseProjectionKind(name string) (ProjectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "orthographic", "ortho":
		return PROJECTION_KIND_ORTHOGRAPHIC, nil
	case "perspective":
		return PROJECTION_KIND_PERSPECTIVE, nil
	case "frustum":
		return PROJECTION_KIND_FRUSTUM, nil
	}
	return PROJECTION_KIND_NONE, fmt.Errorf("%w: unknown projection kind '%s'", core.ErrRigInvalid, name)
}

/**
 * @brief A projection matrix together with the scalars it was built from.
 * FieldOfView is zero for orthographic projections.
 */
type Projection struct {
	Kind        ProjectionKind
	Matrix      math.Mat4
	FieldOfView float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32
}

/**
 * @brief Everything a renderer needs from a camera for one frame. View and
 * InverseView are always written together; Composite is Projection * View.
 */
type CameraMatrices struct {
	View        math.Mat4
	InverseView math.Mat4
	Projection  math.Mat4
	Composite   math.Mat4

	/** @brief The eye position in world space. */
	Eye math.Vec3

	Kind        ProjectionKind
	FieldOfView float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32
}

// WithProjection returns a copy with the projection slots replaced and the
// composite recomputed.
func (c CameraMatrices) WithProjection(p Projection) CameraMatrices {
	c.Projection = p.Matrix
	c.Kind = p.Kind
	c.FieldOfView = p.FieldOfView
	c.AspectRatio = p.AspectRatio
	c.NearClip = p.NearClip
	c.FarClip = p.FarClip
	c.Composite = c.Projection.Mul(c.View)
	return c
}

// WithView returns a copy with the view pair and eye replaced and the
// composite recomputed.
func (c CameraMatrices) WithView(view, inverse math.Mat4, eye math.Vec3) CameraMatrices {
	c.View = view
	c.InverseView = inverse
	c.Eye = eye
	c.Composite = c.Projection.Mul(c.View)
	return c
}

// ProjectionSlot returns the projection part of the record.
func (c CameraMatrices) ProjectionSlot() Projection {
	return Projection{
		Kind:        c.Kind,
		Matrix:      c.Projection,
		FieldOfView: c.FieldOfView,
		AspectRatio: c.AspectRatio,
		NearClip:    c.NearClip,
		FarClip:     c.FarClip,
	}
}

// NewCameraMatrices returns a record with identity view matrices and no projection.
func NewCameraMatrices() CameraMatrices {
	return CameraMatrices{
		View:        math.NewMat4Identity(),
		InverseView: math.NewMat4Identity(),
		Composite:   math.NewMat4Identity(),
	}
}

/**
 * @brief A camera description loaded from a rig file. Angles are in degrees.
 */
type CameraRig struct {
	Name       string        `toml:"name" yaml:"name"`
	Handedness string        `toml:"handedness" yaml:"handedness"`
	Projection RigProjection `toml:"projection" yaml:"projection"`
	LookAt     *RigLookAt    `toml:"look_at,omitempty" yaml:"look_at,omitempty"`
	Transform  *RigTransform `toml:"transform,omitempty" yaml:"transform,omitempty"`
}

type RigProjection struct {
	Kind        string  `toml:"kind" yaml:"kind"`
	FieldOfView float32 `toml:"fov" yaml:"fov"`
	AspectRatio float32 `toml:"aspect" yaml:"aspect"`
	NearClip    float32 `toml:"near" yaml:"near"`
	FarClip     float32 `toml:"far" yaml:"far"`
	Left        float32 `toml:"left" yaml:"left"`
	Right       float32 `toml:"right" yaml:"right"`
	Bottom      float32 `toml:"bottom" yaml:"bottom"`
	Top         float32 `toml:"top" yaml:"top"`
}

type RigLookAt struct {
	Eye    [3]float32 `toml:"eye" yaml:"eye"`
	Target [3]float32 `toml:"target" yaml:"target"`
	Up     [3]float32 `toml:"up" yaml:"up"`
}

type RigTransform struct {
	Position [3]float32 `toml:"position" yaml:"position"`
	// Heading about the z axis.
	Heading float32 `toml:"heading" yaml:"heading"`
}

type RigFormat uint8

const (
	RIG_FORMAT_NONE RigFormat = iota
	RIG_FORMAT_TOML
	RIG_FORMAT_YAML
)

func (f RigFormat) String() string {
	switch f {
	case RIG_FORMAT_TOML:
		return "toml"
	case RIG_FORMAT_YAML:
		return "yaml"
	}
	return "none"
}

// DetermineRigFormat picks a rig format from a file extension.
func DetermineRigFormat(path string) RigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return RIG_FORMAT_TOML
	case ".yaml", ".yml":
		return RIG_FORMAT_YAML
	default:
		return RIG_FORMAT_NONE
	}
}

/**
 * @brief Checks the rig for values no camera can be built from. Errors
 * wrap core.ErrRigInvalid.
 */
func (r *CameraRig) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: missing name", core.ErrRigInvalid)
	}
	if _, err := math.ParseHandedness(r.Handedness); err != nil {
		return fmt.Errorf("rig '%s': %w", r.Name, err)
	}
	if _, err := ParseProjectionKind(r.Projection.Kind); err != nil {
		return fmt.Errorf("rig '%s': %w", r.Name, err)
	}
	p := r.Projection
	if p.NearClip < 0 || p.FarClip < 0 {
		return fmt.Errorf("%w: rig '%s' has a negative clip plane", core.ErrRigInvalid, r.Name)
	}
	if p.NearClip != 0 && p.FarClip != 0 && p.FarClip <= p.NearClip {
		return fmt.Errorf("%w: rig '%s' far clip %f is not beyond near clip %f", core.ErrRigInvalid, r.Name, p.FarClip, p.NearClip)
	}
	if p.FieldOfView < 0 || p.FieldOfView >= 180 {
		return fmt.Errorf("%w: rig '%s' field of view %f is outside (0, 180)", core.ErrRigInvalid, r.Name, p.FieldOfView)
	}
	if r.LookAt != nil && r.Transform != nil {
		return fmt.Errorf("%w: rig '%s' sets both look_at and transform", core.ErrRigInvalid, r.Name)
	}
	return nil
}
