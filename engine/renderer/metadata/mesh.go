package metadata

import (
	"github.com/spaghettifunk/camrig/engine/math"
)

type Mesh struct {
	Name       string
	Geometries []*Geometry
	Transform  *math.Transform3
}

// Model returns the mesh's world matrix, or identity when it has no transform.
func (m *Mesh) Model() math.Mat4 {
	if m.Transform == nil {
		return math.NewMat4Identity()
	}
	return m.Transform.GetWorld()
}
