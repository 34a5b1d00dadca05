package metadata

import (
	"image/color"

	"github.com/spaghettifunk/camrig/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief A wireframe in local coordinates: vertices and the edges
 * joining them, as pairs of vertex indices.
 */
type Geometry struct {
	Name     string
	Vertices []math.Vec3
	Edges    [][2]uint32
	Colour   color.RGBA

	/** @brief The center of the geometry in local coordinates. */
	Center     math.Vec3
	MinExtents math.Vec3
	MaxExtents math.Vec3
}

// Shape2 is a filled polygon in 2D world coordinates.
type Shape2 struct {
	Points []math.Vec2
	Colour color.RGBA
}
