package systems

import (
	"image/color"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

/**
 * @brief Generates a wireframe box centred on the origin.
 * @param width The overall width of the box, along x. Must be non-zero.
 * @param height The overall height of the box, along y. Must be non-zero.
 * @param depth The overall depth of the box, along z. Must be non-zero.
 * @param name The name of the generated geometry.
 * @param colour The edge colour.
 * @return A geometry with 8 corners and 12 edges.
 */
func GenerateCubeGeometry(width, height, depth float32, name string, colour color.RGBA) *metadata.Geometry {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if depth == 0 {
		core.LogWarn("Depth must be nonzero. Defaulting to one.")
		depth = 1
	}
	if len(name) == 0 {
		name = metadata.DefaultGeometryName
	}

	half_width := width * 0.5
	half_height := height * 0.5
	half_depth := depth * 0.5

	geometry := &metadata.Geometry{
		Name:       name,
		Vertices:   make([]math.Vec3, 8),
		Edges:      make([][2]uint32, 0, 12),
		Colour:     colour,
		MinExtents: math.NewVec3(-half_width, -half_height, -half_depth),
		MaxExtents: math.NewVec3(half_width, half_height, half_depth),
	}

	// Corner i takes its max x, y and z from bits 0, 1 and 2.
	for i := uint32(0); i < 8; i++ {
		v := geometry.MinExtents
		if i&1 != 0 {
			v.X = half_width
		}
		if i&2 != 0 {
			v.Y = half_height
		}
		if i&4 != 0 {
			v.Z = half_depth
		}
		geometry.Vertices[i] = v
	}
	// Corners differing in exactly one bit share an edge.
	for i := uint32(0); i < 8; i++ {
		for _, bit := range []uint32{1, 2, 4} {
			if i&bit == 0 {
				geometry.Edges = append(geometry.Edges, [2]uint32{i, i | bit})
			}
		}
	}
	geometry.Center = math.NewVec3Zero()
	return geometry
}

/**
 * @brief Generates a grid of lines centred on the origin. The grid lies in
 * the ground plane of the given handedness: xz for y-up, xy for z-up.
 * @param width The overall width of the grid. Must be non-zero.
 * @param height The overall height of the grid. Must be non-zero.
 * @param xSegmentCount The number of cells along the width. Must be positive.
 * @param ySegmentCount The number of cells along the height. Must be positive.
 */
func GenerateGridGeometry(width, height float32, xSegmentCount, ySegmentCount uint32, handedness math.Handedness, name string, colour color.RGBA) *metadata.Geometry {
	if width == 0 {
		core.LogWarn("Width must be nonzero. Defaulting to one.")
		width = 1.0
	}
	if height == 0 {
		core.LogWarn("Height must be nonzero. Defaulting to one.")
		height = 1.0
	}
	if xSegmentCount < 1 {
		core.LogWarn("xSegmentCount must be a positive number. Defaulting to one.")
		xSegmentCount = 1
	}
	if ySegmentCount < 1 {
		core.LogWarn("ySegmentCount must be a positive number. Defaulting to one.")
		ySegmentCount = 1
	}
	if len(name) == 0 {
		name = metadata.DefaultGeometryName
	}

	lineCount := (xSegmentCount + 1) + (ySegmentCount + 1)
	geometry := &metadata.Geometry{
		Name:     name,
		Vertices: make([]math.Vec3, 0, lineCount*2),
		Edges:    make([][2]uint32, 0, lineCount),
		Colour:   colour,
	}

	half_width := width * 0.5
	half_height := height * 0.5
	seg_width := width / float32(xSegmentCount)
	seg_height := height / float32(ySegmentCount)

	// Grid coordinates (u, v) land in the ground plane.
	ground := func(u, v float32) math.Vec3 {
		if handedness == math.HandednessRight {
			return math.NewVec3(u, v, 0)
		}
		return math.NewVec3(u, 0, v)
	}
	line := func(a, b math.Vec3) {
		n := uint32(len(geometry.Vertices))
		geometry.Vertices = append(geometry.Vertices, a, b)
		geometry.Edges = append(geometry.Edges, [2]uint32{n, n + 1})
	}

	for x := uint32(0); x <= xSegmentCount; x++ {
		u := -half_width + float32(x)*seg_width
		line(ground(u, -half_height), ground(u, half_height))
	}
	for y := uint32(0); y <= ySegmentCount; y++ {
		v := -half_height + float32(y)*seg_height
		line(ground(-half_width, v), ground(half_width, v))
	}

	// Border lines meet at the corners.
	geometry.Vertices = math.GeometryDeduplicateVertices(geometry.Vertices, geometry.Edges)
	geometry.MinExtents, geometry.MaxExtents, geometry.Center = math.GeometryExtents(geometry.Vertices)
	return geometry
}
