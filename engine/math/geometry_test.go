package math

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGeometryExtents(t *testing.T) {
	minE, maxE, center := GeometryExtents([]Vec3{{X: 1, Y: -2, Z: 3}, {X: -3, Y: 4, Z: 1}, {X: 0, Y: 0, Z: 7}})
	assert.Equal(t, Vec3{X: -3, Y: -2, Z: 1}, minE)
	assert.Equal(t, Vec3{X: 1, Y: 4, Z: 7}, maxE)
	assert.Equal(t, Vec3{X: -1, Y: 1, Z: 4}, center)

	minE, maxE, center = GeometryExtents(nil)
	assert.Equal(t, Vec3{}, minE)
	assert.Equal(t, Vec3{}, maxE)
	assert.Equal(t, Vec3{}, center)
}

func TestGeometryDeduplicateVertices(t *testing.T) {
	// A square drawn as four separate segments.
	vertices := []Vec3{
		{X: 0, Y: 0}, {X: 1, Y: 0},
		{X: 1, Y: 0}, {X: 1, Y: 1},
		{X: 1, Y: 1}, {X: 0, Y: 1},
		{X: 0, Y: 1}, {X: 0, Y: 0},
	}
	edges := [][2]uint32{{0, 1}, {2, 3}, {4, 5}, {6, 7}}

	unique := GeometryDeduplicateVertices(vertices, edges)

	assert.Equal(t, []Vec3{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, unique)
	assert.Equal(t, [][2]uint32{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, edges)
}
