package systems

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

func TestGenerateCubeGeometry(t *testing.T) {
	g := GenerateCubeGeometry(2, 4, 6, "box", color.RGBA{R: 255, A: 255})

	assert.Equal(t, "box", g.Name)
	assert.Len(t, g.Vertices, 8)
	assert.Len(t, g.Edges, 12)
	assert.Equal(t, math.Vec3{X: -1, Y: -2, Z: -3}, g.MinExtents)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, g.MaxExtents)
	assert.Equal(t, math.Vec3{X: 1, Y: 2, Z: 3}, g.Vertices[7])

	// Every edge is axis aligned and as long as the box along that axis.
	for _, e := range g.Edges {
		d := g.Vertices[e[1]].Sub(g.Vertices[e[0]])
		l := d.Length()
		assert.True(t, l == 2 || l == 4 || l == 6, "edge %v has length %f", e, l)
	}
}

func TestGenerateCubeGeometryDefaults(t *testing.T) {
	g := GenerateCubeGeometry(0, 0, 0, "", color.RGBA{})
	assert.Equal(t, metadata.DefaultGeometryName, g.Name)
	assert.Equal(t, math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}, g.MaxExtents)
}

func TestGenerateGridGeometry(t *testing.T) {
	yup := GenerateGridGeometry(10, 20, 2, 4, math.HandednessLeft, "floor", color.RGBA{})
	assert.Len(t, yup.Edges, 3+5)
	// The four corners are shared by two border lines each.
	assert.Len(t, yup.Vertices, 12)
	assert.Equal(t, math.Vec3{X: -5, Y: 0, Z: -10}, yup.MinExtents)
	assert.Equal(t, math.Vec3{X: 5, Y: 0, Z: 10}, yup.MaxExtents)
	for _, v := range yup.Vertices {
		assert.Equal(t, float32(0), v.Y)
	}

	zup := GenerateGridGeometry(10, 20, 2, 4, math.HandednessRight, "floor", color.RGBA{})
	for _, v := range zup.Vertices {
		assert.Equal(t, float32(0), v.Z)
	}
	assert.Equal(t, math.Vec3{X: 5, Y: 10, Z: 0}, zup.MaxExtents)

	one := GenerateGridGeometry(1, 1, 0, 0, math.HandednessLeft, "", color.RGBA{})
	assert.Len(t, one.Edges, 4)
	assert.Len(t, one.Vertices, 4)
	for _, e := range one.Edges {
		assert.Less(t, e[0], uint32(4))
		assert.Less(t, e[1], uint32(4))
		assert.Equal(t, float32(1), one.Vertices[e[1]].Sub(one.Vertices[e[0]]).Length())
	}
}
