package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f64"

	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/components"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func newCanvas(t *testing.T, dir string, w, h uint32) *Canvas {
	t.Helper()
	c := New(black)
	require.NoError(t, c.Initialize(&metadata.RendererBackendConfig{ApplicationName: "test", OutputDirectory: dir}, w, h))
	require.NoError(t, c.BeginFrame(0))
	return c
}

func square(half float32) []math.Vec2 {
	return []math.Vec2{{X: -half, Y: -half}, {X: half, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}
}

func countNot(c *Canvas, bg color.RGBA) int {
	img := c.Image()
	n := 0
	for y := img.Bounds().Min.Y; y < img.Bounds().Max.Y; y++ {
		for x := img.Bounds().Min.X; x < img.Bounds().Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				n++
			}
		}
	}
	return n
}

func TestNDCToPixel(t *testing.T) {
	assert.Equal(t, math.Vec2{X: 100, Y: 50}, NDCToPixel(math.Vec3{}, 200, 100))
	assert.Equal(t, math.Vec2{X: 0, Y: 0}, NDCToPixel(math.Vec3{X: -1, Y: 1}, 200, 100))
	assert.Equal(t, math.Vec2{X: 200, Y: 100}, NDCToPixel(math.Vec3{X: 1, Y: -1}, 200, 100))
}

func TestCanvasDrawsUIThroughCamera2(t *testing.T) {
	c := newCanvas(t, "", 200, 200)
	cam := components.NewCamera2("ui", math.NewTransform2())

	err := c.DrawView(&metadata.RenderViewPacket{
		ViewType:  metadata.RENDERER_VIEW_KNOWN_TYPE_UI,
		Transform: cam.Affine(metadata.Viewport{Width: 200, Height: 200}),
		Shapes:    []metadata.Shape2{{Points: square(10), Colour: red}},
	})
	require.NoError(t, err)

	img := c.Image()
	assert.Equal(t, red, img.RGBAAt(100, 100))
	assert.Equal(t, red, img.RGBAAt(95, 105))
	assert.Equal(t, black, img.RGBAAt(5, 5))
	assert.Equal(t, black, img.RGBAAt(120, 100))
}

func TestCanvasPanningMovesShapes(t *testing.T) {
	c := newCanvas(t, "", 200, 200)
	tr := math.NewTransform2FromPosition(math.Vec2{X: 50, Y: 0})
	cam := components.NewCamera2("ui", tr)

	require.NoError(t, c.DrawView(&metadata.RenderViewPacket{
		ViewType:  metadata.RENDERER_VIEW_KNOWN_TYPE_UI,
		Transform: cam.Affine(metadata.Viewport{Width: 200, Height: 200}),
		Shapes:    []metadata.Shape2{{Points: square(10), Colour: red}},
	}))

	// Looking right of the square pushes it left of centre.
	img := c.Image()
	assert.Equal(t, black, img.RGBAAt(100, 100))
	assert.Equal(t, red, img.RGBAAt(50, 100))
}

func TestCanvasDrawsWorldThroughLookAt(t *testing.T) {
	c := newCanvas(t, "", 200, 200)
	vp := metadata.Viewport{Width: 200, Height: 200}
	cam := components.NewLookAtCamera("main", math.HandednessLeft)
	require.True(t, cam.LookAt(math.Vec3{X: 0, Y: 0, Z: 500}, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0}))
	matrices := cam.Matrices(metadata.NewCameraMatrices().WithProjection(components.PerspectiveDefault(vp)))

	edge := &metadata.Geometry{
		Vertices: []math.Vec3{{X: -100, Y: 0, Z: 0}, {X: 100, Y: 0, Z: 0}},
		Edges:    [][2]uint32{{0, 1}},
		Colour:   red,
	}
	require.NoError(t, c.DrawView(&metadata.RenderViewPacket{
		ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD,
		Matrices: matrices,
		Meshes:   []*metadata.Mesh{{Geometries: []*metadata.Geometry{edge}}},
	}))

	img := c.Image()
	assert.NotEqual(t, black, img.RGBAAt(100, 100))
	assert.Equal(t, black, img.RGBAAt(100, 20))
	assert.Greater(t, countNot(c, black), 0)
}

func TestCanvasSkipsEdgesBehindTheEye(t *testing.T) {
	c := newCanvas(t, "", 200, 200)
	vp := metadata.Viewport{Width: 200, Height: 200}
	cam := components.NewLookAtCamera("main", math.HandednessLeft)
	require.True(t, cam.LookAt(math.Vec3{X: 0, Y: 0, Z: 500}, math.Vec3{}, math.Vec3{X: 0, Y: 1, Z: 0}))
	matrices := cam.Matrices(metadata.NewCameraMatrices().WithProjection(components.PerspectiveDefault(vp)))

	behind := &metadata.Geometry{
		Vertices: []math.Vec3{{X: -10, Y: 0, Z: 600}, {X: 10, Y: 0, Z: 600}},
		Edges:    [][2]uint32{{0, 1}},
		Colour:   red,
	}
	require.NoError(t, c.DrawView(&metadata.RenderViewPacket{
		ViewType: metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD,
		Matrices: matrices,
		Meshes:   []*metadata.Mesh{{Geometries: []*metadata.Geometry{behind}}},
	}))
	assert.Equal(t, 0, countNot(c, black))
}

func TestCanvasUnknownView(t *testing.T) {
	c := newCanvas(t, "", 16, 16)
	assert.Error(t, c.DrawView(&metadata.RenderViewPacket{}))
}

func TestCanvasWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	c := newCanvas(t, dir, 64, 48)

	require.NoError(t, c.DrawView(&metadata.RenderViewPacket{
		ViewType:  metadata.RENDERER_VIEW_KNOWN_TYPE_UI,
		Transform: f64.Aff3{1, 0, 32, 0, -1, 24},
		Shapes:    []metadata.Shape2{{Points: square(4), Colour: red}},
	}))
	require.NoError(t, c.EndFrame(0))
	assert.Equal(t, uint64(1), c.FrameCount())

	f, err := os.Open(filepath.Join(dir, "frame_0000.png"))
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestCanvasResize(t *testing.T) {
	c := newCanvas(t, "", 32, 32)
	require.NoError(t, c.Resized(80, 20))
	assert.Equal(t, 80, c.Image().Bounds().Dx())
	assert.Equal(t, 20, c.Image().Bounds().Dy())

	require.NoError(t, c.Shutdown())
	assert.Error(t, c.BeginFrame(0))
}

type queuedJobs struct {
	tasks []metadata.JobTask
}

func (q *queuedJobs) Submit(job metadata.JobTask) error {
	q.tasks = append(q.tasks, job)
	return nil
}

func TestCanvasEncodesThroughJobs(t *testing.T) {
	dir := t.TempDir()
	c := newCanvas(t, dir, 16, 16)
	jobs := &queuedJobs{}
	c.SetJobSubmitter(jobs)

	require.NoError(t, c.DrawView(&metadata.RenderViewPacket{
		ViewType:  metadata.RENDERER_VIEW_KNOWN_TYPE_UI,
		Transform: f64.Aff3{1, 0, 8, 0, -1, 8},
		Shapes:    []metadata.Shape2{{Points: square(8), Colour: red}},
	}))
	require.NoError(t, c.EndFrame(0))
	require.Len(t, jobs.tasks, 1)

	path := filepath.Join(dir, "frame_0000.png")
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// The next frame clears the canvas; the queued snapshot keeps the red square.
	require.NoError(t, c.BeginFrame(0))
	require.NoError(t, jobs.tasks[0].OnStart())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	r, g, b, a := img.At(8, 8).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0, 0, 0xffff}, [4]uint32{r, g, b, a})
}
