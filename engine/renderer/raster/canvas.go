package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/vector"

	"github.com/spaghettifunk/camrig/engine/core"
	"github.com/spaghettifunk/camrig/engine/math"
	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

// LineWidth is the stroke width, in pixels, of wireframe edges.
const LineWidth float32 = 1.5

/**
 * @brief A software renderer backend drawing into an RGBA image. World
 * views are projected through the camera composite; UI views go through
 * the affine transform of a 2D camera. Frames are written as PNG files
 * when an output directory is configured, through the job system when
 * one is attached.
 */
type Canvas struct {
	mu         sync.Mutex
	config     *metadata.RendererBackendConfig
	image      *image.RGBA
	ras        *vector.Rasterizer
	background color.RGBA
	frame      uint64
	// Encodes frames off the render loop when set.
	jobs metadata.JobSubmitter
}

func New(background color.RGBA) *Canvas {
	return &Canvas{
		ras:        &vector.Rasterizer{},
		background: background,
		config:     &metadata.RendererBackendConfig{},
	}
}

// SetJobSubmitter moves PNG encoding onto jobs. Nil encodes inline.
func (c *Canvas) SetJobSubmitter(jobs metadata.JobSubmitter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.jobs = jobs
}

func (c *Canvas) Initialize(config *metadata.RendererBackendConfig, width, height uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if config != nil {
		c.config = config
	}
	if c.config.OutputDirectory != "" {
		if err := os.MkdirAll(c.config.OutputDirectory, 0o755); err != nil {
			err = fmt.Errorf("failed to create output directory '%s': %w", c.config.OutputDirectory, err)
			core.LogError(err.Error())
			return err
		}
	}
	c.image = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	core.LogInfo("raster backend initialized for '%s' at %dx%d", c.config.ApplicationName, width, height)
	return nil
}

func (c *Canvas) Shutdown() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = nil
	return nil
}

func (c *Canvas) Resized(width, height uint32) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.image = image.NewRGBA(image.Rect(0, 0, int(width), int(height)))
	core.LogInfo("raster backend resized: w/h: %d/%d", width, height)
	return nil
}

func (c *Canvas) BeginFrame(deltaTime float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.image == nil {
		return fmt.Errorf("raster backend is not initialized")
	}
	draw.Draw(c.image, c.image.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
	return nil
}

func (c *Canvas) DrawView(packet *metadata.RenderViewPacket) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.image == nil {
		return fmt.Errorf("raster backend is not initialized")
	}

	switch packet.ViewType {
	case metadata.RENDERER_VIEW_KNOWN_TYPE_WORLD:
		for _, mesh := range packet.Meshes {
			c.drawMesh(packet.Matrices.Composite, mesh)
		}
	case metadata.RENDERER_VIEW_KNOWN_TYPE_UI:
		for _, shape := range packet.Shapes {
			points := make([]math.Vec2, len(shape.Points))
			for i, p := range shape.Points {
				points[i] = math.ApplyAff3(packet.Transform, p)
			}
			c.fill(points, shape.Colour)
		}
	default:
		return fmt.Errorf("unknown view type %d", packet.ViewType)
	}
	return nil
}

func (c *Canvas) EndFrame(deltaTime float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := c.frame
	c.frame++
	if c.config.OutputDirectory == "" {
		return nil
	}
	path := filepath.Join(c.config.OutputDirectory, fmt.Sprintf("frame_%04d.png", frame))
	if c.jobs == nil {
		return encodePNG(path, c.image)
	}

	// The next BeginFrame reuses the image, so the job gets its own copy.
	snapshot := image.NewRGBA(c.image.Rect)
	copy(snapshot.Pix, c.image.Pix)
	return c.jobs.Submit(metadata.JobTask{
		Name:    path,
		OnStart: func() error { return encodePNG(path, snapshot) },
	})
}

// Image returns the current frame. It is reused by the next BeginFrame.
func (c *Canvas) Image() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.image
}

// FrameCount returns the number of frames ended so far.
func (c *Canvas) FrameCount() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// SavePNG writes the current frame to path.
func (c *Canvas) SavePNG(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return encodePNG(path, c.image)
}

func encodePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file '%s': %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode frame '%s': %w", path, err)
	}
	return nil
}

func (c *Canvas) drawMesh(composite math.Mat4, mesh *metadata.Mesh) {
	mvp := composite.Mul(mesh.Model())
	for _, g := range mesh.Geometries {
		for _, e := range g.Edges {
			a, okA := c.toScreen(mvp, g.Vertices[e[0]])
			b, okB := c.toScreen(mvp, g.Vertices[e[1]])
			if !okA || !okB {
				continue
			}
			c.stroke(a, b, g.Colour)
		}
	}
}

// toScreen projects a point to pixel coordinates. Points behind the eye or
// outside the depth range are rejected.
func (c *Canvas) toScreen(mvp math.Mat4, p math.Vec3) (math.Vec2, bool) {
	clip := mvp.MulVec4(p.ToVec4(1.0))
	if clip.W <= math.K_FLOAT_EPSILON {
		return math.Vec2{}, false
	}
	ndc := clip.ToVec3().MulScalar(1.0 / clip.W)
	if ndc.Z < -1 || ndc.Z > 1 {
		return math.Vec2{}, false
	}
	return NDCToPixel(ndc, c.image.Bounds().Dx(), c.image.Bounds().Dy()), true
}

// NDCToPixel maps normalized device coordinates to pixels with the origin in
// the top left corner and y pointing down.
func NDCToPixel(ndc math.Vec3, width, height int) math.Vec2 {
	return math.Vec2{
		X: (ndc.X + 1.0) * 0.5 * float32(width),
		Y: (1.0 - ndc.Y) * 0.5 * float32(height),
	}
}

func (c *Canvas) stroke(a, b math.Vec2, colour color.RGBA) {
	d := b.Sub(a)
	if d.LengthSquared() < math.K_FLOAT_EPSILON {
		return
	}
	n := d.Normalized().Perpendicular().MulScalar(0.5 * LineWidth)
	c.fill([]math.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)}, colour)
}

func (c *Canvas) fill(points []math.Vec2, colour color.RGBA) {
	if len(points) < 3 {
		return
	}
	b := c.image.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
	c.ras.DrawOp = draw.Over
	c.ras.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.ras.LineTo(p.X, p.Y)
	}
	c.ras.ClosePath()
	c.ras.Draw(c.image, b, image.NewUniform(colour), image.Point{})
}
