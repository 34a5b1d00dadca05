package metadata

import (
	"golang.org/x/image/math/f64"
)

type RendererBackendConfig struct {
	/** @brief The name of the application */
	ApplicationName string
	/** @brief Directory frames are written to. Empty keeps frames in memory only. */
	OutputDirectory string
}

/** @brief Known render view types, which have logic associated with them. */
type RenderViewKnownType int

const (
	/** @brief A view of world meshes seen through a camera's composite matrix. */
	RENDERER_VIEW_KNOWN_TYPE_WORLD RenderViewKnownType = 0x01
	/** @brief A view of 2D shapes drawn through an affine transform. */
	RENDERER_VIEW_KNOWN_TYPE_UI RenderViewKnownType = 0x02
)

func (t RenderViewKnownType) String() string {
	switch t {
	case RENDERER_VIEW_KNOWN_TYPE_WORLD:
		return "world"
	case RENDERER_VIEW_KNOWN_TYPE_UI:
		return "ui"
	}
	return "unknown"
}

/**
 * @brief Everything needed to draw one view. World views read Matrices,
 * UI views read Transform.
 */
type RenderViewPacket struct {
	ViewType  RenderViewKnownType
	Matrices  CameraMatrices
	Transform f64.Aff3
	Meshes    []*Mesh
	Shapes    []Shape2
}

/**
 * @brief A structure which is generated by the application and sent once
 * to the renderer to render a given frame. Consists of any data required,
 * such as delta time and a collection of views to be rendered.
 */
type RenderPacket struct {
	DeltaTime   float64
	FrameNumber uint64
	ViewPackets []*RenderViewPacket
}
