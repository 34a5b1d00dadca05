package components

import (
	"golang.org/x/image/math/f64"

	"github.com/spaghettifunk/camrig/engine/renderer/metadata"
)

// CameraTarget is the slice of a renderer a 3D or GPU camera writes into.
type CameraTarget interface {
	Viewport() metadata.Viewport
	CameraMatrices() metadata.CameraMatrices
	SetCameraMatrices(m metadata.CameraMatrices)
}

// RasterTarget is a 2D path renderer that draws through a single affine transform.
type RasterTarget interface {
	Viewport() metadata.Viewport
	SetTransform(m f64.Aff3)
}
