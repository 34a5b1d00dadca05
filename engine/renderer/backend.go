package renderer

import "github.com/spaghettifunk/camrig/engine/renderer/metadata"

type RendererBackend interface {
	Initialize(config *metadata.RendererBackendConfig, width, height uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(deltaTime float64) error
	DrawView(packet *metadata.RenderViewPacket) error
	EndFrame(deltaTime float64) error
}
