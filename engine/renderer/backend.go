package renderer

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(packet *RenderPacket) error
	DrawLine(line *LineDrawData) error
	DrawCone(cone *ConeDrawData) error
	EndFrame(packet *RenderPacket) error
}
