package renderer

import (
	"testing"

	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/renderer/components"
	"github.com/spaghettifunk/motion/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingBackend struct {
	calls []string
}

func (b *recordingBackend) Initialize(string, uint32, uint32) error { return nil }
func (b *recordingBackend) Shutdown() error                         { return nil }
func (b *recordingBackend) Resized(uint32, uint32) error            { return nil }

func (b *recordingBackend) BeginFrame(*RenderPacket) error {
	b.calls = append(b.calls, "begin")
	return nil
}

func (b *recordingBackend) DrawLine(*LineDrawData) error {
	b.calls = append(b.calls, "line")
	return nil
}

func (b *recordingBackend) DrawCone(*ConeDrawData) error {
	b.calls = append(b.calls, "cone")
	return nil
}

func (b *recordingBackend) EndFrame(*RenderPacket) error {
	b.calls = append(b.calls, "end")
	return nil
}

func buildScene(t *testing.T, layer *Layer) (*scene.Scene, *object.Vector) {
	s := scene.NewScene(scene.SceneAttributes{Name: "test"})
	s.SetOutputTarget(layer)
	v := object.NewVector(object.VectorAttributes{CFrame: math.NewCFrame(math.NewVec3(1, 1, 0))})
	require.NoError(t, s.AddChild("v", v))
	s.Build()
	s.Update(0.1)
	return s, v
}

func TestBuildPacketCollectsVisiblePrimitives(t *testing.T) {
	layer := NewLayer("main")
	s, v := buildScene(t, layer)
	camera := components.NewCamera()
	camera.SetPosition(math.NewVec3(0, 0, 5))

	packet := BuildPacket(3, 0.1, camera, s)
	assert.Equal(t, uint64(3), packet.FrameNumber)
	assert.Equal(t, camera.GetPosition(), packet.Camera.GetPosition())
	require.Len(t, packet.Lines, 1)
	require.Len(t, packet.Cones, 1)
	assert.Equal(t, "main", packet.Lines[0].Layer)
	assert.InDelta(t, v.Length(), packet.Lines[0].Length, 1e-5)

	require.NoError(t, v.SetParam("Visible", false))
	s.Update(0.1)
	packet = BuildPacket(4, 0.1, nil, s)
	assert.Empty(t, packet.Lines)
	assert.Empty(t, packet.Cones)
}

func TestBuildPacketSkipsDestroyedLayer(t *testing.T) {
	layer := NewLayer("main")
	s, _ := buildScene(t, layer)
	layer.Destroy()
	assert.True(t, layer.Destroyed())

	packet := BuildPacket(1, 0.1, nil, s)
	assert.Empty(t, packet.Lines)

	require.NoError(t, s.Destroy())
	packet = BuildPacket(2, 0.1, nil, s)
	assert.Empty(t, packet.Cones)
}

func TestRendererDrawFrameOrder(t *testing.T) {
	layer := NewLayer("main")
	s, _ := buildScene(t, layer)
	backend := &recordingBackend{}
	r := New(backend)
	require.NoError(t, r.Initialize("test", 64, 64))

	require.NoError(t, r.DrawFrame(BuildPacket(0, 0, nil, s)))
	assert.Equal(t, []string{"begin", "line", "cone", "end"}, backend.calls)
}
