package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	stdmath "math"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/renderer"
	"github.com/spaghettifunk/motion/engine/renderer/components"
	"github.com/spaghettifunk/motion/engine/systems"
)

const coneSegments = 32

type Config struct {
	// Pixels per world unit.
	Scale      float32
	Background math.Color
	// Frames are written here as frame_000000.png. Empty disables writing.
	OutputDir string
}

// Backend rasterizes each frame into an RGBA image on the CPU and hands the
// PNG encoding to the job system.
type Backend struct {
	config Config
	jobs   *systems.JobSystem
	width  int
	height int

	frame  *image.RGBA
	camera components.Camera
	raster *vector.Rasterizer
	number uint64
	last   *image.RGBA
}

func New(config Config, jobs *systems.JobSystem) *Backend {
	if config.Scale <= 0 {
		config.Scale = 100
	}
	return &Backend{config: config, jobs: jobs}
}

func (b *Backend) Initialize(appName string, appWidth, appHeight uint32) error {
	if appWidth == 0 || appHeight == 0 {
		return fmt.Errorf("raster backend: invalid size %dx%d", appWidth, appHeight)
	}
	b.width, b.height = int(appWidth), int(appHeight)
	b.raster = vector.NewRasterizer(b.width, b.height)
	if b.config.OutputDir != "" {
		if err := os.MkdirAll(b.config.OutputDir, 0o755); err != nil {
			return fmt.Errorf("raster backend: %w", err)
		}
	}
	core.LogDebug("raster backend for %q ready, writing to %q", appName, b.config.OutputDir)
	return nil
}

func (b *Backend) Shutdown() error {
	return nil
}

func (b *Backend) Resized(width, height uint32) error {
	return b.Initialize("", width, height)
}

func (b *Backend) BeginFrame(packet *renderer.RenderPacket) error {
	if b.raster == nil {
		return fmt.Errorf("raster backend: not initialized")
	}
	b.number = packet.FrameNumber
	b.camera = packet.Camera
	b.frame = image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	draw.Draw(b.frame, b.frame.Bounds(), image.NewUniform(toNRGBA(b.config.Background)), image.Point{}, draw.Src)
	return nil
}

// DrawLine draws a segment of the given length centred on the line's
// position, turned by its Z rotation.
func (b *Backend) DrawLine(line *renderer.LineDrawData) error {
	length := line.Length
	if length <= 0 {
		return nil
	}
	half := length / 2
	angle := float64(line.CFrame.Rotation.Z)
	dir := math.NewVec3(float32(stdmath.Cos(angle)), float32(stdmath.Sin(angle)), 0)
	center := line.CFrame.Position
	x0, y0 := b.toScreen(center.Sub(dir.MulScalar(half)))
	x1, y1 := b.toScreen(center.Add(dir.MulScalar(half)))

	dx, dy := x1-x0, y1-y0
	n := float32(stdmath.Hypot(float64(dx), float64(dy)))
	if n == 0 {
		return nil
	}
	w := line.Thickness / 2
	px, py := -dy/n*w, dx/n*w

	b.raster.Reset(b.width, b.height)
	b.raster.MoveTo(x0+px, y0+py)
	b.raster.LineTo(x1+px, y1+py)
	b.raster.LineTo(x1-px, y1-py)
	b.raster.LineTo(x0-px, y0-py)
	b.raster.ClosePath()
	b.fill(line.Color, line.Transparency)
	return nil
}

// DrawCone draws the cone seen from its tip: a disc of its radius.
func (b *Backend) DrawCone(cone *renderer.ConeDrawData) error {
	cx, cy := b.toScreen(cone.CFrame.Position)
	r := cone.Radius * b.config.Scale
	if r <= 0 {
		return nil
	}
	b.raster.Reset(b.width, b.height)
	for i := 0; i <= coneSegments; i++ {
		a := 2 * stdmath.Pi * float64(i) / coneSegments
		x := cx + r*float32(stdmath.Cos(a))
		y := cy + r*float32(stdmath.Sin(a))
		if i == 0 {
			b.raster.MoveTo(x, y)
			continue
		}
		b.raster.LineTo(x, y)
	}
	b.raster.ClosePath()
	b.fill(cone.Color, cone.Transparency)
	return nil
}

func (b *Backend) EndFrame(packet *renderer.RenderPacket) error {
	frame := b.frame
	b.last = frame
	if b.config.OutputDir == "" || b.jobs == nil {
		return nil
	}
	path := filepath.Join(b.config.OutputDir, fmt.Sprintf("frame_%06d.png", packet.FrameNumber))
	return b.jobs.Submit(systems.JobTask{
		Name: path,
		Run: func() error {
			return writePNG(path, frame)
		},
	})
}

// LastFrame returns the most recently completed image.
func (b *Backend) LastFrame() *image.RGBA {
	return b.last
}

// toScreen maps a world point through the camera view onto the image, with
// Y pointing up and the camera at the centre.
func (b *Backend) toScreen(p math.Vec3) (float32, float32) {
	v := p.Transform(b.camera.GetView())
	x := v.X*b.config.Scale + float32(b.width)/2
	y := -v.Y*b.config.Scale + float32(b.height)/2
	return x, y
}

// fill paints the rasterized path. Transparency fades the colour towards the
// background, so a fully transparent primitive disappears.
func (b *Backend) fill(c math.Color, transparency float32) {
	faded := math.LerpColor(c, b.config.Background, float64(math.Clamp(transparency, 0, 1)))
	b.raster.DrawOp = draw.Over
	b.raster.Draw(b.frame, b.frame.Bounds(), image.NewUniform(toNRGBA(faded)), image.Point{})
}

func toNRGBA(c math.Color) color.NRGBA {
	r, g, bl := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
