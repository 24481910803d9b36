package assets

import (
	"fmt"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/math"
	"github.com/spaghettifunk/motion/engine/object"
	"github.com/spaghettifunk/motion/engine/scene"
)

type ObjectKind string

const (
	KindAxes   ObjectKind = "axes"
	KindVector ObjectKind = "vector"
	KindLine   ObjectKind = "line"
	KindCone   ObjectKind = "cone"
)

// ObjectDescription is one entry of a scene file. Position is the head of a
// vector, the centre of a line or cone, and the origin of a set of axes.
// Rotations are Euler angles in degrees.
type ObjectDescription struct {
	Name      string      `toml:"name" yaml:"name"`
	Kind      ObjectKind  `toml:"kind" yaml:"kind"`
	Position  [3]float32  `toml:"position" yaml:"position"`
	Origin    *[3]float32 `toml:"origin,omitempty" yaml:"origin,omitempty"`
	Rotation  [3]float32  `toml:"rotation" yaml:"rotation"`
	Color     string      `toml:"color,omitempty" yaml:"color,omitempty"`
	Colors    []string    `toml:"colors,omitempty" yaml:"colors,omitempty"`
	Sizes     [3]float32  `toml:"sizes" yaml:"sizes"`
	Length    float32     `toml:"length" yaml:"length"`
	Thickness float32     `toml:"thickness,omitempty" yaml:"thickness,omitempty"`
	Radius    float32     `toml:"radius,omitempty" yaml:"radius,omitempty"`
	Height    float32     `toml:"height,omitempty" yaml:"height,omitempty"`
	Visible   *bool       `toml:"visible,omitempty" yaml:"visible,omitempty"`
	Enabled   *bool       `toml:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// CameraMove describes a camera tween started on the scene's first tick.
type CameraMove struct {
	To          [3]float32 `toml:"to" yaml:"to"`
	Rotation    [3]float32 `toml:"rotation" yaml:"rotation"`
	Duration    float64    `toml:"duration" yaml:"duration"`
	Delay       float64    `toml:"delay" yaml:"delay"`
	Easing      string     `toml:"easing,omitempty" yaml:"easing,omitempty"`
	Direction   string     `toml:"direction,omitempty" yaml:"direction,omitempty"`
	Repeat      int        `toml:"repeat" yaml:"repeat"`
	Reverses    bool       `toml:"reverses" yaml:"reverses"`
	FieldOfView *float32   `toml:"field_of_view,omitempty" yaml:"field_of_view,omitempty"`
}

type SceneDescription struct {
	Name               string              `toml:"name" yaml:"name"`
	DestroyOnCompleted bool                `toml:"destroy_on_completed" yaml:"destroy_on_completed"`
	Objects            []ObjectDescription `toml:"objects" yaml:"objects"`
	Camera             *CameraMove         `toml:"camera,omitempty" yaml:"camera,omitempty"`
}

// DescribedScene is a scene populated from a SceneDescription.
type DescribedScene struct {
	scene.SceneWithCamera
	desc    *SceneDescription
	objects []namedObject
	started bool
}

type namedObject struct {
	name string
	obj  object.Object
}

// Build validates the description and creates the scene. The objects are
// added, in file order, when the scene is constructed.
func (d *SceneDescription) Build() (*DescribedScene, error) {
	s := &DescribedScene{desc: d}
	s.InitScene(s, scene.SceneAttributes{Name: d.Name, DestroyOnCompleted: d.DestroyOnCompleted})

	seen := make(map[string]bool, len(d.Objects))
	for i, od := range d.Objects {
		if od.Name == "" {
			return nil, fmt.Errorf("object %d has no name", i)
		}
		if seen[od.Name] {
			return nil, fmt.Errorf("object %q is declared twice", od.Name)
		}
		seen[od.Name] = true
		obj, err := od.build()
		if err != nil {
			return nil, fmt.Errorf("object %q: %w", od.Name, err)
		}
		if od.Enabled != nil {
			obj.AsNode().SetEnabled(*od.Enabled)
		}
		s.objects = append(s.objects, namedObject{name: od.Name, obj: obj})
	}
	if d.Camera != nil {
		if _, err := d.Camera.options(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *DescribedScene) Construct() {
	for _, no := range s.objects {
		if err := s.AddChild(no.name, no.obj); err != nil {
			core.LogError("%s.Construct(): %s", s, err)
		}
	}
}

func (s *DescribedScene) Tick(dt float64) {
	if !s.started && s.desc.Camera != nil && s.Camera() != nil {
		s.started = true
		move := s.desc.Camera
		opts, _ := move.options()
		target := math.CFrame{Position: vec(move.To), Rotation: radians(move.Rotation)}
		if _, err := s.MoveCameraTo(target, move.Duration, opts...); err != nil {
			core.LogWarn("%s: camera move not started: %s", s, err)
		}
	}
	s.SceneWithCamera.Tick(dt)
}

func (m *CameraMove) options() ([]scene.TweenOption, error) {
	var opts []scene.TweenOption
	if m.Easing != "" || m.Direction != "" {
		style := math.EasingStyle(m.Easing)
		if style == "" {
			style = math.EasingLinear
		}
		direction := math.EasingDirection(m.Direction)
		if direction == "" {
			direction = math.EasingOut
		}
		if !math.IsEasingStyle(style) {
			return nil, fmt.Errorf("camera: unknown easing style %q", m.Easing)
		}
		opts = append(opts, scene.WithEasing(style, direction))
	}
	if m.Repeat > 0 {
		opts = append(opts, scene.WithRepeat(m.Repeat))
	}
	if m.Reverses {
		opts = append(opts, scene.WithReverses())
	}
	if m.Delay > 0 {
		opts = append(opts, scene.WithDelay(m.Delay))
	}
	if m.FieldOfView != nil {
		opts = append(opts, scene.WithProperties(scene.CameraProperties{FieldOfView: m.FieldOfView}))
	}
	return opts, nil
}

func (od ObjectDescription) build() (object.Object, error) {
	color, err := parseColor(od.Color)
	if err != nil {
		return nil, err
	}
	attrs := object.Attributes{Visible: od.Visible}
	cframe := math.CFrame{Position: vec(od.Position), Rotation: radians(od.Rotation)}

	switch od.Kind {
	case KindVector:
		params := object.VectorAttributes{Attributes: attrs, CFrame: cframe, Color: color}
		if od.Origin != nil {
			params.Origin = core.Ptr(math.NewCFrame(vec(*od.Origin)))
		}
		return object.NewVector(params), nil
	case KindLine:
		params := object.LineAttributes{Attributes: attrs, Length: od.Length, Color: color, CFrame: &cframe}
		if od.Thickness > 0 {
			params.Thickness = core.Ptr(od.Thickness)
		}
		return object.NewLine(params), nil
	case KindCone:
		params := object.ConeAttributes{Attributes: attrs, Color: color, CFrame: &cframe}
		if od.Radius > 0 {
			params.Radius = core.Ptr(od.Radius)
		}
		if od.Height > 0 {
			params.Height = core.Ptr(od.Height)
		}
		return object.NewCone(params), nil
	case KindAxes:
		params := object.AxesAttributes{Attributes: attrs, Sizes: od.Sizes, Origin: core.Ptr(vec(od.Position))}
		if len(od.Colors) > 0 {
			if len(od.Colors) != 3 {
				return nil, fmt.Errorf("axes need 3 colors, got %d", len(od.Colors))
			}
			var colors [3]math.Color
			for i, hex := range od.Colors {
				c, err := math.ParseHex(hex)
				if err != nil {
					return nil, err
				}
				colors[i] = c
			}
			params.Colors = &colors
		}
		return object.NewAxes(params), nil
	}
	return nil, fmt.Errorf("unknown kind %q", od.Kind)
}

func parseColor(hex string) (*math.Color, error) {
	if hex == "" {
		return nil, nil
	}
	c, err := math.ParseHex(hex)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func vec(v [3]float32) math.Vec3 {
	return math.NewVec3(v[0], v[1], v[2])
}

func radians(deg [3]float32) math.Vec3 {
	return math.NewVec3(math.DegToRad(deg[0]), math.DegToRad(deg[1]), math.DegToRad(deg[2]))
}
