package scene

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/object"
)

type SceneAttributes struct {
	Name string
	// DestroyOnCompleted asks the driver to destroy the scene when it stops.
	DestroyOnCompleted bool
}

// NamedChild pairs a name with the child stored under it, or nil.
type NamedChild struct {
	Name   string
	Object object.Object
}

// Scene is a root container: it constructs nothing itself and ticks its
// children in insertion order. Types embedding Scene override Construct to
// populate themselves.
type Scene struct {
	object.Node
	Params SceneAttributes
}

func NewScene(params SceneAttributes) *Scene {
	s := &Scene{}
	s.InitScene(s, params)
	return s
}

// InitScene binds the scene to the object embedding it.
func (s *Scene) InitScene(this object.Object, params SceneAttributes) {
	s.Params = params
	s.Init(this, "Scene")
}

func (s *Scene) Name() string {
	return s.Params.Name
}

func (s *Scene) DestroyOnCompleted() bool {
	return s.Params.DestroyOnCompleted
}

func (s *Scene) Construct() {}

func (s *Scene) Tick(dt float64) {
	s.TickChildren(dt)
}

// Add registers every entry as a child. Map iteration order is undefined, so
// entries are added sorted by name; use AddChild when insertion order matters.
func (s *Scene) Add(objects map[string]object.Object) error {
	for _, name := range slices.Sorted(maps.Keys(objects)) {
		if err := s.AddChild(name, objects[name]); err != nil {
			core.LogError("%s.Add(%q): %s", s, name, err)
			return fmt.Errorf("adding %q: %w", name, err)
		}
	}
	return nil
}

// Get looks up each name, keeping the order of the request.
func (s *Scene) Get(names ...string) []NamedChild {
	out := make([]NamedChild, 0, len(names))
	for _, name := range names {
		out = append(out, NamedChild{Name: name, Object: s.GetChild(name)})
	}
	return out
}
