package systems

import (
	"fmt"
	"reflect"

	"cogentcore.org/core/base/keylist"
	"github.com/spaghettifunk/motion/engine/core"
	"github.com/spaghettifunk/motion/engine/object"
)

// SceneRoot is what the registry accepts as a scene: a root object that can
// take children in bulk and says whether it wants destroying on shutdown.
type SceneRoot interface {
	object.Object
	Add(objects map[string]object.Object) error
	DestroyOnCompleted() bool
}

// Registry keeps the scenes to construct and the objects to tick every frame,
// both in registration order.
type Registry struct {
	scenes  keylist.List[string, SceneRoot]
	tickers keylist.List[string, object.Object]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// RegisterScene adds a scene under name. Empty names, nil scenes and
// duplicates are rejected.
func (r *Registry) RegisterScene(name string, s SceneRoot) error {
	if isNil(s) || name == "" {
		err := fmt.Errorf("scene %q: %w", name, core.ErrInvalidRegistration)
		core.LogError(err.Error())
		return err
	}
	if err := r.scenes.Add(name, s); err != nil {
		err = fmt.Errorf("scene %q: %w", name, core.ErrDuplicateRegistration)
		core.LogError(err.Error())
		return err
	}
	core.LogDebug("registered scene %q (%s)", name, s.AsNode())
	return nil
}

// RegisterTicker adds an object whose Update runs every frame. An empty name
// falls back to the object's ID.
func (r *Registry) RegisterTicker(name string, t object.Object) error {
	if isNil(t) {
		err := fmt.Errorf("ticker %q: %w", name, core.ErrInvalidRegistration)
		core.LogError(err.Error())
		return err
	}
	if name == "" {
		name = t.AsNode().ID()
	}
	if err := r.tickers.Add(name, t); err != nil {
		err = fmt.Errorf("ticker %q: %w", name, core.ErrDuplicateRegistration)
		core.LogError(err.Error())
		return err
	}
	core.LogDebug("registered ticker %q (%s)", name, t.AsNode())
	return nil
}

// isNil also catches typed nil pointers stored in an interface.
func isNil(obj object.Object) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

func (r *Registry) Scene(name string) (SceneRoot, bool) {
	return r.scenes.AtTry(name)
}

func (r *Registry) Scenes() []SceneRoot {
	out := make([]SceneRoot, len(r.scenes.Values))
	copy(out, r.scenes.Values)
	return out
}

func (r *Registry) SceneNames() []string {
	out := make([]string, len(r.scenes.Keys))
	copy(out, r.scenes.Keys)
	return out
}

func (r *Registry) Ticker(name string) (object.Object, bool) {
	return r.tickers.AtTry(name)
}

func (r *Registry) Tickers() []object.Object {
	out := make([]object.Object, len(r.tickers.Values))
	copy(out, r.tickers.Values)
	return out
}

func (r *Registry) RemoveScene(name string) bool {
	return r.scenes.DeleteByKey(name)
}

func (r *Registry) RemoveTicker(name string) bool {
	return r.tickers.DeleteByKey(name)
}

// Disable turns off the enable gate of obj.
func (r *Registry) Disable(obj object.Object) {
	if obj == nil {
		return
	}
	obj.AsNode().SetEnabled(false)
}

// Clear forgets every registration.
func (r *Registry) Clear() {
	r.scenes.Reset()
	r.tickers.Reset()
}
