package object

import (
	"errors"
	"fmt"

	"cogentcore.org/core/base/keylist"
	"github.com/spaghettifunk/motion/engine/core"
)

// OutputTarget is the opaque backend handle an object's visuals attach to.
type OutputTarget interface {
	Name() string
	Destroy()
}

// Object is implemented by everything that lives in the scene graph. Concrete
// types embed a Node and provide Construct and Tick; Destroy and AsNode come
// from the Node unless overridden.
type Object interface {
	// Construct builds the object's own state and children. It runs once.
	Construct()
	// Tick advances the object by dt seconds.
	Tick(dt float64)
	// Destroy tears down the subtree rooted at this object.
	Destroy() error
	AsNode() *Node
}

type State uint8

const (
	StateLive State = iota
	StateDestroying
	StateDestroyed
)

func (s State) String() string {
	switch s {
	case StateLive:
		return "live"
	case StateDestroying:
		return "destroying"
	case StateDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Policy toggles between the historical traversal semantics and the stricter
// alternatives. The zero value keeps the historical ones.
type Policy struct {
	// StrictEnable makes a disabled node gate its entire subtree, including
	// children reached through TickChildren.
	StrictEnable bool
	// TrueMidpoint positions a Vector's line halfway between tail and head
	// instead of at the head.
	TrueMidpoint bool
}

// Node is the hierarchical part of every Object: named children kept in
// insertion order, a back-reference to the parent, the enable gate and the
// lifecycle state.
type Node struct {
	this        Object
	kind        string
	id          string
	disabled    bool
	constructed bool
	state       State
	children    keylist.List[string, Object]
	parent      Object
	output      OutputTarget
	policy      *Policy
}

// Init binds the node to the Object that embeds it. Every constructor must
// call it before the object is used.
func (n *Node) Init(this Object, kind string) {
	n.this = this
	n.kind = kind
	n.id = core.NewID()
}

func (n *Node) AsNode() *Node {
	return n
}

func (n *Node) String() string {
	return fmt.Sprintf("%s(%s)", n.kind, core.ShortID(n.id))
}

func (n *Node) ID() string {
	return n.id
}

func (n *Node) Kind() string {
	return n.kind
}

func (n *Node) State() State {
	return n.state
}

func (n *Node) Constructed() bool {
	return n.constructed
}

func (n *Node) SetEnabled(enabled bool) {
	n.disabled = !enabled
}

func (n *Node) IsEnabled() bool {
	return !n.disabled
}

// Parent returns the object holding this one in its children, or nil.
func (n *Node) Parent() Object {
	return n.parent
}

// SetPolicy pins the traversal policy for this node and every descendant that
// does not set its own.
func (n *Node) SetPolicy(p Policy) {
	n.policy = &p
}

// Policy resolves the nearest policy up the parent chain.
func (n *Node) Policy() Policy {
	for cur := n; cur != nil; {
		if cur.policy != nil {
			return *cur.policy
		}
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsNode()
	}
	return Policy{}
}

func (n *Node) SetOutputTarget(target OutputTarget) {
	n.output = target
}

// OutputInstance walks up the parent chain until a node holding its own
// output target is found. It returns nil if there is none.
func (n *Node) OutputInstance() OutputTarget {
	for cur := n; cur != nil; {
		if cur.output != nil {
			return cur.output
		}
		if cur.parent == nil {
			break
		}
		cur = cur.parent.AsNode()
	}
	return nil
}

// AddChild registers child under name and makes this node its parent. A
// previous child with the same name is replaced but not destroyed. A child
// held by another parent is moved out of it. Adding the node itself or one
// of its ancestors is rejected.
func (n *Node) AddChild(name string, child Object) error {
	if n.state == StateDestroyed {
		core.LogWarn("%s.AddChild(%q): %s", n, name, core.ErrAlreadyDestroyed)
		return fmt.Errorf("%s: %w", n, core.ErrAlreadyDestroyed)
	}
	if child == nil {
		return fmt.Errorf("%s.AddChild(%q): nil child", n, name)
	}
	if n.isSelfOrAncestor(child) {
		core.LogWarn("%s.AddChild(%q): %s would contain itself", n, name, child.AsNode())
		return fmt.Errorf("%s.AddChild(%q): %w", n, name, core.ErrCyclicChild)
	}
	if old := child.AsNode().parent; old != nil && old != n.this {
		old.AsNode().forget(child)
	}
	if prev, ok := n.children.AtTry(name); ok && prev != child {
		core.LogDebug("%s.AddChild(%q): replacing %s with %s", n, name, prev.AsNode(), child.AsNode())
		if prev.AsNode().parent == n.this {
			prev.AsNode().parent = nil
		}
	}
	n.children.Set(name, child)
	child.AsNode().parent = n.this
	return nil
}

func (n *Node) isSelfOrAncestor(obj Object) bool {
	target := obj.AsNode()
	for cur := n; cur != nil; {
		if cur == target {
			return true
		}
		if cur.parent == nil {
			return false
		}
		cur = cur.parent.AsNode()
	}
	return false
}

// forget drops every entry holding child without destroying it.
func (n *Node) forget(child Object) {
	var names []string
	for i, c := range n.children.Values {
		if c == child {
			names = append(names, n.children.Keys[i])
		}
	}
	for _, name := range names {
		n.children.DeleteByKey(name)
	}
}

// RemoveChild destroys the named child and forgets it. Missing names are a no-op.
func (n *Node) RemoveChild(name string) error {
	child, ok := n.children.AtTry(name)
	if !ok {
		return nil
	}
	var err error
	if child.AsNode().state == StateLive {
		err = child.Destroy()
	}
	n.children.DeleteByKey(name)
	if child.AsNode().parent == n.this {
		child.AsNode().parent = nil
	}
	return err
}

// GetChild returns the named child, or nil.
func (n *Node) GetChild(name string) Object {
	return n.children.At(name)
}

// Children returns the children in insertion order.
func (n *Node) Children() []Object {
	out := make([]Object, len(n.children.Values))
	copy(out, n.children.Values)
	return out
}

// ChildNames returns the child names in insertion order.
func (n *Node) ChildNames() []string {
	out := make([]string, len(n.children.Keys))
	copy(out, n.children.Keys)
	return out
}

func (n *Node) NumChildren() int {
	return n.children.Len()
}

// gated reports whether the enable flag stops traversal at this node.
func (n *Node) gated() bool {
	if n.disabled {
		return true
	}
	if !n.Policy().StrictEnable {
		return false
	}
	for p := n.parent; p != nil; p = p.AsNode().parent {
		if p.AsNode().disabled {
			return true
		}
	}
	return false
}

func (n *Node) bound() bool {
	if n.this == nil {
		core.LogError("object used before Init was called")
		return false
	}
	return true
}

// Build is the construction entry point: it runs Construct once, then builds
// every child in insertion order. Children added by Construct are visited in
// the same sweep. Disabled nodes are skipped along with their subtree.
func (n *Node) Build() {
	if !n.bound() {
		return
	}
	if n.state != StateLive {
		core.LogWarn("%s.Build(): object is %s, skipping", n, n.state)
		return
	}
	if n.gated() {
		core.LogDebug("%s.Build(): object is disabled, skipping", n)
		return
	}
	if !n.constructed {
		n.constructed = true
		n.this.Construct()
	}
	for _, child := range n.children.Values {
		child.AsNode().Build()
	}
}

// Update is the per-frame entry point. It does nothing for disabled or
// destroyed nodes; otherwise it calls Tick, which decides whether children
// are ticked.
func (n *Node) Update(dt float64) {
	if !n.bound() || n.state != StateLive || n.gated() {
		return
	}
	n.this.Tick(dt)
}

// TickChildren ticks every live child in insertion order. Unless the policy
// is StrictEnable, it calls Tick directly, so a disabled child is still
// ticked when its parent routes to it this way.
func (n *Node) TickChildren(dt float64) {
	strict := n.Policy().StrictEnable
	for _, child := range n.children.Values {
		cn := child.AsNode()
		if cn.state != StateLive {
			continue
		}
		if strict {
			cn.Update(dt)
			continue
		}
		child.Tick(dt)
	}
}

// Destroy destroys every child depth-first, then this node's own output
// target. A second call returns ErrAlreadyDestroyed.
func (n *Node) Destroy() error {
	if n.state != StateLive {
		return fmt.Errorf("%s: %w", n, core.ErrAlreadyDestroyed)
	}
	core.LogDebug("%s.Destroy(): destroying", n)
	n.state = StateDestroying

	var errs []error
	for _, child := range n.children.Values {
		if child.AsNode().state != StateLive {
			continue
		}
		if err := child.Destroy(); err != nil {
			errs = append(errs, err)
		}
	}
	if n.output != nil {
		n.output.Destroy()
	}
	n.state = StateDestroyed
	return errors.Join(errs...)
}
