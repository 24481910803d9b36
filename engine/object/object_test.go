package object

import (
	"errors"
	"testing"

	"github.com/spaghettifunk/motion/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal struct {
	entries []string
}

func (j *journal) add(s string) {
	j.entries = append(j.entries, s)
}

type recorder struct {
	Node
	name  string
	log   *journal
	route bool
	build func(p *recorder)
}

func newRecorder(name string, log *journal) *recorder {
	p := &recorder{name: name, log: log}
	p.Init(p, "Recorder")
	return p
}

func (p *recorder) Construct() {
	p.log.add("construct:" + p.name)
	if p.build != nil {
		p.build(p)
	}
}

func (p *recorder) Tick(dt float64) {
	p.log.add("tick:" + p.name)
	if p.route {
		p.TickChildren(dt)
	}
}

func (p *recorder) Destroy() error {
	p.log.add("destroy:" + p.name)
	return p.Node.Destroy()
}

type fakeTarget struct {
	name string
	log  *journal
}

func (t *fakeTarget) Name() string { return t.name }

func (t *fakeTarget) Destroy() {
	if t.log != nil {
		t.log.add("target:" + t.name)
	}
}

func TestBuildConstructsChildrenInInsertionOrder(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.build = func(p *recorder) {
		require.NoError(t, p.AddChild("b", newRecorder("b", log)))
		require.NoError(t, p.AddChild("a", newRecorder("a", log)))
	}
	c := newRecorder("c", log)
	require.NoError(t, root.AddChild("c", c))

	root.Build()
	root.Build()

	assert.Equal(t, []string{"construct:root", "construct:c", "construct:b", "construct:a"}, log.entries)
	assert.Equal(t, []string{"c", "b", "a"}, root.ChildNames())
	assert.True(t, c.Constructed())
}

func TestDisabledObjectHasNoSideEffects(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.route = true
	require.NoError(t, root.AddChild("child", newRecorder("child", log)))
	root.SetEnabled(false)

	root.Build()
	root.Update(0.1)

	assert.Empty(t, log.entries)
	assert.False(t, root.Constructed())
}

func TestTickChildrenReachesDisabledChildByDefault(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.route = true
	child := newRecorder("child", log)
	require.NoError(t, root.AddChild("child", child))
	root.Build()
	child.SetEnabled(false)
	log.entries = nil

	root.Update(0.1)
	assert.Equal(t, []string{"tick:root", "tick:child"}, log.entries)
	child.Update(0.1)
	assert.Equal(t, []string{"tick:root", "tick:child"}, log.entries)
}

func TestStrictEnableGatesSubtree(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.route = true
	root.SetPolicy(Policy{StrictEnable: true})
	mid := newRecorder("mid", log)
	mid.route = true
	leaf := newRecorder("leaf", log)
	require.NoError(t, root.AddChild("mid", mid))
	require.NoError(t, mid.AddChild("leaf", leaf))
	root.Build()
	log.entries = nil

	mid.SetEnabled(false)
	root.Update(0.1)
	leaf.Update(0.1)

	assert.Equal(t, []string{"tick:root"}, log.entries)
}

func TestChildManagement(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	first := newRecorder("first", log)
	second := newRecorder("second", log)

	require.NoError(t, root.AddChild("x", first))
	assert.Same(t, first, root.GetChild("x"))
	assert.Equal(t, root, first.Parent())
	assert.Nil(t, root.GetChild("missing"))

	require.NoError(t, root.AddChild("x", second))
	assert.Same(t, second, root.GetChild("x"))
	assert.Equal(t, StateLive, first.State())
	assert.Nil(t, first.Parent())
	assert.Equal(t, 1, root.NumChildren())

	require.NoError(t, root.RemoveChild("x"))
	assert.Nil(t, root.GetChild("x"))
	assert.Equal(t, StateDestroyed, second.State())
	assert.Nil(t, second.Parent())
	assert.NoError(t, root.RemoveChild("x"))
}

func TestAddChildMovesChildBetweenParents(t *testing.T) {
	log := &journal{}
	a := newRecorder("a", log)
	b := newRecorder("b", log)
	c := newRecorder("c", log)

	require.NoError(t, a.AddChild("x", c))
	require.NoError(t, b.AddChild("y", c))
	assert.Nil(t, a.GetChild("x"))
	assert.Equal(t, 0, a.NumChildren())
	assert.Equal(t, b, c.Parent())

	require.NoError(t, a.Destroy())
	assert.Equal(t, StateLive, c.State())
	assert.Same(t, c, b.GetChild("y"))
}

func TestAddChildRejectsCycles(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	mid := newRecorder("mid", log)
	leaf := newRecorder("leaf", log)
	require.NoError(t, root.AddChild("mid", mid))
	require.NoError(t, mid.AddChild("leaf", leaf))

	assert.ErrorIs(t, root.AddChild("self", root), core.ErrCyclicChild)
	assert.ErrorIs(t, leaf.AddChild("up", root), core.ErrCyclicChild)
	assert.ErrorIs(t, leaf.AddChild("up", mid), core.ErrCyclicChild)
	assert.Equal(t, 0, leaf.NumChildren())
	assert.Equal(t, mid, leaf.Parent())
	assert.Nil(t, root.Parent())

	root.Build()
	assert.Nil(t, leaf.OutputInstance())
	assert.Equal(t, []string{"construct:root", "construct:mid", "construct:leaf"}, log.entries)
}

func TestDestroyOrderAndIdempotence(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.SetOutputTarget(&fakeTarget{name: "root", log: log})
	a := newRecorder("a", log)
	b := newRecorder("b", log)
	require.NoError(t, root.AddChild("a", a))
	require.NoError(t, root.AddChild("b", b))
	require.NoError(t, a.AddChild("leaf", newRecorder("leaf", log)))

	require.NoError(t, root.Destroy())
	assert.Equal(t, []string{"destroy:root", "destroy:a", "destroy:leaf", "destroy:b", "target:root"}, log.entries)
	assert.Equal(t, StateDestroyed, root.State())

	err := root.Destroy()
	assert.True(t, errors.Is(err, core.ErrAlreadyDestroyed))
	assert.ErrorIs(t, root.AddChild("late", newRecorder("late", log)), core.ErrAlreadyDestroyed)

	log.entries = nil
	root.Build()
	root.Update(0.1)
	assert.Empty(t, log.entries)
}

func TestDestroyLeavesAncestorTarget(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	root.SetOutputTarget(&fakeTarget{name: "root", log: log})
	child := newRecorder("child", log)
	require.NoError(t, root.AddChild("child", child))

	require.NoError(t, child.Destroy())
	assert.Equal(t, []string{"destroy:child"}, log.entries)
}

func TestOutputInstanceResolvesThroughParents(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	mid := newRecorder("mid", log)
	leaf := newRecorder("leaf", log)
	require.NoError(t, root.AddChild("mid", mid))
	require.NoError(t, mid.AddChild("leaf", leaf))
	assert.Nil(t, leaf.OutputInstance())

	rootTarget := &fakeTarget{name: "root"}
	root.SetOutputTarget(rootTarget)
	assert.Same(t, rootTarget, leaf.OutputInstance())

	midTarget := &fakeTarget{name: "mid"}
	mid.SetOutputTarget(midTarget)
	assert.Same(t, midTarget, leaf.OutputInstance())
	assert.Same(t, rootTarget, root.OutputInstance())
}

func TestPolicyInheritance(t *testing.T) {
	log := &journal{}
	root := newRecorder("root", log)
	child := newRecorder("child", log)
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, Policy{}, child.Policy())

	root.SetPolicy(Policy{TrueMidpoint: true})
	assert.True(t, child.Policy().TrueMidpoint)

	child.SetPolicy(Policy{})
	assert.False(t, child.Policy().TrueMidpoint)
}
