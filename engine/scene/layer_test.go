package scene

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInstances(n int, cast bool) []mesh.Instance {
	instances := make([]mesh.Instance, n)
	for i := range instances {
		instances[i] = mesh.NewInstance(mesh.WithCastShadow(cast))
	}
	return instances
}

func TestLayerAddMeshInstancesDeduplicates(t *testing.T) {
	l := NewLayer(1, "test")
	instances := newTestInstances(2, false)

	l.AddMeshInstances(instances)
	l.AddMeshInstances(instances)

	assert.Len(t, l.MeshInstances(), 2)
}

func TestLayerAddMeshInstancesTracksCasters(t *testing.T) {
	l := NewLayer(1, "test")
	casters := newTestInstances(2, true)
	plain := newTestInstances(1, false)

	l.AddMeshInstances(append(casters, plain...))

	assert.Len(t, l.MeshInstances(), 3)
	assert.Len(t, l.ShadowCasters(), 2)
}

func TestLayerRemoveMeshInstancesClearsBothSets(t *testing.T) {
	l := NewLayer(1, "test")
	instances := newTestInstances(2, true)

	l.AddMeshInstances(instances)
	l.RemoveMeshInstances(instances)

	assert.Empty(t, l.MeshInstances())
	assert.Empty(t, l.ShadowCasters())
}

func TestLayerShadowCasterSetIsIndependent(t *testing.T) {
	l := NewLayer(1, "test")
	instances := newTestInstances(1, false)

	l.AddMeshInstances(instances)
	l.AddShadowCasters(instances)
	require.Len(t, l.ShadowCasters(), 1)

	l.RemoveShadowCasters(instances)
	assert.Empty(t, l.ShadowCasters())
	assert.Len(t, l.MeshInstances(), 1, "draw membership must survive caster removal")
}

func TestLayerRemoveAbsentInstanceIsNoOp(t *testing.T) {
	l := NewLayer(1, "test")
	l.AddMeshInstances(newTestInstances(1, false))

	l.RemoveMeshInstances(newTestInstances(1, false))
	assert.Len(t, l.MeshInstances(), 1)
}

func TestCompositionStartsWithWorldLayer(t *testing.T) {
	c := NewLayerComposition()

	require.Len(t, c.Layers(), 1)
	world := c.LayerByID(LayerIDWorld)
	require.NotNil(t, world)
	assert.Equal(t, "World", world.Name())
}

func TestCompositionLayerByIDUnknownIsNil(t *testing.T) {
	c := NewLayerComposition()
	assert.Nil(t, c.LayerByID(42))
}

func TestCompositionAddFiresEvent(t *testing.T) {
	c := NewLayerComposition()

	var added *Layer
	c.Events().On(EventLayerAdded, func(arg any) {
		added = arg.(*Layer)
	})

	l := NewLayer(5, "ui")
	c.Add(l)

	assert.Same(t, l, added)
	assert.Same(t, l, c.LayerByID(5))
}

func TestCompositionAddDuplicateIDIsNoOp(t *testing.T) {
	c := NewLayerComposition()
	first := NewLayer(5, "ui")
	c.Add(first)
	c.Add(NewLayer(5, "other"))

	assert.Same(t, first, c.LayerByID(5))
	assert.Len(t, c.Layers(), 2)
}

func TestCompositionRemoveFiresEvent(t *testing.T) {
	c := NewLayerComposition()
	l := NewLayer(5, "ui")
	c.Add(l)

	var removed *Layer
	c.Events().On(EventLayerRemoved, func(arg any) {
		removed = arg.(*Layer)
	})
	c.Remove(l)

	assert.Same(t, l, removed)
	assert.Nil(t, c.LayerByID(5))
}

func TestBatchManagerInsertAndRemove(t *testing.T) {
	b := NewBatchManager()
	n := NewNode(WithNodeName("a"))

	b.Insert(BatchKindRender, 3, n)
	require.Len(t, b.Nodes(BatchKindRender, 3), 1)
	assert.True(t, b.GroupDirty(3))

	b.MarkGroupClean(3)
	assert.False(t, b.GroupDirty(3))

	b.Remove(BatchKindRender, 3, n)
	assert.Empty(t, b.Nodes(BatchKindRender, 3))
	assert.True(t, b.GroupDirty(3))
}

func TestBatchManagerInsertIsIdempotent(t *testing.T) {
	b := NewBatchManager()
	n := NewNode()

	b.Insert(BatchKindRender, 3, n)
	b.Insert(BatchKindRender, 3, n)
	assert.Len(t, b.Nodes(BatchKindRender, 3), 1)
}

func TestBatchManagerIgnoresNoneGroup(t *testing.T) {
	b := NewBatchManager()
	b.Insert(BatchKindRender, BatchGroupNone, NewNode())
	assert.Empty(t, b.Nodes(BatchKindRender, BatchGroupNone))
}

func TestSceneSetLayersFiresChangeEvent(t *testing.T) {
	s := NewScene("main")
	old := s.Layers()
	next := NewLayerComposition()

	var payload LayersChanged
	s.Events().On(EventSetLayers, func(arg any) {
		payload = arg.(LayersChanged)
	})

	s.SetLayers(next)
	assert.Same(t, old, payload.Old)
	assert.Same(t, next, payload.New)
	assert.Same(t, next, s.Layers())
}

func TestSceneSetLayersSameOrNilIsNoOp(t *testing.T) {
	s := NewScene("main")
	current := s.Layers()

	fired := false
	s.Events().On(EventSetLayers, func(arg any) {
		fired = true
	})

	s.SetLayers(nil)
	s.SetLayers(current)

	assert.False(t, fired)
	assert.Same(t, current, s.Layers())
}

func TestNodeEnabledFollowsHierarchy(t *testing.T) {
	parent := NewNode(WithNodeName("parent"))
	child := NewNode(WithNodeName("child"))
	parent.AddChild(child)

	assert.True(t, child.Enabled())

	parent.SetEnabled(false)
	assert.False(t, child.Enabled(), "disabled ancestor must disable the child")

	parent.SetEnabled(true)
	assert.True(t, child.Enabled())
}

func TestNodeAttachmentEvents(t *testing.T) {
	parent := NewNode()
	child := NewNode()

	var events []string
	child.Events().On(EventNodeInsert, func(arg any) {
		events = append(events, "insert")
		assert.Same(t, parent, arg.(Node))
	})
	child.Events().On(EventNodeRemove, func(arg any) {
		events = append(events, "remove")
	})

	parent.AddChild(child)
	parent.RemoveChild(child)

	assert.Equal(t, []string{"insert", "remove"}, events)
	assert.Nil(t, child.Parent())
}

func TestNodeEnableEventFiresOnChangeOnly(t *testing.T) {
	n := NewNode()

	count := 0
	n.Events().On(EventNodeEnable, func(arg any) {
		count++
	})

	n.SetEnabled(true) // already enabled
	n.SetEnabled(false)
	n.SetEnabled(false)
	n.SetEnabled(true)

	assert.Equal(t, 2, count)
}
