package render

import (
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/asset"
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixture wires a scene, an attached node, and an enabled component holding
// one resolved instance.
type fixture struct {
	scn  scene.Scene
	node scene.Node
	comp Component
	inst mesh.Instance
}

func newFixture(t *testing.T, options ...ComponentBuilderOption) *fixture {
	t.Helper()
	scn := scene.NewScene("test")
	node := scene.NewNode(scene.WithNodeName("holder"))
	scn.Root().AddChild(node)

	f := &fixture{
		scn:  scn,
		node: node,
		inst: mesh.NewInstance(),
	}
	options = append([]ComponentBuilderOption{WithComponentEnabled(true)}, options...)
	f.comp = NewComponent(node, scn, options...)
	f.comp.SetMeshInstances([]mesh.Instance{f.inst})
	return f
}

func (f *fixture) worldLayer() *scene.Layer {
	return f.scn.Layers().LayerByID(scene.LayerIDWorld)
}

func TestComponentBindsOnEnableUnbindsOnDisable(t *testing.T) {
	f := newFixture(t)

	require.Len(t, f.worldLayer().MeshInstances(), 1)

	f.comp.SetEnabled(false)
	assert.Empty(t, f.worldLayer().MeshInstances())

	f.comp.SetEnabled(true)
	assert.Len(t, f.worldLayer().MeshInstances(), 1)
}

func TestComponentTracksNodeEnableState(t *testing.T) {
	f := newFixture(t)
	require.Len(t, f.worldLayer().MeshInstances(), 1)

	f.node.SetEnabled(false)
	assert.Empty(t, f.worldLayer().MeshInstances())

	f.node.SetEnabled(true)
	assert.Len(t, f.worldLayer().MeshInstances(), 1)
}

func TestComponentHierarchyAwareEnableCheck(t *testing.T) {
	f := newFixture(t)

	f.scn.Root().SetEnabled(false)
	require.False(t, f.node.Enabled())

	// With a disabled ancestor, re-enabling the component must not bind.
	f.comp.SetEnabled(false)
	f.comp.SetEnabled(true)
	assert.Empty(t, f.worldLayer().MeshInstances())
}

func TestComponentNodeRemovalUnbinds(t *testing.T) {
	f := newFixture(t)
	require.Len(t, f.worldLayer().MeshInstances(), 1)

	f.scn.Root().RemoveChild(f.node)
	assert.Empty(t, f.worldLayer().MeshInstances())

	f.scn.Root().AddChild(f.node)
	assert.Len(t, f.worldLayer().MeshInstances(), 1)
}

func TestSetMeshInstancesUnbindsPreviousList(t *testing.T) {
	f := newFixture(t)
	old := f.inst

	next := mesh.NewInstance()
	f.comp.SetMeshInstances([]mesh.Instance{next})

	layer := f.worldLayer()
	require.Len(t, layer.MeshInstances(), 1)
	assert.Same(t, next, layer.MeshInstances()[0])
	assert.NotContains(t, layer.MeshInstances(), old)
}

func TestSetMeshInstancesStampsComponentFlags(t *testing.T) {
	f := newFixture(t)
	f.comp.SetCastShadows(true)
	f.comp.SetReceiveShadows(true)
	f.comp.SetStatic(true)
	f.comp.SetLightmapped(true)

	inst := mesh.NewInstance()
	f.comp.SetMeshInstances([]mesh.Instance{inst})

	assert.True(t, inst.CastShadow())
	assert.True(t, inst.ReceiveShadow())
	assert.True(t, inst.Static())
	assert.True(t, inst.Lightmapped())
}

func TestLayersRoundTripIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ui := scene.NewLayer(7, "ui")
	f.scn.Layers().Add(ui)

	original := []int{scene.LayerIDWorld}
	f.comp.SetLayers([]int{7})
	f.comp.SetLayers(original)

	assert.Len(t, f.worldLayer().MeshInstances(), 1)
	assert.Empty(t, ui.MeshInstances())
}

func TestSetLayersPreservesSliceIdentity(t *testing.T) {
	f := newFixture(t, WithLayers([]int{scene.LayerIDWorld, 7}))
	held := f.comp.Layers()

	f.comp.SetLayers([]int{7, scene.LayerIDWorld})

	assert.Equal(t, []int{7, scene.LayerIDWorld}, held, "external holders must observe the mutation")
	assert.Same(t, &held[0], &f.comp.Layers()[0], "the backing array must be reused")
}

func TestSetLayersSkipsUnresolvableIDs(t *testing.T) {
	f := newFixture(t)

	assert.NotPanics(t, func() {
		f.comp.SetLayers([]int{42, scene.LayerIDWorld})
	})
	assert.Len(t, f.worldLayer().MeshInstances(), 1)
}

func TestCastShadowsToggleRestoresCasterSet(t *testing.T) {
	f := newFixture(t)
	f.comp.SetCastShadows(true)

	layer := f.worldLayer()
	require.Len(t, layer.ShadowCasters(), 1)

	f.comp.SetCastShadows(false)
	assert.Empty(t, layer.ShadowCasters())
	assert.False(t, f.inst.CastShadow())

	f.comp.SetCastShadows(true)
	assert.Len(t, layer.ShadowCasters(), 1)
	assert.True(t, f.inst.CastShadow())
	assert.Len(t, layer.MeshInstances(), 1, "draw membership must be untouched")
}

func TestBatchGroupAssignmentSuppressesDirectDraws(t *testing.T) {
	f := newFixture(t)
	layer := f.worldLayer()
	batcher := f.scn.Batcher()
	require.Len(t, layer.MeshInstances(), 1)

	f.comp.SetBatchGroupID(4)
	assert.Empty(t, layer.MeshInstances(), "batched geometry must leave direct draws")
	require.Len(t, batcher.Nodes(scene.BatchKindRender, 4), 1)
	assert.Same(t, f.node, batcher.Nodes(scene.BatchKindRender, 4)[0])

	f.comp.SetBatchGroupID(scene.BatchGroupNone)
	assert.Len(t, layer.MeshInstances(), 1, "direct draws must be restored without duplication")
	assert.Empty(t, batcher.Nodes(scene.BatchKindRender, 4))
}

func TestBatchGroupReassignmentMovesNode(t *testing.T) {
	f := newFixture(t)
	batcher := f.scn.Batcher()

	f.comp.SetBatchGroupID(4)
	f.comp.SetBatchGroupID(5)

	assert.Empty(t, batcher.Nodes(scene.BatchKindRender, 4))
	assert.Len(t, batcher.Nodes(scene.BatchKindRender, 5), 1)
	assert.Empty(t, f.worldLayer().MeshInstances(), "still batched, still no direct draws")
}

func TestSetMaterialSkipsAssetDrivenInstances(t *testing.T) {
	f := newFixture(t)
	require.Equal(t, TypeAsset, f.comp.Type())

	m := mesh.NewMaterial(mesh.WithMaterialName("override"))
	f.comp.SetMaterial(m)

	assert.Same(t, m, f.comp.Material())
	assert.Nil(t, f.inst.Material(), "asset-driven instances keep their own materials")
}

func TestSetMaterialPropagatesForPrimitiveTypes(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.comp.SetType(mesh.PrimitiveBox))

	m := mesh.NewMaterial(mesh.WithMaterialName("checker"))
	f.comp.SetMaterial(m)

	instances, ok := f.comp.MeshInstances()
	require.True(t, ok)
	require.Len(t, instances, 1)
	assert.Same(t, m, instances[0].Material())
}

func TestSetTypePrimitiveSynthesizesGeometry(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.comp.SetType(mesh.PrimitiveSphere))

	instances, ok := f.comp.MeshInstances()
	require.True(t, ok)
	require.Len(t, instances, 1)
	assert.Equal(t, mesh.PrimitiveSphere, instances[0].Mesh().Name())

	area, known := f.comp.Area()
	assert.True(t, known)
	assert.Positive(t, area)

	// The synthesized instance replaces the old one in the layer.
	layer := f.worldLayer()
	require.Len(t, layer.MeshInstances(), 1)
	assert.Same(t, instances[0], layer.MeshInstances()[0])
}

func TestSetTypeAssetClearsGeometryAndArea(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.comp.SetType(mesh.PrimitiveBox))

	require.NoError(t, f.comp.SetType(TypeAsset))

	_, ok := f.comp.MeshInstances()
	assert.False(t, ok, "asset-driven type starts unresolved")
	_, known := f.comp.Area()
	assert.False(t, known)
	assert.Empty(t, f.worldLayer().MeshInstances())
}

func TestSetTypeRejectsUnknownShape(t *testing.T) {
	f := newFixture(t)
	assert.Error(t, f.comp.SetType("teapot"))
	assert.Equal(t, TypeAsset, f.comp.Type())
}

func TestSceneLayerSwapRebindsMembership(t *testing.T) {
	f := newFixture(t)
	oldWorld := f.worldLayer()
	require.Len(t, oldWorld.MeshInstances(), 1)

	next := scene.NewLayerComposition()
	f.scn.SetLayers(next)

	assert.Empty(t, oldWorld.MeshInstances(), "instances must leave the replaced composition")
	assert.Len(t, next.LayerByID(scene.LayerIDWorld).MeshInstances(), 1)
}

func TestLayerAddedToCompositionBindsLateJoiners(t *testing.T) {
	f := newFixture(t)
	f.comp.SetLayers([]int{scene.LayerIDWorld, 7})

	ui := scene.NewLayer(7, "ui")
	f.scn.Layers().Add(ui)

	assert.Len(t, ui.MeshInstances(), 1, "a late-added named layer must pick up the instances")
}

func TestLayerRemovedFromCompositionUnbinds(t *testing.T) {
	f := newFixture(t)
	ui := scene.NewLayer(7, "ui")
	f.scn.Layers().Add(ui)
	f.comp.SetLayers([]int{7})
	require.Len(t, ui.MeshInstances(), 1)

	f.scn.Layers().Remove(ui)
	assert.Empty(t, ui.MeshInstances())
}

func TestDestroyUnbindsAndStopsTracking(t *testing.T) {
	f := newFixture(t)
	require.Len(t, f.worldLayer().MeshInstances(), 1)

	f.comp.Destroy()
	assert.Empty(t, f.worldLayer().MeshInstances())

	// Node events after destroy must not rebind.
	f.node.SetEnabled(false)
	f.node.SetEnabled(true)
	assert.Empty(t, f.worldLayer().MeshInstances())
}

func TestBindMaterialAssetAlreadyLoaded(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.comp.SetType(mesh.PrimitiveBox))

	reg := asset.NewRegistry()
	m := mesh.NewMaterial(mesh.WithMaterialName("gold"))
	id := reg.Add(asset.NewAsset("material", asset.WithResource(m)))

	f.comp.BindMaterialAsset(reg, id)
	assert.Same(t, m, f.comp.Material())
}

func TestBindMaterialAssetWaitsForRegistration(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.comp.SetType(mesh.PrimitiveBox))

	reg := asset.NewRegistry()
	f.comp.BindMaterialAsset(reg, 1)
	assert.Nil(t, f.comp.Material())

	m := mesh.NewMaterial(mesh.WithMaterialName("gold"))
	reg.Add(asset.NewAsset("material", asset.WithResource(m)))
	assert.Same(t, m, f.comp.Material())
}

func TestDestroyReleasesPendingMaterialSubscriptions(t *testing.T) {
	f := newFixture(t)
	reg := asset.NewRegistry()

	f.comp.BindMaterialAsset(reg, 1)
	f.comp.Destroy()

	reg.Add(asset.NewAsset("material", asset.WithResource(mesh.NewMaterial())))
	assert.Nil(t, f.comp.Material(), "a destroyed component must not receive deferred materials")
}

func TestUnresolvedComponentReportsNoGeometry(t *testing.T) {
	scn := scene.NewScene("test")
	node := scene.NewNode()
	scn.Root().AddChild(node)

	c := NewComponent(node, scn, WithComponentEnabled(true))
	instances, ok := c.MeshInstances()
	assert.Nil(t, instances)
	assert.False(t, ok)
	assert.Empty(t, scn.Layers().LayerByID(scene.LayerIDWorld).MeshInstances())
}
