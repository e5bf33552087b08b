// Package render implements the renderable component: the owner of a set of
// mesh instances that it keeps synchronized with scene membership (layers,
// batch groups, shadow-caster sets) across its own and its owning node's
// enable/disable lifecycle.
package render

import (
	"fmt"

	"github.com/Carmen-Shannon/lumen-go/engine/asset"
	"github.com/Carmen-Shannon/lumen-go/engine/event"
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
	"github.com/Carmen-Shannon/lumen-go/engine/scene"
)

// TypeAsset is the component type meaning geometry arrives from a resolved
// render asset rather than a procedural primitive.
const TypeAsset = "asset"

// component is the implementation of the Component interface.
type component struct {
	typ     string
	enabled bool
	active  bool

	node scene.Node
	scn  scene.Scene

	instances []mesh.Instance
	resolved  bool

	castShadows            bool
	receiveShadows         bool
	static                 bool
	lightmapped            bool
	lightmapSizeMultiplier float32

	batchGroupID int
	layers       []int
	material     mesh.Material

	area      float32
	areaKnown bool

	nodeSubs  []*event.Subscription
	sceneSubs []*event.Subscription
	compSubs  []*event.Subscription

	registry    asset.Registry
	pendingKeys []string
}

// Component defines the interface for a renderable component attached to one
// scene node. Its mesh instances, whenever resolved, are registered in exactly
// the layers named by its layer-id list; while a batch group is assigned the
// node is registered with the batcher instead and direct layer draws are
// suppressed.
type Component interface {
	// Type returns the geometry source: TypeAsset or a primitive shape name.
	Type() string

	// SetType switches the geometry source. Switching to a primitive shape
	// name discards the current instance list, synthesizes one instance from
	// the procedural mesh using the current material, and recomputes the
	// cached area. Switching to TypeAsset clears both the instance list and
	// the area; geometry assignment is left to the asset-resolution path.
	//
	// Parameters:
	//   - typ: TypeAsset or one of the mesh.Primitive* shape names
	//
	// Returns:
	//   - error: error if the shape name is not recognized
	SetType(typ string) error

	// Enabled reports the component's own enabled flag.
	Enabled() bool

	// SetEnabled flips the component's enabled flag, binding or unbinding
	// scene membership when the owning node is enabled too.
	//
	// Parameters:
	//   - enabled: the new enabled state
	SetEnabled(enabled bool)

	// Node returns the owning scene node.
	Node() scene.Node

	// MeshInstances returns the current instance list and whether geometry
	// has been resolved at all. An unresolved component returns (nil, false);
	// a resolved component always returns true even for an empty list.
	//
	// Returns:
	//   - []mesh.Instance: the current instances
	//   - bool: true if geometry has been resolved
	MeshInstances() ([]mesh.Instance, bool)

	// SetMeshInstances replaces the instance list. The previous list, if
	// resolved, is unbound from every current layer first; the component's
	// shadow, static, and lightmap flags are re-stamped onto every new
	// instance; the new list is bound into layers only while the component
	// and its node are both enabled.
	//
	// Parameters:
	//   - instances: the new instance list
	SetMeshInstances(instances []mesh.Instance)

	// ClearMeshInstances unbinds and discards the instance list, returning
	// the component to the unresolved state.
	ClearMeshInstances()

	// CastShadows reports whether instances render into shadow maps.
	CastShadows() bool

	// SetCastShadows flips shadow casting. On a true-to-false transition the
	// instances leave each current layer's caster set before the per-instance
	// flags flip; on false-to-true they join the caster sets after.
	//
	// Parameters:
	//   - cast: the new cast-shadows state
	SetCastShadows(cast bool)

	// ReceiveShadows reports whether instances sample shadow maps when lit.
	ReceiveShadows() bool

	// SetReceiveShadows propagates the receive-shadow flag to every current
	// instance. No layer membership changes.
	SetReceiveShadows(receive bool)

	// Static reports whether instances are eligible for static batching.
	Static() bool

	// SetStatic propagates the static flag to every current instance.
	SetStatic(static bool)

	// Lightmapped reports whether instances sample baked lightmaps.
	Lightmapped() bool

	// SetLightmapped propagates the lightmap flag to every current instance.
	SetLightmapped(lightmapped bool)

	// LightmapSizeMultiplier returns the lightmap area scale factor.
	LightmapSizeMultiplier() float32

	// SetLightmapSizeMultiplier sets the lightmap area scale factor.
	SetLightmapSizeMultiplier(multiplier float32)

	// BatchGroupID returns the assigned batch group, or scene.BatchGroupNone.
	BatchGroupID() int

	// SetBatchGroupID moves the node between batch groups. Assigning a group
	// while enabled removes the geometry from direct layer draws; assigning
	// scene.BatchGroupNone while enabled restores them.
	//
	// Parameters:
	//   - id: the new batch group id, or scene.BatchGroupNone
	SetBatchGroupID(id int)

	// Layers returns the component's layer-id list. The returned slice is the
	// component's live list; SetLayers mutates it in place so held references
	// stay current.
	Layers() []int

	// SetLayers replaces the layer-id set: current instances leave the old
	// layers, the stored list is mutated in place, and instances join every
	// resolvable layer of the new set while the component and node are both
	// enabled. Unresolvable ids are skipped silently.
	//
	// Parameters:
	//   - ids: the new layer ids
	SetLayers(ids []int)

	// Material returns the component-level material, or nil.
	Material() mesh.Material

	// SetMaterial sets the component-level material, propagating it onto
	// every current instance unless the component is asset-driven, whose
	// instances carry their own per-instance materials.
	//
	// Parameters:
	//   - m: the new material
	SetMaterial(m mesh.Material)

	// BindMaterialAsset resolves the component's material from a registered
	// material asset, deferring through the registry's notifications when the
	// asset is absent or unloaded. Pending subscriptions are released on
	// Destroy.
	//
	// Parameters:
	//   - reg: the asset registry
	//   - id: the material asset id
	BindMaterialAsset(reg asset.Registry, id uint64)

	// Area returns the cached silhouette area used for lightmap allocation
	// and whether it is known. Asset-driven components report unknown.
	//
	// Returns:
	//   - float32: the cached area
	//   - bool: true if the area is known
	Area() (float32, bool)

	// Destroy unbinds the component from all scene membership and releases
	// every event subscription it holds. The component must not be used
	// afterwards.
	Destroy()
}

var _ Component = &component{}

// NewComponent creates a new Component attached to the given node within the
// given scene, with the specified options applied. Components start disabled,
// asset-driven, unbatched, and bound to the world layer.
//
// Parameters:
//   - node: the owning scene node
//   - scn: the scene whose layers and batcher the component binds into
//   - options: a variadic list of ComponentBuilderOption functions to configure the Component
//
// Returns:
//   - Component: a new instance of Component configured with the provided options
func NewComponent(node scene.Node, scn scene.Scene, options ...ComponentBuilderOption) Component {
	c := &component{
		typ:                    TypeAsset,
		node:                   node,
		scn:                    scn,
		batchGroupID:           scene.BatchGroupNone,
		layers:                 []int{scene.LayerIDWorld},
		lightmapSizeMultiplier: 1,
	}
	for _, option := range options {
		option(c)
	}

	c.nodeSubs = append(c.nodeSubs,
		node.Events().On(scene.EventNodeInsert, c.onNodeInsert),
		node.Events().On(scene.EventNodeRemove, c.onNodeRemove),
		node.Events().On(scene.EventNodeEnable, c.onNodeEnable),
	)

	if c.enabled && node.Enabled() {
		c.activate()
	}
	return c
}

func (c *component) Type() string {
	return c.typ
}

func (c *component) SetType(typ string) error {
	if typ == c.typ {
		return nil
	}

	if typ == TypeAsset {
		c.typ = typ
		c.ClearMeshInstances()
		c.areaKnown = false
		c.area = 0
		return nil
	}

	m, err := mesh.Primitive(typ)
	if err != nil {
		return fmt.Errorf("cannot switch render type: %w", err)
	}

	c.typ = typ
	c.SetMeshInstances([]mesh.Instance{
		mesh.NewInstance(mesh.WithMesh(m), mesh.WithMaterial(c.material)),
	})
	c.area = mesh.Area(m)
	c.areaKnown = true
	return nil
}

func (c *component) Enabled() bool {
	return c.enabled
}

func (c *component) SetEnabled(enabled bool) {
	if c.enabled == enabled {
		return
	}
	c.enabled = enabled
	if enabled {
		if c.node.Enabled() {
			c.activate()
		}
	} else {
		// Unbind even if the node hierarchy is disabled; membership acquired
		// before an ancestor went dark must not linger.
		c.deactivate()
	}
}

func (c *component) Node() scene.Node {
	return c.node
}

func (c *component) MeshInstances() ([]mesh.Instance, bool) {
	if !c.resolved {
		return nil, false
	}
	return c.instances, true
}

func (c *component) SetMeshInstances(instances []mesh.Instance) {
	// The outgoing list leaves its layers before it is discarded so no layer
	// keeps drawing instances the component no longer owns.
	if c.resolved {
		c.removeFromLayers()
	}

	c.instances = instances
	c.resolved = true

	for _, inst := range instances {
		inst.SetCastShadow(c.castShadows)
		inst.SetReceiveShadow(c.receiveShadows)
		inst.SetStatic(c.static)
		inst.SetLightmapped(c.lightmapped)
	}

	if c.bindable() {
		c.addToLayers()
	}
}

func (c *component) ClearMeshInstances() {
	if !c.resolved {
		return
	}
	c.removeFromLayers()
	c.instances = nil
	c.resolved = false
}

func (c *component) CastShadows() bool {
	return c.castShadows
}

func (c *component) SetCastShadows(cast bool) {
	if c.castShadows == cast {
		return
	}

	// Removal runs against the old membership, before any flag flips.
	if !cast && c.resolved {
		c.forEachLayer(func(l *scene.Layer) {
			l.RemoveShadowCasters(c.instances)
		})
	}

	c.castShadows = cast
	for _, inst := range c.instances {
		inst.SetCastShadow(cast)
	}

	if cast && c.resolved {
		c.forEachLayer(func(l *scene.Layer) {
			l.AddShadowCasters(c.instances)
		})
	}
}

func (c *component) ReceiveShadows() bool {
	return c.receiveShadows
}

func (c *component) SetReceiveShadows(receive bool) {
	c.receiveShadows = receive
	for _, inst := range c.instances {
		inst.SetReceiveShadow(receive)
	}
}

func (c *component) Static() bool {
	return c.static
}

func (c *component) SetStatic(static bool) {
	c.static = static
	for _, inst := range c.instances {
		inst.SetStatic(static)
	}
}

func (c *component) Lightmapped() bool {
	return c.lightmapped
}

func (c *component) SetLightmapped(lightmapped bool) {
	c.lightmapped = lightmapped
	for _, inst := range c.instances {
		inst.SetLightmapped(lightmapped)
	}
}

func (c *component) LightmapSizeMultiplier() float32 {
	return c.lightmapSizeMultiplier
}

func (c *component) SetLightmapSizeMultiplier(multiplier float32) {
	c.lightmapSizeMultiplier = multiplier
}

func (c *component) BatchGroupID() int {
	return c.batchGroupID
}

func (c *component) SetBatchGroupID(id int) {
	if c.batchGroupID == id {
		return
	}
	old := c.batchGroupID

	if c.node.Enabled() && old != scene.BatchGroupNone {
		c.scn.Batcher().Remove(scene.BatchKindRender, old, c.node)
	}
	if c.node.Enabled() && id != scene.BatchGroupNone {
		c.scn.Batcher().Insert(scene.BatchKindRender, id, c.node)
	}

	c.batchGroupID = id

	if c.enabled && c.node.Enabled() && c.resolved {
		if old == scene.BatchGroupNone && id != scene.BatchGroupNone {
			// The batcher now owns the draws; direct layer membership would
			// double-render.
			c.removeFromLayers()
		}
		if old != scene.BatchGroupNone && id == scene.BatchGroupNone {
			c.addToLayers()
		}
	}
}

func (c *component) Layers() []int {
	return c.layers
}

func (c *component) SetLayers(ids []int) {
	if c.resolved {
		c.removeFromLayers()
	}

	// Mutate the held slice rather than replacing it; external holders of
	// the list stay valid across the swap.
	c.layers = append(c.layers[:0], ids...)

	if c.bindable() {
		c.addToLayers()
	}
}

func (c *component) Material() mesh.Material {
	return c.material
}

func (c *component) SetMaterial(m mesh.Material) {
	if c.material == m {
		return
	}
	c.material = m
	if c.typ == TypeAsset {
		// Asset-driven geometry carries per-instance materials the component
		// must not override.
		return
	}
	for _, inst := range c.instances {
		inst.SetMaterial(m)
	}
}

func (c *component) BindMaterialAsset(reg asset.Registry, id uint64) {
	c.registry = reg

	apply := func(a asset.Asset) {
		if m, ok := a.Resource().(mesh.Material); ok {
			c.SetMaterial(m)
		}
	}

	a := reg.Get(id)
	if a == nil {
		key := asset.AddEventKey(id)
		c.pendingKeys = append(c.pendingKeys, key)
		reg.Once(key, func(arg any) {
			added, ok := arg.(asset.Asset)
			if !ok {
				return
			}
			c.BindMaterialAsset(reg, added.ID())
		})
		return
	}
	if !a.Loaded() {
		key := asset.LoadEventKey(id)
		c.pendingKeys = append(c.pendingKeys, key)
		reg.Once(key, func(arg any) {
			loaded, ok := arg.(asset.Asset)
			if !ok {
				return
			}
			apply(loaded)
		})
		reg.Load(a)
		return
	}
	apply(a)
}

func (c *component) Area() (float32, bool) {
	return c.area, c.areaKnown
}

func (c *component) Destroy() {
	if c.active {
		c.deactivate()
	}
	for _, sub := range c.nodeSubs {
		sub.Close()
	}
	c.nodeSubs = nil

	if c.registry != nil {
		for _, key := range c.pendingKeys {
			c.registry.Off(key)
		}
		c.pendingKeys = nil
	}
}

// bindable reports whether instances belong in direct layer draws right now.
func (c *component) bindable() bool {
	return c.enabled && c.node.Enabled() && c.resolved &&
		c.batchGroupID == scene.BatchGroupNone
}

// activate binds scene membership and acquires the scene-level subscriptions.
func (c *component) activate() {
	if c.active {
		return
	}
	c.active = true

	c.sceneSubs = append(c.sceneSubs,
		c.scn.Events().On(scene.EventSetLayers, c.onLayersChanged),
	)
	c.subscribeComposition(c.scn.Layers())

	if c.batchGroupID != scene.BatchGroupNone {
		c.scn.Batcher().Insert(scene.BatchKindRender, c.batchGroupID, c.node)
	} else if c.resolved {
		c.addToLayers()
	}
}

// deactivate is the exact inverse of activate.
func (c *component) deactivate() {
	if !c.active {
		return
	}
	c.active = false

	if c.batchGroupID != scene.BatchGroupNone {
		c.scn.Batcher().Remove(scene.BatchKindRender, c.batchGroupID, c.node)
	} else if c.resolved {
		c.removeFromLayers()
	}

	for _, sub := range c.sceneSubs {
		sub.Close()
	}
	c.sceneSubs = nil
	c.unsubscribeComposition()
}

// addToLayers registers the instance list with every resolvable layer.
func (c *component) addToLayers() {
	c.forEachLayer(func(l *scene.Layer) {
		l.AddMeshInstances(c.instances)
	})
}

// removeFromLayers unregisters the instance list from every resolvable layer.
func (c *component) removeFromLayers() {
	c.forEachLayer(func(l *scene.Layer) {
		l.RemoveMeshInstances(c.instances)
	})
}

// forEachLayer visits the resolvable layers in the component's id list.
// Unresolvable ids are skipped; stale ids are expected while scene topology
// changes asynchronously.
func (c *component) forEachLayer(visit func(l *scene.Layer)) {
	comp := c.scn.Layers()
	for _, id := range c.layers {
		if l := comp.LayerByID(id); l != nil {
			visit(l)
		}
	}
}

func (c *component) subscribeComposition(comp *scene.LayerComposition) {
	c.compSubs = append(c.compSubs,
		comp.Events().On(scene.EventLayerAdded, c.onLayerAdded),
		comp.Events().On(scene.EventLayerRemoved, c.onLayerRemoved),
	)
}

func (c *component) unsubscribeComposition() {
	for _, sub := range c.compSubs {
		sub.Close()
	}
	c.compSubs = nil
}

// onLayersChanged tracks a wholesale composition swap on the scene.
func (c *component) onLayersChanged(arg any) {
	changed, ok := arg.(scene.LayersChanged)
	if !ok {
		return
	}

	if c.resolved {
		for _, id := range c.layers {
			if l := changed.Old.LayerByID(id); l != nil {
				l.RemoveMeshInstances(c.instances)
			}
		}
	}

	c.unsubscribeComposition()
	c.subscribeComposition(changed.New)

	if c.bindable() {
		c.addToLayers()
	}
}

// onLayerAdded binds instances into a layer that just joined the composition,
// if the component names it.
func (c *component) onLayerAdded(arg any) {
	l, ok := arg.(*scene.Layer)
	if !ok || !c.bindable() {
		return
	}
	for _, id := range c.layers {
		if id == l.ID() {
			l.AddMeshInstances(c.instances)
			return
		}
	}
}

// onLayerRemoved unbinds instances from a layer leaving the composition.
func (c *component) onLayerRemoved(arg any) {
	l, ok := arg.(*scene.Layer)
	if !ok || !c.resolved {
		return
	}
	for _, id := range c.layers {
		if id == l.ID() {
			l.RemoveMeshInstances(c.instances)
			return
		}
	}
}

// onNodeInsert rebinds membership when the owning node reattaches.
func (c *component) onNodeInsert(arg any) {
	if c.enabled && c.node.Enabled() {
		c.activate()
	}
}

// onNodeRemove unbinds membership when the owning node detaches.
func (c *component) onNodeRemove(arg any) {
	if c.active {
		c.deactivate()
	}
}

// onNodeEnable tracks the owning node's hierarchy-aware enable state.
func (c *component) onNodeEnable(arg any) {
	if !c.enabled {
		return
	}
	if c.node.Enabled() {
		c.activate()
	} else {
		c.deactivate()
	}
}
