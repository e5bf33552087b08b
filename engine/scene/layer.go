package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/mesh"
)

// LayerIDWorld is the id of the default world layer every new composition
// starts with.
const LayerIDWorld = 0

// Layer is an ordered collection of mesh instances considered together for a
// render pass, plus the separate set of instances rendered into shadow maps
// for that pass. Membership mutation is reserved to component lifecycle
// transitions; queries are synchronous and reentrant.
type Layer struct {
	id            int
	name          string
	instances     []mesh.Instance
	shadowCasters []mesh.Instance
}

// NewLayer creates an empty layer with the given id and name.
//
// Parameters:
//   - id: the layer's unique id within a composition
//   - name: the layer's display name
//
// Returns:
//   - *Layer: the new layer
func NewLayer(id int, name string) *Layer {
	return &Layer{id: id, name: name}
}

// ID returns the layer's unique id.
func (l *Layer) ID() int {
	return l.id
}

// Name returns the layer's display name.
func (l *Layer) Name() string {
	return l.name
}

// MeshInstances returns the instances drawn by this layer.
func (l *Layer) MeshInstances() []mesh.Instance {
	return l.instances
}

// ShadowCasters returns the instances rendered into this layer's shadow maps.
func (l *Layer) ShadowCasters() []mesh.Instance {
	return l.shadowCasters
}

// AddMeshInstances registers instances for drawing. Instances already present
// are skipped; instances flagged as shadow casters also join the caster set.
//
// Parameters:
//   - instances: the instances to register
func (l *Layer) AddMeshInstances(instances []mesh.Instance) {
	for _, inst := range instances {
		if !containsInstance(l.instances, inst) {
			l.instances = append(l.instances, inst)
		}
		if inst.CastShadow() && !containsInstance(l.shadowCasters, inst) {
			l.shadowCasters = append(l.shadowCasters, inst)
		}
	}
}

// RemoveMeshInstances unregisters instances from drawing and from the
// shadow-caster set. Absent instances are skipped.
//
// Parameters:
//   - instances: the instances to unregister
func (l *Layer) RemoveMeshInstances(instances []mesh.Instance) {
	for _, inst := range instances {
		l.instances = removeInstance(l.instances, inst)
		l.shadowCasters = removeInstance(l.shadowCasters, inst)
	}
}

// AddShadowCasters registers instances in the shadow-caster set without
// touching draw membership. Instances already present are skipped.
//
// Parameters:
//   - instances: the instances to register as casters
func (l *Layer) AddShadowCasters(instances []mesh.Instance) {
	for _, inst := range instances {
		if !containsInstance(l.shadowCasters, inst) {
			l.shadowCasters = append(l.shadowCasters, inst)
		}
	}
}

// RemoveShadowCasters unregisters instances from the shadow-caster set without
// touching draw membership.
//
// Parameters:
//   - instances: the instances to unregister as casters
func (l *Layer) RemoveShadowCasters(instances []mesh.Instance) {
	for _, inst := range instances {
		l.shadowCasters = removeInstance(l.shadowCasters, inst)
	}
}

func containsInstance(list []mesh.Instance, inst mesh.Instance) bool {
	for _, e := range list {
		if e == inst {
			return true
		}
	}
	return false
}

func removeInstance(list []mesh.Instance, inst mesh.Instance) []mesh.Instance {
	for i, e := range list {
		if e == inst {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
