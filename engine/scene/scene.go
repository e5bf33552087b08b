package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/event"
)

// EventSetLayers fires on a scene when its layer composition object is
// swapped for another. The payload is a LayersChanged value.
const EventSetLayers = "set:layers"

// LayersChanged is the payload of EventSetLayers.
type LayersChanged struct {
	// Old is the composition being replaced.
	Old *LayerComposition
	// New is the composition now in effect.
	New *LayerComposition
}

// scn is the implementation of the Scene interface.
type scn struct {
	name    string
	root    Node
	layers  *LayerComposition
	batcher *BatchManager
	events  event.Emitter
}

// Scene defines the interface for the shared render state that every
// renderable component binds into: the layer composition, the batch-group
// registry, and the root of the node hierarchy.
type Scene interface {
	// Name returns the scene's identifier.
	Name() string

	// SetName sets the scene's identifier.
	SetName(name string)

	// Root returns the root node of the scene hierarchy.
	Root() Node

	// Layers returns the scene's current layer composition.
	Layers() *LayerComposition

	// SetLayers swaps the scene's layer composition and fires EventSetLayers
	// with the old and new compositions. Swapping in the current composition
	// or nil is a no-op.
	//
	// Parameters:
	//   - layers: the new layer composition
	SetLayers(layers *LayerComposition)

	// Batcher returns the scene's batch-group registry.
	Batcher() *BatchManager

	// Events returns the scene's event emitter.
	Events() event.Emitter
}

var _ Scene = &scn{}

// NewScene creates a new Scene with the specified options applied. The scene
// starts with a root node, an empty batch registry, and a layer composition
// holding the default world layer.
//
// Parameters:
//   - name: the name of the scene
//   - options: functional options to further configure the scene
//
// Returns:
//   - Scene: the newly created scene
func NewScene(name string, options ...SceneBuilderOption) Scene {
	s := &scn{
		name:    name,
		batcher: NewBatchManager(),
		events:  event.NewEmitter(),
	}
	for _, option := range options {
		option(s)
	}
	if s.root == nil {
		s.root = NewNode(WithNodeName("root"))
	}
	if s.layers == nil {
		s.layers = NewLayerComposition()
	}
	return s
}

func (s *scn) Name() string {
	return s.name
}

func (s *scn) SetName(name string) {
	s.name = name
}

func (s *scn) Root() Node {
	return s.root
}

func (s *scn) Layers() *LayerComposition {
	return s.layers
}

func (s *scn) SetLayers(layers *LayerComposition) {
	if layers == nil || layers == s.layers {
		return
	}
	old := s.layers
	s.layers = layers
	s.events.Fire(EventSetLayers, LayersChanged{Old: old, New: layers})
}

func (s *scn) Batcher() *BatchManager {
	return s.batcher
}

func (s *scn) Events() event.Emitter {
	return s.events
}
