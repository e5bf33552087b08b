package scene

import (
	"github.com/Carmen-Shannon/lumen-go/engine/event"
)

// Event keys fired on a LayerComposition's emitter.
const (
	// EventLayerAdded fires when a layer joins the composition. Payload: *Layer.
	EventLayerAdded = "add"
	// EventLayerRemoved fires when a layer leaves the composition. Payload: *Layer.
	EventLayerRemoved = "remove"
)

// LayerComposition is the ordered set of layers a scene renders, indexed by
// layer id. Components resolve their layer-id lists against it; topology
// changes are announced through its emitter so membership can track them.
type LayerComposition struct {
	layers []*Layer
	byID   map[int]*Layer
	events event.Emitter
}

// NewLayerComposition creates a composition containing only the default world
// layer.
//
// Returns:
//   - *LayerComposition: the new composition
func NewLayerComposition() *LayerComposition {
	c := &LayerComposition{
		byID:   make(map[int]*Layer),
		events: event.NewEmitter(),
	}
	c.Add(NewLayer(LayerIDWorld, "World"))
	return c
}

// Layers returns the composition's layers in order.
func (c *LayerComposition) Layers() []*Layer {
	return c.layers
}

// LayerByID resolves a layer id. Unknown ids resolve to nil; callers skip
// them silently because scene topology changes asynchronously and stale ids
// are expected transiently.
//
// Parameters:
//   - id: the layer id to resolve
//
// Returns:
//   - *Layer: the layer or nil
func (c *LayerComposition) LayerByID(id int) *Layer {
	return c.byID[id]
}

// Add appends a layer to the composition and fires EventLayerAdded. Adding a
// layer whose id is already present is a no-op.
//
// Parameters:
//   - l: the layer to add
func (c *LayerComposition) Add(l *Layer) {
	if l == nil {
		return
	}
	if _, exists := c.byID[l.ID()]; exists {
		return
	}
	c.layers = append(c.layers, l)
	c.byID[l.ID()] = l
	c.events.Fire(EventLayerAdded, l)
}

// Remove detaches a layer from the composition and fires EventLayerRemoved.
// Removing an absent layer is a no-op.
//
// Parameters:
//   - l: the layer to remove
func (c *LayerComposition) Remove(l *Layer) {
	if l == nil {
		return
	}
	if _, exists := c.byID[l.ID()]; !exists {
		return
	}
	delete(c.byID, l.ID())
	for i, e := range c.layers {
		if e == l {
			c.layers = append(c.layers[:i], c.layers[i+1:]...)
			break
		}
	}
	c.events.Fire(EventLayerRemoved, l)
}

// Events returns the composition's event emitter.
func (c *LayerComposition) Events() event.Emitter {
	return c.events
}
