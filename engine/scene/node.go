// Package scene holds the shared render-state registries a renderable
// component binds into: scene nodes, layers and their composition, and the
// batch-group registry.
package scene

import (
	"sync/atomic"

	"github.com/Carmen-Shannon/lumen-go/engine/event"
)

// Event keys fired on a Node.
const (
	// EventNodeInsert fires on a node when it is attached beneath a parent.
	// The payload is the parent Node.
	EventNodeInsert = "insert"
	// EventNodeRemove fires on a node when it is detached from its parent.
	// The payload is the former parent Node.
	EventNodeRemove = "remove"
	// EventNodeEnable fires on a node when its enabled flag changes.
	// The payload is the new enabled state as a bool.
	EventNodeEnable = "enable"
)

// node is the implementation of the Node interface.
type node struct {
	name     string
	enabled  atomic.Bool
	parent   Node
	children []Node
	events   event.Emitter
}

// Node defines the interface for a scene-graph element that components attach
// to. Enable state is hierarchy-aware: a node reports enabled only while every
// ancestor is enabled too. Attachment and enable transitions are announced
// through the node's event emitter.
type Node interface {
	// Name returns the node's identifier.
	Name() string

	// SetName sets the node's identifier.
	SetName(name string)

	// Enabled reports whether this node and all of its ancestors are enabled.
	//
	// Returns:
	//   - bool: true if enabled throughout the hierarchy
	Enabled() bool

	// SetEnabled sets this node's own enabled flag and fires EventNodeEnable
	// when the flag changes.
	//
	// Parameters:
	//   - enabled: the new enabled state
	SetEnabled(enabled bool)

	// Parent returns the node this node is attached beneath, or nil.
	Parent() Node

	// Children returns the nodes attached beneath this node.
	Children() []Node

	// AddChild attaches a node beneath this one and fires EventNodeInsert on
	// the child. A node already attached elsewhere is detached first.
	//
	// Parameters:
	//   - child: the node to attach
	AddChild(child Node)

	// RemoveChild detaches a node from beneath this one and fires
	// EventNodeRemove on the child. Detaching a non-child is a no-op.
	//
	// Parameters:
	//   - child: the node to detach
	RemoveChild(child Node)

	// Events returns the node's event emitter.
	Events() event.Emitter

	// setParent records the node's parent link. Internal to attachment.
	setParent(parent Node)
}

var _ Node = &node{}

// NewNode creates a new Node with the specified options applied.
// Nodes start enabled.
//
// Parameters:
//   - options: a variadic list of NodeBuilderOption functions to configure the Node
//
// Returns:
//   - Node: a new instance of Node configured with the provided options
func NewNode(options ...NodeBuilderOption) Node {
	n := &node{
		events: event.NewEmitter(),
	}
	n.enabled.Store(true)
	for _, option := range options {
		option(n)
	}
	return n
}

func (n *node) Name() string {
	return n.name
}

func (n *node) SetName(name string) {
	n.name = name
}

func (n *node) Enabled() bool {
	if !n.enabled.Load() {
		return false
	}
	if n.parent != nil {
		return n.parent.Enabled()
	}
	return true
}

func (n *node) SetEnabled(enabled bool) {
	if n.enabled.Swap(enabled) == enabled {
		return
	}
	n.events.Fire(EventNodeEnable, enabled)
}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) Children() []Node {
	return n.children
}

func (n *node) AddChild(child Node) {
	if child == nil {
		return
	}
	if p := child.Parent(); p != nil {
		p.RemoveChild(child)
	}
	n.children = append(n.children, child)
	child.setParent(n)
	child.Events().Fire(EventNodeInsert, Node(n))
}

func (n *node) RemoveChild(child Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.setParent(nil)
			child.Events().Fire(EventNodeRemove, Node(n))
			return
		}
	}
}

func (n *node) Events() event.Emitter {
	return n.events
}

func (n *node) setParent(parent Node) {
	n.parent = parent
}
