package scene

// NodeBuilderOption is a functional option for configuring a Node via NewNode.
type NodeBuilderOption func(*node)

// WithNodeName is an option builder that sets the name of the Node.
//
// Parameters:
//   - name: the node identifier
//
// Returns:
//   - NodeBuilderOption: a function that applies the name option to a node
func WithNodeName(name string) NodeBuilderOption {
	return func(n *node) {
		n.name = name
	}
}

// WithNodeEnabled is an option builder that sets the initial enabled flag.
//
// Parameters:
//   - enabled: the initial enabled state
//
// Returns:
//   - NodeBuilderOption: a function that applies the enabled option to a node
func WithNodeEnabled(enabled bool) NodeBuilderOption {
	return func(n *node) {
		n.enabled.Store(enabled)
	}
}
