package scene

// SceneBuilderOption is a functional option for configuring a Scene via NewScene.
type SceneBuilderOption func(*scn)

// WithRoot is an option builder that sets the root node of the Scene.
//
// Parameters:
//   - root: the root node to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the root option to a scene
func WithRoot(root Node) SceneBuilderOption {
	return func(s *scn) {
		s.root = root
	}
}

// WithLayers is an option builder that sets the initial layer composition of
// the Scene.
//
// Parameters:
//   - layers: the layer composition to use
//
// Returns:
//   - SceneBuilderOption: a function that applies the layers option to a scene
func WithLayers(layers *LayerComposition) SceneBuilderOption {
	return func(s *scn) {
		s.layers = layers
	}
}
