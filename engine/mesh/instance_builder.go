package mesh

// InstanceBuilderOption is a functional option for configuring an Instance via NewInstance.
type InstanceBuilderOption func(*instance)

// WithMesh is an option builder that sets the geometry the Instance draws.
//
// Parameters:
//   - m: the mesh reference
//
// Returns:
//   - InstanceBuilderOption: a function that applies the mesh option to an instance
func WithMesh(m Mesh) InstanceBuilderOption {
	return func(i *instance) {
		i.mesh = m
	}
}

// WithMaterial is an option builder that sets the material the Instance draws with.
//
// Parameters:
//   - m: the material reference
//
// Returns:
//   - InstanceBuilderOption: a function that applies the material option to an instance
func WithMaterial(m Material) InstanceBuilderOption {
	return func(i *instance) {
		i.material = m
	}
}

// WithCastShadow is an option builder that sets the shadow-casting flag.
//
// Parameters:
//   - cast: true if the instance renders into shadow maps
//
// Returns:
//   - InstanceBuilderOption: a function that applies the cast-shadow option to an instance
func WithCastShadow(cast bool) InstanceBuilderOption {
	return func(i *instance) {
		i.castShadow = cast
	}
}

// WithReceiveShadow is an option builder that sets the shadow-receiving flag.
//
// Parameters:
//   - receive: true if the instance samples shadow maps when lit
//
// Returns:
//   - InstanceBuilderOption: a function that applies the receive-shadow option to an instance
func WithReceiveShadow(receive bool) InstanceBuilderOption {
	return func(i *instance) {
		i.receiveShadow = receive
	}
}

// WithRenderStyle is an option builder that sets the rasterization style.
//
// Parameters:
//   - style: the render style to use
//
// Returns:
//   - InstanceBuilderOption: a function that applies the render style option to an instance
func WithRenderStyle(style RenderStyle) InstanceBuilderOption {
	return func(i *instance) {
		i.renderStyle = style
	}
}
