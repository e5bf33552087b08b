package asset

// RegistryBuilderOption is a functional option for configuring a Registry via
// NewRegistry.
type RegistryBuilderOption func(*registry)

// WithWorkers is an option builder that sets the number of fetch workers the
// Registry runs.
//
// Parameters:
//   - workers: the worker count, minimum 1
//
// Returns:
//   - RegistryBuilderOption: a function that applies the workers option to a registry
func WithWorkers(workers int) RegistryBuilderOption {
	return func(r *registry) {
		if workers < 1 {
			workers = 1
		}
		r.workers = workers
	}
}

// WithHandler is an option builder that registers a handler for an asset type,
// replacing any default handler for that type.
//
// Parameters:
//   - assetType: the asset type name
//   - h: the handler to register
//
// Returns:
//   - RegistryBuilderOption: a function that applies the handler option to a registry
func WithHandler(assetType string, h Handler) RegistryBuilderOption {
	return func(r *registry) {
		r.handlers[assetType] = h
	}
}
