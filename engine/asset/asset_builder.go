package asset

// AssetBuilderOption is a functional option for configuring an Asset via NewAsset.
type AssetBuilderOption func(*asset)

// WithName is an option builder that sets the display name of the Asset.
//
// Parameters:
//   - name: the asset name
//
// Returns:
//   - AssetBuilderOption: a function that applies the name option to an asset
func WithName(name string) AssetBuilderOption {
	return func(a *asset) {
		a.name = name
	}
}

// WithFile is an option builder that sets the file descriptor of the Asset.
//
// Parameters:
//   - file: the file descriptor
//
// Returns:
//   - AssetBuilderOption: a function that applies the file option to an asset
func WithFile(file *FileDescriptor) AssetBuilderOption {
	return func(a *asset) {
		a.file = file
	}
}

// WithFileURL is an option builder that sets the file URL of the Asset,
// creating a descriptor without variant options.
//
// Parameters:
//   - url: the file URL
//
// Returns:
//   - AssetBuilderOption: a function that applies the file URL option to an asset
func WithFileURL(url string) AssetBuilderOption {
	return func(a *asset) {
		a.file = &FileDescriptor{URL: url}
	}
}

// WithTextureData is an option builder that sets the texture configuration of
// the Asset.
//
// Parameters:
//   - data: the texture descriptor
//
// Returns:
//   - AssetBuilderOption: a function that applies the texture data option to an asset
func WithTextureData(data *TextureDescriptor) AssetBuilderOption {
	return func(a *asset) {
		a.textureData = data
	}
}

// WithRenderData is an option builder that sets the render reference of the
// Asset.
//
// Parameters:
//   - data: the render descriptor
//
// Returns:
//   - AssetBuilderOption: a function that applies the render data option to an asset
func WithRenderData(data *RenderDescriptor) AssetBuilderOption {
	return func(a *asset) {
		a.renderData = data
	}
}

// WithResource is an option builder that pre-installs a live resource,
// marking the Asset loaded. Use this for resources produced outside the
// registry's load pipeline.
//
// Parameters:
//   - resource: the resource to install
//
// Returns:
//   - AssetBuilderOption: a function that applies the resource option to an asset
func WithResource(resource any) AssetBuilderOption {
	return func(a *asset) {
		a.resource = resource
		a.loaded = true
	}
}
