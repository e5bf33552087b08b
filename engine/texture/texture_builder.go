package texture

import "github.com/cogentcore/webgpu/wgpu"

// TextureBuilderOption is a functional option for configuring a Texture via NewTexture.
type TextureBuilderOption func(*texture)

// WithName is an option builder that sets the name of the Texture.
//
// Parameters:
//   - name: the texture identifier
//
// Returns:
//   - TextureBuilderOption: a function that applies the name option to a texture
func WithName(name string) TextureBuilderOption {
	return func(t *texture) {
		t.name = name
	}
}

// WithSize is an option builder that sets the level-0 dimensions of the Texture.
// The dimensions are immutable after creation.
//
// Parameters:
//   - width: the level-0 width in pixels
//   - height: the level-0 height in pixels
//
// Returns:
//   - TextureBuilderOption: a function that applies the size option to a texture
func WithSize(width, height int) TextureBuilderOption {
	return func(t *texture) {
		t.width = width
		t.height = height
	}
}

// WithFormat is an option builder that sets the pixel format of the Texture.
//
// Parameters:
//   - format: the pixel format
//
// Returns:
//   - TextureBuilderOption: a function that applies the format option to a texture
func WithFormat(format wgpu.TextureFormat) TextureBuilderOption {
	return func(t *texture) {
		t.format = format
	}
}

// WithCubemap is an option builder that marks the Texture as a cube map.
//
// Parameters:
//   - cubemap: true if each level holds six faces
//
// Returns:
//   - TextureBuilderOption: a function that applies the cubemap option to a texture
func WithCubemap(cubemap bool) TextureBuilderOption {
	return func(t *texture) {
		t.cubemap = cubemap
	}
}

// WithVolume is an option builder that marks the Texture as a 3D volume texture.
//
// Parameters:
//   - volume: true if the texture has depth slices
//
// Returns:
//   - TextureBuilderOption: a function that applies the volume option to a texture
func WithVolume(volume bool) TextureBuilderOption {
	return func(t *texture) {
		t.volume = volume
	}
}

// WithLevels is an option builder that sets the initial mip level array of the Texture.
//
// Parameters:
//   - levels: the mip levels, base level first
//
// Returns:
//   - TextureBuilderOption: a function that applies the levels option to a texture
func WithLevels(levels []Level) TextureBuilderOption {
	return func(t *texture) {
		t.levels = levels
	}
}

// WithMipmaps is an option builder that enables or disables mip filtering when sampling.
//
// Parameters:
//   - enabled: true to sample with mip filtering
//
// Returns:
//   - TextureBuilderOption: a function that applies the mipmaps option to a texture
func WithMipmaps(enabled bool) TextureBuilderOption {
	return func(t *texture) {
		t.mipmaps = enabled
	}
}

// WithFlipY is an option builder that sets vertical flipping at upload.
//
// Parameters:
//   - flip: true to flip the texture vertically
//
// Returns:
//   - TextureBuilderOption: a function that applies the flip option to a texture
func WithFlipY(flip bool) TextureBuilderOption {
	return func(t *texture) {
		t.flipY = flip
	}
}

// WithEncoding is an option builder that sets the pixel value encoding classification.
//
// Parameters:
//   - e: the encoding to set
//
// Returns:
//   - TextureBuilderOption: a function that applies the encoding option to a texture
func WithEncoding(e Encoding) TextureBuilderOption {
	return func(t *texture) {
		t.encoding = e
	}
}
