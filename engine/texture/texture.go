package texture

import (
	"image"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/chewxy/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Encoding identifies how a texture's pixel values are interpreted when sampled.
type Encoding int

const (
	// EncodingDefault is plain linear (or sRGB-resolved) color data.
	EncodingDefault Encoding = iota
	// EncodingRGBM stores HDR color with a shared multiplier in the alpha channel.
	EncodingRGBM
	// EncodingRGBE stores HDR color with a shared exponent in the alpha channel.
	EncodingRGBE
	// EncodingSwizzleGGGR is a two-channel normal-map packing (X in alpha, Y in green).
	EncodingSwizzleGGGR
)

// Level holds the pixel storage for a single mip level. Exactly one of Data,
// Faces, or Source is populated: Data for 2D levels, Faces (length 6) for cube
// map levels, Source for a decoded media handle that the GPU path uploads as-is.
type Level struct {
	// Data is the tightly packed row-major pixel data for a 2D level.
	Data []byte
	// Faces holds six per-face pixel buffers for a cube map level.
	Faces [][]byte
	// Source is a decoded image backing the level; when set the level has no
	// raw pixel buffer until the upload path rasterizes it.
	Source image.Image
}

// texture is the implementation of the Texture interface.
type texture struct {
	name    string
	width   int
	height  int
	format  wgpu.TextureFormat
	cubemap bool
	volume  bool

	levels      []Level
	levelsDirty []bool

	minFilter  wgpu.FilterMode
	magFilter  wgpu.FilterMode
	mipFilter  wgpu.MipmapFilterMode
	addressU   wgpu.AddressMode
	addressV   wgpu.AddressMode
	anisotropy int
	mipmaps    bool
	flipY      bool
	encoding   Encoding
}

// Texture defines a CPU-side texture object pending GPU upload. Level-0
// dimensions are fixed at creation; the level array either holds a single
// level or, after the mip completion pass, the full chain down to 1x1.
type Texture interface {
	// Name returns the texture identifier.
	Name() string

	// Width returns the level-0 width in pixels.
	Width() int

	// Height returns the level-0 height in pixels.
	Height() int

	// Format returns the pixel format.
	Format() wgpu.TextureFormat

	// Cubemap reports whether this texture is a cube map (six faces per level).
	Cubemap() bool

	// Volume reports whether this texture is a 3D volume texture.
	Volume() bool

	// Compressed reports whether the pixel format is a GPU block-compressed format.
	Compressed() bool

	// Levels returns the mip level array. Index 0 is the base level.
	Levels() []Level

	// SetLevels replaces the mip level array and clears all dirty marks.
	//
	// Parameters:
	//   - levels: the new level array
	SetLevels(levels []Level)

	// AppendLevel appends a level to the chain and marks it dirty for upload.
	//
	// Parameters:
	//   - l: the level to append
	AppendLevel(l Level)

	// LevelDirty reports whether the given level is pending GPU upload.
	//
	// Parameters:
	//   - level: the mip level index
	//
	// Returns:
	//   - bool: true if the level must be re-uploaded
	LevelDirty(level int) bool

	// MarkLevelDirty flags the given level as pending GPU upload.
	//
	// Parameters:
	//   - level: the mip level index
	MarkLevelDirty(level int)

	// RequiredMipLevels returns the full-chain level count for the texture's
	// level-0 dimensions: floor(log2(max(width, height))) + 1.
	RequiredMipLevels() int

	// LevelDimensions returns the pixel dimensions of the given mip level.
	//
	// Parameters:
	//   - level: the mip level index
	//
	// Returns:
	//   - w, h: the level dimensions, each clamped to a minimum of 1
	LevelDimensions(level int) (w, h int)

	// MinFilter returns the minification filter mode.
	MinFilter() wgpu.FilterMode

	// SetMinFilter sets the minification filter mode.
	SetMinFilter(f wgpu.FilterMode)

	// MagFilter returns the magnification filter mode.
	MagFilter() wgpu.FilterMode

	// SetMagFilter sets the magnification filter mode.
	SetMagFilter(f wgpu.FilterMode)

	// MipFilter returns the mip selection filter mode.
	MipFilter() wgpu.MipmapFilterMode

	// SetMipFilter sets the mip selection filter mode.
	SetMipFilter(f wgpu.MipmapFilterMode)

	// AddressU returns the U coordinate address mode.
	AddressU() wgpu.AddressMode

	// SetAddressU sets the U coordinate address mode.
	SetAddressU(m wgpu.AddressMode)

	// AddressV returns the V coordinate address mode.
	AddressV() wgpu.AddressMode

	// SetAddressV sets the V coordinate address mode.
	SetAddressV(m wgpu.AddressMode)

	// Anisotropy returns the maximum anisotropic filtering level.
	Anisotropy() int

	// SetAnisotropy sets the maximum anisotropic filtering level.
	SetAnisotropy(a int)

	// Mipmaps reports whether mip filtering is enabled when sampling.
	Mipmaps() bool

	// SetMipmaps enables or disables mip filtering when sampling.
	SetMipmaps(enabled bool)

	// FlipY reports whether the texture is flipped vertically at upload.
	FlipY() bool

	// SetFlipY sets whether the texture is flipped vertically at upload.
	SetFlipY(flip bool)

	// Encoding returns the pixel value encoding classification.
	Encoding() Encoding

	// SetEncoding sets the pixel value encoding classification.
	SetEncoding(e Encoding)

	// StagingData returns the upload payload for a raw 2D level. Returns a
	// zero-value payload when the level is media-backed or out of range.
	//
	// Parameters:
	//   - level: the mip level index
	//
	// Returns:
	//   - common.TextureStagingData: the pixels and dimensions for the level
	StagingData(level int) common.TextureStagingData

	// SamplerData returns the sampler configuration derived from the texture's
	// filter, address, and anisotropy state.
	//
	// Returns:
	//   - common.SamplerStagingData: the sampler creation parameters
	SamplerData() common.SamplerStagingData
}

var _ Texture = &texture{}

// NewTexture creates a new Texture with the specified options applied.
// Defaults: RGBA8 format, linear filtering, repeat addressing, mipmaps enabled.
//
// Parameters:
//   - options: a variadic list of TextureBuilderOption functions to configure the Texture
//
// Returns:
//   - Texture: a new instance of Texture configured with the provided options
func NewTexture(options ...TextureBuilderOption) Texture {
	t := &texture{
		format:     wgpu.TextureFormatRGBA8Unorm,
		minFilter:  wgpu.FilterModeLinear,
		magFilter:  wgpu.FilterModeLinear,
		mipFilter:  wgpu.MipmapFilterModeLinear,
		addressU:   wgpu.AddressModeRepeat,
		addressV:   wgpu.AddressModeRepeat,
		anisotropy: 1,
		mipmaps:    true,
	}
	for _, option := range options {
		option(t)
	}
	t.levelsDirty = make([]bool, len(t.levels))
	return t
}

func (t *texture) Name() string {
	return t.name
}

func (t *texture) Width() int {
	return t.width
}

func (t *texture) Height() int {
	return t.height
}

func (t *texture) Format() wgpu.TextureFormat {
	return t.format
}

func (t *texture) Cubemap() bool {
	return t.cubemap
}

func (t *texture) Volume() bool {
	return t.volume
}

func (t *texture) Compressed() bool {
	switch t.format {
	case wgpu.TextureFormatBC1RGBAUnorm, wgpu.TextureFormatBC1RGBAUnormSrgb,
		wgpu.TextureFormatBC2RGBAUnorm, wgpu.TextureFormatBC2RGBAUnormSrgb,
		wgpu.TextureFormatBC3RGBAUnorm, wgpu.TextureFormatBC3RGBAUnormSrgb,
		wgpu.TextureFormatBC4RUnorm, wgpu.TextureFormatBC5RGUnorm,
		wgpu.TextureFormatBC7RGBAUnorm, wgpu.TextureFormatBC7RGBAUnormSrgb:
		return true
	default:
		return false
	}
}

func (t *texture) Levels() []Level {
	return t.levels
}

func (t *texture) SetLevels(levels []Level) {
	t.levels = levels
	t.levelsDirty = make([]bool, len(levels))
}

func (t *texture) AppendLevel(l Level) {
	t.levels = append(t.levels, l)
	t.levelsDirty = append(t.levelsDirty, true)
}

func (t *texture) LevelDirty(level int) bool {
	if level < 0 || level >= len(t.levelsDirty) {
		return false
	}
	return t.levelsDirty[level]
}

func (t *texture) MarkLevelDirty(level int) {
	if level < 0 || level >= len(t.levelsDirty) {
		return
	}
	t.levelsDirty[level] = true
}

func (t *texture) RequiredMipLevels() int {
	maxDim := math32.Max(float32(t.width), float32(t.height))
	if maxDim <= 0 {
		return 1
	}
	return int(math32.Floor(math32.Log2(maxDim))) + 1
}

func (t *texture) LevelDimensions(level int) (w, h int) {
	w = max(1, t.width>>level)
	h = max(1, t.height>>level)
	return
}

func (t *texture) MinFilter() wgpu.FilterMode {
	return t.minFilter
}

func (t *texture) SetMinFilter(f wgpu.FilterMode) {
	t.minFilter = f
}

func (t *texture) MagFilter() wgpu.FilterMode {
	return t.magFilter
}

func (t *texture) SetMagFilter(f wgpu.FilterMode) {
	t.magFilter = f
}

func (t *texture) MipFilter() wgpu.MipmapFilterMode {
	return t.mipFilter
}

func (t *texture) SetMipFilter(f wgpu.MipmapFilterMode) {
	t.mipFilter = f
}

func (t *texture) AddressU() wgpu.AddressMode {
	return t.addressU
}

func (t *texture) SetAddressU(m wgpu.AddressMode) {
	t.addressU = m
}

func (t *texture) AddressV() wgpu.AddressMode {
	return t.addressV
}

func (t *texture) SetAddressV(m wgpu.AddressMode) {
	t.addressV = m
}

func (t *texture) Anisotropy() int {
	return t.anisotropy
}

func (t *texture) SetAnisotropy(a int) {
	t.anisotropy = a
}

func (t *texture) Mipmaps() bool {
	return t.mipmaps
}

func (t *texture) SetMipmaps(enabled bool) {
	t.mipmaps = enabled
}

func (t *texture) FlipY() bool {
	return t.flipY
}

func (t *texture) SetFlipY(flip bool) {
	t.flipY = flip
}

func (t *texture) Encoding() Encoding {
	return t.encoding
}

func (t *texture) SetEncoding(e Encoding) {
	t.encoding = e
}

func (t *texture) StagingData(level int) common.TextureStagingData {
	if level < 0 || level >= len(t.levels) || t.levels[level].Data == nil {
		return common.TextureStagingData{}
	}
	w, h := t.LevelDimensions(level)
	return common.TextureStagingData{
		Pixels: t.levels[level].Data,
		Width:  uint32(w),
		Height: uint32(h),
	}
}

func (t *texture) SamplerData() common.SamplerStagingData {
	mipFilter := t.mipFilter
	if !t.mipmaps {
		mipFilter = wgpu.MipmapFilterModeNearest
	}
	return common.SamplerStagingData{
		AddressModeU:  t.addressU,
		AddressModeV:  t.addressV,
		AddressModeW:  t.addressU,
		MagFilter:     t.magFilter,
		MinFilter:     t.minFilter,
		MipmapFilter:  mipFilter,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: uint16(t.anisotropy),
	}
}
