// Package asset implements the asset registry and the resource handlers that
// turn raw bytes into live resources: texture decoding with mip-chain repair,
// container (glTF) mesh-group extraction, and render-asset dependency
// resolution.
package asset

import (
	"strconv"

	"github.com/Carmen-Shannon/lumen-go/common"
)

// Asset type names dispatched to their registered handlers.
const (
	// TypeTexture assets decode into a texture object.
	TypeTexture = "texture"
	// TypeContainer assets decode into a container resource holding mesh groups.
	TypeContainer = "container"
	// TypeRender assets reference one mesh group inside a container asset.
	TypeRender = "render"
)

// VariantOptNormalSwizzle is the file-variant option bit signalling a
// swizzled two-channel normal-map encoding.
const VariantOptNormalSwizzle = 8

// VariantDescriptor carries per-file-variant compression options.
type VariantDescriptor struct {
	// Opt is a bit field of variant options.
	Opt int
}

// FileDescriptor names the file behind an asset.
type FileDescriptor struct {
	// URL locates the raw bytes.
	URL string
	// Variant holds per-variant options, or nil.
	Variant *VariantDescriptor
}

// TextureDescriptor is the persisted configuration applied onto a decoded
// texture during the handler's patch step. Pointer fields distinguish
// "absent" from a zero value.
type TextureDescriptor struct {
	// MinFilter is one of nearest, linear, nearest_mip_nearest,
	// linear_mip_nearest, nearest_mip_linear, linear_mip_linear.
	MinFilter string
	// MagFilter is one of nearest, linear.
	MagFilter string
	// AddressU and AddressV are one of repeat, clamp, mirror.
	AddressU string
	AddressV string
	// Mipmaps enables mip filtering when sampling.
	Mipmaps *bool
	// Anisotropy is the maximum anisotropic filtering level.
	Anisotropy *int
	// FlipY flips the texture vertically at upload.
	FlipY *bool
	// Type is the explicit encoding classification: default, rgbm, rgbe,
	// or swizzleGGGR. Takes priority over the legacy RGBM flag.
	Type string
	// RGBM is the legacy boolean encoding flag.
	RGBM *bool
}

// RenderDescriptor is the persisted reference a render asset carries.
type RenderDescriptor struct {
	// ContainerAsset is the id of the container asset holding the geometry.
	ContainerAsset uint64
	// RenderIndex selects one mesh group within the container.
	RenderIndex int
}

// asset is the implementation of the Asset interface.
type asset struct {
	id          uint64
	name        string
	typ         string
	file        *FileDescriptor
	textureData *TextureDescriptor
	renderData  *RenderDescriptor
	resource    any
	loaded      bool
}

// Asset defines the interface for a registry entry: a declarative resource
// description plus, after loading, the live resource decoded from it.
type Asset interface {
	// ID returns the registry-assigned identifier, or 0 before registration.
	ID() uint64

	// SetID records the registry-assigned identifier.
	//
	// Parameters:
	//   - id: the identifier to assign
	SetID(id uint64)

	// Name returns the asset's display name.
	Name() string

	// Type returns the asset type name used for handler dispatch.
	Type() string

	// File returns the file descriptor, or nil for data-only assets.
	File() *FileDescriptor

	// FileURL returns the file URL, or "" for data-only assets.
	FileURL() string

	// TextureData returns the texture configuration, or nil.
	TextureData() *TextureDescriptor

	// RenderData returns the render reference, or nil.
	RenderData() *RenderDescriptor

	// Resource returns the live decoded resource, or nil before loading.
	Resource() any

	// SetResource installs the live decoded resource.
	//
	// Parameters:
	//   - resource: the resource to install
	SetResource(resource any)

	// Loaded reports whether the asset's resource has been decoded.
	Loaded() bool

	// SetLoaded records whether the asset's resource has been decoded.
	//
	// Parameters:
	//   - loaded: the new loaded state
	SetLoaded(loaded bool)
}

var _ Asset = &asset{}

// NewAsset creates a new Asset with the specified options applied. An asset
// without an explicit name takes its file URL, falling back to its id once
// registered.
//
// Parameters:
//   - typ: the asset type name (TypeTexture, TypeContainer, TypeRender)
//   - options: a variadic list of AssetBuilderOption functions to configure the Asset
//
// Returns:
//   - Asset: a new instance of Asset configured with the provided options
func NewAsset(typ string, options ...AssetBuilderOption) Asset {
	a := &asset{typ: typ}
	for _, option := range options {
		option(a)
	}
	a.name = common.Coalesce(a.name, a.FileURL(), a.typ)
	return a
}

func (a *asset) ID() uint64 {
	return a.id
}

func (a *asset) SetID(id uint64) {
	a.id = id
}

func (a *asset) Name() string {
	return a.name
}

func (a *asset) Type() string {
	return a.typ
}

func (a *asset) File() *FileDescriptor {
	return a.file
}

func (a *asset) FileURL() string {
	if a.file == nil {
		return ""
	}
	return a.file.URL
}

func (a *asset) TextureData() *TextureDescriptor {
	return a.textureData
}

func (a *asset) RenderData() *RenderDescriptor {
	return a.renderData
}

func (a *asset) Resource() any {
	return a.resource
}

func (a *asset) SetResource(resource any) {
	a.resource = resource
}

func (a *asset) Loaded() bool {
	return a.loaded
}

func (a *asset) SetLoaded(loaded bool) {
	a.loaded = loaded
}

// AddEventKey is the registry event key fired when the asset with the given
// id is registered.
//
// Parameters:
//   - id: the asset id
//
// Returns:
//   - string: the "add:<id>" event key
func AddEventKey(id uint64) string {
	return "add:" + strconv.FormatUint(id, 10)
}

// LoadEventKey is the registry event key fired when the asset with the given
// id finishes loading.
//
// Parameters:
//   - id: the asset id
//
// Returns:
//   - string: the "load:<id>" event key
func LoadEventKey(id uint64) string {
	return "load:" + strconv.FormatUint(id, 10)
}

// ErrorEventKey is the registry event key fired when the asset with the given
// id fails to load.
//
// Parameters:
//   - id: the asset id
//
// Returns:
//   - string: the "error:<id>" event key
func ErrorEventKey(id uint64) string {
	return "error:" + strconv.FormatUint(id, 10)
}
