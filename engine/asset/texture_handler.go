package asset

import (
	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/Carmen-Shannon/lumen-go/engine/texture/parser"
	"github.com/cogentcore/webgpu/wgpu"
)

// minFilterModes maps the persisted minification filter names onto a sampler
// filter plus a mip selection filter.
var minFilterModes = map[string]struct {
	filter wgpu.FilterMode
	mip    wgpu.MipmapFilterMode
}{
	"nearest":             {wgpu.FilterModeNearest, wgpu.MipmapFilterModeNearest},
	"linear":              {wgpu.FilterModeLinear, wgpu.MipmapFilterModeNearest},
	"nearest_mip_nearest": {wgpu.FilterModeNearest, wgpu.MipmapFilterModeNearest},
	"linear_mip_nearest":  {wgpu.FilterModeLinear, wgpu.MipmapFilterModeNearest},
	"nearest_mip_linear":  {wgpu.FilterModeNearest, wgpu.MipmapFilterModeLinear},
	"linear_mip_linear":   {wgpu.FilterModeLinear, wgpu.MipmapFilterModeLinear},
}

// magFilterModes maps the persisted magnification filter names onto sampler filters.
var magFilterModes = map[string]wgpu.FilterMode{
	"nearest": wgpu.FilterModeNearest,
	"linear":  wgpu.FilterModeLinear,
}

// addressModes maps the persisted wrap mode names onto sampler address modes.
var addressModes = map[string]wgpu.AddressMode{
	"repeat": wgpu.AddressModeRepeat,
	"clamp":  wgpu.AddressModeClampToEdge,
	"mirror": wgpu.AddressModeMirrorRepeat,
}

// encodingNames maps the persisted texture type names onto encodings.
var encodingNames = map[string]texture.Encoding{
	"default":     texture.EncodingDefault,
	"rgbm":        texture.EncodingRGBM,
	"rgbe":        texture.EncodingRGBE,
	"swizzleGGGR": texture.EncodingSwizzleGGGR,
}

// textureHandler decodes texture assets: bytes go through the format parser
// selected by extension, decode failures fall back to a placeholder, and
// partial mip chains are completed before upload.
type textureHandler struct {
	fetch parser.FetchFunc
}

var _ Handler = &textureHandler{}

// NewTextureHandler creates the handler for TypeTexture assets.
//
// Returns:
//   - Handler: the texture handler
func NewTextureHandler() Handler {
	return &textureHandler{}
}

func (h *textureHandler) Load(url string, done LoadCallback) {
	parser.ForURL(url).Load(url, h.fetch, func(err error, data []byte) {
		done(err, data)
	})
}

// Open decodes texture bytes. A decode failure does not propagate: the
// returned resource is a small opaque white placeholder so dependent
// materials keep rendering.
func (h *textureHandler) Open(url string, data []byte) (any, error) {
	t, err := parser.ForURL(url).Open(url, data)
	if err != nil {
		return placeholderTexture(url), nil
	}
	texture.CompleteMipChain(t)
	return t, nil
}

func (h *textureHandler) Patch(a Asset, r Registry) {
	t, ok := a.Resource().(texture.Texture)
	if !ok {
		return
	}
	d := a.TextureData()
	if d != nil {
		if m, ok := minFilterModes[d.MinFilter]; ok {
			t.SetMinFilter(m.filter)
			t.SetMipFilter(m.mip)
		}
		if m, ok := magFilterModes[d.MagFilter]; ok {
			t.SetMagFilter(m)
		}
		// Cube maps always sample clamped at the seams.
		if !t.Cubemap() {
			if m, ok := addressModes[d.AddressU]; ok {
				t.SetAddressU(m)
			}
			if m, ok := addressModes[d.AddressV]; ok {
				t.SetAddressV(m)
			}
		}
		if d.Mipmaps != nil {
			t.SetMipmaps(*d.Mipmaps)
		}
		if d.Anisotropy != nil {
			t.SetAnisotropy(*d.Anisotropy)
		}
		if d.FlipY != nil {
			t.SetFlipY(*d.FlipY)
		}
	}
	t.SetEncoding(resolveEncoding(a, t))
}

// resolveEncoding picks the texture encoding from the asset's descriptors.
// The explicit type name wins, then the legacy RGBM flag, then the
// normal-swizzle variant option; otherwise the parser's choice stands.
func resolveEncoding(a Asset, t texture.Texture) texture.Encoding {
	if d := a.TextureData(); d != nil {
		if e, ok := encodingNames[d.Type]; ok {
			return e
		}
		if d.RGBM != nil && *d.RGBM {
			return texture.EncodingRGBM
		}
	}
	if f := a.File(); f != nil && f.Variant != nil && f.Variant.Opt&VariantOptNormalSwizzle != 0 {
		return texture.EncodingSwizzleGGGR
	}
	return t.Encoding()
}

// placeholderTexture builds the 4x4 opaque white stand-in used when decode fails.
func placeholderTexture(url string) texture.Texture {
	pixels := make([]byte, 4*4*4)
	for i := range pixels {
		pixels[i] = 0xFF
	}
	t := texture.NewTexture(
		texture.WithName(url),
		texture.WithSize(4, 4),
		texture.WithFormat(wgpu.TextureFormatRGBA8Unorm),
		texture.WithLevels([]texture.Level{{Data: pixels}}),
		texture.WithMipmaps(false),
	)
	return t
}
