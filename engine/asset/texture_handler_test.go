package asset

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }
func intPtr(v int) *int    { return &v }

func openedTexture(t *testing.T, url string, data []byte) texture.Texture {
	t.Helper()
	res, err := NewTextureHandler().Open(url, data)
	require.NoError(t, err)
	tex, ok := res.(texture.Texture)
	require.True(t, ok)
	return tex
}

func TestTextureOpenDecodesImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 16, 16))))

	tex := openedTexture(t, "albedo.png", buf.Bytes())
	assert.Equal(t, 16, tex.Width())
	assert.Equal(t, 16, tex.Height())
}

func TestTextureOpenFallsBackToPlaceholder(t *testing.T) {
	tex := openedTexture(t, "broken.png", []byte("not an image at all"))

	assert.Equal(t, 4, tex.Width())
	assert.Equal(t, 4, tex.Height())
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, tex.Format())

	require.Len(t, tex.Levels(), 1)
	data := tex.Levels()[0].Data
	require.Len(t, data, 4*4*4)
	for _, b := range data {
		assert.Equal(t, byte(0xFF), b)
	}
}

func TestTexturePatchAppliesSamplerConfig(t *testing.T) {
	tex := texture.NewTexture(texture.WithSize(8, 8))
	a := NewAsset(TypeTexture,
		WithResource(tex),
		WithTextureData(&TextureDescriptor{
			MinFilter:  "nearest_mip_linear",
			MagFilter:  "nearest",
			AddressU:   "clamp",
			AddressV:   "mirror",
			Mipmaps:    boolPtr(false),
			Anisotropy: intPtr(8),
			FlipY:      boolPtr(true),
		}),
	)

	NewTextureHandler().Patch(a, nil)

	assert.Equal(t, wgpu.FilterModeNearest, tex.MinFilter())
	assert.Equal(t, wgpu.MipmapFilterModeLinear, tex.MipFilter())
	assert.Equal(t, wgpu.FilterModeNearest, tex.MagFilter())
	assert.Equal(t, wgpu.AddressModeClampToEdge, tex.AddressU())
	assert.Equal(t, wgpu.AddressModeMirrorRepeat, tex.AddressV())
	assert.False(t, tex.Mipmaps())
	assert.Equal(t, 8, tex.Anisotropy())
	assert.True(t, tex.FlipY())
}

func TestTexturePatchSkipsAddressModesOnCubemaps(t *testing.T) {
	tex := texture.NewTexture(texture.WithSize(8, 8), texture.WithCubemap(true))
	a := NewAsset(TypeTexture,
		WithResource(tex),
		WithTextureData(&TextureDescriptor{
			AddressU: "clamp",
			AddressV: "clamp",
		}),
	)

	NewTextureHandler().Patch(a, nil)

	assert.Equal(t, wgpu.AddressModeRepeat, tex.AddressU())
	assert.Equal(t, wgpu.AddressModeRepeat, tex.AddressV())
}

func TestTexturePatchIgnoresUnknownNames(t *testing.T) {
	tex := texture.NewTexture(texture.WithSize(8, 8))
	a := NewAsset(TypeTexture,
		WithResource(tex),
		WithTextureData(&TextureDescriptor{
			MinFilter: "trilinear-ish",
			MagFilter: "cubic",
			AddressU:  "wrap",
		}),
	)

	NewTextureHandler().Patch(a, nil)

	assert.Equal(t, wgpu.FilterModeLinear, tex.MinFilter())
	assert.Equal(t, wgpu.FilterModeLinear, tex.MagFilter())
	assert.Equal(t, wgpu.AddressModeRepeat, tex.AddressU())
}

func TestTexturePatchEncodingPriority(t *testing.T) {
	tests := []struct {
		name string
		data *TextureDescriptor
		file *FileDescriptor
		want texture.Encoding
	}{
		{
			name: "explicit type wins over legacy flag",
			data: &TextureDescriptor{Type: "rgbe", RGBM: boolPtr(true)},
			want: texture.EncodingRGBE,
		},
		{
			name: "legacy rgbm flag when type absent",
			data: &TextureDescriptor{RGBM: boolPtr(true)},
			want: texture.EncodingRGBM,
		},
		{
			name: "variant option bit when neither set",
			data: &TextureDescriptor{},
			file: &FileDescriptor{URL: "n.png", Variant: &VariantDescriptor{Opt: VariantOptNormalSwizzle}},
			want: texture.EncodingSwizzleGGGR,
		},
		{
			name: "default otherwise",
			data: &TextureDescriptor{},
			want: texture.EncodingDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex := texture.NewTexture(texture.WithSize(4, 4))
			options := []AssetBuilderOption{WithResource(tex), WithTextureData(tt.data)}
			if tt.file != nil {
				options = append(options, WithFile(tt.file))
			}
			a := NewAsset(TypeTexture, options...)

			NewTextureHandler().Patch(a, nil)
			assert.Equal(t, tt.want, tex.Encoding())
		})
	}
}
