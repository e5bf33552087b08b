package texture

import (
	"image"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidLevel builds a w*h RGBA8 buffer filled with one pixel value.
func solidLevel(w, h int, pixel [4]byte) []byte {
	data := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		copy(data[i*4:], pixel[:])
	}
	return data
}

func TestCompleteMipChainFillsToFullLength(t *testing.T) {
	tex := NewTexture(
		WithSize(8, 8),
		WithLevels([]Level{
			{Data: solidLevel(8, 8, [4]byte{100, 100, 100, 255})},
			{Data: solidLevel(4, 4, [4]byte{100, 100, 100, 255})},
		}),
	)

	require.True(t, CompleteMipChain(tex))

	// floor(log2(8)) + 1
	require.Len(t, tex.Levels(), 4)
	for level := 2; level < 4; level++ {
		w, h := tex.LevelDimensions(level)
		assert.Len(t, tex.Levels()[level].Data, w*h*4)
		assert.True(t, tex.LevelDirty(level), "synthesized level %d must be dirty", level)
	}
	assert.False(t, tex.LevelDirty(0))
	assert.False(t, tex.LevelDirty(1))
}

func TestCompleteMipChainBoxFilterAverages(t *testing.T) {
	// A 2x2 base whose four pixels average to a known value.
	base := make([]byte, 2*2*4)
	values := []byte{0, 64, 128, 255}
	for i, v := range values {
		base[i*4] = v
		base[i*4+3] = 255
	}
	tex := NewTexture(
		WithSize(4, 4),
		WithLevels([]Level{
			{Data: solidLevel(4, 4, [4]byte{0, 0, 0, 255})},
			{Data: base},
		}),
	)

	require.True(t, CompleteMipChain(tex))
	require.Len(t, tex.Levels(), 3)

	// (0+64+128+255)/4 truncates to 111.
	last := tex.Levels()[2].Data
	require.Len(t, last, 4)
	assert.Equal(t, byte(111), last[0])
	assert.Equal(t, byte(255), last[3])
}

func TestCompleteMipChainFloatFormat(t *testing.T) {
	makeFloatLevel := func(w, h int, value float32) []byte {
		pixels := make([]float32, w*h*4)
		for i := range pixels {
			pixels[i] = value
		}
		data := make([]byte, len(pixels)*4)
		copy(data, common.SliceToBytes(pixels))
		return data
	}

	tex := NewTexture(
		WithSize(4, 4),
		WithFormat(wgpu.TextureFormatRGBA32Float),
		WithLevels([]Level{
			{Data: makeFloatLevel(4, 4, 2.0)},
			{Data: makeFloatLevel(2, 2, 2.0)},
		}),
	)

	require.True(t, CompleteMipChain(tex))
	require.Len(t, tex.Levels(), 3)

	pixels := common.BytesToSlice[float32](tex.Levels()[2].Data)
	require.Len(t, pixels, 4)
	assert.InDelta(t, 2.0, float64(pixels[0]), 1e-6)
}

func TestCompleteMipChainCubemapPerFace(t *testing.T) {
	makeFaces := func(w, h int) [][]byte {
		faces := make([][]byte, 6)
		for i := range faces {
			faces[i] = solidLevel(w, h, [4]byte{byte(40 * i), 0, 0, 255})
		}
		return faces
	}

	tex := NewTexture(
		WithSize(4, 4),
		WithCubemap(true),
		WithLevels([]Level{
			{Faces: makeFaces(4, 4)},
			{Faces: makeFaces(2, 2)},
		}),
	)

	require.True(t, CompleteMipChain(tex))
	require.Len(t, tex.Levels(), 3)

	last := tex.Levels()[2]
	require.Len(t, last.Faces, 6)
	for i, face := range last.Faces {
		require.Len(t, face, 4)
		assert.Equal(t, byte(40*i), face[0])
	}
}

func TestCompleteMipChainSkipsIneligibleInputs(t *testing.T) {
	twoLevels := func() []Level {
		return []Level{
			{Data: solidLevel(8, 8, [4]byte{1, 2, 3, 4})},
			{Data: solidLevel(4, 4, [4]byte{1, 2, 3, 4})},
		}
	}

	tests := []struct {
		name string
		tex  Texture
	}{
		{
			name: "compressed format",
			tex: NewTexture(WithSize(8, 8),
				WithFormat(wgpu.TextureFormatBC3RGBAUnorm),
				WithLevels(twoLevels())),
		},
		{
			name: "unsupported format",
			tex: NewTexture(WithSize(8, 8),
				WithFormat(wgpu.TextureFormatRG8Unorm),
				WithLevels(twoLevels())),
		},
		{
			name: "volume texture",
			tex: NewTexture(WithSize(8, 8),
				WithVolume(true),
				WithLevels(twoLevels())),
		},
		{
			name: "single level",
			tex: NewTexture(WithSize(8, 8),
				WithLevels([]Level{{Data: solidLevel(8, 8, [4]byte{0, 0, 0, 0})}})),
		},
		{
			name: "already full chain",
			tex: NewTexture(WithSize(2, 2),
				WithLevels([]Level{
					{Data: solidLevel(2, 2, [4]byte{0, 0, 0, 0})},
					{Data: solidLevel(1, 1, [4]byte{0, 0, 0, 0})},
				})),
		},
		{
			name: "media-backed base level",
			tex: NewTexture(WithSize(8, 8),
				WithLevels([]Level{
					{Source: image.NewRGBA(image.Rect(0, 0, 8, 8))},
					{Data: solidLevel(4, 4, [4]byte{0, 0, 0, 0})},
				})),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := len(tt.tex.Levels())
			assert.False(t, CompleteMipChain(tt.tex))
			assert.Len(t, tt.tex.Levels(), before, "level array must be unchanged")
		})
	}
}

func TestRequiredMipLevels(t *testing.T) {
	tests := []struct {
		w, h, want int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{4, 4, 3},
		{256, 256, 9},
		{512, 128, 10},
	}
	for _, tt := range tests {
		tex := NewTexture(WithSize(tt.w, tt.h))
		assert.Equal(t, tt.want, tex.RequiredMipLevels(), "%dx%d", tt.w, tt.h)
	}
}

func TestLevelDimensionsClampToOne(t *testing.T) {
	tex := NewTexture(WithSize(8, 2))
	w, h := tex.LevelDimensions(3)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}
