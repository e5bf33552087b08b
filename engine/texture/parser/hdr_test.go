package parser

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFlatHDR assembles an uncompressed Radiance file whose every pixel is
// the given RGBE tuple. Widths under 8 never use adaptive RLE.
func buildFlatHDR(width, height int, pixel [4]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("#?RADIANCE\n")
	buf.WriteString("FORMAT=32-bit_rle_rgbe\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "-Y %d +X %d\n", height, width)
	for i := 0; i < width*height; i++ {
		buf.Write(pixel[:])
	}
	return buf.Bytes()
}

func TestHDROpenFlatScanlines(t *testing.T) {
	data := buildFlatHDR(4, 3, [4]byte{255, 128, 64, 130})

	tex, err := (&hdrParser{}).Open("env.hdr", data)
	require.NoError(t, err)

	assert.Equal(t, 4, tex.Width())
	assert.Equal(t, 3, tex.Height())
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, tex.Format())
	assert.Equal(t, texture.EncodingRGBE, tex.Encoding())

	require.Len(t, tex.Levels(), 1)
	pixels := tex.Levels()[0].Data
	require.Len(t, pixels, 4*3*4)
	assert.Equal(t, byte(255), pixels[0])
	assert.Equal(t, byte(128), pixels[1])
	assert.Equal(t, byte(64), pixels[2])
	assert.Equal(t, byte(130), pixels[3])
	// Last pixel matches the first.
	assert.Equal(t, pixels[:4], pixels[len(pixels)-4:])
}

func TestHDROpenAdaptiveRLE(t *testing.T) {
	const width, height = 8, 1
	var buf bytes.Buffer
	buf.WriteString("#?RADIANCE\n")
	buf.WriteString("FORMAT=32-bit_rle_rgbe\n\n")
	buf.WriteString("-Y 1 +X 8\n")

	// RLE scanline header: 2, 2, width-hi, width-lo.
	buf.Write([]byte{2, 2, 0, width})
	// Each channel plane: one run of 8 identical bytes (128+8, value).
	for _, v := range []byte{200, 100, 50, 132} {
		buf.Write([]byte{128 + width, v})
	}

	tex, err := (&hdrParser{}).Open("rle.hdr", buf.Bytes())
	require.NoError(t, err)

	pixels := tex.Levels()[0].Data
	require.Len(t, pixels, width*height*4)
	for x := 0; x < width; x++ {
		assert.Equal(t, byte(200), pixels[x*4])
		assert.Equal(t, byte(100), pixels[x*4+1])
		assert.Equal(t, byte(50), pixels[x*4+2])
		assert.Equal(t, byte(132), pixels[x*4+3])
	}
}

func TestHDROpenRejectsBadSignature(t *testing.T) {
	_, err := (&hdrParser{}).Open("bad.hdr", []byte("PNG\nFORMAT=32-bit_rle_rgbe\n\n-Y 1 +X 1\n"))
	assert.ErrorIs(t, err, errInvalidHDRMagic)
}

func TestHDROpenRejectsWrongFormat(t *testing.T) {
	_, err := (&hdrParser{}).Open("bad.hdr", []byte("#?RADIANCE\nFORMAT=32-bit_rle_xyze\n\n-Y 1 +X 1\n"))
	assert.ErrorIs(t, err, errInvalidHDRFormat)
}

func TestHDROpenRejectsTruncatedScanlines(t *testing.T) {
	data := buildFlatHDR(4, 4, [4]byte{1, 2, 3, 4})
	data = data[:len(data)-20]

	_, err := (&hdrParser{}).Open("short.hdr", data)
	assert.ErrorIs(t, err, errTruncatedHDRScanline)
}
