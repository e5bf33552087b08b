package parser

import (
	"encoding/binary"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDDS assembles a minimal DDS container for tests.
func buildDDS(width, height, mipCount int, fourCC uint32, rgbBitCount int, caps2 uint32, payload []byte) []byte {
	header := make([]byte, ddsDataOffset)
	binary.LittleEndian.PutUint32(header[0:], ddsMagic)
	binary.LittleEndian.PutUint32(header[4:], ddsHeaderSize)
	binary.LittleEndian.PutUint32(header[12:], uint32(height))
	binary.LittleEndian.PutUint32(header[16:], uint32(width))
	binary.LittleEndian.PutUint32(header[28:], uint32(mipCount))
	binary.LittleEndian.PutUint32(header[84:], fourCC)
	binary.LittleEndian.PutUint32(header[88:], uint32(rgbBitCount))
	binary.LittleEndian.PutUint32(header[112:], caps2)
	return append(header, payload...)
}

func TestDDSOpenUncompressedWithMips(t *testing.T) {
	// 4x4 RGBA8 with a full 3-level chain: 64 + 16 + 4 bytes.
	payload := make([]byte, 64+16+4)
	for i := range payload {
		payload[i] = byte(i)
	}
	data := buildDDS(4, 4, 3, 0, 32, 0, payload)

	tex, err := (&ddsParser{}).Open("mips.dds", data)
	require.NoError(t, err)

	assert.Equal(t, "mips.dds", tex.Name())
	assert.Equal(t, 4, tex.Width())
	assert.Equal(t, 4, tex.Height())
	assert.Equal(t, wgpu.TextureFormatRGBA8Unorm, tex.Format())
	assert.False(t, tex.Cubemap())
	assert.False(t, tex.Compressed())

	require.Len(t, tex.Levels(), 3)
	assert.Len(t, tex.Levels()[0].Data, 64)
	assert.Len(t, tex.Levels()[1].Data, 16)
	assert.Len(t, tex.Levels()[2].Data, 4)
	assert.Equal(t, payload[:64], tex.Levels()[0].Data)
}

func TestDDSOpenDXT5(t *testing.T) {
	// One 4x4 BC3 block is 16 bytes.
	data := buildDDS(4, 4, 1, fourCCDXT5, 0, 0, make([]byte, 16))

	tex, err := (&ddsParser{}).Open("block.dds", data)
	require.NoError(t, err)

	assert.Equal(t, wgpu.TextureFormatBC3RGBAUnorm, tex.Format())
	assert.True(t, tex.Compressed())
	require.Len(t, tex.Levels(), 1)
	assert.Len(t, tex.Levels()[0].Data, 16)
}

func TestDDSOpenDXT1Cubemap(t *testing.T) {
	// Six faces, one 4x4 BC1 block (8 bytes) each, face-major layout.
	payload := make([]byte, 6*8)
	for face := 0; face < 6; face++ {
		payload[face*8] = byte(face + 1)
	}
	data := buildDDS(4, 4, 1, fourCCDXT1, 0, ddsCaps2Cubemap, payload)

	tex, err := (&ddsParser{}).Open("cube.dds", data)
	require.NoError(t, err)

	assert.True(t, tex.Cubemap())
	assert.Equal(t, wgpu.TextureFormatBC1RGBAUnorm, tex.Format())
	require.Len(t, tex.Levels(), 1)
	require.Len(t, tex.Levels()[0].Faces, 6)
	for face := 0; face < 6; face++ {
		assert.Equal(t, byte(face+1), tex.Levels()[0].Faces[face][0])
	}
}

func TestDDSOpenRejectsBadMagic(t *testing.T) {
	data := buildDDS(4, 4, 1, 0, 32, 0, make([]byte, 64))
	binary.LittleEndian.PutUint32(data[0:], 0xDEADBEEF)

	_, err := (&ddsParser{}).Open("bad.dds", data)
	assert.ErrorIs(t, err, errInvalidDDSMagic)
}

func TestDDSOpenRejectsUnsupportedFormat(t *testing.T) {
	data := buildDDS(4, 4, 1, 0, 24, 0, make([]byte, 64))

	_, err := (&ddsParser{}).Open("rgb.dds", data)
	assert.ErrorIs(t, err, errUnsupportedDDS)
}

func TestDDSOpenRejectsTruncatedLevel(t *testing.T) {
	data := buildDDS(4, 4, 1, 0, 32, 0, make([]byte, 10))

	_, err := (&ddsParser{}).Open("short.dds", data)
	assert.ErrorIs(t, err, errTruncatedDDSLevel)
}

func TestDDSOpenRejectsShortHeader(t *testing.T) {
	_, err := (&ddsParser{}).Open("tiny.dds", []byte{0, 1, 2})
	assert.ErrorIs(t, err, errInvalidDDSHeader)
}
