package parser

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// Common errors returned by the DDS parser
var (
	errInvalidDDSMagic   = errors.New("invalid DDS magic number")
	errInvalidDDSHeader  = errors.New("invalid DDS header size")
	errUnsupportedDDS    = errors.New("unsupported DDS pixel format")
	errTruncatedDDSLevel = errors.New("DDS level data truncated")
)

const (
	ddsMagic      = 0x20534444 // "DDS "
	ddsHeaderSize = 124
	ddsDataOffset = 4 + ddsHeaderSize

	ddsCaps2Cubemap = 0x200
	ddsCaps2Volume  = 0x200000

	fourCCDXT1 = 0x31545844
	fourCCDXT3 = 0x33545844
	fourCCDXT5 = 0x35545844
)

// ddsParser decodes DirectDraw Surface containers, including pre-baked mip
// chains, cube maps, and BC1/BC2/BC3 block-compressed payloads.
type ddsParser struct{}

var _ Parser = &ddsParser{}

func (p *ddsParser) Load(url string, fetch FetchFunc, done LoadCallback) {
	fetchBytes(url, fetch, done)
}

func (p *ddsParser) Open(url string, data []byte) (texture.Texture, error) {
	if len(data) < ddsDataOffset {
		return nil, errInvalidDDSHeader
	}
	if binary.LittleEndian.Uint32(data[0:]) != ddsMagic {
		return nil, errInvalidDDSMagic
	}
	if binary.LittleEndian.Uint32(data[4:]) != ddsHeaderSize {
		return nil, errInvalidDDSHeader
	}

	height := int(binary.LittleEndian.Uint32(data[12:]))
	width := int(binary.LittleEndian.Uint32(data[16:]))
	depth := int(binary.LittleEndian.Uint32(data[24:]))
	mipCount := int(binary.LittleEndian.Uint32(data[28:]))
	fourCC := binary.LittleEndian.Uint32(data[84:])
	rgbBitCount := int(binary.LittleEndian.Uint32(data[88:]))
	caps2 := binary.LittleEndian.Uint32(data[112:])

	if mipCount == 0 {
		mipCount = 1
	}
	cubemap := caps2&ddsCaps2Cubemap != 0
	volume := caps2&ddsCaps2Volume != 0 && depth > 1

	var format wgpu.TextureFormat
	blockSize := 0
	switch {
	case fourCC == fourCCDXT1:
		format, blockSize = wgpu.TextureFormatBC1RGBAUnorm, 8
	case fourCC == fourCCDXT3:
		format, blockSize = wgpu.TextureFormatBC2RGBAUnorm, 16
	case fourCC == fourCCDXT5:
		format, blockSize = wgpu.TextureFormatBC3RGBAUnorm, 16
	case fourCC == 0 && rgbBitCount == 32:
		format = wgpu.TextureFormatRGBA8Unorm
	default:
		return nil, fmt.Errorf("%w: fourCC %08x, %d bpp", errUnsupportedDDS, fourCC, rgbBitCount)
	}

	faces := 1
	if cubemap {
		faces = 6
	}

	// DDS stores all mips of one face before the next face.
	levels := make([]texture.Level, mipCount)
	offset := ddsDataOffset
	for face := 0; face < faces; face++ {
		for level := 0; level < mipCount; level++ {
			w := max(1, width>>level)
			h := max(1, height>>level)
			size := w * h * 4
			if blockSize > 0 {
				size = max(1, (w+3)/4) * max(1, (h+3)/4) * blockSize
			}
			if offset+size > len(data) {
				return nil, errTruncatedDDSLevel
			}
			buf := data[offset : offset+size]
			offset += size

			if cubemap {
				if levels[level].Faces == nil {
					levels[level].Faces = make([][]byte, 6)
				}
				levels[level].Faces[face] = buf
			} else {
				levels[level].Data = buf
			}
		}
	}

	return texture.NewTexture(
		texture.WithName(baseName(url)),
		texture.WithSize(width, height),
		texture.WithFormat(format),
		texture.WithCubemap(cubemap),
		texture.WithVolume(volume),
		texture.WithLevels(levels),
	), nil
}
