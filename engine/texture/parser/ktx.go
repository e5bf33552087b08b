package parser

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// Common errors returned by the KTX parser
var (
	errInvalidKTXMagic   = errors.New("invalid KTX identifier")
	errInvalidKTXEndian  = errors.New("unsupported KTX endianness")
	errUnsupportedKTX    = errors.New("unsupported KTX internal format")
	errTruncatedKTXLevel = errors.New("KTX level data truncated")
)

// ktxIdentifier is the 12-byte KTX 1.1 file identifier.
var ktxIdentifier = []byte{0xAB, 0x4B, 0x54, 0x58, 0x20, 0x31, 0x31, 0xBB, 0x0D, 0x0A, 0x1A, 0x0A}

const (
	ktxEndianLE = 0x04030201

	glRGBA8   = 0x8058
	glRGBA32F = 0x8814
	glDXT1    = 0x83F1
	glDXT5    = 0x83F3
)

// ktxParser decodes KTX 1.1 containers with pre-baked mip chains and cube faces.
type ktxParser struct{}

var _ Parser = &ktxParser{}

func (p *ktxParser) Load(url string, fetch FetchFunc, done LoadCallback) {
	fetchBytes(url, fetch, done)
}

func (p *ktxParser) Open(url string, data []byte) (texture.Texture, error) {
	const headerSize = 12 + 13*4
	if len(data) < headerSize {
		return nil, errInvalidKTXMagic
	}
	if !bytes.Equal(data[:12], ktxIdentifier) {
		return nil, errInvalidKTXMagic
	}
	if binary.LittleEndian.Uint32(data[12:]) != ktxEndianLE {
		return nil, errInvalidKTXEndian
	}

	internalFormat := binary.LittleEndian.Uint32(data[28:])
	width := int(binary.LittleEndian.Uint32(data[36:]))
	height := int(binary.LittleEndian.Uint32(data[40:]))
	depth := int(binary.LittleEndian.Uint32(data[44:]))
	faces := int(binary.LittleEndian.Uint32(data[52:]))
	mipCount := int(binary.LittleEndian.Uint32(data[56:]))
	kvBytes := int(binary.LittleEndian.Uint32(data[60:]))

	var format wgpu.TextureFormat
	switch internalFormat {
	case glRGBA8:
		format = wgpu.TextureFormatRGBA8Unorm
	case glRGBA32F:
		format = wgpu.TextureFormatRGBA32Float
	case glDXT1:
		format = wgpu.TextureFormatBC1RGBAUnorm
	case glDXT5:
		format = wgpu.TextureFormatBC3RGBAUnorm
	default:
		return nil, fmt.Errorf("%w: %08x", errUnsupportedKTX, internalFormat)
	}

	if mipCount == 0 {
		mipCount = 1
	}
	cubemap := faces == 6

	levels := make([]texture.Level, 0, mipCount)
	offset := headerSize + kvBytes
	for level := 0; level < mipCount; level++ {
		if offset+4 > len(data) {
			return nil, errTruncatedKTXLevel
		}
		imageSize := int(binary.LittleEndian.Uint32(data[offset:]))
		offset += 4

		if cubemap {
			// For non-array cube maps imageSize covers one face; faces follow
			// consecutively, each padded to a 4-byte boundary.
			faceSize := (imageSize + 3) &^ 3
			lvl := texture.Level{Faces: make([][]byte, 6)}
			for face := 0; face < 6; face++ {
				if offset+imageSize > len(data) {
					return nil, errTruncatedKTXLevel
				}
				lvl.Faces[face] = data[offset : offset+imageSize]
				offset += faceSize
			}
			levels = append(levels, lvl)
		} else {
			padded := (imageSize + 3) &^ 3
			if offset+imageSize > len(data) {
				return nil, errTruncatedKTXLevel
			}
			levels = append(levels, texture.Level{Data: data[offset : offset+imageSize]})
			offset += padded
		}
	}

	return texture.NewTexture(
		texture.WithName(baseName(url)),
		texture.WithSize(width, height),
		texture.WithFormat(format),
		texture.WithCubemap(cubemap),
		texture.WithVolume(depth > 1),
		texture.WithLevels(levels),
	), nil
}
