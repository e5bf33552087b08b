package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
)

// Common errors returned by the HDR parser
var (
	errInvalidHDRMagic      = errors.New("invalid Radiance HDR signature")
	errInvalidHDRFormat     = errors.New("unsupported Radiance HDR format")
	errInvalidHDRResolution = errors.New("invalid Radiance HDR resolution line")
	errTruncatedHDRScanline = errors.New("HDR scanline data truncated")
)

// hdrParser decodes Radiance RGBE (.hdr) images. The shared-exponent pixels
// are kept as-is in an RGBA8 texture tagged with the RGBE encoding; shaders
// unpack the exponent at sample time.
type hdrParser struct{}

var _ Parser = &hdrParser{}

func (p *hdrParser) Load(url string, fetch FetchFunc, done LoadCallback) {
	fetchBytes(url, fetch, done)
}

func (p *hdrParser) Open(url string, data []byte) (texture.Texture, error) {
	r := bufio.NewReader(bytes.NewReader(data))

	line, err := r.ReadString('\n')
	if err != nil || !strings.HasPrefix(line, "#?") {
		return nil, errInvalidHDRMagic
	}

	formatOK := false
	for {
		line, err = r.ReadString('\n')
		if err != nil {
			return nil, errInvalidHDRFormat
		}
		line = strings.TrimRight(line, "\n")
		if line == "" {
			break
		}
		if line == "FORMAT=32-bit_rle_rgbe" {
			formatOK = true
		}
	}
	if !formatOK {
		return nil, errInvalidHDRFormat
	}

	line, err = r.ReadString('\n')
	if err != nil {
		return nil, errInvalidHDRResolution
	}
	var height, width int
	if _, err = fmt.Sscanf(line, "-Y %d +X %d", &height, &width); err != nil || width <= 0 || height <= 0 {
		return nil, errInvalidHDRResolution
	}

	pixels := make([]byte, width*height*4)
	scanline := make([]byte, width*4)
	for y := 0; y < height; y++ {
		if err = readHDRScanline(r, scanline, width); err != nil {
			return nil, err
		}
		copy(pixels[y*width*4:], scanline)
	}

	return texture.NewTexture(
		texture.WithName(baseName(url)),
		texture.WithSize(width, height),
		texture.WithFormat(wgpu.TextureFormatRGBA8Unorm),
		texture.WithLevels([]texture.Level{{Data: pixels}}),
		texture.WithEncoding(texture.EncodingRGBE),
	), nil
}

// readHDRScanline decodes one scanline into dst as interleaved RGBE bytes.
// Handles both the adaptive-RLE encoding and flat scanlines.
func readHDRScanline(r *bufio.Reader, dst []byte, width int) error {
	header := make([]byte, 4)
	if _, err := io.ReadFull(r, header); err != nil {
		return errTruncatedHDRScanline
	}

	// Adaptive RLE scanlines start with 2, 2, width-hi, width-lo and only
	// apply for widths in [8, 32767].
	if width >= 8 && width <= 32767 &&
		header[0] == 2 && header[1] == 2 &&
		int(header[2])<<8|int(header[3]) == width {
		for ch := 0; ch < 4; ch++ {
			x := 0
			for x < width {
				count, err := r.ReadByte()
				if err != nil {
					return errTruncatedHDRScanline
				}
				if count > 128 {
					// Run: repeat the next byte count-128 times.
					run := int(count) - 128
					v, err := r.ReadByte()
					if err != nil || x+run > width {
						return errTruncatedHDRScanline
					}
					for i := 0; i < run; i++ {
						dst[(x+i)*4+ch] = v
					}
					x += run
				} else {
					// Literal span of count bytes.
					n := int(count)
					if n == 0 || x+n > width {
						return errTruncatedHDRScanline
					}
					for i := 0; i < n; i++ {
						v, err := r.ReadByte()
						if err != nil {
							return errTruncatedHDRScanline
						}
						dst[(x+i)*4+ch] = v
					}
					x += n
				}
			}
		}
		return nil
	}

	// Flat scanline: the four header bytes are the first pixel.
	copy(dst[0:4], header)
	if _, err := io.ReadFull(r, dst[4:width*4]); err != nil {
		return errTruncatedHDRScanline
	}
	return nil
}
