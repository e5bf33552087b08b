package parser

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/Carmen-Shannon/lumen-go/engine/texture"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/h2non/filetype"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// imgParser is the generic fallback for every extension without a dedicated
// container parser. It decodes through the registered image codecs and keeps
// the decoded image as a media-backed level; pixels are rasterized by the
// upload path rather than copied here.
type imgParser struct{}

var _ Parser = &imgParser{}

func (p *imgParser) Load(url string, fetch FetchFunc, done LoadCallback) {
	fetchBytes(url, fetch, done)
}

func (p *imgParser) Open(url string, data []byte) (texture.Texture, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// Name the sniffed type in the error so a mismatched extension is
		// obvious from the failure alone.
		if kind, matchErr := filetype.Match(data); matchErr == nil && kind != filetype.Unknown {
			return nil, fmt.Errorf("failed to decode %s (detected %s): %w", url, kind.Extension, err)
		}
		return nil, fmt.Errorf("failed to decode %s: %w", url, err)
	}

	bounds := img.Bounds()
	return texture.NewTexture(
		texture.WithName(baseName(url)),
		texture.WithSize(bounds.Dx(), bounds.Dy()),
		texture.WithFormat(wgpu.TextureFormatRGBA8Unorm),
		texture.WithLevels([]texture.Level{{Source: img}}),
	), nil
}
