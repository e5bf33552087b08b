package texture

import (
	"github.com/Carmen-Shannon/lumen-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// CompleteMipChain synthesizes the missing tail of a partial mip chain in
// software and marks each new level dirty for upload. Some GPU/driver paths
// refuse to auto-generate remaining levels once a partial chain has been
// uploaded manually, so the tail must exist before the first upload.
//
// The pass only runs when all of the following hold: the pixel format is
// RGBA8 or RGBA32F, the texture is neither a volume nor block-compressed,
// the level array holds more than one level but fewer than the full chain,
// and level 0 is raw pixel data rather than a media-backed handle. Any other
// input is left untouched.
//
// Parameters:
//   - t: the texture whose mip chain should be completed
//
// Returns:
//   - bool: true if any levels were synthesized
func CompleteMipChain(t Texture) bool {
	if !mipChainEligible(t) {
		return false
	}

	full := t.RequiredMipLevels()
	floatPixels := t.Format() == wgpu.TextureFormatRGBA32Float

	for level := len(t.Levels()); level < full; level++ {
		prev := t.Levels()[level-1]
		prevW, prevH := t.LevelDimensions(level - 1)
		w, h := t.LevelDimensions(level)

		var next Level
		if t.Cubemap() {
			next.Faces = make([][]byte, 6)
			for face := range prev.Faces {
				next.Faces[face] = downsampleLevel(prev.Faces[face], prevW, prevH, w, h, floatPixels)
			}
		} else {
			next.Data = downsampleLevel(prev.Data, prevW, prevH, w, h, floatPixels)
		}
		t.AppendLevel(next)
	}
	return true
}

// mipChainEligible applies the completion pass preconditions.
func mipChainEligible(t Texture) bool {
	switch t.Format() {
	case wgpu.TextureFormatRGBA8Unorm, wgpu.TextureFormatRGBA32Float:
	default:
		return false
	}
	if t.Volume() || t.Compressed() {
		return false
	}

	levels := t.Levels()
	if len(levels) <= 1 || len(levels) >= t.RequiredMipLevels() {
		return false
	}

	// Level 0 must already be raw pixel data, not a decode-on-upload handle.
	base := levels[0]
	if base.Source != nil {
		return false
	}
	if t.Cubemap() {
		if len(base.Faces) != 6 {
			return false
		}
		for _, face := range base.Faces {
			if face == nil {
				return false
			}
		}
		return true
	}
	return base.Data != nil
}

// downsampleLevel box-filters one RGBA buffer down to the next mip dimensions.
func downsampleLevel(src []byte, srcW, srcH, dstW, dstH int, floatPixels bool) []byte {
	if src == nil {
		return nil
	}
	if floatPixels {
		out := downsamplePixels(common.BytesToSlice[float32](src), srcW, srcH, dstW, dstH)
		// Copy out of the unsafe view before the source goes out of scope.
		data := make([]byte, len(out)*4)
		copy(data, common.SliceToBytes(out))
		return data
	}
	return downsamplePixels(src, srcW, srcH, dstW, dstH)
}

// downsamplePixels averages each destination pixel over the integer-ratio
// footprint it covers in the source. The per-axis ratio is floor(src/dst);
// this is a strict box filter, not a general resampler.
func downsamplePixels[T interface{ ~uint8 | ~float32 }](src []T, srcW, srcH, dstW, dstH int) []T {
	ratioX := max(1, srcW/dstW)
	ratioY := max(1, srcH/dstH)
	samples := float32(ratioX * ratioY)

	dst := make([]T, dstW*dstH*4)
	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			for ch := 0; ch < 4; ch++ {
				var sum float32
				for sy := 0; sy < ratioY; sy++ {
					srcRow := (y*ratioY + sy) * srcW
					for sx := 0; sx < ratioX; sx++ {
						sum += float32(src[(srcRow+x*ratioX+sx)*4+ch])
					}
				}
				dst[(y*dstW+x)*4+ch] = T(sum / samples)
			}
		}
	}
	return dst
}
