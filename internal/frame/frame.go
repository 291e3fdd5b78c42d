// Package frame provides frame image decoding and pixel-level comparison.
package frame

import (
	"image"
	"image/png"
	"os"

	"github.com/five82/framesift/internal/errors"
)

// Decode reads a frame file and decodes it as PNG.
// Frames are always written as PNG by the extractor, so a file that does
// not decode as PNG is treated as corrupt rather than sniffed as another
// format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewIOError("cannot open frame "+path, err)
	}
	defer func() { _ = f.Close() }()

	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.NewImageDecodeError(path, err)
	}
	return img, nil
}

// DiffRatio returns the fraction of pixel coordinates whose color differs
// in any channel between the two images. Both images must have the same
// dimensions; comparison is exact equality per channel, not a distance.
func DiffRatio(a, b image.Image) float64 {
	ab := a.Bounds()
	bb := b.Bounds()

	width := ab.Dx()
	height := ab.Dy()
	total := width * height
	if total == 0 {
		return 0
	}

	differing := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			ar, ag, abl, aa := a.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			br, bg, bbl, ba := b.At(bb.Min.X+x, bb.Min.Y+y).RGBA()
			if ar != br || ag != bg || abl != bbl || aa != ba {
				differing++
			}
		}
	}

	return float64(differing) / float64(total)
}

// Similar reports whether two frames are near-duplicates under the given
// threshold. Frames of differing dimensions are never similar, regardless
// of threshold. The threshold comparison is inclusive, so a threshold of 0
// still matches byte-identical frames.
func Similar(a, b image.Image, threshold float64) bool {
	if !a.Bounds().Size().Eq(b.Bounds().Size()) {
		return false
	}
	return DiffRatio(a, b) <= threshold
}
