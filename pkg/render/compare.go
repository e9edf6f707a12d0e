package render

import "image"

// CompareResult summarizes a pixel comparison between two frames.
type CompareResult struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
}

// Compare checks two images pixel-by-pixel, allowing a per-channel
// tolerance for rasterization differences. Differing bounds never match.
func Compare(a, b image.Image, tolerance int) CompareResult {
	if a.Bounds() != b.Bounds() {
		return CompareResult{Match: false}
	}

	bounds := a.Bounds()
	result := CompareResult{
		TotalPixels: bounds.Dx() * bounds.Dy(),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !pixelsClose(a, b, x, y, tolerance) {
				result.DifferentPixels++
			}
		}
	}
	result.Match = result.DifferentPixels == 0
	return result
}

func pixelsClose(a, b image.Image, x, y, tolerance int) bool {
	ar, ag, ab, aa := a.At(x, y).RGBA()
	br, bg, bb, ba := b.At(x, y).RGBA()
	return channelClose(ar, br, tolerance) &&
		channelClose(ag, bg, tolerance) &&
		channelClose(ab, bb, tolerance) &&
		channelClose(aa, ba, tolerance)
}

func channelClose(a, b uint32, tolerance int) bool {
	// RGBA returns 16-bit channels; compare in 8-bit space.
	d := int(a>>8) - int(b>>8)
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
