package capture

import "image"

// IsBlank reports whether the image is mostly white, which on the target
// site means the page has not finished rendering. An image that cannot
// be scored counts as not blank so a capture is never refreshed away on
// a scoring problem.
func IsBlank(img image.Image, threshold float64) bool {
	r, g, b, ok := ChannelMeans(img)
	if !ok {
		return false
	}
	return r > threshold && g > threshold && b > threshold
}

// ChannelMeans returns the mean brightness per RGB channel on a 0-255
// scale. ok is false when the image has no pixels.
func ChannelMeans(img image.Image) (r, g, b float64, ok bool) {
	if img == nil {
		return 0, 0, 0, false
	}
	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total <= 0 {
		return 0, 0, 0, false
	}

	var sumR, sumG, sumB uint64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pr, pg, pb, _ := img.At(x, y).RGBA()
			sumR += uint64(pr >> 8)
			sumG += uint64(pg >> 8)
			sumB += uint64(pb >> 8)
		}
	}

	n := float64(total)
	return float64(sumR) / n, float64(sumG) / n, float64(sumB) / n, true
}
