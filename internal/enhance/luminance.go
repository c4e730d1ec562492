package enhance

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// luminanceStep subsamples the region when measuring brightness; exact
// per-pixel statistics are unnecessary for a coarse light/dark verdict.
const luminanceStep = 4

// brightRegionThreshold is the mean CIE lightness above which a region is
// considered bright enough that a white overlay would blend into it.
const brightRegionThreshold = 0.72

// MeanLightness returns the mean CIE L* lightness (0 black to 1 white) of the
// given box, sampled on a sparse grid.
func MeanLightness(img image.Image, b Box) float64 {
	r := b.Rect().Intersect(img.Bounds())
	if r.Empty() {
		return 0
	}

	var sum float64
	var n int
	for y := r.Min.Y; y < r.Max.Y; y += luminanceStep {
		for x := r.Min.X; x < r.Max.X; x += luminanceStep {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			l, _, _ := c.Lab()
			sum += l
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// LikelyLightOnLight reports whether the overlay region is bright enough that
// light overlay text would blend into it. The extreme tier promotes the
// inverted variant first when this holds.
func LikelyLightOnLight(img image.Image, b Box) bool {
	return MeanLightness(img, b) >= brightRegionThreshold
}
