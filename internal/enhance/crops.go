package enhance

import (
	"image"

	"github.com/disintegration/imaging"
)

// Box is a crop rectangle in pixel coordinates.
type Box struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the box to a stdlib image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X1, b.Y1, b.X2, b.Y2)
}

// wideAspectRatio is the width/height ratio above which a landscape frame is
// treated as high-resolution wide landscape and gets the extended crop sweep.
const wideAspectRatio = 1.2

// IsPortrait reports whether a frame of the given dimensions is portrait.
func IsPortrait(width, height int) bool {
	return height > width
}

func relBox(width, height int, fx, fy float64) Box {
	return Box{
		X1: int(float64(width) * fx),
		Y1: int(float64(height) * fy),
		X2: width,
		Y2: height,
	}
}

// StandardRegion is the default bottom-right overlay crop.
//
// Portrait frames keep the bottom 40% height and right 50% width; landscape
// frames keep the full bottom-right quadrant.
func StandardRegion(width, height int) Box {
	if IsPortrait(width, height) {
		return relBox(width, height, 0.5, 0.6)
	}
	return Box{X1: width / 2, Y1: height / 2, X2: width, Y2: height}
}

// AggressiveRegion is a tighter crop used with the aggressive recipe. The
// overlay hugs the corner, so a smaller window trades context for less noise.
func AggressiveRegion(width, height int) Box {
	if IsPortrait(width, height) {
		return relBox(width, height, 0.6, 0.7)
	}
	return relBox(width, height, 0.5, 0.6)
}

// CornerCandidates returns the ordered sweep of bottom-right crop boxes, from
// tightest to loosest. Wide landscape frames (aspect ratio above 1.2, typical
// of 3264x2448 captures) get six boxes to compensate for the higher native
// resolution; other orientations get three.
func CornerCandidates(width, height int) []Box {
	if IsPortrait(width, height) {
		return []Box{
			relBox(width, height, 0.7, 0.8),
			relBox(width, height, 0.6, 0.75),
			relBox(width, height, 0.5, 0.7),
		}
	}

	aspect := float64(width) / float64(height)
	if aspect > wideAspectRatio {
		return []Box{
			relBox(width, height, 0.8, 0.75),
			relBox(width, height, 0.75, 0.7),
			relBox(width, height, 0.7, 0.65),
			relBox(width, height, 0.65, 0.6),
			relBox(width, height, 0.85, 0.8),
			relBox(width, height, 0.6, 0.5),
		}
	}

	return []Box{
		relBox(width, height, 0.75, 0.7),
		relBox(width, height, 0.65, 0.6),
		relBox(width, height, 0.5, 0.5),
	}
}

// Crop extracts the box from img. Boxes produced by this package are always
// inside the frame; imaging.Crop clamps anything else.
func Crop(img image.Image, b Box) image.Image {
	return imaging.Crop(img, b.Rect())
}
