package enhance

import (
	"image"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
)

// OpKind identifies a single enhancement operation.
type OpKind int

const (
	OpGrayscale OpKind = iota
	OpContrast
	OpBrightness
	OpSharpness
	OpGaussianBlur
	OpSharpen
	OpInvert
	OpEdgeDetect
)

// Op is one step of a recipe. Factor follows the multiplicative convention of
// photo-enhancement tooling: 1.0 is identity, 2.0 doubles the effect strength.
// For OpGaussianBlur the factor is the blur radius in pixels. OpGrayscale,
// OpSharpen, OpInvert and OpEdgeDetect ignore the factor.
type Op struct {
	Kind   OpKind
	Factor float64
}

// Recipe is an ordered, composable list of enhancement operations.
type Recipe struct {
	Name string
	Ops  []Op
}

// Apply runs the recipe over img and returns the enhanced copy. The source
// image is never modified.
func (r Recipe) Apply(img image.Image) image.Image {
	out := img
	for _, op := range r.Ops {
		out = applyOp(out, op)
	}
	return out
}

func applyOp(img image.Image, op Op) image.Image {
	switch op.Kind {
	case OpGrayscale:
		return effect.Grayscale(img)
	case OpContrast:
		return adjust.Contrast(img, op.Factor-1)
	case OpBrightness:
		return adjust.Brightness(img, op.Factor-1)
	case OpSharpness:
		// Unsharp masking approximates a factor-driven sharpness control;
		// the amount is the strength above identity.
		return effect.UnsharpMask(img, 1.0, op.Factor-1)
	case OpGaussianBlur:
		return blur.Gaussian(img, op.Factor)
	case OpSharpen:
		return effect.Sharpen(img)
	case OpInvert:
		return effect.Invert(img)
	case OpEdgeDetect:
		return effect.EdgeDetection(img, 1.0)
	default:
		return img
	}
}

// Standard is the gentle first-pass recipe: mild contrast, sharpness and
// brightness, then a light blur to smooth sensor noise followed by a sharpen.
func Standard() Recipe {
	return Recipe{Name: "standard", Ops: []Op{
		{Kind: OpContrast, Factor: 2.0},
		{Kind: OpSharpness, Factor: 2.0},
		{Kind: OpBrightness, Factor: 1.2},
		{Kind: OpGaussianBlur, Factor: 0.5},
		{Kind: OpSharpen},
	}}
}

// Aggressive drops color information and pushes contrast and sharpness to 3x
// for overlays the standard pass cannot separate from the background.
func Aggressive() Recipe {
	return Recipe{Name: "aggressive", Ops: []Op{
		{Kind: OpGrayscale},
		{Kind: OpContrast, Factor: 3.0},
		{Kind: OpBrightness, Factor: 1.5},
		{Kind: OpSharpness, Factor: 3.0},
	}}
}

// CropSweep is the fixed recipe applied to every corner candidate during the
// crop-sweep tier.
func CropSweep() Recipe {
	return Recipe{Name: "crop_sweep", Ops: []Op{
		{Kind: OpContrast, Factor: 3.0},
		{Kind: OpBrightness, Factor: 1.3},
		{Kind: OpSharpness, Factor: 3.0},
	}}
}

// Ultra is the ultra-tier recipe: 5x contrast and sharpness with doubled
// brightness.
func Ultra() Recipe {
	return Recipe{Name: "ultra", Ops: []Op{
		{Kind: OpContrast, Factor: 5.0},
		{Kind: OpBrightness, Factor: 2.0},
		{Kind: OpSharpness, Factor: 5.0},
	}}
}

// ExtremeGrayscale is the first extreme-tier recipe: grayscale conversion
// followed by 8x contrast and sharpness.
func ExtremeGrayscale() Recipe {
	return Recipe{Name: "extreme_grayscale", Ops: []Op{
		{Kind: OpGrayscale},
		{Kind: OpContrast, Factor: 8.0},
		{Kind: OpBrightness, Factor: 1.8},
		{Kind: OpSharpness, Factor: 8.0},
	}}
}

// ExtremeVersions returns the five extreme-tier enhancement variants. Each
// targets a distinct failure mode of burned-in overlay text:
//
//   - ultra_contrast: contrast-first for washed-out text
//   - ultra_brightness: brightness-first for underexposed corners
//   - ultra_grayscale: pure grayscale with near-binary contrast
//   - inverted: color inversion for light text on light backgrounds
//   - edge_detected: edge map for text blended into the scene
func ExtremeVersions() []Recipe {
	return []Recipe{
		{Name: "ultra_contrast", Ops: []Op{
			{Kind: OpContrast, Factor: 12.0},
			{Kind: OpBrightness, Factor: 1.5},
		}},
		{Name: "ultra_brightness", Ops: []Op{
			{Kind: OpBrightness, Factor: 2.5},
			{Kind: OpContrast, Factor: 8.0},
		}},
		{Name: "ultra_grayscale", Ops: []Op{
			{Kind: OpGrayscale},
			{Kind: OpContrast, Factor: 15.0},
		}},
		{Name: "inverted", Ops: []Op{
			{Kind: OpInvert},
			{Kind: OpContrast, Factor: 20.0},
			{Kind: OpBrightness, Factor: 0.8},
		}},
		{Name: "edge_detected", Ops: []Op{
			{Kind: OpGrayscale},
			{Kind: OpEdgeDetect},
			{Kind: OpContrast, Factor: 25.0},
		}},
	}
}

// CropSharpen is the 10x sharpness pass applied to each extreme-version crop
// after cropping.
func CropSharpen() Recipe {
	return Recipe{Name: "crop_sharpen", Ops: []Op{
		{Kind: OpSharpness, Factor: 10.0},
	}}
}
