package enhance

import (
	"image/color"
	"testing"
)

func TestRecipe_ApplyPreservesDimensions(t *testing.T) {
	recipes := []Recipe{
		Standard(),
		Aggressive(),
		CropSweep(),
		Ultra(),
		ExtremeGrayscale(),
		CropSharpen(),
	}
	recipes = append(recipes, ExtremeVersions()...)

	img := fillImage(64, 48, color.RGBA{120, 80, 200, 255})
	for _, r := range recipes {
		t.Run(r.Name, func(t *testing.T) {
			out := r.Apply(img)
			if out.Bounds().Dx() != 64 || out.Bounds().Dy() != 48 {
				t.Errorf("dimensions changed: got %dx%d", out.Bounds().Dx(), out.Bounds().Dy())
			}
		})
	}
}

func TestRecipe_GrayscaleNeutralizesColor(t *testing.T) {
	img := fillImage(16, 16, color.RGBA{200, 30, 30, 255})
	out := Recipe{Name: "gray", Ops: []Op{{Kind: OpGrayscale}}}.Apply(img)

	r, g, b, _ := out.At(8, 8).RGBA()
	if r != g || g != b {
		t.Errorf("grayscale pixel has unequal channels: r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestRecipe_InvertFlipsExtremes(t *testing.T) {
	img := fillImage(8, 8, color.RGBA{255, 255, 255, 255})
	out := Recipe{Name: "inv", Ops: []Op{{Kind: OpInvert}}}.Apply(img)

	r, g, b, _ := out.At(4, 4).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("inverted white should be black, got r=%d g=%d b=%d", r>>8, g>>8, b>>8)
	}
}

func TestRecipe_BrightnessRaisesDarkPixels(t *testing.T) {
	img := fillImage(8, 8, color.RGBA{40, 40, 40, 255})
	out := Recipe{Name: "bright", Ops: []Op{{Kind: OpBrightness, Factor: 2.0}}}.Apply(img)

	r0, _, _, _ := img.At(4, 4).RGBA()
	r1, _, _, _ := out.At(4, 4).RGBA()
	if r1 <= r0 {
		t.Errorf("brightness 2.0 should raise pixel value, got %d -> %d", r0>>8, r1>>8)
	}
}

func TestRecipe_OpsCompose(t *testing.T) {
	// A composed recipe must run without panicking on tiny images, which the
	// extreme tier routinely produces from tight crops.
	img := fillImage(3, 3, color.RGBA{10, 10, 10, 255})
	for _, r := range ExtremeVersions() {
		r.Apply(img)
	}
}

func TestExtremeVersions_CoverDocumentedVariants(t *testing.T) {
	want := map[string]bool{
		"ultra_contrast":   false,
		"ultra_brightness": false,
		"ultra_grayscale":  false,
		"inverted":         false,
		"edge_detected":    false,
	}
	for _, r := range ExtremeVersions() {
		if _, ok := want[r.Name]; !ok {
			t.Errorf("unexpected extreme version %q", r.Name)
			continue
		}
		want[r.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("missing extreme version %q", name)
		}
	}
}

func TestMeanLightness(t *testing.T) {
	white := fillImage(32, 32, color.RGBA{255, 255, 255, 255})
	black := fillImage(32, 32, color.RGBA{0, 0, 0, 255})
	box := Box{X1: 0, Y1: 0, X2: 32, Y2: 32}

	if l := MeanLightness(white, box); l < 0.9 {
		t.Errorf("white region lightness = %v, want near 1", l)
	}
	if l := MeanLightness(black, box); l > 0.1 {
		t.Errorf("black region lightness = %v, want near 0", l)
	}
}

func TestLikelyLightOnLight(t *testing.T) {
	box := Box{X1: 0, Y1: 0, X2: 32, Y2: 32}
	if !LikelyLightOnLight(fillImage(32, 32, color.RGBA{250, 250, 250, 255}), box) {
		t.Error("near-white region should read as light-on-light risk")
	}
	if LikelyLightOnLight(fillImage(32, 32, color.RGBA{30, 30, 30, 255}), box) {
		t.Error("dark region should not read as light-on-light risk")
	}
}
