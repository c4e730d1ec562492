package extract

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/snapgeo/snapgeo-ocr/internal/ocr"
)

// scriptEngine is a canned recognition engine for orchestrator tests.
type scriptEngine struct {
	text string
	err  error
}

func (e *scriptEngine) Recognize(img image.Image, p ocr.Profile) (string, error) {
	return e.text, e.err
}

func testFrame(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.White)
		}
	}
	return img
}

const goodOverlayText = "7.55492507S 110.64424782E\nAltitude: 112.0m\nSpeed: 0.0km/h"

func TestRunTiersStopsAfterBaselineSuccess(t *testing.T) {
	log := RunTiers(&scriptEngine{text: goodOverlayText}, testFrame(64, 48))
	if log.Len() != 1 {
		t.Fatalf("got %d attempts, want 1", log.Len())
	}
	a := log.All()[0]
	if a.Tier != TierBaseline || a.Label != "full_image" {
		t.Errorf("attempt = %+v, want baseline full_image", a)
	}
}

func TestRunTiersEscalatesThroughAllTiers(t *testing.T) {
	log := RunTiers(&scriptEngine{text: ""}, testFrame(64, 48))

	seen := map[Tier]bool{}
	for _, a := range log.All() {
		seen[a.Tier] = true
	}
	for tier := TierBaseline; tier <= TierExtreme; tier++ {
		if !seen[tier] {
			t.Errorf("tier %s never ran", tier)
		}
	}
	if log.Len() < 50 {
		t.Errorf("got %d attempts, expected a full escalation", log.Len())
	}
}

func TestRunTiersShortGarbageTriggersAllTiers(t *testing.T) {
	log := RunTiers(&scriptEngine{text: "nonsense"}, testFrame(64, 48))

	seen := map[Tier]bool{}
	for _, a := range log.All() {
		seen[a.Tier] = true
	}
	for tier := TierBaseline; tier <= TierExtreme; tier++ {
		if !seen[tier] {
			t.Errorf("tier %s never ran for short garbage text", tier)
		}
	}
}

func TestRunTiersUltraTriggeredByShortText(t *testing.T) {
	// Coordinate-shaped but under the ultra length threshold: tiers 1-3 are
	// skipped, yet ultra still fires on the short consolidated text.
	log := RunTiers(&scriptEngine{text: "7.5S 110.6E"}, testFrame(64, 48))

	seen := map[Tier]bool{}
	for _, a := range log.All() {
		seen[a.Tier] = true
	}
	if seen[TierRegion] || seen[TierCropSweep] || seen[TierProfileSweep] {
		t.Error("intermediate tiers ran despite coordinate-shaped text")
	}
	if !seen[TierUltra] {
		t.Error("ultra tier did not run for short text")
	}
	if seen[TierExtreme] {
		t.Error("extreme tier ran despite coordinate-shaped text")
	}
}

func TestRunTiersEngineFailuresAreLoggedNotFatal(t *testing.T) {
	log := RunTiers(&scriptEngine{err: errors.New("tesseract unavailable")}, testFrame(64, 48))
	if log.Len() == 0 {
		t.Fatal("no attempts logged")
	}
	for _, a := range log.All() {
		if !a.Failed {
			t.Errorf("attempt %q not marked failed", a.Label)
		}
	}
	// The baseline tier retries once with a re-encoded frame.
	var baseline []Attempt
	for _, a := range log.All() {
		if a.Tier == TierBaseline {
			baseline = append(baseline, a)
		}
	}
	if len(baseline) != 2 {
		t.Errorf("got %d baseline attempts, want original plus re-encoded", len(baseline))
	}
	if baseline[1].Label != "full_image_reencoded" {
		t.Errorf("second baseline attempt = %q", baseline[1].Label)
	}
}

func TestRunTiersAttemptLabels(t *testing.T) {
	log := RunTiers(&scriptEngine{text: "x"}, testFrame(64, 48))

	labels := map[string]bool{}
	for _, a := range log.All() {
		labels[a.Label] = true
	}
	for _, want := range []string{"full_image", "region_standard", "region_aggressive", "crop_1"} {
		if !labels[want] {
			t.Errorf("label %q missing from attempt log", want)
		}
	}
}
