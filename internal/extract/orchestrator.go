package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/snapgeo/snapgeo-ocr/internal/enhance"
	"github.com/snapgeo/snapgeo-ocr/internal/ocr"
)

// Tier is an escalation stage of the recognition orchestrator. Each tier is
// more aggressive than the last; a tier only runs when the lower tiers failed
// its entry predicate.
type Tier int

const (
	TierBaseline Tier = iota
	TierRegion
	TierCropSweep
	TierProfileSweep
	TierUltra
	TierExtreme
)

func (t Tier) String() string {
	switch t {
	case TierBaseline:
		return "baseline"
	case TierRegion:
		return "region"
	case TierCropSweep:
		return "crop_sweep"
	case TierProfileSweep:
		return "profile_sweep"
	case TierUltra:
		return "ultra"
	case TierExtreme:
		return "extreme"
	default:
		return "unknown"
	}
}

// Consolidated-text thresholds that trigger the ultra and extreme tiers even
// when the acceptance test alone would not.
const (
	ultraTextThreshold   = 30
	extremeTextThreshold = 10
)

// orchestrator holds the per-request state of the tiered escalation. It is
// created and discarded within a single request; nothing is shared.
type orchestrator struct {
	engine ocr.Engine
	img    image.Image
	width  int
	height int
	log    *AttemptLog

	// Lazily built variants reused across tiers.
	standardVariant   image.Image
	aggressiveVariant image.Image
	corners           []enhance.Box
}

// RunTiers drives the recognition engine through the escalating tiers and
// returns the full attempt log. Engine failures are swallowed per attempt.
func RunTiers(engine ocr.Engine, img image.Image) *AttemptLog {
	b := img.Bounds()
	o := &orchestrator{
		engine:  engine,
		img:     img,
		width:   b.Dx(),
		height:  b.Dy(),
		log:     &AttemptLog{},
		corners: enhance.CornerCandidates(b.Dx(), b.Dy()),
	}

	type tierSpec struct {
		tier  Tier
		enter func() bool
		run   func()
	}

	tiers := []tierSpec{
		{TierBaseline, func() bool { return true }, o.runBaseline},
		{TierRegion, o.acceptanceFails, o.runRegion},
		{TierCropSweep, o.acceptanceFails, o.runCropSweep},
		{TierProfileSweep, o.acceptanceFails, o.runProfileSweep},
		{TierUltra, o.enterUltra, o.runUltra},
		{TierExtreme, o.enterExtreme, o.runExtreme},
	}

	for _, t := range tiers {
		if !t.enter() {
			continue
		}
		t.run()
	}
	return o.log
}

// acceptanceFails is the boundary test between tiers: escalate only while the
// consolidated text still lacks a coordinate-shaped pattern.
func (o *orchestrator) acceptanceFails() bool {
	return !HasCoordinateShape(o.log.Consolidated())
}

// The length triggers are evaluated on the selected best text, not the
// consolidated corpus: the corpus grows with every attempt, so repeating
// identical garbage across tiers would otherwise mask a short read.
func (o *orchestrator) enterUltra() bool {
	best := strings.TrimSpace(o.log.SelectBest().Text)
	return len(best) < ultraTextThreshold || o.acceptanceFails()
}

func (o *orchestrator) enterExtreme() bool {
	best := strings.TrimSpace(o.log.SelectBest().Text)
	if len(best) < extremeTextThreshold {
		return true
	}
	return HasMetadataKeywords(o.log.Consolidated()) && o.acceptanceFails()
}

// attempt runs one recognition call and logs it regardless of outcome.
// Returns false when the engine errored.
func (o *orchestrator) attempt(tier Tier, label string, p ocr.Profile, img image.Image) bool {
	text, err := o.engine.Recognize(img, p)
	o.log.Add(Attempt{
		Tier:    tier,
		Label:   label,
		Profile: p.Name,
		Text:    text,
		Failed:  err != nil,
	})
	return err == nil
}

// runBaseline recognizes the full original frame. If the engine errors, a
// PNG-re-encoded copy is tried once; re-encoding sidesteps corrupted JPEG
// streams that trip the engine's decoder.
func (o *orchestrator) runBaseline() {
	if o.attempt(TierBaseline, "full_image", ocr.DefaultProfile(), o.img) {
		return
	}
	if reencoded, err := reencodePNG(o.img); err == nil {
		o.attempt(TierBaseline, "full_image_reencoded", ocr.DefaultProfile(), reencoded)
	}
}

func (o *orchestrator) standard() image.Image {
	if o.standardVariant == nil {
		crop := enhance.Crop(o.img, enhance.StandardRegion(o.width, o.height))
		o.standardVariant = enhance.Standard().Apply(crop)
	}
	return o.standardVariant
}

func (o *orchestrator) aggressive() image.Image {
	if o.aggressiveVariant == nil {
		crop := enhance.Crop(o.img, enhance.AggressiveRegion(o.width, o.height))
		o.aggressiveVariant = enhance.Aggressive().Apply(crop)
	}
	return o.aggressiveVariant
}

func (o *orchestrator) runRegion() {
	o.attempt(TierRegion, "region_standard", ocr.DefaultProfile(), o.standard())
	o.attempt(TierRegion, "region_aggressive", ocr.DefaultProfile(), o.aggressive())
}

func (o *orchestrator) runCropSweep() {
	recipe := enhance.CropSweep()
	for i, box := range o.corners {
		crop := recipe.Apply(enhance.Crop(o.img, box))
		o.attempt(TierCropSweep, fmt.Sprintf("crop_%d", i+1), ocr.DefaultProfile(), crop)
	}
}

func (o *orchestrator) runProfileSweep() {
	catalog := ocr.SweepCatalog()
	for _, p := range catalog {
		o.attempt(TierProfileSweep, "region_"+p.Name, p, o.standard())
	}
	for _, p := range catalog {
		o.attempt(TierProfileSweep, "aggressive_"+p.Name, p, o.aggressive())
	}
}

func (o *orchestrator) runUltra() {
	recipe := enhance.Ultra()
	for i, box := range firstN(o.corners, 3) {
		crop := recipe.Apply(enhance.Crop(o.img, box))
		for _, p := range ocr.UltraCatalog() {
			o.attempt(TierUltra, fmt.Sprintf("ultra_crop%d_%s", i+1, p.Name), p, crop)
		}
	}
}

func (o *orchestrator) runExtreme() {
	// Extreme grayscale pass over the tightest crops.
	gray := enhance.ExtremeGrayscale().Apply(o.img)
	for i, box := range firstN(o.corners, 4) {
		crop := enhance.Crop(gray, box)
		for _, p := range ocr.ExtremeCatalog() {
			o.attempt(TierExtreme, fmt.Sprintf("extreme_crop%d_%s", i+1, p.Name), p, crop)
		}
	}

	// Five enhancement versions across up to six crops. A bright overlay
	// region means light-on-light text, so the inverted version goes first.
	versions := enhance.ExtremeVersions()
	if enhance.LikelyLightOnLight(o.img, enhance.StandardRegion(o.width, o.height)) {
		for i, v := range versions {
			if v.Name == "inverted" && i > 0 {
				versions[0], versions[i] = versions[i], versions[0]
				break
			}
		}
	}

	sharpen := enhance.CropSharpen()
	for _, version := range versions {
		vimg := version.Apply(o.img)
		for i, box := range firstN(o.corners, 6) {
			crop := sharpen.Apply(enhance.Crop(vimg, box))
			for _, p := range ocr.BlendedCatalog() {
				label := fmt.Sprintf("%s_crop%d_%s", version.Name, i+1, p.Name)
				o.attempt(TierExtreme, label, p, crop)
			}
		}
	}
}

func firstN(boxes []enhance.Box, n int) []enhance.Box {
	if len(boxes) < n {
		return boxes
	}
	return boxes[:n]
}

func reencodePNG(img image.Image) (image.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	out, err := imaging.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("failed to decode re-encoded image: %w", err)
	}
	return out, nil
}
