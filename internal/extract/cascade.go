package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/snapgeo/snapgeo-ocr/internal/geo"
)

// Provenance identifies which reconstruction rule produced a coordinate axis.
// It drives confidence scoring and the reconstructed flags on the result.
type Provenance int

const (
	ProvNone      Provenance = iota
	ProvDirect               // full hemisphere pattern in the best text
	ProvFragment             // digit-run fragment with inferred decimal point
	ProvSignature            // calibration-table signature match
	ProvPattern              // generic decimal-range scan
	ProvEnhanced             // short fragment resolved with regional context
	ProvEstimated            // gazetteer place-name centroid
)

// Candidate is a partially or fully reconstructed coordinate pair. Axes are
// write-once: a filled axis is never replaced by a later (lower-priority)
// rule. Only calibration entries marked as overrides, applied after the
// cascade, may correct a filled axis.
type Candidate struct {
	Lat     float64
	Lon     float64
	HasLat  bool
	HasLon  bool
	LatProv Provenance
	LonProv Provenance
	Notes   []string
}

func (c *Candidate) setLat(v float64, p Provenance, note string) bool {
	if c.HasLat {
		return false
	}
	c.Lat, c.HasLat, c.LatProv = v, true, p
	if note != "" {
		c.Notes = append(c.Notes, note)
	}
	return true
}

func (c *Candidate) setLon(v float64, p Provenance, note string) bool {
	if c.HasLon {
		return false
	}
	c.Lon, c.HasLon, c.LonProv = v, true, p
	if note != "" {
		c.Notes = append(c.Notes, note)
	}
	return true
}

// Complete reports whether both axes are filled.
func (c *Candidate) Complete() bool { return c.HasLat && c.HasLon }

// Found reports whether at least one axis is filled.
func (c *Candidate) Found() bool { return c.HasLat || c.HasLon }

// Estimated reports whether the coordinates came from place-name estimation
// rather than recognized text.
func (c *Candidate) Estimated() bool {
	return c.LatProv == ProvEstimated || c.LonProv == ProvEstimated
}

// Reconstructed reports whether the given axis provenance means the value was
// rebuilt rather than read directly.
func (p Provenance) Reconstructed() bool {
	switch p {
	case ProvFragment, ProvSignature, ProvPattern, ProvEnhanced:
		return true
	}
	return false
}

// ruleContext carries the inputs shared by every cascade rule.
type ruleContext struct {
	best        string
	corpus      string
	bounds      geo.Bounds
	gazetteer   *geo.Gazetteer
	calibration *CalibrationTable
}

// rule is one step of the reconstruction cascade: a pure function that may
// fill axes still unset on the candidate.
type rule struct {
	name  string
	apply func(rc *ruleContext, c *Candidate)
}

// cascadeRules returns the ordered rule list. Order is priority: the first
// rule that satisfies an axis wins it.
func cascadeRules() []rule {
	return []rule{
		{"direct", directRule},
		{"lettered_fragments", letteredFragmentsRule},
		{"long_runs", longRunsRule},
		{"calibration", calibrationRule},
		{"decimal_scan", decimalScanRule},
		{"bare_runs", bareRunsRule},
		{"short_fragments", shortFragmentsRule},
		{"estimation", estimationRule},
	}
}

// RunCascade evaluates the reconstruction rules in priority order. A direct
// full-pattern match short-circuits everything else. After the first pass, if
// exactly one axis is set, the fill rules re-run restricted to the missing
// axis (cross-axis completion). Calibration overrides are applied last.
func RunCascade(rc *ruleContext) Candidate {
	var c Candidate

	rules := cascadeRules()
	for _, r := range rules {
		r.apply(rc, &c)
		if c.Complete() {
			break
		}
	}

	// Cross-axis completion: one axis anchored, re-run the fill rules for
	// the other. Direct and estimation are excluded; the former already had
	// its chance, the latter only applies to empty candidates.
	if c.Found() && !c.Complete() {
		for _, r := range rules[1 : len(rules)-1] {
			r.apply(rc, &c)
			if c.Complete() {
				break
			}
		}
	}

	if rc.calibration != nil {
		rc.calibration.applyOverrides(rc.corpus, &c)
	}
	return c
}

// directRule matches the four hemisphere pattern classes against the selected
// best text, in class order: S E, N E, S W, N W. South and west are negative.
func directRule(rc *ruleContext, c *Candidate) {
	patterns := []struct {
		re               *regexp.Regexp
		latSign, lonSign float64
	}{
		{rePairSE, -1, 1},
		{rePairNE, 1, 1},
		{rePairSW, -1, -1},
		{rePairNW, 1, -1},
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(rc.best)
		if m == nil {
			continue
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		c.setLat(p.latSign*lat, ProvDirect, "")
		c.setLon(p.lonSign*lon, ProvDirect, "")
		return
	}
}

// letteredFragmentsRule isolates 6-8 digit runs immediately preceding a
// compass letter and infers the decimal insertion point from the prefix
// catalogs, validating against the plausibility bounds.
func letteredFragmentsRule(rc *ruleContext, c *Candidate) {
	if !c.HasLon {
		if m := reLonRun.FindStringSubmatch(rc.corpus); m != nil {
			if v, ok := inferLongitude(m[1], rc.bounds); ok {
				c.setLon(v, ProvFragment,
					fmt.Sprintf("longitude fragment %sE reconstructed as %v", m[1], v))
			}
		}
	}
	if !c.HasLat {
		if m := reLatRun.FindStringSubmatch(rc.corpus); m != nil {
			if v, ok := inferLatitude(m[1], rc.bounds); ok {
				c.setLat(-v, ProvFragment,
					fmt.Sprintf("latitude fragment %sS reconstructed as %v", m[1], -v))
			}
		}
	}
}

// longRunsRule tests 10-14 digit runs against the longitude prefix catalog:
// a run starting with a known whole-degree prefix is split three digits in.
func longRunsRule(rc *ruleContext, c *Candidate) {
	if c.HasLon {
		return
	}
	for _, m := range reLongRun.FindAllStringSubmatch(rc.corpus, -1) {
		run := m[1]
		if len(run) < 11 {
			continue
		}
		for _, prefix := range geo.LongitudePrefixes {
			ps := strconv.Itoa(prefix)
			if !strings.HasPrefix(run, ps) {
				continue
			}
			v, err := strconv.ParseFloat(run[:3]+"."+run[3:], 64)
			if err != nil || !rc.bounds.PlausibleLongitude(v) {
				continue
			}
			c.setLon(v, ProvFragment,
				fmt.Sprintf("digit run %s parsed as longitude %v", run, v))
			return
		}
	}
}

// calibrationRule fills unset axes from the configured misread-signature
// table.
func calibrationRule(rc *ruleContext, c *Candidate) {
	if rc.calibration != nil {
		rc.calibration.apply(rc.corpus, c)
	}
}

// decimalScanRule treats any bare decimal in the latitude band as a southern
// latitude and any in the longitude band as a longitude.
func decimalScanRule(rc *ruleContext, c *Candidate) {
	for _, m := range reDecimal.FindAllStringSubmatch(rc.corpus, -1) {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		switch {
		case rc.bounds.PlausibleLatitude(v):
			c.setLat(-v, ProvPattern,
				fmt.Sprintf("decimal %v taken as southern latitude", v))
		case rc.bounds.PlausibleLongitude(v):
			c.setLon(v, ProvPattern,
				fmt.Sprintf("decimal %v taken as longitude", v))
		}
		if c.Complete() {
			return
		}
	}
}

// bareRunsRule infers a coordinate from a 7-8 digit run with no compass
// letter. Latitude is preferred; a run only becomes a longitude when the
// latitude is already anchored and the run is long enough to carry a
// three-digit prefix's fraction.
func bareRunsRule(rc *ruleContext, c *Candidate) {
	for _, m := range reBareRun.FindAllStringSubmatch(rc.corpus, -1) {
		run := m[1]
		if !c.HasLat {
			if v, ok := inferLatitude(run, rc.bounds); ok {
				c.setLat(-v, ProvFragment,
					fmt.Sprintf("bare run %s reconstructed as latitude %v", run, -v))
				return
			}
		}
		if c.HasLat && !c.HasLon && len(run) == 8 {
			if v, ok := inferLongitude(run, rc.bounds); ok {
				c.setLon(v, ProvFragment,
					fmt.Sprintf("bare run %s reconstructed as longitude %v", run, v))
				return
			}
		}
	}
}

// shortFragmentsRule resolves 1-3 digit longitude fragments like "54E" using
// the gazetteer's regional context: the fragment becomes the first two
// decimal digits of the region's base longitude.
func shortFragmentsRule(rc *ruleContext, c *Candidate) {
	if c.HasLon || rc.gazetteer == nil {
		return
	}
	m := reShortLon.FindStringSubmatch(rc.corpus)
	if m == nil {
		return
	}
	frag, err := strconv.Atoi(m[1])
	if err != nil || frag > 99 {
		return
	}

	bases := []float64{109, 107, 110, 108, 106}
	note := "estimated region"
	if base, ok := rc.gazetteer.BaseLongitude(rc.corpus); ok {
		bases = []float64{base}
		note = "regional context"
	}
	for _, base := range bases {
		v := base + float64(frag)/100
		if rc.bounds.PlausibleLongitude(v) {
			c.setLon(v, ProvEnhanced,
				fmt.Sprintf("fragment %sE resolved to %v (%s)", m[1], v, note))
			return
		}
	}
}

// estimationRule is the last resort: no coordinate of any kind was found, but
// the corpus names a known place, so its centroid is returned as an estimate.
func estimationRule(rc *ruleContext, c *Candidate) {
	if c.Found() || rc.gazetteer == nil {
		return
	}
	place, ok := rc.gazetteer.Locate(rc.corpus)
	if !ok {
		return
	}
	c.setLat(place.Latitude, ProvEstimated, "")
	c.setLon(place.Longitude, ProvEstimated,
		"coordinates estimated from detected location names")
}

// inferLatitude tries the latitude prefix catalog against a digit run,
// returning the first plausible magnitude.
func inferLatitude(run string, b geo.Bounds) (float64, bool) {
	for _, prefix := range geo.LatitudePrefixes {
		v, err := strconv.ParseFloat(strconv.Itoa(prefix)+"."+run, 64)
		if err != nil {
			continue
		}
		if b.PlausibleLatitude(v) {
			return v, true
		}
	}
	return 0, false
}

// inferLongitude tries the longitude prefix catalog against a digit run.
func inferLongitude(run string, b geo.Bounds) (float64, bool) {
	for _, prefix := range geo.LongitudePrefixes {
		v, err := strconv.ParseFloat(strconv.Itoa(prefix)+"."+run, 64)
		if err != nil {
			continue
		}
		if b.PlausibleLongitude(v) {
			return v, true
		}
	}
	return 0, false
}
