package extract

import (
	"math"
	"strconv"
	"strings"

	"github.com/snapgeo/snapgeo-ocr/internal/geo"
)

// Confidence is the quality assessment attached to every result that carries
// coordinates.
type Confidence struct {
	Score       float64 `json:"score"`
	Level       string  `json:"level"`
	Method      string  `json:"method"`
	Explanation string  `json:"explanation"`
}

// Base scores by provenance class.
const (
	scoreDirect    = 0.95
	scoreSignature = 0.90
	scoreFragment  = 0.85
	scorePattern   = 0.80
	scoreEnhanced  = 0.75
	scoreUltra     = 0.70
	scoreEstimated = 0.60
	scoreUnknown   = 0.50
)

// Penalties and the precision threshold beyond which a value looks synthetic
// rather than recognized.
const (
	outOfBoundsPenalty   = 0.5
	highPrecisionPenalty = 0.9
	maxPlausibleFraction = 8
	suffixOutOfBounds    = "_out_of_bounds"
	suffixHighPrecision  = "_high_precision"
)

var explanations = map[string]string{
	"direct_ocr":              "Coordinates found directly in OCR text without reconstruction",
	"signature_correction":    "Coordinates corrected using a configured misread signature",
	"fragment_reconstruction": "Coordinates reconstructed from detected fragments",
	"enhanced_ocr":            "Coordinates extracted using enhanced OCR processing",
	"pattern_matching":        "Coordinates found through pattern matching and reconstruction",
	"geographic_estimation":   "Coordinates estimated from detected location names",
	"ultra_processing":        "Coordinates extracted using ultra-enhanced OCR processing",
	"unknown":                 "Coordinates obtained through OCR processing",
}

// ScoreCandidate derives the confidence assessment for a candidate. bestTier
// is the tier of the attempt whose text won best-text selection; coordinates
// reconstructed purely from ultra or extreme tier output score lower than the
// same reconstruction from a baseline read.
func ScoreCandidate(c *Candidate, bestTier Tier, bounds geo.Bounds) *Confidence {
	method, score := classify(c, bestTier)

	if c.Complete() {
		if !bounds.InBounds(c.Lat, c.Lon) {
			score *= outOfBoundsPenalty
			method += suffixOutOfBounds
		}
		if fractionDigits(c.Lat) > maxPlausibleFraction || fractionDigits(c.Lon) > maxPlausibleFraction {
			score *= highPrecisionPenalty
			method += suffixHighPrecision
		}
	}

	score = math.Round(score*1000) / 1000
	return &Confidence{
		Score:       score,
		Level:       levelFor(score),
		Method:      method,
		Explanation: explanationFor(method),
	}
}

func classify(c *Candidate, bestTier Tier) (string, float64) {
	switch {
	case c.Estimated():
		return "geographic_estimation", scoreEstimated
	case c.LatProv == ProvSignature || c.LonProv == ProvSignature:
		return "signature_correction", scoreSignature
	case c.Found() && !axisReconstructed(c):
		return "direct_ocr", scoreDirect
	case c.LatProv == ProvFragment || c.LonProv == ProvFragment:
		return "fragment_reconstruction", scoreFragment
	case c.LatProv == ProvEnhanced || c.LonProv == ProvEnhanced:
		return "enhanced_ocr", scoreEnhanced
	case c.LatProv == ProvPattern || c.LonProv == ProvPattern:
		if bestTier >= TierUltra {
			return "ultra_processing", scoreUltra
		}
		return "pattern_matching", scorePattern
	default:
		return "unknown", scoreUnknown
	}
}

func axisReconstructed(c *Candidate) bool {
	return c.LatProv.Reconstructed() || c.LonProv.Reconstructed()
}

func levelFor(score float64) string {
	switch {
	case score >= 0.9:
		return "very_high"
	case score >= 0.8:
		return "high"
	case score >= 0.7:
		return "medium_high"
	case score >= 0.6:
		return "medium"
	case score >= 0.5:
		return "medium_low"
	default:
		return "low"
	}
}

func explanationFor(method string) string {
	base := method
	base = strings.TrimSuffix(base, suffixHighPrecision)
	base = strings.TrimSuffix(base, suffixOutOfBounds)

	text, ok := explanations[base]
	if !ok {
		text = explanations["unknown"]
	}
	if strings.Contains(method, suffixOutOfBounds) {
		text += " (coordinates outside expected deployment bounds)"
	}
	if strings.Contains(method, suffixHighPrecision) {
		text += " (very high precision may indicate estimation)"
	}
	return text
}

// fractionDigits counts the digits after the decimal point in the shortest
// decimal representation of v.
func fractionDigits(v float64) int {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}
