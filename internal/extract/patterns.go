package extract

import (
	"regexp"
	"strings"
)

// Coordinate-shaped patterns. Overlay text renders coordinates as a decimal
// number immediately followed by a hemisphere letter, e.g. "7.55492507S".
var (
	rePairSE = regexp.MustCompile(`(?i)(\d+\.\d+)S\s+(\d+\.\d+)E`)
	rePairNE = regexp.MustCompile(`(?i)(\d+\.\d+)N\s+(\d+\.\d+)E`)
	rePairSW = regexp.MustCompile(`(?i)(\d+\.\d+)S\s+(\d+\.\d+)W`)
	rePairNW = regexp.MustCompile(`(?i)(\d+\.\d+)N\s+(\d+\.\d+)W`)

	reCoordShape = regexp.MustCompile(`(?i)\d+\.\d+[NSEW]`)
	rePairShape  = regexp.MustCompile(`(?i)\d+\.\d+[NSEW]\s+\d+\.\d+[NSEW]`)
	reLatShape   = regexp.MustCompile(`(?i)\d{1,2}\.\d{6,8}[SN]`)
	reLonShape   = regexp.MustCompile(`(?i)\d{2,3}\.\d{6,8}[EW]`)

	reLatRun = regexp.MustCompile(`(?i)(\d{6,8})S`)
	reLonRun = regexp.MustCompile(`(?i)(\d{6,8})E`)

	reDecimal  = regexp.MustCompile(`\b(\d{1,3}\.\d{4,8})\b`)
	reLongRun  = regexp.MustCompile(`\b(\d{10,14})\b`)
	reBareRun  = regexp.MustCompile(`\b(\d{7,8})\b`)
	reShortLon = regexp.MustCompile(`(?i)\b(\d{1,3})E\b`)

	reAltitude = regexp.MustCompile(`(?i)Altitude:\s*(\d+(?:\.\d+)?)\s*m`)
	reSpeed    = regexp.MustCompile(`(?i)Speed:\s*(\d+(?:\.\d+)?)\s*km/h`)
	reBearing  = regexp.MustCompile(`(\d+)°\s*([NSEWnsew]+)`)
)

// HasCoordinateShape is the acceptance test evaluated at every tier boundary:
// does the text contain a decimal number immediately followed by a compass
// letter anywhere?
func HasCoordinateShape(text string) bool {
	return reCoordShape.MatchString(text)
}

// metadataKeywords mark overlay metadata lines (speed, altitude, Indonesian
// administrative terms) whose presence without a coordinate shape triggers the
// extreme tier.
var metadataKeywords = []string{
	"km/h", "msnm", "tengah", "kecamatan", "number:", "altitude", "speed",
}

// HasMetadataKeywords reports whether any GPS-overlay metadata marker appears
// in the text.
func HasMetadataKeywords(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range metadataKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// selectionKeywords is the narrower keyword set used when ranking attempts for
// best-text selection.
var selectionKeywords = []string{"altitude", "speed", "index"}

func hasSelectionKeywords(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range selectionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// matchesAnyCoordinatePattern implements the best-text priority test: a full
// coordinate pair, a standalone latitude or longitude fragment, or any decimal
// followed by a compass letter.
func matchesAnyCoordinatePattern(text string) bool {
	return rePairShape.MatchString(text) ||
		reLatShape.MatchString(text) ||
		reLonShape.MatchString(text) ||
		reCoordShape.MatchString(text)
}
