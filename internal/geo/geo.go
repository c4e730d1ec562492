// Package geo defines the geographic operating envelope for the extraction
// pipeline: plausibility bounds, the decimal-insertion prefix catalogs used for
// fragment reconstruction, and a small gazetteer of known places with centroid
// coordinates.
//
// The deployment this service was built for covers the Indonesian archipelago,
// which sits almost entirely in the Southern Hemisphere between 95°E and 141°E.
// Fallback rules therefore assume a southern latitude when no hemisphere letter
// survived recognition.
package geo

// Bounds is the latitude/longitude envelope used to validate or penalize
// candidate coordinates. Latitude is expressed as a magnitude: a candidate at
// -7.5 or +7.5 both fall inside a [1, 11] latitude band.
type Bounds struct {
	LatMin float64 `yaml:"lat_min"` // minimum latitude magnitude, degrees
	LatMax float64 `yaml:"lat_max"` // maximum latitude magnitude, degrees
	LonMin float64 `yaml:"lon_min"` // minimum longitude, degrees
	LonMax float64 `yaml:"lon_max"` // maximum longitude, degrees
}

// DefaultBounds is the operating envelope for the Indonesian deployment.
var DefaultBounds = Bounds{LatMin: 1, LatMax: 11, LonMin: 95, LonMax: 141}

// PlausibleLatitude reports whether the magnitude of lat falls inside the envelope.
func (b Bounds) PlausibleLatitude(lat float64) bool {
	if lat < 0 {
		lat = -lat
	}
	return lat >= b.LatMin && lat <= b.LatMax
}

// PlausibleLongitude reports whether lon falls inside the envelope.
func (b Bounds) PlausibleLongitude(lon float64) bool {
	return lon >= b.LonMin && lon <= b.LonMax
}

// InBounds reports whether both axes of a coordinate pair fall inside the
// envelope.
func (b Bounds) InBounds(lat, lon float64) bool {
	return b.PlausibleLatitude(lat) && b.PlausibleLongitude(lon)
}

// LongitudePrefixes is the catalog of whole-degree longitude prefixes observed
// in this deployment, in preference order. Fragment reconstruction tries these
// when inferring where the decimal point of a misread longitude belongs.
var LongitudePrefixes = []int{107, 110, 106, 108, 109, 112}

// LatitudePrefixes is the corresponding catalog for latitude magnitudes.
var LatitudePrefixes = []int{7, 6, 8, 5}
