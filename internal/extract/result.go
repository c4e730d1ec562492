package extract

import (
	"fmt"
	"strconv"
	"strings"
)

// ExtractionResult is the flat record returned for every processed frame. All
// optional fields are omitted when empty so that callers can test presence
// rather than sentinel values.
type ExtractionResult struct {
	RawText   string `json:"raw_text"`
	OCRMethod string `json:"ocr_method"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	LatitudeReconstructed  bool `json:"latitude_reconstructed,omitempty"`
	LongitudeReconstructed bool `json:"longitude_reconstructed,omitempty"`

	CoordinatesEstimatedFromLocation bool `json:"coordinates_estimated_from_location,omitempty"`

	ProvenanceContext []string `json:"provenance_context,omitempty"`

	Altitude  *float64 `json:"altitude,omitempty"`
	Speed     *float64 `json:"speed,omitempty"`
	Direction string   `json:"direction,omitempty"`

	LocationInfo []string    `json:"location_info,omitempty"`
	Confidence   *Confidence `json:"confidence,omitempty"`

	Error string `json:"error,omitempty"`

	DebugOCRResults map[string]string `json:"debug_ocr_results,omitempty"`
}

// applyCandidate copies a cascade candidate onto the result.
func (r *ExtractionResult) applyCandidate(c *Candidate) {
	if c.HasLat {
		v := c.Lat
		r.Latitude = &v
		r.LatitudeReconstructed = c.LatProv.Reconstructed()
	}
	if c.HasLon {
		v := c.Lon
		r.Longitude = &v
		r.LongitudeReconstructed = c.LonProv.Reconstructed()
	}
	r.CoordinatesEstimatedFromLocation = c.Estimated()
	r.ProvenanceContext = c.Notes
}

// parseMetadata fills the altitude, speed and direction fields from the best
// recognized text.
func (r *ExtractionResult) parseMetadata(text string) {
	if m := reAltitude.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.Altitude = &v
		}
	}
	if m := reSpeed.FindStringSubmatch(text); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			r.Speed = &v
		}
	}
	if m := reBearing.FindStringSubmatch(text); m != nil {
		r.Direction = fmt.Sprintf("%s° %s", m[1], strings.ToUpper(m[2]))
	}
}

// locationLines returns the non-empty lines of the best text with the telemetry
// lines (altitude, speed, frame index) filtered out. These are the
// human-readable place and address lines of the overlay.
func locationLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || hasSelectionKeywords(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
