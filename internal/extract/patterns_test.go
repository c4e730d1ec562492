package extract

import "testing"

func TestHasCoordinateShape(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"full pair", "7.55492507S 110.64424782E", true},
		{"single latitude", "GPS 7.5549S somewhere", true},
		{"lowercase letter", "7.5549s", true},
		{"no letter", "7.5549 110.6442", false},
		{"no decimal", "755S", false},
		{"empty", "", false},
		{"plain text", "Kecamatan Ngemplak", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasCoordinateShape(tt.text); got != tt.want {
				t.Errorf("HasCoordinateShape(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestHasMetadataKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"speed unit", "Speed: 0.0km/h", true},
		{"indonesian admin term", "Jawa Tengah", true},
		{"district term", "Kecamatan Ngemplak", true},
		{"altitude word", "Altitude: 112.0m", true},
		{"case insensitive", "SPEED: 4 KM/H", true},
		{"plain text", "some unrelated text", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasMetadataKeywords(tt.text); got != tt.want {
				t.Errorf("HasMetadataKeywords(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestMatchesAnyCoordinatePattern(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"pair", "7.55492507S 110.64424782E", true},
		{"latitude fragment", "7.5549250S", true},
		{"longitude fragment", "110.6442478E", true},
		{"short decimal with letter", "7.5S", true},
		{"bare digits", "5534986", false},
		{"metadata only", "Altitude: 112.0m", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesAnyCoordinatePattern(tt.text); got != tt.want {
				t.Errorf("matchesAnyCoordinatePattern(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
