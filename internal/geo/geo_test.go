package geo

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBounds_PlausibleLatitude(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		want bool
	}{
		{"southern in range", -7.55, true},
		{"northern magnitude in range", 7.55, true},
		{"too close to equator", -0.5, false},
		{"too far south", -15.0, false},
		{"too far north", 15.0, false},
		{"lower edge", -1.0, true},
		{"upper edge", -11.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultBounds.PlausibleLatitude(tt.lat); got != tt.want {
				t.Errorf("PlausibleLatitude(%v) = %v, want %v", tt.lat, got, tt.want)
			}
		})
	}
}

func TestBounds_PlausibleLongitude(t *testing.T) {
	tests := []struct {
		name string
		lon  float64
		want bool
	}{
		{"central java", 110.6, true},
		{"western edge", 95.0, true},
		{"eastern edge", 141.0, true},
		{"too far west", 90.0, false},
		{"too far east", 200.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultBounds.PlausibleLongitude(tt.lon); got != tt.want {
				t.Errorf("PlausibleLongitude(%v) = %v, want %v", tt.lon, got, tt.want)
			}
		})
	}
}

func TestBounds_InBounds(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want bool
	}{
		{"central java pair", -7.55, 110.64, true},
		{"latitude out", -15.0, 110.64, false},
		{"longitude out", -7.55, 90.0, false},
		{"both out", -15.0, 90.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DefaultBounds.InBounds(tt.lat, tt.lon); got != tt.want {
				t.Errorf("InBounds(%v, %v) = %v, want %v", tt.lat, tt.lon, got, tt.want)
			}
		})
	}
}

func TestGazetteer_Locate(t *testing.T) {
	g := Default()

	tests := []struct {
		name    string
		text    string
		wantLat float64
		wantLon float64
		wantOK  bool
	}{
		{"jakarta", "Kecamatan Menteng, Jakarta, Indonesia", -6.2, 106.8, true},
		{"alias jogja", "near JOGJA city center", -7.8, 110.4, true},
		{"boyolali alias group", "Teras, Boyolali, Jawa Tengah", -7.5, 110.6, true},
		{"no match", "somewhere else entirely", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := g.Locate(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("Locate ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if p.Latitude != tt.wantLat || p.Longitude != tt.wantLon {
				t.Errorf("Locate = (%v, %v), want (%v, %v)", p.Latitude, p.Longitude, tt.wantLat, tt.wantLon)
			}
		})
	}
}

func TestGazetteer_BaseLongitude(t *testing.T) {
	g := Default()

	base, ok := g.BaseLongitude("Kabupaten Brebes, Jawa Tengah")
	if !ok || base != 109 {
		t.Errorf("BaseLongitude = (%v, %v), want (109, true)", base, ok)
	}

	if _, ok := g.BaseLongitude("no keywords here"); ok {
		t.Error("BaseLongitude should not match arbitrary text")
	}
}

func TestGazetteer_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gazetteer.yaml")
	doc := `places:
  - names: [testville]
    latitude: -5.5
    longitude: 105.5
regions:
  - keywords: [testville]
    base_longitude: 105
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	p, ok := g.Locate("welcome to Testville")
	if !ok || p.Latitude != -5.5 || p.Longitude != 105.5 {
		t.Errorf("Locate = (%+v, %v), want testville centroid", p, ok)
	}
}

func TestGazetteer_LoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/gazetteer.yaml"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
