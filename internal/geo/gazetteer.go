package geo

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Place is a named location with a centroid coordinate pair. A place may carry
// several names (aliases, local spellings) that all resolve to the same centroid.
type Place struct {
	Names     []string `yaml:"names"`
	Latitude  float64  `yaml:"latitude"`
	Longitude float64  `yaml:"longitude"`
}

// Region maps context keywords to a whole-degree base longitude, used to
// resolve very short longitude fragments like "54E" when the surrounding text
// names a known area.
type Region struct {
	Keywords []string `yaml:"keywords"`
	BaseLon  float64  `yaml:"base_longitude"`
}

// Gazetteer is the catalog of known places and regions. The zero value is not
// usable; construct one with Default or Load.
type Gazetteer struct {
	Places  []Place  `yaml:"places"`
	Regions []Region `yaml:"regions"`
}

// Default returns the built-in gazetteer for the Indonesian deployment.
// Centroids are deliberately coarse (one decimal) since they back estimation,
// not measurement.
func Default() *Gazetteer {
	return &Gazetteer{
		Places: []Place{
			{Names: []string{"boyolali", "solo", "surakarta"}, Latitude: -7.5, Longitude: 110.6},
			{Names: []string{"brebes", "tegal"}, Latitude: -6.9, Longitude: 109.0},
			{Names: []string{"semarang"}, Latitude: -7.0, Longitude: 110.4},
			{Names: []string{"yogyakarta", "jogja"}, Latitude: -7.8, Longitude: 110.4},
			{Names: []string{"jakarta"}, Latitude: -6.2, Longitude: 106.8},
			{Names: []string{"bandung"}, Latitude: -6.9, Longitude: 107.6},
			{Names: []string{"surabaya"}, Latitude: -7.3, Longitude: 112.7},
		},
		Regions: []Region{
			{Keywords: []string{"brebes", "tegal", "central java", "jawa tengah"}, BaseLon: 109},
			{Keywords: []string{"jakarta", "bogor", "west java", "jawa barat"}, BaseLon: 106},
			{Keywords: []string{"surabaya", "malang", "east java", "jawa timur"}, BaseLon: 112},
		},
	}
}

// Load reads a gazetteer from a YAML file. Entries replace the defaults
// entirely; callers wanting to extend the built-in catalog should start from
// Default and append.
func Load(path string) (*Gazetteer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer: %w", err)
	}
	var g Gazetteer
	if err := yaml.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse gazetteer: %w", err)
	}
	return &g, nil
}

// Locate scans text for any known place name and returns the first matching
// place. Matching is case-insensitive substring search, mirroring how overlay
// text names districts and regencies inline.
func (g *Gazetteer) Locate(text string) (Place, bool) {
	lower := strings.ToLower(text)
	for _, p := range g.Places {
		for _, name := range p.Names {
			if strings.Contains(lower, name) {
				return p, true
			}
		}
	}
	return Place{}, false
}

// BaseLongitude returns the whole-degree base longitude for the first region
// whose keyword appears in text. ok is false when no region matches.
func (g *Gazetteer) BaseLongitude(text string) (float64, bool) {
	lower := strings.ToLower(text)
	for _, r := range g.Regions {
		for _, kw := range r.Keywords {
			if strings.Contains(lower, kw) {
				return r.BaseLon, true
			}
		}
	}
	return 0, false
}
