package extract

import "testing"

func TestAttemptLogConsolidated(t *testing.T) {
	l := &AttemptLog{}
	l.Add(Attempt{Label: "full_image", Text: "  hello  "})
	l.Add(Attempt{Label: "region_standard", Text: ""})
	l.Add(Attempt{Label: "region_aggressive", Text: "world", Failed: false})
	l.Add(Attempt{Label: "crop_1", Text: "   "})

	if got, want := l.Consolidated(), "hello world"; got != want {
		t.Errorf("Consolidated() = %q, want %q", got, want)
	}
	if l.Len() != 4 {
		t.Errorf("Len() = %d, want 4", l.Len())
	}
}

func TestSelectBestPrefersCoordinateShape(t *testing.T) {
	l := &AttemptLog{}
	l.Add(Attempt{Label: "full_image", Text: "Altitude: 112.0m Speed: 0.0km/h plus lots of extra text"})
	l.Add(Attempt{Label: "region_standard", Text: "7.5549S 110.6442E"})
	l.Add(Attempt{Label: "region_aggressive", Text: "even longer text with altitude and speed keywords in it"})

	best := l.SelectBest()
	if best.Label != "region_standard" {
		t.Errorf("SelectBest() picked %q, want region_standard", best.Label)
	}
}

func TestSelectBestFallsBackToLongestKeywordText(t *testing.T) {
	l := &AttemptLog{}
	l.Add(Attempt{Label: "full_image", Text: "short"})
	l.Add(Attempt{Label: "region_standard", Text: "Altitude: 112.0m"})
	l.Add(Attempt{Label: "region_aggressive", Text: "Altitude: 112.0m Speed: 0.0km/h Boyolali"})

	best := l.SelectBest()
	if best.Label != "region_aggressive" {
		t.Errorf("SelectBest() picked %q, want region_aggressive", best.Label)
	}
}

func TestSelectBestDefaultsToFirstAttempt(t *testing.T) {
	l := &AttemptLog{}
	l.Add(Attempt{Label: "full_image", Text: "nothing useful"})
	l.Add(Attempt{Label: "region_standard", Text: "also nothing"})

	if best := l.SelectBest(); best.Label != "full_image" {
		t.Errorf("SelectBest() picked %q, want full_image", best.Label)
	}
}

func TestDebugMap(t *testing.T) {
	l := &AttemptLog{}
	l.Add(Attempt{Label: "full_image", Text: " raw "})
	l.Add(Attempt{Label: "crop_1", Text: "", Failed: true})

	m := l.DebugMap()
	if m["full_image"] != "raw" {
		t.Errorf("DebugMap()[full_image] = %q, want %q", m["full_image"], "raw")
	}
	if _, ok := m["crop_1"]; !ok {
		t.Error("DebugMap() missing failed attempt entry")
	}
}
