package ocr

import "image"

// Engine mode values, matching Tesseract's OEM numbering.
const (
	EngineLegacy   = 0 // original Tesseract engine
	EngineLSTM     = 1 // neural LSTM engine
	EngineCombined = 2 // legacy + LSTM
	EngineDefault  = 3 // whatever is available
)

// Character whitelists tuned for GPS overlay text.
const (
	WhitelistDigits       = "0123456789."
	WhitelistDigitsSE     = "0123456789.SE"
	WhitelistCoords       = "0123456789.NSEW "
	WhitelistCoordsTight  = "0123456789.NSEW"
	WhitelistCoordsDegree = "0123456789.NSEW°"
)

// Profile selects how a single recognition attempt is configured: the engine
// mode, the page-segmentation mode, and an optional character whitelist that
// restricts output to coordinate-shaped glyphs.
type Profile struct {
	Name        string `json:"name"`
	EngineMode  int    `json:"engine_mode"`
	PageSegMode int    `json:"page_seg_mode"`
	Whitelist   string `json:"whitelist,omitempty"`
}

// Engine is the text-recognition collaborator. Implementations recognize the
// given pixels under the profile and return the raw text, or an error the
// caller is expected to swallow per attempt.
//
// Implementations must be stateless per call so concurrent requests can share
// one Engine without coordination.
type Engine interface {
	Recognize(img image.Image, p Profile) (string, error)
}

// DefaultProfile is the baseline configuration used by the lower tiers:
// default engine, uniform-block segmentation, no whitelist.
func DefaultProfile() Profile {
	return Profile{Name: "default", EngineMode: EngineDefault, PageSegMode: 6}
}

// SweepCatalog is the full profile catalog tried against the standard and
// aggressive variants during the profile-sweep tier. It spans page-segmentation
// modes, both engine generations, and digit/compass whitelists.
func SweepCatalog() []Profile {
	return []Profile{
		{Name: "psm6", EngineMode: EngineDefault, PageSegMode: 6},
		{Name: "psm8", EngineMode: EngineDefault, PageSegMode: 8},
		{Name: "psm7", EngineMode: EngineDefault, PageSegMode: 7},
		{Name: "psm13", EngineMode: EngineDefault, PageSegMode: 13},
		{Name: "digits", EngineMode: EngineDefault, PageSegMode: 8, Whitelist: WhitelistDigitsSE},
		{Name: "coords", EngineMode: EngineDefault, PageSegMode: 6, Whitelist: WhitelistCoords},
		{Name: "numbers", EngineMode: EngineDefault, PageSegMode: 8, Whitelist: WhitelistDigits},
		{Name: "sparse", EngineMode: EngineDefault, PageSegMode: 12},
		{Name: "lstm_psm6", EngineMode: EngineLSTM, PageSegMode: 6},
		{Name: "lstm_psm8", EngineMode: EngineLSTM, PageSegMode: 8},
		{Name: "lstm_digits", EngineMode: EngineLSTM, PageSegMode: 8, Whitelist: WhitelistCoordsTight},
		{Name: "combined_psm6", EngineMode: EngineCombined, PageSegMode: 6},
		{Name: "combined_digits", EngineMode: EngineCombined, PageSegMode: 8, Whitelist: WhitelistDigits},
		{Name: "single_block", EngineMode: EngineDefault, PageSegMode: 7},
		{Name: "single_line", EngineMode: EngineDefault, PageSegMode: 13},
		{Name: "word", EngineMode: EngineDefault, PageSegMode: 10},
		{Name: "char", EngineMode: EngineDefault, PageSegMode: 10, Whitelist: WhitelistCoordsTight},
	}
}

// UltraCatalog is the narrow digit/compass subset used by the ultra tier.
func UltraCatalog() []Profile {
	return []Profile{
		{Name: "ultra_digits", EngineMode: EngineDefault, PageSegMode: 8, Whitelist: WhitelistDigits},
		{Name: "ultra_coords", EngineMode: EngineDefault, PageSegMode: 6, Whitelist: WhitelistCoordsTight},
		{Name: "ultra_sparse", EngineMode: EngineDefault, PageSegMode: 12},
	}
}

// ExtremeCatalog is the LSTM-only subset run over the extreme grayscale
// variant, where the legacy engine tends to hallucinate on near-binary input.
func ExtremeCatalog() []Profile {
	return []Profile{
		{Name: "extreme_digits", EngineMode: EngineLSTM, PageSegMode: 8, Whitelist: WhitelistDigits},
		{Name: "extreme_coords", EngineMode: EngineLSTM, PageSegMode: 6, Whitelist: WhitelistCoordsTight},
		{Name: "extreme_single", EngineMode: EngineLSTM, PageSegMode: 13},
		{Name: "extreme_sparse", EngineMode: EngineLSTM, PageSegMode: 11},
	}
}

// BlendedCatalog is tried against every extreme enhancement version. It leans
// on the legacy engine, which copes better with the heavily distorted glyphs
// the extreme recipes produce.
func BlendedCatalog() []Profile {
	return []Profile{
		{Name: "blended_legacy", EngineMode: EngineLegacy, PageSegMode: 6},
		{Name: "blended_digits", EngineMode: EngineLegacy, PageSegMode: 8, Whitelist: WhitelistCoordsTight},
		{Name: "blended_sparse", EngineMode: EngineLegacy, PageSegMode: 11},
		{Name: "blended_single", EngineMode: EngineLegacy, PageSegMode: 13},
		{Name: "blended_lstm", EngineMode: EngineLSTM, PageSegMode: 6},
		{Name: "blended_combined", EngineMode: EngineCombined, PageSegMode: 6},
		{Name: "blended_coords", EngineMode: EngineLSTM, PageSegMode: 8, Whitelist: WhitelistCoordsDegree},
	}
}
