package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strconv"

	"github.com/otiai10/gosseract/v2"
)

// Tesseract is the production Engine backed by gosseract. Each Recognize call
// creates and closes its own client, so the engine is stateless per call and
// safe for concurrent use.
type Tesseract struct {
	// Language is the Tesseract language code. Empty means "eng".
	Language string
}

// NewTesseract returns a Tesseract engine for the given language code.
func NewTesseract(language string) *Tesseract {
	if language == "" {
		language = "eng"
	}
	return &Tesseract{Language: language}
}

// Recognize runs Tesseract over img with the profile's engine mode,
// page-segmentation mode, and whitelist applied.
func (t *Tesseract) Recognize(img image.Image, p Profile) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode image: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.Language); err != nil {
		return "", fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetVariable("tessedit_ocr_engine_mode", strconv.Itoa(p.EngineMode)); err != nil {
		return "", fmt.Errorf("failed to set engine mode: %w", err)
	}
	if err := client.SetPageSegMode(gosseract.PageSegMode(p.PageSegMode)); err != nil {
		return "", fmt.Errorf("failed to set page segmentation mode: %w", err)
	}
	if p.Whitelist != "" {
		if err := client.SetWhitelist(p.Whitelist); err != nil {
			return "", fmt.Errorf("failed to set whitelist: %w", err)
		}
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// EngineInfo describes the availability of the underlying Tesseract install.
type EngineInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
	Backend   string `json:"backend"`
}

// GetEngineInfo probes the Tesseract installation. It never returns an error;
// failures are reported in the Error field.
func GetEngineInfo() EngineInfo {
	info := EngineInfo{Backend: "gosseract"}

	defer func() {
		if r := recover(); r != nil {
			info.Available = false
			info.Error = fmt.Sprintf("tesseract probe panicked: %v", r)
		}
	}()

	client := gosseract.NewClient()
	defer client.Close()

	version := client.Version()
	if version == "" {
		info.Error = "tesseract not available"
		return info
	}
	info.Available = true
	info.Version = version
	return info
}
