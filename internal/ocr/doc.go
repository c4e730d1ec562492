// Package ocr abstracts the text-recognition engine behind the extraction
// pipeline.
//
// The pipeline drives recognition through the Engine interface so the tiered
// orchestrator can be tested against scripted fakes; the production
// implementation wraps the Tesseract engine via gosseract/v2.
//
// A RecognitionProfile selects the engine mode (legacy, LSTM, combined),
// the page-segmentation mode, and an optional character whitelist. The
// catalogs in this package enumerate the finite set of profiles the
// orchestrator sweeps through, tuned for digit-and-compass-letter overlay
// text.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr tesseract-ocr-eng
//   - macOS: brew install tesseract
package ocr
