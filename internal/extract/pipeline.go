package extract

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/snapgeo/snapgeo-ocr/internal/geo"
	"github.com/snapgeo/snapgeo-ocr/internal/ocr"
)

// ErrNoCoordinates is the error string reported when the full escalation and
// reconstruction cascade still produced no coordinate on either axis.
const ErrNoCoordinates = "GPS coordinates not found, but extracted other location metadata"

// Pipeline wires the recognition engine, plausibility bounds, gazetteer and
// calibration table into a single Extract entry point. A Pipeline is safe for
// concurrent use; per-request state lives in the orchestrator and candidate.
type Pipeline struct {
	engine      ocr.Engine
	bounds      geo.Bounds
	gazetteer   *geo.Gazetteer
	calibration *CalibrationTable
	logger      *log.Logger
}

// Option customizes a Pipeline at construction time.
type Option func(*Pipeline)

// WithBounds replaces the default plausibility bounds.
func WithBounds(b geo.Bounds) Option {
	return func(p *Pipeline) { p.bounds = b }
}

// WithGazetteer replaces the built-in gazetteer.
func WithGazetteer(g *geo.Gazetteer) Option {
	return func(p *Pipeline) { p.gazetteer = g }
}

// WithCalibration replaces the built-in misread-signature table.
func WithCalibration(t *CalibrationTable) Option {
	return func(p *Pipeline) { p.calibration = t }
}

// WithLogger sets the diagnostic logger. By default the pipeline is silent.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New builds a pipeline around the given recognition engine with the default
// deployment bounds, gazetteer and calibration table.
func New(engine ocr.Engine, opts ...Option) *Pipeline {
	p := &Pipeline{
		engine:      engine,
		bounds:      geo.DefaultBounds,
		gazetteer:   geo.Default(),
		calibration: DefaultCalibration(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract runs the full pipeline over raw image bytes and always returns a
// result record: recognition and reconstruction failures are reported inside
// the record, never as a Go error or a panic.
func (p *Pipeline) Extract(data []byte) (result *ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			result = &ExtractionResult{
				Error: fmt.Sprintf("Processing failed: %v", r),
			}
		}
	}()

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return &ExtractionResult{
			Error: fmt.Sprintf("Processing failed: %v", err),
		}
	}

	attempts := RunTiers(p.engine, img)
	best := attempts.SelectBest()
	p.logf("recognition finished: %d attempts, best %q (tier %s)",
		attempts.Len(), best.Label, best.Tier)

	rc := &ruleContext{
		best:        best.Text,
		corpus:      attempts.Consolidated(),
		bounds:      p.bounds,
		gazetteer:   p.gazetteer,
		calibration: p.calibration,
	}
	candidate := RunCascade(rc)

	result = &ExtractionResult{
		RawText:         strings.TrimSpace(best.Text),
		OCRMethod:       best.Label,
		DebugOCRResults: attempts.DebugMap(),
	}
	result.parseMetadata(best.Text)

	if candidate.Found() {
		result.applyCandidate(&candidate)
		result.Confidence = ScoreCandidate(&candidate, best.Tier, p.bounds)
		p.logf("coordinates resolved: lat=%v lon=%v method=%s score=%.3f",
			candidate.Lat, candidate.Lon,
			result.Confidence.Method, result.Confidence.Score)
		return result
	}

	result.Error = ErrNoCoordinates
	result.LocationInfo = locationLines(best.Text)
	p.logf("no coordinates found after %d attempts", attempts.Len())
	return result
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}
