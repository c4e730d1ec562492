package extract

import "strings"

// Attempt records one recognition invocation: which tier and variant produced
// it, the profile used, and the recognized text. Failed attempts carry empty
// text and are kept for diagnostics; they never abort the orchestrator.
type Attempt struct {
	Tier    Tier   `json:"tier"`
	Label   string `json:"label"`
	Profile string `json:"profile"`
	Text    string `json:"text"`
	Failed  bool   `json:"failed,omitempty"`
}

// AttemptLog accumulates every attempt of a request in tier order.
type AttemptLog struct {
	attempts []Attempt
}

// Add appends an attempt to the log.
func (l *AttemptLog) Add(a Attempt) {
	l.attempts = append(l.attempts, a)
}

// All returns the attempts in the order they were made.
func (l *AttemptLog) All() []Attempt {
	return l.attempts
}

// Len returns the number of logged attempts.
func (l *AttemptLog) Len() int {
	return len(l.attempts)
}

// Consolidated joins every non-empty attempt text with a single space. This is
// the fragment-search corpus for the reconstruction cascade, distinct from the
// single best text used for direct pattern matches.
func (l *AttemptLog) Consolidated() string {
	parts := make([]string, 0, len(l.attempts))
	for _, a := range l.attempts {
		if t := strings.TrimSpace(a.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// DebugMap renders the log as a label -> text mapping for the diagnostic
// section of the result record.
func (l *AttemptLog) DebugMap() map[string]string {
	m := make(map[string]string, len(l.attempts))
	for _, a := range l.attempts {
		m[a.Label] = strings.TrimSpace(a.Text)
	}
	return m
}

// SelectBest picks the single most useful attempt by priority:
//
//  1. The first attempt (in tier order) whose text matches any
//     coordinate-shaped pattern wins immediately.
//  2. Otherwise, among attempts containing GPS-metadata keywords, the one
//     with the longest text wins.
//  3. Otherwise the baseline full-image attempt is the default.
func (l *AttemptLog) SelectBest() Attempt {
	var best Attempt
	if len(l.attempts) > 0 {
		best = l.attempts[0]
	}

	for _, a := range l.attempts {
		if a.Text == "" {
			continue
		}
		if matchesAnyCoordinatePattern(a.Text) {
			return a
		}
		if hasSelectionKeywords(a.Text) &&
			len(strings.TrimSpace(a.Text)) > len(strings.TrimSpace(best.Text)) {
			best = a
		}
	}
	return best
}
