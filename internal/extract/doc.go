// Package extract implements the cascading coordinate-extraction engine: a
// tiered recognition orchestrator that escalates through increasingly
// aggressive image variants and profiles, text consolidation and best-attempt
// selection, and an ordered reconstruction cascade that rebuilds coordinates
// from whatever fragments survived recognition.
//
// The package is per-request pure: a Pipeline holds only configuration, and
// Extract builds all transient state for a single frame. Extract is a total
// function; every failure mode is reported inside the returned record.
package extract
