// Package server exposes the extraction pipeline over HTTP. It is a thin
// shim: one upload endpoint that accepts a frame and returns the flat
// extraction record, plus a health probe reporting recognition engine
// availability. All extraction semantics live in internal/extract.
package server
