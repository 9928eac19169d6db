// Package similarity provides pluggable string similarity strategies and the
// explicit brand/range synonym table used by the confidence scorer.
package similarity

// StringSimilarity computes a similarity score between two strings. Inputs
// are expected to be pre-normalized (see catalog.Normalize); implementations
// must be pure and safe for concurrent use.
type StringSimilarity interface {
	// Similarity returns a score in [0, 1]: 1.0 for identical strings,
	// 0.0 for entirely dissimilar strings.
	Similarity(a, b string) float64
	// Name identifies the strategy in configuration and logs.
	Name() string
}
