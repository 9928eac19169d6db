package similarity

import "github.com/xrash/smetrics"

// EditDistance scores strings by character-level edits. It takes the better
// of a normalized Wagner-Fischer distance and Jaro-Winkler, so both short
// identifiers with typos and longer labels with small edits score well.
type EditDistance struct{}

// Name implements StringSimilarity.
func (EditDistance) Name() string {
	return "edit_distance"
}

// Similarity implements StringSimilarity.
func (EditDistance) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	// Substitution cost 2 bounds the distance by len(a)+len(b).
	dist := smetrics.WagnerFischer(a, b, 1, 1, 2)
	levenshtein := 1.0 - float64(dist)/float64(len(a)+len(b))

	jaroWinkler := smetrics.JaroWinkler(a, b, 0.7, 4)

	if jaroWinkler > levenshtein {
		return clamp01(jaroWinkler)
	}
	return clamp01(levenshtein)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
