package similarity

import (
	"strings"
	"unicode"
)

// TokenSet scores strings by word overlap, so reordered tokens ("MGE Galaxy
// 6000" vs "Galaxy 6000 MGE") and token subsets still score high where a
// character-level metric would not.
type TokenSet struct{}

// Name implements StringSimilarity.
func (TokenSet) Name() string {
	return "token_set"
}

// Similarity implements StringSimilarity. The score is the better of the
// Jaccard index and a discounted overlap coefficient; identical token sets
// score 1.0 and a full subset scores 0.9.
func (TokenSet) Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}

	tokensA := tokenSet(a)
	tokensB := tokenSet(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	intersection := 0
	for token := range tokensA {
		if tokensB[token] {
			intersection++
		}
	}
	if intersection == 0 {
		return 0.0
	}

	union := len(tokensA) + len(tokensB) - intersection
	jaccard := float64(intersection) / float64(union)

	smaller := len(tokensA)
	if len(tokensB) < smaller {
		smaller = len(tokensB)
	}
	overlap := float64(intersection) / float64(smaller)

	score := jaccard
	if discounted := overlap * 0.9; discounted > score {
		score = discounted
	}
	return clamp01(score)
}

func tokenSet(s string) map[string]bool {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(fields) == 0 {
		return nil
	}

	set := make(map[string]bool, len(fields))
	for _, f := range fields {
		set[f] = true
	}
	return set
}
