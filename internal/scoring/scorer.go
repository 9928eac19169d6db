package scoring

import (
	"fmt"

	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/model"
	"github.com/catalogmatch/rangemapper/internal/similarity"
)

// semanticFloor is the lexical range similarity below which the synonym
// table is consulted. Above it, lexical evidence already carries the score.
const semanticFloor = 0.6

// Scorer turns one catalog row into a scored match candidate for a query.
// A Scorer is immutable after construction and safe for concurrent use.
type Scorer struct {
	fields     *similarity.FieldScorer
	synonyms   *similarity.SynonymTable
	weights    Weights
	thresholds Thresholds
}

// NewScorer creates a scorer with explicit weights, thresholds, field
// strategies, and synonym table.
func NewScorer(weights Weights, thresholds Thresholds, fields *similarity.FieldScorer, synonyms *similarity.SynonymTable) *Scorer {
	return &Scorer{
		weights:    weights,
		thresholds: thresholds,
		fields:     fields,
		synonyms:   synonyms,
	}
}

// NewDefaultScorer creates a scorer with the default configuration.
func NewDefaultScorer() *Scorer {
	return NewScorer(DefaultWeights(), DefaultThresholds(), similarity.DefaultFieldScorer(), similarity.DefaultSynonymTable())
}

// Thresholds returns the tier cutoffs the scorer applies.
func (s *Scorer) Thresholds() Thresholds {
	return s.thresholds
}

// Score computes the confidence of one catalog row against the query terms.
// Weights of fields absent from the query are excluded from the denominator,
// so a query carrying only a range label can still reach full confidence on
// a perfect range match instead of being dragged down by fields it never
// had. The returned confidence is always in [0, 1].
func (s *Scorer) Score(terms catalog.QueryTerms, row catalog.Row) model.MatchCandidate {
	candidate := model.MatchCandidate{Product: row.Product}

	var weighted, denominator float64

	if terms.Range != "" {
		candidate.Scores.Range = s.fields.Score(terms.Range, row.Range)
		weighted += s.weights.Range * candidate.Scores.Range
		denominator += s.weights.Range
	}
	if terms.Identifier != "" {
		candidate.Scores.Identifier = s.fields.Score(terms.Identifier, row.Identifier)
		weighted += s.weights.Identifier * candidate.Scores.Identifier
		denominator += s.weights.Identifier
	}
	if terms.SubRange != "" {
		candidate.Scores.SubRange = s.fields.Score(terms.SubRange, row.SubRange)
		weighted += s.weights.SubRange * candidate.Scores.SubRange
		denominator += s.weights.SubRange
	}
	if terms.Description != "" {
		candidate.Scores.Description = s.fields.Score(terms.Description, row.Description)
		weighted += s.weights.Description * candidate.Scores.Description
		denominator += s.weights.Description
	}
	if terms.Category != "" {
		if terms.Category == row.Category {
			candidate.CategoryMatch = true
			weighted += s.weights.Category
		}
		denominator += s.weights.Category
	}

	// The synonym table only steps in when lexical similarity failed to
	// recognize a known equivalence.
	if terms.Range != "" && candidate.Scores.Range < semanticFloor {
		if entry, ok := s.synonyms.Lookup(terms.Range, row.Range); ok {
			candidate.SemanticBonus = entry.Score
			weighted += s.weights.Semantic * entry.Score
			denominator += s.weights.Semantic
			candidate.Reasons = append(candidate.Reasons,
				fmt.Sprintf("known synonym: %s / %s (%s)", entry.A, entry.B, entry.Note))
		}
	}

	if denominator > 0 {
		candidate.Confidence = weighted / denominator
	}

	candidate.ExactRangeMatch = terms.Range != "" && terms.Range == row.Range
	candidate.ExactSubRangeMatch = terms.SubRange != "" && terms.SubRange == row.SubRange
	if candidate.ExactRangeMatch {
		candidate.Confidence += s.weights.ExactRangeBonus
	}
	if candidate.ExactSubRangeMatch {
		candidate.Confidence += s.weights.ExactSubRangeBonus
	}

	candidate.Confidence = clamp(candidate.Confidence)
	candidate.Tier = s.thresholds.Tier(candidate.Confidence)
	candidate.Reasons = append(reasonsFor(&candidate), candidate.Reasons...)

	return candidate
}

// reasonsFor builds the ordered human-readable reasons for a candidate's
// score, strongest evidence first.
func reasonsFor(c *model.MatchCandidate) []string {
	var reasons []string

	if c.ExactRangeMatch {
		reasons = append(reasons, "exact range match")
	} else if c.Scores.Range >= 0.75 {
		reasons = append(reasons, fmt.Sprintf("range similarity %.2f", c.Scores.Range))
	}
	if c.ExactSubRangeMatch {
		reasons = append(reasons, "exact sub-range match")
	}
	if c.Scores.Identifier >= 0.90 {
		reasons = append(reasons, fmt.Sprintf("identifier similarity %.2f", c.Scores.Identifier))
	}
	if c.CategoryMatch {
		reasons = append(reasons, "category match")
	}
	if c.Scores.Description >= 0.75 {
		reasons = append(reasons, fmt.Sprintf("description similarity %.2f", c.Scores.Description))
	}

	return reasons
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
