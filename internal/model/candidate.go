package model

import "sort"

// ConfidenceTier buckets a continuous confidence score for business users.
type ConfidenceTier string

// Confidence tiers from strongest to weakest.
const (
	TierExact     ConfidenceTier = "exact"
	TierHigh      ConfidenceTier = "high"
	TierMedium    ConfidenceTier = "medium"
	TierLow       ConfidenceTier = "low"
	TierUncertain ConfidenceTier = "uncertain"
)

// FieldScores holds the per-field similarity scores of one candidate against
// the query. All values are in [0, 1].
type FieldScores struct {
	Range       float64 `json:"range"`
	Identifier  float64 `json:"identifier"`
	SubRange    float64 `json:"sub_range"`
	Description float64 `json:"description"`
}

// MatchCandidate is one scored catalog product for a single query. Candidates
// are created fresh per query and never persisted by the engine.
type MatchCandidate struct {
	Product            *CatalogProduct `json:"product"`
	Tier               ConfidenceTier  `json:"tier"`
	Reasons            []string        `json:"reasons"`
	Scores             FieldScores     `json:"scores"`
	SemanticBonus      float64         `json:"semantic_bonus"`
	Confidence         float64         `json:"confidence"`
	RangeProductCount  int             `json:"range_product_count"`
	CategoryMatch      bool            `json:"category_match"`
	ExactRangeMatch    bool            `json:"exact_range_match"`
	ExactSubRangeMatch bool            `json:"exact_sub_range_match"`
}

// MatchCandidates is a slice of MatchCandidate supporting deterministic
// sorting and utility methods.
type MatchCandidates []MatchCandidate

// Len implements sort.Interface.
func (c MatchCandidates) Len() int {
	return len(c)
}

// Less implements sort.Interface. Ordering is a total order: confidence
// descending, then exact-range matches first, then range volume descending,
// then identifier ascending. Re-running the same query always yields the
// same ranking.
func (c MatchCandidates) Less(i, j int) bool {
	if c[i].Confidence != c[j].Confidence {
		return c[i].Confidence > c[j].Confidence
	}
	if c[i].ExactRangeMatch != c[j].ExactRangeMatch {
		return c[i].ExactRangeMatch
	}
	if c[i].RangeProductCount != c[j].RangeProductCount {
		return c[i].RangeProductCount > c[j].RangeProductCount
	}
	return c[i].Product.Identifier < c[j].Product.Identifier
}

// Swap implements sort.Interface.
func (c MatchCandidates) Swap(i, j int) {
	c[i], c[j] = c[j], c[i]
}

// Sort orders the candidates by the deterministic ranking order.
func (c MatchCandidates) Sort() {
	sort.Sort(c)
}

// Best returns the top-ranked candidate, or nil if there are none. The slice
// must already be sorted.
func (c MatchCandidates) Best() *MatchCandidate {
	if len(c) == 0 {
		return nil
	}
	return &c[0]
}
