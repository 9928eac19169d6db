package similarity

// FieldScorer computes per-field similarity as the maximum across a set of
// complementary strategies, so both character-level typos and reordered
// tokens are tolerated.
type FieldScorer struct {
	strategies []StringSimilarity
}

// NewFieldScorer creates a scorer over the given strategies. At least one
// strategy is expected; zero strategies always score 0.
func NewFieldScorer(strategies ...StringSimilarity) *FieldScorer {
	return &FieldScorer{strategies: strategies}
}

// DefaultFieldScorer pairs the edit-distance and token-set strategies.
func DefaultFieldScorer() *FieldScorer {
	return NewFieldScorer(EditDistance{}, TokenSet{})
}

// Score returns the best similarity of a query field against a candidate
// field across all strategies, in [0, 1].
func (f *FieldScorer) Score(query, candidate string) float64 {
	if query == "" || candidate == "" {
		return 0.0
	}

	best := 0.0
	for _, s := range f.strategies {
		if score := s.Similarity(query, candidate); score > best {
			best = score
		}
	}
	return best
}
