package engine

import (
	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/model"
	"github.com/catalogmatch/rangemapper/internal/scoring"
)

// CandidateScorer scores one catalog row against a query's normalized terms.
type CandidateScorer interface {
	Score(terms catalog.QueryTerms, row catalog.Row) model.MatchCandidate
	Thresholds() scoring.Thresholds
}

// Recommender proposes currently commercialized replacements for an
// obsolete catalog product.
type Recommender interface {
	Recommend(ix *catalog.Index, obsolete *model.CatalogProduct) []model.ModernizationSuggestion
}
