// Package engine orchestrates the mapping of extracted product queries
// against the catalog index: macro filtering, similarity scoring, range
// aggregation, and modernization recommendations.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/common"
	"github.com/catalogmatch/rangemapper/internal/filter"
	"github.com/catalogmatch/rangemapper/internal/grouping"
	"github.com/catalogmatch/rangemapper/internal/model"
	"github.com/catalogmatch/rangemapper/internal/modernize"
	"github.com/catalogmatch/rangemapper/internal/scoring"
	"github.com/catalogmatch/rangemapper/internal/similarity"
)

// Options holds configuration for the mapping engine.
type Options struct {
	Weights             scoring.Weights    `mapstructure:"weights"`
	Thresholds          scoring.Thresholds `mapstructure:"thresholds"`
	SubRangeThreshold   int                `mapstructure:"sub_range_threshold"`
	QueryTimeout        time.Duration      `mapstructure:"query_timeout"`
	CancelCheckInterval int                `mapstructure:"cancel_check_interval"`
	MaxRecommendations  int                `mapstructure:"max_recommendations"`
	Workers             int                `mapstructure:"workers"`
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() Options {
	return Options{
		Weights:             scoring.DefaultWeights(),
		Thresholds:          scoring.DefaultThresholds(),
		SubRangeThreshold:   filter.DefaultSubRangeThreshold,
		QueryTimeout:        200 * time.Millisecond,
		CancelCheckInterval: 64,
		MaxRecommendations:  modernize.DefaultMaxSuggestions,
		Workers:             4,
	}
}

// MappingEngine maps product queries against the shared catalog index. The
// engine holds no per-query state; one instance serves any number of
// concurrent callers.
type MappingEngine struct {
	store       *catalog.Store
	stage       *filter.Stage
	scorer      CandidateScorer
	recommender Recommender
	opts        Options
}

// New creates a mapping engine with the default configuration.
func New(store *catalog.Store) *MappingEngine {
	return NewWithOptions(store, DefaultOptions())
}

// NewWithOptions creates a mapping engine with custom configuration.
func NewWithOptions(store *catalog.Store, opts Options) *MappingEngine {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = DefaultOptions().QueryTimeout
	}
	if opts.CancelCheckInterval <= 0 {
		opts.CancelCheckInterval = DefaultOptions().CancelCheckInterval
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultOptions().Workers
	}

	return &MappingEngine{
		store:       store,
		stage:       filter.NewStage(opts.SubRangeThreshold),
		scorer:      scoring.NewScorer(opts.Weights, opts.Thresholds, similarity.DefaultFieldScorer(), similarity.DefaultSynonymTable()),
		recommender: modernize.NewRecommender(opts.MaxRecommendations),
		opts:        opts,
	}
}

// WithScorer replaces the candidate scorer. Intended for metric selection by
// configuration and for tests.
func (e *MappingEngine) WithScorer(scorer CandidateScorer) *MappingEngine {
	e.scorer = scorer
	return e
}

// WithRecommender replaces the modernization recommender.
func (e *MappingEngine) WithRecommender(recommender Recommender) *MappingEngine {
	e.recommender = recommender
	return e
}

// Map resolves one query to a ranked, confidence-scored set of catalog
// matches. Every call returns exactly one MappingResult or one of the fatal
// errors (common.ErrInvalidQuery, common.ErrCatalogNotLoaded). Timeouts and
// cancellation are reported through result flags, never as errors.
func (e *MappingEngine) Map(ctx context.Context, query model.LetterProductQuery) (*model.MappingResult, error) {
	start := time.Now()

	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidQuery, err)
	}

	ix, err := e.store.Current()
	if err != nil {
		return nil, err
	}

	terms := catalog.TermsFor(&query)
	filtered := e.stage.Apply(ix, terms)

	result := &model.MappingResult{
		ID:                    uuid.NewString(),
		Query:                 query,
		CatalogVersion:        ix.Version(),
		CategoryFilterSkipped: filtered.CategorySkipped,
		SearchSpaceReduction:  reduction(len(filtered.Rows), ix.Len()),
	}

	slog.Debug("Macro filter applied",
		"query_range", query.RangeLabel,
		"candidates", len(filtered.Rows),
		"reduction", result.SearchSpaceReduction,
		"category_skipped", filtered.CategorySkipped)

	candidates := make(model.MatchCandidates, 0, len(filtered.Rows))

	for n, rowIndex := range filtered.Rows {
		if n%e.opts.CancelCheckInterval == 0 {
			select {
			case <-ctx.Done():
				result.Cancelled = true
			default:
			}
			if result.Cancelled {
				break
			}
			if time.Since(start) > e.opts.QueryTimeout {
				result.LowConfidenceDueToTimeout = true
				slog.Warn("Query timed out, returning partial result",
					"scored", n,
					"remaining", len(filtered.Rows)-n)
				break
			}
		}

		candidate, scoreErr := e.scoreRow(ix, terms, rowIndex)
		if scoreErr != nil {
			slog.Warn("Skipping catalog row", "row", rowIndex, "error", scoreErr)
			continue
		}
		candidates = append(candidates, candidate)
	}

	candidates.Sort()
	result.Candidates = candidates
	result.BestMatch = candidates.Best()
	result.RangeGroups = grouping.Group(candidates)

	best := result.BestMatch
	result.MappingSuccess = !result.Cancelled &&
		best != nil &&
		best.Confidence >= e.scorer.Thresholds().Medium

	if best != nil && (query.IsObsolete() || best.Product.IsObsolete()) {
		result.Modernizations = e.recommender.Recommend(ix, best.Product)
	}

	result.Elapsed = time.Since(start)
	return result, nil
}

// scoreRow scores one catalog row, converting panics from malformed rows
// into per-row errors so one bad row never aborts the whole query.
func (e *MappingEngine) scoreRow(ix *catalog.Index, terms catalog.QueryTerms, rowIndex int) (candidate model.MatchCandidate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("similarity computation fault: %v", r)
		}
	}()

	row := ix.Row(rowIndex)
	candidate = e.scorer.Score(terms, row)
	candidate.RangeProductCount = ix.RangeProductCount(row.Product.RangeLabel)
	return candidate, nil
}

func reduction(remaining, total int) float64 {
	if total == 0 {
		return 0
	}
	return 1.0 - float64(remaining)/float64(total)
}
