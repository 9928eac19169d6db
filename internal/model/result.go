package model

import "time"

// MigrationComplexity labels the expected effort of moving from an obsolete
// product to a recommended replacement.
type MigrationComplexity string

// Migration complexity labels, derived from the number of differing
// technical attributes between the obsolete product and its replacement.
const (
	MigrationLow    MigrationComplexity = "low"
	MigrationMedium MigrationComplexity = "medium"
	MigrationHigh   MigrationComplexity = "high"
)

// ModernizationSuggestion is one currently commercialized product proposed
// as a replacement for an obsolete match.
type ModernizationSuggestion struct {
	Product             *CatalogProduct     `json:"product"`
	MigrationComplexity MigrationComplexity `json:"migration_complexity"`
	SharedAttributes    []string            `json:"shared_attributes"`
	Score               float64             `json:"score"`
}

// MappingResult is the complete outcome of mapping one query against one
// catalog snapshot. It is serializable as-is for the downstream persistence
// and reporting collaborators.
type MappingResult struct {
	ID                        string                    `json:"id"`
	Query                     LetterProductQuery        `json:"query"`
	Candidates                MatchCandidates           `json:"candidates"`
	BestMatch                 *MatchCandidate           `json:"best_match,omitempty"`
	RangeGroups               []RangeGroup              `json:"range_groups"`
	Modernizations            []ModernizationSuggestion `json:"modernizations"`
	SearchSpaceReduction      float64                   `json:"search_space_reduction"`
	Elapsed                   time.Duration             `json:"elapsed_ns"`
	CatalogVersion            uint64                    `json:"catalog_version"`
	MappingSuccess            bool                      `json:"mapping_success"`
	CategoryFilterSkipped     bool                      `json:"category_filter_skipped"`
	LowConfidenceDueToTimeout bool                      `json:"low_confidence_due_to_timeout"`
	Cancelled                 bool                      `json:"cancelled"`
}
