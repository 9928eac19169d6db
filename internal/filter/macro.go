// Package filter implements the macro filter stage: three-level progressive
// narrowing of the catalog by category, range, then sub-range/identifier.
// The stage never starves: no level is allowed to reduce the candidate set
// to nothing while the catalog itself is non-empty.
package filter

import (
	"log/slog"
	"strings"

	"github.com/catalogmatch/rangemapper/internal/catalog"
)

// DefaultSubRangeThreshold is the candidate-set size above which the third
// filter level is applied. Below it, discarding low-volume matches costs
// more than scoring them.
const DefaultSubRangeThreshold = 50

// genericTokens are unit/brand boilerplate words stripped from range text
// before the containment retry at level two.
var genericTokens = map[string]bool{
	"SERIES":        true,
	"RANGE":         true,
	"SYSTEM":        true,
	"UNIT":          true,
	"MODULE":        true,
	"TYPE":          true,
	"UPS":           true,
	"MGE":           true,
	"SCHNEIDER":     true,
	"ELECTRIC":      true,
	"MERLIN":        true,
	"GERIN":         true,
	"TELEMECANIQUE": true,
	"APC":           true,
	"SQUARE":        true,
}

// Result is the outcome of the macro filter stage.
type Result struct {
	Rows            catalog.RowSet
	CategorySkipped bool
}

// Stage narrows the catalog for one query before similarity scoring.
type Stage struct {
	subRangeThreshold int
}

// NewStage creates a macro filter stage. A non-positive threshold falls back
// to DefaultSubRangeThreshold.
func NewStage(subRangeThreshold int) *Stage {
	if subRangeThreshold <= 0 {
		subRangeThreshold = DefaultSubRangeThreshold
	}
	return &Stage{subRangeThreshold: subRangeThreshold}
}

// Apply runs the three filter levels in order. Each level operates on the
// previous level's output and leaves it unchanged when its own match comes
// up empty, so the result is never empty for a non-empty catalog.
func (s *Stage) Apply(ix *catalog.Index, terms catalog.QueryTerms) Result {
	result := Result{Rows: ix.All()}

	// Level 1: category hint.
	if terms.Category != "" {
		byCategory := ix.ByCategory(terms.Category)
		if byCategory.Empty() {
			result.CategorySkipped = true
			slog.Debug("Category filter skipped, no rows for hint", "category", terms.Category)
		} else {
			result.Rows = byCategory
		}
	}

	// Level 2: range label.
	if terms.Range != "" {
		result.Rows = s.filterByRange(ix, result.Rows, terms)
	}

	// Level 3: sub-range/identifier, only worth applying on large sets.
	if len(result.Rows) > s.subRangeThreshold {
		result.Rows = s.filterBySubRange(ix, result.Rows, terms)
	}

	return result
}

// filterByRange narrows rows to the query's range label: exact normalized
// match, then containment both directions, then containment with generic
// tokens stripped, then a full-text fallback on the first meaningful range
// token. If every attempt is empty the input is returned unchanged.
func (s *Stage) filterByRange(ix *catalog.Index, rows catalog.RowSet, terms catalog.QueryTerms) catalog.RowSet {
	if exact := selectRows(ix, rows, func(r catalog.Row) bool {
		return r.Range == terms.Range
	}); !exact.Empty() {
		return exact
	}

	if contained := selectRows(ix, rows, func(r catalog.Row) bool {
		return rangeContains(r.Range, terms.Range)
	}); !contained.Empty() {
		return contained
	}

	stripped := StripGenericTokens(terms.Range)
	if stripped != "" && stripped != terms.Range {
		if contained := selectRows(ix, rows, func(r catalog.Row) bool {
			return rangeContains(r.Range, stripped)
		}); !contained.Empty() {
			return contained
		}
	}

	if token := firstMeaningfulToken(terms.Range); token != "" {
		if narrowed := intersect(rows, ix.FullTextSearch(token)); !narrowed.Empty() {
			slog.Debug("Range filter fell back to full-text search", "token", token)
			return narrowed
		}
	}

	return rows
}

// filterBySubRange tries containment of the sub-range token, then the
// identifier token, then the description tokens, keeping the first non-empty
// result.
func (s *Stage) filterBySubRange(ix *catalog.Index, rows catalog.RowSet, terms catalog.QueryTerms) catalog.RowSet {
	if terms.SubRange != "" {
		if narrowed := selectRows(ix, rows, func(r catalog.Row) bool {
			return strings.Contains(r.SubRange, terms.SubRange) || strings.Contains(r.Description, terms.SubRange)
		}); !narrowed.Empty() {
			return narrowed
		}
	}

	if terms.Identifier != "" {
		if narrowed := selectRows(ix, rows, func(r catalog.Row) bool {
			return strings.Contains(r.Identifier, terms.Identifier) || strings.Contains(r.Description, terms.Identifier)
		}); !narrowed.Empty() {
			return narrowed
		}
	}

	for _, token := range catalog.Tokenize(terms.Description) {
		if genericTokens[token] {
			continue
		}
		if narrowed := selectRows(ix, rows, func(r catalog.Row) bool {
			return strings.Contains(r.Description, token)
		}); !narrowed.Empty() {
			return narrowed
		}
	}

	return rows
}

// StripGenericTokens removes unit/brand boilerplate words from normalized
// range text. Returns an empty string if nothing meaningful remains.
func StripGenericTokens(text string) string {
	fields := strings.Fields(text)
	kept := make([]string, 0, len(fields))
	for _, f := range fields {
		if genericTokens[f] {
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

func firstMeaningfulToken(text string) string {
	for _, token := range catalog.Tokenize(text) {
		if !genericTokens[token] {
			return token
		}
	}
	return ""
}

func rangeContains(candidate, target string) bool {
	if candidate == "" || target == "" {
		return false
	}
	return strings.Contains(candidate, target) || strings.Contains(target, candidate)
}

func selectRows(ix *catalog.Index, rows catalog.RowSet, keep func(catalog.Row) bool) catalog.RowSet {
	var selected catalog.RowSet
	for _, i := range rows {
		if keep(ix.Row(i)) {
			selected = append(selected, i)
		}
	}
	return selected
}

func intersect(rows, other catalog.RowSet) catalog.RowSet {
	if rows.Empty() || other.Empty() {
		return nil
	}

	members := make(map[int]bool, len(other))
	for _, i := range other {
		members[i] = true
	}

	var selected catalog.RowSet
	for _, i := range rows {
		if members[i] {
			selected = append(selected, i)
		}
	}
	return selected
}
