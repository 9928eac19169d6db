// Package catalog implements the immutable in-memory index over a reference
// catalog snapshot. An Index is built once per snapshot and never mutated
// afterwards, so it is safe to share across any number of concurrent readers.
package catalog

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/catalogmatch/rangemapper/internal/common"
	"github.com/catalogmatch/rangemapper/internal/model"
)

// RowSet is an ascending list of catalog row indices.
type RowSet []int

// Len returns the number of rows in the set.
func (r RowSet) Len() int {
	return len(r)
}

// Empty reports whether the set contains no rows.
func (r RowSet) Empty() bool {
	return len(r) == 0
}

// Row is the normalized view of one catalog row, precomputed at build time.
type Row struct {
	Product     *model.CatalogProduct
	Range       string
	SubRange    string
	Identifier  string
	Description string
	Category    string
}

// Stats summarizes an index for operational logging.
type Stats struct {
	BuiltAt    time.Time
	Version    uint64
	Rows       int
	Categories int
	Ranges     int
}

// versionCounter assigns a monotonically increasing version to each built
// index so downstream records can state which snapshot they were mapped
// against.
var versionCounter atomic.Uint64

// Index is the queryable, immutable representation of one catalog snapshot.
type Index struct {
	builtAt         time.Time
	byCategory      map[string]RowSet
	byCategoryRange map[string]map[string]RowSet
	textIndex       map[string]RowSet
	rangeCounts     map[string]int
	products        []model.CatalogProduct
	rows            []Row
	version         uint64
}

// Build constructs an Index from a catalog snapshot. The snapshot rows are
// copied; the caller may discard its slice afterwards. Returns
// common.ErrEmptyCatalog if the snapshot has zero rows.
func Build(snapshot []model.CatalogProduct) (*Index, error) {
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("cannot build index: %w", common.ErrEmptyCatalog)
	}

	ix := &Index{
		builtAt:         time.Now(),
		version:         versionCounter.Add(1),
		products:        make([]model.CatalogProduct, len(snapshot)),
		rows:            make([]Row, len(snapshot)),
		byCategory:      make(map[string]RowSet),
		byCategoryRange: make(map[string]map[string]RowSet),
		textIndex:       make(map[string]RowSet),
		rangeCounts:     make(map[string]int),
	}
	copy(ix.products, snapshot)

	for i := range ix.products {
		p := &ix.products[i]

		row := Row{
			Product:     p,
			Range:       Normalize(p.RangeLabel),
			SubRange:    Normalize(p.SubRangeLabel),
			Identifier:  Normalize(p.Identifier),
			Description: Normalize(p.Description),
			Category:    Normalize(p.CategoryCode),
		}
		ix.rows[i] = row

		ix.byCategory[row.Category] = append(ix.byCategory[row.Category], i)

		ranges, ok := ix.byCategoryRange[row.Category]
		if !ok {
			ranges = make(map[string]RowSet)
			ix.byCategoryRange[row.Category] = ranges
		}
		ranges[row.Range] = append(ranges[row.Range], i)

		if row.Range != "" {
			ix.rangeCounts[row.Range]++
		}

		for _, token := range Tokenize(p.Description) {
			ix.addToken(token, i)
		}
		for _, token := range Tokenize(p.Identifier) {
			ix.addToken(token, i)
		}
	}

	slog.Debug("Built catalog index",
		"version", ix.version,
		"rows", len(ix.rows),
		"categories", len(ix.byCategory),
		"ranges", len(ix.rangeCounts))

	return ix, nil
}

// addToken appends a row to a token's posting list, skipping consecutive
// duplicates (rows are visited in ascending order).
func (ix *Index) addToken(token string, row int) {
	if token == "" {
		return
	}
	rows := ix.textIndex[token]
	if len(rows) > 0 && rows[len(rows)-1] == row {
		return
	}
	ix.textIndex[token] = append(rows, row)
}

// Len returns the number of catalog rows.
func (ix *Index) Len() int {
	return len(ix.rows)
}

// Version returns the monotonic snapshot version of this index.
func (ix *Index) Version() uint64 {
	return ix.version
}

// Row returns the normalized view of one catalog row.
func (ix *Index) Row(i int) Row {
	return ix.rows[i]
}

// All returns every row index in ascending order.
func (ix *Index) All() RowSet {
	all := make(RowSet, len(ix.rows))
	for i := range all {
		all[i] = i
	}
	return all
}

// ByCategory returns the rows whose category code matches the given code
// after normalization. Returns an empty set for unknown categories.
func (ix *Index) ByCategory(code string) RowSet {
	return ix.byCategory[Normalize(code)]
}

// ByCategoryAndRange narrows a category to one range label. It tries an
// exact normalized match first, then substring containment in both
// directions, and returns an empty set if neither matches; callers decide
// how to fall back.
func (ix *Index) ByCategoryAndRange(code, rangeText string) RowSet {
	category := Normalize(code)
	target := Normalize(rangeText)
	if target == "" {
		return nil
	}

	ranges, ok := ix.byCategoryRange[category]
	if !ok {
		return nil
	}

	if rows, found := ranges[target]; found {
		return rows
	}

	var matched RowSet
	for _, i := range ix.byCategory[category] {
		r := ix.rows[i].Range
		if r == "" {
			continue
		}
		if strings.Contains(r, target) || strings.Contains(target, r) {
			matched = append(matched, i)
		}
	}
	return matched
}

// FullTextSearch returns the rows whose normalized description or identifier
// contains the given token. Exact token hits come from the inverted index;
// otherwise the vocabulary is scanned for substring matches. This is a
// last-resort fallback, not a primary lookup.
func (ix *Index) FullTextSearch(token string) RowSet {
	needle := Normalize(token)
	if needle == "" {
		return nil
	}

	if rows, ok := ix.textIndex[needle]; ok {
		return rows
	}

	seen := make(map[int]bool)
	for word, rows := range ix.textIndex {
		if !strings.Contains(word, needle) {
			continue
		}
		for _, i := range rows {
			seen[i] = true
		}
	}

	if len(seen) == 0 {
		return nil
	}

	matched := make(RowSet, 0, len(seen))
	for i := range seen {
		matched = append(matched, i)
	}
	sort.Ints(matched)
	return matched
}

// RangeProductCount returns the total number of catalog products carrying
// the given range label, across all categories. Used as a deterministic
// ranking tie-breaker.
func (ix *Index) RangeProductCount(rangeLabel string) int {
	return ix.rangeCounts[Normalize(rangeLabel)]
}

// Stats returns summary statistics for operational logging.
func (ix *Index) Stats() Stats {
	return Stats{
		BuiltAt:    ix.builtAt,
		Version:    ix.version,
		Rows:       len(ix.rows),
		Categories: len(ix.byCategory),
		Ranges:     len(ix.rangeCounts),
	}
}
