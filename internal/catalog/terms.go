package catalog

import "github.com/catalogmatch/rangemapper/internal/model"

// QueryTerms is the normalized form of one query, computed once per mapping
// so every stage compares against the same canonical text.
type QueryTerms struct {
	Identifier  string
	Range       string
	SubRange    string
	Description string
	Category    string
}

// TermsFor normalizes the identifying fields of a query.
func TermsFor(q *model.LetterProductQuery) QueryTerms {
	return QueryTerms{
		Identifier:  Normalize(q.Identifier),
		Range:       Normalize(q.RangeLabel),
		SubRange:    Normalize(q.SubRangeLabel),
		Description: Normalize(q.Description),
		Category:    Normalize(q.CategoryHint),
	}
}
