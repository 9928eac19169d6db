package model

import (
	"fmt"
	"strings"
)

// LetterProductQuery is one product reference extracted from an obsolescence
// notice by the upstream extraction collaborator.
type LetterProductQuery struct {
	Identifier         string `json:"identifier,omitempty"`
	RangeLabel         string `json:"range_label,omitempty"`
	SubRangeLabel      string `json:"sub_range_label,omitempty"`
	CategoryHint       string `json:"category_hint,omitempty"`
	Description        string `json:"description,omitempty"`
	ObsolescenceStatus string `json:"obsolescence_status,omitempty"`
}

// Validate ensures the query carries at least one identifying field. A query
// with neither an identifier nor a range label cannot be matched against the
// catalog.
func (q *LetterProductQuery) Validate() error {
	if strings.TrimSpace(q.Identifier) == "" && strings.TrimSpace(q.RangeLabel) == "" {
		return fmt.Errorf("query must have an identifier or a range label")
	}
	return nil
}

// IsObsolete reports whether the extracted obsolescence status marks the
// referenced product as obsolete.
func (q *LetterProductQuery) IsObsolete() bool {
	return StatusIsObsolete(q.ObsolescenceStatus)
}
