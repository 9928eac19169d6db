package similarity

import "strings"

// SynonymEntry records one known equivalence between two labels, with the
// fixed similarity it should receive and a note explaining why the pair is
// equivalent. Entries hold normalized (upper-cased) forms.
type SynonymEntry struct {
	A     string  `json:"a"`
	B     string  `json:"b"`
	Note  string  `json:"note"`
	Score float64 `json:"score"`
}

// SynonymTable is an explicit, reviewable lookup of brand/range equivalences.
// It is tagged data, not a learned model: the table can be audited and
// extended without touching calling code. Lookups are symmetric.
type SynonymTable struct {
	entries []SynonymEntry
}

// NewSynonymTable builds a table from the given entries. Entry labels are
// normalized to upper case.
func NewSynonymTable(entries []SynonymEntry) *SynonymTable {
	normalized := make([]SynonymEntry, 0, len(entries))
	for _, e := range entries {
		e.A = strings.ToUpper(strings.TrimSpace(e.A))
		e.B = strings.ToUpper(strings.TrimSpace(e.B))
		if e.A == "" || e.B == "" {
			continue
		}
		normalized = append(normalized, e)
	}
	return &SynonymTable{entries: normalized}
}

// DefaultSynonymTable returns the built-in equivalences observed in the
// obsolescence corpus, mostly legacy brand prefixes absorbed over the years.
func DefaultSynonymTable() *SynonymTable {
	return NewSynonymTable([]SynonymEntry{
		{A: "MGE", B: "GALAXY", Score: 0.85, Note: "legacy MGE UPS brand prefix on Galaxy ranges"},
		{A: "MGE", B: "PULSAR", Score: 0.85, Note: "legacy MGE UPS brand prefix on Pulsar ranges"},
		{A: "APC", B: "MGE", Score: 0.80, Note: "APC acquired MGE UPS Systems in 2007"},
		{A: "MERLIN GERIN", B: "SCHNEIDER ELECTRIC", Score: 0.85, Note: "Merlin Gerin brand folded into Schneider Electric"},
		{A: "TELEMECANIQUE", B: "SCHNEIDER ELECTRIC", Score: 0.85, Note: "Telemecanique brand folded into Schneider Electric"},
		{A: "SQUARE D", B: "SCHNEIDER ELECTRIC", Score: 0.80, Note: "Square D is Schneider Electric's North American brand"},
	})
}

// Lookup returns the entry covering the (a, b) pair, if any. A pair matches
// when each side of an entry appears in one of the inputs, in either order,
// so "MGE GALAXY 6000" against "GALAXY" is covered by the MGE/GALAXY entry.
func (t *SynonymTable) Lookup(a, b string) (SynonymEntry, bool) {
	a = strings.ToUpper(strings.TrimSpace(a))
	b = strings.ToUpper(strings.TrimSpace(b))
	if a == "" || b == "" {
		return SynonymEntry{}, false
	}

	for _, e := range t.entries {
		if pairCovered(a, b, e.A, e.B) || pairCovered(a, b, e.B, e.A) {
			return e, true
		}
	}
	return SynonymEntry{}, false
}

// Entries returns a copy of the table for auditing.
func (t *SynonymTable) Entries() []SynonymEntry {
	out := make([]SynonymEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

func pairCovered(a, b, left, right string) bool {
	return containsLabel(a, left) && containsLabel(b, right)
}

// containsLabel matches whole labels only, so "MGE" does not match inside
// "MGEXT100".
func containsLabel(text, label string) bool {
	if text == label {
		return true
	}
	idx := strings.Index(text, label)
	for idx >= 0 {
		beforeOK := idx == 0 || text[idx-1] == ' '
		end := idx + len(label)
		afterOK := end == len(text) || text[end] == ' '
		if beforeOK && afterOK {
			return true
		}
		next := strings.Index(text[idx+1:], label)
		if next < 0 {
			break
		}
		idx = idx + 1 + next
	}
	return false
}
