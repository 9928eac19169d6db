package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/model"
)

func testRow(p model.CatalogProduct) catalog.Row {
	return catalog.Row{
		Product:     &p,
		Range:       catalog.Normalize(p.RangeLabel),
		SubRange:    catalog.Normalize(p.SubRangeLabel),
		Identifier:  catalog.Normalize(p.Identifier),
		Description: catalog.Normalize(p.Description),
		Category:    catalog.Normalize(p.CategoryCode),
	}
}

func TestThresholdsTier(t *testing.T) {
	thresholds := DefaultThresholds()

	tests := []struct {
		name  string
		want  model.ConfidenceTier
		score float64
	}{
		{name: "exact at boundary", score: 0.90, want: model.TierExact},
		{name: "high", score: 0.80, want: model.TierHigh},
		{name: "high at boundary", score: 0.75, want: model.TierHigh},
		{name: "medium", score: 0.65, want: model.TierMedium},
		{name: "low", score: 0.45, want: model.TierLow},
		{name: "uncertain", score: 0.39, want: model.TierUncertain},
		{name: "zero", score: 0.0, want: model.TierUncertain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, thresholds.Tier(tt.score))
		})
	}
}

func TestScorePerfectMatchOnPresentFields(t *testing.T) {
	scorer := NewDefaultScorer()

	query := model.LetterProductQuery{RangeLabel: "Galaxy", SubRangeLabel: "6000", CategoryHint: "SPIBS"}
	terms := catalog.TermsFor(&query)

	row := testRow(model.CatalogProduct{
		Identifier:    "MGAL6K250",
		RangeLabel:    "Galaxy",
		SubRangeLabel: "6000",
		Description:   "MGE Galaxy 6000 250VA",
		CategoryCode:  "SPIBS",
	})

	candidate := scorer.Score(terms, row)

	// Absent query fields are excluded from the denominator, so a perfect
	// match on every present field reaches full confidence.
	assert.InDelta(t, 1.0, candidate.Confidence, 0.001)
	assert.Equal(t, model.TierExact, candidate.Tier)
	assert.True(t, candidate.ExactRangeMatch)
	assert.True(t, candidate.ExactSubRangeMatch)
	assert.True(t, candidate.CategoryMatch)
	assert.Contains(t, candidate.Reasons, "exact range match")
	assert.Contains(t, candidate.Reasons, "exact sub-range match")
	assert.Contains(t, candidate.Reasons, "category match")
}

func TestScoreUnrelatedProduct(t *testing.T) {
	scorer := NewDefaultScorer()

	query := model.LetterProductQuery{RangeLabel: "Galaxy", SubRangeLabel: "6000", CategoryHint: "SPIBS"}
	terms := catalog.TermsFor(&query)

	row := testRow(model.CatalogProduct{
		Identifier:    "TSX5720",
		RangeLabel:    "Premium",
		SubRangeLabel: "57",
		Description:   "TSX Premium 57 PLC",
		CategoryCode:  "PLC",
	})

	candidate := scorer.Score(terms, row)

	assert.Less(t, candidate.Confidence, 0.4)
	assert.Equal(t, model.TierUncertain, candidate.Tier)
	assert.False(t, candidate.ExactRangeMatch)
	assert.False(t, candidate.CategoryMatch)
}

func TestScoreBoundsProperty(t *testing.T) {
	scorer := NewDefaultScorer()

	queries := []model.LetterProductQuery{
		{RangeLabel: "Galaxy"},
		{Identifier: "MGAL6K250"},
		{RangeLabel: "Galaxy", SubRangeLabel: "6000", CategoryHint: "SPIBS", Identifier: "MGAL6K250", Description: "MGE Galaxy 6000"},
		{RangeLabel: "Sepam", CategoryHint: "PRELAY"},
	}
	rows := []catalog.Row{
		testRow(model.CatalogProduct{Identifier: "MGAL6K250", RangeLabel: "Galaxy", SubRangeLabel: "6000", Description: "MGE Galaxy 6000 250VA", CategoryCode: "SPIBS"}),
		testRow(model.CatalogProduct{Identifier: "SEP40A", RangeLabel: "Sepam", SubRangeLabel: "40", CategoryCode: "PRELAY"}),
		testRow(model.CatalogProduct{}),
	}

	for _, q := range queries {
		terms := catalog.TermsFor(&q)
		for _, row := range rows {
			candidate := scorer.Score(terms, row)
			assert.GreaterOrEqual(t, candidate.Confidence, 0.0)
			assert.LessOrEqual(t, candidate.Confidence, 1.0)
		}
	}
}

func TestScoreIdentityProperty(t *testing.T) {
	scorer := NewDefaultScorer()

	product := model.CatalogProduct{
		Identifier:    "MGAL6K250",
		RangeLabel:    "Galaxy",
		SubRangeLabel: "6000",
		Description:   "MGE Galaxy 6000 250VA",
		CategoryCode:  "SPIBS",
	}

	// A query carrying the product's own fields scores 1.0 on every field.
	query := model.LetterProductQuery{
		Identifier:    product.Identifier,
		RangeLabel:    product.RangeLabel,
		SubRangeLabel: product.SubRangeLabel,
		Description:   product.Description,
		CategoryHint:  product.CategoryCode,
	}

	candidate := scorer.Score(catalog.TermsFor(&query), testRow(product))

	assert.InDelta(t, 1.0, candidate.Scores.Range, 0.001)
	assert.InDelta(t, 1.0, candidate.Scores.Identifier, 0.001)
	assert.InDelta(t, 1.0, candidate.Scores.SubRange, 0.001)
	assert.InDelta(t, 1.0, candidate.Scores.Description, 0.001)
	assert.InDelta(t, 1.0, candidate.Confidence, 0.001)
}

func TestScoreExactBonusesBreakNearTies(t *testing.T) {
	scorer := NewDefaultScorer()

	query := model.LetterProductQuery{RangeLabel: "Galaxy"}
	terms := catalog.TermsFor(&query)

	exact := scorer.Score(terms, testRow(model.CatalogProduct{Identifier: "A", RangeLabel: "Galaxy"}))
	near := scorer.Score(terms, testRow(model.CatalogProduct{Identifier: "B", RangeLabel: "Galaxi"}))

	assert.True(t, exact.ExactRangeMatch)
	assert.False(t, near.ExactRangeMatch)
	assert.Greater(t, exact.Confidence, near.Confidence)
}

func TestScoreSemanticBonusForKnownSynonym(t *testing.T) {
	scorer := NewDefaultScorer()

	// Lexically "MGE" and "Galaxy" share nothing, but the synonym table
	// knows the legacy brand prefix.
	query := model.LetterProductQuery{RangeLabel: "MGE"}
	terms := catalog.TermsFor(&query)

	row := testRow(model.CatalogProduct{Identifier: "MGAL6K250", RangeLabel: "Galaxy"})

	candidate := scorer.Score(terms, row)

	require.Greater(t, candidate.SemanticBonus, 0.0)
	assert.Greater(t, candidate.Confidence, 0.1)

	foundReason := false
	for _, reason := range candidate.Reasons {
		if len(reason) > 0 && reason[:5] == "known" {
			foundReason = true
		}
	}
	assert.True(t, foundReason, "expected a synonym reason, got %v", candidate.Reasons)
}

func TestScoreDescriptionCarriesRangeTokens(t *testing.T) {
	scorer := NewDefaultScorer()

	query := model.LetterProductQuery{RangeLabel: "Galaxy", Description: "MGE Galaxy 6000"}
	terms := catalog.TermsFor(&query)

	// The description token set overlaps even though the order differs.
	row := testRow(model.CatalogProduct{Identifier: "X", RangeLabel: "Galaxy", Description: "Galaxy 6000 MGE"})

	candidate := scorer.Score(terms, row)
	assert.InDelta(t, 1.0, candidate.Scores.Description, 0.001)
}
