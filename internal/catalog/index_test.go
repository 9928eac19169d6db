package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catalogmatch/rangemapper/internal/common"
	"github.com/catalogmatch/rangemapper/internal/model"
)

func testSnapshot() []model.CatalogProduct {
	return []model.CatalogProduct{
		{Identifier: "MGAL6K250", RangeLabel: "Galaxy", SubRangeLabel: "6000", Description: "MGE Galaxy 6000 250VA", CategoryCode: "SPIBS", Brand: "MGE", DeviceType: "UPS"},
		{Identifier: "MGAL6K500", RangeLabel: "Galaxy", SubRangeLabel: "6000", Description: "MGE Galaxy 6000 500VA", CategoryCode: "SPIBS", Brand: "MGE", DeviceType: "UPS"},
		{Identifier: "SEP40A", RangeLabel: "Sepam", SubRangeLabel: "40", Description: "Sepam series 40 protection relay", CategoryCode: "PRELAY", Brand: "Schneider", DeviceType: "Protection Relay"},
		{Identifier: "TSX5720", RangeLabel: "Premium", SubRangeLabel: "57", Description: "TSX Premium 57 PLC", CategoryCode: "PLC", Brand: "Telemecanique", DeviceType: "PLC"},
	}
}

func TestBuildRejectsEmptySnapshot(t *testing.T) {
	_, err := Build(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)

	_, err = Build([]model.CatalogProduct{})
	assert.ErrorIs(t, err, common.ErrEmptyCatalog)
}

func TestBuildCopiesSnapshot(t *testing.T) {
	snapshot := testSnapshot()
	ix, err := Build(snapshot)
	require.NoError(t, err)

	snapshot[0].Identifier = "MUTATED"
	assert.Equal(t, "MGAL6K250", ix.Row(0).Product.Identifier)
}

func TestByCategory(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	tests := []struct {
		name string
		code string
		want int
	}{
		{name: "known category", code: "SPIBS", want: 2},
		{name: "case insensitive", code: "spibs", want: 2},
		{name: "single row category", code: "PRELAY", want: 1},
		{name: "unknown category", code: "NOPE", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.ByCategory(tt.code).Len())
		})
	}
}

func TestByCategoryMonotonicNarrowing(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	for _, code := range []string{"SPIBS", "PRELAY", "PLC", "NOPE"} {
		byCategory := ix.ByCategory(code)
		assert.LessOrEqual(t, byCategory.Len(), ix.Len())

		byRange := ix.ByCategoryAndRange(code, "Galaxy")
		assert.LessOrEqual(t, byRange.Len(), byCategory.Len())
	}
}

func TestByCategoryAndRange(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	tests := []struct {
		name      string
		code      string
		rangeText string
		want      int
	}{
		{name: "exact match", code: "SPIBS", rangeText: "Galaxy", want: 2},
		{name: "containment target in row", code: "SPIBS", rangeText: "MGE Galaxy", want: 2},
		{name: "containment row in target", code: "PLC", rangeText: "Prem", want: 1},
		{name: "no match is empty", code: "SPIBS", rangeText: "Sepam", want: 0},
		{name: "unknown category", code: "NOPE", rangeText: "Galaxy", want: 0},
		{name: "empty range text", code: "SPIBS", rangeText: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.ByCategoryAndRange(tt.code, tt.rangeText).Len())
		})
	}
}

func TestFullTextSearch(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		want  int
	}{
		{name: "description token", token: "GALAXY", want: 2},
		{name: "identifier token", token: "SEP40A", want: 1},
		{name: "substring of vocabulary word", token: "GALAX", want: 2},
		{name: "case insensitive", token: "galaxy", want: 2},
		{name: "no hit", token: "XYZZY", want: 0},
		{name: "empty token", token: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ix.FullTextSearch(tt.token).Len())
		})
	}
}

func TestRangeProductCount(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	assert.Equal(t, 2, ix.RangeProductCount("Galaxy"))
	assert.Equal(t, 2, ix.RangeProductCount("galaxy"))
	assert.Equal(t, 1, ix.RangeProductCount("Sepam"))
	assert.Equal(t, 0, ix.RangeProductCount("Nope"))
}

func TestStats(t *testing.T) {
	ix, err := Build(testSnapshot())
	require.NoError(t, err)

	stats := ix.Stats()
	assert.Equal(t, 4, stats.Rows)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, 3, stats.Ranges)
	assert.Equal(t, ix.Version(), stats.Version)
	assert.False(t, stats.BuiltAt.IsZero())
}

func TestVersionsAreMonotonic(t *testing.T) {
	first, err := Build(testSnapshot())
	require.NoError(t, err)

	second, err := Build(testSnapshot())
	require.NoError(t, err)

	assert.Greater(t, second.Version(), first.Version())
}
