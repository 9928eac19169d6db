package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusIsObsolete(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "obsolete", status: "Obsolete", want: true},
		{name: "end of life", status: "End of Life", want: true},
		{name: "hyphenated end of life", status: "end-of-life", want: true},
		{name: "withdrawn with suffix", status: "Withdrawn from sale", want: true},
		{name: "discontinued", status: "DISCONTINUED", want: true},
		{name: "phase out", status: "Phase out planned", want: true},
		{name: "commercialised", status: "Commercialised", want: false},
		{name: "unknown status", status: "pending review", want: false},
		{name: "empty", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusIsObsolete(tt.status))
		})
	}
}

func TestStatusIsActive(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   bool
	}{
		{name: "commercialised", status: "Commercialised", want: true},
		{name: "american spelling", status: "commercialized", want: true},
		{name: "active", status: "Active", want: true},
		{name: "available", status: "Available to order", want: true},
		{name: "obsolete", status: "Obsolete", want: false},
		{name: "unknown", status: "under review", want: false},
		{name: "empty", status: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusIsActive(tt.status))
		})
	}
}

func TestLetterProductQueryValidate(t *testing.T) {
	tests := []struct {
		name    string
		query   LetterProductQuery
		wantErr bool
	}{
		{
			name:  "identifier only",
			query: LetterProductQuery{Identifier: "MGAL6K250"},
		},
		{
			name:  "range only",
			query: LetterProductQuery{RangeLabel: "Galaxy"},
		},
		{
			name:    "description only is not identifying",
			query:   LetterProductQuery{Description: "uninterruptible power supply"},
			wantErr: true,
		},
		{
			name:    "whitespace identifier",
			query:   LetterProductQuery{Identifier: "   "},
			wantErr: true,
		},
		{
			name:    "empty query",
			query:   LetterProductQuery{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestComplexityForCount(t *testing.T) {
	assert.Equal(t, ComplexitySimple, ComplexityForCount(4))
	assert.Equal(t, ComplexityLow, ComplexityForCount(5))
	assert.Equal(t, ComplexityLow, ComplexityForCount(19))
	assert.Equal(t, ComplexityMedium, ComplexityForCount(20))
	assert.Equal(t, ComplexityMedium, ComplexityForCount(49))
	assert.Equal(t, ComplexityHigh, ComplexityForCount(50))
}
