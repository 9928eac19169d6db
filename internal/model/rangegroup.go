package model

// ComplexityTier classifies a range group by how many catalog products it
// spans. Larger ranges mean more work for the teams handling a notice.
type ComplexityTier string

// Complexity tiers by member product count.
const (
	ComplexitySimple ComplexityTier = "simple" // fewer than 5 products
	ComplexityLow    ComplexityTier = "low"    // fewer than 20 products
	ComplexityMedium ComplexityTier = "medium" // fewer than 50 products
	ComplexityHigh   ComplexityTier = "high"   // 50 products or more
)

// ComplexityForCount maps a product count to its complexity tier.
func ComplexityForCount(n int) ComplexityTier {
	switch {
	case n < 5:
		return ComplexitySimple
	case n < 20:
		return ComplexityLow
	case n < 50:
		return ComplexityMedium
	default:
		return ComplexityHigh
	}
}

// RangeGroup aggregates the match candidates of one query that share a
// (range, sub-range, category) key. One obsolescence notice typically
// implicates an entire range rather than a single SKU, so this is the
// structure surfaced to business users.
type RangeGroup struct {
	BrandDistribution      map[string]int  `json:"brand_distribution"`
	DeviceTypeDistribution map[string]int  `json:"device_type_distribution"`
	RangeLabel             string          `json:"range_label"`
	SubRangeLabel          string          `json:"sub_range_label"`
	CategoryCode           string          `json:"category_code"`
	Complexity             ComplexityTier  `json:"complexity"`
	Members                MatchCandidates `json:"members"`
	ProductCount           int             `json:"product_count"`
	AggregateConfidence    float64         `json:"aggregate_confidence"`
}
