// Package modernize recommends currently commercialized replacements for
// obsolete catalog products.
package modernize

import (
	"sort"

	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/model"
)

// DefaultMaxSuggestions is the number of replacement candidates returned.
const DefaultMaxSuggestions = 3

// Recommender searches the catalog index for active products that can
// replace an obsolete one. It never proposes a product from the obsolete
// range itself.
type Recommender struct {
	maxSuggestions int
}

// NewRecommender creates a recommender returning up to maxSuggestions
// candidates. A non-positive value falls back to DefaultMaxSuggestions.
func NewRecommender(maxSuggestions int) *Recommender {
	if maxSuggestions <= 0 {
		maxSuggestions = DefaultMaxSuggestions
	}
	return &Recommender{maxSuggestions: maxSuggestions}
}

// Recommend returns replacement suggestions for an obsolete product, ranked
// by shared-attribute overlap and by product volume within the candidate's
// own range. Only currently commercialized products in the same category
// qualify, and the obsolete product's own range is always excluded.
func (r *Recommender) Recommend(ix *catalog.Index, obsolete *model.CatalogProduct) []model.ModernizationSuggestion {
	if obsolete == nil {
		return nil
	}

	obsoleteRange := catalog.Normalize(obsolete.RangeLabel)
	deviceType := catalog.Normalize(obsolete.DeviceType)
	brand := catalog.Normalize(obsolete.Brand)
	subRange := catalog.Normalize(obsolete.SubRangeLabel)

	var suggestions []model.ModernizationSuggestion

	for _, i := range ix.ByCategory(obsolete.CategoryCode) {
		row := ix.Row(i)
		product := row.Product

		if !product.IsActive() {
			continue
		}
		if obsoleteRange != "" && row.Range == obsoleteRange {
			continue
		}
		if deviceType != "" && catalog.Normalize(product.DeviceType) != deviceType {
			continue
		}

		shared := []string{"category"}
		differing := 0

		if deviceType != "" {
			shared = append(shared, "device_type")
		} else if catalog.Normalize(product.DeviceType) != "" {
			differing++
		}
		if brand != "" && catalog.Normalize(product.Brand) == brand {
			shared = append(shared, "brand")
		} else {
			differing++
		}
		if subRange != "" && row.SubRange == subRange {
			shared = append(shared, "sub_range")
		} else {
			differing++
		}

		volume := ix.RangeProductCount(product.RangeLabel)
		score := float64(len(shared))*0.25 + volumeWeight(volume)

		suggestions = append(suggestions, model.ModernizationSuggestion{
			Product:             product,
			SharedAttributes:    shared,
			Score:               score,
			MigrationComplexity: complexityForDiffs(differing),
		})
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Product.Identifier < suggestions[j].Product.Identifier
	})

	if len(suggestions) > r.maxSuggestions {
		suggestions = suggestions[:r.maxSuggestions]
	}
	return suggestions
}

// volumeWeight rewards replacements from well-populated ranges without
// letting volume dominate attribute overlap.
func volumeWeight(volume int) float64 {
	return float64(volume) / float64(volume+10) * 0.25
}

// complexityForDiffs maps the count of differing technical attributes to a
// migration complexity label.
func complexityForDiffs(differing int) model.MigrationComplexity {
	switch {
	case differing == 0:
		return model.MigrationLow
	case differing == 1:
		return model.MigrationMedium
	default:
		return model.MigrationHigh
	}
}
