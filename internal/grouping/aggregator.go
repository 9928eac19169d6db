// Package grouping aggregates scored match candidates into the range-level
// summaries that business users reason about.
package grouping

import (
	"sort"

	"github.com/catalogmatch/rangemapper/internal/catalog"
	"github.com/catalogmatch/rangemapper/internal/model"
)

// exactMemberBoost is added to a group's aggregate confidence for each
// member with an exact range match, capped at 1.0.
const exactMemberBoost = 0.05

type groupKey struct {
	rangeLabel    string
	subRangeLabel string
	category      string
}

// Group buckets one query's candidates by (range, sub-range, category) and
// computes per-group coverage statistics. Groups are sorted by product count
// descending; ties break by aggregate confidence descending, then range
// label ascending, keeping the output deterministic.
func Group(candidates model.MatchCandidates) []model.RangeGroup {
	if len(candidates) == 0 {
		return nil
	}

	byKey := make(map[groupKey]*model.RangeGroup)
	var order []groupKey

	for _, c := range candidates {
		key := groupKey{
			rangeLabel:    catalog.Normalize(c.Product.RangeLabel),
			subRangeLabel: catalog.Normalize(c.Product.SubRangeLabel),
			category:      catalog.Normalize(c.Product.CategoryCode),
		}

		group, ok := byKey[key]
		if !ok {
			group = &model.RangeGroup{
				RangeLabel:             c.Product.RangeLabel,
				SubRangeLabel:          c.Product.SubRangeLabel,
				CategoryCode:           c.Product.CategoryCode,
				BrandDistribution:      make(map[string]int),
				DeviceTypeDistribution: make(map[string]int),
			}
			byKey[key] = group
			order = append(order, key)
		}

		group.Members = append(group.Members, c)
		group.ProductCount++
		if c.Product.Brand != "" {
			group.BrandDistribution[c.Product.Brand]++
		}
		if c.Product.DeviceType != "" {
			group.DeviceTypeDistribution[c.Product.DeviceType]++
		}
	}

	groups := make([]model.RangeGroup, 0, len(byKey))
	for _, key := range order {
		group := byKey[key]
		group.AggregateConfidence = aggregateConfidence(group.Members)
		group.Complexity = model.ComplexityForCount(group.ProductCount)
		groups = append(groups, *group)
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].ProductCount != groups[j].ProductCount {
			return groups[i].ProductCount > groups[j].ProductCount
		}
		if groups[i].AggregateConfidence != groups[j].AggregateConfidence {
			return groups[i].AggregateConfidence > groups[j].AggregateConfidence
		}
		return groups[i].RangeLabel < groups[j].RangeLabel
	})

	return groups
}

// aggregateConfidence is the mean member confidence, boosted for each exact
// range match and capped at 1.0.
func aggregateConfidence(members model.MatchCandidates) float64 {
	if len(members) == 0 {
		return 0
	}

	var sum float64
	exactMatches := 0
	for _, m := range members {
		sum += m.Confidence
		if m.ExactRangeMatch {
			exactMatches++
		}
	}

	confidence := sum/float64(len(members)) + float64(exactMatches)*exactMemberBoost
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}
