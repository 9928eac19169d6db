// Package scoring combines per-field similarities, category agreement, and
// bonus rules into one calibrated confidence score and tier.
package scoring

import "github.com/catalogmatch/rangemapper/internal/model"

// Weights configures the contribution of each signal to the final score.
// Weights are configuration, not hidden constants; tuning them never
// requires touching calling code.
type Weights struct {
	Range              float64 `json:"range" mapstructure:"range"`
	Description        float64 `json:"description" mapstructure:"description"`
	Identifier         float64 `json:"identifier" mapstructure:"identifier"`
	Category           float64 `json:"category" mapstructure:"category"`
	SubRange           float64 `json:"sub_range" mapstructure:"sub_range"`
	Semantic           float64 `json:"semantic" mapstructure:"semantic"`
	ExactRangeBonus    float64 `json:"exact_range_bonus" mapstructure:"exact_range_bonus"`
	ExactSubRangeBonus float64 `json:"exact_sub_range_bonus" mapstructure:"exact_sub_range_bonus"`
}

// DefaultWeights returns the calibrated default weighting.
func DefaultWeights() Weights {
	return Weights{
		Range:              0.30,
		Description:        0.15,
		Identifier:         0.20,
		Category:           0.10,
		SubRange:           0.15,
		Semantic:           0.10,
		ExactRangeBonus:    0.05,
		ExactSubRangeBonus: 0.05,
	}
}

// Thresholds sets the confidence tier cutoffs. Mapping success requires the
// best match to reach the Medium threshold.
type Thresholds struct {
	Exact  float64 `json:"exact" mapstructure:"exact"`
	High   float64 `json:"high" mapstructure:"high"`
	Medium float64 `json:"medium" mapstructure:"medium"`
	Low    float64 `json:"low" mapstructure:"low"`
}

// DefaultThresholds returns the canonical tier cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Exact:  0.90,
		High:   0.75,
		Medium: 0.60,
		Low:    0.40,
	}
}

// Tier buckets a confidence score.
func (t Thresholds) Tier(score float64) model.ConfidenceTier {
	switch {
	case score >= t.Exact:
		return model.TierExact
	case score >= t.High:
		return model.TierHigh
	case score >= t.Medium:
		return model.TierMedium
	case score >= t.Low:
		return model.TierLow
	default:
		return model.TierUncertain
	}
}
