// Package scoring implements the prediction engines.
package scoring

import "time"

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithWeights sets the lead score blending weights.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		e.weights = w
	}
}

// WithLeadTiers sets the lead tier thresholds.
func WithLeadTiers(t LeadTiers) Option {
	return func(e *Engine) {
		e.leadTiers = t
	}
}

// WithRiskTiers sets the churn risk tier thresholds.
func WithRiskTiers(t RiskTiers) Option {
	return func(e *Engine) {
		e.riskTiers = t
	}
}

// WithProbabilityTiers sets the conversion probability tier thresholds.
func WithProbabilityTiers(t ProbabilityTiers) Option {
	return func(e *Engine) {
		e.probTiers = t
	}
}

// WithIndustryFitScores sets the industry fit table from a configuration map.
// The "default" entry, when present, becomes the fallback for unknown
// industries. The map is copied to avoid external modification.
func WithIndustryFitScores(scores map[string]float64) Option {
	return func(e *Engine) {
		e.industryFit = make(map[string]float64, len(scores))
		for industry, score := range scores {
			if industry == "default" {
				e.industryDflt = score
				continue
			}
			e.industryFit[industry] = score
		}
	}
}

// WithSizeBands sets the company-size buckets (sorted by MinEmployees
// descending) and the floor score below the smallest band.
func WithSizeBands(bands []SizeBand, floor float64) Option {
	return func(e *Engine) {
		if len(bands) > 0 {
			e.sizeBands = append([]SizeBand(nil), bands...)
		}
		e.sizeFloor = floor
	}
}

// WithModelVersion sets the version stamped onto every result.
func WithModelVersion(version string) Option {
	return func(e *Engine) {
		if version != "" {
			e.modelVersion = version
		}
	}
}

// WithTrialDay sets the reported day-of-trial for conversion insights.
func WithTrialDay(day int) Option {
	return func(e *Engine) {
		if day > 0 {
			e.trialDay = day
		}
	}
}

// WithClock overrides the time source, for deterministic timestamps in tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}
