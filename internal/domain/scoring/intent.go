package scoring

import "github.com/okian/revintel/internal/domain/model"

// Intent scoring constants. LinkedIn engagement is currently the only intent
// signal, so its attribution carries the full sub-score.
const (
	linkedinAbsentScore = 40
	intentDisplayWeight = 100.0
)

// intentScore combines buying-intent signals into a 0-100 sub-score.
// Absence of LinkedIn engagement is only mildly negative (40, not 0).
func intentScore(signals model.LeadSignals) (float64, []model.FeatureAttribution) {
	score := float64(linkedinAbsentScore)
	impact := model.ImpactNeutral
	if signals.LinkedinEngagement {
		score = maxScore
		impact = model.ImpactPositive
	}

	attributions := []model.FeatureAttribution{{
		FeatureName:  "linkedin_engagement",
		Contribution: intentDisplayWeight,
		Value:        signals.LinkedinEngagement,
		Impact:       impact,
	}}

	return score, attributions
}
