package scoring

import (
	"github.com/okian/revintel/internal/domain/model"
)

// ScoreLead composes company-size, engagement, industry-fit, and intent
// sub-scores into a weighted lead score with tier, per-feature attributions,
// and a human-readable explanation. Pure: logging and prediction-log writes
// are the caller's responsibility.
func (e *Engine) ScoreLead(companyName string, signals model.LeadSignals, industry string, employeeCount int) model.PredictionResult {
	attributions := make([]model.FeatureAttribution, 0, 8)

	// 1. Company size.
	sizeScore := e.companySizeScore(employeeCount)
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "company_size",
		Contribution: e.weights.CompanySize * maxScore,
		Value:        employeeCount,
		Impact:       impactAbove(sizeScore, subScorePositiveAbove),
	})

	// 2. Engagement signals, with display contributions rescaled by the
	// global engagement weight.
	engScore, engAttrs := engagementScore(signals)
	for _, attr := range engAttrs {
		attr.Contribution *= e.weights.Engagement
		attributions = append(attributions, attr)
	}

	// 3. Industry fit.
	industryScore := e.industryFitScore(industry)
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "industry_fit",
		Contribution: e.weights.IndustryFit * maxScore,
		Value:        industry,
		Impact:       impactAbove(industryScore, subScorePositiveAbove),
	})

	// 4. Intent signals.
	intScore, intAttrs := intentScore(signals)
	for _, attr := range intAttrs {
		attr.Contribution *= e.weights.Intent
		attributions = append(attributions, attr)
	}

	final := sizeScore*e.weights.CompanySize +
		engScore*e.weights.Engagement +
		industryScore*e.weights.IndustryFit +
		intScore*e.weights.Intent

	tier := e.leadTier(final)

	return model.PredictionResult{
		Score:               round2(final),
		Tier:                tier,
		FeatureAttributions: attributions,
		Explanation:         leadExplanation(companyName, final, tier, signals, employeeCount),
		ModelVersion:        e.modelVersion,
		Timestamp:           e.timestamp(),
	}
}

// companySizeScore maps an employee count onto the configured step function.
func (e *Engine) companySizeScore(employeeCount int) float64 {
	for _, band := range e.sizeBands {
		if employeeCount >= band.MinEmployees {
			return band.Score
		}
	}
	return e.sizeFloor
}

// industryFitScore looks up an industry, falling back to the default score
// for unknown industries. Never an error.
func (e *Engine) industryFitScore(industry string) float64 {
	if score, ok := e.industryFit[industry]; ok {
		return score
	}
	return e.industryDflt
}

func (e *Engine) leadTier(score float64) model.LeadTier {
	switch {
	case score >= e.leadTiers.Hot:
		return model.LeadTierHot
	case score >= e.leadTiers.Warm:
		return model.LeadTierWarm
	default:
		return model.LeadTierCold
	}
}
