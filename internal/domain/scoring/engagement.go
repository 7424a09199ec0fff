package scoring

import (
	"math"

	"github.com/okian/revintel/internal/domain/model"
)

// Engagement sub-feature caps and blend weights. The display contributions
// (25/30/20/15/10) sum to 100 and are separate from the blend weights below;
// they exist for attribution readability, not for arithmetic.
const (
	websiteVisitsCap       = 50
	whitepaperDownloadsCap = 5

	websiteBlendWeight    = 0.25
	emailBlendWeight      = 0.30
	demoBlendWeight       = 0.20
	trialBlendWeight      = 0.15
	whitepaperBlendWeight = 0.10

	websiteDisplayWeight    = 25.0
	emailDisplayWeight      = 30.0
	demoDisplayWeight       = 20.0
	trialDisplayWeight      = 15.0
	whitepaperDisplayWeight = 10.0

	websitePositiveAbove    = 20
	emailPositiveAbove      = 60
	whitepaperPositiveAbove = 2
)

// engagementScore combines lead engagement signals into a 0-100 sub-score
// with one attribution per sub-feature, in fixed evaluation order.
func engagementScore(signals model.LeadSignals) (float64, []model.FeatureAttribution) {
	attributions := make([]model.FeatureAttribution, 0, 5)

	// Website visits, capped at 50 visits = 100.
	websiteScore := math.Min(maxScore, float64(signals.WebsiteVisits30d)/websiteVisitsCap*maxScore)
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "website_visits_30d",
		Contribution: websiteDisplayWeight,
		Value:        signals.WebsiteVisits30d,
		Impact:       impactAbove(float64(signals.WebsiteVisits30d), websitePositiveAbove),
	})

	// Email engagement is already on a 0-100 scale.
	emailScore := signals.EmailEngagementScore
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "email_engagement_score",
		Contribution: emailDisplayWeight,
		Value:        signals.EmailEngagementScore,
		Impact:       impactAbove(signals.EmailEngagementScore, emailPositiveAbove),
	})

	// Demo requested: the one signal whose absence reads as negative.
	demoScore := boolScore(signals.DemoRequested)
	demoImpact := model.ImpactNegative
	if signals.DemoRequested {
		demoImpact = model.ImpactPositive
	}
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "demo_requested",
		Contribution: demoDisplayWeight,
		Value:        signals.DemoRequested,
		Impact:       demoImpact,
	})

	// Free trial started.
	trialScore := boolScore(signals.FreeTrialStarted)
	trialImpact := model.ImpactNeutral
	if signals.FreeTrialStarted {
		trialImpact = model.ImpactPositive
	}
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "free_trial_started",
		Contribution: trialDisplayWeight,
		Value:        signals.FreeTrialStarted,
		Impact:       trialImpact,
	})

	// Whitepaper downloads, capped at 5 = 100.
	whitepaperScore := math.Min(maxScore, float64(signals.WhitepaperDownloads)/whitepaperDownloadsCap*maxScore)
	attributions = append(attributions, model.FeatureAttribution{
		FeatureName:  "whitepaper_downloads",
		Contribution: whitepaperDisplayWeight,
		Value:        signals.WhitepaperDownloads,
		Impact:       impactAbove(float64(signals.WhitepaperDownloads), whitepaperPositiveAbove),
	})

	total := websiteScore*websiteBlendWeight +
		emailScore*emailBlendWeight +
		demoScore*demoBlendWeight +
		trialScore*trialBlendWeight +
		whitepaperScore*whitepaperBlendWeight

	return total, attributions
}

func boolScore(b bool) float64 {
	if b {
		return maxScore
	}
	return 0
}

func impactAbove(value, threshold float64) model.Impact {
	if value > threshold {
		return model.ImpactPositive
	}
	return model.ImpactNeutral
}
