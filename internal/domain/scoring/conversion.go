package scoring

import (
	"fmt"
	"math"

	"github.com/okian/revintel/internal/domain/model"
)

// Conversion bonus bands. Each signal contributes at most one bonus, highest
// threshold first. Top bands sum to exactly 1.0; the clamp below only matters
// if these constants are ever retuned.
const (
	dauTopBand  = 15
	dauMidBand  = 10
	dauLowBand  = 5
	dauTopBonus = 0.30
	dauMidBonus = 0.20
	dauLowBonus = 0.10

	featuresTopBand  = 5
	featuresMidBand  = 3
	featuresLowBand  = 2
	featuresTopBonus = 0.25
	featuresMidBonus = 0.15
	featuresLowBonus = 0.05

	apiTopBand  = 300
	apiMidBand  = 150
	apiLowBand  = 50
	apiTopBonus = 0.20
	apiMidBonus = 0.10
	apiLowBonus = 0.05

	loginTopBand  = 14
	loginMidBand  = 10
	loginLowBand  = 5
	loginTopBonus = 0.25
	loginMidBonus = 0.15
	loginLowBonus = 0.05
)

// Key-signal thresholds, independent of the bonus bands above.
const (
	keySignalDAU      = 10
	keySignalFeatures = 3
	keySignalAPICalls = 150
)

// ConversionProbability predicts trial-to-paid conversion from usage
// signals: an additive probability (clamped to [0,1]), a tier, the key
// engagement signals, and tier-based recommended actions. The engine does
// not check the account's plan; that gate belongs to the caller.
func (e *Engine) ConversionProbability(account model.Account) model.ConversionResult {
	usage := account.Usage

	var probability float64

	// High DAU is the strongest signal.
	switch {
	case usage.DailyActiveUsers >= dauTopBand:
		probability += dauTopBonus
	case usage.DailyActiveUsers >= dauMidBand:
		probability += dauMidBonus
	case usage.DailyActiveUsers >= dauLowBand:
		probability += dauLowBonus
	}

	// Feature adoption.
	switch {
	case usage.FeaturesAdopted >= featuresTopBand:
		probability += featuresTopBonus
	case usage.FeaturesAdopted >= featuresMidBand:
		probability += featuresMidBonus
	case usage.FeaturesAdopted >= featuresLowBand:
		probability += featuresLowBonus
	}

	// API usage.
	switch {
	case usage.APICallsPerDay >= apiTopBand:
		probability += apiTopBonus
	case usage.APICallsPerDay >= apiMidBand:
		probability += apiMidBonus
	case usage.APICallsPerDay >= apiLowBand:
		probability += apiLowBonus
	}

	// Login frequency.
	switch {
	case usage.LoginFrequency7d >= loginTopBand:
		probability += loginTopBonus
	case usage.LoginFrequency7d >= loginMidBand:
		probability += loginMidBonus
	case usage.LoginFrequency7d >= loginLowBand:
		probability += loginLowBonus
	}

	// Guard against retuned bonus tables exceeding certainty.
	probability = math.Min(1.0, math.Max(0, probability))

	var keySignals []string
	if usage.DailyActiveUsers >= keySignalDAU {
		keySignals = append(keySignals, fmt.Sprintf("Strong daily usage (%d DAU)", usage.DailyActiveUsers))
	}
	if usage.FeaturesAdopted >= keySignalFeatures {
		keySignals = append(keySignals, fmt.Sprintf("Good feature adoption (%d features)", usage.FeaturesAdopted))
	}
	if usage.APICallsPerDay >= keySignalAPICalls {
		keySignals = append(keySignals, fmt.Sprintf("Active API integration (%d calls/day)", usage.APICallsPerDay))
	}

	tier := e.probabilityTier(probability)

	return model.ConversionResult{
		AccountID:             account.ID,
		Company:               account.Company,
		TrialDay:              e.trialDay,
		ConversionProbability: round3(probability),
		ProbabilityTier:       tier,
		KeyEngagementSignals:  keySignals,
		RecommendedActions:    recommendedActions(tier),
		ModelVersion:          e.modelVersion,
		Timestamp:             e.timestamp(),
	}
}

// recommendedActions returns the fixed two-line playbook for a tier.
func recommendedActions(tier model.ProbabilityTier) []string {
	switch tier {
	case model.ProbabilityTierHigh:
		return []string{
			"Send upgrade prompt with success stories",
			"Offer onboarding call to ensure success",
		}
	case model.ProbabilityTierMedium:
		return []string{
			"Provide feature tutorial to drive adoption",
			"Share case study from similar customer",
		}
	default:
		return []string{
			"Increase engagement with personalized outreach",
			"Identify and remove adoption blockers",
		}
	}
}

func (e *Engine) probabilityTier(probability float64) model.ProbabilityTier {
	switch {
	case probability >= e.probTiers.High:
		return model.ProbabilityTierHigh
	case probability >= e.probTiers.Medium:
		return model.ProbabilityTierMedium
	default:
		return model.ProbabilityTierLow
	}
}
