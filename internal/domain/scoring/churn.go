package scoring

import (
	"github.com/okian/revintel/internal/domain/model"
)

// riskReason tags one churn rule firing. Display text and interventions are
// separate renderings of the code, so neither couples to the other's wording.
type riskReason int

const (
	reasonVeryLowDAU riskReason = iota
	reasonLowDAU
	reasonDetractorNPS
	reasonBelowAverageNPS
	reasonHighTicketVolume
	reasonElevatedTickets
	reasonDecliningLogins
	reasonLowFeatureAdoption
)

// text renders the declining-signal string for a reason.
func (r riskReason) text() string {
	switch r {
	case reasonVeryLowDAU:
		return "Very low daily active users"
	case reasonLowDAU:
		return "Low daily active users"
	case reasonDetractorNPS:
		return "Low NPS score (detractor)"
	case reasonBelowAverageNPS:
		return "Below-average NPS"
	case reasonHighTicketVolume:
		return "High support ticket volume"
	case reasonElevatedTickets:
		return "Elevated support tickets"
	case reasonDecliningLogins:
		return "Declining login frequency"
	case reasonLowFeatureAdoption:
		return "Low feature adoption"
	default:
		return "Unknown risk factor"
	}
}

// intervention maps a reason to the suggested remediation.
func (r riskReason) intervention() string {
	switch r {
	case reasonDetractorNPS, reasonBelowAverageNPS, reasonHighTicketVolume, reasonElevatedTickets:
		return "Schedule executive business review to address concerns"
	case reasonVeryLowDAU, reasonLowDAU, reasonDecliningLogins:
		return "Provide personalized onboarding/training session"
	case reasonLowFeatureAdoption:
		return "Demonstrate advanced features relevant to their use case"
	default:
		return ""
	}
}

// Churn rule point values and thresholds. Bands for the same signal are
// checked highest-severity first; at most one fires per signal.
const (
	veryLowDAUBelow  = 5
	veryLowDAUPoints = 30
	lowDAUBelow      = 10
	lowDAUPoints     = 15

	detractorNPSAtMost = 4
	detractorNPSPoints = 25
	belowAvgNPSAtMost  = 6
	belowAvgNPSPoints  = 10

	highTicketsAbove     = 5
	highTicketsPoints    = 20
	elevatedTicketsAbove = 3
	elevatedTicketsPoint = 10

	lowLoginsBelow  = 5
	lowLoginsPoints = 15

	lowAdoptionBelow  = 3
	lowAdoptionPoints = 10
)

const upsellIntervention = "Explore upsell to Professional tier with more features"

// DetectChurnRisk computes an additive risk score over independent rule
// checks, a tier, the declining signals in rule-evaluation order, and a
// deduplicated set of suggested interventions.
func (e *Engine) DetectChurnRisk(account model.Account) model.ChurnResult {
	usage := account.Usage

	var score float64
	var reasons []riskReason

	// Factor 1: low daily active users.
	switch {
	case usage.DailyActiveUsers < veryLowDAUBelow:
		score += veryLowDAUPoints
		reasons = append(reasons, reasonVeryLowDAU)
	case usage.DailyActiveUsers < lowDAUBelow:
		score += lowDAUPoints
		reasons = append(reasons, reasonLowDAU)
	}

	// Factor 2: poor NPS. An absent survey contributes nothing.
	if nps := usage.NPSScore; nps != nil {
		switch {
		case *nps <= detractorNPSAtMost:
			score += detractorNPSPoints
			reasons = append(reasons, reasonDetractorNPS)
		case *nps <= belowAvgNPSAtMost:
			score += belowAvgNPSPoints
			reasons = append(reasons, reasonBelowAverageNPS)
		}
	}

	// Factor 3: high support ticket volume.
	switch {
	case usage.SupportTickets30d > highTicketsAbove:
		score += highTicketsPoints
		reasons = append(reasons, reasonHighTicketVolume)
	case usage.SupportTickets30d > elevatedTicketsAbove:
		score += elevatedTicketsPoint
		reasons = append(reasons, reasonElevatedTickets)
	}

	// Factor 4: declining login frequency.
	if usage.LoginFrequency7d < lowLoginsBelow {
		score += lowLoginsPoints
		reasons = append(reasons, reasonDecliningLogins)
	}

	// Factor 5: low feature adoption.
	if usage.FeaturesAdopted < lowAdoptionBelow {
		score += lowAdoptionPoints
		reasons = append(reasons, reasonLowFeatureAdoption)
	}

	signals := make([]string, 0, len(reasons))
	for _, r := range reasons {
		signals = append(signals, r.text())
	}

	return model.ChurnResult{
		AccountID:              account.ID,
		Company:                account.Company,
		RiskScore:              round2(score),
		RiskTier:               e.riskTier(score),
		DecliningSignals:       signals,
		SuggestedInterventions: e.interventions(reasons, account),
		ModelVersion:           e.modelVersion,
		Timestamp:              e.timestamp(),
	}
}

// interventions maps reasons to remediation suggestions, deduplicated in
// first-seen order, with a plan-specific upsell for starter accounts.
func (e *Engine) interventions(reasons []riskReason, account model.Account) []string {
	seen := make(map[string]struct{}, len(reasons)+1)
	out := make([]string, 0, len(reasons)+1)

	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	for _, r := range reasons {
		add(r.intervention())
	}
	if account.Plan == model.PlanStarter {
		add(upsellIntervention)
	}
	return out
}

func (e *Engine) riskTier(score float64) model.RiskTier {
	switch {
	case score >= e.riskTiers.Critical:
		return model.RiskTierCritical
	case score >= e.riskTiers.High:
		return model.RiskTierHigh
	case score >= e.riskTiers.Medium:
		return model.RiskTierMedium
	default:
		return model.RiskTierLow
	}
}
