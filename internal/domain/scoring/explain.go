package scoring

import (
	"fmt"
	"strings"

	"github.com/okian/revintel/internal/domain/model"
)

// Explanation thresholds. Check order inside each clause is fixed; the
// rendered text depends on it.
const (
	strongEmailAbove    = 70
	enterpriseEmployees = 500
	lowWebsiteVisits    = 10
	smallCompanyBelow   = 50
)

// leadExplanation renders the deterministic lead score summary: an opening
// sentence, a "Strong signals" clause when any hold, and an "Areas to
// improve" clause for non-hot leads.
func leadExplanation(companyName string, score float64, tier model.LeadTier, signals model.LeadSignals, employeeCount int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s scored %.1f/100 (%s tier).", companyName, score, tier)

	var positives []string
	if signals.DemoRequested {
		positives = append(positives, "demo requested")
	}
	if signals.FreeTrialStarted {
		positives = append(positives, "free trial started")
	}
	if signals.EmailEngagementScore > strongEmailAbove {
		positives = append(positives, "high email engagement")
	}
	if employeeCount >= enterpriseEmployees {
		positives = append(positives, "enterprise size")
	}
	if len(positives) > 0 {
		fmt.Fprintf(&b, " Strong signals: %s.", strings.Join(positives, ", "))
	}

	var concerns []string
	if signals.WebsiteVisits30d < lowWebsiteVisits {
		concerns = append(concerns, "low website engagement")
	}
	if !signals.DemoRequested {
		concerns = append(concerns, "no demo requested")
	}
	if employeeCount < smallCompanyBelow {
		concerns = append(concerns, "small company size")
	}
	if len(concerns) > 0 && tier != model.LeadTierHot {
		fmt.Fprintf(&b, " Areas to improve: %s.", strings.Join(concerns, ", "))
	}

	return b.String()
}
