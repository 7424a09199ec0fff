package testpredictions

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// verifyResults checks prediction outputs and log consistency.
func verifyResults(ctx context.Context, config *Config, scored []ScoredLead, churn []ChurnResult, entries []LogEntry, stats *Stats) error {
	log.Println("🔍 Verifying results...")

	if len(scored) == 0 {
		return fmt.Errorf("no scored leads to verify")
	}

	// Sort scored leads by score (descending) to get top prospects
	sortedScored := make([]ScoredLead, len(scored))
	copy(sortedScored, scored)
	sort.Slice(sortedScored, func(i, j int) bool {
		return sortedScored[i].Score > sortedScored[j].Score
	})

	// Verify log consistency if we have log data
	if len(entries) > 0 {
		expected := stats.LeadsScored + stats.ChurnAnalyzed + stats.ConversionAnalyzed
		if err := verifyLogConsistency(entries, expected, config.LogLimit); err != nil {
			log.Printf("⚠️  Prediction log consistency warning: %v", err)
		} else {
			log.Println("✅ Prediction log consistency verified")
		}
	}

	displayTopProspects(sortedScored, config.TopN)
	displayTierBreakdown(sortedScored, churn, config.Verbose)

	log.Println("✅ Result verification completed")
	return nil
}

// verifyLogConsistency checks that the prediction log is ordered newest-first
// and covers the predictions made during the test.
func verifyLogConsistency(entries []LogEntry, expected, limit int) error {
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp > entries[i-1].Timestamp {
			return fmt.Errorf("log not ordered newest-first: entry %d is newer than entry %d", i, i-1)
		}
	}

	if expected > limit {
		expected = limit
	}
	if len(entries) < expected {
		return fmt.Errorf("expected at least %d log entries, got %d", expected, len(entries))
	}

	return nil
}

// displayTopProspects shows the highest scoring leads.
func displayTopProspects(sortedScored []ScoredLead, topN int) {
	if len(sortedScored) < topN {
		topN = len(sortedScored)
	}

	log.Printf("🏆 Top %d scored leads:", topN)
	for i := 0; i < topN; i++ {
		lead := sortedScored[i]
		log.Printf("   %d. %s (%s) - Score: %.1f [%s]", i+1, lead.Company, lead.LeadID, lead.Score, lead.Tier)
	}
}

// displayTierBreakdown shows tier distributions for leads and accounts.
func displayTierBreakdown(scored []ScoredLead, churn []ChurnResult, verbose bool) {
	leadTiers := make(map[string]int)
	for _, s := range scored {
		leadTiers[s.Tier]++
	}

	riskTiers := make(map[string]int)
	for _, c := range churn {
		riskTiers[c.RiskTier]++
	}

	log.Printf("📊 Lead tiers: hot=%d warm=%d cold=%d",
		leadTiers["hot"], leadTiers["warm"], leadTiers["cold"])
	log.Printf("📊 Churn risk tiers: critical=%d high=%d medium=%d low=%d",
		riskTiers["critical"], riskTiers["high"], riskTiers["medium"], riskTiers["low"])

	if verbose && len(scored) > 0 {
		// Callers pass leads sorted by score descending.
		avgScore := calculateAverageScore(scored)
		maxScore := scored[0].Score
		minScore := scored[len(scored)-1].Score

		log.Printf(`📊 Score statistics:
   Average: %.1f
   Maximum: %.1f
   Minimum: %.1f
`, avgScore, maxScore, minScore)
	}
}

// calculateAverageScore calculates the average lead score.
func calculateAverageScore(scored []ScoredLead) float64 {
	if len(scored) == 0 {
		return 0
	}

	sum := 0.0
	for _, s := range scored {
		sum += s.Score
	}

	return sum / float64(len(scored))
}
