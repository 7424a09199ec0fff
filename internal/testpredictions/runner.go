package testpredictions

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/okian/revintel/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete prediction test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting revintel prediction test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.Int("topN", config.TopN),
		logger.Int("logLimit", config.LogLimit),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Fetch the seeded CRM records
	accounts, err := fetchAccounts(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("account retrieval failed: %w", err)
	}

	leads, err := fetchLeads(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("lead retrieval failed: %w", err)
	}

	// Step 3: Score all leads concurrently
	scored, err := scoreLeads(ctx, config, leads, stats)
	if err != nil {
		return fmt.Errorf("lead scoring failed: %w", err)
	}

	// Step 4: Analyze churn risk for all accounts
	churn, err := churnAccounts(ctx, config, accounts, stats)
	if err != nil {
		return fmt.Errorf("churn analysis failed: %w", err)
	}

	// Step 5: Request conversion insights (non-trial accounts are refused)
	if _, err := conversionInsights(ctx, config, accounts, stats); err != nil {
		return fmt.Errorf("conversion insights failed: %w", err)
	}

	// Step 6: Query the prediction log
	entries, err := queryPredictionLog(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("prediction log query failed: %w", err)
	}

	// Step 7: Check model metadata and health
	if _, _, err := fetchModelInfo(ctx, config); err != nil {
		return fmt.Errorf("model info retrieval failed: %w", err)
	}

	// Step 8: Verify results
	if err := verifyResults(ctx, config, scored, churn, entries, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 9: Save scored leads to file
	if err := saveScoredLeadsToFile(ctx, config, scored); err != nil {
		logger.Get().Warn(ctx, "failed to save scored leads to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveScoredLeadsToFile saves the scored leads to a JSON file.
func saveScoredLeadsToFile(ctx context.Context, config *Config, scored []ScoredLead) error {
	if len(scored) == 0 {
		return fmt.Errorf("no scored leads to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "scored_leads_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write scored leads to file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	// Write JSON array
	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}

	for i, lead := range scored {
		jsonData, err := marshalJSON(lead)
		if err != nil {
			return fmt.Errorf("failed to marshal lead %d: %w", i, err)
		}

		if _, err := file.Write(jsonData); err != nil {
			return fmt.Errorf("failed to write lead %d: %w", i, err)
		}

		// Add comma except for last entry
		if i < len(scored)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write comma: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}

	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "scored leads saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var scoreRate, predictionsPerSecond float64

	attempted := stats.LeadsScored + stats.ScoreFailures
	if attempted > 0 {
		scoreRate = float64(stats.LeadsScored) / float64(attempted) * PercentageMultiplier
	}

	totalPredictions := stats.LeadsScored + stats.ChurnAnalyzed + stats.ConversionAnalyzed
	if stats.Duration > 0 {
		predictionsPerSecond = float64(totalPredictions) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("accountsFetched", stats.AccountsFetched),
		logger.Int("leadsFetched", stats.LeadsFetched),
		logger.Int("leadsScored", stats.LeadsScored),
		logger.Int("scoreFailures", stats.ScoreFailures),
		logger.Int("churnAnalyzed", stats.ChurnAnalyzed),
		logger.Int("churnFailures", stats.ChurnFailures),
		logger.Int("conversionAnalyzed", stats.ConversionAnalyzed),
		logger.Int("conversionRefused", stats.ConversionRefused),
		logger.Int("logEntriesRetrieved", stats.LogEntriesRetrieved),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("scoreSuccessRate", scoreRate),
		logger.Float64("predictionsPerSecond", predictionsPerSecond))
}
