package testpredictions

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// scoreLeads scores every lead concurrently using worker pools.
func scoreLeads(ctx context.Context, config *Config, leads []Lead, stats *Stats) ([]ScoredLead, error) {
	log.Printf("🎯 Scoring %d leads with %d workers...", len(leads), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/v1/tools/score-lead"

	scored := make([]ScoredLead, len(leads))
	var (
		succeeded int64
		failed    int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	leadChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range leadChan {
				select {
				case <-ctx.Done():
					return
				default:
					lead := leads[index]
					req := ScoreRequest{
						CompanyName:   lead.Company,
						Signals:       lead.Signals,
						Industry:      lead.Industry,
						EmployeeCount: lead.EmployeeCount,
					}

					var result ScoreResult
					if err := postJSON(ctx, client, url, req, &result); err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Failed to score %s: %v", lead.ID, err)
						}
						continue
					}

					scored[index] = ScoredLead{
						LeadID:  lead.ID,
						Company: lead.Company,
						Score:   result.Score,
						Tier:    result.Tier,
					}
					atomic.AddInt64(&succeeded, 1)

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						succ := atomic.LoadInt64(&succeeded)
						fail := atomic.LoadInt64(&failed)
						log.Printf("📊 Scoring progress: %d/%d (success: %d, failed: %d)",
							succ+fail, len(leads), succ, fail)
					}
				}
			}
		}(i)
	}

	// Send lead indices to workers
	go func() {
		defer close(leadChan)
		for i := range leads {
			select {
			case <-ctx.Done():
				return
			case leadChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Filter out empty entries (failed scorings)
	validScored := make([]ScoredLead, 0, len(scored))
	for _, s := range scored {
		if s.LeadID != "" {
			validScored = append(validScored, s)
		}
	}

	stats.LeadsScored = len(validScored)
	stats.ScoreFailures = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Lead scoring completed:
   Scored: %d
   Failed: %d
`, stats.LeadsScored, stats.ScoreFailures)

	return validScored, nil
}

// churnAccounts analyzes churn risk for every account concurrently.
func churnAccounts(ctx context.Context, config *Config, accounts []Account, stats *Stats) ([]ChurnResult, error) {
	log.Printf("⚠️  Analyzing churn risk for %d accounts with %d workers...", len(accounts), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/v1/tools/churn-risk"

	results := make([]ChurnResult, len(accounts))
	var (
		analyzed int64
		failed   int64
	)

	accountChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for index := range accountChan {
				select {
				case <-ctx.Done():
					return
				default:
					account := accounts[index]

					var result ChurnResult
					if err := postJSON(ctx, client, url, ChurnRequest{AccountID: account.ID}, &result); err != nil {
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("⚠️  Failed to analyze %s: %v", account.ID, err)
						}
						continue
					}

					results[index] = result
					atomic.AddInt64(&analyzed, 1)
				}
			}
		}(i)
	}

	go func() {
		defer close(accountChan)
		for i := range accounts {
			select {
			case <-ctx.Done():
				return
			case accountChan <- i:
			}
		}
	}()

	wg.Wait()

	validResults := make([]ChurnResult, 0, len(results))
	for _, r := range results {
		if r.AccountID != "" {
			validResults = append(validResults, r)
		}
	}

	stats.ChurnAnalyzed = len(validResults)
	stats.ChurnFailures = int(atomic.LoadInt64(&failed))

	log.Printf(`✅ Churn analysis completed:
   Analyzed: %d
   Failed: %d
`, stats.ChurnAnalyzed, stats.ChurnFailures)

	return validResults, nil
}

// conversionInsights requests conversion insights for every account.
// Non-trial accounts are expected to be refused with a plan-gate message.
func conversionInsights(ctx context.Context, config *Config, accounts []Account, stats *Stats) ([]ConversionResult, error) {
	log.Printf("📈 Requesting conversion insights for %d accounts...", len(accounts))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/v1/tools/conversion-insights"

	results := make([]ConversionResult, 0, len(accounts))
	refused := 0

	for _, account := range accounts {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		var result ConversionResult
		if err := postJSON(ctx, client, url, ChurnRequest{AccountID: account.ID}, &result); err != nil {
			log.Printf("⚠️  Conversion insights failed for %s: %v", account.ID, err)
			continue
		}

		if result.Error != "" {
			refused++
			if config.Verbose {
				log.Printf("🚫 %s refused: %s", account.ID, result.Error)
			}
			continue
		}

		results = append(results, result)
		if config.Verbose {
			log.Printf("📈 %s: probability %.2f (%s), trial day %d",
				account.ID, result.ConversionProbability, result.ProbabilityTier, result.TrialDay)
		}
	}

	stats.ConversionAnalyzed = len(results)
	stats.ConversionRefused = refused

	log.Printf(`✅ Conversion insights completed:
   Trials analyzed: %d
   Refused (non-trial): %d
`, stats.ConversionAnalyzed, stats.ConversionRefused)

	return results, nil
}
