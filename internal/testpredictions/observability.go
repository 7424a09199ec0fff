package testpredictions

import (
	"context"
	"fmt"
	"log"
)

// queryPredictionLog retrieves the most recent prediction log entries.
func queryPredictionLog(ctx context.Context, config *Config, stats *Stats) ([]LogEntry, error) {
	log.Printf("📜 Querying last %d prediction log entries...", config.LogLimit)

	client := newHTTPClient(config.Timeout)
	url := fmt.Sprintf("%s/v1/predictions?limit=%d", config.BaseURL, config.LogLimit)

	var entries []LogEntry
	if err := getJSON(ctx, client, url, &entries); err != nil {
		return nil, fmt.Errorf("failed to query prediction log: %w", err)
	}

	stats.LogEntriesRetrieved = len(entries)
	log.Printf("✅ Retrieved %d log entries", len(entries))
	return entries, nil
}

// fetchModelInfo retrieves model metadata and health.
func fetchModelInfo(ctx context.Context, config *Config) (Metadata, Health, error) {
	log.Println("🩺 Fetching model metadata and health...")

	client := newHTTPClient(config.Timeout)

	var metadata Metadata
	if err := getJSON(ctx, client, config.BaseURL+"/v1/model/metadata", &metadata); err != nil {
		return Metadata{}, Health{}, fmt.Errorf("failed to fetch model metadata: %w", err)
	}

	var health Health
	if err := getJSON(ctx, client, config.BaseURL+"/v1/model/health", &health); err != nil {
		return Metadata{}, Health{}, fmt.Errorf("failed to fetch model health: %w", err)
	}

	log.Printf("✅ Model %s (trained %s): drift %s, %d predictions in 24h, uptime %.2fh",
		metadata.ModelVersion, metadata.TrainingDate, metadata.DriftStatus,
		health.PredictionCount24h, health.UptimeHours)

	if len(health.Alerts) > 0 {
		for _, alert := range health.Alerts {
			log.Printf("🚨 Alert: %s", alert)
		}
	}

	return metadata, health, nil
}
