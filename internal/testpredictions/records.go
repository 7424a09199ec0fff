package testpredictions

import (
	"context"
	"fmt"
	"log"
)

// fetchAccounts retrieves all accounts from the record store.
func fetchAccounts(ctx context.Context, config *Config, stats *Stats) ([]Account, error) {
	log.Println("📇 Fetching accounts...")

	client := newHTTPClient(config.Timeout)

	var accounts []Account
	if err := getJSON(ctx, client, config.BaseURL+"/v1/accounts", &accounts); err != nil {
		return nil, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	stats.AccountsFetched = len(accounts)
	log.Printf("✅ Retrieved %d accounts", len(accounts))
	return accounts, nil
}

// fetchLeads retrieves all leads from the record store.
func fetchLeads(ctx context.Context, config *Config, stats *Stats) ([]Lead, error) {
	log.Println("📇 Fetching leads...")

	client := newHTTPClient(config.Timeout)

	var leads []Lead
	if err := getJSON(ctx, client, config.BaseURL+"/v1/leads", &leads); err != nil {
		return nil, fmt.Errorf("failed to fetch leads: %w", err)
	}

	stats.LeadsFetched = len(leads)
	log.Printf("✅ Retrieved %d leads", len(leads))
	return leads, nil
}
