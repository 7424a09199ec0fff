// Package repository defines the record store interface and errors.
// It stands in for the CRM and prediction-log backends; in production this
// would front a database or data warehouse.
package repository

import (
	"context"

	"github.com/okian/revintel/internal/domain/model"
)

// Store provides read access to CRM records and append/query access to the
// prediction log.
type Store interface {
	// GetAccount returns the account with the given id.
	// Returns ErrAccountNotFound if the id is unknown.
	GetAccount(ctx context.Context, id string) (model.Account, error)

	// GetLead returns the lead with the given id.
	// Returns ErrLeadNotFound if the id is unknown.
	GetLead(ctx context.Context, id string) (model.Lead, error)

	// ListAccounts returns all accounts.
	ListAccounts(ctx context.Context) []model.Account

	// ListLeads returns all leads.
	ListLeads(ctx context.Context) []model.Lead

	// AccountsByStatus returns accounts filtered by status.
	AccountsByStatus(ctx context.Context, status string) []model.Account

	// AppendPrediction stores a prediction log entry, assigning its log id
	// and timestamp. The log is append-only; entries are never mutated.
	AppendPrediction(ctx context.Context, predictionType string, input map[string]any, result any, modelVersion string) (model.PredictionLog, error)

	// QueryPredictions returns up to limit log entries, newest first,
	// optionally filtered by prediction type ("" matches all).
	QueryPredictions(ctx context.Context, predictionType string, limit int) ([]model.PredictionLog, error)

	// PredictionCount24h returns the number of predictions in the last 24
	// hours. The in-memory store reports the total count as a proxy.
	PredictionCount24h(ctx context.Context) int
}
