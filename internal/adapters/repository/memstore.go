package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/revintel/internal/domain/model"
)

// MemoryStore implements Store over in-memory slices. Accounts and leads are
// read-only after construction; the prediction log is the single shared
// mutable resource and is guarded by the mutex.
type MemoryStore struct {
	accounts []model.Account
	leads    []model.Lead

	mu   sync.RWMutex
	logs []model.PredictionLog

	now func() time.Time
}

// NewMemoryStore creates a store, empty unless seeded via options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		now: time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// GetAccount returns the account with the given id, or ErrAccountNotFound.
func (s *MemoryStore) GetAccount(_ context.Context, id string) (model.Account, error) {
	for _, account := range s.accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return model.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
}

// GetLead returns the lead with the given id, or ErrLeadNotFound.
func (s *MemoryStore) GetLead(_ context.Context, id string) (model.Lead, error) {
	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, nil
		}
	}
	return model.Lead{}, fmt.Errorf("%w: %s", ErrLeadNotFound, id)
}

// ListAccounts returns a copy of all accounts.
func (s *MemoryStore) ListAccounts(_ context.Context) []model.Account {
	return append([]model.Account(nil), s.accounts...)
}

// ListLeads returns a copy of all leads.
func (s *MemoryStore) ListLeads(_ context.Context) []model.Lead {
	return append([]model.Lead(nil), s.leads...)
}

// AccountsByStatus returns accounts matching the given status.
func (s *MemoryStore) AccountsByStatus(_ context.Context, status string) []model.Account {
	var out []model.Account
	for _, account := range s.accounts {
		if account.Status == status {
			out = append(out, account)
		}
	}
	return out
}

// AppendPrediction stores a log entry with a generated id and timestamp.
func (s *MemoryStore) AppendPrediction(_ context.Context, predictionType string, input map[string]any, result any, modelVersion string) (model.PredictionLog, error) {
	entry := model.PredictionLog{
		LogID:            uuid.NewString(),
		Timestamp:        s.now().UTC().Format(time.RFC3339Nano),
		PredictionType:   predictionType,
		InputData:        input,
		PredictionResult: result,
		ModelVersion:     modelVersion,
	}

	s.mu.Lock()
	s.logs = append(s.logs, entry)
	s.mu.Unlock()

	return entry, nil
}

// QueryPredictions returns up to limit entries, newest first. An empty
// predictionType matches all entries.
func (s *MemoryStore) QueryPredictions(_ context.Context, predictionType string, limit int) ([]model.PredictionLog, error) {
	if limit < 1 {
		return nil, ErrInvalidLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// Appends are in timestamp order, so walking backwards yields newest first.
	out := make([]model.PredictionLog, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		if predictionType != "" && s.logs[i].PredictionType != predictionType {
			continue
		}
		out = append(out, s.logs[i])
	}
	return out, nil
}

// PredictionCount24h reports total logged predictions. Filtering by
// timestamp is the production backend's job.
func (s *MemoryStore) PredictionCount24h(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.logs)
}
