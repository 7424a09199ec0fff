// Package repository defines the record store interface and errors.
package repository

import (
	"time"

	"github.com/okian/revintel/internal/domain/model"
)

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithAccounts seeds the store's account records.
func WithAccounts(accounts []model.Account) Option {
	return func(s *MemoryStore) {
		s.accounts = append([]model.Account(nil), accounts...)
	}
}

// WithLeads seeds the store's lead records.
func WithLeads(leads []model.Lead) Option {
	return func(s *MemoryStore) {
		s.leads = append([]model.Lead(nil), leads...)
	}
}

// WithClock overrides the time source for log timestamps, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}
