package repository

import "errors"

// Sentinel kinds for record store errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrLeadNotFound    = errors.New("lead not found")
	ErrInvalidLimit    = errors.New("invalid query limit")
)
