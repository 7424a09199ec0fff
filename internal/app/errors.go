package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the service facade.
var (
	ErrNotStarted            = errors.New("service not started")
	ErrUnknownPredictionType = errors.New("unknown prediction type")
)

// NotTrialError reports a conversion insight request for an account that is
// not on a trial plan. This is a business outcome, not a fault; the gateway
// renders it as a structured error payload.
type NotTrialError struct {
	AccountID string
	Plan      string
}

func (e *NotTrialError) Error() string {
	return fmt.Sprintf("Account %s is not a trial account (plan: %s)", e.AccountID, e.Plan)
}

// BusinessRefusal marks the error as a structured business outcome for the
// gateway, which renders it in the response body instead of a 4xx/5xx.
func (e *NotTrialError) BusinessRefusal() {}
