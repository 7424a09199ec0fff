package testpredictions

import (
	"encoding/json"
	"time"
)

// Config holds configuration for the prediction test
type Config struct {
	BaseURL    string        // Base URL of the service
	Workers    int           // Number of concurrent workers
	TopN       int           // Number of top scored leads to display
	Timeout    time.Duration // HTTP request timeout
	LogLimit   int           // Number of prediction log entries to query
	OutputFile string        // Output file for scored leads
	LogFile    string        // Log file for test output
	Verbose    bool          // Enable verbose logging
}

// Account is the record shape returned by /v1/accounts
type Account struct {
	ID      string  `json:"id"`
	Company string  `json:"company"`
	Plan    string  `json:"plan"`
	Status  string  `json:"status"`
	MRR     float64 `json:"mrr"`
}

// Lead is the record shape returned by /v1/leads. Signals pass through
// verbatim to the scoring endpoint.
type Lead struct {
	ID            string          `json:"id"`
	Company       string          `json:"company"`
	Industry      string          `json:"industry"`
	EmployeeCount int             `json:"employee_count"`
	Signals       json.RawMessage `json:"signals"`
}

// ScoreRequest is the body for POST /v1/tools/score-lead
type ScoreRequest struct {
	CompanyName   string          `json:"company_name"`
	Signals       json.RawMessage `json:"signals"`
	Industry      string          `json:"industry"`
	EmployeeCount int             `json:"employee_count"`
}

// ScoreResult is the scoring response
type ScoreResult struct {
	Score       float64 `json:"score"`
	Tier        string  `json:"tier"`
	Explanation string  `json:"explanation"`
}

// ChurnRequest is the body for POST /v1/tools/churn-risk
type ChurnRequest struct {
	AccountID string `json:"account_id"`
}

// ChurnResult is the churn analysis response
type ChurnResult struct {
	AccountID string  `json:"account_id"`
	RiskScore float64 `json:"risk_score"`
	RiskTier  string  `json:"risk_tier"`
}

// ConversionResult is the conversion insights response. Error carries the
// refusal message for non-trial accounts.
type ConversionResult struct {
	ConversionProbability float64 `json:"conversion_probability"`
	ProbabilityTier       string  `json:"probability_tier"`
	TrialDay              int     `json:"trial_day"`
	Error                 string  `json:"error"`
}

// LogEntry is a prediction log record from /v1/predictions
type LogEntry struct {
	LogID          string `json:"log_id"`
	PredictionType string `json:"prediction_type"`
	Timestamp      string `json:"timestamp"`
}

// Metadata is the model metadata response
type Metadata struct {
	ModelVersion string `json:"model_version"`
	TrainingDate string `json:"training_date"`
	DriftStatus  string `json:"drift_status"`
}

// Health is the model health response
type Health struct {
	ModelVersion       string   `json:"model_version"`
	UptimeHours        float64  `json:"uptime_hours"`
	PredictionCount24h int      `json:"prediction_count_24h"`
	DriftDetected      bool     `json:"drift_detected"`
	Alerts             []string `json:"alerts"`
}

// ScoredLead pairs a lead with its scoring result
type ScoredLead struct {
	LeadID  string  `json:"lead_id"`
	Company string  `json:"company"`
	Score   float64 `json:"score"`
	Tier    string  `json:"tier"`
}

// Stats holds test statistics
type Stats struct {
	AccountsFetched     int
	LeadsFetched        int
	LeadsScored         int
	ScoreFailures       int
	ChurnAnalyzed       int
	ChurnFailures       int
	ConversionAnalyzed  int
	ConversionRefused   int
	LogEntriesRetrieved int
	StartTime           time.Time
	EndTime             time.Time
	Duration            time.Duration
}
