// Package model contains domain models passed between layers.
package model

// Plan names used by account records.
const (
	PlanTrial        = "trial"
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"
)

// Account status values.
const (
	StatusActive  = "active"
	StatusTrial   = "trial"
	StatusAtRisk  = "at_risk"
	StatusChurned = "churned"
)

// UsageSignals holds usage metrics for an account. Absent metrics stay at
// their zero value; NPSScore is nil when the account has no survey response.
type UsageSignals struct {
	DailyActiveUsers  int  `json:"daily_active_users"`
	FeaturesAdopted   int  `json:"features_adopted"`
	APICallsPerDay    int  `json:"api_calls_per_day"`
	SupportTickets30d int  `json:"support_tickets_30d"`
	NPSScore          *int `json:"nps_score"`
	LoginFrequency7d  int  `json:"login_frequency_7d"`
}

// Account is a customer account with business metrics.
type Account struct {
	ID          string       `json:"id"`
	Company     string       `json:"company"`
	Plan        string       `json:"plan"`
	MRR         float64      `json:"mrr"`
	CreatedDate string       `json:"created_date"`
	Industry    string       `json:"industry"`
	Status      string       `json:"status"`
	Usage       UsageSignals `json:"usage_signals"`
}

// LeadSignals holds engagement signals for a lead. Missing signals default
// to zero/false so every scoring call is total over any well-typed input.
type LeadSignals struct {
	WebsiteVisits30d     int     `json:"website_visits_30d"`
	DemoRequested        bool    `json:"demo_requested"`
	WhitepaperDownloads  int     `json:"whitepaper_downloads"`
	EmailEngagementScore float64 `json:"email_engagement_score"`
	LinkedinEngagement   bool    `json:"linkedin_engagement"`
	FreeTrialStarted     bool    `json:"free_trial_started"`
}

// Lead is a potential customer.
type Lead struct {
	ID            string      `json:"id"`
	Company       string      `json:"company"`
	Industry      string      `json:"industry"`
	EmployeeCount int         `json:"employee_count"`
	Signals       LeadSignals `json:"signals"`
	ContactName   string      `json:"contact_name"`
	ContactTitle  string      `json:"contact_title"`
}
