// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Model constants (weights, thresholds, tables) live here, never in engine logic.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// LeadScoreWeights blends the four lead sub-scores. Values must sum to 1.0;
// Validate enforces this at load time so the engines never have to.
type LeadScoreWeights struct {
	CompanySize       float64 `koanf:"company_size"`
	EngagementSignals float64 `koanf:"engagement_signals"`
	IndustryFit       float64 `koanf:"industry_fit"`
	IntentSignals     float64 `koanf:"intent_signals"`
}

// Sum returns the total of all four weights.
func (w LeadScoreWeights) Sum() float64 {
	return w.CompanySize + w.EngagementSignals + w.IndustryFit + w.IntentSignals
}

// LeadTierThresholds sets the closed-below boundaries for lead tiers.
type LeadTierThresholds struct {
	Hot  float64 `koanf:"hot"`
	Warm float64 `koanf:"warm"`
}

// ChurnRiskThresholds sets the closed-below boundaries for churn risk tiers.
type ChurnRiskThresholds struct {
	Critical float64 `koanf:"critical"`
	High     float64 `koanf:"high"`
	Medium   float64 `koanf:"medium"`
}

// ConversionThresholds sets the closed-below boundaries for conversion
// probability tiers.
type ConversionThresholds struct {
	High   float64 `koanf:"high"`
	Medium float64 `koanf:"medium"`
}

// SizeBand maps a minimum employee count to a company-size sub-score.
// Bands are checked in order, so they must be sorted by MinEmployees descending.
type SizeBand struct {
	MinEmployees int     `koanf:"min_employees"`
	Score        float64 `koanf:"score"`
}

// Config contains process and model configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ModelVersion is stamped onto every prediction result.
	ModelVersion string `koanf:"model_version"`

	// TrainingDate records when the model constants were last tuned.
	TrainingDate string `koanf:"training_date"`

	// TrialDay is the reported day-of-trial for conversion insights. It is a
	// stand-in constant; deriving it from the account's creation date is a
	// known gap in the model, not in this config.
	TrialDay int `koanf:"trial_day"`

	// DriftWarningVolume flips the drift status to "warning" once the 24h
	// prediction count crosses it. A volume proxy, not a distribution check.
	DriftWarningVolume int `koanf:"drift_warning_volume"`

	// MaxLogQueryLimit caps GET /v1/predictions?limit.
	MaxLogQueryLimit int `koanf:"max_log_query_limit"`

	// LeadScoreWeights blends company size, engagement, industry fit, and
	// intent into the final lead score.
	LeadScoreWeights LeadScoreWeights `koanf:"lead_score_weights"`

	// LeadTierThresholds buckets lead scores into hot/warm/cold.
	LeadTierThresholds LeadTierThresholds `koanf:"lead_tier_thresholds"`

	// ChurnRiskThresholds buckets risk scores into critical/high/medium/low.
	ChurnRiskThresholds ChurnRiskThresholds `koanf:"churn_risk_thresholds"`

	// ConversionThresholds buckets probabilities into high/medium/low.
	ConversionThresholds ConversionThresholds `koanf:"conversion_thresholds"`

	// IndustryFitScores maps industry names to fit sub-scores. The "default"
	// entry is the fallback for unknown industries.
	IndustryFitScores map[string]float64 `koanf:"industry_fit_scores"`

	// CompanySizeBands maps employee-count floors to size sub-scores,
	// sorted by MinEmployees descending.
	CompanySizeBands []SizeBand `koanf:"company_size_bands"`

	// CompanySizeFloor is the size sub-score below the smallest band.
	CompanySizeFloor float64 `koanf:"company_size_floor"`

	// PerformanceMetrics holds the model's last offline evaluation numbers,
	// exposed through the metadata resource.
	PerformanceMetrics map[string]float64 `koanf:"performance_metrics"`

	// FeatureImportance holds per-feature importances from training,
	// exposed through the metadata resource.
	FeatureImportance map[string]float64 `koanf:"feature_importance"`
}

// New creates a Config with the current model defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":9080",
		ModelVersion:       "v1.2.3",
		TrainingDate:       "2024-10-15",
		TrialDay:           10,
		DriftWarningVolume: 1000,
		MaxLogQueryLimit:   100,
		LeadScoreWeights: LeadScoreWeights{
			CompanySize:       0.20,
			EngagementSignals: 0.40,
			IndustryFit:       0.20,
			IntentSignals:     0.20,
		},
		LeadTierThresholds:   LeadTierThresholds{Hot: 70, Warm: 40},
		ChurnRiskThresholds:  ChurnRiskThresholds{Critical: 70, High: 50, Medium: 30},
		ConversionThresholds: ConversionThresholds{High: 0.70, Medium: 0.40},
		IndustryFitScores: map[string]float64{
			"technology":            90,
			"saas":                  85,
			"data_analytics":        95,
			"finance":               80,
			"healthcare":            75,
			"insurance":             75,
			"manufacturing":         70,
			"energy":                70,
			"professional_services": 65,
			"education":             60,
			"retail":                55,
			"logistics":             50,
			"real_estate":           45,
			"agriculture":           40,
			"hospitality":           35,
			"nonprofit":             30,
			"default":               50,
		},
		CompanySizeBands: []SizeBand{
			{MinEmployees: 1000, Score: 100},
			{MinEmployees: 500, Score: 90},
			{MinEmployees: 200, Score: 80},
			{MinEmployees: 100, Score: 70},
			{MinEmployees: 50, Score: 60},
			{MinEmployees: 20, Score: 50},
		},
		CompanySizeFloor: 30,
		PerformanceMetrics: map[string]float64{
			"accuracy":  0.89,
			"precision": 0.85,
			"recall":    0.82,
			"f1_score":  0.83,
			"roc_auc":   0.91,
		},
		FeatureImportance: map[string]float64{
			"email_engagement_score": 0.25,
			"website_visits":         0.18,
			"demo_requested":         0.15,
			"employee_count":         0.12,
			"free_trial_started":     0.10,
			"whitepaper_downloads":   0.08,
			"linkedin_engagement":    0.07,
			"industry_fit":           0.05,
		},
	}
}
