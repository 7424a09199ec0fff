package model

// LeadTier buckets a lead score.
type LeadTier string

// Lead tiers from best to worst.
const (
	LeadTierHot  LeadTier = "hot"
	LeadTierWarm LeadTier = "warm"
	LeadTierCold LeadTier = "cold"
)

// RiskTier buckets a churn risk score.
type RiskTier string

// Churn risk tiers from worst to best.
const (
	RiskTierCritical RiskTier = "critical"
	RiskTierHigh     RiskTier = "high"
	RiskTierMedium   RiskTier = "medium"
	RiskTierLow      RiskTier = "low"
)

// ProbabilityTier buckets a conversion probability.
type ProbabilityTier string

// Conversion probability tiers.
const (
	ProbabilityTierHigh   ProbabilityTier = "high"
	ProbabilityTierMedium ProbabilityTier = "medium"
	ProbabilityTierLow    ProbabilityTier = "low"
)

// Impact labels a feature attribution's direction.
type Impact string

// Impact values.
const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// FeatureAttribution explains how much one input feature contributed to a
// composite score. Contribution is in percentage points of the final score.
type FeatureAttribution struct {
	FeatureName  string  `json:"feature_name"`
	Contribution float64 `json:"contribution"`
	Value        any     `json:"value"`
	Impact       Impact  `json:"impact"`
}

// PredictionResult is the outcome of scoring a lead. Immutable once produced.
type PredictionResult struct {
	Score               float64              `json:"score"`
	Tier                LeadTier             `json:"tier"`
	FeatureAttributions []FeatureAttribution `json:"feature_attributions"`
	Explanation         string               `json:"explanation"`
	ModelVersion        string               `json:"model_version"`
	Timestamp           string               `json:"timestamp"`
}

// ChurnResult is the outcome of a churn risk assessment.
type ChurnResult struct {
	AccountID              string   `json:"account_id"`
	Company                string   `json:"company"`
	RiskScore              float64  `json:"risk_score"`
	RiskTier               RiskTier `json:"risk_tier"`
	DecliningSignals       []string `json:"declining_signals"`
	SuggestedInterventions []string `json:"suggested_interventions"`
	ModelVersion           string   `json:"model_version"`
	Timestamp              string   `json:"timestamp"`
}

// ConversionResult is the outcome of a trial conversion prediction.
type ConversionResult struct {
	AccountID             string          `json:"account_id"`
	Company               string          `json:"company"`
	TrialDay              int             `json:"trial_day"`
	ConversionProbability float64         `json:"conversion_probability"`
	ProbabilityTier       ProbabilityTier `json:"probability_tier"`
	KeyEngagementSignals  []string        `json:"key_engagement_signals"`
	RecommendedActions    []string        `json:"recommended_actions"`
	ModelVersion          string          `json:"model_version"`
	Timestamp             string          `json:"timestamp"`
}

// Prediction types recorded in the log.
const (
	PredictionTypeLeadScore             = "lead_score"
	PredictionTypeChurnRisk             = "churn_risk"
	PredictionTypeConversionProbability = "conversion_probability"
)

// PredictionLog is one append-only log entry, used for monitoring and drift
// detection.
type PredictionLog struct {
	LogID            string         `json:"log_id"`
	Timestamp        string         `json:"timestamp"`
	PredictionType   string         `json:"prediction_type"`
	InputData        map[string]any `json:"input_data"`
	PredictionResult any            `json:"prediction_result"`
	ModelVersion     string         `json:"model_version"`
}

// ModelMetadata describes the scoring model for the metadata resource.
type ModelMetadata struct {
	ModelVersion       string             `json:"model_version"`
	TrainingDate       string             `json:"training_date"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics"`
	FeatureImportance  map[string]float64 `json:"feature_importance"`
	DriftStatus        string             `json:"drift_status"`
}
