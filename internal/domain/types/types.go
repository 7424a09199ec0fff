// Package types contains common types used across the application
package types

// HealthReport summarizes model serving health for monitoring.
type HealthReport struct {
	ModelVersion       string             `json:"model_version"`
	UptimeHours        float64            `json:"uptime_hours"`
	PredictionCount24h int                `json:"prediction_count_24h"`
	DriftDetected      bool               `json:"drift_detected"`
	AccuracyLast7d     float64            `json:"accuracy_last_7d"`
	PerformanceMetrics map[string]float64 `json:"performance_metrics"`
	Alerts             []string           `json:"alerts"`
}
