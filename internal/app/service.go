// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"math"
	"sync"
	"time"

	repository "github.com/okian/revintel/internal/adapters/repository"
	"github.com/okian/revintel/internal/config"
	"github.com/okian/revintel/internal/domain/model"
	"github.com/okian/revintel/internal/domain/scoring"
	"github.com/okian/revintel/internal/domain/types"
	"github.com/okian/revintel/pkg/logger"
	"github.com/okian/revintel/pkg/metrics"
)

// Default query limit for the prediction log.
const defaultQueryLimit = 10

// driftAlert is surfaced through the health report when prediction volume
// crosses the configured threshold.
const driftAlert = "High prediction volume - monitoring for drift"

// Service implements the API dependencies for the revenue intelligence system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	engine *scoring.Engine

	// Configuration
	cfg *config.Config

	// State
	started   bool
	startTime time.Time

	// Logging
	logger logger.Logger

	now func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithConfig sets the service configuration.
func WithConfig(cfg *config.Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithStore sets a custom record store. When unset, Start seeds an
// in-memory store with the sample CRM data.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source, for deterministic uptime in tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:    config.New(),
		logger: nil, // Will be replaced when service starts
		now:    time.Now,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting revenue intelligence service...")

	// Initialize components
	if s.store == nil {
		s.store = repository.NewMemoryStore(
			repository.WithAccounts(repository.SeedAccounts()),
			repository.WithLeads(repository.SeedLeads()),
		)
		s.logger.Info(ctx, "using in-memory record store with sample CRM data")
	}

	engine, err := scoring.New(
		scoring.WithWeights(scoring.Weights{
			CompanySize: s.cfg.LeadScoreWeights.CompanySize,
			Engagement:  s.cfg.LeadScoreWeights.EngagementSignals,
			IndustryFit: s.cfg.LeadScoreWeights.IndustryFit,
			Intent:      s.cfg.LeadScoreWeights.IntentSignals,
		}),
		scoring.WithLeadTiers(scoring.LeadTiers{
			Hot:  s.cfg.LeadTierThresholds.Hot,
			Warm: s.cfg.LeadTierThresholds.Warm,
		}),
		scoring.WithRiskTiers(scoring.RiskTiers{
			Critical: s.cfg.ChurnRiskThresholds.Critical,
			High:     s.cfg.ChurnRiskThresholds.High,
			Medium:   s.cfg.ChurnRiskThresholds.Medium,
		}),
		scoring.WithProbabilityTiers(scoring.ProbabilityTiers{
			High:   s.cfg.ConversionThresholds.High,
			Medium: s.cfg.ConversionThresholds.Medium,
		}),
		scoring.WithIndustryFitScores(s.cfg.IndustryFitScores),
		scoring.WithSizeBands(sizeBands(s.cfg.CompanySizeBands), s.cfg.CompanySizeFloor),
		scoring.WithModelVersion(s.cfg.ModelVersion),
		scoring.WithTrialDay(s.cfg.TrialDay),
	)
	if err != nil {
		return err
	}
	s.engine = engine

	s.startTime = s.now()
	s.started = true

	accounts := len(s.store.ListAccounts(ctx))
	leads := len(s.store.ListLeads(ctx))
	metrics.UpdateTotalAccounts(accounts)
	metrics.UpdateTotalLeads(leads)

	s.logger.Info(ctx, "revenue intelligence service started",
		logger.String("modelVersion", s.cfg.ModelVersion),
		logger.Int("accounts", accounts),
		logger.Int("leads", leads),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping revenue intelligence service...")
	s.started = false
	s.logger.Info(context.Background(), "revenue intelligence service stopped")
}

func sizeBands(bands []config.SizeBand) []scoring.SizeBand {
	out := make([]scoring.SizeBand, len(bands))
	for i, b := range bands {
		out[i] = scoring.SizeBand{MinEmployees: b.MinEmployees, Score: b.Score}
	}
	return out
}

// ScoreLead scores a lead from its attributes and engagement signals, and
// appends the prediction to the log.
func (s *Service) ScoreLead(ctx context.Context, companyName string, signals model.LeadSignals, industry string, employeeCount int) (model.PredictionResult, error) {
	if err := s.ready(); err != nil {
		return model.PredictionResult{}, err
	}

	start := s.now()
	result := s.engine.ScoreLead(companyName, signals, industry, employeeCount)
	metrics.RecordPrediction(model.PredictionTypeLeadScore)
	metrics.RecordPredictionLatency(model.PredictionTypeLeadScore, float64(s.now().Sub(start).Microseconds())/1000)
	metrics.RecordLeadTier(string(result.Tier))

	s.logPrediction(ctx, model.PredictionTypeLeadScore, map[string]any{
		"company_name":   companyName,
		"signals":        signals,
		"industry":       industry,
		"employee_count": employeeCount,
	}, result)

	s.logger.Debug(ctx, "scored lead",
		logger.String("company", companyName),
		logger.Float64("score", result.Score),
		logger.String("tier", string(result.Tier)),
	)

	return result, nil
}

// ChurnRiskByAccount assesses churn risk for an account, and appends the
// prediction to the log.
func (s *Service) ChurnRiskByAccount(ctx context.Context, accountID string) (model.ChurnResult, error) {
	if err := s.ready(); err != nil {
		return model.ChurnResult{}, err
	}

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		metrics.RecordLookupError("account")
		return model.ChurnResult{}, err
	}

	start := s.now()
	result := s.engine.DetectChurnRisk(account)
	metrics.RecordPrediction(model.PredictionTypeChurnRisk)
	metrics.RecordPredictionLatency(model.PredictionTypeChurnRisk, float64(s.now().Sub(start).Microseconds())/1000)
	metrics.RecordChurnTier(string(result.RiskTier))

	s.logPrediction(ctx, model.PredictionTypeChurnRisk, map[string]any{
		"account_id": accountID,
	}, result)

	s.logger.Debug(ctx, "assessed churn risk",
		logger.String("accountID", accountID),
		logger.Float64("riskScore", result.RiskScore),
		logger.String("riskTier", string(result.RiskTier)),
	)

	return result, nil
}

// ConversionInsightsByAccount predicts trial conversion probability for an
// account. Only trial accounts qualify; others get a NotTrialError.
func (s *Service) ConversionInsightsByAccount(ctx context.Context, accountID string) (model.ConversionResult, error) {
	if err := s.ready(); err != nil {
		return model.ConversionResult{}, err
	}

	account, err := s.store.GetAccount(ctx, accountID)
	if err != nil {
		metrics.RecordLookupError("account")
		return model.ConversionResult{}, err
	}

	if account.Plan != model.PlanTrial {
		metrics.RecordPlanGateRefusal()
		return model.ConversionResult{}, &NotTrialError{AccountID: accountID, Plan: account.Plan}
	}

	start := s.now()
	result := s.engine.ConversionProbability(account)
	metrics.RecordPrediction(model.PredictionTypeConversionProbability)
	metrics.RecordPredictionLatency(model.PredictionTypeConversionProbability, float64(s.now().Sub(start).Microseconds())/1000)
	metrics.RecordConversionTier(string(result.ProbabilityTier))

	s.logPrediction(ctx, model.PredictionTypeConversionProbability, map[string]any{
		"account_id": accountID,
	}, result)

	s.logger.Debug(ctx, "predicted conversion probability",
		logger.String("accountID", accountID),
		logger.Float64("probability", result.ConversionProbability),
		logger.String("tier", string(result.ProbabilityTier)),
	)

	return result, nil
}

// LogPrediction stores an externally produced prediction in the log.
func (s *Service) LogPrediction(ctx context.Context, predictionType string, input map[string]any, result any) (model.PredictionLog, error) {
	if err := s.ready(); err != nil {
		return model.PredictionLog{}, err
	}

	switch predictionType {
	case model.PredictionTypeLeadScore, model.PredictionTypeChurnRisk, model.PredictionTypeConversionProbability:
	default:
		return model.PredictionLog{}, ErrUnknownPredictionType
	}

	entry, err := s.store.AppendPrediction(ctx, predictionType, input, result, s.cfg.ModelVersion)
	if err != nil {
		return model.PredictionLog{}, err
	}
	metrics.UpdatePredictionLogSize(s.store.PredictionCount24h(ctx))
	return entry, nil
}

// QueryPredictions returns prediction log entries, newest first, optionally
// filtered by type. A non-positive limit falls back to the default; limits
// above the configured cap are clamped.
func (s *Service) QueryPredictions(ctx context.Context, predictionType string, limit int) ([]model.PredictionLog, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultQueryLimit
	}
	if limit > s.cfg.MaxLogQueryLimit {
		limit = s.cfg.MaxLogQueryLimit
	}

	return s.store.QueryPredictions(ctx, predictionType, limit)
}

// GetAccount returns one CRM account by id.
func (s *Service) GetAccount(ctx context.Context, id string) (model.Account, error) {
	if err := s.ready(); err != nil {
		return model.Account{}, err
	}

	account, err := s.store.GetAccount(ctx, id)
	if err != nil {
		metrics.RecordLookupError("account")
		return model.Account{}, err
	}
	return account, nil
}

// ListAccounts returns all CRM accounts.
func (s *Service) ListAccounts(ctx context.Context) ([]model.Account, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.ListAccounts(ctx), nil
}

// AccountsByStatus returns CRM accounts filtered by lifecycle status.
func (s *Service) AccountsByStatus(ctx context.Context, status string) ([]model.Account, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.AccountsByStatus(ctx, status), nil
}

// GetLead returns one CRM lead by id.
func (s *Service) GetLead(ctx context.Context, id string) (model.Lead, error) {
	if err := s.ready(); err != nil {
		return model.Lead{}, err
	}

	lead, err := s.store.GetLead(ctx, id)
	if err != nil {
		metrics.RecordLookupError("lead")
		return model.Lead{}, err
	}
	return lead, nil
}

// ListLeads returns all CRM leads.
func (s *Service) ListLeads(ctx context.Context) ([]model.Lead, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.store.ListLeads(ctx), nil
}

// ModelMetadata returns model version, training date, evaluation metrics,
// feature importances, and the volume-proxy drift status.
func (s *Service) ModelMetadata(ctx context.Context) (model.ModelMetadata, error) {
	if err := s.ready(); err != nil {
		return model.ModelMetadata{}, err
	}

	driftStatus := "normal"
	if s.store.PredictionCount24h(ctx) >= s.cfg.DriftWarningVolume {
		driftStatus = "warning"
	}

	return model.ModelMetadata{
		ModelVersion:       s.cfg.ModelVersion,
		TrainingDate:       s.cfg.TrainingDate,
		PerformanceMetrics: s.cfg.PerformanceMetrics,
		FeatureImportance:  s.cfg.FeatureImportance,
		DriftStatus:        driftStatus,
	}, nil
}

// ModelHealth returns uptime, 24h prediction volume, and drift alerts.
func (s *Service) ModelHealth(ctx context.Context) (types.HealthReport, error) {
	if err := s.ready(); err != nil {
		return types.HealthReport{}, err
	}

	s.mu.RLock()
	startTime := s.startTime
	s.mu.RUnlock()

	uptimeHours := s.now().Sub(startTime).Seconds() / 3600
	count := s.store.PredictionCount24h(ctx)
	driftDetected := count > s.cfg.DriftWarningVolume
	metrics.UpdateDriftWarning(driftDetected)

	alerts := []string{}
	if driftDetected {
		alerts = append(alerts, driftAlert)
	}

	return types.HealthReport{
		ModelVersion:       s.cfg.ModelVersion,
		UptimeHours:        math.Round(uptimeHours*100) / 100,
		PredictionCount24h: count,
		DriftDetected:      driftDetected,
		AccuracyLast7d:     s.cfg.PerformanceMetrics["accuracy"],
		PerformanceMetrics: s.cfg.PerformanceMetrics,
		Alerts:             alerts,
	}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":       s.started,
		"model_version": s.cfg.ModelVersion,
	}

	if s.started {
		accounts := len(s.store.ListAccounts(ctx))
		leads := len(s.store.ListLeads(ctx))
		logged := s.store.PredictionCount24h(ctx)

		stats["accounts"] = accounts
		stats["leads"] = leads
		stats["predictions_logged"] = logged

		// Update metrics
		metrics.UpdateTotalAccounts(accounts)
		metrics.UpdateTotalLeads(leads)
		metrics.UpdatePredictionLogSize(logged)
	}

	return stats
}

// ready reports whether the service has been started.
func (s *Service) ready() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started {
		return ErrNotStarted
	}
	return nil
}

// logPrediction appends a prediction to the log. Logging failures are
// reported but never fail the prediction itself.
func (s *Service) logPrediction(ctx context.Context, predictionType string, input map[string]any, result any) {
	if _, err := s.store.AppendPrediction(ctx, predictionType, input, result, s.cfg.ModelVersion); err != nil {
		metrics.RecordPredictionError(predictionType)
		s.logger.Warn(ctx, "failed to append prediction log",
			logger.String("predictionType", predictionType),
			logger.Error(err),
		)
		return
	}
	metrics.UpdatePredictionLogSize(s.store.PredictionCount24h(ctx))
}
