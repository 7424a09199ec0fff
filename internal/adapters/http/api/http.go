// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	repository "github.com/okian/revintel/internal/adapters/repository"
	"github.com/okian/revintel/internal/domain/model"
	"github.com/okian/revintel/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Prediction tools.
	ScoreLead(ctx context.Context, companyName string, signals model.LeadSignals, industry string, employeeCount int) (model.PredictionResult, error)
	ChurnRiskByAccount(ctx context.Context, accountID string) (model.ChurnResult, error)
	ConversionInsightsByAccount(ctx context.Context, accountID string) (model.ConversionResult, error)

	// Prediction log.
	LogPrediction(ctx context.Context, predictionType string, input map[string]any, result any) (model.PredictionLog, error)
	QueryPredictions(ctx context.Context, predictionType string, limit int) ([]model.PredictionLog, error)

	// CRM record resources.
	GetAccount(ctx context.Context, id string) (model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	AccountsByStatus(ctx context.Context, status string) ([]model.Account, error)
	GetLead(ctx context.Context, id string) (model.Lead, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)

	// Model monitoring resources.
	ModelMetadata(ctx context.Context) (model.ModelMetadata, error)
	ModelHealth(ctx context.Context) (types.HealthReport, error)
}

// validate is the shared request validator. validator.Validate is
// concurrency-safe and caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	scoreLeadHandler   *ScoreLeadHandler
	churnRiskHandler   *ChurnRiskHandler
	conversionHandler  *ConversionHandler
	predictionsHandler *PredictionsHandler
	recordsHandler     *RecordsHandler
	modelHandler       *ModelHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		scoreLeadHandler:   NewScoreLeadHandler(deps),
		churnRiskHandler:   NewChurnRiskHandler(deps),
		conversionHandler:  NewConversionHandler(deps),
		predictionsHandler: NewPredictionsHandler(deps),
		recordsHandler:     NewRecordsHandler(deps),
		modelHandler:       NewModelHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/v1/tools/score-lead", MetricsMiddleware(s.scoreLeadHandler.HandleScoreLead, "score_lead"))
	mux.HandleFunc("/v1/tools/churn-risk", MetricsMiddleware(s.churnRiskHandler.HandleChurnRisk, "churn_risk"))
	mux.HandleFunc("/v1/tools/conversion-insights", MetricsMiddleware(s.conversionHandler.HandleConversionInsights, "conversion_insights"))
	mux.HandleFunc("/v1/predictions/log", MetricsMiddleware(s.predictionsHandler.HandleLogPrediction, "log_prediction"))
	mux.HandleFunc("/v1/predictions", MetricsMiddleware(s.predictionsHandler.HandleQueryPredictions, "query_predictions"))
	mux.HandleFunc("/v1/model/metadata", MetricsMiddleware(s.modelHandler.HandleMetadata, "model_metadata"))
	mux.HandleFunc("/v1/model/health", MetricsMiddleware(s.modelHandler.HandleModelHealth, "model_health"))
	mux.HandleFunc("/v1/accounts", MetricsMiddleware(s.recordsHandler.HandleListAccounts, "accounts"))
	mux.HandleFunc("/v1/accounts/", MetricsMiddleware(s.recordsHandler.HandleGetAccount, "account"))
	mux.HandleFunc("/v1/leads", MetricsMiddleware(s.recordsHandler.HandleListLeads, "leads"))
	mux.HandleFunc("/v1/leads/", MetricsMiddleware(s.recordsHandler.HandleGetLead, "lead"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound reports whether err is a record-store miss, so handlers can
// translate it to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrAccountNotFound) ||
		errors.Is(err, repository.ErrLeadNotFound)
}
