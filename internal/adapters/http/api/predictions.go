// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/okian/revintel/internal/domain/model"
)

// PredictionLogDependencies defines the interface for the prediction log.
type PredictionLogDependencies interface {
	LogPrediction(ctx context.Context, predictionType string, input map[string]any, result any) (model.PredictionLog, error)
	QueryPredictions(ctx context.Context, predictionType string, limit int) ([]model.PredictionLog, error)
}

// logPredictionRequest mirrors the log-prediction tool input.
type logPredictionRequest struct {
	PredictionType   string         `json:"prediction_type" validate:"required,oneof=lead_score churn_risk conversion_probability"`
	InputData        map[string]any `json:"input_data" validate:"required"`
	PredictionResult map[string]any `json:"prediction_result" validate:"required"`
}

// logPredictionResponse acks a stored log entry.
type logPredictionResponse struct {
	LogID              string `json:"log_id"`
	Timestamp          string `json:"timestamp"`
	StoredSuccessfully bool   `json:"stored_successfully"`
}

// PredictionsHandler handles prediction log requests.
type PredictionsHandler struct {
	deps PredictionLogDependencies
}

// NewPredictionsHandler creates a new predictions handler.
func NewPredictionsHandler(deps PredictionLogDependencies) *PredictionsHandler {
	return &PredictionsHandler{deps: deps}
}

// HandleLogPrediction handles POST /v1/predictions/log requests.
func (h *PredictionsHandler) HandleLogPrediction(w http.ResponseWriter, r *http.Request) {
	const op = "api.log_prediction"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req logPredictionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}

	entry, err := h.deps.LogPrediction(r.Context(), req.PredictionType, req.InputData, req.PredictionResult)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, logPredictionResponse{
		LogID:              entry.LogID,
		Timestamp:          entry.Timestamp,
		StoredSuccessfully: true,
	})
}

// HandleQueryPredictions handles GET /v1/predictions?type=&limit= requests.
func (h *PredictionsHandler) HandleQueryPredictions(w http.ResponseWriter, r *http.Request) {
	const op = "api.query_predictions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	predictionType := r.URL.Query().Get("type")
	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
			return
		}
		limit = n
	}

	logs, err := h.deps.QueryPredictions(r.Context(), predictionType, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, logs)
}
