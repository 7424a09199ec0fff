// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/revintel/internal/domain/model"
)

// ConversionDependencies defines the interface for conversion predictions.
type ConversionDependencies interface {
	ConversionInsightsByAccount(ctx context.Context, accountID string) (model.ConversionResult, error)
}

// conversionRequest mirrors the conversion-insights tool input.
type conversionRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// refusalError matches business refusals (e.g. a non-trial account asking
// for conversion insights). These are rendered as a 200 with a structured
// error payload, not as HTTP faults.
type refusalError interface {
	error
	BusinessRefusal()
}

// refusalResponse is the structured payload for a business refusal.
type refusalResponse struct {
	Error string `json:"error"`
}

// ConversionHandler handles conversion insight requests.
type ConversionHandler struct {
	deps ConversionDependencies
}

// NewConversionHandler creates a new conversion-insights handler.
func NewConversionHandler(deps ConversionDependencies) *ConversionHandler {
	return &ConversionHandler{deps: deps}
}

// HandleConversionInsights handles POST /v1/tools/conversion-insights requests.
func (h *ConversionHandler) HandleConversionInsights(w http.ResponseWriter, r *http.Request) {
	const op = "api.conversion_insights"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req conversionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}

	result, err := h.deps.ConversionInsightsByAccount(r.Context(), req.AccountID)
	if err != nil {
		var refusal refusalError
		if errors.As(err, &refusal) {
			writeJSON(w, http.StatusOK, refusalResponse{Error: refusal.Error()})
			return
		}
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
