// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/revintel/internal/domain/model"
)

// ChurnRiskDependencies defines the interface for churn risk assessment.
type ChurnRiskDependencies interface {
	ChurnRiskByAccount(ctx context.Context, accountID string) (model.ChurnResult, error)
}

// churnRiskRequest mirrors the churn-risk tool input.
type churnRiskRequest struct {
	AccountID string `json:"account_id" validate:"required"`
}

// ChurnRiskHandler handles churn risk requests.
type ChurnRiskHandler struct {
	deps ChurnRiskDependencies
}

// NewChurnRiskHandler creates a new churn-risk handler.
func NewChurnRiskHandler(deps ChurnRiskDependencies) *ChurnRiskHandler {
	return &ChurnRiskHandler{deps: deps}
}

// HandleChurnRisk handles POST /v1/tools/churn-risk requests.
func (h *ChurnRiskHandler) HandleChurnRisk(w http.ResponseWriter, r *http.Request) {
	const op = "api.churn_risk"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req churnRiskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}

	result, err := h.deps.ChurnRiskByAccount(r.Context(), req.AccountID)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
