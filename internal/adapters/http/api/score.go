// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/revintel/internal/domain/model"
)

// Defaults applied when optional score-lead fields are omitted.
const (
	defaultIndustry      = "technology"
	defaultEmployeeCount = 100
)

// ScoreLeadDependencies defines the interface for lead scoring.
type ScoreLeadDependencies interface {
	ScoreLead(ctx context.Context, companyName string, signals model.LeadSignals, industry string, employeeCount int) (model.PredictionResult, error)
}

// scoreLeadRequest mirrors the score-lead tool input.
type scoreLeadRequest struct {
	CompanyName   string              `json:"company_name" validate:"required"`
	Signals       *leadSignalsPayload `json:"signals" validate:"required"`
	Industry      string              `json:"industry"`
	EmployeeCount *int                `json:"employee_count" validate:"omitempty,min=0"`
}

// leadSignalsPayload carries the engagement signal bag. Absent fields keep
// their zero defaults, matching the scoring semantics for missing signals.
type leadSignalsPayload struct {
	WebsiteVisits30d     int     `json:"website_visits_30d" validate:"min=0"`
	DemoRequested        bool    `json:"demo_requested"`
	WhitepaperDownloads  int     `json:"whitepaper_downloads" validate:"min=0"`
	EmailEngagementScore float64 `json:"email_engagement_score" validate:"min=0,max=100"`
	LinkedinEngagement   bool    `json:"linkedin_engagement"`
	FreeTrialStarted     bool    `json:"free_trial_started"`
}

func (p *leadSignalsPayload) toModel() model.LeadSignals {
	return model.LeadSignals{
		WebsiteVisits30d:     p.WebsiteVisits30d,
		DemoRequested:        p.DemoRequested,
		WhitepaperDownloads:  p.WhitepaperDownloads,
		EmailEngagementScore: p.EmailEngagementScore,
		LinkedinEngagement:   p.LinkedinEngagement,
		FreeTrialStarted:     p.FreeTrialStarted,
	}
}

// ScoreLeadHandler handles lead scoring requests.
type ScoreLeadHandler struct {
	deps ScoreLeadDependencies
}

// NewScoreLeadHandler creates a new score-lead handler.
func NewScoreLeadHandler(deps ScoreLeadDependencies) *ScoreLeadHandler {
	return &ScoreLeadHandler{deps: deps}
}

// HandleScoreLead handles POST /v1/tools/score-lead requests.
func (h *ScoreLeadHandler) HandleScoreLead(w http.ResponseWriter, r *http.Request) {
	const op = "api.score_lead"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scoreLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, err))
		return
	}

	industry := req.Industry
	if industry == "" {
		industry = defaultIndustry
	}
	employeeCount := defaultEmployeeCount
	if req.EmployeeCount != nil {
		employeeCount = *req.EmployeeCount
	}

	result, err := h.deps.ScoreLead(r.Context(), req.CompanyName, req.Signals.toModel(), industry, employeeCount)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, result)
}
