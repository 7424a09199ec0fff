// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/revintel/internal/domain/model"
)

// RecordDependencies defines the interface for CRM record reads.
type RecordDependencies interface {
	GetAccount(ctx context.Context, id string) (model.Account, error)
	ListAccounts(ctx context.Context) ([]model.Account, error)
	AccountsByStatus(ctx context.Context, status string) ([]model.Account, error)
	GetLead(ctx context.Context, id string) (model.Lead, error)
	ListLeads(ctx context.Context) ([]model.Lead, error)
}

// RecordsHandler handles CRM record requests.
type RecordsHandler struct {
	deps RecordDependencies
}

// NewRecordsHandler creates a new records handler.
func NewRecordsHandler(deps RecordDependencies) *RecordsHandler {
	return &RecordsHandler{deps: deps}
}

// HandleListAccounts handles GET /v1/accounts?status= requests.
func (h *RecordsHandler) HandleListAccounts(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_accounts"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	var (
		accounts []model.Account
		err      error
	)
	if status := r.URL.Query().Get("status"); status != "" {
		accounts, err = h.deps.AccountsByStatus(r.Context(), status)
	} else {
		accounts, err = h.deps.ListAccounts(r.Context())
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, accounts)
}

// HandleGetAccount handles GET /v1/accounts/{account_id} requests.
func (h *RecordsHandler) HandleGetAccount(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_account"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /v1/accounts/
	id := strings.TrimPrefix(r.URL.Path, "/v1/accounts/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
		return
	}
	account, err := h.deps.GetAccount(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, account)
}

// HandleListLeads handles GET /v1/leads requests.
func (h *RecordsHandler) HandleListLeads(w http.ResponseWriter, r *http.Request) {
	const op = "api.list_leads"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	leads, err := h.deps.ListLeads(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// HandleGetLead handles GET /v1/leads/{lead_id} requests.
func (h *RecordsHandler) HandleGetLead(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_lead"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/v1/leads/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", opErr(op, ErrBadRequest))
		return
	}
	lead, err := h.deps.GetLead(r.Context(), id)
	if err != nil {
		if isNotFound(err) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, lead)
}
