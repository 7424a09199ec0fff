// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/revintel/internal/domain/model"
	"github.com/okian/revintel/internal/domain/types"
)

// ModelDependencies defines the interface for model monitoring resources.
type ModelDependencies interface {
	ModelMetadata(ctx context.Context) (model.ModelMetadata, error)
	ModelHealth(ctx context.Context) (types.HealthReport, error)
}

// ModelHandler handles model metadata and health requests.
type ModelHandler struct {
	deps ModelDependencies
}

// NewModelHandler creates a new model handler.
func NewModelHandler(deps ModelDependencies) *ModelHandler {
	return &ModelHandler{deps: deps}
}

// HandleMetadata handles GET /v1/model/metadata requests.
func (h *ModelHandler) HandleMetadata(w http.ResponseWriter, r *http.Request) {
	const op = "api.model_metadata"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	meta, err := h.deps.ModelMetadata(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

// HandleModelHealth handles GET /v1/model/health requests.
func (h *ModelHandler) HandleModelHealth(w http.ResponseWriter, r *http.Request) {
	const op = "api.model_health"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	health, err := h.deps.ModelHealth(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", opErr(op, err))
		return
	}
	writeJSON(w, http.StatusOK, health)
}
