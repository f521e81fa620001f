package handlers

import (
	"context"
	"net/http"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/application/services"
	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// AssessmentService defines the scoring operations used by the handler
type AssessmentService interface {
	Assess(ctx context.Context, req services.AssessmentRequest) (*entities.Assessment, error)
	Hierarchy(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.HierarchyResult, error)
	Inhalation(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.InhalationResult, error)
	Dermal(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.DermalResult, error)
	Alerts(ctx context.Context, agents []entities.ChemicalAgent) ([]entities.Alert, error)
}

// AssessmentHandler exposes the scoring engine over HTTP
type AssessmentHandler struct {
	service AssessmentService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(service AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{service: service}
}

type agentsRequest struct {
	Agents []entities.ChemicalAgent `json:"agents"`
}

// Assess handles POST /api/assessments
func (h *AssessmentHandler) Assess(w http.ResponseWriter, r *http.Request) {
	var req services.AssessmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ParetoThreshold < 0 || req.ParetoThreshold > 100 {
		respondWithError(w, http.StatusBadRequest, "pareto_threshold must be between 0 and 100")
		return
	}

	assessment, err := h.service.Assess(r.Context(), req)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, assessment)
}

// Hierarchy handles POST /api/assessments/hierarchy
func (h *AssessmentHandler) Hierarchy(w http.ResponseWriter, r *http.Request) {
	handleAgents(w, r, "hierarchy", h.service.Hierarchy)
}

// Inhalation handles POST /api/assessments/inhalation
func (h *AssessmentHandler) Inhalation(w http.ResponseWriter, r *http.Request) {
	handleAgents(w, r, "inhalation", h.service.Inhalation)
}

// Dermal handles POST /api/assessments/dermal
func (h *AssessmentHandler) Dermal(w http.ResponseWriter, r *http.Request) {
	handleAgents(w, r, "dermal", h.service.Dermal)
}

// Alerts handles POST /api/assessments/alerts
func (h *AssessmentHandler) Alerts(w http.ResponseWriter, r *http.Request) {
	handleAgents(w, r, "alerts", h.service.Alerts)
}

func handleAgents[T any](w http.ResponseWriter, r *http.Request, key string, run func(context.Context, []entities.ChemicalAgent) ([]T, error)) {
	var req agentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	results, err := run(r.Context(), req.Agents)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		key:     results,
		"count": len(results),
	})
}
